package repository

import (
	"context"
	"time"

	"paypal_subscriptions/internal/domain/entities"
	"paypal_subscriptions/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPricesTableName = "prices"

type priceItem struct {
	ID           string            `dynamodbav:"id"`
	PackageID    string            `dynamodbav:"package_id"`
	Period       int               `dynamodbav:"period"`
	RenewalPrice float64           `dynamodbav:"renewal_price"`
	SetupFee     float64           `dynamodbav:"setup_fee"`
	Currency     string            `dynamodbav:"currency"`
	Data         map[string]string `dynamodbav:"data,omitempty"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// PriceDynamoRepository persists Price entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PriceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPriceRepository = (*PriceDynamoRepository)(nil)

func NewPriceDynamoRepository(ddb *dynamodb.Client) *PriceDynamoRepository {
	return &PriceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRICES_TABLE", defaultPricesTableName),
	}
}

func (r *PriceDynamoRepository) Create(ctx context.Context, p entities.Price) (entities.Price, error) {
	it := toPriceItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Price{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Price{}, err
	}
	return p, nil
}

func (r *PriceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Price, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Price{}, err
	}
	if len(out.Item) == 0 {
		return entities.Price{}, nil
	}

	var it priceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Price{}, err
	}
	return fromPriceItem(it), nil
}

// SetDataKey writes one key of the opaque data bag. The whole map is
// rewritten read-modify-write style; plan memo keys are written once
// per mode, so contention is not a concern here.
func (r *PriceDynamoRepository) SetDataKey(ctx context.Context, id string, key string, value string) (entities.Price, error) {
	price, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Price{}, err
	}
	if price.ID == "" {
		return entities.Price{}, nil
	}

	if price.Data == nil {
		price.Data = map[string]string{}
	}
	price.Data[key] = value

	now := time.Now().UTC().Format(time.RFC3339Nano)
	data, err := attributevalue.Marshal(price.Data)
	if err != nil {
		return entities.Price{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #data = :data, #updated_at = :updated_at"),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#data":       "data",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":data":       data,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Price{}, err
	}

	var it priceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Price{}, err
	}
	return fromPriceItem(it), nil
}

func toPriceItem(p entities.Price) priceItem {
	return priceItem{
		ID:           p.ID,
		PackageID:    p.PackageID,
		Period:       p.Period,
		RenewalPrice: p.RenewalPrice,
		SetupFee:     p.SetupFee,
		Currency:     p.Currency,
		Data:         p.Data,
		CreatedAt:    p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPriceItem(it priceItem) entities.Price {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Price{
		ID:           it.ID,
		PackageID:    it.PackageID,
		Period:       it.Period,
		RenewalPrice: it.RenewalPrice,
		SetupFee:     it.SetupFee,
		Currency:     it.Currency,
		Data:         it.Data,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
