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

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	ID             string `dynamodbav:"id"`
	PriceID        string `dynamodbav:"price_id"`
	PackageID      string `dynamodbav:"package_id"`
	UserEmail      string `dynamodbav:"user_email"`
	Status         string `dynamodbav:"status"`
	SubscriptionID string `dynamodbav:"subscription_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	CompletedAt    string `dynamodbav:"completed_at,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// MarkCompleted moves a payment to completed and records the remote
// subscription id. The condition keeps the transition one-way: an
// already-completed payment is never rewritten by a redelivered event.
func (r *PaymentDynamoRepository) MarkCompleted(ctx context.Context, id string, subscriptionID string) (entities.Payment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:    aws.String("SET #status = :completed, #subscription_id = :sid, #completed_at = :now"),
		ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :completed"),
		ExpressionAttributeNames: map[string]string{
			"#id":              "id",
			"#status":          "status",
			"#subscription_id": "subscription_id",
			"#completed_at":    "completed_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":completed": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusCompleted)},
			":sid":       &types.AttributeValueMemberS{Value: subscriptionID},
			":now":       &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.Payment{}, err
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		ID:             p.ID,
		PriceID:        p.PriceID,
		PackageID:      p.PackageID,
		UserEmail:      p.UserEmail,
		Status:         string(p.Status),
		SubscriptionID: p.SubscriptionID,
		CreatedAt:      p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if p.CompletedAt != nil {
		it.CompletedAt = p.CompletedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.Payment{
		ID:             it.ID,
		PriceID:        it.PriceID,
		PackageID:      it.PackageID,
		UserEmail:      it.UserEmail,
		Status:         entities.PaymentStatus(it.Status),
		SubscriptionID: it.SubscriptionID,
		CreatedAt:      createdAt,
	}
	if it.CompletedAt != "" {
		if completedAt, err := time.Parse(time.RFC3339Nano, it.CompletedAt); err == nil {
			p.CompletedAt = &completedAt
		}
	}
	return p
}
