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

const defaultPackagesTableName = "packages"

type packageItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// PackageDynamoRepository persists Package entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type PackageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPackageRepository = (*PackageDynamoRepository)(nil)

func NewPackageDynamoRepository(ddb *dynamodb.Client) *PackageDynamoRepository {
	return &PackageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PACKAGES_TABLE", defaultPackagesTableName),
	}
}

func (r *PackageDynamoRepository) Create(ctx context.Context, p entities.Package) (entities.Package, error) {
	it := packageItem{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Package{}, err
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
		return entities.Package{}, err
	}
	return p, nil
}

func (r *PackageDynamoRepository) GetByID(ctx context.Context, id string) (entities.Package, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Package{}, err
	}
	if len(out.Item) == 0 {
		return entities.Package{}, nil
	}

	var it packageItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Package{}, err
	}

	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Package{ID: it.ID, Name: it.Name, CreatedAt: createdAt}, nil
}
