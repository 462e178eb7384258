package repository

import (
	"context"
	"errors"
	"fmt"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const stockByUpdateIndex = "firm_id-last_updated-index"

var ErrStockItemExists = errors.New("stock item already exists")

type stockItemItem struct {
	FirmID      string `dynamodbav:"firm_id"`
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Category    string `dynamodbav:"category"`
	Quantity    int    `dynamodbav:"quantity"`
	Price       string `dynamodbav:"price"`
	LastUpdated string `dynamodbav:"last_updated"`
}

// StockItemDynamoRepository persists StockItem entities in DynamoDB.
//
// Table requirements:
//   - PK: firm_id (string)
//   - SK: id (string)
//   - LSI firm_id-last_updated-index with sort key last_updated
type StockItemDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IStockItemRepository = (*StockItemDynamoRepository)(nil)

func NewStockItemDynamoRepository(ddb DynamoDBAPI, tableName string) *StockItemDynamoRepository {
	return &StockItemDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StockItemDynamoRepository) ListByFirm(ctx context.Context, firmID string) ([]entities.StockItem, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(stockByUpdateIndex),
		KeyConditionExpression: aws.String("#firm_id = :firm_id"),
		ExpressionAttributeNames: map[string]string{
			"#firm_id": "firm_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":firm_id": &types.AttributeValueMemberS{Value: firmID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	items := make([]entities.StockItem, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var rows []stockItemItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &rows); err != nil {
			return nil, err
		}
		for _, it := range rows {
			items = append(items, fromStockItemItem(it))
		}
	}
	return items, nil
}

// Insert fails with ErrStockItemExists when the id is already taken.
func (r *StockItemDynamoRepository) Insert(ctx context.Context, item entities.StockItem) error {
	av, err := attributevalue.MarshalMap(toStockItemItem(item))
	if err != nil {
		return err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("%w: %s", ErrStockItemExists, item.ID)
		}
		return err
	}
	return nil
}

func (r *StockItemDynamoRepository) Upsert(ctx context.Context, item entities.StockItem) error {
	av, err := attributevalue.MarshalMap(toStockItemItem(item))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toStockItemItem(s entities.StockItem) stockItemItem {
	return stockItemItem{
		FirmID:      s.FirmID,
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Quantity:    s.Quantity,
		Price:       s.Price.String(),
		LastUpdated: formatTime(s.LastUpdated),
	}
}

func fromStockItemItem(it stockItemItem) entities.StockItem {
	return entities.StockItem{
		ID:          it.ID,
		FirmID:      it.FirmID,
		Name:        it.Name,
		Category:    it.Category,
		Quantity:    it.Quantity,
		Price:       parseDecimal(it.Price),
		LastUpdated: parseTime(it.LastUpdated),
	}
}
