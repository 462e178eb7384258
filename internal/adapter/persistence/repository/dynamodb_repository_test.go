package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"repair_hub/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDynamo struct {
	pages   []*dynamodb.QueryOutput
	queries []*dynamodb.QueryInput
	puts    []*dynamodb.PutItemInput
	putErr  error
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	if len(f.pages) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	page := f.pages[0]
	f.pages = f.pages[1:]
	return page, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func mustMarshal(t *testing.T, v any) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	return av
}

func TestRepairJobDynamoRepository_ListByFirm(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first := toRepairJobItem(entities.RepairJob{
		ID: "JOB-2", FirmID: "F", CustomerName: "Asha", Status: entities.RepairStatusWorking,
		EstimatedCost: decimal.RequireFromString("1500.50"), DateAdded: ts, UpdatedAt: ts,
		PartsUsed: []entities.UsedPart{{ID: "P1", StockItemID: "S1", Name: "Screen", Quantity: 2, Cost: decimal.NewFromInt(200), DateUsed: ts}},
	})
	second := toRepairJobItem(entities.RepairJob{ID: "JOB-1", FirmID: "F", Status: entities.RepairStatusQuoted})

	fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{
		{
			Items:            []map[string]types.AttributeValue{mustMarshal(t, first)},
			LastEvaluatedKey: map[string]types.AttributeValue{"id": &types.AttributeValueMemberS{Value: "JOB-2"}},
		},
		{Items: []map[string]types.AttributeValue{mustMarshal(t, second)}},
	}}
	repo := NewRepairJobDynamoRepository(fake, "repairs")

	jobs, err := repo.ListByFirm(context.Background(), "F")
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	require.Len(t, fake.queries, 2)

	q := fake.queries[0]
	assert.Equal(t, "repairs", aws.ToString(q.TableName))
	assert.Equal(t, repairsByDateIndex, aws.ToString(q.IndexName))
	assert.False(t, aws.ToBool(q.ScanIndexForward))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "F"}, q.ExpressionAttributeValues[":firm_id"])
	assert.NotNil(t, fake.queries[1].ExclusiveStartKey)

	got := jobs[0]
	assert.Equal(t, "JOB-2", got.ID)
	assert.Equal(t, entities.RepairStatusWorking, got.Status)
	assert.True(t, got.EstimatedCost.Equal(decimal.RequireFromString("1500.5")))
	assert.True(t, got.DateAdded.Equal(ts))
	require.Len(t, got.PartsUsed, 1)
	assert.True(t, got.PartsUsed[0].Cost.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, got.PartsUsed[0].Quantity)
	assert.Equal(t, "JOB-1", jobs[1].ID)
	assert.True(t, jobs[1].EstimatedCost.IsZero())
}

func TestRepairJobDynamoRepository_Upsert(t *testing.T) {
	fake := &fakeDynamo{}
	repo := NewRepairJobDynamoRepository(fake, "repairs")

	err := repo.Upsert(context.Background(), entities.RepairJob{ID: "JOB-1", FirmID: "F", EstimatedCost: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.Len(t, fake.puts, 1)

	put := fake.puts[0]
	assert.Nil(t, put.ConditionExpression)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "10"}, put.Item["estimated_cost"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "F"}, put.Item["firm_id"])
	_, hasPhoto := put.Item["device_photo_url"]
	assert.False(t, hasPhoto)
}

func TestStockItemDynamoRepository(t *testing.T) {
	t.Run("insert is conditional", func(t *testing.T) {
		fake := &fakeDynamo{}
		repo := NewStockItemDynamoRepository(fake, "stock_items")

		require.NoError(t, repo.Insert(context.Background(), entities.StockItem{ID: "S1", FirmID: "F", Price: decimal.NewFromInt(100), Quantity: 5}))
		require.Len(t, fake.puts, 1)
		assert.Equal(t, "attribute_not_exists(#id)", aws.ToString(fake.puts[0].ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "5"}, fake.puts[0].Item["quantity"])
	})

	t.Run("insert conflict", func(t *testing.T) {
		fake := &fakeDynamo{putErr: &types.ConditionalCheckFailedException{Message: aws.String("exists")}}
		repo := NewStockItemDynamoRepository(fake, "stock_items")

		err := repo.Insert(context.Background(), entities.StockItem{ID: "S1"})
		assert.ErrorIs(t, err, ErrStockItemExists)
	})

	t.Run("upsert error passes through", func(t *testing.T) {
		fake := &fakeDynamo{putErr: errors.New("throttled")}
		repo := NewStockItemDynamoRepository(fake, "stock_items")

		err := repo.Upsert(context.Background(), entities.StockItem{ID: "S1"})
		assert.EqualError(t, err, "throttled")
		assert.Nil(t, fake.puts[0].ConditionExpression)
	})

	t.Run("list", func(t *testing.T) {
		row := toStockItemItem(entities.StockItem{ID: "S1", FirmID: "F", Name: "Screen", Category: "Display", Quantity: 5, Price: decimal.RequireFromString("99.99")})
		fake := &fakeDynamo{pages: []*dynamodb.QueryOutput{{Items: []map[string]types.AttributeValue{mustMarshal(t, row)}}}}
		repo := NewStockItemDynamoRepository(fake, "stock_items")

		items, err := repo.ListByFirm(context.Background(), "F")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, stockByUpdateIndex, aws.ToString(fake.queries[0].IndexName))
		assert.Equal(t, 5, items[0].Quantity)
		assert.True(t, items[0].Price.Equal(decimal.RequireFromString("99.99")))
	})
}
