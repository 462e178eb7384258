package repository

import (
	"context"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const repairsByDateIndex = "firm_id-date_added-index"

type repairJobItem struct {
	FirmID         string         `dynamodbav:"firm_id"`
	ID             string         `dynamodbav:"id"`
	CustomerName   string         `dynamodbav:"customer_name"`
	ContactNumber  string         `dynamodbav:"contact_number"`
	Address        string         `dynamodbav:"address"`
	Product        string         `dynamodbav:"product"`
	Issue          string         `dynamodbav:"issue"`
	Status         string         `dynamodbav:"status"`
	EstimatedCost  string         `dynamodbav:"estimated_cost"`
	DevicePhotoURL string         `dynamodbav:"device_photo_url,omitempty"`
	DateAdded      string         `dynamodbav:"date_added"`
	UpdatedAt      string         `dynamodbav:"updated_at"`
	PartsUsed      []usedPartItem `dynamodbav:"parts_used"`
}

type usedPartItem struct {
	ID          string `dynamodbav:"id"`
	StockItemID string `dynamodbav:"stock_item_id"`
	Name        string `dynamodbav:"name"`
	Quantity    int    `dynamodbav:"quantity"`
	Cost        string `dynamodbav:"cost"`
	DateUsed    string `dynamodbav:"date_used"`
}

// RepairJobDynamoRepository persists RepairJob entities in DynamoDB.
//
// Table requirements:
//   - PK: firm_id (string)
//   - SK: id (string)
//   - LSI firm_id-date_added-index with sort key date_added (string, RFC3339)
type RepairJobDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IRepairJobRepository = (*RepairJobDynamoRepository)(nil)

func NewRepairJobDynamoRepository(ddb DynamoDBAPI, tableName string) *RepairJobDynamoRepository {
	return &RepairJobDynamoRepository{ddb: ddb, tableName: tableName}
}

// ListByFirm returns every job of the firm, most recently added first.
func (r *RepairJobDynamoRepository) ListByFirm(ctx context.Context, firmID string) ([]entities.RepairJob, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(repairsByDateIndex),
		KeyConditionExpression: aws.String("#firm_id = :firm_id"),
		ExpressionAttributeNames: map[string]string{
			"#firm_id": "firm_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":firm_id": &types.AttributeValueMemberS{Value: firmID},
		},
		ScanIndexForward: aws.Bool(false),
	})

	jobs := make([]entities.RepairJob, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []repairJobItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			jobs = append(jobs, fromRepairJobItem(it))
		}
	}
	return jobs, nil
}

func (r *RepairJobDynamoRepository) Upsert(ctx context.Context, job entities.RepairJob) error {
	av, err := attributevalue.MarshalMap(toRepairJobItem(job))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toRepairJobItem(j entities.RepairJob) repairJobItem {
	parts := make([]usedPartItem, 0, len(j.PartsUsed))
	for _, p := range j.PartsUsed {
		parts = append(parts, usedPartItem{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Cost:        p.Cost.String(),
			DateUsed:    formatTime(p.DateUsed),
		})
	}
	return repairJobItem{
		FirmID:         j.FirmID,
		ID:             j.ID,
		CustomerName:   j.CustomerName,
		ContactNumber:  j.ContactNumber,
		Address:        j.Address,
		Product:        j.Product,
		Issue:          j.Issue,
		Status:         string(j.Status),
		EstimatedCost:  j.EstimatedCost.String(),
		DevicePhotoURL: j.DevicePhotoURL,
		DateAdded:      formatTime(j.DateAdded),
		UpdatedAt:      formatTime(j.UpdatedAt),
		PartsUsed:      parts,
	}
}

func fromRepairJobItem(it repairJobItem) entities.RepairJob {
	var parts []entities.UsedPart
	for _, p := range it.PartsUsed {
		parts = append(parts, entities.UsedPart{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Cost:        parseDecimal(p.Cost),
			DateUsed:    parseTime(p.DateUsed),
		})
	}
	return entities.RepairJob{
		ID:             it.ID,
		FirmID:         it.FirmID,
		CustomerName:   it.CustomerName,
		ContactNumber:  it.ContactNumber,
		Address:        it.Address,
		Product:        it.Product,
		Issue:          it.Issue,
		Status:         entities.RepairStatus(it.Status),
		DateAdded:      parseTime(it.DateAdded),
		UpdatedAt:      parseTime(it.UpdatedAt),
		EstimatedCost:  parseDecimal(it.EstimatedCost),
		DevicePhotoURL: it.DevicePhotoURL,
		PartsUsed:      parts,
	}
}
