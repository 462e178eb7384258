package request

import (
	"strings"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"
)

// RepairJobRequest is the job form as submitted by the workbench UI. The id
// comes from the path, never from the body.
type RepairJobRequest struct {
	CustomerName   string     `json:"customer_name"`
	ContactNumber  string     `json:"contact_number"`
	Address        string     `json:"address"`
	Product        string     `json:"product"`
	Issue          string     `json:"issue"`
	Status         string     `json:"status"`
	EstimatedCost  FormNumber `json:"estimated_cost"`
	DevicePhotoURL string     `json:"device_photo_url"`
}

func (r RepairJobRequest) ToInput(id string) usecase.RepairJobInput {
	return usecase.RepairJobInput{
		ID:             strings.TrimSpace(id),
		CustomerName:   r.CustomerName,
		ContactNumber:  r.ContactNumber,
		Address:        r.Address,
		Product:        r.Product,
		Issue:          r.Issue,
		Status:         entities.RepairStatus(r.Status),
		EstimatedCost:  r.EstimatedCost.Decimal(),
		DevicePhotoURL: strings.TrimSpace(r.DevicePhotoURL),
	}
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r StatusRequest) ResolveStatus() entities.RepairStatus {
	return entities.RepairStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}

type ConsumePartRequest struct {
	StockItemID string     `json:"stock_item_id" binding:"required"`
	Quantity    FormNumber `json:"quantity"`
}

func (r ConsumePartRequest) ResolveStockItemID() string {
	return strings.TrimSpace(r.StockItemID)
}
