package response

import (
	"time"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"
)

// ViewJobs tells the client to return to the job list after a save.
const ViewJobs = "jobs"

type UsedPartResponse struct {
	ID          string    `json:"id"`
	StockItemID string    `json:"stock_item_id"`
	Name        string    `json:"name"`
	Quantity    int       `json:"quantity"`
	Cost        float64   `json:"cost"`
	DateUsed    time.Time `json:"date_used"`
}

type RepairJobResponse struct {
	ID             string             `json:"id"`
	FirmID         string             `json:"firm_id"`
	CustomerName   string             `json:"customer_name"`
	ContactNumber  string             `json:"contact_number"`
	Address        string             `json:"address"`
	Product        string             `json:"product"`
	Issue          string             `json:"issue"`
	Status         string             `json:"status"`
	EstimatedCost  float64            `json:"estimated_cost"`
	DevicePhotoURL string             `json:"device_photo_url,omitempty"`
	DateAdded      time.Time          `json:"date_added"`
	UpdatedAt      time.Time          `json:"updated_at"`
	PartsUsed      []UsedPartResponse `json:"parts_used"`
	PartsTotal     float64            `json:"parts_total"`
}

type SaveRepairJobResponse struct {
	Job      RepairJobResponse `json:"job"`
	NextView string            `json:"next_view"`
}

type OpenRepairJobResponse struct {
	Job   RepairJobResponse `json:"job"`
	IsNew bool              `json:"is_new"`
}

type ScanResponse struct {
	Job     RepairJobResponse `json:"job"`
	IsNew   bool              `json:"is_new"`
	Payload string            `json:"payload"`
}

type PhotoResponse struct {
	JobID string `json:"job_id"`
	URL   string `json:"url"`
}

func FromRepairJob(j entities.RepairJob) RepairJobResponse {
	parts := make([]UsedPartResponse, 0, len(j.PartsUsed))
	for _, p := range j.PartsUsed {
		parts = append(parts, UsedPartResponse{
			ID:          p.ID,
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			Cost:        p.Cost.InexactFloat64(),
			DateUsed:    p.DateUsed,
		})
	}
	return RepairJobResponse{
		ID:             j.ID,
		FirmID:         j.FirmID,
		CustomerName:   j.CustomerName,
		ContactNumber:  j.ContactNumber,
		Address:        j.Address,
		Product:        j.Product,
		Issue:          j.Issue,
		Status:         string(j.Status),
		EstimatedCost:  j.EstimatedCost.InexactFloat64(),
		DevicePhotoURL: j.DevicePhotoURL,
		DateAdded:      j.DateAdded,
		UpdatedAt:      j.UpdatedAt,
		PartsUsed:      parts,
		PartsTotal:     j.PartsTotal().InexactFloat64(),
	}
}

func FromRepairJobs(jobs []entities.RepairJob) []RepairJobResponse {
	out := make([]RepairJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromRepairJob(j))
	}
	return out
}

func FromScanResult(r usecase.ScanResult) ScanResponse {
	return ScanResponse{
		Job:     FromRepairJob(r.Job),
		IsNew:   r.IsNew,
		Payload: r.Payload,
	}
}
