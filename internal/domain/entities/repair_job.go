package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RepairStatus represents the lifecycle of a repair job on the workbench.
//
// Domain notes:
//   - The usual order is quoted -> approved -> working -> completed.
//   - The operator may set any status at any time; the order is not enforced.
type RepairStatus string

const (
	RepairStatusQuoted    RepairStatus = "quoted"
	RepairStatusApproved  RepairStatus = "approved"
	RepairStatusWorking   RepairStatus = "working"
	RepairStatusCompleted RepairStatus = "completed"
)

// RepairStatuses lists the statuses in pipeline order.
var RepairStatuses = []RepairStatus{
	RepairStatusQuoted,
	RepairStatusApproved,
	RepairStatusWorking,
	RepairStatusCompleted,
}

func (s RepairStatus) IsValid() bool {
	for _, known := range RepairStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// RepairJob is a repair ticket keyed by the job tag printed on the device.
//
// Storage model (DynamoDB):
//   - PK: firm_id
//   - SK: id
//   - LSI (firm_id-date_added-index): date_added
//
// PartsUsed is append-only; only the part consumption flow adds to it.
type RepairJob struct {
	ID             string          `json:"id"`
	FirmID         string          `json:"firm_id"`
	CustomerName   string          `json:"customer_name"`
	ContactNumber  string          `json:"contact_number"`
	Address        string          `json:"address"`
	Product        string          `json:"product"`
	Issue          string          `json:"issue"`
	Status         RepairStatus    `json:"status"`
	DateAdded      time.Time       `json:"date_added"`
	UpdatedAt      time.Time       `json:"updated_at"`
	EstimatedCost  decimal.Decimal `json:"estimated_cost"`
	DevicePhotoURL string          `json:"device_photo_url,omitempty"`
	PartsUsed      []UsedPart      `json:"parts_used,omitempty"`
}

// PartsTotal is the sum of the captured cost of every consumed part.
func (j RepairJob) PartsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range j.PartsUsed {
		total = total.Add(p.Cost)
	}
	return total
}

// Clone returns a copy that does not share the parts slice.
func (j RepairJob) Clone() RepairJob {
	if j.PartsUsed != nil {
		parts := make([]UsedPart, len(j.PartsUsed))
		copy(parts, j.PartsUsed)
		j.PartsUsed = parts
	}
	return j
}

// UsedPart is a snapshot of a stock item consumed by a job.
//
// StockItemID is a weak reference: the stock item may change or disappear
// without affecting the recorded name, quantity or cost.
type UsedPart struct {
	ID          string          `json:"id"`
	StockItemID string          `json:"stock_item_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	DateUsed    time.Time       `json:"date_used"`
}
