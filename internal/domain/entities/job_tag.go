package entities

// JobTag is a blank tag waiting in the print queue.
//
// ID identifies the queue entry; Value is the job identifier encoded in the QR.
type JobTag struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}
