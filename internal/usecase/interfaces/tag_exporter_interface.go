package interfaces

import "repair_hub/internal/domain/entities"

// ITagExporter renders a batch of job tags into a downloadable document.
type ITagExporter interface {
	ExportZIP(tags []entities.JobTag) ([]byte, error)
	ExportPDF(tags []entities.JobTag) ([]byte, error)
}
