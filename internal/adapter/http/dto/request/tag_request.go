package request

import (
	"strings"

	"repair_hub/internal/usecase"
)

const DefaultTagBatchCount = 6

type TagBatchRequest struct {
	Prefix string     `json:"prefix"`
	Count  FormNumber `json:"count"`
}

func (r TagBatchRequest) ResolvePrefix() string {
	if v := strings.TrimSpace(r.Prefix); v != "" {
		return v
	}
	return usecase.DefaultTagPrefix
}

// ResolveCount defaults to a sheet of six when the field is left out.
func (r TagBatchRequest) ResolveCount() int {
	if r.Count.IsEmpty() {
		return DefaultTagBatchCount
	}
	return r.Count.Int()
}
