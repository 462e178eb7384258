package response

import "repair_hub/internal/domain/entities"

type JobTagResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
	Label string `json:"label"`
}

type TagQueueResponse struct {
	Tags  []JobTagResponse `json:"tags"`
	Count int              `json:"count"`
}

func FromJobTags(tags []entities.JobTag) TagQueueResponse {
	out := make([]JobTagResponse, 0, len(tags))
	for _, t := range tags {
		out = append(out, JobTagResponse{ID: t.ID, Value: t.Value, Label: t.Label})
	}
	return TagQueueResponse{Tags: out, Count: len(out)}
}
