package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskListingViewIncrement = "listings.view.increment"

type ListingViewIncrementPayload struct {
	ListingID string `json:"listingId"`
}

func NewListingViewIncrementTask(payload ListingViewIncrementPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskListingViewIncrement, data), nil
}

func ParseListingViewIncrementPayload(task *asynq.Task) (ListingViewIncrementPayload, error) {
	var payload ListingViewIncrementPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ListingViewIncrementPayload{}, err
	}
	return payload, nil
}
