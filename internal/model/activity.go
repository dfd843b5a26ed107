package model

import "time"

// Activity is one audit-log entry. ProductName is a copy of the product's
// name at the time of the action, so entries survive product deletion.
type Activity struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	ProductName string    `json:"product_name"`
	Timestamp   time.Time `json:"timestamp"`
}

// Activity types.
const (
	ActivityCreated = "created"
	ActivityEdited  = "edited"
	ActivityDeleted = "deleted"
)
