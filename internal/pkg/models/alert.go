package models

import (
	"time"

	"github.com/google/uuid"
)

// ReconcileAlert flags a record stuck in provisional state for operator
// attention. The sweeper never transitions such records itself: a transaction
// submitted for them may still confirm later.
type ReconcileAlert struct {
	Kind      string       `json:"kind"`
	RecordID  uuid.UUID    `json:"record_id"`
	Status    RecordStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	Age       string       `json:"age"`
}
