package models

import (
	"time"
)

// Delivery records the outcome of one submission. Only metadata is kept; the
// prompt and response text are never stored.
type Delivery struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	Recipient  string   `gorm:"size:320"`
	Category   Category `gorm:"size:32;index"`
	Status     string   `gorm:"size:512"`
	DurationMs int64
}

// Succeeded reports whether the mail was handed to the relay.
func (d Delivery) Succeeded() bool {
	return d.Category == CategoryOK
}
