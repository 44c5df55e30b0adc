package model

import (
	"time"

	"github.com/google/uuid"
)

// GazetteerExtension is one value added at runtime to a gazetteer entity.
// Values added by the same call share a BatchRID. Stored extensions are
// replayed batch by batch in insertion order.
type GazetteerExtension struct {
	ID               int64     `json:"id"`
	RID              uuid.UUID `json:"rid"`
	BatchRID         uuid.UUID `json:"batch_rid"`
	Language         string    `json:"language"`
	EntityIdentifier string    `json:"entity_identifier"`
	RawValue         string    `json:"raw_value"`
	ResolvedValue    string    `json:"resolved_value"`
	Metadata         Metadata  `json:"metadata,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// EntityValue returns the vocabulary entry carried by the extension.
func (e *GazetteerExtension) EntityValue() EntityValue {
	return EntityValue{RawValue: e.RawValue, ResolvedValue: e.ResolvedValue}
}
