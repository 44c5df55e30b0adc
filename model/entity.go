package model

import (
	"github.com/siherrmann/nluparsers/ontology"
)

// Range is a half-open interval of character (rune) offsets.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of characters covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Contains reports whether other lies within r.
func (r Range) Contains(other Range) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// BuiltinEntity is a typed span recognized in a sentence.
// Range always indexes the original sentence passed to extraction.
type BuiltinEntity struct {
	Value        string                     `json:"value"`
	Range        Range                      `json:"range"`
	Entity       SlotValue                  `json:"entity"`
	Alternatives []SlotValue                `json:"alternatives"`
	EntityKind   ontology.BuiltinEntityKind `json:"entity_kind"`
}

// EntityValue is one gazetteer vocabulary entry.
type EntityValue struct {
	RawValue      string `json:"raw_value"`
	ResolvedValue string `json:"resolved_value"`
}
