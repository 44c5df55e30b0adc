package model

import (
	"github.com/siherrmann/nluparsers/ontology"
)

// BuiltinEntityParserConfig describes how to build a BuiltinEntityParser.
// GazetteerParserPath is optional; without it no gazetteer kinds are extracted.
type BuiltinEntityParserConfig struct {
	Language            ontology.Language `json:"language"`
	GazetteerParserPath *string           `json:"gazetteer_parser_path,omitempty"`
}

// GazetteerParserConfig is the builder input for a gazetteer parser.
type GazetteerParserConfig struct {
	EntityParsers []GazetteerEntityParserConfig `json:"entity_parsers"`
}

// GazetteerEntityParserConfig binds one entity identifier to a matcher config.
type GazetteerEntityParserConfig struct {
	EntityIdentifier string             `json:"entity_identifier"`
	EntityParser     EntityParserConfig `json:"entity_parser"`
	LicenseInfo      *LicenseInfo       `json:"license_info,omitempty"`
}

// EntityParserConfig configures a fuzzy gazetteer matcher.
type EntityParserConfig struct {
	Gazetteer           []EntityValue `json:"gazetteer"`
	Threshold           float32       `json:"threshold"`
	NGazetteerStopWords *int          `json:"n_gazetteer_stop_words,omitempty"`
	AdditionalStopWords []string      `json:"additional_stop_words,omitempty"`
}

// LicenseInfo is written next to a persisted matcher.
type LicenseInfo struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}
