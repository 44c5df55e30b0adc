package model

import (
	"github.com/siherrmann/nluparsers/ontology"
)

// BuiltinParserMetadata is the metadata.json at the root of a persisted
// BuiltinEntityParser directory.
type BuiltinParserMetadata struct {
	Language        ontology.Language `json:"language"`
	GazetteerParser *string           `json:"gazetteer_parser"`
}

// GazetteerParserMetadata is the metadata.json of a persisted gazetteer parser.
type GazetteerParserMetadata struct {
	ParsersMetadata []EntityParserMetadata `json:"parsers_metadata"`
}

// EntityParserMetadata maps an entity identifier to its sub directory.
type EntityParserMetadata struct {
	EntityIdentifier string `json:"entity_identifier"`
	EntityParser     string `json:"entity_parser"`
}

// EntityParserDump is the entity_parser.json written by a matcher.
type EntityParserDump struct {
	Config          EntityParserConfig `json:"config"`
	LicenseFilename *string            `json:"license_filename,omitempty"`
}
