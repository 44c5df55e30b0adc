package gazetteer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/siherrmann/nluparsers/core/matcher"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
)

// MetadataFile is the manifest of a persisted parser.
const MetadataFile = "metadata.json"

// Persist writes the parser into path, which must not exist yet. Each matcher
// is dumped into parser_1, parser_2, ... in configuration order.
func (p *Parser[T]) Persist(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return helper.IOError(path, err)
	}

	metadata := model.GazetteerParserMetadata{ParsersMetadata: []model.EntityParserMetadata{}}
	for i, ep := range p.parsers {
		directory := fmt.Sprintf("parser_%d", i+1)
		if err := ep.matcher.Dump(filepath.Join(path, directory)); err != nil {
			return helper.NewError("dumping entity parser "+ep.identifier.Identifier(), err)
		}
		metadata.ParsersMetadata = append(metadata.ParsersMetadata, model.EntityParserMetadata{
			EntityIdentifier: ep.identifier.Identifier(),
			EntityParser:     directory,
		})
	}

	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return helper.NewError("gazetteer metadata marshal", err)
	}
	metadataPath := filepath.Join(path, MetadataFile)
	if err := os.WriteFile(metadataPath, data, 0o644); err != nil {
		return helper.IOError(metadataPath, err)
	}
	return nil
}

// FromPath loads a parser written by Persist. Every referenced directory is
// checked before any matcher is loaded.
func FromPath[T EntityIdentifier](path string, parse IdentifierParser[T]) (*Parser[T], error) {
	metadataPath := filepath.Join(path, MetadataFile)
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, helper.ConfigurationError("missing gazetteer metadata %s", metadataPath)
		}
		return nil, helper.IOError(metadataPath, err)
	}

	var metadata model.GazetteerParserMetadata
	if err := json.Unmarshal(data, &metadata); err != nil {
		return nil, helper.ConfigurationError("malformed %s: %v", metadataPath, err)
	}

	for _, m := range metadata.ParsersMetadata {
		dir := filepath.Join(path, m.EntityParser)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			return nil, helper.ConfigurationError("missing entity parser directory %s for %q", dir, m.EntityIdentifier)
		}
	}

	parsers := make([]entityParser[T], 0, len(metadata.ParsersMetadata))
	for _, m := range metadata.ParsersMetadata {
		identifier, err := parse(m.EntityIdentifier)
		if err != nil {
			return nil, helper.NewError("entity identifier parsing", err)
		}
		loaded, err := matcher.Load(filepath.Join(path, m.EntityParser))
		if err != nil {
			return nil, helper.NewError("loading entity parser "+m.EntityIdentifier, err)
		}
		parsers = append(parsers, entityParser[T]{identifier: identifier, matcher: loaded})
	}
	return newParser(parsers)
}
