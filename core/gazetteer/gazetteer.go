package gazetteer

import (
	"slices"
	"strings"

	"github.com/siherrmann/nluparsers/core/alignment"
	"github.com/siherrmann/nluparsers/core/conversion"
	"github.com/siherrmann/nluparsers/core/matcher"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

// EntityIdentifier names the entity a sub-matcher resolves.
type EntityIdentifier interface {
	comparable
	Identifier() string
}

// CustomIdentifier is a free string identifier for vocabularies outside of
// the builtin gazetteer kinds.
type CustomIdentifier string

func (c CustomIdentifier) Identifier() string {
	return string(c)
}

// IdentifierParser parses the string form of an identifier.
type IdentifierParser[T EntityIdentifier] func(identifier string) (T, error)

// ParseCustomIdentifier accepts any identifier.
func ParseCustomIdentifier(identifier string) (CustomIdentifier, error) {
	return CustomIdentifier(identifier), nil
}

// ParseGazetteerEntityKind accepts the identifiers of builtin gazetteer kinds.
func ParseGazetteerEntityKind(identifier string) (ontology.GazetteerEntityKind, error) {
	return ontology.GazetteerKindFromIdentifier(identifier)
}

// EntityMatch is a gazetteer value found in a sentence.
type EntityMatch[T EntityIdentifier] struct {
	Value                     string
	ResolvedValue             string
	AlternativeResolvedValues []string
	Range                     model.Range
	EntityIdentifier          T
}

type entityParser[T EntityIdentifier] struct {
	identifier T
	matcher    *matcher.Matcher
}

// Parser runs one matcher per entity identifier, in configuration order.
type Parser[T EntityIdentifier] struct {
	parsers []entityParser[T]
}

func newParser[T EntityIdentifier](parsers []entityParser[T]) (*Parser[T], error) {
	seen := map[T]bool{}
	for _, p := range parsers {
		if seen[p.identifier] {
			return nil, helper.ConfigurationError("duplicate gazetteer entity identifier %q", p.identifier.Identifier())
		}
		seen[p.identifier] = true
	}
	return &Parser[T]{parsers: parsers}, nil
}

// Build creates a parser from its builder configuration.
func Build[T EntityIdentifier](config model.GazetteerParserConfig, parse IdentifierParser[T]) (*Parser[T], error) {
	parsers := make([]entityParser[T], 0, len(config.EntityParsers))
	for _, c := range config.EntityParsers {
		identifier, err := parse(c.EntityIdentifier)
		if err != nil {
			return nil, helper.NewError("entity identifier parsing", err)
		}
		m, err := matcher.New(c.EntityParser, c.LicenseInfo)
		if err != nil {
			return nil, helper.NewError("entity parser "+c.EntityIdentifier, err)
		}
		parsers = append(parsers, entityParser[T]{identifier: identifier, matcher: m})
	}
	return newParser(parsers)
}

// Identifiers returns the configured identifiers in order.
func (p *Parser[T]) Identifiers() []T {
	identifiers := make([]T, 0, len(p.parsers))
	for _, ep := range p.parsers {
		identifiers = append(identifiers, ep.identifier)
	}
	return identifiers
}

// Config returns the builder configuration of the current state, including
// values added at runtime.
func (p *Parser[T]) Config() model.GazetteerParserConfig {
	config := model.GazetteerParserConfig{EntityParsers: []model.GazetteerEntityParserConfig{}}
	for _, ep := range p.parsers {
		config.EntityParsers = append(config.EntityParsers, model.GazetteerEntityParserConfig{
			EntityIdentifier: ep.identifier.Identifier(),
			EntityParser:     ep.matcher.Config(),
			LicenseInfo:      ep.matcher.License(),
		})
	}
	return config
}

// ExtractEntities runs every matcher whose identifier is in filter, or all of
// them when filter is nil. Matches are grouped by matcher in configuration
// order. Values keep the casing of sentence.
func (p *Parser[T]) ExtractEntities(sentence string, filter []T, maxAlternatives int) []EntityMatch[T] {
	lowercased := strings.ToLower(sentence)
	matches := []EntityMatch[T]{}
	for _, ep := range p.parsers {
		if filter != nil && !slices.Contains(filter, ep.identifier) {
			continue
		}
		for _, parsed := range ep.matcher.Run(lowercased, maxAlternatives) {
			matches = append(matches, EntityMatch[T]{
				Value:                     alignment.SubstringWithCharRange(sentence, parsed.Range),
				ResolvedValue:             parsed.ResolvedValue,
				AlternativeResolvedValues: parsed.Alternatives,
				Range:                     parsed.Range,
				EntityIdentifier:          ep.identifier,
			})
		}
	}
	return matches
}

// ExtendGazetteerEntity prepends values to the vocabulary of the matcher of
// identifier, so that they win over existing values matching equally well.
func (p *Parser[T]) ExtendGazetteerEntity(identifier T, values []model.EntityValue) error {
	for _, ep := range p.parsers {
		if ep.identifier == identifier {
			ep.matcher.PrependValues(values)
			return nil
		}
	}
	return helper.UnsupportedOperationError("no gazetteer parser for entity %q", identifier.Identifier())
}

// Supports reports whether p has an entity parser for identifier.
func (p *Parser[T]) Supports(identifier T) bool {
	for _, ep := range p.parsers {
		if ep.identifier == identifier {
			return true
		}
	}
	return false
}

// ExtractBuiltinEntities extracts the builtin gazetteer entities of sentence.
func ExtractBuiltinEntities(p *Parser[ontology.GazetteerEntityKind], sentence string, filter []ontology.GazetteerEntityKind, maxAlternatives int) []model.BuiltinEntity {
	matches := p.ExtractEntities(sentence, filter, maxAlternatives)
	entities := make([]model.BuiltinEntity, 0, len(matches))
	for _, m := range matches {
		kind := m.EntityIdentifier
		entities = append(entities, model.BuiltinEntity{
			Value:        m.Value,
			Range:        m.Range,
			Entity:       conversion.GazetteerSlotValue(kind, m.ResolvedValue),
			Alternatives: conversion.GazetteerAlternatives(kind, m.AlternativeResolvedValues),
			EntityKind:   kind.BuiltinKind(),
		})
	}
	return entities
}
