package nluparsers

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/siherrmann/nluparsers/core/alignment"
	"github.com/siherrmann/nluparsers/core/conversion"
	"github.com/siherrmann/nluparsers/core/gazetteer"
	"github.com/siherrmann/nluparsers/core/grammar"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

// DefaultMaxAlternativeResolvedValues caps the alternatives of gazetteer
// entities returned by Extract.
const DefaultMaxAlternativeResolvedValues = 5

// Languages whose sentences are realigned on whitespace free text before
// extraction.
var nonSpaceSeparatedLanguages = map[ontology.Language]bool{
	ontology.JA: true,
}

// BuiltinEntityParser extracts grammar and gazetteer entities of one language.
type BuiltinEntityParser struct {
	language     ontology.Language
	engine       grammar.Engine
	grammarKinds []ontology.BuiltinEntityKind
	gazetteer    *gazetteer.Parser[ontology.GazetteerEntityKind]
	// Guards the gazetteer vocabularies
	mu sync.RWMutex
	// Logging
	log *slog.Logger
}

type options struct {
	logger        *slog.Logger
	engine        grammar.Engine
	referenceTime *time.Time
}

// Option configures a BuiltinEntityParser.
type Option func(*options)

// WithLogger sets the logger of the parser.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGrammarEngine replaces the rule based grammar engine.
func WithGrammarEngine(engine grammar.Engine) Option {
	return func(o *options) {
		o.engine = engine
	}
}

// WithReferenceTime fixes the time relative dates are resolved from.
// It has no effect together with WithGrammarEngine.
func WithReferenceTime(t time.Time) Option {
	return func(o *options) {
		o.referenceTime = &t
	}
}

// NewBuiltinEntityParser builds the grammar engine of the configured language
// and loads the gazetteer parser found at GazetteerParserPath, if any.
func NewBuiltinEntityParser(config model.BuiltinEntityParserConfig, opts ...Option) (*BuiltinEntityParser, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		handlerOpts := helper.PrettyHandlerOptions{
			SlogOpts: slog.HandlerOptions{
				Level: slog.LevelInfo,
			},
		}
		o.logger = slog.New(helper.NewPrettyHandler(os.Stdout, handlerOpts))
	}

	if !slices.Contains(ontology.AllLanguages(), config.Language) {
		return nil, helper.ConfigurationError("unknown language %v", config.Language)
	}

	engine := o.engine
	if engine == nil {
		lang, err := conversion.GrammarLang(config.Language)
		if err != nil {
			return nil, helper.NewError("grammar language", err)
		}
		var grammarOpts []grammar.Option
		if o.referenceTime != nil {
			grammarOpts = append(grammarOpts, grammar.WithReferenceTime(*o.referenceTime))
		}
		ruleEngine, err := grammar.Build(lang, grammarOpts...)
		if err != nil {
			return nil, helper.ConfigurationError("cannot build grammar engine for language %v: %v", config.Language, err)
		}
		engine = ruleEngine
	}

	p := &BuiltinEntityParser{
		language:     config.Language,
		engine:       engine,
		grammarKinds: orderedGrammarKinds(config.Language),
		log:          o.logger,
	}

	if config.GazetteerParserPath != nil {
		gazetteerParser, err := gazetteer.FromPath(*config.GazetteerParserPath, gazetteer.ParseGazetteerEntityKind)
		if err != nil {
			return nil, helper.NewError("load gazetteer parser", err)
		}
		p.gazetteer = gazetteerParser
	}

	p.log.Debug("Initialized BuiltinEntityParser",
		slog.String("language", p.language.String()),
		slog.Int("grammar_kinds", len(p.grammarKinds)),
		slog.Bool("gazetteer", p.gazetteer != nil),
	)

	return p, nil
}

// orderedGrammarKinds returns the grammar kinds supported by the language,
// in the priority order of the grammar engine.
func orderedGrammarKinds(language ontology.Language) []ontology.BuiltinEntityKind {
	var kinds []ontology.BuiltinEntityKind
	for _, outputKind := range grammar.AllOutputKinds() {
		kind := conversion.BuiltinKindFromOutputKind(outputKind)
		if kind.Supports(language) {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// Language returns the language of the parser.
func (p *BuiltinEntityParser) Language() ontology.Language {
	return p.language
}

// GrammarEntityKinds returns the grammar kinds extracted by the parser, in
// priority order.
func (p *BuiltinEntityParser) GrammarEntityKinds() []ontology.BuiltinEntityKind {
	return slices.Clone(p.grammarKinds)
}

// GazetteerEntityKinds returns the gazetteer kinds extracted by the parser,
// or nil when it has no gazetteer parser.
func (p *BuiltinEntityParser) GazetteerEntityKinds() []ontology.GazetteerEntityKind {
	if p.gazetteer == nil {
		return nil
	}
	return p.gazetteer.Identifiers()
}

// Extract returns the entities of sentence whose kind is in scope. A nil
// scope extracts every kind, an empty one nothing. Grammar entities come
// first, ordered by position, followed by the gazetteer entities of each
// gazetteer kind in turn.
func (p *BuiltinEntityParser) Extract(sentence string, scope []ontology.BuiltinEntityKind) []model.BuiltinEntity {
	return p.ExtractWithMaxAlternatives(sentence, scope, DefaultMaxAlternativeResolvedValues)
}

// ExtractWithMaxAlternatives is Extract with a custom cap on the alternative
// resolutions of gazetteer entities.
func (p *BuiltinEntityParser) ExtractWithMaxAlternatives(sentence string, scope []ontology.BuiltinEntityKind, maxAlternatives int) []model.BuiltinEntity {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if nonSpaceSeparatedLanguages[p.language] {
		return p.extractNonSpaceSeparated(sentence, scope, maxAlternatives)
	}
	return p.extract(sentence, scope, maxAlternatives)
}

// ExtractFromIdentifiers is Extract with a scope of "snips/..." identifiers.
func (p *BuiltinEntityParser) ExtractFromIdentifiers(sentence string, identifiers []string) ([]model.BuiltinEntity, error) {
	var scope []ontology.BuiltinEntityKind
	if identifiers != nil {
		kinds, err := ontology.FromIdentifiers(identifiers)
		if err != nil {
			return nil, helper.NewError("parse scope", err)
		}
		scope = kinds
	}
	return p.Extract(sentence, scope), nil
}

func (p *BuiltinEntityParser) extract(sentence string, scope []ontology.BuiltinEntityKind, maxAlternatives int) []model.BuiltinEntity {
	entities := p.extractGrammarEntities(sentence, scope)

	if p.gazetteer != nil {
		var filter []ontology.GazetteerEntityKind
		if scope != nil {
			filter = []ontology.GazetteerEntityKind{}
			for _, kind := range scope {
				if gazetteerKind, ok := kind.TryIntoGazetteerKind(); ok {
					filter = append(filter, gazetteerKind)
				}
			}
		}
		entities = append(entities, gazetteer.ExtractBuiltinEntities(p.gazetteer, sentence, filter, maxAlternatives)...)
	}
	return entities
}

func (p *BuiltinEntityParser) extractGrammarEntities(sentence string, scope []ontology.BuiltinEntityKind) []model.BuiltinEntity {
	var outputKinds []grammar.OutputKind
	for _, kind := range p.grammarKinds {
		if scope != nil && !slices.Contains(scope, kind) {
			continue
		}
		outputKind, err := conversion.OutputKindFromBuiltinKind(kind)
		if err != nil {
			continue
		}
		outputKinds = append(outputKinds, outputKind)
	}

	entities := []model.BuiltinEntity{}
	if len(outputKinds) == 0 {
		return entities
	}

	matches, err := p.engine.Parse(strings.ToLower(sentence), outputKinds)
	if err != nil {
		p.log.Debug("Grammar engine found no matches", slog.String("error", err.Error()))
		return entities
	}
	for _, match := range matches {
		entities = append(entities, conversion.GrammarMatchToBuiltin(sentence, match))
	}
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Range.Start < entities[j].Range.Start
	})
	return entities
}

// extractNonSpaceSeparated extracts on the sentence stripped of whitespace and
// maps the entities back. Entities not starting and ending on a token
// boundary of the original sentence are dropped.
func (p *BuiltinEntityParser) extractNonSpaceSeparated(sentence string, scope []ontology.BuiltinEntityKind, maxAlternatives int) []model.BuiltinEntity {
	a := alignment.New(sentence)
	if a.IsEmpty() {
		return []model.BuiltinEntity{}
	}

	entities := []model.BuiltinEntity{}
	for _, entity := range p.extract(a.Joined(), scope, maxAlternatives) {
		value, r, ok := a.ToOriginal(entity.Range)
		if !ok {
			continue
		}
		entity.Value = value
		entity.Range = r
		entities = append(entities, entity)
	}
	return entities
}

// ExtendGazetteerEntity adds values to the vocabulary of a gazetteer kind.
// They take priority over existing values matching equally well.
func (p *BuiltinEntityParser) ExtendGazetteerEntity(kind ontology.GazetteerEntityKind, values []model.EntityValue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.gazetteer == nil {
		return helper.UnsupportedOperationError("no gazetteer parser for kind %v", kind)
	}
	if err := p.gazetteer.ExtendGazetteerEntity(kind, values); err != nil {
		return helper.NewError(fmt.Sprintf("extend %v", kind), err)
	}

	p.log.Debug("Extended gazetteer entity", slog.String("kind", kind.Identifier()), slog.Int("values", len(values)))
	return nil
}

// checkExtendable returns the error ExtendGazetteerEntity would return for
// kind, without extending anything.
func (p *BuiltinEntityParser) checkExtendable(kind ontology.GazetteerEntityKind) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.gazetteer == nil {
		return helper.UnsupportedOperationError("no gazetteer parser for kind %v", kind)
	}
	if !p.gazetteer.Supports(kind) {
		return helper.NewError(fmt.Sprintf("extend %v", kind), helper.UnsupportedOperationError("no gazetteer parser for entity %q", kind.Identifier()))
	}
	return nil
}
