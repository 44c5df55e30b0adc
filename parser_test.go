package nluparsers

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/siherrmann/nluparsers/core/grammar"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referenceTime = time.Date(2013, time.February, 12, 4, 30, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(helper.NewPrettyHandler(io.Discard, helper.PrettyHandlerOptions{}))
}

func newTestParser(t *testing.T, language ontology.Language, gazetteerPath *string, opts ...Option) *BuiltinEntityParser {
	t.Helper()
	opts = append([]Option{WithLogger(testLogger()), WithReferenceTime(referenceTime)}, opts...)
	parser, err := NewBuiltinEntityParser(model.BuiltinEntityParserConfig{
		Language:            language,
		GazetteerParserPath: gazetteerPath,
	}, opts...)
	require.NoError(t, err)
	return parser
}

func gazetteerPath() *string {
	path := filepath.Join("testdata", "builtin_gazetteer_parser")
	return &path
}

func entityKinds(entities []model.BuiltinEntity) []ontology.BuiltinEntityKind {
	kinds := []ontology.BuiltinEntityKind{}
	for _, e := range entities {
		kinds = append(kinds, e.EntityKind)
	}
	return kinds
}

// recordingEngine returns fixed matches and records its calls.
type recordingEngine struct {
	matches   []grammar.Match
	err       error
	sentences []string
	calls     [][]grammar.OutputKind
}

func (e *recordingEngine) Parse(sentence string, kinds []grammar.OutputKind) ([]grammar.Match, error) {
	e.sentences = append(e.sentences, sentence)
	e.calls = append(e.calls, kinds)
	return e.matches, e.err
}

func TestNewBuiltinEntityParser(t *testing.T) {
	t.Run("Grammar kinds follow engine priority", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, nil)

		assert.Equal(t, []ontology.BuiltinEntityKind{
			ontology.KindNumber,
			ontology.KindOrdinal,
			ontology.KindDuration,
			ontology.KindDatetime,
			ontology.KindDate,
			ontology.KindTime,
			ontology.KindDatePeriod,
			ontology.KindTimePeriod,
			ontology.KindAmountOfMoney,
			ontology.KindTemperature,
			ontology.KindPercentage,
		}, parser.GrammarEntityKinds())
		assert.Nil(t, parser.GazetteerEntityKinds())
	})

	t.Run("Unsupported kinds are left out", func(t *testing.T) {
		parser := newTestParser(t, ontology.KO, nil)

		assert.Equal(t, []ontology.BuiltinEntityKind{
			ontology.KindNumber,
			ontology.KindOrdinal,
			ontology.KindDuration,
			ontology.KindDatetime,
			ontology.KindAmountOfMoney,
			ontology.KindTemperature,
		}, parser.GrammarEntityKinds())
	})

	t.Run("Every language builds", func(t *testing.T) {
		for _, language := range ontology.AllLanguages() {
			parser := newTestParser(t, language, nil)
			assert.Equal(t, language, parser.Language())
		}
	})

	t.Run("Unknown language", func(t *testing.T) {
		_, err := NewBuiltinEntityParser(model.BuiltinEntityParserConfig{Language: ontology.Language(42)}, WithLogger(testLogger()))

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Missing gazetteer directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")
		_, err := NewBuiltinEntityParser(model.BuiltinEntityParserConfig{Language: ontology.EN, GazetteerParserPath: &path}, WithLogger(testLogger()))

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Gazetteer kinds", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		assert.Equal(t, []ontology.GazetteerEntityKind{ontology.GazetteerMusicArtist, ontology.GazetteerMusicTrack}, parser.GazetteerEntityKinds())
	})
}

func TestExtract(t *testing.T) {
	parser := newTestParser(t, ontology.EN, nil)

	tests := []struct {
		name     string
		sentence string
		scope    []ontology.BuiltinEntityKind
		expected []ontology.BuiltinEntityKind
	}{
		{"Number then date", "Book me a restaurant for two people tomorrow", nil, []ontology.BuiltinEntityKind{ontology.KindNumber, ontology.KindDate}},
		{"Date as datetime", "Book me a restaurant for tomorrow", []ontology.BuiltinEntityKind{ontology.KindDatetime}, []ontology.BuiltinEntityKind{ontology.KindDatetime}},
		{"Date and time", "Book me a restaurant for tomorrow at 8pm", nil, []ontology.BuiltinEntityKind{ontology.KindDatetime}},
		{"Date only", "Book me a restaurant for tomorrow", []ontology.BuiltinEntityKind{ontology.KindDate}, []ontology.BuiltinEntityKind{ontology.KindDate}},
		{"Time period", "Book the meeting room from 10am to 11am", nil, []ontology.BuiltinEntityKind{ontology.KindTimePeriod}},
		{"Time period as times", "Book the meeting room from 10am to 11am", []ontology.BuiltinEntityKind{ontology.KindTime}, []ontology.BuiltinEntityKind{ontology.KindTime, ontology.KindTime}},
		{"Duration", "The weather during two weeks", nil, []ontology.BuiltinEntityKind{ontology.KindDuration}},
		{"Percentage", "Set light to ten percents", nil, []ontology.BuiltinEntityKind{ontology.KindPercentage}},
		{"Amount of money", "I would like to do a bank transfer of ten euros for my friends", nil, []ontology.BuiltinEntityKind{ontology.KindAmountOfMoney}},
		{"Empty scope", "tomorrow morning", []ontology.BuiltinEntityKind{}, []ontology.BuiltinEntityKind{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entities := parser.Extract(tt.sentence, tt.scope)

			assert.Equal(t, tt.expected, entityKinds(entities))
		})
	}

	t.Run("Values and ranges index the original sentence", func(t *testing.T) {
		entities := parser.Extract("Book me a restaurant for TWO people Tomorrow", nil)

		require.Len(t, entities, 2)
		assert.Equal(t, "TWO", entities[0].Value)
		assert.Equal(t, model.Range{Start: 25, End: 28}, entities[0].Range)
		assert.Equal(t, model.NumberValue{Value: 2}, entities[0].Entity)
		assert.Equal(t, "Tomorrow", entities[1].Value)
		assert.Equal(t, model.Range{Start: 36, End: 44}, entities[1].Range)
		assert.Equal(t, model.InstantTimeValue{
			Value:     "2013-02-13 00:00:00 +00:00",
			Grain:     model.GrainDay,
			Precision: model.PrecisionExact,
		}, entities[1].Entity)
	})

	t.Run("Nil scope equals every supported kind", func(t *testing.T) {
		sentence := "Book me a restaurant for two people tomorrow"

		assert.Equal(t, parser.Extract(sentence, nil), parser.Extract(sentence, ontology.SupportedEntityKinds(ontology.EN)))
	})
}

func TestExtractGrammarEngine(t *testing.T) {
	t.Run("Engine receives the lowercased sentence and kinds in priority order", func(t *testing.T) {
		engine := &recordingEngine{}
		parser := newTestParser(t, ontology.EN, nil, WithGrammarEngine(engine))

		parser.Extract("Hello", []ontology.BuiltinEntityKind{ontology.KindPercentage, ontology.KindNumber, ontology.KindMusicArtist})

		require.Len(t, engine.calls, 1)
		assert.Equal(t, []string{"hello"}, engine.sentences)
		assert.Equal(t, []grammar.OutputKind{grammar.KindNumber, grammar.KindPercentage}, engine.calls[0])
	})

	t.Run("Engine is not invoked without grammar kinds", func(t *testing.T) {
		engine := &recordingEngine{}
		parser := newTestParser(t, ontology.EN, nil, WithGrammarEngine(engine))

		parser.Extract("Hello", []ontology.BuiltinEntityKind{})
		parser.Extract("Hello", []ontology.BuiltinEntityKind{ontology.KindMusicArtist})

		assert.Empty(t, engine.calls)
	})

	t.Run("Engine failure yields no grammar entities", func(t *testing.T) {
		engine := &recordingEngine{err: errors.New("cannot parse")}
		parser := newTestParser(t, ontology.EN, gazetteerPath(), WithGrammarEngine(engine))

		entities := parser.Extract("play the rolling stones", nil)

		require.Len(t, entities, 1)
		assert.Equal(t, ontology.KindMusicArtist, entities[0].EntityKind)
	})

	t.Run("Grammar entities are sorted and gazetteer entities appended", func(t *testing.T) {
		engine := &recordingEngine{matches: []grammar.Match{
			{ByteRange: grammar.Range{Start: 24, End: 29}, CharRange: grammar.Range{Start: 24, End: 29}, Value: grammar.IntegerOutput{Value: 3}},
			{ByteRange: grammar.Range{Start: 0, End: 4}, CharRange: grammar.Range{Start: 0, End: 4}, Value: grammar.IntegerOutput{Value: 1}},
		}}
		parser := newTestParser(t, ontology.EN, gazetteerPath(), WithGrammarEngine(engine))

		entities := parser.Extract("play the rolling stones three times", nil)

		require.Len(t, entities, 3)
		assert.Equal(t, model.Range{Start: 0, End: 4}, entities[0].Range)
		assert.Equal(t, model.Range{Start: 24, End: 29}, entities[1].Range)
		assert.Equal(t, "three", entities[1].Value)
		assert.Equal(t, ontology.KindMusicArtist, entities[2].EntityKind)
		assert.Equal(t, model.Range{Start: 5, End: 23}, entities[2].Range)
	})
}

func TestExtractFromIdentifiers(t *testing.T) {
	parser := newTestParser(t, ontology.EN, nil)

	t.Run("Known identifiers", func(t *testing.T) {
		entities, err := parser.ExtractFromIdentifiers("Book me a restaurant for two people tomorrow", []string{"snips/number"})

		require.NoError(t, err)
		assert.Equal(t, []ontology.BuiltinEntityKind{ontology.KindNumber}, entityKinds(entities))
	})

	t.Run("Unknown identifier", func(t *testing.T) {
		_, err := parser.ExtractFromIdentifiers("two", []string{"snips/unknown"})

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})
}

func TestExtractGazetteerEntities(t *testing.T) {
	parser := newTestParser(t, ontology.FR, gazetteerPath())

	t.Run("Above threshold", func(t *testing.T) {
		entities := parser.Extract("Je voudrais écouter the stones s'il vous plaît", nil)

		assert.Equal(t, []model.BuiltinEntity{{
			Value:        "the stones",
			Range:        model.Range{Start: 20, End: 30},
			Entity:       model.MusicArtistValue{Value: "The Rolling Stones"},
			Alternatives: []model.SlotValue{},
			EntityKind:   ontology.KindMusicArtist,
		}}, entities)
	})

	t.Run("Below threshold", func(t *testing.T) {
		entities := parser.Extract("Je voudrais écouter les stones", nil)

		assert.Empty(t, entities)
	})

	t.Run("Scope filters gazetteer kinds", func(t *testing.T) {
		entities := parser.Extract("Je voudrais écouter the stones", []ontology.BuiltinEntityKind{ontology.KindMusicTrack, ontology.KindNumber})

		assert.Empty(t, entities)
	})
}

func TestExtendGazetteerEntity(t *testing.T) {
	values := []model.EntityValue{{RawValue: "my extended artist", ResolvedValue: "My resolved extended artist"}}

	t.Run("Extended value is extracted", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		err := parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, values)
		require.NoError(t, err)
		entities := parser.Extract("I want to listen to my extended artist please", nil)

		assert.Equal(t, []model.BuiltinEntity{{
			Value:        "my extended artist",
			Range:        model.Range{Start: 20, End: 38},
			Entity:       model.MusicArtistValue{Value: "My resolved extended artist"},
			Alternatives: []model.SlotValue{},
			EntityKind:   ontology.KindMusicArtist,
		}}, entities)
	})

	t.Run("Concurrent extraction and extension", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())
		scope := []ontology.BuiltinEntityKind{ontology.KindMusicArtist}

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				assert.NoError(t, parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, values))
			}()
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					for _, entity := range parser.Extract("play my extended artist", scope) {
						assert.Equal(t, model.MusicArtistValue{Value: "My resolved extended artist"}, entity.Entity)
					}
				}
			}()
		}
		wg.Wait()

		entities := parser.Extract("play my extended artist", scope)
		require.Len(t, entities, 1)
		assert.Equal(t, "my extended artist", entities[0].Value)
		assert.Equal(t, model.MusicArtistValue{Value: "My resolved extended artist"}, entities[0].Entity)
	})

	t.Run("Extended value wins over an existing one", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		err := parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, []model.EntityValue{
			{RawValue: "the rolling stones", ResolvedValue: "Stones"},
		})
		require.NoError(t, err)
		entities := parser.Extract("the rolling stones", []ontology.BuiltinEntityKind{ontology.KindMusicArtist})

		require.Len(t, entities, 1)
		assert.Equal(t, model.MusicArtistValue{Value: "Stones"}, entities[0].Entity)
		assert.Equal(t, []model.SlotValue{model.MusicArtistValue{Value: "The Rolling Stones"}}, entities[0].Alternatives)
	})

	t.Run("No gazetteer parser", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, nil)

		err := parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, values)

		assert.ErrorIs(t, err, helper.ErrUnsupportedOperation)
	})

	t.Run("No gazetteer parser for kind", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		err := parser.ExtendGazetteerEntity(ontology.GazetteerCity, values)

		assert.ErrorIs(t, err, helper.ErrUnsupportedOperation)
	})

	t.Run("Empty values on a configured kind", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		err := parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, nil)

		assert.NoError(t, err)
	})

	t.Run("Empty values on an unconfigured kind", func(t *testing.T) {
		parser := newTestParser(t, ontology.EN, gazetteerPath())

		err := parser.ExtendGazetteerEntity(ontology.GazetteerCity, nil)

		assert.ErrorIs(t, err, helper.ErrUnsupportedOperation)
	})
}

func TestExtractWithMaxAlternatives(t *testing.T) {
	parser := newTestParser(t, ontology.FR, gazetteerPath())
	require.NoError(t, parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, []model.EntityValue{
		{RawValue: "the crying stones", ResolvedValue: "The Crying Stones"},
	}))
	sentence := "Je voudrais écouter the stones"
	scope := []ontology.BuiltinEntityKind{ontology.KindMusicArtist}

	t.Run("Default cap keeps alternatives", func(t *testing.T) {
		entities := parser.Extract(sentence, scope)

		require.Len(t, entities, 1)
		assert.Equal(t, model.MusicArtistValue{Value: "The Crying Stones"}, entities[0].Entity)
		assert.Equal(t, []model.SlotValue{model.MusicArtistValue{Value: "The Rolling Stones"}}, entities[0].Alternatives)
	})

	t.Run("Zero cap drops alternatives", func(t *testing.T) {
		entities := parser.ExtractWithMaxAlternatives(sentence, scope, 0)

		require.Len(t, entities, 1)
		assert.Equal(t, model.MusicArtistValue{Value: "The Crying Stones"}, entities[0].Entity)
		assert.Empty(t, entities[0].Alternatives)
	})
}

func TestExtractNonSpaceSeparated(t *testing.T) {
	parser := newTestParser(t, ontology.JA, nil)

	t.Run("Entity is mapped to the original sentence", func(t *testing.T) {
		sentence := " の カリフォル  二 千 十三 年二 月十 日  ニア州の天気予報は？"

		entities := parser.Extract(sentence, nil)

		require.Len(t, entities, 1)
		entity := entities[0]
		assert.Equal(t, "二 千 十三 年二 月十 日", entity.Value)
		assert.Equal(t, model.Range{Start: 10, End: 24}, entity.Range)
		assert.Equal(t, ontology.KindDatetime, entity.EntityKind)
		assert.Equal(t, model.InstantTimeValue{
			Value:     "2013-02-10 00:00:00 +00:00",
			Grain:     model.GrainDay,
			Precision: model.PrecisionExact,
		}, entity.Entity)

		runes := []rune(sentence)
		assert.Equal(t, entity.Value, string(runes[entity.Range.Start:entity.Range.End]))
		assert.LessOrEqual(t, entity.Range.End, utf8.RuneCountInString(sentence))
	})

	t.Run("Entity ending inside a token is dropped", func(t *testing.T) {
		entities := parser.Extract("二 千 十三 年二 月十 日の カリフォルニア州の天気予報は？", nil)

		assert.Empty(t, entities)
	})

	t.Run("Whitespace only sentence", func(t *testing.T) {
		engine := &recordingEngine{}
		parser := newTestParser(t, ontology.JA, nil, WithGrammarEngine(engine))

		assert.Empty(t, parser.Extract(" 　 ", nil))
		assert.Empty(t, engine.calls)
	})
}

func TestPersist(t *testing.T) {
	t.Run("Round trip without gazetteer", func(t *testing.T) {
		parser := newTestParser(t, ontology.FR, nil)
		dir := filepath.Join(t.TempDir(), "builtin_entity_parser")

		require.NoError(t, parser.Persist(dir))
		loaded, err := FromPath(dir, WithLogger(testLogger()))

		require.NoError(t, err)
		assert.Equal(t, parser.Language(), loaded.Language())
		assert.Equal(t, parser.GrammarEntityKinds(), loaded.GrammarEntityKinds())
		assert.Nil(t, loaded.GazetteerEntityKinds())
		assert.NoDirExists(t, filepath.Join(dir, gazetteerParserDirectory))
	})

	t.Run("Round trip with gazetteer", func(t *testing.T) {
		parser := newTestParser(t, ontology.FR, gazetteerPath())
		require.NoError(t, parser.ExtendGazetteerEntity(ontology.GazetteerMusicArtist, []model.EntityValue{
			{RawValue: "my extended artist", ResolvedValue: "My resolved extended artist"},
		}))
		dir := filepath.Join(t.TempDir(), "builtin_entity_parser")

		require.NoError(t, parser.Persist(dir))
		loaded, err := FromPath(dir, WithLogger(testLogger()))

		require.NoError(t, err)
		assert.Equal(t, parser.GrammarEntityKinds(), loaded.GrammarEntityKinds())
		assert.Equal(t, parser.GazetteerEntityKinds(), loaded.GazetteerEntityKinds())
		assert.FileExists(t, filepath.Join(dir, gazetteerParserDirectory, "parser_1", "entity_parser.json"))

		entities := loaded.Extract("écouter my extended artist", []ontology.BuiltinEntityKind{ontology.KindMusicArtist})
		require.Len(t, entities, 1)
		assert.Equal(t, model.MusicArtistValue{Value: "My resolved extended artist"}, entities[0].Entity)
	})

	t.Run("Existing directory", func(t *testing.T) {
		parser := newTestParser(t, ontology.FR, nil)

		err := parser.Persist(t.TempDir())

		assert.ErrorIs(t, err, helper.ErrIO)
	})
}

func TestFromPath(t *testing.T) {
	t.Run("Persisted parser", func(t *testing.T) {
		parser, err := FromPath(filepath.Join("testdata", "builtin_entity_parser"), WithLogger(testLogger()))

		require.NoError(t, err)
		assert.Equal(t, ontology.FR, parser.Language())
		assert.Equal(t, []ontology.GazetteerEntityKind{ontology.GazetteerMusicArtist, ontology.GazetteerMusicTrack}, parser.GazetteerEntityKinds())
	})

	t.Run("Missing metadata", func(t *testing.T) {
		_, err := FromPath(t.TempDir(), WithLogger(testLogger()))

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Unknown language", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(`{"language": "xx", "gazetteer_parser": null}`), 0o644))

		_, err := FromPath(dir, WithLogger(testLogger()))

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})

	t.Run("Missing gazetteer directory", func(t *testing.T) {
		dir := t.TempDir()
		metadata := `{"language": "en", "gazetteer_parser": "gazetteer_entity_parser"}`
		require.NoError(t, os.WriteFile(filepath.Join(dir, "metadata.json"), []byte(metadata), 0o644))

		_, err := FromPath(dir, WithLogger(testLogger()))

		assert.ErrorIs(t, err, helper.ErrConfiguration)
	})
}
