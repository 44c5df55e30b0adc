package conversion

import (
	"fmt"

	"github.com/siherrmann/nluparsers/core/alignment"
	"github.com/siherrmann/nluparsers/core/grammar"
	"github.com/siherrmann/nluparsers/helper"
	"github.com/siherrmann/nluparsers/model"
	"github.com/siherrmann/nluparsers/ontology"
)

var builtinKinds = map[grammar.OutputKind]ontology.BuiltinEntityKind{
	grammar.KindNumber:        ontology.KindNumber,
	grammar.KindOrdinal:       ontology.KindOrdinal,
	grammar.KindDuration:      ontology.KindDuration,
	grammar.KindDatetime:      ontology.KindDatetime,
	grammar.KindDate:          ontology.KindDate,
	grammar.KindTime:          ontology.KindTime,
	grammar.KindDatePeriod:    ontology.KindDatePeriod,
	grammar.KindTimePeriod:    ontology.KindTimePeriod,
	grammar.KindAmountOfMoney: ontology.KindAmountOfMoney,
	grammar.KindTemperature:   ontology.KindTemperature,
	grammar.KindPercentage:    ontology.KindPercentage,
}

var outputKinds = func() map[ontology.BuiltinEntityKind]grammar.OutputKind {
	m := make(map[ontology.BuiltinEntityKind]grammar.OutputKind, len(builtinKinds))
	for output, builtin := range builtinKinds {
		m[builtin] = output
	}
	return m
}()

// BuiltinKindFromOutputKind maps a grammar output kind to its entity kind.
func BuiltinKindFromOutputKind(kind grammar.OutputKind) ontology.BuiltinEntityKind {
	builtin, ok := builtinKinds[kind]
	if !ok {
		panic(fmt.Sprintf("unknown grammar output kind %v", kind))
	}
	return builtin
}

// OutputKindFromBuiltinKind maps a grammar entity kind to the output kind of
// the engine. Gazetteer kinds have no output kind.
func OutputKindFromBuiltinKind(kind ontology.BuiltinEntityKind) (grammar.OutputKind, error) {
	output, ok := outputKinds[kind]
	if !ok {
		return 0, helper.UnsupportedOperationError("%v is not resolved by the grammar engine", kind)
	}
	return output, nil
}

// GrammarLang returns the grammar language used for a language. Both
// Portuguese variants share one grammar.
func GrammarLang(language ontology.Language) (grammar.Lang, error) {
	switch language {
	case ontology.DE:
		return grammar.DE, nil
	case ontology.EN:
		return grammar.EN, nil
	case ontology.ES:
		return grammar.ES, nil
	case ontology.FR:
		return grammar.FR, nil
	case ontology.IT:
		return grammar.IT, nil
	case ontology.JA:
		return grammar.JA, nil
	case ontology.KO:
		return grammar.KO, nil
	case ontology.PT_BR, ontology.PT_PT:
		return grammar.PT, nil
	default:
		return 0, helper.ConfigurationError("no grammar for language %v", language)
	}
}

func grain(g grammar.Grain) model.Grain {
	switch g {
	case grammar.GrainYear:
		return model.GrainYear
	case grammar.GrainQuarter:
		return model.GrainQuarter
	case grammar.GrainMonth:
		return model.GrainMonth
	case grammar.GrainWeek:
		return model.GrainWeek
	case grammar.GrainDay:
		return model.GrainDay
	case grammar.GrainHour:
		return model.GrainHour
	case grammar.GrainMinute:
		return model.GrainMinute
	default:
		return model.GrainSecond
	}
}

func precision(p grammar.Precision) model.Precision {
	if p == grammar.Approximate {
		return model.PrecisionApproximate
	}
	return model.PrecisionExact
}

func duration(d grammar.DurationOutput) model.DurationValue {
	value := model.DurationValue{Precision: precision(d.Precision)}
	for _, c := range d.Period {
		switch c.Grain {
		case grammar.GrainYear:
			value.Years += c.Quantity
		case grammar.GrainQuarter:
			value.Quarters += c.Quantity
		case grammar.GrainMonth:
			value.Months += c.Quantity
		case grammar.GrainWeek:
			value.Weeks += c.Quantity
		case grammar.GrainDay:
			value.Days += c.Quantity
		case grammar.GrainHour:
			value.Hours += c.Quantity
		case grammar.GrainMinute:
			value.Minutes += c.Quantity
		case grammar.GrainSecond:
			value.Seconds += c.Quantity
		}
	}
	return value
}

func interval(i grammar.DatetimeIntervalOutput) model.TimeIntervalValue {
	from := i.From.Format(grammar.MomentLayout)
	to := i.To.Format(grammar.MomentLayout)
	switch i.Interval {
	case grammar.IntervalAfter:
		return model.TimeIntervalValue{From: &from}
	case grammar.IntervalBefore:
		return model.TimeIntervalValue{To: &to}
	default:
		return model.TimeIntervalValue{From: &from, To: &to}
	}
}

// SlotValueFromOutput converts a value resolved by the grammar engine.
func SlotValueFromOutput(output grammar.Output) model.SlotValue {
	switch v := output.(type) {
	case grammar.IntegerOutput:
		return model.NumberValue{Value: float64(v.Value)}
	case grammar.FloatOutput:
		return model.NumberValue{Value: v.Value}
	case grammar.OrdinalOutput:
		return model.OrdinalValue{Value: v.Value}
	case grammar.PercentageOutput:
		return model.PercentageValue{Value: v.Value}
	case grammar.AmountOfMoneyOutput:
		return model.AmountOfMoneyValue{
			Value:     float32(v.Value),
			Precision: precision(v.Precision),
			Unit:      v.Unit,
		}
	case grammar.TemperatureOutput:
		return model.TemperatureValue{Value: float32(v.Value), Unit: v.Unit}
	case grammar.DurationOutput:
		return duration(v)
	case grammar.DatetimeOutput:
		return model.InstantTimeValue{
			Value:     v.Moment.Format(grammar.MomentLayout),
			Grain:     grain(v.Grain),
			Precision: precision(v.Precision),
		}
	case grammar.DatetimeIntervalOutput:
		return interval(v)
	default:
		panic(fmt.Sprintf("unknown grammar output %T", output))
	}
}

// GazetteerSlotValue wraps the resolved value of a gazetteer match.
func GazetteerSlotValue(kind ontology.GazetteerEntityKind, resolved string) model.SlotValue {
	switch kind {
	case ontology.GazetteerMusicAlbum:
		return model.MusicAlbumValue{Value: resolved}
	case ontology.GazetteerMusicArtist:
		return model.MusicArtistValue{Value: resolved}
	case ontology.GazetteerMusicTrack:
		return model.MusicTrackValue{Value: resolved}
	case ontology.GazetteerCity:
		return model.CityValue{Value: resolved}
	case ontology.GazetteerCountry:
		return model.CountryValue{Value: resolved}
	case ontology.GazetteerRegion:
		return model.RegionValue{Value: resolved}
	default:
		panic(fmt.Sprintf("unknown gazetteer entity kind %v", kind))
	}
}

// GazetteerAlternatives wraps ranked alternative resolutions.
func GazetteerAlternatives(kind ontology.GazetteerEntityKind, resolved []string) []model.SlotValue {
	alternatives := make([]model.SlotValue, 0, len(resolved))
	for _, value := range resolved {
		alternatives = append(alternatives, GazetteerSlotValue(kind, value))
	}
	return alternatives
}

// GrammarMatchToBuiltin builds the entity of a grammar match. The value is
// taken from sentence by character range, so the engine may have run on a
// lowercased copy of it. The grammar engine yields no alternatives.
func GrammarMatchToBuiltin(sentence string, match grammar.Match) model.BuiltinEntity {
	r := model.Range{Start: match.CharRange.Start, End: match.CharRange.End}
	return model.BuiltinEntity{
		Value:        alignment.SubstringWithCharRange(sentence, r),
		Range:        r,
		Entity:       SlotValueFromOutput(match.Value),
		Alternatives: []model.SlotValue{},
		EntityKind:   BuiltinKindFromOutputKind(match.Value.OutputKind()),
	}
}
