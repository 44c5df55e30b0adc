package grammar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tuesday
var referenceTime = time.Date(2013, time.February, 12, 4, 30, 0, 0, time.UTC)

func day(month time.Month, d int) time.Time {
	return time.Date(2013, month, d, 0, 0, 0, 0, time.UTC)
}

func at(month time.Month, d, hour, minute int) time.Time {
	return time.Date(2013, month, d, hour, minute, 0, 0, time.UTC)
}

func buildEngine(t *testing.T, lang Lang) *RuleEngine {
	engine, err := Build(lang, WithReferenceTime(referenceTime))
	require.NoError(t, err)
	return engine
}

func requireInstant(t *testing.T, m Match, kind OutputKind, want time.Time, grain Grain) {
	t.Helper()
	v, ok := m.Value.(DatetimeOutput)
	require.True(t, ok, "expected a datetime, got %T", m.Value)
	assert.Equal(t, kind, v.Kind)
	assert.True(t, want.Equal(v.Moment), "expected %v, got %v", want, v.Moment)
	assert.Equal(t, grain, v.Grain)
}

func requireInterval(t *testing.T, m Match, kind OutputKind, from, to time.Time) {
	t.Helper()
	v, ok := m.Value.(DatetimeIntervalOutput)
	require.True(t, ok, "expected an interval, got %T", m.Value)
	assert.Equal(t, kind, v.Kind)
	assert.Equal(t, IntervalBetween, v.Interval)
	assert.True(t, from.Equal(v.From), "expected from %v, got %v", from, v.From)
	assert.True(t, to.Equal(v.To), "expected to %v, got %v", to, v.To)
}

func TestBuild(t *testing.T) {
	t.Run("Every language has a grammar", func(t *testing.T) {
		for _, lang := range []Lang{DE, EN, ES, FR, IT, JA, KO, PT} {
			engine, err := Build(lang)
			require.NoError(t, err, lang.String())
			assert.Equal(t, lang, engine.Lang())
		}
	})

	t.Run("Unknown language", func(t *testing.T) {
		_, err := Build(Lang(42))
		assert.Error(t, err)
	})

	t.Run("Parse language codes", func(t *testing.T) {
		lang, err := ParseLang("FR")
		require.NoError(t, err)
		assert.Equal(t, FR, lang)

		_, err = ParseLang("nl")
		assert.Error(t, err)
	})
}

func TestParseEnglish(t *testing.T) {
	engine := buildEngine(t, EN)

	t.Run("Number and date", func(t *testing.T) {
		matches, err := engine.Parse("book me a restaurant for two people tomorrow", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 2)

		assert.Equal(t, IntegerOutput{Value: 2}, matches[0].Value)
		assert.Equal(t, Range{Start: 25, End: 28}, matches[0].CharRange)
		requireInstant(t, matches[1], KindDate, day(time.February, 13), GrainDay)
		assert.Equal(t, Range{Start: 36, End: 44}, matches[1].CharRange)
	})

	t.Run("Date falls back to datetime", func(t *testing.T) {
		matches, err := engine.Parse("book me a restaurant for tomorrow", []OutputKind{KindDatetime})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, day(time.February, 13), GrainDay)
	})

	t.Run("Date and time compose", func(t *testing.T) {
		matches, err := engine.Parse("book me a restaurant for tomorrow at 8pm", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, at(time.February, 13, 20, 0), GrainHour)
	})

	t.Run("Time period", func(t *testing.T) {
		matches, err := engine.Parse("book the meeting room from 10am to 11am", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInterval(t, matches[0], KindTimePeriod, at(time.February, 12, 10, 0), at(time.February, 12, 12, 0))
		assert.Equal(t, Range{Start: 22, End: 39}, matches[0].CharRange)
		assert.Equal(t, Range{Start: 22, End: 39}, matches[0].ByteRange)
	})

	t.Run("Time period requested as times", func(t *testing.T) {
		matches, err := engine.Parse("book the meeting room from 10am to 11am", []OutputKind{KindTime})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		requireInstant(t, matches[0], KindTime, at(time.February, 12, 10, 0), GrainHour)
		assert.Equal(t, Range{Start: 27, End: 31}, matches[0].CharRange)
		requireInstant(t, matches[1], KindTime, at(time.February, 12, 11, 0), GrainHour)
		assert.Equal(t, Range{Start: 35, End: 39}, matches[1].CharRange)
	})

	t.Run("Duration", func(t *testing.T) {
		matches, err := engine.Parse("the weather during two weeks", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, DurationOutput{Period: []PeriodComponent{{Grain: GrainWeek, Quantity: 2}}}, matches[0].Value)
		assert.Equal(t, Range{Start: 12, End: 28}, matches[0].CharRange)
	})

	t.Run("Composed duration", func(t *testing.T) {
		matches, err := engine.Parse("2 hours and 30 minutes", []OutputKind{KindDuration})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, DurationOutput{Period: []PeriodComponent{
			{Grain: GrainHour, Quantity: 2},
			{Grain: GrainMinute, Quantity: 30},
		}}, matches[0].Value)
	})

	t.Run("Percentage", func(t *testing.T) {
		matches, err := engine.Parse("set light to ten percents", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, PercentageOutput{Value: 10}, matches[0].Value)
		assert.Equal(t, Range{Start: 13, End: 25}, matches[0].CharRange)
	})

	t.Run("Amount of money", func(t *testing.T) {
		matches, err := engine.Parse("i would like to do a bank transfer of ten euros for my friends", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		unit := "€"
		assert.Equal(t, AmountOfMoneyOutput{Value: 10, Precision: Exact, Unit: &unit}, matches[0].Value)
		assert.Equal(t, Range{Start: 38, End: 47}, matches[0].CharRange)

		matches, err = engine.Parse("about $3.5", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		unit = "$"
		assert.Equal(t, AmountOfMoneyOutput{Value: 3.5, Precision: Approximate, Unit: &unit}, matches[0].Value)
	})

	t.Run("Temperature", func(t *testing.T) {
		matches, err := engine.Parse("set it to 21 degrees", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		unit := "degree"
		assert.Equal(t, TemperatureOutput{Value: 21, Unit: &unit}, matches[0].Value)
	})

	t.Run("Numbers", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     Output
		}{
			{"twenty one", IntegerOutput{Value: 21}},
			{"three hundred and four", IntegerOutput{Value: 304}},
			{"one hundred and twenty-three", IntegerOutput{Value: 123}},
			{"two million five hundred thousand", IntegerOutput{Value: 2500000}},
			{"1,250", IntegerOutput{Value: 1250}},
			{"3.5", FloatOutput{Value: 3.5}},
			{"-12", IntegerOutput{Value: -12}},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindNumber})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			assert.Equal(t, test.want, matches[0].Value, test.sentence)
		}
	})

	t.Run("Articles and glued digits are not numbers", func(t *testing.T) {
		matches, err := engine.Parse("play a song in mp3", []OutputKind{KindNumber})
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Ordinals", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     int64
		}{
			{"the 3rd place", 3},
			{"the second one", 2},
			{"the twenty third", 23},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindOrdinal})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			assert.Equal(t, OrdinalOutput{Value: test.want}, matches[0].Value, test.sentence)
		}
	})

	t.Run("Dates", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     time.Time
			grain    Grain
		}{
			{"next monday", day(time.February, 18), GrainDay},
			{"on wednesday", day(time.February, 13), GrainDay},
			{"march 26th", day(time.March, 26), GrainDay},
			{"the day after tomorrow", day(time.February, 14), GrainDay},
			{"monday 15th april 2019", time.Date(2019, time.April, 15, 0, 0, 0, 0, time.UTC), GrainDay},
			{"in march", day(time.March, 1), GrainMonth},
			{"12/25", day(time.December, 25), GrainDay},
			{"january 5", time.Date(2014, time.January, 5, 0, 0, 0, 0, time.UTC), GrainDay},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindDate})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			requireInstant(t, matches[0], KindDate, test.want, test.grain)
		}
	})

	t.Run("Times", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     time.Time
			grain    Grain
		}{
			{"at 4:30 pm", at(time.February, 12, 16, 30), GrainMinute},
			{"at noon", at(time.February, 12, 12, 0), GrainHour},
			{"at 8 a.m.", at(time.February, 12, 8, 0), GrainHour},
			{"at 3", at(time.February, 12, 15, 0), GrainHour},
			{"at 4", at(time.February, 12, 4, 0), GrainHour},
			{"ten o'clock", at(time.February, 12, 10, 0), GrainHour},
			{"now", referenceTime, GrainSecond},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindTime})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			requireInstant(t, matches[0], KindTime, test.want, test.grain)
		}
	})

	t.Run("Relative datetime", func(t *testing.T) {
		matches, err := engine.Parse("in 2 hours", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, at(time.February, 12, 6, 30), GrainSecond)

		matches, err = engine.Parse("3 days ago", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDate, day(time.February, 9), GrainDay)
	})

	t.Run("Date periods", func(t *testing.T) {
		matches, err := engine.Parse("this week", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInterval(t, matches[0], KindDatePeriod, day(time.February, 11), day(time.February, 18))

		matches, err = engine.Parse("from march 3 to march 5", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInterval(t, matches[0], KindDatePeriod, day(time.March, 3), day(time.March, 6))
	})

	t.Run("Part of day", func(t *testing.T) {
		matches, err := engine.Parse("tomorrow morning", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInterval(t, matches[0], KindTimePeriod, at(time.February, 13, 4, 0), at(time.February, 13, 12, 0))
	})

	t.Run("No requested kinds", func(t *testing.T) {
		matches, err := engine.Parse("tomorrow morning", []OutputKind{})
		require.NoError(t, err)
		assert.NotNil(t, matches)
		assert.Empty(t, matches)
	})

	t.Run("Invalid input", func(t *testing.T) {
		_, err := engine.Parse("\xff\xfe", AllOutputKinds())
		assert.Error(t, err)
	})
}

func TestParseFrench(t *testing.T) {
	engine := buildEngine(t, FR)

	t.Run("Sentence without values", func(t *testing.T) {
		matches, err := engine.Parse("je voudrais écouter the stones s'il vous plaît", AllOutputKinds())
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("Numbers", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     int64
		}{
			{"vingt deux", 22},
			{"vingt et un", 21},
			{"deux cent trois", 203},
			{"quatre vingt dix neuf", 99},
			{"soixante-dix-sept", 77},
			{"dix-huit", 18},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindNumber})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			assert.Equal(t, IntegerOutput{Value: test.want}, matches[0].Value, test.sentence)
		}

		matches, err := engine.Parse("3,5", []OutputKind{KindNumber})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, FloatOutput{Value: 3.5}, matches[0].Value)
	})

	t.Run("Date and time", func(t *testing.T) {
		matches, err := engine.Parse("demain à 16h30", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, at(time.February, 13, 16, 30), GrainMinute)
	})

	t.Run("Date", func(t *testing.T) {
		matches, err := engine.Parse("le 26 mars", []OutputKind{KindDate})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDate, day(time.March, 26), GrainDay)
	})

	t.Run("Time period", func(t *testing.T) {
		matches, err := engine.Parse("de 10h à 11h", AllOutputKinds())
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInterval(t, matches[0], KindTimePeriod, at(time.February, 12, 10, 0), at(time.February, 12, 12, 0))
	})

	t.Run("Duration", func(t *testing.T) {
		matches, err := engine.Parse("pendant 8 ans et deux jours", []OutputKind{KindDuration})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, DurationOutput{Period: []PeriodComponent{
			{Grain: GrainYear, Quantity: 8},
			{Grain: GrainDay, Quantity: 2},
		}}, matches[0].Value)
	})

	t.Run("Ordinal", func(t *testing.T) {
		matches, err := engine.Parse("le 1er", []OutputKind{KindOrdinal})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, OrdinalOutput{Value: 1}, matches[0].Value)
	})
}

func TestParseJapanese(t *testing.T) {
	engine := buildEngine(t, JA)
	kinds := []OutputKind{KindNumber, KindOrdinal, KindDuration, KindDatetime, KindAmountOfMoney, KindTemperature, KindPercentage}

	t.Run("Kanji date", func(t *testing.T) {
		matches, err := engine.Parse("のカリフォル二千十三年二月十日ニア州の天気予報は？", kinds)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, day(time.February, 10), GrainDay)
		assert.Equal(t, Range{Start: 6, End: 15}, matches[0].CharRange)
	})

	t.Run("Kanji numbers", func(t *testing.T) {
		tests := []struct {
			sentence string
			want     int64
		}{
			{"十二", 12},
			{"二千五", 2005},
			{"四千三百二", 4302},
			{"3万", 30000},
		}
		for _, test := range tests {
			matches, err := engine.Parse(test.sentence, []OutputKind{KindNumber})
			require.NoError(t, err)
			require.Len(t, matches, 1, test.sentence)
			assert.Equal(t, IntegerOutput{Value: test.want}, matches[0].Value, test.sentence)
		}
	})

	t.Run("Ordinal, duration and time", func(t *testing.T) {
		matches, err := engine.Parse("十一番目", kinds)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, OrdinalOutput{Value: 11}, matches[0].Value)

		matches, err = engine.Parse("五日間", kinds)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, DurationOutput{Period: []PeriodComponent{{Grain: GrainDay, Quantity: 5}}}, matches[0].Value)

		matches, err = engine.Parse("十三時三十分", kinds)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, at(time.February, 12, 13, 30), GrainMinute)
	})
}

func TestParseOtherLanguages(t *testing.T) {
	t.Run("German compound number", func(t *testing.T) {
		matches, err := buildEngine(t, DE).Parse("einundzwanzig", []OutputKind{KindNumber})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, IntegerOutput{Value: 21}, matches[0].Value)
	})

	t.Run("Italian compound number", func(t *testing.T) {
		matches, err := buildEngine(t, IT).Parse("ventotto", []OutputKind{KindNumber})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, IntegerOutput{Value: 28}, matches[0].Value)
	})

	t.Run("Spanish percentage", func(t *testing.T) {
		matches, err := buildEngine(t, ES).Parse("quince por ciento", []OutputKind{KindPercentage})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, PercentageOutput{Value: 15}, matches[0].Value)
	})

	t.Run("Portuguese amount of money", func(t *testing.T) {
		matches, err := buildEngine(t, PT).Parse("16,65 €", []OutputKind{KindAmountOfMoney})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		unit := "€"
		assert.Equal(t, AmountOfMoneyOutput{Value: 16.65, Unit: &unit}, matches[0].Value)
	})

	t.Run("Korean date", func(t *testing.T) {
		matches, err := buildEngine(t, KO).Parse("3월 5일", []OutputKind{KindDatetime})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		requireInstant(t, matches[0], KindDatetime, day(time.March, 5), GrainDay)
	})
}
