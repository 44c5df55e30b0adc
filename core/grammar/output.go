package grammar

import (
	"fmt"
	"time"
)

// MomentLayout is the layout of resolved date and time values.
const MomentLayout = "2006-01-02 15:04:05 -07:00"

// OutputKind is the kind of value the engine can resolve.
type OutputKind int

const (
	KindNumber OutputKind = iota
	KindOrdinal
	KindDuration
	KindDatetime
	KindDate
	KindTime
	KindDatePeriod
	KindTimePeriod
	KindAmountOfMoney
	KindTemperature
	KindPercentage
)

var outputKindNames = [...]string{
	"Number", "Ordinal", "Duration", "Datetime", "Date", "Time",
	"DatePeriod", "TimePeriod", "AmountOfMoney", "Temperature", "Percentage",
}

// AllOutputKinds returns every kind in priority order.
func AllOutputKinds() []OutputKind {
	return []OutputKind{
		KindNumber, KindOrdinal, KindDuration, KindDatetime, KindDate, KindTime,
		KindDatePeriod, KindTimePeriod, KindAmountOfMoney, KindTemperature, KindPercentage,
	}
}

func (k OutputKind) String() string {
	if k >= 0 && int(k) < len(outputKindNames) {
		return outputKindNames[k]
	}
	return fmt.Sprintf("OutputKind(%d)", int(k))
}

// temporal reports whether the kind is a specialization of Datetime.
func (k OutputKind) temporal() bool {
	return k == KindDate || k == KindTime || k == KindDatePeriod || k == KindTimePeriod
}

// Grain is the resolution of a temporal value.
type Grain int

const (
	GrainYear Grain = iota
	GrainQuarter
	GrainMonth
	GrainWeek
	GrainDay
	GrainHour
	GrainMinute
	GrainSecond
)

func (g Grain) String() string {
	return [...]string{"Year", "Quarter", "Month", "Week", "Day", "Hour", "Minute", "Second"}[g]
}

// add moves t forward by n units of the grain.
func (g Grain) add(t time.Time, n int) time.Time {
	switch g {
	case GrainYear:
		return t.AddDate(n, 0, 0)
	case GrainQuarter:
		return t.AddDate(0, 3*n, 0)
	case GrainMonth:
		return t.AddDate(0, n, 0)
	case GrainWeek:
		return t.AddDate(0, 0, 7*n)
	case GrainDay:
		return t.AddDate(0, 0, n)
	case GrainHour:
		return t.Add(time.Duration(n) * time.Hour)
	case GrainMinute:
		return t.Add(time.Duration(n) * time.Minute)
	default:
		return t.Add(time.Duration(n) * time.Second)
	}
}

// Precision tells whether a value was stated exactly.
type Precision int

const (
	Exact Precision = iota
	Approximate
)

// Output is a resolved value. The set of implementations is closed.
type Output interface {
	OutputKind() OutputKind
	isOutput()
}

type IntegerOutput struct {
	Value int64
}

type FloatOutput struct {
	Value float64
}

type OrdinalOutput struct {
	Value int64
}

type PercentageOutput struct {
	Value float64
}

type AmountOfMoneyOutput struct {
	Value     float64
	Precision Precision
	Unit      *string
}

type TemperatureOutput struct {
	Value float64
	Unit  *string
}

// PeriodComponent is one quantity of a duration.
type PeriodComponent struct {
	Grain    Grain
	Quantity int64
}

type DurationOutput struct {
	Period    []PeriodComponent
	Precision Precision
}

// DatetimeOutput is an instant. Kind is Datetime, Date or Time.
type DatetimeOutput struct {
	Moment    time.Time
	Grain     Grain
	Precision Precision
	Kind      OutputKind
}

// IntervalKind tells which bounds of an interval are set.
type IntervalKind int

const (
	IntervalBetween IntervalKind = iota
	IntervalAfter
	IntervalBefore
)

// DatetimeIntervalOutput is an interval. After uses From only, Before uses To
// only. Kind is Datetime, DatePeriod or TimePeriod.
type DatetimeIntervalOutput struct {
	Interval  IntervalKind
	From      time.Time
	To        time.Time
	Precision Precision
	Kind      OutputKind
}

func (IntegerOutput) OutputKind() OutputKind            { return KindNumber }
func (FloatOutput) OutputKind() OutputKind              { return KindNumber }
func (OrdinalOutput) OutputKind() OutputKind            { return KindOrdinal }
func (PercentageOutput) OutputKind() OutputKind         { return KindPercentage }
func (AmountOfMoneyOutput) OutputKind() OutputKind      { return KindAmountOfMoney }
func (TemperatureOutput) OutputKind() OutputKind        { return KindTemperature }
func (DurationOutput) OutputKind() OutputKind           { return KindDuration }
func (o DatetimeOutput) OutputKind() OutputKind         { return o.Kind }
func (o DatetimeIntervalOutput) OutputKind() OutputKind { return o.Kind }

func (IntegerOutput) isOutput()          {}
func (FloatOutput) isOutput()            {}
func (OrdinalOutput) isOutput()          {}
func (PercentageOutput) isOutput()       {}
func (AmountOfMoneyOutput) isOutput()    {}
func (TemperatureOutput) isOutput()      {}
func (DurationOutput) isOutput()         {}
func (DatetimeOutput) isOutput()         {}
func (DatetimeIntervalOutput) isOutput() {}

// Range is a half-open interval of offsets.
type Range struct {
	Start int
	End   int
}

// Match is a resolved span of the parsed sentence.
type Match struct {
	ByteRange Range
	CharRange Range
	Value     Output
}

// Engine resolves numeric and temporal expressions.
type Engine interface {
	// Parse returns the matches of the requested kinds, the order of kinds
	// being their priority when matches overlap.
	Parse(sentence string, kinds []OutputKind) ([]Match, error)
}
