package grammar

import (
	"strconv"
	"time"

	"golang.org/x/text/width"
)

// moment is a resolved instant with the grain it was stated at. Time-only
// moments keep their clock so that they can be moved to another day.
type moment struct {
	t         time.Time
	grain     Grain
	precision Precision
	hasDate   bool
	hasTime   bool
	clock     clock
}

func (m moment) kind() OutputKind {
	switch {
	case m.hasDate && m.hasTime:
		return KindDatetime
	case m.hasTime:
		return KindTime
	default:
		return KindDate
	}
}

func (m moment) output() DatetimeOutput {
	return DatetimeOutput{Moment: m.t, Grain: m.grain, Precision: m.precision, Kind: m.kind()}
}

// clock is a time of day as written, not yet placed on a day.
type clock struct {
	hour      int
	minute    int
	second    int
	grain     Grain
	ambiguous bool
	now       bool
}

func (c clock) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.hour, c.minute, c.second, 0, day.Location())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func truncate(t time.Time, g Grain) time.Time {
	switch g {
	case GrainYear:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	case GrainQuarter:
		return time.Date(t.Year(), t.Month()-(t.Month()-1)%3, 1, 0, 0, 0, 0, t.Location())
	case GrainMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case GrainWeek:
		day := startOfDay(t)
		return day.AddDate(0, 0, -((int(day.Weekday()) + 6) % 7))
	case GrainDay:
		return startOfDay(t)
	case GrainHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case GrainMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
}

func (p *parser) today() time.Time {
	return startOfDay(p.now)
}

// next places the clock on its next occurrence from the reference time.
func (p *parser) next(c clock) time.Time {
	if c.now {
		return truncate(p.now, GrainSecond)
	}
	now := truncate(p.now, c.grain)
	t := c.on(p.today())
	candidates := []time.Time{t}
	if c.ambiguous && c.hour < 12 {
		candidates = append(candidates, t.Add(12*time.Hour))
	}
	candidates = append(candidates, t.AddDate(0, 0, 1))
	for _, candidate := range candidates {
		if !candidate.Before(now) {
			return candidate
		}
	}
	return candidates[len(candidates)-1]
}

func (p *parser) timeMoment(c clock) moment {
	return moment{t: p.next(c), grain: c.grain, hasTime: true, clock: c}
}

func dateMoment(t time.Time, grain Grain) moment {
	return moment{t: t, grain: grain, hasDate: true}
}

// longest keeps track of the longest of several alternative parses.
type longest[V any] struct {
	value V
	end   int
}

func newLongest[V any]() *longest[V] {
	return &longest[V]{end: -1}
}

func (l *longest[V]) try(v V, end int, ok bool) {
	if ok && end > l.end {
		l.value, l.end = v, end
	}
}

func (l *longest[V]) result() (V, int, bool) {
	return l.value, l.end, l.end >= 0
}

// Times

func (p *parser) clockAt(i int) (clock, int, bool) {
	j := i
	prefixed := false
	if e := p.lex.timePrefixes.end(p.tokens, j); e >= 0 {
		j, prefixed = e, true
	}

	best := newLongest[clock]()
	best.try(p.namedClock(j))
	best.try(p.digitalClock(j, prefixed))
	if p.lex.cjk {
		best.try(p.cjkClock(j))
	}
	return best.result()
}

func (p *parser) namedClock(j int) (clock, int, bool) {
	if e := p.lex.now.end(p.tokens, j); e >= 0 {
		return clock{grain: GrainSecond, now: true}, e, true
	}
	if e := p.lex.noon.end(p.tokens, j); e >= 0 {
		return clock{hour: 12, grain: GrainHour}, e, true
	}
	if e := p.lex.midnight.end(p.tokens, j); e >= 0 {
		return clock{hour: 24, grain: GrainHour}, e, true
	}
	return clock{}, 0, false
}

const (
	noMeridiem = iota
	ante
	post
)

func (p *parser) meridiemAt(k int) (int, int) {
	if e := p.lex.am.end(p.tokens, k); e >= 0 {
		return ante, e
	}
	if e := p.lex.pm.end(p.tokens, k); e >= 0 {
		return post, e
	}
	return noMeridiem, k
}

// withMeridiem validates the hour and applies am or pm to it.
func withMeridiem(c clock, meridiem int) (clock, bool) {
	switch meridiem {
	case ante, post:
		if c.hour < 1 || c.hour > 12 {
			return clock{}, false
		}
		if meridiem == post && c.hour < 12 {
			c.hour += 12
		}
		if meridiem == ante && c.hour == 12 {
			c.hour = 0
		}
	default:
		if c.hour > 24 || (c.hour == 24 && (c.minute > 0 || c.second > 0)) {
			return clock{}, false
		}
		c.ambiguous = c.hour >= 1 && c.hour <= 12
	}
	return c, c.hour >= 0 && c.minute < 60 && c.second < 60
}

func (p *parser) twoDigits(k int) (int, bool) {
	if k >= len(p.tokens) || p.tokens[k].kind != tokenDigits || len(width.Narrow.String(p.tokens[k].text)) != 2 {
		return 0, false
	}
	v, ok := digitsValue(p.tokens[k])
	return int(v), ok && v < 60
}

// digitalClock parses 8pm, 4:30 pm, 16h30, 8 o'clock and, after a time
// prefix, a bare hour.
func (p *parser) digitalClock(j int, prefixed bool) (clock, int, bool) {
	n, ok := p.numberAt(j)
	if !ok || !n.integer || n.article || n.value < 0 {
		return clock{}, 0, false
	}
	c := clock{hour: int(n.int()), grain: GrainHour}
	k := n.end
	written := false
	if n.digits && p.symbolAt(k, ":") && p.glued(k) && p.glued(k+1) {
		minute, ok := p.twoDigits(k + 1)
		if !ok {
			return clock{}, 0, false
		}
		c.minute, c.grain, k, written = minute, GrainMinute, k+2, true
		if p.symbolAt(k, ":") && p.glued(k) && p.glued(k+1) {
			if second, ok := p.twoDigits(k + 1); ok {
				c.second, c.grain, k = second, GrainSecond, k+2
			}
		}
	} else if e := p.lex.hourWords.end(p.tokens, k); e >= 0 {
		k, written = e, true
		if minute, ok := p.twoDigits(k); ok {
			c.minute, c.grain, k = minute, GrainMinute, k+1
		}
	}

	meridiem, e := p.meridiemAt(k)
	if meridiem == noMeridiem && !written && !prefixed {
		return clock{}, 0, false
	}
	if !n.digits && meridiem == noMeridiem && !written {
		// a spelled out hour needs am, pm or o'clock
		return clock{}, 0, false
	}
	c, ok = withMeridiem(c, meridiem)
	return c, e, ok
}

// cjkClock parses 午後3時半 and 14時30分.
func (p *parser) cjkClock(j int) (clock, int, bool) {
	meridiem := noMeridiem
	if e := p.lex.amPrefixes.end(p.tokens, j); e >= 0 {
		meridiem, j = ante, e
	} else if e := p.lex.pmPrefixes.end(p.tokens, j); e >= 0 {
		meridiem, j = post, e
	}
	n, ok := p.numberAt(j)
	if !ok || !n.integer {
		return clock{}, 0, false
	}
	k := p.lex.hourSuffix.end(p.tokens, n.end)
	if k < 0 {
		return clock{}, 0, false
	}
	c := clock{hour: int(n.int()), grain: GrainHour}
	if e := p.lex.halfSuffix.end(p.tokens, k); e >= 0 {
		c.minute, c.grain, k = 30, GrainMinute, e
	} else if m, ok := p.numberAt(k); ok && m.integer && m.value < 60 {
		if e := p.lex.minuteSuffix.end(p.tokens, m.end); e >= 0 {
			c.minute, c.grain, k = int(m.int()), GrainMinute, e
		}
	}
	c, ok = withMeridiem(c, meridiem)
	return c, k, ok
}

func (p *parser) partOfDayAt(i int) (dayPart, int, bool) {
	return p.lex.partsOfDay.match(p.tokens, i)
}

// Dates

func (p *parser) dateAt(i int) (moment, int, bool) {
	best := newLongest[moment]()
	starts := []int{i}
	if e := p.lex.datePrefixes.end(p.tokens, i); e >= 0 {
		starts = append(starts, e)
	}
	for _, k := range starts {
		best.try(p.relativeDay(k))
		best.try(p.weekdayDate(k))
		best.try(p.dayMonthDate(k))
		best.try(p.monthDayDate(k))
		best.try(p.monthDate(k))
		best.try(p.yearDate(k))
		best.try(p.numericDate(k))
		if p.lex.cjk {
			best.try(p.cjkDate(k))
		}
	}
	return best.result()
}

func (p *parser) relativeDay(k int) (moment, int, bool) {
	n, e, ok := p.lex.relativeDays.match(p.tokens, k)
	if !ok {
		return moment{}, 0, false
	}
	return dateMoment(p.today().AddDate(0, 0, n), GrainDay), e, true
}

func (p *parser) comingWeekday(wd time.Weekday) time.Time {
	today := p.today()
	days := (int(wd) - int(today.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, days)
}

func (p *parser) pastWeekday(wd time.Weekday) time.Time {
	today := p.today()
	days := (int(today.Weekday()) - int(wd) + 7) % 7
	if days == 0 {
		days = 7
	}
	return today.AddDate(0, 0, -days)
}

func (p *parser) weekdayDate(k int) (moment, int, bool) {
	var day time.Time
	var end int
	if e := p.lex.lastPrefixes.end(p.tokens, k); e >= 0 {
		if wd, e, ok := p.lex.weekdays.match(p.tokens, e); ok {
			day, end = p.pastWeekday(wd), e
		}
	}
	if end == 0 {
		if e := p.lex.nextPrefixes.end(p.tokens, k); e >= 0 {
			if wd, e, ok := p.lex.weekdays.match(p.tokens, e); ok {
				day, end = p.comingWeekday(wd), e
			}
		}
	}
	if end == 0 {
		wd, e, ok := p.lex.weekdays.match(p.tokens, k)
		if !ok {
			return moment{}, 0, false
		}
		day, end = p.comingWeekday(wd), e
		if e := p.lex.nextSuffixes.end(p.tokens, end); e >= 0 {
			end = e
		} else if e := p.lex.lastSuffixes.end(p.tokens, end); e >= 0 {
			day, end = p.pastWeekday(wd), e
		}
	}

	// monday the 3rd of march
	next := p.lex.datePrefixes.optional(p.tokens, p.optionalComma(end))
	if m, e, ok := p.dayMonthDate(next); ok {
		return m, e, true
	}
	if m, e, ok := p.monthDayDate(next); ok {
		return m, e, true
	}
	return dateMoment(day, GrainDay), end, true
}

func (p *parser) optionalComma(k int) int {
	if p.symbolAt(k, ",") {
		return k + 1
	}
	return k
}

// dayNumberAt parses a day of month written as a number or an ordinal.
func (p *parser) dayNumberAt(k int) (int, int, bool) {
	if c, ok := p.ordinalAt(k); ok {
		v := c.value.(OrdinalOutput).Value
		return int(v), c.end, v >= 1 && v <= 31
	}
	if k < len(p.tokens) && p.tokens[k].kind == tokenDigits {
		v, ok := digitsValue(p.tokens[k])
		return int(v), k + 1, ok && v >= 1 && v <= 31
	}
	return 0, 0, false
}

func (p *parser) yearAt(k int) (int, int, bool) {
	if k >= len(p.tokens) || p.tokens[k].kind != tokenDigits || len(width.Narrow.String(p.tokens[k].text)) != 4 {
		return 0, 0, false
	}
	v, ok := digitsValue(p.tokens[k])
	return int(v), k + 1, ok && v >= 1000 && v < 3000
}

// resolveDate builds a date, picking the next occurrence when the year is
// not given.
func (p *parser) resolveDate(year int, month time.Month, day int) (time.Time, bool) {
	if month < time.January || month > time.December {
		return time.Time{}, false
	}
	today := p.today()
	explicit := year != 0
	if !explicit {
		year = today.Year()
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, today.Location())
	if t.Day() != day {
		return time.Time{}, false
	}
	if !explicit && t.Before(today) {
		t = time.Date(year+1, month, day, 0, 0, 0, 0, today.Location())
		if t.Day() != day {
			return time.Time{}, false
		}
	}
	return t, true
}

func (p *parser) trailingYear(k int) (int, int) {
	if year, e, ok := p.yearAt(p.optionalComma(k)); ok {
		return year, e
	}
	return 0, k
}

func (p *parser) dayMonthDate(k int) (moment, int, bool) {
	day, e, ok := p.dayNumberAt(k)
	if !ok {
		return moment{}, 0, false
	}
	e = p.lex.dateConnectors.optional(p.tokens, e)
	month, e, ok := p.lex.months.match(p.tokens, e)
	if !ok {
		return moment{}, 0, false
	}
	year, e := p.trailingYear(e)
	t, ok := p.resolveDate(year, month, day)
	return dateMoment(t, GrainDay), e, ok
}

func (p *parser) monthDayDate(k int) (moment, int, bool) {
	month, e, ok := p.lex.months.match(p.tokens, k)
	if !ok {
		return moment{}, 0, false
	}
	e = p.lex.datePrefixes.optional(p.tokens, e)
	day, e, ok := p.dayNumberAt(e)
	if !ok {
		return moment{}, 0, false
	}
	if e < len(p.tokens) && p.lex.durationUnits.end(p.tokens, e) >= 0 {
		return moment{}, 0, false
	}
	year, e := p.trailingYear(e)
	t, ok := p.resolveDate(year, month, day)
	return dateMoment(t, GrainDay), e, ok
}

// monthDate parses "in march" and "march 2020".
func (p *parser) monthDate(k int) (moment, int, bool) {
	j := k
	prefixed := false
	if e := p.lex.monthPrefixes.end(p.tokens, k); e >= 0 {
		j, prefixed = e, true
	}
	month, monthEnd, ok := p.lex.months.match(p.tokens, j)
	if !ok {
		return moment{}, 0, false
	}
	year, end, hasYear := p.yearAt(p.lex.dateConnectors.optional(p.tokens, monthEnd))
	if !hasYear {
		if !prefixed {
			return moment{}, 0, false
		}
		end = monthEnd
		today := p.today()
		year = today.Year()
		if month < today.Month() {
			year++
		}
	}
	return dateMoment(time.Date(year, month, 1, 0, 0, 0, 0, p.now.Location()), GrainMonth), end, true
}

func (p *parser) yearDate(k int) (moment, int, bool) {
	e := p.lex.monthPrefixes.end(p.tokens, k)
	if e < 0 {
		return moment{}, 0, false
	}
	year, end, ok := p.yearAt(e)
	if !ok {
		return moment{}, 0, false
	}
	return dateMoment(time.Date(year, time.January, 1, 0, 0, 0, 0, p.now.Location()), GrainYear), end, true
}

// numericDate parses 03/15/2020 (month first in English), 15/03, 15.03.2020
// and 2020-03-15.
func (p *parser) numericDate(k int) (moment, int, bool) {
	var parts []string
	sep := ""
	j := k
	for len(parts) < 3 && j < len(p.tokens) && p.tokens[j].kind == tokenDigits {
		parts = append(parts, width.Narrow.String(p.tokens[j].text))
		j++
		if len(parts) == 3 || !p.glued(j) || !p.glued(j+1) || p.tokens[j].kind != tokenSymbol {
			break
		}
		s := p.tokens[j].text
		if s != "/" && s != "-" && s != "." {
			break
		}
		if sep != "" && s != sep {
			break
		}
		if p.tokens[j+1].kind != tokenDigits {
			break
		}
		sep = s
		j++
	}
	if len(parts) < 2 || (len(parts) == 2 && sep != "/") {
		return moment{}, 0, false
	}

	values := make([]int, len(parts))
	for idx, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return moment{}, 0, false
		}
		values[idx] = v
	}

	var year, month, day int
	switch {
	case len(parts[0]) == 4:
		if len(parts) != 3 {
			return moment{}, 0, false
		}
		year, month, day = values[0], values[1], values[2]
	case p.lex.monthFirst:
		month, day = values[0], values[1]
	default:
		day, month = values[0], values[1]
	}
	if len(parts) == 3 && len(parts[0]) != 4 {
		year = values[2]
		switch len(parts[2]) {
		case 2:
			year += 2000
		case 4:
		default:
			return moment{}, 0, false
		}
	}
	if len(parts[0]) > 2 && len(parts[0]) != 4 || len(parts[1]) > 2 {
		return moment{}, 0, false
	}
	t, ok := p.resolveDate(year, time.Month(month), day)
	return dateMoment(t, GrainDay), j, ok
}

// cjkDate parses 2013年2月10日 and 2월 10일.
func (p *parser) cjkDate(k int) (moment, int, bool) {
	j := k
	year := 0
	if n, ok := p.numberAt(j); ok && n.integer {
		if e := p.lex.yearSuffix.end(p.tokens, n.end); e >= 0 {
			year, j = int(n.int()), e
		}
	}
	n, ok := p.numberAt(j)
	var e int
	if ok && n.integer {
		e = p.lex.monthSuffix.end(p.tokens, n.end)
	}
	if !ok || !n.integer || e < 0 || n.value < 1 || n.value > 12 {
		if year == 0 {
			return moment{}, 0, false
		}
		return dateMoment(time.Date(year, time.January, 1, 0, 0, 0, 0, p.now.Location()), GrainYear), j, true
	}
	month := time.Month(n.int())
	j = e

	if d, ok := p.numberAt(j); ok && d.integer {
		if e := p.lex.daySuffix.end(p.tokens, d.end); e >= 0 {
			t, ok := p.resolveDate(year, month, int(d.int()))
			return dateMoment(t, GrainDay), e, ok
		}
	}
	if year == 0 {
		year = p.today().Year()
		if month < p.today().Month() {
			year++
		}
	}
	return dateMoment(time.Date(year, month, 1, 0, 0, 0, 0, p.now.Location()), GrainMonth), j, true
}

// Instants

// instantAt parses a date, a time, or both in either order.
func (p *parser) instantAt(i int) (moment, int, bool) {
	best := newLongest[moment]()

	if date, e, ok := p.dateAt(i); ok {
		best.try(date, e, true)
		if date.grain == GrainDay {
			if c, e, ok := p.clockAt(p.optionalComma(e)); ok && !c.now {
				best.try(moment{t: c.on(date.t), grain: c.grain, hasDate: true, hasTime: true, clock: c}, e, true)
			}
		}
	}
	if c, e, ok := p.clockAt(i); ok {
		best.try(p.timeMoment(c), e, true)
		if !c.now {
			if date, e, ok := p.dateAt(p.optionalComma(e)); ok && date.grain == GrainDay {
				best.try(moment{t: c.on(date.t), grain: c.grain, hasDate: true, hasTime: true, clock: c}, e, true)
			}
		}
	}
	if m, e, ok := p.relativeMoment(i); ok {
		best.try(m, e, true)
	}
	return best.result()
}

// relativeMoment parses "in 2 hours", "3 days ago" and "il y a 3 jours".
func (p *parser) relativeMoment(i int) (moment, int, bool) {
	sign := 0
	j := i
	if e := p.lex.inFuture.end(p.tokens, j); e >= 0 {
		sign, j = 1, e
	} else if e := p.lex.agoPrefixes.end(p.tokens, j); e >= 0 {
		sign, j = -1, e
	}
	precision, j := p.precisionAt(j)
	period, end, ok := p.periodAt(j)
	if !ok {
		return moment{}, 0, false
	}
	if sign == 0 {
		e := p.lex.agoSuffixes.end(p.tokens, end)
		if e < 0 {
			return moment{}, 0, false
		}
		sign, end = -1, e
	}

	t := p.now
	finest := GrainYear
	for _, c := range period {
		t = c.Grain.add(t, sign*int(c.Quantity))
		if c.Grain > finest {
			finest = c.Grain
		}
	}
	if finest >= GrainHour {
		return moment{t: truncate(t, GrainSecond), grain: GrainSecond, precision: precision, hasDate: true, hasTime: true}, end, true
	}
	m := dateMoment(startOfDay(t), finest)
	m.precision = precision
	return m, end, true
}

func (p *parser) instantCandidate(i int) (candidate, bool) {
	m, e, ok := p.instantAt(i)
	if !ok {
		return candidate{}, false
	}
	return candidate{start: i, end: e, value: m.output()}, true
}

// Intervals

func between(from, to time.Time, kind OutputKind) DatetimeIntervalOutput {
	return DatetimeIntervalOutput{Interval: IntervalBetween, From: from, To: to, Kind: kind}
}

func periodKind(moments ...moment) OutputKind {
	for _, m := range moments {
		if m.hasTime {
			return KindTimePeriod
		}
	}
	return KindDatePeriod
}

func (p *parser) partOfDayInterval(day time.Time, part dayPart) DatetimeIntervalOutput {
	from := time.Date(day.Year(), day.Month(), day.Day(), part.from, 0, 0, 0, day.Location())
	to := time.Date(day.Year(), day.Month(), day.Day(), part.to, 0, 0, 0, day.Location())
	return between(from, to, KindTimePeriod)
}

func (p *parser) weekInterval(period weekPeriod) DatetimeIntervalOutput {
	monday := truncate(p.now, GrainWeek).AddDate(0, 0, 7*period.offset)
	if period.weekend {
		saturday := monday.AddDate(0, 0, 5)
		return between(saturday, saturday.AddDate(0, 0, 2), KindDatePeriod)
	}
	return between(monday, monday.AddDate(0, 0, 7), KindDatePeriod)
}

// endpoint resolves the end of a range relative to its start. The end is
// exclusive, one grain after the stated moment.
func (p *parser) endpoint(from, to moment) time.Time {
	t := to.t
	if to.hasTime && !to.hasDate && !to.clock.now {
		t = to.clock.on(from.t)
		if t.Before(from.t) {
			if to.clock.ambiguous && t.Add(12*time.Hour).After(from.t) {
				t = t.Add(12 * time.Hour)
			} else {
				t = t.AddDate(0, 0, 1)
			}
		}
	}
	return to.grain.add(t, 1)
}

// onDay moves a time-only moment to the given day.
func onDay(m moment, day time.Time) moment {
	if m.hasTime && !m.hasDate && !m.clock.now {
		m.t = m.clock.on(day)
		m.hasDate = true
	}
	return m
}

// rangeAt parses "from X to Y" and "between X and Y".
func (p *parser) rangeAt(i int, day *time.Time) (DatetimeIntervalOutput, int, bool) {
	forms := []struct {
		prefixes   phrases[struct{}]
		separators phrases[struct{}]
	}{
		{p.lex.fromPrefixes, p.lex.toSeparators},
		{p.lex.betweenPrefixes, p.lex.andSeparators},
	}
	for _, form := range forms {
		j := form.prefixes.end(p.tokens, i)
		if j < 0 {
			continue
		}
		from, e, ok := p.instantAt(j)
		if !ok {
			continue
		}
		k := form.separators.end(p.tokens, e)
		if k < 0 {
			continue
		}
		to, end, ok := p.instantAt(k)
		if !ok {
			continue
		}
		if day != nil {
			from = onDay(from, *day)
		}
		return between(from.t, p.endpoint(from, to), periodKind(from, to)), end, true
	}
	return DatetimeIntervalOutput{}, 0, false
}

// intervalAt parses every interval form, the longest winning.
func (p *parser) intervalAt(i int) (DatetimeIntervalOutput, int, bool) {
	best := newLongest[DatetimeIntervalOutput]()

	if period, e, ok := p.lex.weekPeriods.match(p.tokens, i); ok {
		best.try(p.weekInterval(period), e, true)
	}
	if part, e, ok := p.partOfDayAt(i); ok {
		best.try(p.partOfDayInterval(p.today(), part), e, true)
	}
	best.try(p.rangeAt(i, nil))

	if date, e, ok := p.dateAt(i); ok && date.grain == GrainDay {
		if part, e, ok := p.partOfDayAt(e); ok {
			best.try(p.partOfDayInterval(date.t, part), e, true)
		}
		day := date.t
		best.try(p.rangeAt(p.optionalComma(e), &day))
	}

	if j := p.lex.afterPrefixes.end(p.tokens, i); j >= 0 {
		if m, e, ok := p.instantAt(j); ok {
			best.try(DatetimeIntervalOutput{Interval: IntervalAfter, From: m.t, Kind: periodKind(m)}, e, true)
		}
	}
	if j := p.lex.beforePrefixes.end(p.tokens, i); j >= 0 {
		if m, e, ok := p.instantAt(j); ok {
			best.try(DatetimeIntervalOutput{Interval: IntervalBefore, To: m.t, Kind: periodKind(m)}, e, true)
		}
	}
	return best.result()
}

func (p *parser) intervalCandidate(i int) (candidate, bool) {
	interval, e, ok := p.intervalAt(i)
	if !ok {
		return candidate{}, false
	}
	return candidate{start: i, end: e, value: interval}, true
}
