package grammar

import "math"

func (p *parser) ordinalAt(i int) (candidate, bool) {
	// 第三, 第3
	if e := p.lex.ordinalPrefixes.end(p.tokens, i); e >= 0 {
		if n, ok := p.numberAt(e); ok && n.integer && !n.article {
			return candidate{start: i, end: n.end, value: OrdinalOutput{Value: n.int()}}, true
		}
	}

	// 3rd, 1er, 3番目
	if n, ok := p.numberAt(i); ok && n.integer && !n.article && (n.digits || p.lex.cjk) {
		e := p.lex.ordinalSuffixes.end(p.tokens, n.end)
		if e >= 0 && (p.lex.cjk || p.glued(n.end)) && !(p.glued(e) && p.tokens[e].kind == tokenWord && !p.lex.cjk) {
			return candidate{start: i, end: e, value: OrdinalOutput{Value: n.int()}}, true
		}
	}

	// twenty-first
	if w, e, ok := p.lex.numbers.match(p.tokens, i); ok && w.class == classTens {
		next := e
		if p.symbolAt(next, "-") && p.glued(next) {
			next++
		}
		if v, end, ok := p.lex.ordinals.match(p.tokens, next); ok && v < 10 {
			return candidate{start: i, end: end, value: OrdinalOutput{Value: w.value + v}}, true
		}
	}

	if v, e, ok := p.lex.ordinals.match(p.tokens, i); ok {
		return candidate{start: i, end: e, value: OrdinalOutput{Value: v}}, true
	}
	return candidate{}, false
}

func (p *parser) percentageAt(i int) (candidate, bool) {
	n, ok := p.numberAt(i)
	if !ok || n.article {
		return candidate{}, false
	}
	e := p.lex.percent.end(p.tokens, n.end)
	if e < 0 {
		return candidate{}, false
	}
	return candidate{start: i, end: e, value: PercentageOutput{Value: n.value}}, true
}

// precisionAt skips an approximation marker starting at token i.
func (p *parser) precisionAt(i int) (Precision, int) {
	if e := p.lex.approx.end(p.tokens, i); e >= 0 {
		return Approximate, e
	}
	return Exact, i
}

func (p *parser) amountOfMoneyAt(i int) (candidate, bool) {
	precision, j := p.precisionAt(i)

	if unit, e, ok := p.lex.currencyPrefixes.match(p.tokens, j); ok {
		if n, ok := p.numberAt(e); ok && !n.article {
			return candidate{start: i, end: n.end, value: AmountOfMoneyOutput{
				Value:     n.value,
				Precision: precision,
				Unit:      &unit,
			}}, true
		}
	}

	n, ok := p.numberAt(j)
	if !ok {
		return candidate{}, false
	}
	unit, e, ok := p.lex.currencies.match(p.tokens, n.end)
	if !ok {
		return candidate{}, false
	}
	return candidate{start: i, end: e, value: AmountOfMoneyOutput{
		Value:     n.value,
		Precision: precision,
		Unit:      &unit,
	}}, true
}

func (p *parser) temperatureAt(i int) (candidate, bool) {
	// 摂氏20度
	if unit, e, ok := p.lex.temperatureUnits.match(p.tokens, i); ok && unit != "degree" {
		if n, ok := p.numberAt(e); ok && !n.article {
			end := n.end
			if degree, e, ok := p.lex.temperatureUnits.match(p.tokens, end); ok && degree == "degree" {
				end = e
			}
			return candidate{start: i, end: end, value: TemperatureOutput{Value: n.value, Unit: &unit}}, true
		}
	}

	n, ok := p.numberAt(i)
	if !ok || n.article {
		return candidate{}, false
	}
	unit, e, ok := p.lex.temperatureUnits.match(p.tokens, n.end)
	if !ok {
		return candidate{}, false
	}
	return candidate{start: i, end: e, value: TemperatureOutput{Value: n.value, Unit: &unit}}, true
}

// componentAt parses one quantity of a duration, such as "3 hours" or
// "half an hour". Fractions are carried to the next finer grain.
func (p *parser) componentAt(i int) (PeriodComponent, int, bool) {
	if e := p.lex.halfHour.end(p.tokens, i); e >= 0 {
		return PeriodComponent{Grain: GrainMinute, Quantity: 30}, e, true
	}
	n, ok := p.numberAt(i)
	if !ok || n.value < 0 {
		return PeriodComponent{}, 0, false
	}
	grain, e, ok := p.lex.durationUnits.match(p.tokens, n.end)
	if !ok {
		return PeriodComponent{}, 0, false
	}
	if n.integer || n.value == math.Trunc(n.value) {
		return PeriodComponent{Grain: grain, Quantity: n.int()}, e, true
	}

	factors := map[Grain]float64{GrainDay: 24, GrainHour: 60, GrainMinute: 60}
	finer := map[Grain]Grain{GrainDay: GrainHour, GrainHour: GrainMinute, GrainMinute: GrainSecond}
	factor, ok := factors[grain]
	if !ok {
		return PeriodComponent{}, 0, false
	}
	return PeriodComponent{Grain: finer[grain], Quantity: int64(math.Round(n.value * factor))}, e, true
}

// periodAt parses components joined by "and", commas or nothing, each finer
// than the previous one.
func (p *parser) periodAt(i int) ([]PeriodComponent, int, bool) {
	first, end, ok := p.componentAt(i)
	if !ok {
		return nil, 0, false
	}
	period := []PeriodComponent{first}
	for {
		next := p.lex.durationJoiners.optional(p.tokens, end)
		c, e, ok := p.componentAt(next)
		if !ok || c.Grain <= period[len(period)-1].Grain {
			break
		}
		period = append(period, c)
		end = e
	}
	return period, end, true
}

func (p *parser) durationAt(i int) (candidate, bool) {
	precision, j := p.precisionAt(i)
	if e := p.lex.durationPrefixes.end(p.tokens, j); e >= 0 {
		j = e
		if precision == Exact {
			precision, j = p.precisionAt(j)
		}
	}
	period, end, ok := p.periodAt(j)
	if !ok {
		return candidate{}, false
	}
	return candidate{start: i, end: end, value: DurationOutput{Period: period, Precision: precision}}, true
}
