package grammar

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// number is a numeric expression spanning tokens [start, end).
type number struct {
	value   float64
	integer bool
	start   int
	end     int
	digits  bool
	article bool
}

func (n number) int() int64 {
	return int64(math.Round(n.value))
}

var (
	kanjiDigits = map[string]int64{
		"〇": 0, "零": 0, "一": 1, "二": 2, "三": 3, "四": 4, "五": 5, "六": 6, "七": 7, "八": 8, "九": 9,
	}
	kanjiSmall = map[string]int64{"十": 10, "百": 100, "千": 1000}
	kanjiLarge = map[string]int64{"万": 10000, "億": 100000000}
)

// numberAt returns the longest number starting at token i. Articles are
// returned as the number one with the article flag set.
func (p *parser) numberAt(i int) (number, bool) {
	best, ok := p.digitNumber(i)
	var other number
	var found bool
	if p.lex.cjk {
		other, found = p.kanjiNumber(i)
	} else {
		other, found = p.wordNumber(i)
	}
	if found && (!ok || other.end > best.end) {
		return other, true
	}
	return best, ok
}

// glued reports whether token j directly follows the previous token.
func (p *parser) glued(j int) bool {
	return j < len(p.tokens) && j > 0 && !p.tokens[j].spaceBefore
}

func (p *parser) symbolAt(j int, symbol string) bool {
	return j < len(p.tokens) && p.tokens[j].kind == tokenSymbol && p.tokens[j].text == symbol
}

func (p *parser) digitNumber(i int) (number, bool) {
	n := number{start: i, digits: true, integer: true}
	j := i
	negative := false
	if p.symbolAt(j, "-") && p.glued(j+1) {
		negative = true
		j++
	}
	if j >= len(p.tokens) || p.tokens[j].kind != tokenDigits {
		return number{}, false
	}

	decimal, thousands := ".", ","
	if p.lex.decimalComma {
		decimal, thousands = ",", "."
	}
	var text strings.Builder
	text.WriteString(width.Narrow.String(p.tokens[j].text))
	j++
	for p.symbolAt(j, thousands) && p.glued(j) && p.glued(j+1) &&
		p.tokens[j+1].kind == tokenDigits && len(p.tokens[j+1].text) == 3 {
		text.WriteString(width.Narrow.String(p.tokens[j+1].text))
		j += 2
	}
	if p.symbolAt(j, decimal) && p.glued(j) && p.glued(j+1) && p.tokens[j+1].kind == tokenDigits {
		text.WriteString(".")
		text.WriteString(width.Narrow.String(p.tokens[j+1].text))
		n.integer = false
		j += 2
	}

	v, err := strconv.ParseFloat(text.String(), 64)
	if err != nil {
		return number{}, false
	}
	if negative {
		v = -v
	}
	n.value, n.end = v, j
	return n, true
}

// nextNumberWord matches a number word at token j, compounds included.
func (p *parser) nextNumberWord(j int) (numberWord, int, bool) {
	w, end, ok := p.lex.numbers.match(p.tokens, j)
	if ok {
		return w, end, true
	}
	if p.lex.compoundNumber != nil && j < len(p.tokens) && p.tokens[j].kind == tokenWord {
		if v, ok := p.lex.compoundNumber(p.tokens[j].text); ok {
			return numberWord{value: v, class: classTeen}, j + 1, true
		}
	}
	return numberWord{}, 0, false
}

// quatreVingt reports whether w turns a preceding four into eighty.
func (p *parser) quatreVingt(prev, w numberWord) bool {
	return p.lex.vigesimal && prev.class == classUnit && !prev.article && prev.value == 4 &&
		w.class == classTens && w.value == 20
}

// follows reports whether w can continue a number whose last word is prev.
func (p *parser) follows(prev, w numberWord) bool {
	if prev.article {
		return w.class == classHundred || w.class == classScale
	}
	switch prev.class {
	case classUnit:
		return w.class == classHundred || w.class == classScale || p.quatreVingt(prev, w)
	case classTeen:
		// dix-sept
		return w.class == classHundred || w.class == classScale ||
			(p.lex.vigesimal && prev.value == 10 && w.class == classUnit)
	case classTens:
		return w.class == classUnit || w.class == classScale ||
			(w.class == classTeen && (prev.value == 60 || prev.value == 80))
	case classHundred:
		return w.class != classHundred
	default:
		return w.class == classUnit || w.class == classTeen || w.class == classTens
	}
}

func (p *parser) wordNumber(i int) (number, bool) {
	prev, j, ok := p.nextNumberWord(i)
	if !ok {
		return number{}, false
	}
	var total, current int64
	apply := func(w numberWord) numberWord {
		switch {
		case w.class == classHundred:
			if current == 0 {
				current = 1
			}
			current *= w.value
		case w.class == classScale:
			if current == 0 {
				current = 1
			}
			total += current * w.value
			current = 0
		case p.quatreVingt(prev, w):
			current += 76
			w.value = 80
		default:
			current += w.value
		}
		return w
	}
	current = prev.value
	words := 1

	for j < len(p.tokens) {
		next := j
		joined := false
		if p.symbolAt(j, "-") && p.glued(j) && p.glued(j+1) {
			next, joined = j+1, true
		} else if prev.class == classTens || prev.class == classHundred || prev.class == classScale {
			if e := p.lex.numberJoiners.end(p.tokens, j); e >= 0 {
				next, joined = e, true
			}
		}
		w, e, ok := p.nextNumberWord(next)
		if !ok {
			break
		}
		if w.article {
			// vingt et un
			if !joined || prev.class != classTens {
				break
			}
			w.article = false
		}
		if joined && w.class != classUnit && w.class != classTeen && w.class != classTens {
			break
		}
		if !p.follows(prev, w) {
			break
		}
		prev = apply(w)
		j = e
		words++
	}

	return number{
		value:   float64(total + current),
		integer: true,
		start:   i,
		end:     j,
		article: prev.article && words == 1,
	}, true
}

// kanjiNumber parses positional kanji digits combined with multipliers, as
// in 二千十三 or 3万.
func (p *parser) kanjiNumber(i int) (number, bool) {
	var total, section, digit int64
	hasDigit := false
	j := i
	for ; j < len(p.tokens); j++ {
		if j > i && p.tokens[j].spaceBefore {
			break
		}
		t := p.tokens[j]
		if d, ok := kanjiDigits[t.text]; ok {
			digit = digit*10 + d
			hasDigit = true
			continue
		}
		if t.kind == tokenDigits {
			if hasDigit {
				break
			}
			v, ok := digitsValue(t)
			if !ok {
				break
			}
			digit, hasDigit = v, true
			continue
		}
		if m, ok := kanjiSmall[t.text]; ok {
			if !hasDigit {
				digit = 1
			}
			section += digit * m
			digit, hasDigit = 0, false
			continue
		}
		if m, ok := kanjiLarge[t.text]; ok && j > i {
			section += digit
			if section == 0 {
				section = 1
			}
			total += section * m
			section, digit, hasDigit = 0, 0, false
			continue
		}
		break
	}
	if j == i || (j == i+1 && p.tokens[i].kind == tokenDigits) {
		return number{}, false
	}
	return number{value: float64(total + section + digit), integer: true, start: i, end: j}, true
}

// standaloneNumber recognizes a Number entity. Digits glued to letters, as in
// mp3, are not numbers.
func (p *parser) standaloneNumber(i int) (candidate, bool) {
	n, ok := p.numberAt(i)
	if !ok || n.article {
		return candidate{}, false
	}
	if n.digits && !p.lex.cjk {
		if p.glued(n.start) && p.tokens[n.start-1].kind == tokenWord {
			return candidate{}, false
		}
		if p.glued(n.end) && p.tokens[n.end].kind == tokenWord {
			return candidate{}, false
		}
	}
	return candidate{start: n.start, end: n.end, value: numberOutput(n)}, true
}

func numberOutput(n number) Output {
	if n.integer {
		return IntegerOutput{Value: n.int()}
	}
	return FloatOutput{Value: n.value}
}
