package tzpos

import (
	"fmt"
	"strings"
)

// parser is a cursor over a TZ string. Productions consume from pos and
// return a kind error from the taxonomy in tzpos.go on mismatch.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) fail(err error) error {
	return fmt.Errorf("parse TZ %q: offset %d: %w", p.input, p.pos, err)
}

func (p *parser) expect(c byte) error {
	if p.eof() {
		return ErrTruncated
	}
	if p.peek() != c {
		return fmt.Errorf("expected %q: %w", c, ErrDayRule)
	}
	p.pos++
	return nil
}

func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// name parses a zone abbreviation, either quoted ("<UTC+8>", alphanumeric
// plus sign characters) or a bare run of at least three letters.
func (p *parser) name() (string, error) {
	if p.eof() {
		return "", ErrTruncated
	}
	if p.peek() == '<' {
		end := strings.IndexByte(p.input[p.pos:], '>')
		if end < 0 {
			return "", ErrTruncated
		}
		quoted := p.input[p.pos+1 : p.pos+end]
		if quoted == "" || len(quoted) > tznameMax {
			return "", ErrAbbrev
		}
		for i := 0; i < len(quoted); i++ {
			if c := quoted[i]; !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' {
				return "", ErrAbbrev
			}
		}
		p.pos += end + 1
		return quoted, nil
	}

	start := p.pos
	for !p.eof() && isAlpha(p.peek()) {
		p.pos++
	}
	n := p.pos - start
	if n < 3 {
		return "", ErrAbbrev
	}
	if n > tznameMax {
		return "", ErrAbbrev
	}
	return p.input[start:p.pos], nil
}

// number parses an unsigned decimal integer of at most maxDigits digits.
func (p *parser) number(maxDigits int) (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) && p.pos-start < maxDigits {
		p.pos++
	}
	if p.pos == start {
		if p.eof() {
			return 0, ErrTruncated
		}
		return 0, fmt.Errorf("expected digit at %q: %w", p.input[p.pos:], ErrOffset)
	}
	v := 0
	for _, c := range []byte(p.input[start:p.pos]) {
		v = v*10 + int(c-'0')
	}
	return v, nil
}

// hms parses h[:mm[:ss]] and returns total seconds. maxHours bounds the
// hour field; minutes and seconds are bounded to 59.
func (p *parser) hms(maxHours int) (int, error) {
	h, err := p.number(3)
	if err != nil {
		return 0, err
	}
	if h > maxHours {
		return 0, fmt.Errorf("hours %d: %w", h, ErrRange)
	}
	secs := h * 3600
	if p.eof() || p.peek() != ':' {
		return secs, nil
	}
	p.pos++
	m, err := p.number(2)
	if err != nil {
		return 0, err
	}
	if m > 59 {
		return 0, fmt.Errorf("minutes %d: %w", m, ErrRange)
	}
	secs += m * 60
	if p.eof() || p.peek() != ':' {
		return secs, nil
	}
	p.pos++
	s, err := p.number(2)
	if err != nil {
		return 0, err
	}
	if s > 59 {
		return 0, fmt.Errorf("seconds %d: %w", s, ErrRange)
	}
	return secs + s, nil
}

// offset parses a POSIX offset field, [+|-]h[:mm[:ss]], and returns the
// value in seconds with the POSIX sign convention (positive west of UTC).
func (p *parser) offset() (int, error) {
	if p.eof() {
		return 0, ErrTruncated
	}
	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.pos++
	}
	secs, err := p.hms(24)
	if err != nil {
		return 0, err
	}
	if neg {
		secs = -secs
	}
	return secs, nil
}

// ruleTime parses the optional /time suffix of a day rule. RFC8536 V3
// footers extend the POSIX range to signed values up to 167 hours.
func (p *parser) ruleTime() (int, error) {
	if p.eof() {
		return 0, ErrTruncated
	}
	neg := false
	if c := p.peek(); c == '+' || c == '-' {
		neg = c == '-'
		p.pos++
	}
	secs, err := p.hms(167)
	if err != nil {
		return 0, err
	}
	if neg {
		secs = -secs
	}
	return secs, nil
}

// dayRule parses one of the three date forms, Jn, n or Mm.w.d, with the
// optional /time suffix.
func (p *parser) dayRule() (DayRule, error) {
	if p.eof() {
		return DayRule{}, ErrTruncated
	}
	var d DayRule
	switch p.peek() {
	case 'J':
		p.pos++
		n, err := p.number(3)
		if err != nil {
			return DayRule{}, badDay(err)
		}
		if n < 1 || n > 365 {
			return DayRule{}, fmt.Errorf("julian day %d: %w", n, ErrRange)
		}
		d = DayRule{Form: DayJulian, Day: n}
	case 'M':
		p.pos++
		m, err := p.number(2)
		if err != nil {
			return DayRule{}, badDay(err)
		}
		if err := p.expect('.'); err != nil {
			return DayRule{}, err
		}
		w, err := p.number(1)
		if err != nil {
			return DayRule{}, badDay(err)
		}
		if err := p.expect('.'); err != nil {
			return DayRule{}, err
		}
		wd, err := p.number(1)
		if err != nil {
			return DayRule{}, badDay(err)
		}
		if m < 1 || m > 12 || w < 1 || w > 5 || wd > 6 {
			return DayRule{}, fmt.Errorf("M%d.%d.%d: %w", m, w, wd, ErrRange)
		}
		d = DayRule{Form: DayMonthWeek, Month: m, Week: w, Weekday: wd}
	default:
		n, err := p.number(3)
		if err != nil {
			return DayRule{}, badDay(err)
		}
		if n > 365 {
			return DayRule{}, fmt.Errorf("day of year %d: %w", n, ErrRange)
		}
		d = DayRule{Form: DayZeroBased, Day: n}
	}

	d.Time = defaultRuleTime
	if !p.eof() && p.peek() == '/' {
		p.pos++
		t, err := p.ruleTime()
		if err != nil {
			return DayRule{}, err
		}
		d.Time = t
	}
	return d, nil
}

// badDay reclassifies low-level scan errors as day rule syntax errors
// while keeping truncation distinct.
func badDay(err error) error {
	if err == ErrTruncated {
		return err
	}
	return fmt.Errorf("%v: %w", err, ErrDayRule)
}
