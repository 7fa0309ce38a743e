package editor

import (
	"strings"

	"qgcalc/internal/domain"
	"qgcalc/internal/engine"
	"qgcalc/internal/numfmt"
)

// Recorder receives a record for every successful evaluation.
type Recorder interface {
	Record(rec domain.HistoryRecord)
}

// Editor owns the expression text of one calculator session.
//
// The zero value is not usable; construct with New.
type Editor struct {
	text       string
	lastResult float64
	hasResult  bool
	err        error // set by a failed "=", cleared by the next key

	recorder Recorder
}

// New returns an empty session. rec may be nil.
func New(rec Recorder) *Editor {
	return &Editor{recorder: rec}
}

// Submit applies k and returns the resulting display. Unknown keys leave the
// session untouched.
func (e *Editor) Submit(k Key) domain.DisplayState {
	t, ok := transitions[k]
	if !ok {
		return e.Display()
	}
	e.err = nil
	t(e, k)
	return e.Display()
}

// Text returns the current expression text.
func (e *Editor) Text() string { return e.text }

// LastResult returns the result of the last successful evaluation.
func (e *Editor) LastResult() (float64, bool) { return e.lastResult, e.hasResult }

// Err returns the error of the last key if it was a failed evaluation.
func (e *Editor) Err() error { return e.err }

// Load replaces the text with v, as if its digits had been typed.
func (e *Editor) Load(v float64) {
	e.err = nil
	e.text = numfmt.Result(v)
}

// Display derives the display from the current state.
func (e *Editor) Display() domain.DisplayState {
	d := domain.DisplayState{Secondary: e.text}
	if d.Secondary == "" {
		d.Secondary = "0"
	}
	switch seg := numericSegment(e.text); {
	case e.err != nil:
		d.Primary = domain.ErrorText
		d.IsError = true
	case seg != "":
		d.Primary = seg
	case e.hasResult:
		d.Primary = numfmt.Result(e.lastResult)
	default:
		d.Primary = "0"
	}
	return d
}

type transition func(e *Editor, k Key)

var transitions = buildTransitions()

func buildTransitions() map[Key]transition {
	m := map[Key]transition{
		KeyDecimal:    (*Editor).decimal,
		KeyPercent:    (*Editor).percent,
		KeyAdd:        (*Editor).operator,
		KeySubtract:   (*Editor).operator,
		KeyMultiply:   (*Editor).operator,
		KeyDivide:     (*Editor).operator,
		KeyOpenParen:  (*Editor).openParen,
		KeyCloseParen: (*Editor).closeParen,
		KeyEquals:     (*Editor).evaluate,
		KeyErase:      (*Editor).erase,
		KeyClear:      (*Editor).clear,
	}
	for d := 0; d <= 9; d++ {
		m[Digit(d)] = (*Editor).digit
	}
	return m
}

func (e *Editor) last() byte {
	if e.text == "" {
		return 0
	}
	return e.text[len(e.text)-1]
}

func (e *Editor) digit(k Key) {
	if e.last() == ')' {
		e.text += "*"
	}
	e.text += string(k)
}

func (e *Editor) decimal(Key) {
	seg := numericSegment(e.text)
	if strings.Contains(seg, ".") && !strings.Contains(seg, "%") {
		return
	}
	if c := e.last(); c == ')' || c == '%' {
		e.text += "*"
	}
	e.text += "."
}

func (e *Editor) percent(Key) {
	c := e.last()
	if isDigit(c) || c == '.' || c == ')' || c == '%' {
		e.text += "%"
	}
}

func (e *Editor) operator(k Key) {
	op := string(k)
	if e.text == "" {
		if k == KeySubtract {
			e.text = op
		}
		return
	}
	prev := e.last()
	switch {
	case engine.IsOperator(prev):
		if k == KeySubtract {
			// "5*" + "-" starts a negative operand; "5-" + "-" is a no-op.
			if prev != '-' {
				e.text += op
			}
			return
		}
		// Replace the whole trailing operator run so "5*-" + "+" gives "5+".
		base := strings.TrimRight(e.text, "+-*/")
		if base == "" || base[len(base)-1] == '(' {
			return
		}
		e.text = base + op
	case prev == '(':
		if k == KeySubtract {
			e.text += op
		}
	default:
		e.text += op
	}
}

func (e *Editor) openParen(Key) {
	c := e.last()
	switch {
	case e.text == "" || engine.IsOperator(c) || c == '(':
		e.text += "("
	case isDigit(c) || c == ')' || c == '%':
		e.text += "*("
	}
}

func (e *Editor) closeParen(Key) {
	if e.text == "" {
		return
	}
	open := strings.Count(e.text, "(")
	closed := strings.Count(e.text, ")")
	c := e.last()
	if open > closed && !engine.IsOperator(c) && c != '(' {
		e.text += ")"
	}
}

func (e *Editor) evaluate(Key) {
	if e.text == "" {
		return
	}
	v, err := engine.Evaluate(e.text)
	if err != nil {
		e.err = err
		return
	}
	e.lastResult, e.hasResult = v, true
	if e.recorder != nil {
		e.recorder.Record(domain.HistoryRecord{Expression: e.text, Result: v})
	}
	e.text = numfmt.Result(v)
}

func (e *Editor) erase(Key) {
	if e.text != "" {
		e.text = e.text[:len(e.text)-1]
	}
}

func (e *Editor) clear(Key) {
	e.text = ""
	e.lastResult, e.hasResult = 0, false
}

// numericSegment returns the trailing run of digits, '.' and '%' in s.
func numericSegment(s string) string {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if !isDigit(c) && c != '.' && c != '%' {
			break
		}
		i--
	}
	return s[i:]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
