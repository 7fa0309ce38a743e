package editor_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qgcalc/internal/domain"
	"qgcalc/internal/editor"
	"qgcalc/internal/engine"
)

type recorder struct{ got []domain.HistoryRecord }

func (r *recorder) Record(rec domain.HistoryRecord) { r.got = append(r.got, rec) }

// press feeds keys, one per character; "E" stands for erase and "C" for clear.
func press(e *editor.Editor, keys string) domain.DisplayState {
	var d domain.DisplayState
	for _, c := range keys {
		k := editor.Key(string(c))
		switch c {
		case 'E':
			k = editor.KeyErase
		case 'C':
			k = editor.KeyClear
		}
		d = e.Submit(k)
	}
	return d
}

func TestSubmit_ImplicitMultiplicationThenEvaluate(t *testing.T) {
	rec := &recorder{}
	e := editor.New(rec)

	press(e, "2(3)")
	assert.Equal(t, "2*(3)", e.Text())

	d := e.Submit(editor.KeyEquals)
	assert.Equal(t, "6", e.Text())
	assert.Equal(t, domain.DisplayState{Primary: "6", Secondary: "6"}, d)

	v, ok := e.LastResult()
	require.True(t, ok)
	assert.Equal(t, 6.0, v)
	assert.Equal(t, []domain.HistoryRecord{{Expression: "2*(3)", Result: 6}}, rec.got)
}

func TestSubmit_TrailingOperatorShowsError(t *testing.T) {
	rec := &recorder{}
	e := editor.New(rec)

	d := press(e, "5-=")
	assert.True(t, d.IsError)
	assert.Equal(t, domain.ErrorText, d.Primary)
	assert.Equal(t, "5-", d.Secondary)
	assert.Equal(t, "5-", e.Text())
	assert.ErrorIs(t, e.Err(), engine.ErrBinaryOperator)
	assert.Empty(t, rec.got)

	d = e.Submit(editor.Digit(1))
	assert.False(t, d.IsError)
	assert.Equal(t, "5-1", e.Text())
	assert.NoError(t, e.Err())
}

func TestSubmit_LeadingMinus(t *testing.T) {
	e := editor.New(nil)
	d := e.Submit(editor.KeySubtract)
	assert.Equal(t, "-", e.Text())
	assert.Equal(t, domain.DisplayState{Primary: "0", Secondary: "-"}, d)

	for _, k := range []editor.Key{editor.KeyAdd, editor.KeyMultiply, editor.KeyDivide} {
		e := editor.New(nil)
		e.Submit(k)
		assert.Empty(t, e.Text(), "key %s on empty text", k)
	}
}

func TestSubmit_Transitions(t *testing.T) {
	cases := []struct {
		keys string
		want string
	}{
		// digits
		{"12", "12"},
		{"(2)3", "(2)*3"},
		{"5%3", "5%3"},
		// decimal
		{"1.2.", "1.2"},
		{"1.2+.5", "1.2+.5"},
		{"5%.", "5%*."},
		{"(2).", "(2)*."},
		{"..", "."},
		// percent
		{"%", ""},
		{"5%%", "5%%"},
		{"5+%", "5+"},
		{"(%", "("},
		{"(2)%", "(2)%"},
		// operators
		{"5+*", "5*"},
		{"5*-", "5*-"},
		{"5--", "5-"},
		{"5*-+", "5+"},
		{"5*--", "5*-"},
		{"-+", "-"},
		{"(+", "("},
		{"(-", "(-"},
		{"(-*", "(-"},
		{"5%+", "5%+"},
		{"(2)/", "(2)/"},
		// open paren
		{"(", "("},
		{"((", "(("},
		{"5(", "5*("},
		{"5%(", "5%*("},
		{"(2)(", "(2)*("},
		{"5+(", "5+("},
		{"5.(", "5."},
		// close paren
		{")", ""},
		{"5)", "5"},
		{"()", "("},
		{"(5+)", "(5+"},
		{"(5))", "(5)"},
		{"((5))", "((5))"},
		// erase and clear
		{"12E", "1"},
		{"E", ""},
		{"12+3C", ""},
	}
	for _, tc := range cases {
		t.Run(tc.keys, func(t *testing.T) {
			e := editor.New(nil)
			press(e, tc.keys)
			assert.Equal(t, tc.want, e.Text())
		})
	}
}

func TestSubmit_EvaluateEmptyIsNoop(t *testing.T) {
	rec := &recorder{}
	e := editor.New(rec)
	d := e.Submit(editor.KeyEquals)
	assert.Equal(t, domain.DisplayState{Primary: "0", Secondary: "0"}, d)
	assert.Empty(t, rec.got)
	_, ok := e.LastResult()
	assert.False(t, ok)
}

func TestSubmit_UnknownKeyIgnored(t *testing.T) {
	e := editor.New(nil)
	press(e, "5-=")
	require.Error(t, e.Err())

	d := e.Submit(editor.Key("sqrt"))
	assert.True(t, d.IsError, "an unknown key does not touch the session")
	assert.Equal(t, "5-", e.Text())
}

func TestDisplay_Derivation(t *testing.T) {
	e := editor.New(nil)
	assert.Equal(t, domain.DisplayState{Primary: "0", Secondary: "0"}, e.Display())

	press(e, "12+3.5%")
	assert.Equal(t, domain.DisplayState{Primary: "3.5%", Secondary: "12+3.5%"}, e.Display())

	press(e, "=")
	assert.Equal(t, "12.035", e.Text())

	press(e, "*(")
	d := e.Display()
	assert.Equal(t, "12.035", d.Primary, "falls back to the last result")
	assert.Equal(t, "12.035*(", d.Secondary)

	press(e, "C")
	assert.Equal(t, domain.DisplayState{Primary: "0", Secondary: "0"}, e.Display())
	_, ok := e.LastResult()
	assert.False(t, ok)
}

func TestSubmit_ResultCanBeExtended(t *testing.T) {
	e := editor.New(nil)
	press(e, "0.1+0.2=")
	assert.Equal(t, "0.3", e.Text())
	press(e, "*10=")
	assert.Equal(t, "3", e.Text())
}

func TestSubmit_NegativeZeroResult(t *testing.T) {
	e := editor.New(nil)
	press(e, "-0*5=")
	assert.Equal(t, "0", e.Text())
}

func TestLoad(t *testing.T) {
	e := editor.New(nil)
	press(e, "5/0=")
	require.ErrorIs(t, e.Err(), engine.ErrDivisionByZero)

	e.Load(-2.5)
	assert.NoError(t, e.Err())
	assert.Equal(t, "-2.5", e.Text())
	press(e, "*2=")
	assert.Equal(t, "-5", e.Text())
}

func TestKeyFromInput(t *testing.T) {
	cases := map[string]editor.Key{
		"Enter":     editor.KeyEquals,
		"=":         editor.KeyEquals,
		"Backspace": editor.KeyErase,
		"Escape":    editor.KeyClear,
		"x":         editor.KeyMultiply,
		"X":         editor.KeyMultiply,
		"7":         editor.Digit(7),
		"%":         editor.KeyPercent,
		"(":         editor.KeyOpenParen,
	}
	for in, want := range cases {
		got, ok := editor.KeyFromInput(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"a", "^", "", "10"} {
		_, ok := editor.KeyFromInput(in)
		assert.False(t, ok, in)
	}
}

// Random key sequences never produce a doubled operator other than the
// operator-then-minus pair, and never a ')' without a matching '('.
func TestSubmit_TextInvariants(t *testing.T) {
	alphabet := []editor.Key{
		editor.Digit(0), editor.Digit(7), editor.KeyDecimal, editor.KeyAdd, editor.KeySubtract,
		editor.KeyMultiply, editor.KeyDivide, editor.KeyOpenParen, editor.KeyCloseParen,
		editor.KeyPercent, editor.KeyErase,
	}
	seed := uint32(1)
	next := func() int {
		seed = seed*1664525 + 1013904223
		return int(seed>>16) % len(alphabet)
	}

	for run := 0; run < 200; run++ {
		e := editor.New(nil)
		for i := 0; i < 40; i++ {
			e.Submit(alphabet[next()])
			checkText(t, e.Text())
		}
	}
}

func checkText(t *testing.T, text string) {
	t.Helper()
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		require.True(t, strings.IndexByte("0123456789.+-*/()%", c) >= 0, "alphabet: %q", text)
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			require.GreaterOrEqual(t, depth, 0, "unmatched ')': %q", text)
		}
		if i > 0 && engine.IsOperator(c) && engine.IsOperator(text[i-1]) {
			require.True(t, c == '-' && text[i-1] != '-', "double operator: %q", text)
		}
	}
	// "-" can only follow an operator as the second of a pair.
	for i := 2; i < len(text); i++ {
		require.False(t, engine.IsOperator(text[i]) && engine.IsOperator(text[i-1]) && engine.IsOperator(text[i-2]),
			"operator run: %q", text)
	}
	// Implicit multiplication: nothing but an operator, ')' or '%' follows ')'.
	for i := 1; i < len(text); i++ {
		if text[i-1] == ')' {
			c := text[i]
			require.True(t, engine.IsOperator(c) || c == ')' || c == '%', "after ')': %q", text)
		}
	}
}
