package corvid

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptDecode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		opt       Opt
		showKeys  bool
		showQuote bool
		delimit   bool
		asJSON    bool
	}{
		"braced":     {opt: Braced},
		"flat":       {opt: Flat},
		"keyed":      {opt: Keyed, showKeys: true},
		"quoted":     {opt: Quoted, showQuote: true},
		"prefixed":   {opt: Prefixed, delimit: true},
		"flat keyed": {opt: FlatKeyed, showKeys: true},
		"json":       {opt: JSON, showKeys: true, showQuote: true, asJSON: true},
		"json flat":  {opt: JSON | Flat, showKeys: true, showQuote: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.showKeys, tt.opt.ShowKeys())
			assert.Equal(t, tt.showQuote, tt.opt.ShowQuotes())
			assert.Equal(t, tt.delimit, tt.opt.Delimit())
			assert.Equal(t, tt.asJSON, tt.opt.AsJSON())
		})
	}
}

func TestOptHeadNext(t *testing.T) {
	t.Parallel()
	assert.False(t, JSON.Head().Delimit())
	assert.True(t, JSON.Next().Delimit())
	// Head and Next only touch the Prefixed bit.
	assert.Equal(t, JSON, JSON.Next().Head())
	assert.Equal(t, Flat|Prefixed, Flat.Next())
}

func TestOptBraces(t *testing.T) {
	t.Parallel()
	assert.True(t, Braced.Braces('[', ']'))
	assert.False(t, Flat.Braces('[', ']'))
	assert.False(t, Braced.Braces(0, ']'))
	assert.False(t, Braced.Braces('[', 0))
}

func TestOptEscape(t *testing.T) {
	t.Parallel()
	// Reserved flag: decoded but nothing consumes it.
	assert.True(t, Quoted.Escape('"', '"'))
	assert.False(t, Quoted.Escape('[', ']'))
	assert.False(t, Braced.Escape('"', '"'))
}

func TestLessKey(t *testing.T) {
	t.Parallel()
	// Numeric keys order numerically, not lexically.
	assert.True(t, lessKey(2, 10))
	assert.False(t, lessKey(10, 2))
	assert.True(t, lessKey(uint8(1), uint8(2)))
	assert.True(t, lessKey(1.5, 2.5))
	assert.True(t, lessKey("a", "b"))
	assert.True(t, lessKey(false, true))
}

func TestMapEntriesSorted(t *testing.T) {
	t.Parallel()
	m := map[int]string{10: "j", 2: "b", 7: "g"}
	entries := mapEntries(reflect.ValueOf(m))
	keys := make([]any, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	assert.Equal(t, []any{2, 7, 10}, keys)
}

func TestStringLike(t *testing.T) {
	t.Parallel()
	type tag string
	assert.True(t, stringLike("a"))
	assert.True(t, stringLike(tag("a")))
	assert.True(t, stringLike([]byte("a")))
	assert.False(t, stringLike(1))
	assert.False(t, stringLike(Char('a')))
	assert.False(t, stringLike([]int{1}))
	assert.False(t, stringLike(nil))
}

func TestPadNum(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	padNum(&sb, "42", 5, '0')
	assert.Equal(t, "00042", sb.String())
	sb.Reset()
	padNum(&sb, "123456", 3, '0')
	assert.Equal(t, "123456", sb.String())
}

func TestDelimAppendIf(t *testing.T) {
	t.Parallel()
	var sb strings.Builder
	DefaultDelim.appendIf(&sb, false)
	assert.Equal(t, "", sb.String())
	DefaultDelim.appendIf(&sb, true)
	assert.Equal(t, ", ", sb.String())
}
