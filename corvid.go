package corvid

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling. Rendering itself never
// fails; these come from the registration phase.
var (
	ErrDuplicateOverride = errors.New("duplicate override registration")
	ErrNilOverride       = errors.New("nil override function")
)

// Target is an append-only text sink. The engine only ever appends to it,
// never reads back or truncates. Satisfied by [strings.Builder],
// [bytes.Buffer], and [bufio.Writer], among others.
//
// Write errors are the sink's concern: builders never fail, and buffered
// writers report failures at flush.
type Target interface {
	io.StringWriter
	io.ByteWriter
}

var (
	_ Target = (*strings.Builder)(nil)
	_ Target = (*bytes.Buffer)(nil)
	_ Target = (*bufio.Writer)(nil)
)

// puts appends s to t, discarding the sink's error result.
func puts(t Target, s string) { _, _ = t.WriteString(s) }

// putb appends a single byte to t.
func putb(t Target, c byte) { _ = t.WriteByte(c) }

// Delim is an immutable join delimiter.
type Delim string

// DefaultDelim separates joined values unless another delimiter is given.
const DefaultDelim Delim = ", "

// appendIf emits the delimiter only when cond is true. This is how a
// leading delimiter is suppressed before the first element of a sequence
// while still appearing between subsequent elements.
func (d Delim) appendIf(t Target, cond bool) {
	if cond {
		puts(t, string(d))
	}
}

// Pair is a key-value element. A Pair renders as a key-value pair wherever
// the join options ask for keys; otherwise only the value is used.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// kv exposes the pair untyped for shape classification.
func (p Pair[K, V]) kv() (key, value any) { return p.Key, p.Value }

// keyValuer is the pair shape: map entries and [Pair] values implement it.
type keyValuer interface {
	kv() (key, value any)
}

// Char renders as a literal character rather than a number. Plain rune and
// byte values take the numeric path; wrap them in Char to get the literal.
type Char rune
