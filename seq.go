package corvid

import (
	"iter"
	"strings"
)

// AppendSeq appends each value from seq, in order, with no delimiters.
func AppendSeq[T any](t Target, seq iter.Seq[T]) Target {
	for v := range seq {
		appendValue(t, v)
	}
	return t
}

// AppendJoinSeq joins values from seq under opt, with container
// semantics: the sequence is collected first so it brackets and delimits
// exactly like a slice of the same elements.
func AppendJoinSeq[T any](t Target, opt Opt, d Delim, seq iter.Seq[T]) Target {
	var parts []T
	for v := range seq {
		parts = append(parts, v)
	}
	if parts == nil {
		parts = []T{}
	}
	return AppendJoinValue(t, d, parts, opt, 0, 0)
}

// JoinSeq returns the values of seq joined with the default delimiter
// under default options.
func JoinSeq[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	AppendJoinSeq(&sb, Braced, DefaultDelim, seq)
	return sb.String()
}
