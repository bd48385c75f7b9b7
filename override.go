package corvid

import (
	"fmt"
	"reflect"
	"sync"
)

// AppendFunc renders a value with no decoration.
type AppendFunc func(t Target, v any)

// JoinFunc renders a value with full delimiter, option, and bracket
// context. Implementations recurse through [AppendJoinValue].
type JoinFunc func(t Target, d Delim, v any, opt Opt, open, close byte)

// Override tables. Both are append-only and populated during package
// initialization, before any rendering call that could observe them, so
// lookups never need coordination beyond sync.Map's.
var (
	appendOverrides sync.Map // reflect.Type -> AppendFunc
	joinOverrides   sync.Map // reflect.Type -> JoinFunc
)

// RegisterAppender associates fn with T for undecorated rendering. The
// lookup happens before native shape classification, so a registered type
// always renders through fn, never through built-in handling.
//
// Registration must complete before any rendering call that depends on
// it; there is no re-registration or removal.
func RegisterAppender[T any](fn func(Target, T)) error {
	if fn == nil {
		return fmt.Errorf("%w: appender", ErrNilOverride)
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	wrapped := AppendFunc(func(t Target, v any) { fn(t, v.(T)) })
	if _, loaded := appendOverrides.LoadOrStore(rt, wrapped); loaded {
		return fmt.Errorf("%w: appender for %s", ErrDuplicateOverride, rt)
	}
	return nil
}

// MustRegisterAppender is like [RegisterAppender] but panics on error.
func MustRegisterAppender[T any](fn func(Target, T)) {
	if err := RegisterAppender(fn); err != nil {
		panic(err)
	}
}

// RegisterJoiner associates fn with T for join-aware rendering. A type
// with only a plain appender registered still joins: it takes the leaf
// path, which applies default bracing, quoting, and delimiter handling
// around the appender's output.
func RegisterJoiner[T any](fn func(t Target, d Delim, v T, opt Opt, open, close byte)) error {
	if fn == nil {
		return fmt.Errorf("%w: joiner", ErrNilOverride)
	}
	rt := reflect.TypeOf((*T)(nil)).Elem()
	wrapped := JoinFunc(func(t Target, d Delim, v any, opt Opt, open, close byte) {
		fn(t, d, v.(T), opt, open, close)
	})
	if _, loaded := joinOverrides.LoadOrStore(rt, wrapped); loaded {
		return fmt.Errorf("%w: joiner for %s", ErrDuplicateOverride, rt)
	}
	return nil
}

// MustRegisterJoiner is like [RegisterJoiner] but panics on error.
func MustRegisterJoiner[T any](fn func(t Target, d Delim, v T, opt Opt, open, close byte)) {
	if err := RegisterJoiner(fn); err != nil {
		panic(err)
	}
}

func lookupAppender(rt reflect.Type) (AppendFunc, bool) {
	if v, ok := appendOverrides.Load(rt); ok {
		return v.(AppendFunc), true
	}
	return nil, false
}

func lookupJoiner(rt reflect.Type) (JoinFunc, bool) {
	if v, ok := joinOverrides.Load(rt); ok {
		return v.(JoinFunc), true
	}
	return nil, false
}
