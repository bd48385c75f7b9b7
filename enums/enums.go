// Package enums maps enum-style named integer types to display names.
//
// Go spells enums as named integer types with constant values. Register a
// name table for such a type and [Name] resolves values back to their
// names; the corvid dispatcher consults it so registered enum values
// render by name while unregistered ones fall back to their underlying
// integer.
//
// Registration is append-only and must complete before any rendering call
// that depends on it, typically in an init function:
//
//	type Color int
//
//	const (
//		Red Color = iota
//		Green
//	)
//
//	func init() {
//		enums.MustRegister(map[Color]string{Red: "red", Green: "green"})
//	}
package enums

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyNames            = errors.New("enums: no names provided")
	ErrDuplicateRegistration = errors.New("enums: type already registered")
)

// Integer is the constraint for enum underlying types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// registry maps an enum's reflect.Type to its value names. Populated once
// at startup, immutable thereafter, so reads need no locking beyond
// sync.Map's.
var registry sync.Map // reflect.Type -> map[int64]string

// Register associates value names with the enum type E. It is append-only:
// registering the same type twice fails, and there is no removal.
func Register[E Integer](names map[E]string) error {
	if len(names) == 0 {
		return ErrEmptyNames
	}
	rt := reflect.TypeOf(E(0))
	byValue := make(map[int64]string, len(names))
	for v, name := range names {
		byValue[Underlying(v)] = name
	}
	if _, loaded := registry.LoadOrStore(rt, byValue); loaded {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, rt)
	}
	return nil
}

// MustRegister is like [Register] but panics on error. Intended for use
// in init functions.
func MustRegister[E Integer](names map[E]string) {
	if err := Register(names); err != nil {
		panic(err)
	}
}

// Underlying converts e to its underlying integer value. Unsigned values
// above the int64 range wrap.
func Underlying[E Integer](e E) int64 { return int64(e) }

// FromUnderlying converts an underlying integer value back to E.
func FromUnderlying[E Integer](v int64) E { return E(v) }

// NameOf returns the registered name for e, if any.
func NameOf[E Integer](e E) (string, bool) {
	return lookup(reflect.TypeOf(e), Underlying(e))
}

// Name returns the registered name for v when v is a value of a
// registered enum type. Non-integer values resolve to nothing.
func Name(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	var u int64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		u = rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u = int64(rv.Uint())
	default:
		return "", false
	}
	return lookup(rv.Type(), u)
}

func lookup(rt reflect.Type, u int64) (string, bool) {
	m, ok := registry.Load(rt)
	if !ok {
		return "", false
	}
	name, ok := m.(map[int64]string)[u]
	return name, ok
}
