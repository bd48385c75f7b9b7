package corvid

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unsafe"

	"github.com/mattn/go-runewidth"

	"github.com/stevensudit/corvid/enums"
)

// Append appends each part's textual form to t, left to right, with no
// delimiters, brackets, or quotes. It returns t for chaining. See
// [AppendJoinWith] for delimiter support.
//
// Supported parts include strings, []byte, [Char], bool, all integer and
// float types, unsafe.Pointer (rendered as a hex address), pointers
// (dereferenced when non-nil, empty otherwise), registered enum types,
// [Pair], structs (exported fields in order), slices, arrays, maps (values
// only, keys stripped), errors, and [fmt.Stringer]. Types registered with
// [RegisterAppender] always win over native handling. Anything else, such
// as a channel or func, is a programmer error and panics.
func Append(t Target, parts ...any) Target {
	for _, part := range parts {
		appendValue(t, part)
	}
	return t
}

// Concat renders parts into a fresh string with no delimiters.
func Concat(parts ...any) string {
	var sb strings.Builder
	Append(&sb, parts...)
	return sb.String()
}

// AppendInt appends v in the given base, left-padded with pad to a minimum
// display width. Append uses base 10 with no padding.
func AppendInt(t Target, v int64, base, width int, pad byte) Target {
	return padNum(t, strconv.FormatInt(v, base), width, pad)
}

// AppendUint appends v in the given base, left-padded with pad to a
// minimum display width.
func AppendUint(t Target, v uint64, base, width int, pad byte) Target {
	return padNum(t, strconv.FormatUint(v, base), width, pad)
}

// FloatFormat selects the rendering used for floating-point values.
type FloatFormat byte

const (
	FloatGeneral    FloatFormat = 'g' // shortest of fixed and scientific
	FloatFixed      FloatFormat = 'f' // decimal point, no exponent
	FloatScientific FloatFormat = 'e' // decimal exponent
	FloatHex        FloatFormat = 'x' // hexadecimal mantissa, binary exponent
)

// AppendFloat appends v in the given format and precision, left-padded
// with pad to a minimum display width. A precision of -1 uses the smallest
// number of digits that round-trips. Append uses FloatGeneral with
// precision -1 and no padding.
func AppendFloat(t Target, v float64, format FloatFormat, precision, width int, pad byte) Target {
	return padNum(t, strconv.FormatFloat(v, byte(format), precision, 64), width, pad)
}

// padNum left-pads digits to the minimum display width before appending.
func padNum(t Target, digits string, width int, pad byte) Target {
	for n := width - runewidth.StringWidth(digits); n > 0; n-- {
		putb(t, pad)
	}
	puts(t, digits)
	return t
}

// appendValue classifies one value and renders it undecorated. The order
// of the cases is the classification priority: overrides first, then
// concrete scalars, then stream-renderable types, then structural shapes.
func appendValue(t Target, part any) {
	if part == nil {
		return
	}
	if fn, ok := lookupAppender(reflect.TypeOf(part)); ok {
		fn(t, part)
		return
	}
	switch p := part.(type) {
	case string:
		puts(t, p)
	case []byte:
		puts(t, string(p))
	case Char:
		puts(t, string(rune(p)))
	case bool:
		puts(t, strconv.FormatBool(p))
	case int:
		AppendInt(t, int64(p), 10, 0, ' ')
	case int8:
		AppendInt(t, int64(p), 10, 0, ' ')
	case int16:
		AppendInt(t, int64(p), 10, 0, ' ')
	case int32:
		AppendInt(t, int64(p), 10, 0, ' ')
	case int64:
		AppendInt(t, p, 10, 0, ' ')
	case uint:
		AppendUint(t, uint64(p), 10, 0, ' ')
	case uint8:
		AppendUint(t, uint64(p), 10, 0, ' ')
	case uint16:
		AppendUint(t, uint64(p), 10, 0, ' ')
	case uint32:
		AppendUint(t, uint64(p), 10, 0, ' ')
	case uint64:
		AppendUint(t, p, 10, 0, ' ')
	case uintptr:
		AppendUint(t, uint64(p), 10, 0, ' ')
	case float32:
		puts(t, strconv.FormatFloat(float64(p), 'g', -1, 32))
	case float64:
		puts(t, strconv.FormatFloat(p, 'g', -1, 64))
	case unsafe.Pointer:
		AppendUint(t, uint64(uintptr(p)), 16, 0, ' ')
	case keyValuer:
		k, v := p.kv()
		appendValue(t, k)
		appendValue(t, v)
	case error:
		puts(t, p.Error())
	case fmt.Stringer:
		puts(t, p.String())
	default:
		appendReflect(t, reflect.ValueOf(part))
	}
}

// appendReflect handles named types and structural shapes that the
// concrete type switch cannot reach.
func appendReflect(t Target, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.String:
		puts(t, rv.String())
	case reflect.Bool:
		puts(t, strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// Registered enum values render by name, everything else by its
		// underlying integer.
		if name, ok := enums.Name(rv.Interface()); ok {
			puts(t, name)
			return
		}
		AppendInt(t, rv.Int(), 10, 0, ' ')
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if name, ok := enums.Name(rv.Interface()); ok {
			puts(t, name)
			return
		}
		AppendUint(t, rv.Uint(), 10, 0, ' ')
	case reflect.Float32:
		puts(t, strconv.FormatFloat(rv.Float(), 'g', -1, 32))
	case reflect.Float64:
		puts(t, strconv.FormatFloat(rv.Float(), 'g', -1, 64))
	case reflect.Pointer:
		if !rv.IsNil() {
			appendValue(t, rv.Elem().Interface())
		}
	case reflect.UnsafePointer:
		AppendUint(t, uint64(rv.Pointer()), 16, 0, ' ')
	case reflect.Interface:
		if !rv.IsNil() {
			appendValue(t, rv.Elem().Interface())
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			puts(t, string(rv.Bytes()))
			return
		}
		for i := 0; i < rv.Len(); i++ {
			appendValue(t, rv.Index(i).Interface())
		}
	case reflect.Map:
		for _, e := range mapEntries(rv) {
			appendValue(t, e.value)
		}
	case reflect.Struct:
		rt := rv.Type()
		for i := 0; i < rt.NumField(); i++ {
			if rt.Field(i).IsExported() {
				appendValue(t, rv.Field(i).Interface())
			}
		}
	default:
		panic(fmt.Sprintf("corvid: cannot render %s value", rv.Type()))
	}
}

// mapEntry is the pair shape of a single map element.
type mapEntry struct {
	key, value any
}

func (e mapEntry) kv() (key, value any) { return e.key, e.value }

// mapEntries snapshots a map in deterministic key order.
func mapEntries(rv reflect.Value) []mapEntry {
	entries := make([]mapEntry, 0, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		entries = append(entries, mapEntry{it.Key().Interface(), it.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return lessKey(entries[i].key, entries[j].key)
	})
	return entries
}

// lessKey orders keys of a single map: numeric kinds numerically,
// string kinds lexicographically, anything else by rendered text.
func lessKey(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ra.Int() < rb.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ra.Uint() < rb.Uint()
	case reflect.Float32, reflect.Float64:
		return ra.Float() < rb.Float()
	case reflect.String:
		return ra.String() < rb.String()
	default:
		return Concat(a) < Concat(b)
	}
}
