package corvid

import (
	"fmt"
	"reflect"
	"strings"
)

// AppendJoin appends parts to t, joined with the default delimiter.
func AppendJoin(t Target, parts ...any) Target {
	return AppendJoinOptWith(t, Braced, DefaultDelim, parts...)
}

// AppendJoinWith appends parts to t, joined with d.
func AppendJoinWith(t Target, d Delim, parts ...any) Target {
	return AppendJoinOptWith(t, Braced, d, parts...)
}

// AppendJoinOpt appends parts to t, joined with the default delimiter
// under opt.
func AppendJoinOpt(t Target, opt Opt, parts ...any) Target {
	return AppendJoinOptWith(t, opt, DefaultDelim, parts...)
}

// AppendJoinOptWith appends parts to t, joined with d under opt.
func AppendJoinOptWith(t Target, opt Opt, d Delim, parts ...any) Target {
	return AppendJoinBracketed(t, opt, d, 0, 0, parts...)
}

// AppendJoinBracketed appends parts to t, joined with d under opt, wrapped
// in the open and close bracket pair when one is given.
func AppendJoinBracketed(t Target, opt Opt, d Delim, open, close byte, parts ...any) Target {
	switch len(parts) {
	case 0:
		return t
	case 1:
		return AppendJoinValue(t, d, parts[0], opt, open, close)
	}
	addBraces := opt.Braces(open, close)
	d.appendIf(t, opt.Delimit())
	if addBraces {
		putb(t, open)
	}
	AppendJoinValue(t, d, parts[0], opt.Head(), 0, 0)
	for _, part := range parts[1:] {
		AppendJoinValue(t, d, part, opt.Next(), 0, 0)
	}
	if addBraces {
		putb(t, close)
	}
	return t
}

// Join returns parts joined with the default delimiter.
func Join(parts ...any) string {
	return JoinOptWith(Braced, DefaultDelim, parts...)
}

// JoinWith returns parts joined with d.
func JoinWith(d Delim, parts ...any) string {
	return JoinOptWith(Braced, d, parts...)
}

// JoinOpt returns parts joined with the default delimiter under opt.
func JoinOpt(opt Opt, parts ...any) string {
	return JoinOptWith(opt, DefaultDelim, parts...)
}

// JoinOptWith returns parts joined with d under opt.
func JoinOptWith(opt Opt, d Delim, parts ...any) string {
	var sb strings.Builder
	AppendJoinOptWith(&sb, opt, d, parts...)
	return sb.String()
}

// AppendJoinValue appends a single value to t with full join context:
// delimiter, options, and bracket pair. It is the recursion point, and the
// one registered joiners call back into.
func AppendJoinValue(t Target, d Delim, v any, opt Opt, open, close byte) Target {
	if v == nil {
		return t
	}
	rt := reflect.TypeOf(v)
	if fn, ok := lookupJoiner(rt); ok {
		fn(t, d, v, opt, open, close)
		return t
	}
	if _, ok := lookupAppender(rt); ok {
		// Only a plain appender is registered: treat the value as a leaf
		// so the override still wins over native shape handling.
		joinLeaf(t, d, v, opt, open, close)
		return t
	}
	if p, ok := v.(keyValuer); ok {
		joinPair(t, d, p, opt, open, close)
		return t
	}
	switch v.(type) {
	case string, []byte, Char, bool, error, fmt.Stringer:
		joinLeaf(t, d, v, opt, open, close)
		return t
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if !rv.IsNil() {
			AppendJoinValue(t, d, rv.Elem().Interface(), opt, 0, 0)
		}
	case reflect.Interface:
		if !rv.IsNil() {
			AppendJoinValue(t, d, rv.Elem().Interface(), opt, 0, 0)
		}
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			joinLeaf(t, d, v, opt, open, close)
			return t
		}
		joinContainer(t, d, containerElems(rv), rv.Type().Elem().Implements(keyValuerType), opt, open, close)
	case reflect.Map:
		entries := mapEntries(rv)
		elems := make([]any, len(entries))
		for i, e := range entries {
			elems[i] = e
		}
		joinContainer(t, d, elems, true, opt, open, close)
	case reflect.Struct:
		joinTuple(t, d, rv, opt, open, close)
	default:
		joinLeaf(t, d, v, opt, open, close)
	}
	return t
}

var keyValuerType = reflect.TypeOf((*keyValuer)(nil)).Elem()

// joinLeaf decorates a single unstructured value: leading delimiter,
// braces when the caller supplied them, quotes for string-like values.
func joinLeaf(t Target, d Delim, v any, opt Opt, open, close byte) {
	addBraces := opt.Braces(open, close)
	addQuotes := stringLike(v) && opt.ShowQuotes()
	d.appendIf(t, opt.Delimit())
	if addBraces {
		putb(t, open)
	}
	if addQuotes {
		putb(t, '"')
	}
	appendValue(t, v)
	if addQuotes {
		putb(t, '"')
	}
	if addBraces {
		putb(t, close)
	}
}

// joinPair renders a key-value pair. Without Keyed, the key is discarded.
// With Keyed, JSON mode emits `"key": value`; otherwise the pair renders
// as a braced two-element sequence.
func joinPair(t Target, d Delim, p keyValuer, opt Opt, open, close byte) {
	key, value := p.kv()
	if !opt.ShowKeys() {
		AppendJoinValue(t, d, value, opt, open, close)
		return
	}
	isJSON := opt.AsJSON()
	headOpt := opt.Head()
	nextOpt := opt.Next()
	if isJSON {
		// No delimiter between a key and its value; ": " goes there.
		nextOpt = headOpt
	}
	nextOpen, nextClose := open, close
	if nextOpen == 0 && !isJSON {
		nextOpen = '{'
	}
	if nextClose == 0 && !isJSON {
		nextClose = '}'
	}
	// String-like keys self-quote through the leaf path; everything else
	// needs explicit quote-wrapping to stay valid JSON.
	quoteKey := isJSON && !stringLike(key)

	d.appendIf(t, opt.Delimit())
	addBraces := opt.Braces(nextOpen, nextClose)
	if addBraces {
		putb(t, nextOpen)
	}
	if quoteKey {
		putb(t, '"')
	}
	AppendJoinValue(t, d, key, headOpt, 0, 0)
	if quoteKey {
		putb(t, '"')
	}
	if isJSON {
		puts(t, ": ")
	}
	AppendJoinValue(t, d, value, nextOpt, 0, 0)
	if addBraces {
		putb(t, nextClose)
	}
}

// joinTuple renders a struct's exported fields positionally, defaulting
// the bracket pair to curly braces.
func joinTuple(t Target, d Delim, rv reflect.Value, opt Opt, open, close byte) {
	nextOpen, nextClose := open, close
	if nextOpen == 0 {
		nextOpen = '{'
	}
	if nextClose == 0 {
		nextClose = '}'
	}
	rt := rv.Type()
	var parts []any
	for i := 0; i < rt.NumField(); i++ {
		if rt.Field(i).IsExported() {
			parts = append(parts, rv.Field(i).Interface())
		}
	}
	AppendJoinBracketed(t, opt, d, nextOpen, nextClose, parts...)
}

// joinContainer renders a sequence of elements. Keyed rendering only
// activates when the elements are pair-shaped; JSON mode switches the
// default brackets from square to curly. An empty container still emits
// its bracket pair.
func joinContainer(t Target, d Delim, elems []any, pairShaped bool, opt Opt, open, close byte) {
	isKeyed := opt.ShowKeys() && pairShaped
	isJSON := isKeyed && opt.AsJSON()
	nextOpen, nextClose := open, close
	if nextOpen == 0 {
		if isJSON {
			nextOpen = '{'
		} else {
			nextOpen = '['
		}
	}
	if nextClose == 0 {
		if isJSON {
			nextClose = '}'
		} else {
			nextClose = ']'
		}
	}
	addBraces := opt.Braces(nextOpen, nextClose)

	d.appendIf(t, opt.Delimit())
	if addBraces {
		putb(t, nextOpen)
	}
	for i, e := range elems {
		o := opt.Next()
		if i == 0 {
			o = opt.Head()
		}
		AppendJoinValue(t, d, e, o, 0, 0)
	}
	if addBraces {
		putb(t, nextClose)
	}
}

func containerElems(rv reflect.Value) []any {
	elems := make([]any, rv.Len())
	for i := range elems {
		elems[i] = rv.Index(i).Interface()
	}
	return elems
}

// stringLike reports whether a value renders as text: string kinds and
// byte slices. Stream-renderable types are not string-like, so they are
// never quoted.
func stringLike(v any) bool {
	switch v.(type) {
	case string, []byte:
		return true
	}
	rt := reflect.TypeOf(v)
	if rt == nil {
		return false
	}
	switch rt.Kind() {
	case reflect.String:
		return true
	case reflect.Slice:
		return rt.Elem().Kind() == reflect.Uint8
	}
	return false
}
