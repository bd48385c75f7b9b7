package corvid

// Opt is a bitmask controlling how joined values are decorated. It is
// constructed once at the call site and never mutated; each recursion
// level derives a new value with [Opt.Head] or [Opt.Next] instead.
type Opt uint8

const (
	// Flat avoids showing braces around containers.
	Flat Opt = 1 << iota
	// Keyed shows keys in containers, in addition to values.
	Keyed
	// Quoted shows quotes around strings.
	Quoted
	// Prefixed prefixes the value with the delimiter.
	Prefixed
)

// Braced is the zero option state: containers are shown with braces.
const Braced Opt = 0

// Convenience aliases.
const (
	// FlatKeyed shows keys without braces.
	FlatKeyed = Flat | Keyed
	// JSON shows output as JSON.
	JSON = Keyed | Quoted
)

// Braces reports whether to add braces: unless braces are suppressed, use
// them when we have both characters.
func (o Opt) Braces(open, close byte) bool {
	return o&Flat == 0 && open != 0 && close != 0
}

// Head returns the options for the head element of a level. No leading
// delimiter is needed there; it was already emitted if it was wanted.
func (o Opt) Head() Opt { return o &^ Prefixed }

// Next returns the options for elements after the head, which do need a
// leading delimiter.
func (o Opt) Next() Opt { return o | Prefixed }

// ShowKeys reports whether container keys are shown.
func (o Opt) ShowKeys() bool { return o&Keyed != 0 }

// ShowQuotes reports whether strings are quoted.
func (o Opt) ShowQuotes() bool { return o&Quoted != 0 }

// Delimit reports whether to lead with the delimiter.
func (o Opt) Delimit() bool { return o&Prefixed != 0 }

// AsJSON reports whether output follows JSON conventions.
func (o Opt) AsJSON() bool { return o&JSON == JSON && o&Flat == 0 }

// Escape reports whether quoted string contents would need escaping.
// Reserved: nothing consumes it yet, so strings containing the quote
// character render with the quote unescaped.
func (o Opt) Escape(open, close byte) bool {
	return o.ShowQuotes() && open == '"' && close == '"'
}
