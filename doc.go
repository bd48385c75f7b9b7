// Package corvid renders arbitrary values as text through a type-driven
// dispatch-and-join engine.
//
// The central entry points are [Append] and [Concat], which render values
// with no decoration, and the join family ([Join], [JoinWith], [JoinOpt],
// [AppendJoin], [AppendJoinWith], ...), which decorates multi-value and
// nested output with delimiters, braces, keys, and quotes.
//
// # Targets
//
// Every appending function writes into a [Target], an append-only sink
// satisfied by [strings.Builder], [bytes.Buffer], and [bufio.Writer]. The
// caller owns the sink; the engine only appends and returns the sink for
// chaining. The Concat/Join variants build a fresh string instead:
//
//	corvid.Concat("a", "b", "c")        // "abc"
//	corvid.Join(1, 2, 3)                // "1, 2, 3"
//	corvid.Join([]int{1, 2, 3})         // "[1, 2, 3]"
//
// # Shapes
//
// Any supported value classifies into exactly one rendering shape:
// strings and byte slices, [Char], bool, integers and floats (with
// base/precision/width/pad control through [AppendInt], [AppendUint], and
// [AppendFloat]), unsafe pointers (hex address), pointers (dereferenced
// when non-nil, empty otherwise), registered enum types (by name, through
// the enums subpackage), [Pair], structs (exported fields as a tuple),
// slices, arrays, maps, [iter.Seq] (through [AppendSeq] and [JoinSeq]),
// errors, and [fmt.Stringer]. Classification is priority-ordered and
// total: a value either renders or, for shapes like channels and funcs
// that have no textual form, panics.
//
// # Join options
//
// [Opt] is a bitmask with bits [Flat], [Keyed], [Quoted], and [Prefixed];
// the zero state [Braced] shows containers with braces. The [JSON] alias
// (Keyed|Quoted) renders keyed containers as JSON objects:
//
//	corvid.JoinOpt(corvid.JSON, map[string]int{"a": 1})  // {"a": 1}
//
// Containers nest arbitrarily; each recursion level derives its own
// options, so a delimiter never appears before the first element of a
// level and always appears between siblings. Note that quoted output does
// not escape quote characters embedded in strings.
//
// # Overrides
//
// Any type can take over its own rendering. [RegisterAppender] installs
// an undecorated renderer and [RegisterJoiner] a join-aware one; both are
// consulted before native shape classification, so user customization
// always wins over built-in container or struct handling. Registration
// happens once, at startup:
//
//	func init() {
//		corvid.MustRegisterAppender(func(t corvid.Target, p Person) {
//			corvid.Append(t, p.Last, ", ", p.First)
//		})
//	}
//
// # Concurrency
//
// All rendering is synchronous and purely computational. Renders into
// distinct sinks are fully independent; concurrent renders into the same
// sink are the caller's to serialize.
package corvid
