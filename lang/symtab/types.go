// Package symtab holds the compile-time data the parser/emitter builds and
// consumes: declared types, the constant pool, per-scope variable maps, and
// function records. Nothing here executes; it is pure bookkeeping consumed
// by lang/compiler and lang/writer.
//
// Grounded on mna-nenuphar/lang/machine/map.go's swiss.Map usage idiom,
// repurposed from that package's runtime value maps to this package's
// compile-time name->record scope maps.
package symtab

// Type is a C0-extended declared or inferred type.
type Type int8

//nolint:revive
const (
	Void Type = iota
	Int
	Char
	Double
)

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Int:
		return "int"
	case Char:
		return "char"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// PoolKind identifies a constant pool entry's variant.
type PoolKind int8

//nolint:revive
const (
	PoolInteger PoolKind = iota
	PoolDouble
	PoolString
)

// PoolEntry is one constant pool slot. Only the field matching Kind is
// meaningful. This emitter only ever constructs PoolString entries (function
// names and interned print strings, per DESIGN.md's resolution of spec.md
// §3's constant-pool ambiguity); PoolInteger and PoolDouble exist so the
// pool format matches the full instruction set's binary layout.
type PoolEntry struct {
	Kind   PoolKind
	Int    int32
	Double float64
	Str    string
}

// Variable is one declared name's record: its frame slot and type.
type Variable struct {
	Slot int32
	Type Type
}
