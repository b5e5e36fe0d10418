// Package instr defines the stack-machine instruction set the parser/
// emitter targets: the opcode enum, each opcode's operand widths, and the
// Instruction value itself plus its binary encoding.
//
// Grounded on original_source/Instruction/Instruction.h's Operation enum
// (exact byte values preserved) and mna-nenuphar/lang/compiler/opcode.go's
// shape for an opcode-plus-name-array-plus-operand-table package.
package instr

// Opcode identifies a stack-machine operation. Values match the original
// instruction set's byte encoding exactly, including opcodes this emitter
// never constructs (the double-arithmetic and array family), so the
// encoded byte stream matches what a full virtual machine for this
// instruction set would expect.
type Opcode uint8

//nolint:revive
const (
	Nop    Opcode = 0x00
	Bipush Opcode = 0x01
	Ipush  Opcode = 0x02
	Pop    Opcode = 0x03
	Pop2   Opcode = 0x04
	Popn   Opcode = 0x05
	Dup    Opcode = 0x06
	Dup2   Opcode = 0x08
	Loadc  Opcode = 0x09
	LoadaOp Opcode = 0x0a
	New    Opcode = 0x0b
	Snew   Opcode = 0x0c

	Iload  Opcode = 0x10
	Dload  Opcode = 0x11
	Aload  Opcode = 0x12
	Iaload Opcode = 0x18
	Daload Opcode = 0x19
	Aaload Opcode = 0x1a

	Istore  Opcode = 0x20
	Dstore  Opcode = 0x21
	Astore  Opcode = 0x22
	Iastore Opcode = 0x28
	Dastore Opcode = 0x29
	Aastore Opcode = 0x2a

	Iadd Opcode = 0x30
	Dadd Opcode = 0x31
	Isub Opcode = 0x34
	Dsub Opcode = 0x35
	Imul Opcode = 0x38
	Dmul Opcode = 0x39
	Idiv Opcode = 0x3c
	Ddiv Opcode = 0x3d
	Ineg Opcode = 0x40
	Dneg Opcode = 0x41
	Icmp Opcode = 0x44
	Dcmp Opcode = 0x45

	I2d Opcode = 0x60
	D2i Opcode = 0x61
	I2c Opcode = 0x62

	Jmp Opcode = 0x70
	Je  Opcode = 0x71
	Jne Opcode = 0x72
	Jl  Opcode = 0x73
	Jge Opcode = 0x74
	Jg  Opcode = 0x75
	Jle Opcode = 0x76

	Call Opcode = 0x80
	Ret  Opcode = 0x88
	Iret Opcode = 0x89
	Dret Opcode = 0x8a
	Aret Opcode = 0x8b

	Iprint Opcode = 0xa0
	Dprint Opcode = 0xa1
	Cprint Opcode = 0xa2
	Sprint Opcode = 0xa3
	Printl Opcode = 0xaf

	Iscan Opcode = 0xb0
	Dscan Opcode = 0xb1
	Cscan Opcode = 0xb2
)

var mnemonics = map[Opcode]string{
	Nop: "nop", Bipush: "bipush", Ipush: "ipush", Pop: "pop", Pop2: "pop2",
	Popn: "popn", Dup: "dup", Dup2: "dup2", Loadc: "loadc", LoadaOp: "loada",
	New: "new", Snew: "snew",
	Iload: "iload", Dload: "dload", Aload: "aload",
	Iaload: "iaload", Daload: "daload", Aaload: "aaload",
	Istore: "istore", Dstore: "dstore", Astore: "astore",
	Iastore: "iastore", Dastore: "dastore", Aastore: "aastore",
	Iadd: "iadd", Dadd: "dadd", Isub: "isub", Dsub: "dsub",
	Imul: "imul", Dmul: "dmul", Idiv: "idiv", Ddiv: "ddiv",
	Ineg: "ineg", Dneg: "dneg", Icmp: "icmp", Dcmp: "dcmp",
	I2d: "i2d", D2i: "d2i", I2c: "i2c",
	Jmp: "jmp", Je: "je", Jne: "jne", Jl: "jl", Jge: "jge", Jg: "jg", Jle: "jle",
	Call: "call", Ret: "ret", Iret: "iret", Dret: "dret", Aret: "aret",
	Iprint: "iprint", Dprint: "dprint", Cprint: "cprint", Sprint: "sprint", Printl: "printl",
	Iscan: "iscan", Dscan: "dscan", Cscan: "cscan",
}

func (op Opcode) String() string {
	if name, ok := mnemonics[op]; ok {
		return name
	}
	return "illegal"
}

// reverseCond maps a conditional jump to the opcode that tests the opposite
// relation, used to reverse a skip-jump into a do-while back-edge.
var reverseCond = map[Opcode]Opcode{
	Jl: Jge, Jge: Jl,
	Jle: Jg, Jg: Jle,
	Je: Jne, Jne: Je,
}

// Reverse returns the opcode testing the opposite relation of a conditional
// jump opcode. It panics if op is not one of jl/jge/jle/jg/je/jne.
func (op Opcode) Reverse() Opcode {
	rev, ok := reverseCond[op]
	if !ok {
		panic("instr: Reverse called on a non-conditional-jump opcode")
	}
	return rev
}

// SkipJump is the inverted-comparison jump table spec.md §4.2 names: the
// opcode that skips the then-branch when the source relational operator
// would have been false.
var SkipJump = map[string]Opcode{
	"<":  Jge,
	"<=": Jg,
	">":  Jle,
	">=": Jl,
	"==": Jne,
	"!=": Je,
}
