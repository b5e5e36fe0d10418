// Package writer renders a completed symtab.Program into either of
// spec.md §4.3's two output forms: a line-oriented assembly listing or a
// binary image for a virtual machine. Both writers read the same
// in-memory model and never mutate it.
//
// Grounded on mna-nenuphar/lang/ast/printer.go's Printer{Output io.Writer}
// shape, adapted from AST-node pretty-printing to the fixed three-section
// layout spec.md §4.3 mandates.
package writer

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
)

// AsmPrinter writes a Program's human-readable assembly form to Output.
// IndentWidth and IndexComment are cosmetic knobs read from
// internal/config; neither affects the sections or field ordering the
// tests and spec.md §4.3 rely on.
type AsmPrinter struct {
	Output io.Writer

	// IndentWidth is the number of spaces each instruction line is
	// prefixed with. Zero means no indentation.
	IndentWidth int

	// IndexComment, when true, appends "# <index>" to each instruction
	// line after its operands.
	IndexComment bool
}

func (p *AsmPrinter) indent() string {
	if p.IndentWidth <= 0 {
		return ""
	}
	return strings.Repeat(" ", p.IndentWidth)
}

// Print writes the `.constants:`, `.start:`, and `.functions:` sections in
// order, per spec.md §4.3.
func (p *AsmPrinter) Print(prog *symtab.Program) error {
	if err := p.printConstants(prog); err != nil {
		return err
	}
	if err := p.printStart(prog); err != nil {
		return err
	}
	return p.printFunctions(prog)
}

func (p *AsmPrinter) printConstants(prog *symtab.Program) error {
	if _, err := fmt.Fprintln(p.Output, ".constants:"); err != nil {
		return err
	}
	for i, c := range prog.Pool {
		if err := p.printConstant(i, c); err != nil {
			return err
		}
	}
	return nil
}

func (p *AsmPrinter) printConstant(index int, c symtab.PoolEntry) error {
	switch c.Kind {
	case symtab.PoolInteger:
		_, err := fmt.Fprintf(p.Output, "%d I %d\n", index, c.Int)
		return err
	case symtab.PoolDouble:
		_, err := fmt.Fprintf(p.Output, "%d D %v\n", index, c.Double)
		return err
	default:
		_, err := fmt.Fprintf(p.Output, "%d S %q\n", index, c.Str)
		return err
	}
}

func (p *AsmPrinter) printStart(prog *symtab.Program) error {
	if _, err := fmt.Fprintln(p.Output, ".start:"); err != nil {
		return err
	}
	return p.printInstructions(prog.Start)
}

func (p *AsmPrinter) printFunctions(prog *symtab.Program) error {
	if _, err := fmt.Fprintln(p.Output, ".functions:"); err != nil {
		return err
	}
	for _, fn := range prog.Functions {
		if _, err := fmt.Fprintf(p.Output, "%d %d %d %d\n",
			fn.Index, fn.NameConstIndex, len(fn.Params), fn.Level); err != nil {
			return err
		}
	}
	for _, fn := range prog.Functions {
		if _, err := fmt.Fprintf(p.Output, ".F%d:\n", fn.Index); err != nil {
			return err
		}
		if err := p.printInstructions(fn.Instructions); err != nil {
			return err
		}
	}
	return nil
}

func (p *AsmPrinter) printInstructions(ins []instr.Instruction) error {
	for _, in := range ins {
		if err := p.printInstruction(in); err != nil {
			return err
		}
	}
	return nil
}

func (p *AsmPrinter) printInstruction(in instr.Instruction) error {
	if _, err := fmt.Fprintf(p.Output, "%s%d %s", p.indent(), in.Index, in.Op); err != nil {
		return err
	}
	if in.Operand1 != nil {
		if _, err := fmt.Fprintf(p.Output, " %d", in.Operand1.Value); err != nil {
			return err
		}
	}
	if in.Operand2 != nil {
		if _, err := fmt.Fprintf(p.Output, ",%d", in.Operand2.Value); err != nil {
			return err
		}
	}
	if p.IndexComment {
		if _, err := fmt.Fprintf(p.Output, " # %d", in.Index); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.Output)
	return err
}
