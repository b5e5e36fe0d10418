package writer

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/go-c0x/c0x/lang/instr"
	"github.com/go-c0x/c0x/lang/symtab"
)

// Magic and Version are the fixed 8-byte prefix every binary image starts
// with, per spec.md §4.3 and §8 scenario 6.
var (
	Magic   = [4]byte{0x43, 0x30, 0x3a, 0x29}
	Version = [4]byte{0x00, 0x00, 0x00, 0x01}
)

// BinaryWriter packs a Program into the virtual machine's binary image
// format and writes it to Output.
type BinaryWriter struct {
	Output io.Writer
}

// Write emits the magic/version prefix followed by the constants, `.start`,
// and functions sections, each length-prefixed as spec.md §4.3 describes.
// The byte stream depends only on prog, not on whether an assembly form was
// ever produced for it (spec.md §8's round-trip property).
func (w *BinaryWriter) Write(prog *symtab.Program) error {
	if _, err := w.Output.Write(Magic[:]); err != nil {
		return err
	}
	if _, err := w.Output.Write(Version[:]); err != nil {
		return err
	}
	if err := w.writeConstants(prog.Pool); err != nil {
		return err
	}
	if err := w.writeInstructions(prog.Start); err != nil {
		return err
	}
	return w.writeFunctions(prog.Functions)
}

func (w *BinaryWriter) writeU16(v int) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], uint16(v))
	_, err := w.Output.Write(buf[:])
	return err
}

func (w *BinaryWriter) writeConstants(pool []symtab.PoolEntry) error {
	if err := w.writeU16(len(pool)); err != nil {
		return err
	}
	for _, c := range pool {
		if err := w.writeConstant(c); err != nil {
			return err
		}
	}
	return nil
}

func (w *BinaryWriter) writeConstant(c symtab.PoolEntry) error {
	switch c.Kind {
	case symtab.PoolInteger:
		var buf [5]byte
		buf[0] = 0x00
		binary.BigEndian.PutUint32(buf[1:], uint32(c.Int))
		_, err := w.Output.Write(buf[:])
		return err
	case symtab.PoolDouble:
		var buf [9]byte
		buf[0] = 0x01
		binary.BigEndian.PutUint64(buf[1:], math.Float64bits(c.Double))
		_, err := w.Output.Write(buf[:])
		return err
	default:
		if _, err := w.Output.Write([]byte{0x02}); err != nil {
			return err
		}
		if err := w.writeU16(len(c.Str)); err != nil {
			return err
		}
		_, err := io.WriteString(w.Output, c.Str)
		return err
	}
}

func (w *BinaryWriter) writeInstructions(ins []instr.Instruction) error {
	if err := w.writeU16(len(ins)); err != nil {
		return err
	}
	for _, in := range ins {
		if _, err := w.Output.Write(in.Encode(nil)); err != nil {
			return err
		}
	}
	return nil
}

func (w *BinaryWriter) writeFunctions(fns []*symtab.Function) error {
	if err := w.writeU16(len(fns)); err != nil {
		return err
	}
	for _, fn := range fns {
		if err := w.writeU16(int(fn.NameConstIndex)); err != nil {
			return err
		}
		if err := w.writeU16(len(fn.Params)); err != nil {
			return err
		}
		if err := w.writeU16(int(fn.Level)); err != nil {
			return err
		}
		if err := w.writeInstructions(fn.Instructions); err != nil {
			return err
		}
	}
	return nil
}
