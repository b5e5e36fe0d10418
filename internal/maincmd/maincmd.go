// Package maincmd wires the CLI contract of spec.md §6 onto mna/mainer's
// flag-parsing surface.
//
// Grounded on mna-nenuphar/internal/maincmd.Cmd's SetArgs/SetFlags/
// Validate/Main shape, simplified from that package's reflect-based
// multi-subcommand dispatch (parse/resolve/tokenize) down to the single
// flat operation this compiler exposes: compile one source file to either
// assembly or binary.
package maincmd

import (
	"fmt"
	"os"

	"github.com/mna/mainer"

	"github.com/go-c0x/c0x/internal/config"
	"github.com/go-c0x/c0x/lang/compiler"
	"github.com/go-c0x/c0x/lang/writer"
)

const binName = "c0x"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <path>
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s (-s|-c) [-o <path>] <path>
       %[1]s -h|--help
       %[1]s -v|--version

Compiler for the c0x teaching language, compiling a single source file to
a stack-machine bytecode program.

Valid flag options are:
       -s                        Write the assembly listing to the
                                 output path.
       -c                        Write the binary image to the output
                                 path.
       -o --output PATH          Output path (default %q).
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Exactly one of -s or -c must be given.
`, binName, config.DefaultConfig().Output.DefaultPath)
)

// Cmd is the CLI entry point, satisfying mna/mainer's Cmd interface.
type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	Asm    bool   `flag:"s"`
	Binary bool   `flag:"c"`
	Output string `flag:"o,output"`

	args []string
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {}

// Validate enforces spec.md §6's usage contract: exactly one positional
// source path, and exactly one of -s/-c.
func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) != 1 {
		return fmt.Errorf("expected exactly one source path, got %d", len(c.args))
	}

	if c.Asm == c.Binary {
		return fmt.Errorf("exactly one of -s or -c must be given")
	}

	if c.Output == "" {
		c.Output = config.DefaultConfig().Output.DefaultPath
	}

	return nil
}

// Main reads the source file, compiles it, and writes the requested output
// form, returning the exit code spec.md §6 mandates: 2 for usage or
// scan/parse errors, 3 for I/O failures, 0 on success.
func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.ExitCode(2)
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success
	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	src, err := os.ReadFile(c.args[0])
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(3)
	}

	prog, diagErr := compiler.Compile(src)
	if diagErr != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", diagErr)
		return mainer.ExitCode(2)
	}

	out, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(3)
	}
	defer out.Close()

	cfg, cfgErr := config.Load(config.GetConfigPath())
	if cfgErr != nil {
		cfg = config.DefaultConfig()
	}

	if c.Asm {
		err = (&writer.AsmPrinter{
			Output:       out,
			IndentWidth:  cfg.Assembly.IndentWidth,
			IndexComment: cfg.Assembly.IndexComment,
		}).Print(prog)
	} else {
		err = (&writer.BinaryWriter{Output: out}).Write(prog)
	}
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
		return mainer.ExitCode(3)
	}

	return mainer.Success
}
