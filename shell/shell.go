// Package shell is a line oriented command interpreter over an
// [inodefs.FileSystemOperator], modelled after a minimal Unix shell.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/inodefs"
	"github.com/brettbedarf/inodefs/config"
	"github.com/brettbedarf/inodefs/internal/util"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Name prefixes diagnostics written to the error stream
const Name = "yshell"

// Shell reads command lines and runs them against a filesystem
type Shell struct {
	fs          inodefs.FileSystemOperator
	commands    *Registry
	out         io.Writer
	errOut      io.Writer
	errColor    *color.Color
	dirColor    *color.Color
	interactive bool // print the prompt before each line
	echo        bool // print the prompt and the line read, for scripts
	status      int
	exited      bool
}

// Option configures a [Shell]
type Option func(*Shell)

// WithOutput sets the streams for command output and diagnostics
func WithOutput(out, errOut io.Writer) Option {
	return func(sh *Shell) {
		sh.out = out
		sh.errOut = errOut
	}
}

func WithInteractive(interactive bool) Option {
	return func(sh *Shell) { sh.interactive = interactive }
}

func WithEcho(echo bool) Option {
	return func(sh *Shell) { sh.echo = echo }
}

// New creates a shell over fs. A nil cfg uses defaults and a nil commands
// registry gets every builtin.
func New(fs inodefs.FileSystemOperator, cfg *config.Config, commands *Registry, opts ...Option) *Shell {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	if commands == nil {
		commands = NewRegistry()
		RegisterBuiltins(commands)
	}
	sh := &Shell{
		fs:       fs,
		commands: commands,
		out:      os.Stdout,
		errOut:   os.Stderr,
		errColor: color.New(color.FgRed),
		dirColor: color.New(color.FgBlue, color.Bold),
	}
	if !cfg.Color {
		sh.errColor.DisableColor()
		sh.dirColor.DisableColor()
	}
	for _, opt := range opts {
		opt(sh)
	}
	return sh
}

// ExitStatus is 0 until a command fails, after which it is 1, unless
// `exit` set it explicitly
func (sh *Shell) ExitStatus() int {
	return sh.status
}

// Exited reports whether the `exit` command has run
func (sh *Shell) Exited() bool {
	return sh.exited
}

// Run executes every line of r until end of input or `exit` and returns the
// exit status. Command failures are reported on the error stream and do not
// stop the loop; only a read failure is returned as an error.
func (sh *Shell) Run(r io.Reader) (int, error) {
	reader := bufio.NewReader(r)
	for !sh.exited {
		if sh.interactive || sh.echo {
			fmt.Fprint(sh.out, sh.fs.Prompt())
		}
		// lines have no length limit; a final line without "\n" still runs
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return sh.status, errors.Wrap(err, "read commands")
		}
		if line == "" && err != nil {
			if sh.interactive {
				fmt.Fprintln(sh.out)
			}
			break
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if sh.echo {
			fmt.Fprintln(sh.out, line)
		}
		_ = sh.Exec(line) // reported by Exec
	}
	return sh.status, nil
}

// Exec runs a single command line. Blank lines and lines whose first word
// starts with "#" do nothing. A failure is written to the error stream,
// sets the exit status to 1, and is returned.
func (sh *Shell) Exec(line string) error {
	words := strings.Fields(line)
	if len(words) == 0 || strings.HasPrefix(words[0], "#") {
		return nil
	}
	name, args := words[0], words[1:]

	logger := util.GetLogger("Shell.Exec")
	logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")

	fn, err := sh.commands.Lookup(name)
	if err == nil {
		err = errors.Wrap(fn(sh, args), name)
	}
	if err != nil {
		logger.Trace().Str("stack", fmt.Sprintf("%+v", err)).Msg("Command failed")
		sh.errColor.Fprintf(sh.errOut, "%s: %s\n", Name, err)
		sh.status = 1
		return err
	}
	return nil
}

func (sh *Shell) printf(format string, a ...any) {
	fmt.Fprintf(sh.out, format, a...)
}

func usage(synopsis string) error {
	return errors.New("usage: " + synopsis)
}
