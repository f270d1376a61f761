// Command apint does arithmetic on hexadecimal integers of any size and runs
// the package's self-test.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shabbyrobe/go-apint"
	"github.com/shabbyrobe/go-apint/internal/config"
)

const version = "0.1.0"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand sees once the root command has loaded the
// config and built the logger.
type env struct {
	cfg    config.Config
	log    zerolog.Logger
	color  bool
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	e := &env{stdout: stdout, stderr: stderr, log: zerolog.Nop()}
	root := newRootCmd(e)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil {
		e.log.Debug().Err(err).Msg("command failed")
		fmt.Fprintln(stderr, "error:", err)
	}
	return err
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "apint",
		Short:         "Arbitrary-precision integer calculator",
		Long:          `apint adds, subtracts, compares and shifts signed hexadecimal integers of any size.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off)")
	root.PersistentFlags().String("log-level", "", "log level (trace|debug|info|warn|error|disabled)")

	root.AddCommand(
		newAddCmd(e),
		newSubCmd(e),
		newCmpCmd(e),
		newNegCmd(e),
		newShlCmd(e),
		newInfoCmd(e),
		newEncodeCmd(e),
		newDecodeCmd(e),
		newCheckCmd(e),
		newVersionCmd(e),
	)
	return root
}

// setup loads the config, lets the persistent flags override it, and builds
// the logger.
func (e *env) setup(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if v, _ := flags.GetString("color"); v != "" {
		cfg.Color = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.color = useColor(cfg.Color, e.stdout)
	e.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        e.stderr,
		TimeFormat: time.TimeOnly,
		NoColor:    !useColor(cfg.Color, e.stderr),
	}).Level(lvl).With().Timestamp().Logger()

	e.log.Debug().Str("config", cfg.Path).Str("command", cmd.Name()).Msg("starting")
	return nil
}

func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorOn:
		return true
	case config.ColorOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseOperand parses a command-line operand. The error names the argument
// and, through the wrapped ParseError, the offending offset.
func parseOperand(name, s string) (apint.Int, error) {
	v, err := apint.IntFromHex(s)
	if err != nil {
		return apint.Int{}, errors.Wrapf(err, "operand %s", name)
	}
	return v, nil
}

func (e *env) println(v interface{}) error {
	_, err := fmt.Fprintln(e.stdout, v)
	return err
}
