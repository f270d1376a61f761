package main

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-apint"
)

const operandHelp = `Operands are hexadecimal, optionally signed: 7e6b, -ff, 000a.
Put -- before the first negative operand so it is not read as a flag:

  apint add -- -ff 1`

func binaryCmd(e *env, use, short string, op func(a, b apint.Int) interface{}) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Long:  short + "\n\n" + operandHelp,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("A", args[0])
			if err != nil {
				return err
			}
			b, err := parseOperand("B", args[1])
			if err != nil {
				return err
			}
			e.log.Debug().Stringer("a", a).Stringer("b", b).Msg(use)
			return e.println(op(a, b))
		},
	}
}

func newAddCmd(e *env) *cobra.Command {
	return binaryCmd(e, "add", "Print A + B", func(a, b apint.Int) interface{} { return a.Add(b) })
}

func newSubCmd(e *env) *cobra.Command {
	return binaryCmd(e, "sub", "Print A - B", func(a, b apint.Int) interface{} { return a.Sub(b) })
}

func newCmpCmd(e *env) *cobra.Command {
	return binaryCmd(e, "cmp", "Print -1, 0 or 1 as A is less than, equal to or greater than B",
		func(a, b apint.Int) interface{} { return a.Cmp(b) })
}

func newNegCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "neg A",
		Short: "Print -A",
		Long:  "Print -A\n\n" + operandHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("A", args[0])
			if err != nil {
				return err
			}
			return e.println(a.Neg())
		},
	}
}

func newShlCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "shl A [N]",
		Short: "Print A shifted left by N bits (default 1)",
		Long:  "Print A shifted left by N bits (default 1). N is decimal.\n\n" + operandHelp,
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("A", args[0])
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return e.println(a.Lsh1())
			}
			n, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return errors.Wrapf(err, "shift count %q", args[1])
			}
			e.log.Debug().Stringer("a", a).Uint64("n", n).Msg("shl")
			return e.println(a.Lsh(uint(n)))
		},
	}
}

func newInfoCmd(e *env) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "info A",
		Short: "Describe the representation of A",
		Long:  "Describe the representation of A\n\n" + operandHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseOperand("A", args[0])
			if err != nil {
				return err
			}
			w := e.stdout
			fmt.Fprintf(w, "hex:         %s\n", a)
			fmt.Fprintf(w, "zero:        %t\n", a.IsZero())
			fmt.Fprintf(w, "negative:    %t\n", a.IsNegative())
			fmt.Fprintf(w, "words:       %d\n", a.Len())
			fmt.Fprintf(w, "highest bit: %d\n", a.HighestSetBit())
			if dump {
				cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
				cfg.Fdump(w, a.Words())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the magnitude words")
	return cmd
}
