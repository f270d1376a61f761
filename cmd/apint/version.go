package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newVersionCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := color.New(color.FgYellow, color.Bold)
			if e.color {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
			_, err := fmt.Fprintf(e.stdout, "apint %s (%s)\n", c.Sprint(version), runtime.Version())
			return err
		},
	}
}
