package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-apint/internal/selftest"
)

func newCheckCmd(e *env) *cobra.Command {
	var list bool
	var seed int64
	var iterations int

	cmd := &cobra.Command{
		Use:   "check [NAME...]",
		Short: "Run the built-in self-test",
		Long: `Run the built-in self-test cases, or only the named ones.

Randomized property cases use [check] seed and iterations from the config
file unless --seed or --iterations is given. A seed of 0 uses the clock; the
chosen seed is logged at info level so a failure can be replayed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.cfg
			if cmd.Flags().Changed("seed") {
				cfg.Check.Seed = seed
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Check.Iterations = iterations
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Check.Seed == 0 {
				cfg.Check.Seed = time.Now().UnixNano()
			}

			reg := selftest.Default(cfg)
			if list {
				for _, n := range reg.Names() {
					if _, err := fmt.Fprintln(e.stdout, n); err != nil {
						return err
					}
				}
				return nil
			}

			e.log.Info().Int64("seed", cfg.Check.Seed).Int("iterations", cfg.Check.Iterations).Msg("running self-test")
			start := time.Now()
			rep, err := reg.Run(args...)
			if err != nil {
				return err
			}
			e.log.Debug().Dur("took", time.Since(start)).Int("cases", len(rep.Results)).Msg("self-test finished")
			return rep.Write(e.stdout, e.color)
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list case names and exit")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the randomized cases (0 uses the clock)")
	cmd.Flags().IntVar(&iterations, "iterations", 0, "iterations per randomized case")
	return cmd
}
