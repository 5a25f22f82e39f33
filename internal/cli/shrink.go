package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/morph/check"
	"github.com/mouse-blink/morph/mutators"
)

var shrinkStartFlag int64
var shrinkLimitFlag int64
var shrinkSeedFlag uint64
var shrinkVerboseFlag bool

// shrinkCmd represents the shrink command.
var shrinkCmd = newShrinkCmd()

func newShrinkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shrink",
		Short: "Run a failing property and watch its input get minimized",
		Long: `Shrink runs the check harness against the property "value < limit" with a
corpus holding just the start value. Since the start value violates the
property, the harness shrinks it and reports the smallest violation it can
find, which for this property is the limit itself.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = shrinkSeedFlag
			}

			checker := check.New().Iters(cfg.Iters).ShrinkIters(cfg.ShrinkIters)
			if cfg.Seed != 0 {
				checker.Seed(cfg.Seed)
			}
			if shrinkVerboseFlag {
				checker.Logger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			err = check.Run(checker, mutators.Int[int64](), []int64{shrinkStartFlag},
				func(v *int64) error {
					if *v >= shrinkLimitFlag {
						return fmt.Errorf("%d is not below %d", *v, shrinkLimitFlag)
					}
					return nil
				})

			var failure *check.Failure[int64]
			switch {
			case err == nil:
				cmd.Println("property held, nothing to shrink")
				return nil
			case errors.As(err, &failure):
				cmd.Printf("property failed, smallest failing input: %d\n", failure.Value)
				cmd.Printf("failure: %s\n", failure.Message)
				return nil
			default:
				return err
			}
		},
	}
	cmd.Flags().Int64Var(&shrinkStartFlag, "start", 1<<40, "corpus value the check starts from")
	cmd.Flags().Int64Var(&shrinkLimitFlag, "limit", 10, "property requires values below this limit")
	cmd.Flags().Uint64Var(&shrinkSeedFlag, "seed", 0, "seed for a reproducible run")
	cmd.Flags().BoolVarP(&shrinkVerboseFlag, "verbose", "v", false, "log every shrink step")

	return cmd
}

func init() {
	rootCmd.AddCommand(shrinkCmd)
}
