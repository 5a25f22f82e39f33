package cli

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/morph"
	"github.com/mouse-blink/morph/internal/config"
	"github.com/mouse-blink/morph/internal/controller"
	"github.com/mouse-blink/morph/internal/domain"
	"github.com/mouse-blink/morph/mutators"
)

var distSamplesFlag int
var distParallelFlag int
var distSeedFlag uint64
var distStartFlag int64
var distShrinkFlag bool
var distPlainFlag bool

// distCmd represents the dist command.
var distCmd = newDistCmd()

func newDistCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dist <mutator>",
		Short: "Sample a mutator and print the distribution of its results",
		Long: `Dist draws many mutations from one of the built-in mutators and prints a
histogram of where the results land, which is handy for checking that a
mutator covers the values you expect.

Available mutators:
  u8 u16 u32 u64 i8 i16 i32 i64   integers, bucketed by power of two
  f32 f64                         floats, bucketed by class and magnitude
  bool                            booleans
  rune                            runes, bucketed by Unicode plane`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyDistFlags(cmd, cfg)

			ui := controller.NewUI(cmd, !cfg.Plain && controller.IsTTY(os.Stdout))
			return runDist(cmd, ui, args[0], cfg)
		},
	}
	cmd.Flags().IntVarP(&distSamplesFlag, "samples", "n", 0, "number of mutations to sample")
	cmd.Flags().IntVarP(&distParallelFlag, "parallel", "p", 0, "number of parallel sampling workers")
	cmd.Flags().Uint64Var(&distSeedFlag, "seed", 0, "seed for reproducible sampling")
	cmd.Flags().Int64Var(&distStartFlag, "start", 0, "value the mutations start from")
	cmd.Flags().BoolVar(&distShrinkFlag, "shrink", false, "sample the shrink-mode distribution")
	cmd.Flags().BoolVar(&distPlainFlag, "plain", false, "disable the interactive progress bar")

	return cmd
}

func init() {
	rootCmd.AddCommand(distCmd)
}

// applyDistFlags lets explicitly set flags override the file and
// environment configuration.
func applyDistFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("samples") {
		cfg.Samples = distSamplesFlag
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = distParallelFlag
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = distSeedFlag
	}
	if distPlainFlag {
		cfg.Plain = true
	}
}

func runDist(cmd *cobra.Command, ui controller.UI, name string, cfg *config.Config) error {
	switch name {
	case "u8":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[uint8](), uint8(distStartFlag), bucketInt)
	case "u16":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[uint16](), uint16(distStartFlag), bucketInt)
	case "u32":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[uint32](), uint32(distStartFlag), bucketInt)
	case "u64":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[uint64](), uint64(distStartFlag), bucketInt)
	case "i8":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[int8](), int8(distStartFlag), bucketInt)
	case "i16":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[int16](), int16(distStartFlag), bucketInt)
	case "i32":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[int32](), int32(distStartFlag), bucketInt)
	case "i64":
		return sampleAndRender(cmd, ui, cfg, mutators.Int[int64](), distStartFlag, bucketInt)
	case "f32":
		return sampleAndRender(cmd, ui, cfg, mutators.Float32(), float32(distStartFlag), bucketFloat32)
	case "f64":
		return sampleAndRender(cmd, ui, cfg, mutators.Float64(), float64(distStartFlag), bucketFloat64)
	case "bool":
		return sampleAndRender(cmd, ui, cfg, mutators.Bool(), distStartFlag != 0, bucketBool)
	case "rune":
		return sampleAndRender(cmd, ui, cfg, mutators.Rune(), rune(distStartFlag), bucketRune)
	default:
		return fmt.Errorf("unknown mutator %q, see --help for the list", name)
	}
}

func sampleAndRender[T any](cmd *cobra.Command, ui controller.UI, cfg *config.Config, m morph.Mutator[T], start T, bucket func(T) string) error {
	if err := ui.Start(cfg.Samples); err != nil {
		return err
	}

	dist, err := domain.Sample(m, start, bucket, domain.Options{
		Samples:  cfg.Samples,
		Workers:  cfg.Parallel,
		Seed:     cfg.Seed,
		Shrink:   distShrinkFlag,
		Progress: ui.Progress,
	})
	ui.Close()
	if err != nil {
		return err
	}

	renderDistribution(cmd, dist)
	return nil
}

// renderDistribution prints the histogram, most populated buckets first.
func renderDistribution(cmd *cobra.Command, dist domain.Distribution) {
	buckets := make([]string, 0, len(dist))
	for b := range dist {
		buckets = append(buckets, b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if dist[buckets[i]] != dist[buckets[j]] {
			return dist[buckets[i]] > dist[buckets[j]]
		}
		return buckets[i] < buckets[j]
	})

	total := dist.Total()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Bucket", "Count", "Share"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for _, b := range buckets {
		count := dist[b]
		share := 0.0
		if total > 0 {
			share = float64(count) / float64(total) * 100
		}
		table.Append([]string{b, fmt.Sprintf("%d", count), fmt.Sprintf("%.2f%%", share)})
	}
	table.SetFooter([]string{"total", fmt.Sprintf("%d", total), "100.00%"})
	table.Render()

	cmd.Println(buf.String())
}
