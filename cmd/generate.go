package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/numerado/internal/clipboard"
	"github.com/abhisek/numerado/internal/config"
	"github.com/abhisek/numerado/internal/logging"
	"github.com/abhisek/numerado/internal/output"
	"github.com/abhisek/numerado/internal/randgen"
	"github.com/abhisek/numerado/internal/session"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate numbers once and print them",
	Example: `  numerado generate --min 1 --max 6 --count 3
  numerado generate --format roman --max 2025 --output json
  numerado generate --format decimal --places 3 --even=false --odd=false`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("format", "", "Number format: integer, decimal or roman")
	f.Float64("min", 0, "Lower bound (inclusive)")
	f.Float64("max", 0, "Upper bound")
	f.Int("count", 0, "Numbers per batch, 1 to 3")
	f.Int("places", 0, "Decimal places, 0 to 10 (decimal format)")
	f.Bool("even", true, "Accept even whole numbers")
	f.Bool("odd", true, "Accept odd whole numbers")
	f.Bool("decimals", true, "Accept non-whole numbers (decimal format)")
	f.Uint64("seed", 0, "Seed for a reproducible sequence; 0 seeds randomly")
	f.String("rounding", "", "Decimal rounding: legacy or exact")
	f.Int("batches", 1, "Number of generations to run")
	f.Bool("history", false, "Print the retained history afterwards")
	f.StringP("output", "o", "text", "Output: text, json or yaml")
	f.Bool("copy", false, "Copy the last batch to the clipboard")
}

// applyGenerateFlags overrides g with every flag the user set explicitly.
func applyGenerateFlags(cmd *cobra.Command, g *config.Generator) {
	f := cmd.Flags()
	if f.Changed("format") {
		g.Format, _ = f.GetString("format")
	}
	if f.Changed("min") {
		g.Min, _ = f.GetFloat64("min")
	}
	if f.Changed("max") {
		g.Max, _ = f.GetFloat64("max")
	}
	if f.Changed("count") {
		g.Count, _ = f.GetInt("count")
	}
	if f.Changed("places") {
		g.DecimalPlaces, _ = f.GetInt("places")
	}
	if f.Changed("even") {
		g.Filters.IncludeEven, _ = f.GetBool("even")
	}
	if f.Changed("odd") {
		g.Filters.IncludeOdd, _ = f.GetBool("odd")
	}
	if f.Changed("decimals") {
		g.Filters.IncludeDecimals, _ = f.GetBool("decimals")
	}
	if f.Changed("seed") {
		g.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("rounding") {
		g.Rounding, _ = f.GetString("rounding")
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	applyGenerateFlags(cmd, &cfg.Generator)
	if err := cfg.Validate(); err != nil {
		return err
	}

	kindFlag, _ := cmd.Flags().GetString("output")
	kind, err := output.ParseKind(kindFlag)
	if err != nil {
		return err
	}
	batches, _ := cmd.Flags().GetInt("batches")
	if batches < 1 {
		return fmt.Errorf("--batches must be at least 1, got %d", batches)
	}

	log, closeLog, err := logging.New(cfg.Log, os.Stderr, appName)
	if err != nil {
		return err
	}
	defer closeLog()

	sess, err := newSession(cfg, log)
	if err != nil {
		return err
	}

	report, err := runBatches(sess, batches)
	if err != nil {
		return err
	}

	if withHistory, _ := cmd.Flags().GetBool("history"); withHistory {
		for _, b := range sess.History() {
			report.History = append(report.History, output.Batch{
				Status:    randgen.Success.String(),
				Requested: len(b.Values),
				Values:    output.Values(b.Values),
			})
		}
	}

	if kind == output.Text {
		for _, w := range report.Warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}
	}
	if err := output.Write(cmd.OutOrStdout(), kind, report); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if doCopy, _ := cmd.Flags().GetBool("copy"); doCopy {
		return copyCurrent(cmd.ErrOrStderr(), sess, clipboard.System{})
	}
	return nil
}

// copyCurrent copies the last batch to clip and reports the result on w.
func copyCurrent(w io.Writer, sess *session.Session, clip clipboard.Writer) error {
	n := sess.Copy(clip, sess.Current())
	fmt.Fprintln(w, n.Message)
	if n.Level == session.LevelError {
		return fmt.Errorf("copy to clipboard: %w", n.Err)
	}
	return nil
}

// runBatches generates n batches in sess. It stops with an error on an
// invalid configuration or when a batch produced nothing.
func runBatches(sess *session.Session, n int) (output.Report, error) {
	var report output.Report
	for range n {
		out := sess.Generate()
		for _, notice := range out.Notices {
			if notice.Level == session.LevelWarning {
				report.Warnings = append(report.Warnings, notice.Message)
			}
		}

		if !out.Validation.OK() {
			return report, fmt.Errorf("invalid configuration: %w", out.Validation.Reason)
		}
		if out.Result.Status == randgen.Failure {
			return report, fmt.Errorf("generate: %w", out.Result.Reason)
		}
		report.Batches = append(report.Batches, output.NewBatch(*out.Result))
	}
	report.Format = string(sess.Config().Format)
	return report, nil
}
