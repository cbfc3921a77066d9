package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"descstat/internal/config"
	"descstat/internal/input"
	"descstat/internal/stats"

	"github.com/spf13/cobra"
)

var (
	inputFile  string
	jsonOutput bool
)

var describeCmd = &cobra.Command{
	Use:   "describe [values...]",
	Short: "Compute mean, median and mode for a set of values",
	Long: `Compute the arithmetic mean, the median and the mode(s) for the given
values. Values are taken from the arguments, from --file, or from Stdin when
neither is given. Comma- and whitespace-separated input are both accepted.`,
	Example: `  descstat describe 1 2 2 3
  descstat describe 1,2,3,4
  cat samples.txt | descstat describe --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := collectValues(cmd, args)
		if err != nil {
			return err
		}

		// Integer-only input goes through the discrete path so the modes
		// come back as the integers the user typed.
		if ints, ok := input.AllIntegral(values); ok {
			summary, err := stats.DescribeDiscrete(ints)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd, summary)
			}
			printResult(cmd, summary.Mean, summary.Median, joinInts(summary.Modes))
			return nil
		}

		summary, err := stats.Describe(values)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd, summary)
		}
		printResult(cmd, summary.Mean, summary.Median, joinFloats(summary.Modes))
		return nil
	},
}

func collectValues(cmd *cobra.Command, args []string) ([]float64, error) {
	if len(args) > 0 {
		return input.ParseValues(args)
	}

	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		return input.ReadValues(f)
	}

	return input.ReadValues(cmd.InOrStdin())
}

func printJSON(cmd *cobra.Command, summary interface{}) error {
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}
	cmd.Println(string(out))
	return nil
}

func printResult(cmd *cobra.Command, mean, median float64, modes string) {
	cmd.Printf("%-8s %s\n", "mean", formatFloat(mean))
	cmd.Printf("%-8s %s\n", "median", formatFloat(median))
	cmd.Printf("%-8s %s\n", "modes", modes)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', outputPrecision(), 64)
}

func outputPrecision() int {
	if cfg == nil {
		return config.DefaultPrecision
	}
	return cfg.OutputPrecision
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func init() {
	describeCmd.Flags().StringVarP(&inputFile, "file", "f", "", "read values from a file instead of the arguments")
	describeCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
}
