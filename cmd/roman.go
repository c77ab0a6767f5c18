package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/numerado/internal/randgen"
)

var romanCmd = &cobra.Command{
	Use:   "roman <number|numeral>",
	Short: "Convert between integers and roman numerals",
	Example: `  numerado roman 2024
  numerado roman MMXXIV`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := convertRoman(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

// convertRoman turns an integer into a numeral, or a numeral into an integer.
func convertRoman(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > randgen.RomanMax {
			return "", fmt.Errorf("%d is outside the roman range 1..%d", n, randgen.RomanMax)
		}
		return randgen.ToRoman(n), nil
	}

	n, err := randgen.ParseRoman(arg)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}
