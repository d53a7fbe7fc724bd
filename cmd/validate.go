package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skysurvey-tools/authlist/author"
	"github.com/skysurvey-tools/authlist/pubdb"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check an author CSV for problems without generating output",
	Long: `Validate reads the author CSV and reports every row that would fail
generation: missing required columns, malformed ORCID identifiers and
invalid first-tier ranks. The exit status is non-zero when any row is
bad, so it can gate a publication pipeline.

Example:
  authlist validate -i author_list.csv`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input CSV file (default: stdin)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	var input io.Reader
	if inputFile != "" {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		input = f
	} else {
		input = os.Stdin
	}

	rows, err := pubdb.Parse(input)
	if err != nil {
		return err
	}

	bad := 0
	for i, row := range rows {
		if _, err := author.ParseRecord(row, i); err != nil {
			bad++
			fmt.Fprintf(os.Stderr, "row %d: %v\n", i+1, err)
		}
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d rows failed validation", bad, len(rows))
	}

	fmt.Printf("%d rows OK\n", len(rows))
	return nil
}
