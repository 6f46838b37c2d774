package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/application/analysis"
)

// analysisView wraps an Analysis for table rendering; JSON output marshals
// the embedded analysis unchanged.
type analysisView struct {
	*analysis.Analysis
}

func (v analysisView) TableHeaders() []string {
	return []string{"ID", "TITLE", "TYPE", "RISK", "ACTION"}
}

func (v analysisView) TableRows() [][]string {
	rows := make([][]string, 0, len(v.Clauses))
	for _, ca := range v.Clauses {
		risk := "-"
		if ca.Risk != nil {
			risk = ca.Risk.RiskLevel
		}
		rows = append(rows, []string{
			strconv.Itoa(ca.Clause.ID),
			ca.Clause.Title,
			string(ca.Clause.TypeHint),
			risk,
			string(ca.Clause.Action),
		})
	}
	return rows
}

// NewAnalyzeCmd creates the analyze command: full-document analysis of a
// contract read from a file, stdin, or the --text flag.
func NewAnalyzeCmd() *cobra.Command {
	var (
		text         string
		contractType string
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a full contract document",
		Long:  "Segment a contract into clauses and report per-clause risk, explanations,\njurisdiction issues, and rewrites. Reads the document from a file argument,\nfrom stdin when the argument is \"-\", or from the --text flag.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			document, err := readDocument(cmd, args, text)
			if err != nil {
				return err
			}

			result, err := cliCtx.Service.Analyze(cmd.Context(), &analysis.AnalyzeInput{
				Text:         document,
				ContractType: contractType,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, analysisView{result})
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "contract text passed inline instead of a file")
	cmd.Flags().StringVar(&contractType, "contract-type", "", `contract type hint (e.g. "employment agreement")`)

	return cmd
}

// readDocument resolves the document text from --text, stdin, or a file.
func readDocument(cmd *cobra.Command, args []string, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("provide a file argument, \"-\" for stdin, or --text")
	}
	if args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(b), nil
}
