package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/domain/ambiguity"
)

type ambiguityView struct {
	ambiguity.Analysis
}

func (v ambiguityView) TableHeaders() []string {
	return []string{"FIELD", "VALUE"}
}

func (v ambiguityView) TableRows() [][]string {
	return [][]string{
		{"risk_level", v.RiskLevel},
		{"severity_score", strconv.Itoa(v.SeverityScore)},
		{"found_terms", strings.Join(v.FoundTerms, ", ")},
		{"explanation", v.Explanation},
	}
}

// NewAmbiguityCmd creates the ambiguity command: vague-language detection
// for one clause.
func NewAmbiguityCmd() *cobra.Command {
	var clause string

	cmd := &cobra.Command{
		Use:   "ambiguity",
		Short: "Detect ambiguous language in a single clause",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			return printResult(cmd, ambiguityView{cliCtx.Service.AnalyzeAmbiguity(clause)})
		},
	}

	cmd.Flags().StringVar(&clause, "clause", "", "clause text to inspect (required)")
	_ = cmd.MarkFlagRequired("clause")

	return cmd
}
