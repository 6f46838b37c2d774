package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/application/analysis"
	"github.com/clauselens/clauselens/internal/domain/rewrite"
)

type rewriteView struct {
	*rewrite.Result
}

func (v rewriteView) TableHeaders() []string {
	return []string{"FIELD", "VALUE"}
}

func (v rewriteView) TableRows() [][]string {
	return [][]string{
		{"rewritten_clause", v.RewrittenClause},
		{"strategy", v.Strategy},
		{"why", v.WhyThisChange},
		{"confidence", strconv.FormatFloat(v.Confidence, 'f', 2, 64)},
	}
}

// NewRewriteCmd creates the rewrite command: suggested replacement wording
// for one clause.
func NewRewriteCmd() *cobra.Command {
	var (
		clause     string
		riskLevel  string
		clauseType string
	)

	cmd := &cobra.Command{
		Use:   "rewrite",
		Short: "Suggest safer wording for a single clause",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			result, err := cliCtx.Service.RewriteClause(&analysis.RewriteInput{
				Text:      clause,
				RiskLevel: riskLevel,
				Type:      clauseType,
			})
			if err != nil {
				return err
			}
			return printResult(cmd, rewriteView{result})
		},
	}

	cmd.Flags().StringVar(&clause, "clause", "", "clause text to rewrite (required)")
	cmd.Flags().StringVar(&riskLevel, "risk-level", "High", "risk level driving template choice (Low, Medium, High)")
	cmd.Flags().StringVar(&clauseType, "type", "", "clause type override (default: classified from the text)")
	_ = cmd.MarkFlagRequired("clause")

	return cmd
}
