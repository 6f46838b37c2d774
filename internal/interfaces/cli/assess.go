package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clauselens/clauselens/internal/domain/risk"
)

type assessmentView struct {
	*risk.Assessment
}

func (v assessmentView) TableHeaders() []string {
	return []string{"FIELD", "VALUE"}
}

func (v assessmentView) TableRows() [][]string {
	return [][]string{
		{"type", string(v.Type)},
		{"risk_level", v.RiskLevel},
		{"score", strconv.Itoa(v.Score)},
		{"confidence", strconv.FormatFloat(v.Confidence, 'f', 2, 64)},
		{"priority", v.NegotiationPriority},
		{"reasons", strings.Join(v.Reasons, "; ")},
		{"suggestions", strings.Join(v.Suggestions, "; ")},
	}
}

// NewAssessCmd creates the assess command: risk assessment of one clause.
func NewAssessCmd() *cobra.Command {
	var clause string

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Assess the risk of a single clause",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			assessment, err := cliCtx.Service.AssessClause(cmd.Context(), clause)
			if err != nil {
				return err
			}
			return printResult(cmd, assessmentView{assessment})
		},
	}

	cmd.Flags().StringVar(&clause, "clause", "", "clause text to assess (required)")
	_ = cmd.MarkFlagRequired("clause")

	return cmd
}
