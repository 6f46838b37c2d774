package lawcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckIndia(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		contractType string
		want         []string
	}{
		{"empty", "", "", nil},
		{"clean", "The tenant shall pay rent monthly.", "", nil},
		{
			"non-compete",
			"The employee agrees to a non-compete restriction for two years.",
			"",
			[]string{IssueNonCompeteVoid},
		},
		{
			"non compete spaced",
			"A non compete covenant applies after separation.",
			"",
			[]string{IssueNonCompeteVoid},
		},
		{
			"salary withholding requires employment contract type",
			"The employer may withhold salary for misconduct.",
			"",
			nil,
		},
		{
			"salary withholding in employment agreement",
			"The employer may withhold salary for misconduct.",
			"Employment Agreement",
			[]string{IssueSalaryWithholding},
		},
		{
			"unlimited liability",
			"The contractor shall be fully liable for all losses.",
			"",
			[]string{IssueUnlimitedLiability},
		},
		{
			"multiple issues in check order",
			"The employee accepts a non compete clause and unlimited liability for breach.",
			"",
			[]string{IssueNonCompeteVoid, IssueUnlimitedLiability},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckIndia(tt.text, tt.contractType))
		})
	}
}
