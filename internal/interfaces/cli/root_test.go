package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testContract = "1. The company may terminate this agreement at any time without notice.\n" +
	"2. The employee shall receive a monthly salary of ₹50,000 payable monthly."

// runCLI executes the root command with args and returns stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCmd_InlineText(t *testing.T) {
	out, err := runCLI(t, "analyze", "--text", testContract, "--contract-type", "employment agreement")
	require.NoError(t, err)

	var result struct {
		ContractType string `json:"contract_type"`
		TotalClauses int    `json:"total_clauses"`
		HighRisk     int    `json:"high_risk_clauses"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "employment agreement", result.ContractType)
	assert.Equal(t, 2, result.TotalClauses)
	assert.Equal(t, 1, result.HighRisk)
}

func TestAnalyzeCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	require.NoError(t, os.WriteFile(path, []byte(testContract), 0o600))

	out, err := runCLI(t, "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"total_clauses": 2`)
}

func TestAnalyzeCmd_MissingInput(t *testing.T) {
	_, err := runCLI(t, "analyze")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--text")
}

func TestAnalyzeCmd_TextOutput(t *testing.T) {
	out, err := runCLI(t, "analyze", "--text", testContract, "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "RISK")
	assert.Contains(t, out, "High")
}

func TestAssessCmd(t *testing.T) {
	out, err := runCLI(t, "assess", "--clause",
		"The company may terminate at any time without notice.")
	require.NoError(t, err)
	assert.Contains(t, out, `"risk_level": "High"`)
	assert.Contains(t, out, `"type": "Termination"`)
}

func TestAssessCmd_RequiresClause(t *testing.T) {
	_, err := runCLI(t, "assess")
	require.Error(t, err)
}

func TestAmbiguityCmd(t *testing.T) {
	out, err := runCLI(t, "ambiguity", "--clause",
		"The vendor shall use best efforts to deliver in a reasonable time.")
	require.NoError(t, err)
	assert.Contains(t, out, "best efforts")
	assert.Contains(t, out, `"reasonable"`)
}

func TestRewriteCmd(t *testing.T) {
	out, err := runCLI(t, "rewrite", "--clause",
		"The company may terminate at any time without notice.", "--risk-level", "High")
	require.NoError(t, err)
	assert.Contains(t, out, "minimum written notice")

	_, err = runCLI(t, "rewrite", "--clause", "x", "--risk-level", "Extreme")
	require.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	table := FormatTable(
		[]string{"ID", "RISK"},
		[][]string{{"1", "High"}, {"2", "Low"}},
	)

	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[0], "RISK")
	assert.True(t, strings.HasPrefix(lines[1], "--"))
	assert.Contains(t, lines[2], "High")

	assert.Empty(t, FormatTable(nil, nil))
}
