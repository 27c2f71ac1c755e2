package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleCSV = `date,hour,product_id,staff_id,volume,value
2024-01-01,9,A,S1,5,50.00
2024-01-01,14,B,S2,3,30.00
2024-01-02,9,A,S1,10,100.00
`

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, rc *ReportCommand, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	rc.stdout = &out
	rc.logOutput = io.Discard

	cmd := rc.Command()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()

	return out.String(), err
}

func TestReportCommand_Text(t *testing.T) {
	input := writeInput(t, sampleCSV)

	out, err := execute(t, &ReportCommand{}, input, "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "1. Highest sales volume in a day: 10 units on 2024-01-02")
	require.Contains(t, out, "5. Peak hour by average transaction volume: 9:00-9:59")
}

func TestReportCommand_JSONFormat(t *testing.T) {
	input := writeInput(t, sampleCSV)

	out, err := execute(t, &ReportCommand{}, input, "--format", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"top_product"`)
	require.Contains(t, out, `"records": 3`)
}

func TestReportCommand_EmptyDataset(t *testing.T) {
	input := writeInput(t, "date,hour,product_id,staff_id,volume,value\n")

	out, err := execute(t, &ReportCommand{}, input, "--no-color")
	require.NoError(t, err)
	require.Contains(t, out, "No transactions found")
}

func TestReportCommand_InputNotFound(t *testing.T) {
	_, err := execute(t, &ReportCommand{}, filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestReportCommand_OutputAndPlotFiles(t *testing.T) {
	input := writeInput(t, sampleCSV)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "report.txt")
	plotPath := filepath.Join(dir, "report.html")

	_, err := execute(t, &ReportCommand{}, input, "--no-color", "--output", outPath, "--plot", plotPath)
	require.NoError(t, err)

	reportText, err := os.ReadFile(outPath)
	require.NoError(t, err)
	require.Contains(t, string(reportText), "Most sold product ID: A")

	plotHTML, err := os.ReadFile(plotPath)
	require.NoError(t, err)
	require.Contains(t, string(plotHTML), "Daily Sales Volume")
}

func TestReportCommand_AbortPolicyViaEnv(t *testing.T) {
	input := writeInput(t, sampleCSV+"garbage-row\n")

	t.Setenv("SALESIGHT_PARSER_ON_MALFORMED", "abort")

	_, err := execute(t, &ReportCommand{}, input)
	require.Error(t, err)
}

func TestReportCommand_UnknownFormatFlag(t *testing.T) {
	input := writeInput(t, sampleCSV)

	_, err := execute(t, &ReportCommand{}, input, "--format", "xml")
	require.Error(t, err)
}
