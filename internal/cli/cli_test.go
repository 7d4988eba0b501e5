package cli

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workflow = `# Estimation Workflow

## 1. DATA PREPARATION
### Database
#### 1.01 - Import collars
- Load collars from the database
  - Check 10 to 20 holes
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "workflow.md")
	require.NoError(t, os.WriteFile(in, []byte(workflow), 0o644))
	outPath := filepath.Join(dir, "structured.json")
	statsPath := filepath.Join(dir, "stats.json")

	out, err := run(t, "parse", "-i", in, "-o", outPath, "--stats", statsPath)
	require.NoError(t, err)

	assert.Contains(t, out, "Total Sections: 1")
	assert.Contains(t, out, "Checklist Items: 1")
	assert.Contains(t, out, "Total Items: 2")
	assert.Contains(t, out, "Level 5 (  - Sub-bullets): 1")
	assert.Contains(t, out, "Category Distribution:")

	raw, err := os.ReadFile(statsPath)
	require.NoError(t, err)
	var st map[string]any
	require.NoError(t, json.Unmarshal(raw, &st))
	assert.EqualValues(t, 1, st["total_sections"])
	assert.FileExists(t, outPath)
}

func TestParseCommand_UnsupportedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "workflow.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF"), 0o644))
	outPath := filepath.Join(dir, "structured.json")

	_, err := run(t, "parse", "-i", in, "-o", outPath, "--stats", filepath.Join(dir, "stats.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
	assert.NoFileExists(t, outPath)
}

func TestGraphCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "workflow.db")
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	for _, s := range []string{
		"CREATE TABLE steps (step_id TEXT PRIMARY KEY, name TEXT, description TEXT, status TEXT)",
		"CREATE TABLE dependencies (step_id TEXT, predecessor_id TEXT)",
		`INSERT INTO steps VALUES ('1.01', 'Import collars', NULL, 'completed')`,
		`INSERT INTO steps VALUES ('1.02', 'Validate surveys', NULL, NULL)`,
		`INSERT INTO dependencies VALUES ('1.02', '1.01')`,
	} {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	require.NoError(t, db.Close())

	graphPath := filepath.Join(dir, "graph.json")
	out, err := run(t, "graph", "--db", dbPath, "-o", graphPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 2 nodes and 1 links")

	raw, err := os.ReadFile(graphPath)
	require.NoError(t, err)
	var g struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	require.NoError(t, json.Unmarshal(raw, &g))
	require.Len(t, g.Links, 1)
	assert.Equal(t, "1.01", g.Links[0]["source"])
	assert.Equal(t, "1.02", g.Links[0]["target"])
}

func TestGraphCommand_MissingDB(t *testing.T) {
	dir := t.TempDir()
	graphPath := filepath.Join(dir, "graph.json")
	_, err := run(t, "graph", "--db", filepath.Join(dir, "nope.db"), "-o", graphPath)
	require.Error(t, err)
	assert.NoFileExists(t, graphPath)
}
