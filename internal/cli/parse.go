package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/workflowdoc/internal/checklist"
	"github.com/dgallion1/workflowdoc/internal/pipeline"
	"github.com/spf13/cobra"
)

func init() {
	f := parseCmd.Flags()
	f.StringVarP(&cfg.InputPath, "input", "i", cfg.InputPath, "Checklist markdown file")
	f.StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "Structured JSON output path")
	f.StringVar(&cfg.StatsPath, "stats", cfg.StatsPath, "Statistics JSON output path")
	f.StringVar(&cfg.Title, "title", cfg.Title, "Document title (default: built-in title)")
	f.StringVar(&cfg.Version, "doc-version", cfg.Version, "Document version")
	f.StringVar(&cfg.Date, "date", cfg.Date, "Document date")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a workflow checklist into structured and statistics JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.ErrOrStderr())

		res, err := pipeline.Run(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), res)
		return nil
	},
}

func printSummary(w io.Writer, res *pipeline.Result) {
	heading := lipgloss.NewRenderer(w).NewStyle().Bold(true)
	st := res.Stats
	fmt.Fprintf(w, "Structured JSON: %s\n", res.OutputPath)
	fmt.Fprintf(w, "Statistics: %s\n", res.StatsPath)

	fmt.Fprintf(w, "\n%s\n", heading.Render("Summary:"))
	fmt.Fprintf(w, "  - Total Sections: %d\n", st.TotalSections)
	fmt.Fprintf(w, "  - Checklist Items: %d\n", st.ChecklistItems)
	fmt.Fprintf(w, "  - Total Items: %d\n", st.TotalItems)

	fmt.Fprintf(w, "\n%s\n", heading.Render("Hierarchy Distribution:"))
	fmt.Fprintf(w, "  Level 1 (## Sections): %d\n", st.Level(checklist.LevelSection))
	fmt.Fprintf(w, "  Level 2 (### Subsections): %d\n", st.Level(checklist.LevelSubsection))
	fmt.Fprintf(w, "  Level 3 (#### Items): %d\n", st.Level(checklist.LevelEntry))
	fmt.Fprintf(w, "  Level 4 (- Bullets): %d\n", st.Level(checklist.LevelDetail))
	fmt.Fprintf(w, "  Level 5 (  - Sub-bullets): %d\n", st.Level(checklist.LevelSubDetail))

	fmt.Fprintf(w, "\n%s\n", heading.Render("Category Distribution:"))
	for _, cc := range st.SortedCategories() {
		fmt.Fprintf(w, "  %s: %d\n", cc.Category, cc.Count)
	}
}
