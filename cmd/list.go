package cmd

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/grid"
)

var listPlain bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the catalog page by page",
	Long: `Prints every catalog entry with the page, row and column it occupies in
the grid, using the same rows and columns as the interactive view.

With --plain the output is tab separated, one entry per line, for scripts.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "Tab separated output without styling")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	g, err := grid.NewGeometry(cfg.GetGrid())
	if err != nil {
		return err
	}
	return writeList(cmd.OutOrStdout(), g, cat, listPlain)
}

// writeList prints cat as it is laid out on g.
func writeList(w io.Writer, g grid.Geometry, cat *catalog.Catalog, plain bool) error {
	n := cat.Size()
	if n == 0 {
		_, err := fmt.Fprintln(w, "No entries in catalog.")
		return err
	}

	pages := g.PageCount(n)
	if plain {
		for i, it := range cat.Items() {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%d\t%s\t%s\n",
				g.PageOf(i)+1, g.RowOf(i)+1, g.ColOf(i)+1, it.Name, it.CommandLine()); err != nil {
				return err
			}
		}
		return nil
	}

	title := lipgloss.NewStyle().Bold(true)
	for page := 0; page < pages; page++ {
		t := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers("ROW", "COL", "ICON", "NAME", "COMMAND")

		first := page * g.Capacity()
		last := min(n, first+g.Capacity())
		for i := first; i < last; i++ {
			it, _ := cat.At(i)
			t.Row(strconv.Itoa(g.RowOf(i)+1), strconv.Itoa(g.ColOf(i)+1), it.Icon, it.Name, it.CommandLine())
		}

		if _, err := fmt.Fprintf(w, "%s\n%s\n", title.Render(fmt.Sprintf("Page %d/%d", page+1, pages)), t.String()); err != nil {
			return err
		}
	}
	return nil
}
