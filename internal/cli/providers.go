package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/guiyumin/urlcat/internal/categorize"
	"github.com/guiyumin/urlcat/internal/config"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List known providers in priority order",
	Long: `List known providers in priority order.

When several providers match the same URL, the one listed last wins.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := resolveOutput(config.LoadOrDefault(), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		infos := categorize.Describe()
		switch opts.format {
		case "json":
			return writeJSON(cmd.OutOrStdout(), infos)
		case "yaml":
			return writeYAML(cmd.OutOrStdout(), infos)
		}

		fmt.Fprintln(cmd.OutOrStdout(), providersTable(infos, opts.styled))
		return nil
	},
}

var tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")).Padding(0, 1)

// providersTable renders the registry. Unstyled output drops the borders
// and keeps plain space-separated columns.
func providersTable(infos []categorize.Info, styled bool) string {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{strconv.Itoa(info.Priority), info.Name, string(info.ResourceType), info.Pattern})
	}

	t := table.New().
		Headers("#", "PROVIDER", "TYPE", "PATTERN").
		Rows(rows...)

	if !styled {
		cell := lipgloss.NewStyle().PaddingRight(1)
		return t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).
			BorderBottom(false).
			BorderLeft(false).
			BorderRight(false).
			BorderHeader(false).
			StyleFunc(func(row, col int) lipgloss.Style { return cell }).
			String()
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	return t.Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return cell
		}).
		String()
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
