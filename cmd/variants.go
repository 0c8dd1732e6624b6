package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/bnema/daisy/internal/catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Padding(0, 1).Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

func newVariantsCmd() *cobra.Command {
	var (
		check  bool
		tokens bool
	)

	cmd := &cobra.Command{
		Use:   "variants [enumeration]",
		Short: "Print the variant to class-token tables",
		Long: `Print every enumeration with the class token each variant maps to.
--check lists tokens shared by several variants and tokens that break their
enumeration's naming; --tokens prints a plain safelist for CSS purging.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			enums := catalog.Enumerations()

			if len(args) == 1 {
				filtered := enums[:0:0]
				for _, e := range enums {
					if strings.EqualFold(e.Type, args[0]) || strings.EqualFold(e.Name(), args[0]) {
						filtered = append(filtered, e)
					}
				}
				if len(filtered) == 0 {
					return fmt.Errorf("unknown enumeration %q", args[0])
				}
				enums = filtered
			}

			switch {
			case tokens:
				for _, token := range catalog.Tokens(enums) {
					fmt.Fprintln(out, token)
				}
			case check:
				fmt.Fprint(out, checkReport(enums))
			default:
				for _, e := range enums {
					fmt.Fprintln(out, titleStyle.Render(e.Name()))
					fmt.Fprintln(out, variantTable(e))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "report aliased and suspicious tokens")
	cmd.Flags().BoolVar(&tokens, "tokens", false, "print every class token, one per line")
	return cmd
}

func variantTable(e catalog.Enumeration) string {
	rows := make([][]string, 0, len(e.Entries))
	for i, entry := range e.Entries {
		name := entry.Name
		if i == 0 {
			name += " (default)"
		}
		rows = append(rows, []string{name, entry.Token})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("VARIANT", "TOKEN").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(rows) && col == 1 && rows[row][1] == "":
				return emptyStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

func checkReport(enums []catalog.Enumeration) string {
	var b strings.Builder

	collisions := catalog.Collisions(enums)
	fmt.Fprintln(&b, titleStyle.Render("Shared tokens"))
	if len(collisions) == 0 {
		fmt.Fprintln(&b, "  none")
	}
	for _, c := range collisions {
		fmt.Fprintf(&b, "  %s: %s <- %s\n", c.Enumeration, c.Token, strings.Join(c.Variants, ", "))
	}

	findings := catalog.Suspicious(enums)
	fmt.Fprintln(&b, titleStyle.Render("Suspicious tokens"))
	if len(findings) == 0 {
		fmt.Fprintln(&b, "  none")
	}
	for _, f := range findings {
		fmt.Fprintf(&b, "  %s.%s: %s %s\n", f.Enumeration, f.Variant, warnStyle.Render(f.Token), "("+f.Reason+")")
	}
	return b.String()
}
