package cmd

import (
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/spf13/cobra"

	"github.com/bnema/daisy/internal/gallery"
	"github.com/bnema/daisy/pkg/ui"
)

func newRenderCmd() *cobra.Command {
	var (
		fragment string
		page     bool
		list     bool
		theme    string
	)

	cmd := &cobra.Command{
		Use:   "render [component...]",
		Short: "Print the HTML of gallery components",
		Long: `Render one or more gallery specimens to stdout. Without arguments every
specimen is rendered. Use --fragment to print only the inner HTML of one element
and --page to wrap the output in a full HTML document.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if list {
				for _, s := range gallery.Catalog() {
					fmt.Fprintf(out, "%-16s %s\n", s.Name, s.Title)
				}
				return nil
			}

			specimens, err := pick(args)
			if err != nil {
				return err
			}

			if fragment != "" {
				sections := make([]templ.Component, 0, len(specimens))
				for _, s := range specimens {
					sections = append(sections, gallery.Section(s))
				}
				html, err := ui.FragmentByID(ctx, ui.Group(sections...), fragment)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, html)
				return err
			}

			if page {
				if err := gallery.Page(gallery.PageProps{Title: "daisy", Theme: theme, Specimens: specimens}).Render(ctx, out); err != nil {
					return fmt.Errorf("failed to render page: %w", err)
				}
				_, err := io.WriteString(out, "\n")
				return err
			}

			for _, s := range specimens {
				if err := s.Component.Render(ctx, out); err != nil {
					return fmt.Errorf("failed to render %s: %w", s.Name, err)
				}
				if _, err := io.WriteString(out, "\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&fragment, "fragment", "f", "", "print only the inner HTML of the element with this id")
	cmd.Flags().BoolVarP(&page, "page", "p", false, "wrap the output in a full HTML document")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list the available components")
	cmd.Flags().StringVar(&theme, "theme", "light", "daisyUI theme used with --page")
	return cmd
}

func pick(names []string) ([]gallery.Specimen, error) {
	if len(names) == 0 {
		return gallery.Catalog(), nil
	}
	specimens := make([]gallery.Specimen, 0, len(names))
	for _, name := range names {
		s, ok := gallery.Find(name)
		if !ok {
			return nil, fmt.Errorf("unknown component %q (see daisy render --list)", name)
		}
		specimens = append(specimens, s)
	}
	return specimens, nil
}
