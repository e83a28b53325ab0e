package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/todoterm/internal/model"
	"github.com/sandeepkv93/todoterm/internal/views"
)

func newListCmd(a *app) *cobra.Command {
	var category string
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the todo list",
		Example: `
todoterm list
todoterm list --category done --plain
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backend, list, err := a.openList(cmd.Context())
			if err != nil {
				return err
			}
			defer backend.Close()

			items, title, err := selectItems(list, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if plain {
				for _, it := range items {
					mark := " "
					if it.Completed {
						mark = "x"
					}
					fmt.Fprintf(out, "[%s] %s\n", mark, it.Text)
				}
				return nil
			}
			check := make([]views.ChecklistItem, 0, len(items))
			for _, it := range items {
				check = append(check, views.ChecklistItem{Text: it.Text, Done: it.Completed})
			}
			fmt.Fprintln(out, views.RenderMarkdown(views.RenderChecklist(title, check)))
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "all", "which items to print: todo, done or all")
	cmd.Flags().BoolVar(&plain, "plain", false, "print without markdown rendering")
	return cmd
}

func selectItems(list *model.List, category string) ([]model.Item, string, error) {
	all := list.Items()
	var c model.Category
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "", "all":
		return all, "All", nil
	case "todo", "active":
		c = model.CategoryActive
	case "done", "completed":
		c = model.CategoryCompleted
	default:
		return nil, "", fmt.Errorf("unknown category %q (want todo, done or all)", category)
	}
	view := model.Project(all, c)
	out := make([]model.Item, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		out = append(out, all[view.Resolve(i)])
	}
	return out, c.Title(), nil
}
