package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add TEXT...",
		Short: "Append a new item without opening the list",
		Example: `
todoterm add Buy milk
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("item text is empty")
			}
			if strings.ContainsAny(text, "\r\n") {
				return errors.New("item text must be a single line")
			}

			backend, list, err := a.openList(cmd.Context())
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := backend.Close(); err == nil {
					err = closeErr
				}
			}()

			item := list.Append(text)
			if err := a.save(cmd.Context(), backend, list); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added: %s\n", item.Text)
			return nil
		},
	}
}
