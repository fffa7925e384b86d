package cli

import (
	"github.com/spf13/cobra"
)

// Commands returns the list subcommands bound to h.
func (h *handler) Commands() []*cobra.Command {
	return []*cobra.Command{
		{
			Use:   "lists",
			Short: "Show every list with its completed/total count",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.Lists(cmd.Context())
			},
		},
		{
			Use:   "show <list-id>",
			Short: "Show one list and its tasks",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.Show(cmd.Context(), args[0])
			},
		},
		{
			Use:   "create <title>",
			Short: "Create a new empty list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.Create(cmd.Context(), args[0])
			},
		},
		{
			Use:   "add <list-id> <title> <description>",
			Short: "Add a task to a list",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.Add(cmd.Context(), args[0], args[1], args[2])
			},
		},
		{
			Use:   "toggle <list-id> <task-id>",
			Short: "Mark a task done, or undone again",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return h.Toggle(cmd.Context(), args[0], args[1])
			},
		},
	}
}
