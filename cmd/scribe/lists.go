package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvasher/scribe/internal/cli"
	"github.com/mvasher/scribe/internal/model"
)

func remindersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reminders",
		Short: "List stored reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			reminders, err := store.ListReminders(ctx)
			if err != nil {
				return fmt.Errorf("failed to list reminders: %w", err)
			}
			if len(reminders) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No reminders yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Reminders (%d)", len(reminders))))
			for _, r := range reminders {
				line := fmt.Sprintf("  %s %s  %s", cli.ReminderIcon, cli.BoldStyle.Render(r.Title), r.Date)
				if r.Time != "" {
					line += " " + r.Time
				}
				if r.Recurring == model.RecurrenceYearly {
					line += cli.SubtleStyle.Render(" (yearly)")
				}
				if r.Priority == model.PriorityHigh {
					line += " " + cli.WarningStyle.Render("high")
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func todosCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "todos",
		Short: "List stored to-dos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			todos, err := store.ListTodos(ctx)
			if err != nil {
				return fmt.Errorf("failed to list todos: %w", err)
			}
			if len(todos) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No to-dos yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("To-dos (%d)", len(todos))))
			for _, t := range todos {
				line := fmt.Sprintf("  %s %s  %s", cli.TodoIcon, cli.BoldStyle.Render(t.Title), cli.SubtleStyle.Render(string(t.Scope)))
				if t.DueDate != "" {
					line += " due " + t.DueDate
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func notesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "notes",
		Short: "List stored notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			notes, err := store.ListNotes(ctx)
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}
			if len(notes) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No notes yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Notes (%d)", len(notes))))
			for _, n := range notes {
				fmt.Printf("  %s %s\n", cli.NoteIcon, cli.BoldStyle.Render(n.Title))
				for _, point := range n.KeyPoints {
					fmt.Println(cli.SubtleStyle.Render("    • " + point))
				}
			}
			return nil
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the activity log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			entries, err := store.ListActivity(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list activity: %w", err)
			}
			if len(entries) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No activity yet."))
				return nil
			}

			fmt.Println(cli.FormatTitle("Activity"))
			for _, e := range entries {
				stamp := e.CreatedAt.Local().Format("2006-01-02 15:04")
				fmt.Printf("  %s  %-8s  %s\n",
					cli.SubtleStyle.Render(stamp),
					strings.ToUpper(string(e.Type)),
					e.Summary)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum entries to show (0 for all)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStorage(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			fmt.Println(cli.FormatSuccess("Database schema is up to date."))
			return nil
		},
	}
}
