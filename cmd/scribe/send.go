package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvasher/scribe/internal/cli"
)

func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [message...]",
		Short: "Process one chat message",
		Long: `Process a single chat message through the capture engine.

Examples:
  scribe send "Remind me to call mom tomorrow at 5pm"
  scribe send "Add complete the project to do list for tomorrow"
  scribe send "Generate key points from the given document"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			batch, err := newEngine(store).ProcessMessage(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to process message: %w", err)
			}

			fmt.Println(cli.RenderBatch(batch))
			return nil
		},
	}
}

func pasteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Process pasted document text from stdin",
		Long: `Read document text from stdin and process it sentence by sentence.

Example:
  pbpaste | scribe paste`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			if strings.TrimSpace(string(content)) == "" {
				return fmt.Errorf("no input on stdin")
			}

			store, err := openStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			batch, err := newEngine(store).ProcessDocument(ctx, string(content), "paste")
			if err != nil {
				return fmt.Errorf("failed to process document: %w", err)
			}

			fmt.Println(cli.RenderBatch(batch))
			return nil
		},
	}
}
