package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mvasher/scribe/internal/cli"
	"github.com/mvasher/scribe/internal/common"
	"github.com/mvasher/scribe/internal/engine"
	"github.com/mvasher/scribe/internal/model"
	"github.com/mvasher/scribe/internal/sheet"
)

func ingestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Ingest text or spreadsheet files",
		Long: `Ingest uploaded files. Spreadsheets (.xlsx, .xls, .csv, .tsv) are scanned
for recurring-date tables such as birthday lists; everything else is read as
document text and processed sentence by sentence.

Examples:
  # Import birthdays from a spreadsheet
  scribe ingest ~/Downloads/birthdays.xlsx

  # Process a batch of meeting notes
  scribe ingest ~/notes/*.txt`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	files, err := expandFileArgs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to ingest")
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	eng := newEngine(store)

	common.LogInfo("Ingesting files", common.Fields{"file_count": len(files)})

	bar := progressbar.Default(int64(len(files)), "Ingesting")
	var batches []*model.DetectedBatch
	var failed int
	for _, path := range files {
		batch, ingestErr := ingestFile(ctx, eng, path)
		_ = bar.Add(1)
		if ingestErr != nil {
			failed++
			common.LogError(ingestErr, "Failed to ingest file", common.Fields{"file": path})
			continue
		}
		batches = append(batches, batch)
	}
	_ = bar.Finish()

	for _, batch := range batches {
		fmt.Println(cli.RenderBatch(batch))
	}
	if failed > 0 {
		return common.NewUserError(fmt.Sprintf("%d of %d files could not be read", failed, len(files)), common.ErrUnreadableFile)
	}
	return nil
}

// ingestFile routes one file: spreadsheets take priority and bypass
// classification entirely; everything else is treated as document text.
func ingestFile(ctx context.Context, eng *engine.Engine, path string) (*model.DetectedBatch, error) {
	if sheet.IsSpreadsheet(path) {
		sh, err := sheet.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return eng.ImportSheet(ctx, sh)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, common.ErrUnsupportedFile)
	}
	if strings.TrimSpace(string(content)) == "" {
		return nil, fmt.Errorf("%s is empty", path)
	}

	return eng.ProcessDocument(ctx, string(content), filepath.Base(path))
}
