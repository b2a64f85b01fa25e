package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bizdesk/internal/export"
	"bizdesk/internal/ui"
)

func (a *App) exportCmd(ctx context.Context, args []string) error {
	fs := a.flags("export")
	format := fs.String("format", string(export.JSON), "Output format: json, csv or xlsx")
	output := fs.String("o", "-", "Output file, or - for stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	name := *format
	formatSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "format" {
			formatSet = true
		}
	})
	if !formatSet && *output != "-" {
		if ext := strings.TrimPrefix(filepath.Ext(*output), "."); ext != "" {
			name = ext
		}
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	bundle, err := export.Collect(ctx, a.users, a.expenses, a.categories, a.now())
	if err != nil {
		return err
	}

	if *output == "-" {
		return export.Write(a.out.w, f, bundle)
	}
	file, err := os.Create(*output)
	if err != nil {
		return fmt.Errorf("create %s: %w", *output, err)
	}
	if err := export.Write(file, f, bundle); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", *output, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	a.errp.notice(ui.Notice{Level: ui.Success, Message: fmt.Sprintf("Exported %d users, %d expenses and %d categories to %s",
		len(bundle.Users), len(bundle.Expenses), len(bundle.Categories), *output)})
	return nil
}
