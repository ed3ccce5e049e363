package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	. "github.com/Protocol-Lattice/lattice-params/src"
	"github.com/Protocol-Lattice/lattice-params/src/params"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Println("❌ Invalid configuration:", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.File, "file", cfg.File, "seed document (.json, .yaml, .yml)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "snapshot format: json or yaml")
	flag.BoolVar(&cfg.Plain, "plain", cfg.Plain, "ask for each field with line prompts instead of the full-screen form")
	flag.BoolVar(&cfg.PrintOnExit, "print", cfg.PrintOnExit, "print the final model to stdout on exit")
	flag.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "run the form in the alternate screen")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "write logs to this file")
	flag.Parse()

	if err := run(context.Background(), cfg); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config) error {
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "params")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	}

	format, err := cfg.SnapshotFormat()
	if err != nil {
		return err
	}
	doc, err := cfg.Document()
	if err != nil {
		return err
	}
	log.Printf("loaded %d params from %q", len(doc.Params), cfg.File)

	editor := params.NewEditor(doc.Params, doc.Model)

	if cfg.Plain {
		snapshot, err := RunHeadless(ctx, editor, nil)
		if err != nil {
			return err
		}
		return params.Encode(os.Stdout, snapshot, format)
	}

	opts := []Option{WithFormat(format)}
	if cfg.File != "" {
		opts = append(opts, WithSource(cfg.File))
	}
	m := NewModel(editor, opts...)
	defer m.Close()

	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(m, programOpts...).Run(); err != nil {
		return err
	}

	if cfg.PrintOnExit {
		return params.Encode(os.Stdout, editor.Snapshot(), format)
	}
	return nil
}
