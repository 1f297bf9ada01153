package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cdpdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  *cdpdoc.Catalog
	Corpus   cdpdoc.CorpusService
	Searcher cdpdoc.Searcher
	History  cdpdoc.HistoryService
	RunTUI   func(ctx context.Context, model tea.Model) error
}

// Embedding backends.
const (
	embedderSubword = "subword"
	embedderGemini  = "gemini"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config kong.ConfigFlag `help:"Load settings from a YAML file."`

	DataDir     string  `name:"data-dir" default:"data" env:"CDPDOC_DATA_DIR" help:"Directory holding <cdp>.txt corpora"`
	DB          string  `name:"db" env:"CDPDOC_DB" help:"SQLite database path (default ~/.cdpdoc/cdpdoc.db)"`
	Embedder    string  `default:"subword" enum:"subword,gemini" env:"CDPDOC_EMBEDDER" help:"Embedding backend (subword, gemini)"`
	GeminiModel string  `name:"gemini-model" default:"gemini-embedding-001" env:"CDPDOC_GEMINI_MODEL" help:"Gemini embedding model"`
	Threshold   float64 `default:"0.5" env:"CDPDOC_THRESHOLD" help:"Minimum topic similarity for a question to be answered"`
	Candidates  int     `default:"20" env:"CDPDOC_CANDIDATES" help:"Fuzzy candidates kept for semantic re-ranking"`
	Limit       int     `default:"5" env:"CDPDOC_LIMIT" help:"Maximum answer lines"`
	Verbose     bool    `short:"v" help:"Log pipeline steps to stderr"`

	Ask      AskCmd      `cmd:"" help:"Answer a question from the CDP documentation"`
	Classify ClassifyCmd `cmd:"" help:"Show which CDP a question is about"`
	Import   ImportCmd   `cmd:"" help:"Replace a CDP's documentation corpus from a text file"`
	Status   StatusCmd   `cmd:"" help:"Show which CDP corpora are available"`
	History  HistoryCmd  `cmd:"" help:"List recently asked questions"`
	Chat     ChatCmd     `cmd:"" help:"Open an interactive chat session"`
}

// Validate checks the global settings.
func (c *CLI) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "threshold must be between 0 and 1, got %g", c.Threshold)
	}
	if c.Candidates < 1 {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "candidates must be at least 1, got %d", c.Candidates)
	}
	if c.Limit < 1 {
		return cdpdoc.Errorf(cdpdoc.EINVALID, "limit must be at least 1, got %d", c.Limit)
	}
	return nil
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to answer"`
	CDP      string `name:"cdp" help:"Skip classification and search this CDP (segment, mparticle, lytics, zeotap)"`
	JSON     bool   `name:"json" help:"Print the response as JSON"`
}

// ClassifyCmd is the "classify" subcommand.
type ClassifyCmd struct {
	Question string `arg:"" help:"Question to classify"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	CDP  string `arg:"" help:"CDP whose corpus to replace"`
	File string `arg:"" type:"existingfile" help:"Text file with one documentation snippet per line"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct{}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	CDP   string `name:"cdp" help:"Only show questions for this CDP"`
	Count int    `short:"n" default:"20" help:"Maximum entries to show"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct{}
