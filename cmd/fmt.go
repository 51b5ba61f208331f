package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/gmottier/patrimoine"
	"github.com/google/subcommands"
)

// printMarkdown renders a markdown document to the terminal. It falls back to
// the raw markdown when the renderer cannot be built (e.g. no TTY).
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the journal file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `pat fmt

  Reads the whole journal, validates it, sorts records chronologically and
  writes it back in canonical JSONL form. This is how a past record is
  edited: change the file, then run fmt.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load journal: %v\n", err)
		return subcommands.ExitFailure
	}

	f, err := os.Create(*ledgerFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rewriting journal %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := patrimoine.EncodeLedger(f, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding journal %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted journal %q.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
