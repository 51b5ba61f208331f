package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gmottier/patrimoine"
	"github.com/gmottier/patrimoine/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

const adviseModel = "gemini-2.5-pro"

type adviseCmd struct{}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask Gemini for a review of the portfolio" }
func (*adviseCmd) Usage() string {
	return `pat advise [question]

  Sends the current dashboard to Gemini and prints its review: allocation,
  diversification, anything that stands out. An optional question focuses
  the review. Requires GEMINI_API_KEY in the environment.
`
}

func (*adviseCmd) SetFlags(_ *flag.FlagSet) {}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := decodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding journal: %v\n", err)
		return subcommands.ExitFailure
	}
	summary := ledger.Summary(patrimoine.Today())

	question := "Review this portfolio: allocation, diversification, and anything that stands out."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}
	prompt := fmt.Sprintf(`You are a careful personal-finance advisor for a French retail investor.
Here is the current portfolio dashboard in markdown:

%s

%s
Answer in markdown, be concrete and brief, and never invent figures that
are not in the dashboard.`, renderer.DashboardMarkdown(&summary), question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	resp, err := client.Models.GenerateContent(ctx, adviseModel, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating advice:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
