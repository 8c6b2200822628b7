package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"stockquotes/internal/app"
	"stockquotes/internal/config"
	"stockquotes/internal/dates"
	"stockquotes/internal/logging"
)

var commands = []subcommands.Command{
	&quoteCmd{},
	&compareCmd{},
	&historyCmd{},
	&priceCmd{},
	&gainsCmd{},
	&searchCmd{},
}

// run builds the services, calls fn and prints its result.
func run(ctx context.Context, fn func(ctx context.Context, s *app.Services) (any, error)) subcommands.ExitStatus {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer func() { _ = logger.Sync() }()

	services, err := app.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building services: %v\n", err)
		return subcommands.ExitFailure
	}
	defer func() { _ = services.Close() }()

	res, err := fn(ctx, services)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printJSON(os.Stdout, res); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// symbolArg returns the single positional symbol argument.
func symbolArg(f *flag.FlagSet) (string, bool) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return "", false
	}
	return f.Arg(0), true
}

type quoteCmd struct{}

func (*quoteCmd) Name() string           { return "quote" }
func (*quoteCmd) Synopsis() string       { return "print the latest quote of a symbol" }
func (*quoteCmd) Usage() string          { return "quote <symbol>\n" }
func (*quoteCmd) SetFlags(*flag.FlagSet) {}

func (*quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.LastQuote.LastQuote(ctx, symbol)
	})
}

type compareCmd struct {
	with string
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the latest quote of a symbol with others" }
func (*compareCmd) Usage() string {
	return `compare -with <A,B,...> <symbol>

  Prints the latest quote of <symbol> and of every symbol listed in -with,
  in the order given.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.with, "with", "", "comma-separated symbols to compare against (required)")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	others := splitCSV(c.with)
	if len(others) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -with is required.")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.Compare.Compare(ctx, symbol, others)
	})
}

type historyCmd struct {
	from, to string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "print daily prices of a symbol over a date range" }
func (*historyCmd) Usage() string    { return "history -from YYYY-MM-DD -to YYYY-MM-DD <symbol>\n" }

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "first day, inclusive (required)")
	f.StringVar(&c.to, "to", "", "last day, inclusive (required)")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	from, err := dates.ParseInput(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	to, err := dates.ParseInput(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -to: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.History.History(ctx, symbol, from, to)
	})
}

type priceCmd struct {
	date string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "print the closing price of a symbol on a day" }
func (*priceCmd) Usage() string    { return "price -date YYYY-MM-DD <symbol>\n" }

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "calendar day (required)")
}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	date, err := dates.ParseInput(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -date: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.QuoteOnDate.QuoteOnDate(ctx, symbol, date)
	})
}

type gainsCmd struct {
	amount string
	at     string
}

func (*gainsCmd) Name() string     { return "gains" }
func (*gainsCmd) Synopsis() string { return "print the capital gains of a past purchase" }
func (*gainsCmd) Usage() string {
	return `gains -amount <shares> -at YYYY-MM-DD <symbol>

  Values <shares> of <symbol> bought at the close of the given day against
  the latest quote.
`
}

func (c *gainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "number of shares purchased (required)")
	f.StringVar(&c.at, "at", "", "purchase day (required)")
}

func (c *gainsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, ok := symbolArg(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	at, err := dates.ParseInput(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.Gains.Gains(ctx, symbol, amount, at)
	})
}

type searchCmd struct{}

func (*searchCmd) Name() string           { return "search" }
func (*searchCmd) Synopsis() string       { return "search symbols by keywords" }
func (*searchCmd) Usage() string          { return "search <keywords...>\n" }
func (*searchCmd) SetFlags(*flag.FlagSet) {}

func (*searchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	query := strings.Join(f.Args(), " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(os.Stderr, "Error: keywords are required.")
		return subcommands.ExitUsageError
	}
	return run(ctx, func(ctx context.Context, s *app.Services) (any, error) {
		return s.Search.Search(ctx, query)
	})
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
