package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/vitaminR/autobudget/internal/api"
	"github.com/vitaminR/autobudget/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	cfg := api.LoadConfig()

	var observer api.Observer = api.NoopObserver{}
	if cfg.LogCalls {
		observer = api.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		API:       api.NewClient(cfg, observer),
		CurrentPP: currentPayPeriod(),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

// currentPayPeriod reads the starting pay period from the environment,
// defaulting to the first.
func currentPayPeriod() int {
	if v := os.Getenv("AUTOBUDGET_PP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 1
}
