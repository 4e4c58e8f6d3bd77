// ABOUTME: Entry point for the newsdesk command-line client
// ABOUTME: Dispatches subcommands for accounts, cached headlines and saved articles

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/2389/newsdesk/internal/config"
	"github.com/2389/newsdesk/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

const banner = `
                        _           _
 _ __   _____      _____| | ___  ___| | __
| '_ \ / _ \ \ /\ / / __| |/ _ \/ __| |/ /
| | | |  __/\ V  V /\__ \ |  __/\__ \   <
|_| |_|\___| \_/\_/ |___/_|\___||___/_|\_\
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "help", "-h", "--help":
		printUsage()
		return
	case "version":
		fmt.Printf("newsdesk %s\n", version)
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cmd, args); err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.LoadOrDefault(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Every log line of one invocation carries the same ID.
	logger := logging.Setup(cfg.Logging, os.Stderr).With("invocation", uuid.NewString())

	a, err := newApp(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.dispatch(ctx, cmd, args)
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: newsdesk <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  register                        Create an account")
	fmt.Println("  login                           Check your username and password")
	fmt.Println("  headlines <category> [--from F] Show headlines, from cache or from file F (- for stdin)")
	fmt.Println("  articles <category>             List the articles in the cached headlines")
	fmt.Println("  favorite <category> <n>         Save article n of the cached headlines")
	fmt.Println("  saved                           List saved articles")
	fmt.Println("  version                         Print version information")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  NEWSDESK_CONFIG                 Config file (default: ~/.config/newsdesk/config.yaml)")
	fmt.Println("  NEWSDESK_USER                   Username (prompted if unset)")
	fmt.Println("  NEWSDESK_PASSWORD               Password (prompted if unset)")
	fmt.Println()
}
