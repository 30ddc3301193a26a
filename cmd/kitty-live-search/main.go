package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/hadarshamir/kitty-live-search/internal/cache"
	"github.com/hadarshamir/kitty-live-search/internal/config"
	"github.com/hadarshamir/kitty-live-search/internal/kitty"
	"github.com/hadarshamir/kitty-live-search/internal/linebuf"
	"github.com/hadarshamir/kitty-live-search/internal/search"
	"github.com/hadarshamir/kitty-live-search/internal/session"
)

func printHelp() {
	fmt.Print(`kitty-live-search - Incremental scrollback search for kitty

USAGE:
    kitty-live-search [OPTIONS] [WINDOW_ID]

When WINDOW_ID is omitted, the KITTY_WINDOW_ID environment variable and
then the focused window are tried in turn.

OPTIONS:
    -h, --help            Show this help message and exit
    --config=PATH         Load configuration from PATH
`)
}

func main() {
	configPath := config.DefaultPath()
	windowArg := ""
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case strings.HasPrefix(arg, "-"):
			fmt.Fprintf(os.Stderr, "Unknown option %s\n", arg)
			os.Exit(1)
		default:
			windowArg = arg
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg)

	client := kitty.NewClient(nil, cfg.Paths.ScrollMarkKitten)
	windowID, err := client.ResolveWindow(windowArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving target window: %v\n", err)
		os.Exit(1)
	}
	client.ShrinkSelf()

	store := cache.NewFileStore(cfg.Paths.LastSearch, cfg.Paths.LastPosition)
	opts := session.Options{
		Prompt:         cfg.Prompt,
		WordJumpPolicy: wordJumpPolicy(cfg),
		Markers: search.WordLists{
			Alert:   cfg.Markers.AlertWords,
			Warning: cfg.Markers.WarningWords,
		},
	}

	if err := session.Run(os.Stdin, os.Stdout, client.Window(windowID), store, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging sends the log to a file when configured, otherwise discards
// it. Stdout and stderr belong to the prompt while the session runs.
func setupLogging(cfg config.Config) {
	path := cfg.LogFile
	if env := os.Getenv("KITTY_LIVE_SEARCH_LOG"); env != "" {
		path = env
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}

func wordJumpPolicy(cfg config.Config) linebuf.Policy {
	if cfg.WordJumpPolicy == "alphanum" {
		return linebuf.PolicyAlphanum
	}
	return linebuf.PolicySmart
}
