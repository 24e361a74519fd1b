// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordcheck spell checking server and CLI [DBG] application.

wordcheck answers three questions about a word: is it known, how could it be
completed, and which known words is it closest to. Known words live in a
prefix tree; unknown words are matched against the whole dictionary by
Levenshtein distance and the closest few are returned.

# Usage

Start the msgpack server with the built-in vocabulary:

	wordcheck

Load a word list, keep learned words in a file and enable debug logs:

	wordcheck -words /usr/share/dict/words -user ~/.config/wordcheck/user_words.txt -d

Run in CLI mode for interactive testing:

	wordcheck -c

# Configuration

Runtime configuration is read from a TOML file, created with defaults if
it does not exist:

	[spell]
	max_distance = 3
	max_results = 8
	suggest_limit = 10
	text_suggestions = 6
	min_word_len = 2

	[dict]
	word_file = ""
	user_dict = ""
	no_defaults = false

	[cli]
	show_distance = true

Command line flags override the file.

# Server Mode

The default mode reads msgpack requests from stdin and writes responses to
stdout, see package server for the protocol. Logs go to stderr.

# CLI Mode

CLI mode reads lines from stdin. A word is checked, "?pre" completes a
prefix, "+word" learns a word, "!stats" prints counters and a line with
spaces is checked as running text.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordcheck/internal/cli"
	"github.com/bastiangx/wordcheck/internal/logger"
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/server"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/bastiangx/wordcheck/pkg/userdict"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "wordcheck"
	gh      = "https://github.com/bastiangx/wordcheck"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionaries and the chosen front end.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	wordFile := flag.String("words", "", "Word list file, one word per line (overrides config)")
	userDict := flag.String("user", "", "File storing learned words (overrides config)")
	noDefaults := flag.Bool("no-defaults", false, "Do not load the built-in starter vocabulary")
	maxDistance := flag.Int("dist", -1, "Maximum edit distance for corrections (overrides config)")
	maxResults := flag.Int("limit", 0, "Maximum number of corrections (overrides config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetDefault(logger.NewWithConfig("", log.DebugLevel, false, true, log.TextFormatter))
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	log.Debugf("Config dir: (%s)", pathResolver.GetConfigDir())

	defaultConfigPath, err := pathResolver.GetConfigPath(config.FileName)
	if err != nil {
		log.Warnf("No writable config location: %v", err)
		defaultConfigPath = ""
	}
	cfg, usedPath, err := config.LoadConfigWithPriority(*configPath, defaultConfigPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", usedPath)

	applyFlags(cfg, *wordFile, *userDict, *noDefaults, *maxDistance, *maxResults)

	checker, err := buildChecker(cfg, pathResolver)
	if err != nil {
		log.Fatalf("Failed to init checker: %v", err)
	}

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		inputHandler := cli.NewInputHandler(checker, logger.New(""), cfg.CLI.ShowDistance)
		if err := inputHandler.Start(os.Stdin); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(checker, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// applyFlags lets explicit command line values win over the config file.
func applyFlags(cfg *config.Config, wordFile, userDict string, noDefaults bool, maxDistance, maxResults int) {
	if wordFile != "" {
		cfg.Dict.WordFile = wordFile
	}
	if userDict != "" {
		cfg.Dict.UserDict = userDict
	}
	if noDefaults {
		cfg.Dict.NoDefaults = true
	}
	if maxDistance >= 0 {
		cfg.Spell.MaxDistance = maxDistance
	}
	if maxResults > 0 {
		cfg.Spell.MaxResults = maxResults
	}
	cfg.Validate()
}

// buildChecker loads the configured vocabularies into a new checker.
func buildChecker(cfg *config.Config, pr *utils.PathResolver) (*spell.Checker, error) {
	checker := spell.NewChecker(spell.Options{
		MaxDistance:     cfg.Spell.MaxDistance,
		MaxResults:      cfg.Spell.MaxResults,
		TextSuggestions: cfg.Spell.TextSuggestions,
		MinWordLen:      cfg.Spell.MinWordLen,
	})

	if !cfg.Dict.NoDefaults {
		checker.LoadWords(dictionary.DefaultWords())
	}

	if cfg.Dict.WordFile != "" {
		words, err := dictionary.LoadWordFile(pr.ResolveWordFile(cfg.Dict.WordFile))
		if err != nil {
			return nil, err
		}
		checker.LoadWords(words)
	}

	if cfg.Dict.UserDict != "" {
		store, err := userdict.Load(utils.ResolveFile(cfg.Dict.UserDict))
		if err != nil {
			return nil, err
		}
		checker.AttachUserDict(store)
	}

	stats := checker.Stats()
	if stats.Words == 0 {
		log.Warn("Dictionary is empty, every word will be reported unknown")
	}
	log.Debug("Checker ready", "words", stats.Words, "user_words", stats.UserWords)
	return checker, nil
}

// printVersion shows the version banner on stderr.
func printVersion() {
	banner := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ WordCheck ] Spell checking, completions and corrections", "app", AppName)
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}
