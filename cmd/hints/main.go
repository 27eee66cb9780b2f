// Command hints marks selectable regions in terminal text.
//
// By default it reads text from stdin, applies a marking strategy and
// writes one JSON mark per line, which makes it easy to drive from shell
// glue or a multiplexer binding:
//
//	some-command | hints --type=entries
//
// With --run it instead runs a command under a PTY, composes its output on
// a virtual screen and shows the marked screen for a single-key pick; the
// picked mark's text goes to stdout.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strings"

	"github.com/ces42/hints"
)

// Version is set at build time via ldflags
var version = "dev"

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: hints [options] [--run command args...]

Options:
  --type=NAME       marking strategy: entries (default), lines, regex
  --regex=PATTERN   pattern for --type=regex
  --alphabet=CHARS  hint key alphabet
  --save            persist --type/--regex/--alphabet as defaults
  --run CMD...      run CMD under a PTY and pick a mark interactively
  --version         print version
`)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("hints: ")

	config, err := loadConfig()
	if err != nil {
		log.Fatalf("bad config file: %v", err)
	}

	var runArgs []string
	save := false

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--version" || arg == "-v":
			fmt.Printf("hints v%s\n", version)
			return
		case arg == "--help" || arg == "-h":
			usage()
			return
		case arg == "--save":
			save = true
		case strings.HasPrefix(arg, "--type="):
			config.Type = strings.TrimPrefix(arg, "--type=")
		case strings.HasPrefix(arg, "--regex="):
			config.Regex = strings.TrimPrefix(arg, "--regex=")
		case strings.HasPrefix(arg, "--alphabet="):
			config.Alphabet = strings.TrimPrefix(arg, "--alphabet=")
		case arg == "--run":
			runArgs = args[i+1:]
			if len(runArgs) == 0 {
				log.Fatal("--run needs a command")
			}
			i = len(args)
		default:
			usage()
			os.Exit(2)
		}
	}

	if save {
		if err := saveConfig(config); err != nil {
			log.Fatalf("saving config: %v", err)
		}
	}

	mark, err := markerFor(config)
	if err != nil {
		log.Fatal(err)
	}
	opts := &hints.Options{Alphabet: config.Alphabet}

	if len(runArgs) > 0 {
		if err := runOverlay(runArgs, mark, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	if err := filterStdin(mark, opts); err != nil {
		log.Fatal(err)
	}
}

// markerFor maps the configured strategy name to a marking function.
func markerFor(config *Config) (hints.Func, error) {
	switch config.Type {
	case "", "entries":
		return hints.Entries, nil
	case "lines":
		return hints.Lines, nil
	case "regex":
		if config.Regex == "" {
			return nil, fmt.Errorf("--type=regex needs --regex")
		}
		re, err := regexp.Compile(config.Regex)
		if err != nil {
			return nil, fmt.Errorf("bad --regex: %w", err)
		}
		return hints.Pattern(re), nil
	default:
		return nil, fmt.Errorf("unknown --type=%s", config.Type)
	}
}

// filterStdin reads the whole text block from stdin and writes one JSON
// mark per line.
func filterStdin(mark hints.Func, opts *hints.Options) error {
	text, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	enc := json.NewEncoder(w)
	for m := range mark(string(text), opts) {
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return nil
}
