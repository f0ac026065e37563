package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"rpcalc/app/lang"

	"go.uber.org/zap"
)

type config struct {
	radix   lang.Radix
	inPlace bool
	quiet   bool
	color   bool
	debug   bool
	script  string // read lines from this file instead of stdin
}

var errUsage = errors.New("usage")

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("rpcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	radix := fs.String("radix", "dec", "initial display radix: dec, hex or bin")
	fs.BoolVar(&cfg.inPlace, "inplace", false, "keep the progress of a failing line up to the failing operation")
	fs.BoolVar(&cfg.quiet, "quiet", false, "no prompts; print the final stack at end of input")
	fs.BoolVar(&cfg.color, "color", false, "highlight echoed script lines")
	fs.BoolVar(&cfg.debug, "debug", false, "debug logging to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: rpcalc [flags] [file]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return config{}, errUsage
	}
	cfg.script = fs.Arg(0)

	r, err := lang.ParseRadix(*radix)
	if err != nil {
		fmt.Fprintf(stderr, "rpcalc: %v\n", err)
		return config{}, errUsage
	}
	cfg.radix = r
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	log := newLogger(cfg.debug)
	defer log.Sync()

	if err := run(cfg, os.Stdin, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "rpcalc: %v\n", err)
		os.Exit(1)
	}
}

// run evaluates lines from the script named in cfg, or from stdin, until
// end of input. Calculator errors are reported on out and never end the run.
func run(cfg config, stdin io.Reader, out io.Writer, log *zap.Logger) error {
	in := stdin
	echo := false
	if cfg.script != "" {
		f, err := openScript(cfg.script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		echo = true
	}

	mode := lang.Transactional
	if cfg.inPlace {
		mode = lang.InPlace
	}
	s := lang.NewSession(
		lang.WithMode(mode),
		lang.WithRadix(cfg.radix),
		lang.WithLogger(log),
	)
	log.Debug("session started",
		zap.Stringer("session", s.ID()),
		zap.String("script", cfg.script),
		zap.Stringer("radix", cfg.radix))

	sc := newLineScanner(in)
	for {
		if !cfg.quiet {
			fmt.Fprint(out, s.Prompt())
		}
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if echo && !cfg.quiet {
			shown := line
			if cfg.color {
				shown = highlight(line)
			}
			fmt.Fprintln(out, shown)
		}
		if res := s.EvalLine(line); res.IsErr {
			fmt.Fprintf(out, "Error: %s\n", res.Text)
		}
	}
	if cfg.quiet {
		fmt.Fprintln(out, s.Calculator())
	} else {
		fmt.Fprintln(out)
	}
	return sc.Err()
}
