// Command keychain computes how many presses a human needs on the outer
// directional keypad to type door codes through chains of robots.
//
// Usage:
//
//	keychain [-config file] [-input codes.txt] [-robots 2,25] [-v]
//
// Codes are read one per line from -input, the configured input file or
// stdin. For every robot count one line is printed with the summed
// complexity (presses × numeric value) of all codes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/code"
	"github.com/katalvlaran/keychain/config"
	"github.com/katalvlaran/keychain/keypad"
)

var errNoCodes = errors.New("no codes in input")

func main() {
	log.SetFlags(0)
	log.SetPrefix("keychain: ")
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}

// realMain reads flags and config, then runs. Deferred closes run before
// main decides the exit status.
func realMain() error {
	var (
		configPath = flag.String("config", "", "extra config file, read last")
		input      = flag.String("input", "", "file of codes, one per line (default stdin)")
		robots     = flag.String("robots", "", "comma separated intermediate robot counts")
		verbose    = flag.Bool("v", false, "log per-code results and cache statistics")
	)
	flag.Parse()

	var extra []string
	if *configPath != "" {
		extra = append(extra, *configPath)
	}
	cfg, err := config.Load(extra...)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if *input != "" {
		cfg.Input = *input
	}
	if *robots != "" {
		if cfg.Robots, err = parseRobots(*robots); err != nil {
			return fmt.Errorf("-robots: %w", err)
		}
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err := cfg.Normalize(); err != nil {
		return err
	}

	in, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	return run(context.Background(), cfg, in, os.Stdout, log.Default())
}

// openInput opens path for reading, or stdin when path is empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: %w", err)
	}
	return f, nil
}

// parseRobots reads a comma separated list such as "2,25".
func parseRobots(s string) ([]int, error) {
	var out []int
	for _, f := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// run solves every code for each configured robot count and prints one
// result line per count to out. Diagnostics go to logger.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	codes, err := code.ParseAll(in)
	if err != nil {
		return err
	}
	if len(codes) == 0 {
		return errNoCodes
	}
	keys := code.Keys(codes)
	if !cfg.SharedCache && (cfg.Verbose || cfg.DumpCache) {
		logger.Printf("cache stats and dump need shared_cache; skipped with private caches")
	}

	for _, n := range cfg.Robots {
		c, err := chain.Assemble(keypad.Numeric(), keypad.Directional(), n)
		if err != nil {
			return err
		}
		opts := []chain.Option{chain.WithWorkers(cfg.Workers)}
		var cache *chain.Cache
		if cfg.SharedCache {
			cache = chain.NewCache()
			opts = append(opts, chain.WithCache(cache))
		} else {
			opts = append(opts, chain.WithPrivateCaches())
		}

		presses, err := chain.SolveAll(ctx, c, keys, opts...)
		if err != nil {
			return fmt.Errorf("robots=%d: %w", n, err)
		}

		total := new(big.Int)
		for i, cd := range codes {
			cx := new(big.Int).SetUint64(presses[i])
			cx.Mul(cx, new(big.Int).SetUint64(cd.Value()))
			total.Add(total, cx)
			if cfg.Verbose {
				logger.Printf("robots=%d code=%s presses=%s complexity=%s",
					n, cd, bigComma(presses[i]), humanize.BigComma(cx))
			}
		}
		if _, err := fmt.Fprintf(out, "robots=%d complexity=%s\n", n, humanize.BigComma(total)); err != nil {
			return err
		}

		if cfg.ShowPresses > 0 && n <= cfg.ShowPresses {
			if err := showPresses(out, c, codes, cache); err != nil {
				return err
			}
		}
		if cache == nil {
			continue
		}
		if cfg.Verbose {
			st := cache.Stats()
			logger.Printf("robots=%d cache entries=%s hits=%s misses=%s",
				n, humanize.Comma(int64(st.Entries)), bigComma(st.Hits), bigComma(st.Misses))
		}
		if cfg.DumpCache {
			if err := cache.Dump(logger.Writer()); err != nil {
				return err
			}
		}
	}
	return nil
}

// showPresses prints one optimal human press sequence per code.
func showPresses(out io.Writer, c *chain.Chain, codes []code.Code, cache *chain.Cache) error {
	for _, cd := range codes {
		p, err := chain.Presses(c, cd.Keys, cache)
		if err != nil {
			return fmt.Errorf("%s: %w", cd, err)
		}
		if _, err := fmt.Fprintf(out, "  %s: %s\n", cd, keypad.Route(p)); err != nil {
			return err
		}
	}
	return nil
}

func bigComma(n uint64) string { return humanize.BigComma(new(big.Int).SetUint64(n)) }
