// Copyright (c) 2026 The coinuri developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/coinkit/coinuri"
	"github.com/coinkit/coinuri/coins"
	"github.com/coinkit/coinuri/coinutil"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Build   bool   `short:"b" long:"build" description:"build a URI from the address/amount/label/message options instead of parsing arguments"`
	Address string `short:"A" long:"address" description:"destination address (build mode)"`
	Amount  string `short:"a" long:"amount" description:"amount in whole coins (build mode)"`
	Label   string `short:"l" long:"label" description:"label (build mode)"`
	Message string `short:"m" long:"message" description:"message (build mode)"`
	Coin    string `short:"c" long:"coin" description:"ticker symbol to restrict parsing or address decoding to (e.g. DCR)"`
	Debug   bool   `short:"d" long:"debug" description:"enable debug logging to stderr"`
}

func main() {
	var cfg config
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] uri..."
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.Debug {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("URI")
		logger.SetLevel(slog.LevelDebug)
		coinuri.UseLogger(logger)
	}

	var coin *coins.CoinType
	if cfg.Coin != "" {
		coin = coins.BySymbol(cfg.Coin)
		if coin == nil {
			fatalf("unknown coin symbol %q\n", cfg.Coin)
		}
	}

	if cfg.Build {
		buildURI(&cfg, coin)
		return
	}

	if len(args) == 0 {
		usage(parser)
	}
	for _, arg := range args {
		parseURI(coin, arg)
	}
}

// buildURI decodes the address from the options and prints the canonical
// URI for them.
func buildURI(cfg *config, coin *coins.CoinType) {
	if cfg.Address == "" {
		fatalf("build mode requires an address\n")
	}

	var addr coinutil.Address
	if coin != nil {
		var err error
		addr, err = coinutil.DecodeAddress(cfg.Address, coin)
		if err != nil {
			fatalf("bad address for %s: %v\n", coin.Name, err)
		}
	} else {
		for _, candidate := range coins.Registered() {
			decoded, err := coinutil.DecodeAddress(cfg.Address, candidate)
			if err != nil {
				continue
			}
			addr = decoded
			break
		}
		if addr == nil {
			fatalf("address %q is not valid for any registered coin\n",
				cfg.Address)
		}
	}

	var amount *coinutil.Amount
	if cfg.Amount != "" {
		parsed, err := coinutil.ParseAmount(addr.Coin(), cfg.Amount)
		if err != nil {
			fatalf("bad amount %q: %v\n", cfg.Amount, err)
		}
		amount = &parsed
	}

	uri, err := coinuri.Build(addr, amount, cfg.Label, cfg.Message)
	if err != nil {
		fatalf("unable to build URI: %v\n", err)
	}
	fmt.Println(uri)
}

// parseURI parses a single URI argument and prints its typed fields.
func parseURI(coin *coins.CoinType, arg string) {
	uri, err := coinuri.Parse(coin, arg)
	if err != nil {
		fatalf("%v\n", err)
	}

	if uri.Coin() != nil {
		fmt.Printf("%-10s %s\n", "coin", uri.Coin().Name)
	}
	for _, name := range uri.FieldNames() {
		value, _ := uri.Get(name)
		switch v := value.(type) {
		case coinutil.Amount:
			fmt.Printf("%-10s %s\n", name,
				coinutil.FormatAmount(uri.Coin(), v))
		default:
			fmt.Printf("%-10s %v\n", name, v)
		}
	}
}
