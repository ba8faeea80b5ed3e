package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/scott-cotton/cli"

	"keypath-kit/internal/document"
	"keypath-kit/keypath"
	"keypath-kit/strutil"
)

func keypathMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Dump, cfg.Diff, cfg.Patch) > 1 {
		return fmt.Errorf("%w: must specify at most one of -dump -diff -patch", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) fmtFunc(fp *document.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := document.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = f
		return f, nil
	})
}

func (cfg *MainConfig) escapeChar() string {
	if cfg.NoEscape {
		return ""
	}
	return cfg.Escape
}

// keypathOpts returns the engine options selected on the command line
// followed by extra.
func (cfg *MainConfig) keypathOpts(extra ...keypath.Option) []keypath.Option {
	opts := []keypath.Option{
		keypath.WithSeparator(cfg.Sep),
		keypath.WithEscapeChar(cfg.escapeChar()),
	}
	return append(opts, extra...)
}

func (cfg *MainConfig) strutilOpts() []strutil.Option {
	if esc := cfg.escapeChar(); esc != "" {
		return []strutil.Option{strutil.Escape(esc)}
	}
	return nil
}

func (cfg *MainConfig) logger() *slog.Logger {
	return newLogger(os.Stderr, cfg.Verbose)
}
