package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"keypath-kit/strutil"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		cfg.Split.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: split requires one string", cli.ErrUsage)
	}
	return runSplit(cfg, cc.Out, args[0])
}

func runSplit(cfg *SplitConfig, out io.Writer, s string) error {
	opts := cfg.strutilOpts()
	if cfg.Limit != 0 {
		opts = append(opts, strutil.Limit(cfg.Limit))
	}
	pieces, err := strutil.Split(cfg.Sep, s, opts...)
	if err != nil {
		return err
	}
	if cfg.Dump {
		dumpConfig.Fdump(out, pieces)
		return nil
	}
	_, err = io.WriteString(out, strings.Join(pieces, "\n")+"\n")
	return err
}

func join(cfg *JoinConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Join.Parse(cc, args)
	if err != nil {
		cfg.Join.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return runJoin(cfg, cc.Out, args)
}

func runJoin(cfg *JoinConfig, out io.Writer, pieces []string) error {
	s, err := strutil.Join(cfg.Sep, pieces, cfg.strutilOpts()...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, s)
	return err
}
