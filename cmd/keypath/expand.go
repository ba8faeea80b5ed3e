package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"keypath-kit/keypath"
	"keypath-kit/wildcard"
)

func expand(cfg *ExpandConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Expand.Parse(cc, args)
	if err != nil {
		cfg.Expand.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: expand requires a file and a pattern", cli.ErrUsage)
	}
	return runExpand(cfg, cc.In, cc.Out, args[0], args[1])
}

func runExpand(cfg *ExpandConfig, in io.Reader, out io.Writer, path, pattern string) error {
	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return err
	}
	opts := cfg.keypathOpts(keypath.OmitNonExisting(cfg.Omit))
	p, err := wildcard.CompileInput(pattern, opts...)
	if err != nil {
		return err
	}
	paths, err := wildcard.Expand(d.root, p, opts...)
	if err != nil {
		return err
	}
	if cfg.Dump {
		dumpConfig.Fdump(out, paths)
		return nil
	}
	for _, kp := range paths {
		s, err := kp.Join(cfg.Sep, cfg.escapeChar())
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out, s); err != nil {
			return err
		}
	}
	return nil
}
