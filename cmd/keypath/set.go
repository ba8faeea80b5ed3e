package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"keypath-kit/keypath"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a file, a key path and a value", cli.ErrUsage)
	}
	return runSet(cfg, cc.In, cc.Out, args[0], args[1], args[2])
}

func runSet(cfg *SetConfig, in io.Reader, out io.Writer, path, kp, value string) error {
	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return err
	}
	v, err := parseValue(value)
	if err != nil {
		return fmt.Errorf("%w: invalid value: %w", cli.ErrUsage, err)
	}
	f := cfg.outFormat(d)
	before, err := cfg.snapshot(d.root, f)
	if err != nil {
		return err
	}
	if err := keypath.Set(d.root, kp, v, cfg.keypathOpts(keypath.ThrowOnCollision(cfg.Strict))...); err != nil {
		return err
	}
	cfg.logger().Debug("set", "file", path, "keypath", kp)
	if cfg.InPlace {
		return d.save()
	}
	return cfg.writeDoc(out, before, d.root, f)
}
