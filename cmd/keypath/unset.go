package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"keypath-kit/keypath"
)

func unset(cfg *UnsetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Unset.Parse(cc, args)
	if err != nil {
		cfg.Unset.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: unset requires a file and a key path", cli.ErrUsage)
	}
	return runUnset(cfg, cc.In, cc.Out, args[0], args[1])
}

func runUnset(cfg *UnsetConfig, in io.Reader, out io.Writer, path, kp string) error {
	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return err
	}
	f := cfg.outFormat(d)
	before, err := cfg.snapshot(d.root, f)
	if err != nil {
		return err
	}
	if err := keypath.Unset(d.root, kp, cfg.keypathOpts(keypath.ThrowOnMissing(cfg.Strict))...); err != nil {
		return err
	}
	cfg.logger().Debug("unset", "file", path, "keypath", kp)
	if cfg.InPlace {
		return d.save()
	}
	return cfg.writeDoc(out, before, d.root, f)
}
