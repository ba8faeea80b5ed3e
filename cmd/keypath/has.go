package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"keypath-kit/keypath"
)

func has(cfg *HasConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Has.Parse(cc, args)
	if err != nil {
		cfg.Has.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: has requires a file and a key path", cli.ErrUsage)
	}
	ok, err := runHas(cfg, cc.In, cc.Out, args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func runHas(cfg *HasConfig, in io.Reader, out io.Writer, path, kp string) (bool, error) {
	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return false, err
	}
	ok, err := keypath.Has(d.root, kp, cfg.keypathOpts()...)
	if err != nil {
		return false, err
	}
	_, err = fmt.Fprintln(out, ok)
	return ok, err
}
