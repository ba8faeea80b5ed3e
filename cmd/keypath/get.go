package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"keypath-kit/internal/document"
	"keypath-kit/keypath"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: get requires a file and a key path", cli.ErrUsage)
	}
	return runGet(cfg, cc.In, cc.Out, args[0], args[1])
}

func runGet(cfg *GetConfig, in io.Reader, out io.Writer, path, kp string) error {
	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return err
	}
	opts := cfg.keypathOpts(keypath.ThrowOnMissing(cfg.Strict))
	if cfg.Default != "" {
		def, err := parseValue(cfg.Default)
		if err != nil {
			return fmt.Errorf("%w: invalid default: %w", cli.ErrUsage, err)
		}
		opts = append(opts, keypath.WithDefault(def))
	}
	v, err := keypath.Get(d.root, kp, opts...)
	if err != nil {
		return err
	}
	return cfg.writeValue(out, v, cfg.outFormat(d))
}

// parseValue reads a command line value as YAML, so that 3 is an int and
// {a: 1} is an object. The empty string stays a string.
func parseValue(s string) (any, error) {
	if s == "" {
		return "", nil
	}
	return document.Decode([]byte(s), document.YAML)
}
