package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/scott-cotton/cli"

	"keypath-kit/internal/diagnostic"
	"keypath-kit/internal/mapping"
	"keypath-kit/overwrite"
)

func remap(cfg *RemapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Remap.Parse(cc, args)
	if err != nil {
		cfg.Remap.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	switch {
	case cfg.Check && len(args) != 1:
		return fmt.Errorf("%w: remap -check requires a mapping file", cli.ErrUsage)
	case !cfg.Check && len(args) != 2:
		return fmt.Errorf("%w: remap requires a mapping file and a file", cli.ErrUsage)
	}
	if cfg.Check {
		return runCheck(cfg, cc.Out, args[0])
	}
	return runRemap(cfg, cc.In, cc.Out, args[0], args[1])
}

func runCheck(cfg *RemapConfig, out io.Writer, mappingPath string) error {
	mf, err := mapping.LoadFile(mappingPath)
	if err != nil {
		return err
	}
	diags := mapping.Validate(mf)
	for _, d := range diags.All() {
		if _, err := fmt.Fprintln(out, d.String()); err != nil {
			return err
		}
	}
	return diags.Error()
}

func runRemap(cfg *RemapConfig, in io.Reader, out io.Writer, mappingPath, path string) error {
	log := cfg.logger()
	mf, err := mapping.LoadFile(mappingPath)
	if err != nil {
		return err
	}
	logDiagnostics(log, mapping.Validate(mf))

	t, err := mapping.BuildTransformer(mf, overwrite.NewRegistry(overwrite.WithLogger(log)))
	if err != nil {
		return err
	}

	d, err := getDocFile(cfg.MainConfig, in, path)
	if err != nil {
		return err
	}
	f := cfg.outFormat(d)
	before, err := cfg.snapshot(d.root, f)
	if err != nil {
		return err
	}
	result, err := t.Transform(d.root)
	if err != nil {
		return err
	}
	log.Debug("remapped", "mapping", mappingPath, "file", path, "entries", len(mf.Map))
	return cfg.writeDoc(out, before, result, f)
}

func logDiagnostics(log *slog.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		log.Warn(d.Message, "code", d.Code, "entry", d.Entry, "path", d.Path)
	}
	for _, d := range diags.Infos {
		log.Debug(d.Message, "code", d.Code)
	}
}
