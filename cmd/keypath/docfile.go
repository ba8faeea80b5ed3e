package main

import (
	"fmt"
	"io"
	"os"

	"keypath-kit/container"
	"keypath-kit/internal/document"
)

// docFile is a document loaded from a file or from stdin ("-").
type docFile struct {
	path   string
	format document.Format
	root   container.Container
}

func getDocFile(cfg *MainConfig, in io.Reader, path string) (*docFile, error) {
	f := cfg.InFormat
	if f == "" {
		if path == "-" {
			f = document.YAML
		} else {
			var err error
			if f, err = document.DetectFormat(path); err != nil {
				return nil, err
			}
		}
	}
	var r io.Reader
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		r = file
	} else {
		r = in
	}
	root, err := document.Load(r, f)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return &docFile{path: path, format: f, root: root}, nil
}

func (cfg *MainConfig) outFormat(d *docFile) document.Format {
	if cfg.OutFormat != "" {
		return cfg.OutFormat
	}
	return d.format
}

// save writes the document back to its file in its own format.
func (d *docFile) save() error {
	if d.path == "-" {
		return fmt.Errorf("cannot write back to stdin")
	}
	return document.WriteFile(d.path, d.root, d.format)
}
