package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"keypath-kit/container"
	"keypath-kit/internal/document"
)

var dumpConfig = spew.ConfigState{Indent: "  ", SortKeys: true, DisablePointerAddresses: true}

// snapshot holds the encodings of a document taken before it is changed.
type snapshot struct {
	text []byte
	json []byte
}

func (cfg *MainConfig) snapshot(root container.Container, f document.Format) (*snapshot, error) {
	s := &snapshot{}
	var err error
	switch {
	case cfg.Diff:
		s.text, err = document.Encode(root, f)
	case cfg.Patch:
		s.json, err = document.Encode(root, document.JSON)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// writeValue prints a single element. Elements that cannot be the root of a
// TOML document are printed as YAML.
func (cfg *MainConfig) writeValue(w io.Writer, v any, f document.Format) error {
	if cfg.Dump {
		dumpConfig.Fdump(w, v)
		return nil
	}
	if f == document.TOML {
		if _, ok := container.ToNative(v).(map[string]any); !ok {
			f = document.YAML
		}
	}
	return document.Write(w, v, f)
}

// writeDoc prints a changed document, or its difference to before when
// -diff or -patch is given.
func (cfg *MainConfig) writeDoc(w io.Writer, before *snapshot, after container.Container, f document.Format) error {
	switch {
	case cfg.Dump:
		dumpConfig.Fdump(w, after)
		return nil
	case cfg.Diff:
		text, err := document.Encode(after, f)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, lineDiff(string(before.text), string(text), useColor(w)))
		return err
	case cfg.Patch:
		text, err := document.Encode(after, document.JSON)
		if err != nil {
			return err
		}
		patch, err := jsonpatch.CreateMergePatch(before.json, text)
		if err != nil {
			return fmt.Errorf("error creating merge patch: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", patch)
		return err
	}
	return document.Write(w, after, f)
}

func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// lineDiff renders a unified-style line diff of from and to.
func lineDiff(from, to string, colored bool) string {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	del, ins := fmt.Sprint, fmt.Sprint
	if colored {
		del = color.New(color.FgRed).Sprint
		ins = color.New(color.FgGreen).Sprint
	}

	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix, paint := "  ", fmt.Sprint
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, paint = "- ", del
		case diffpatch.DiffInsert:
			prefix, paint = "+ ", ins
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			buf.WriteString(paint(prefix + strings.TrimSuffix(line, "\n")))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
