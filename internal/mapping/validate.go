package mapping

import (
	"fmt"
	"strings"

	"keypath-kit/internal/common"
	"keypath-kit/internal/diagnostic"
	"keypath-kit/keypath"
	"keypath-kit/wildcard"
)

// Validate checks a mapping definition without touching any data. Every
// problem is reported; errors make the file unusable, warnings flag entries
// that probably do not do what was meant.
func Validate(mf *MappingFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("mapping_is_nil", "mapping file is nil", "", "")
		return res
	}

	if mf.Version != CurrentVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported mapping version %q (expected %q)", mf.Version, CurrentVersion), "", "")
	}

	opts := mf.KeypathOptions()

	o, err := keypath.Resolve(opts...)
	if err != nil {
		res.AddError("invalid_options", err.Error(), "", "")
		return res
	}

	if len(mf.Map) == 0 && !mf.CopyAll {
		res.AddError("empty_map", "key path map must have at least one element", "", "")
		return res
	}

	if mf.CopyAll {
		res.AddInfo("copy_all", "every top-level entry of the input is copied before the map is applied", "", "")
	}

	seenInputs := map[string]string{}
	seenOutputs := map[string]string{}

	for i, e := range mf.Map {
		entry := entryName(i, e)

		if prev, ok := seenInputs[e.Input]; ok {
			res.AddWarning("duplicate_input",
				fmt.Sprintf("input key path %q is also mapped by %s; both are applied in order", e.Input, prev),
				entry, e.Input)
		} else {
			seenInputs[e.Input] = entry
		}

		if e.Outputs.IsEmpty() {
			res.AddError("missing_output", "entry has no output key path", entry, e.Input)
			continue
		}

		if mf.Wildcard {
			validateWildcardEntry(res, entry, e, opts)
		} else {
			validatePlainEntry(res, entry, e, o)
		}

		for _, out := range e.Outputs {
			if prev, ok := seenOutputs[out]; ok && prev != entry {
				res.AddWarning("shadowed_output",
					fmt.Sprintf("output key path %q is also written by %s; the later entry wins", out, prev),
					entry, out)

				continue
			}

			seenOutputs[out] = entry
		}
	}

	return res
}

func validatePlainEntry(res *diagnostic.Diagnostics, entry string, e EntryDef, o keypath.Options) {
	if _, err := keypath.Normalize(e.Input, o.KeySeparator, o.EscapeChar); err != nil {
		res.AddError("invalid_input_path", err.Error(), entry, e.Input)
	}

	for _, out := range e.Outputs {
		if _, err := keypath.Normalize(out, o.KeySeparator, o.EscapeChar); err != nil {
			res.AddError("invalid_output_path", err.Error(), entry, out)
		}
	}

	if strings.Contains(e.Input, wildcard.Marker) {
		res.Warnings = append(res.Warnings, diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        "possible_wildcard",
			Message:     fmt.Sprintf("input key path contains %q but wildcard mode is off", wildcard.Marker),
			Entry:       entry,
			Path:        e.Input,
			Suggestions: []string{"wildcard: true"},
		})
	}
}

func validateWildcardEntry(res *diagnostic.Diagnostics, entry string, e EntryDef, opts []keypath.Option) {
	if _, err := wildcard.CompilePair(e.Input, common.ToAny(e.Outputs), opts...); err != nil {
		res.AddError("invalid_pattern", err.Error(), entry, e.Input)
	}
}

func entryName(i int, e EntryDef) string {
	if e.Line > 0 {
		return fmt.Sprintf("map[%d] (line %d)", i, e.Line)
	}

	return fmt.Sprintf("map[%d]", i)
}
