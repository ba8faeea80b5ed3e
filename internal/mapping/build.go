package mapping

import (
	"keypath-kit/overwrite"
)

// Strategy returns the registry name and creation arguments of the overwriter
// described by mf.
func Strategy(mf *MappingFile) (string, []any) {
	name := overwrite.PathMapName
	if mf.Wildcard {
		name = overwrite.WildcardName
	}

	args := []any{mf.PathMap()}
	for _, opt := range mf.KeypathOptions() {
		args = append(args, opt)
	}

	if !mf.CopyAll {
		return name, args
	}

	if len(mf.Map) == 0 {
		return overwrite.AllKeysName, nil
	}

	return overwrite.CompositeName, []any{
		[]any{overwrite.AllKeysName},
		append([]any{name}, args...),
	}
}

// Build validates mf and creates its overwriter through r.
func Build(mf *MappingFile, r *overwrite.Registry) (overwrite.Overwriter, error) {
	if diags := Validate(mf); diags.HasErrors() {
		return nil, diags.Error()
	}

	name, args := Strategy(mf)

	return r.Overwriter(name, args...)
}

// BuildTransformer validates mf and creates a transformer producing a new
// ordered map through r.
func BuildTransformer(mf *MappingFile, r *overwrite.Registry) (overwrite.Transformer, error) {
	if diags := Validate(mf); diags.HasErrors() {
		return nil, diags.Error()
	}

	name, args := Strategy(mf)

	return r.Transformer(name, args...)
}
