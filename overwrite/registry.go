package overwrite

import (
	"log/slog"
	"slices"

	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Builtin strategy names.
const (
	AllKeysName    = "allKeys"
	PairsName      = "keyPathPairs"
	PathMapName    = "keyPathMap"
	WildcardName   = "wildcard"
	CompositeName  = "composite"
	registryOpName = "registry"
)

// Creator builds an overwriter from creation arguments.
type Creator func(r *Registry, args ...any) (Overwriter, error)

// TransformerCreator builds a transformer from creation arguments.
type TransformerCreator func(r *Registry, args ...any) (Transformer, error)

// Registry maps strategy names to creators.
//
// Builtin creators take these arguments:
//   - allKeys: none
//   - keyPathPairs: []PathPair, then keypath.Option values
//   - keyPathMap, wildcard: *keypath.PathMap, then keypath.Option values
//   - composite: one []any per overwriter, holding its name and arguments
type Registry struct {
	overwriters  map[string]Creator
	transformers map[string]TransformerCreator
	logger       *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for Debug traces.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry creates a registry holding the builtin strategies.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		overwriters: map[string]Creator{
			AllKeysName:   createAllKeys,
			PairsName:     createPairs,
			PathMapName:   createPathMap,
			WildcardName:  createWildcard,
			CompositeName: createComposite,
		},
		transformers: make(map[string]TransformerCreator),
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register adds an overwriter creator. Names are unique.
func (r *Registry) Register(name string, c Creator) error {
	if _, exists := r.overwriters[name]; exists {
		return kperr.Validation(registryOpName, "overwriter creator '%s' is already registered", name)
	}

	r.overwriters[name] = c
	r.logger.Debug("registered overwriter", "name", name)

	return nil
}

// RegisterTransformer adds a transformer creator. Names are unique.
func (r *Registry) RegisterTransformer(name string, c TransformerCreator) error {
	if _, exists := r.transformers[name]; exists {
		return kperr.Validation(registryOpName, "transformer creator '%s' is already registered", name)
	}

	r.transformers[name] = c
	r.logger.Debug("registered transformer", "name", name)

	return nil
}

// Has returns true if an overwriter or transformer creator named name exists.
func (r *Registry) Has(name string) bool {
	_, ow := r.overwriters[name]
	_, tr := r.transformers[name]

	return ow || tr
}

// Names returns the overwriter creator names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.overwriters))
	for name := range r.overwriters {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Overwriter creates the overwriter registered under name.
func (r *Registry) Overwriter(name string, args ...any) (Overwriter, error) {
	create, ok := r.overwriters[name]
	if !ok {
		return nil, kperr.Validation(registryOpName, "creator for overwriter '%s' does not exist", name)
	}

	ow, err := create(r, args...)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("created overwriter", "name", name, "args", len(args))

	return ow, nil
}

// Transformer creates the transformer registered under name. Without one, it
// wraps the overwriter of that name in a CreateAndOverwrite over an empty Map.
func (r *Registry) Transformer(name string, args ...any) (Transformer, error) {
	if create, ok := r.transformers[name]; ok {
		return create(r, args...)
	}

	ow, err := r.Overwriter(name, args...)
	if err != nil {
		return nil, err
	}

	return NewCreateAndOverwrite(FactoryFunc(emptyMap), ow), nil
}

// Overwrite creates the overwriter registered under name and runs it once.
func (r *Registry) Overwrite(input, output any, name string, args ...any) error {
	ow, err := r.Overwriter(name, args...)
	if err != nil {
		return err
	}

	r.logger.Debug("overwrite", "name", name)

	return ow.Overwrite(input, output)
}

// Transform creates the transformer registered under name and runs it once.
func (r *Registry) Transform(input any, name string, args ...any) (container.Container, error) {
	t, err := r.Transformer(name, args...)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("transform", "name", name)

	return t.Transform(input)
}

func emptyMap() container.Container {
	return container.NewMap()
}

func createAllKeys(_ *Registry, args ...any) (Overwriter, error) {
	if len(args) > 0 {
		return nil, kperr.Validation(registryOpName, "%s takes no arguments, %d given", AllKeysName, len(args))
	}

	return NewAllKeys(), nil
}

func createPairs(_ *Registry, args ...any) (Overwriter, error) {
	if len(args) == 0 {
		return nil, kperr.Validation(registryOpName, "%s needs a list of key path pairs", PairsName)
	}

	pairs, ok := args[0].([]PathPair)
	if !ok {
		return nil, kperr.Validation(registryOpName,
			"%s needs a list of key path pairs, %s given", PairsName, kperr.TypeName(args[0]))
	}

	opts, err := options(PairsName, args[1:])
	if err != nil {
		return nil, err
	}

	return NewPairs(pairs, opts...)
}

func createPathMap(_ *Registry, args ...any) (Overwriter, error) {
	m, opts, err := pathMapArgs(PathMapName, args)
	if err != nil {
		return nil, err
	}

	return NewPathMap(m, opts...)
}

func createWildcard(_ *Registry, args ...any) (Overwriter, error) {
	m, opts, err := pathMapArgs(WildcardName, args)
	if err != nil {
		return nil, err
	}

	return NewWildcard(m, opts...)
}

func createComposite(r *Registry, args ...any) (Overwriter, error) {
	overwriters := make([]Overwriter, 0, len(args))

	for i, arg := range args {
		def, ok := arg.([]any)
		if !ok || len(def) == 0 {
			return nil, kperr.Validation(registryOpName,
				"%s argument %d must be a list holding an overwriter name and its arguments", CompositeName, i)
		}

		name, ok := def[0].(string)
		if !ok {
			return nil, kperr.Validation(registryOpName,
				"%s argument %d must start with an overwriter name, %s given", CompositeName, i, kperr.TypeName(def[0]))
		}

		ow, err := r.Overwriter(name, def[1:]...)
		if err != nil {
			return nil, err
		}

		overwriters = append(overwriters, ow)
	}

	return NewComposite(overwriters...)
}

func pathMapArgs(name string, args []any) (*keypath.PathMap, []keypath.Option, error) {
	if len(args) == 0 {
		return nil, nil, kperr.Validation(registryOpName, "%s needs a key path map", name)
	}

	m, ok := args[0].(*keypath.PathMap)
	if !ok {
		return nil, nil, kperr.Validation(registryOpName,
			"%s needs a key path map, %s given", name, kperr.TypeName(args[0]))
	}

	opts, err := options(name, args[1:])
	if err != nil {
		return nil, nil, err
	}

	return m, opts, nil
}

func options(name string, args []any) ([]keypath.Option, error) {
	opts := make([]keypath.Option, 0, len(args))

	for i, arg := range args {
		switch v := arg.(type) {
		case keypath.Option:
			opts = append(opts, v)
		case keypath.Options:
			opts = append(opts, keypath.WithOptions(v))
		default:
			return nil, kperr.Validation(registryOpName,
				"%s argument %d must be an option, %s given", name, i+1, kperr.TypeName(arg))
		}
	}

	return opts, nil
}
