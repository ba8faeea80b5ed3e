package overwrite

import (
	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

// Factory creates the output container of a transformation.
type Factory interface {
	Create() container.Container
}

// FactoryFunc adapts a function to Factory.
type FactoryFunc func() container.Container

// Create implements Factory.
func (f FactoryFunc) Create() container.Container {
	return f()
}

// PrototypeFactory creates outputs by cloning a prototype.
type PrototypeFactory struct {
	proto container.Container
}

// NewPrototypeFactory returns a factory cloning proto, which must implement
// container.Cloner.
func NewPrototypeFactory(proto container.Container) (*PrototypeFactory, error) {
	if _, ok := proto.(container.Cloner); !ok {
		return nil, kperr.Validation("factory", "prototype must be cloneable, %s given", kperr.TypeName(proto))
	}

	return &PrototypeFactory{proto: proto}, nil
}

// Create implements Factory.
func (f *PrototypeFactory) Create() container.Container {
	return container.Clone(f.proto)
}

// Transformer produces a new container from an input.
type Transformer interface {
	Transform(input any, opts ...keypath.Option) (container.Container, error)
}

// CreateAndOverwrite creates an output with a factory and fills it with an
// overwriter.
type CreateAndOverwrite struct {
	factory    Factory
	overwriter Overwriter
}

// NewCreateAndOverwrite returns a CreateAndOverwrite transformer.
func NewCreateAndOverwrite(factory Factory, overwriter Overwriter) *CreateAndOverwrite {
	return &CreateAndOverwrite{factory: factory, overwriter: overwriter}
}

// Transform implements Transformer.
func (t *CreateAndOverwrite) Transform(input any, opts ...keypath.Option) (container.Container, error) {
	out := t.factory.Create()

	if err := t.overwriter.Overwrite(input, out, opts...); err != nil {
		return nil, err
	}

	return out, nil
}
