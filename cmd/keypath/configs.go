package main

import (
	"github.com/scott-cotton/cli"

	"keypath-kit/internal/document"
)

type MainConfig struct {
	Sep      string `cli:"name=sep aliases=s desc='key separator'"`
	Escape   string `cli:"name=escape aliases=e desc='escape character'"`
	NoEscape bool   `cli:"name=noescape desc='disable escaping in key paths'"`
	Verbose  bool   `cli:"name=v aliases=verbose desc='debug logging'"`

	Dump  bool `cli:"name=dump desc='dump results with go-spew'"`
	Diff  bool `cli:"name=diff desc='print a line diff of the document instead of the result'"`
	Patch bool `cli:"name=patch desc='print a JSON merge patch of the document instead of the result'"`

	Out      string
	CloseOut func() error

	InFormat  document.Format
	OutFormat document.Format

	Main *cli.Command
}

type GetConfig struct {
	*MainConfig
	Default string `cli:"name=default aliases=d desc='yaml value returned for absent elements'"`
	Strict  bool   `cli:"name=strict desc='fail on absent elements'"`

	Get *cli.Command
}

type HasConfig struct {
	*MainConfig

	Has *cli.Command
}

type SetConfig struct {
	*MainConfig
	Strict  bool `cli:"name=strict desc='fail instead of replacing scalars in the way'"`
	InPlace bool `cli:"name=i desc='write the result back to the file'"`

	Set *cli.Command
}

type UnsetConfig struct {
	*MainConfig
	Strict  bool `cli:"name=strict desc='fail on absent elements'"`
	InPlace bool `cli:"name=i desc='write the result back to the file'"`

	Unset *cli.Command
}

type ExpandConfig struct {
	*MainConfig
	Omit bool `cli:"name=omit desc='skip branches that do not exist'"`

	Expand *cli.Command
}

type RemapConfig struct {
	*MainConfig
	Check bool `cli:"name=check desc='only validate the mapping file'"`

	Remap *cli.Command
}

type SplitConfig struct {
	*MainConfig
	Limit int `cli:"name=limit aliases=n desc='maximum number of pieces, 0 for no limit'"`

	Split *cli.Command
}

type JoinConfig struct {
	*MainConfig

	Join *cli.Command
}
