package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Sep: ".", Escape: `\`}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json, yaml/yml, toml (default from extension)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		},
		{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json, yaml/yml, toml (default input format)",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "keypath").
		WithSynopsis("keypath [opts] command [opts]").
		WithDescription("keypath reads and rewrites nested documents addressed by key paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keypathMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			HasCommand(cfg),
			SetCommand(cfg),
			UnsetCommand(cfg),
			ExpandCommand(cfg),
			RemapCommand(cfg),
			SplitCommand(cfg),
			JoinCommand(cfg))
}

func structOpts(cfg any) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return opts
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get [opts] <file> <keypath>").
		WithDescription("print the element at a key path").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func HasCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HasConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Has, "has").
		WithSynopsis("has <file> <keypath>").
		WithDescription("report whether a key path exists, exiting 1 when it does not").
		WithRun(func(cc *cli.Context, args []string) error {
			return has(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set [opts] <file> <keypath> <yaml value>").
		WithDescription("set the element at a key path, creating missing levels").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func UnsetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnsetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unset, "unset").
		WithAliases("u", "rm").
		WithSynopsis("unset [opts] <file> <keypath>").
		WithDescription("remove the element at a key path").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return unset(cfg, cc, args)
		})
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Expand, "expand").
		WithAliases("x").
		WithSynopsis("expand [opts] <file> <pattern>").
		WithDescription("list the concrete key paths matched by a wildcard pattern such as users.%i%.id").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return expand(cfg, cc, args)
		})
}

func RemapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RemapConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Remap, "remap").
		WithAliases("r").
		WithSynopsis("remap [opts] <mapping file> <file>").
		WithDescription("build a new document from a file with a mapping file").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return remap(cfg, cc, args)
		})
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Split, "split").
		WithSynopsis("split [opts] <string>").
		WithDescription("split a string on the separator, honouring the escape character").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
}

func JoinCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JoinConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Join, "join").
		WithSynopsis("join <piece>...").
		WithDescription("join pieces with the separator, escaping as needed").
		WithRun(func(cc *cli.Context, args []string) error {
			return join(cfg, cc, args)
		})
}
