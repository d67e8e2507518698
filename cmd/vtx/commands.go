package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
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
			Name:        "passes",
			Description: "max rewrite passes",
			Type:        cli.NamedFuncOpt(cfg.passesOpt, "(count)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "vtx").
		WithSynopsis("vtx [opts] command [opts]").
		WithDescription("vtx compiles vtx markup modules to HTML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return vtxMain(cfg, cc, args)
		}).
		WithSubs(
			BuildCommand(cfg),
			CheckCommand(cfg),
			AstCommand(cfg))
}

func vtxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func BuildCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BuildConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("build").
		WithAliases("b").
		WithSynopsis("build [files]").
		WithDescription("compile vtx modules to HTML").
		WithRun(func(cc *cli.Context, args []string) error {
			return build(cfg, cc, args)
		})
	cfg.Build = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse vtx modules and report diagnostics").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func AstCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AstConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("ast").
		WithSynopsis("ast [files]").
		WithDescription("print the parse tree of vtx modules").
		WithRun(func(cc *cli.Context, args []string) error {
			return ast(cfg, cc, args)
		})
	cfg.Ast = cmd
	return cmd
}
