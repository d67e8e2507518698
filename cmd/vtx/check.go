package main

import (
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	hadDiags := false
	for _, arg := range args {
		src, name, err := readArg(arg)
		if err != nil {
			return err
		}
		_, diags := cfg.pipeline().Parse(src)
		if cfg.printDiags(name, diags) {
			hadDiags = true
		}
	}
	if hadDiags {
		return cli.ExitCodeErr(1)
	}
	return nil
}
