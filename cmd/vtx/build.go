package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

func build(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		cfg.Build.Usage(cc, err)
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
		diags, err := cfg.pipeline().HTML(src, func(p []byte) error {
			_, err := cc.Out.Write(p)
			return err
		})
		if cfg.printDiags(name, diags) {
			hadDiags = true
		}
		if err != nil {
			return fmt.Errorf("error compiling %s: %w", name, err)
		}
	}
	if hadDiags {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func readArg(arg string) (src, name string, err error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
		name = "<stdin>"
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return "", "", fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
		name = arg
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return "", "", err
	}
	return string(b), name, nil
}
