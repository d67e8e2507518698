package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/adrian-kriegel/vtx"
	"github.com/adrian-kriegel/vtx/token"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored diagnostics'"`

	MaxPasses int
	Out       string
	CloseOut  func() error

	Main *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Build *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type AstConfig struct {
	*MainConfig

	Ast *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) passesOpt(_ *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n < 0 {
		return nil, fmt.Errorf("%w: invalid pass limit %q", cli.ErrUsage, a)
	}
	cfg.MaxPasses = n
	return n, nil
}

func (cfg *MainConfig) pipeline() *vtx.Pipeline {
	p := vtx.New()
	if cfg.MaxPasses > 0 {
		p.MaxPasses = cfg.MaxPasses
	}
	return p
}

// printDiags reports recoverable syntax problems on stderr and says
// whether there were any. Output is colored on terminals or when -color
// is given.
func (cfg *MainConfig) printDiags(name string, diags []token.Diag) bool {
	red := fmt.Sprint
	if cfg.Color || isatty.IsTerminal(os.Stderr.Fd()) {
		red = color.New(color.FgRed).Sprint
	}
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s %s: %s: %v\n", red("error:"), name, d.Pos, d.Err)
	}
	return len(diags) > 0
}
