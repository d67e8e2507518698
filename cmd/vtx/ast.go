package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/adrian-kriegel/vtx/doc"
)

func ast(cfg *AstConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Ast.Parse(cc, args)
	if err != nil {
		cfg.Ast.Usage(cc, err)
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
		root, diags := cfg.pipeline().Parse(src)
		if cfg.printDiags(name, diags) {
			hadDiags = true
		}
		dump(cc, root, 0)
	}
	if hadDiags {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func dump(cc *cli.Context, n *doc.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	where := "inserted"
	if n.Pos != nil {
		where = n.Pos.String()
	}
	switch n.Type {
	case doc.EnvType:
		name := n.Env.TagName()
		if name == "" {
			name = map[doc.HeaderKind]string{
				doc.ModuleHeader:   "module",
				doc.FragmentHeader: "fragment",
			}[n.Env.Kind]
		}
		fmt.Fprintf(cc.Out, "%s%s <%s> %s\n", indent, n.Type, name, where)
		for _, child := range n.Env.Children {
			dump(cc, child, depth+1)
		}
	default:
		fmt.Fprintf(cc.Out, "%s%s %q %s\n", indent, n.Type, n.Text, where)
	}
}
