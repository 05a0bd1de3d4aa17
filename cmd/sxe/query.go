package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sexp-edit/cursor"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/query"
)

func pathCmd(cfg *PathConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Path.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: expected <path> [file]", cli.ErrUsage)
	}
	p, err := ipath.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	forest, _, err := readForest(cfg.MainConfig, cc.In, inputs(args[1:])[0])
	if err != nil {
		return err
	}
	m, err := cursor.Repair(&p, forest)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s %s\n", p, m)
	return err
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: expected <expr> [files]", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	files := inputs(args[1:])
	for _, file := range files {
		forest, _, err := readForest(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		ps, err := q.Find(forest)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		prefix := ""
		if len(files) > 1 {
			prefix = file + ":"
		}
		if cfg.Count {
			fmt.Fprintf(cc.Out, "%s%d\n", prefix, len(ps))
			continue
		}
		for _, p := range ps {
			fmt.Fprintf(cc.Out, "%s%s\n", prefix, p)
		}
	}
	return nil
}
