package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: sexp/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: sexp/s, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sxe").
		WithSynopsis("sxe [opts] command [opts]").
		WithDescription("sxe is a structural editor for s-expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sxeMain(cfg, cc, args)
		}).
		WithSubs(
			EditCommand(cfg),
			ViewCommand(cfg),
			FmtCommand(cfg),
			ConvertCommand(cfg),
			PathCommand(cfg),
			FindCommand(cfg))
}

func EditCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EditConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Edit, "edit").
		WithAliases("e", "ed").
		WithSynopsis("edit [-log file] [-gops] [file]").
		WithDescription(editDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return edit(cfg, cc, args)
		})
}

const editDescription = `edit a document on the terminal.

If file does not exist, edit starts on an empty document which is written
to file by :w.

Structural mode

  h l        previous and next sibling
  k j        parent and first child
  i n s (    insert an identifier, number, string or list before the cursor
  a          add an identifier as the last child (wrapping an atom)
  x          delete the node at the cursor
  :          command line
  /          command line with "find "

Edit mode (inside an atom)

  left right move within the atom
  backspace  delete before the cursor
  esc        back to the enclosing node

Commands

  :w [file]  write      :q  quit       :wq  write and quit
  :find expr search     :n  next match

Append ! to force writes over existing files and quits of modified
documents.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-p path] [files]").
		WithDescription("view documents laid out and in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("fmt [-w] [-d] [files]").
		WithDescription("reformat documents in their own format").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtCmd(cfg, cc, args)
		})
}

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithSynopsis("convert [-I fmt] [-O fmt] [files]").
		WithDescription("convert documents between s-expressions and the json and yaml IR").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}

func PathCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PathConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Path, "path").
		WithAliases("p").
		WithSynopsis("path <path> [file]").
		WithDescription("repair a cursor path against a document and print it with its mode").
		WithRun(func(cc *cli.Context, args []string) error {
			return pathCmd(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithOpts(opts...).
		WithSynopsis("find [-c] <expr> [files]").
		WithDescription(findDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find prints the path of every node matching expr.

expr is a boolean expression over

  kind   "Ident", "Number", "String" or "List"
  text   the atom text, "" for lists
  len    the number of children or characters
  depth  the nesting depth, 0 at the top level
  index  the index among its siblings
  path   the path, as in [0][2]

and the functions head(), the text of a list's first atom, and whereami(),
the path.

  sxe find 'kind == "List" && head() == "define"' prog.sexp`
