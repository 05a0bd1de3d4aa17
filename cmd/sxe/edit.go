package main

import (
	"fmt"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/sexp-edit/debug"
	"github.com/signadot/sexp-edit/editor"
	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/term"
)

func edit(cfg *EditConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Edit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: edit takes at most one file", cli.ErrUsage)
	}
	p, err := cfg.loadPalette()
	if err != nil {
		return err
	}
	log, logOut, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return fmt.Errorf("could not open log: %w", err)
	}
	defer closeLog()
	// the screen belongs to the editor
	defer debug.SetOutput(debug.SetOutput(logOut))

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			log.Error("gops agent failed", "error", err)
		}
		defer agent.Close()
	}

	opts := []editor.Option{editor.WithLogger(log), editor.WithPalette(p)}
	var s *editor.Session
	if len(args) == 1 {
		s, err = editor.Open(args[0], opts...)
	} else {
		s, err = editor.New([]*ir.Node{}, opts...)
	}
	if err != nil {
		return err
	}
	if err := term.Main(s); err != nil {
		log.Error("session failed", "error", err)
		return err
	}
	log.Info("quit", "file", s.File(), "dirty", s.Dirty())
	return nil
}
