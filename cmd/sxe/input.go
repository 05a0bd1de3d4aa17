package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp-edit/ir"
	"github.com/signadot/sexp-edit/parse"
)

// inputs returns the file arguments, standing for stdin ("-") when there
// are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readAll(in io.Reader, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return d, nil
}

func readForest(cfg *MainConfig, in io.Reader, file string) ([]*ir.Node, []byte, error) {
	d, err := readAll(in, file)
	if err != nil {
		return nil, nil, err
	}
	forest, err := parse.Parse(d, cfg.parseOpts(file)...)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return forest, d, nil
}
