package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/sexp-edit/cursor"
	"github.com/signadot/sexp-edit/encode"
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/ir/ipath"
	"github.com/signadot/sexp-edit/libdiff"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var hl ipath.Path
	if cfg.Path != "" {
		hl, err = ipath.Parse(cfg.Path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	for _, file := range inputs(args) {
		forest, _, err := readForest(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		opts, err := cfg.encOpts(cc.Out, format.SExpFormat)
		if err != nil {
			return err
		}
		if hl != nil {
			p := hl.Clone()
			if _, err := cursor.Repair(&p, forest); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			opts = append(opts, encode.EncodeHighlight(p))
		}
		if err := encode.Encode(forest, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		if cfg.Write && file == "-" {
			return fmt.Errorf("%w: -w needs files", cli.ErrUsage)
		}
		if err := fmtFile(cfg, cc.In, cc.Out, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, in io.Reader, w io.Writer, file string) error {
	forest, orig, err := readForest(cfg.MainConfig, in, file)
	if err != nil {
		return err
	}
	f := cfg.inFormat(file)
	if !cfg.Write && !cfg.Diff {
		opts, err := cfg.encOpts(w, f)
		if err != nil {
			return err
		}
		return encode.Encode(forest, w, opts...)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(forest, buf, encode.EncodeFormat(f)); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	if cfg.Diff {
		if _, err := io.WriteString(w, libdiff.Unified(file, file, string(orig), buf.String())); err != nil {
			return err
		}
	}
	if cfg.Write && !bytes.Equal(orig, buf.Bytes()) {
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		forest, _, err := readForest(cfg.MainConfig, cc.In, file)
		if err != nil {
			return err
		}
		opts, err := cfg.encOpts(cc.Out, cfg.outFormat(format.SExpFormat))
		if err != nil {
			return err
		}
		if err := encode.Encode(forest, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}
