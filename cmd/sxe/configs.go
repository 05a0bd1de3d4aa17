package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/sexp-edit/encode"
	"github.com/signadot/sexp-edit/format"
	"github.com/signadot/sexp-edit/parse"
	"github.com/signadot/sexp-edit/theme"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool   `cli:"name=color desc='encode with color'"`
	Theme string `cli:"name=theme desc='yaml theme file'"`

	S bool `cli:"name=s aliases=sexp desc='do i/o in s-expressions'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	palette *theme.Palette

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat returns the format selected by -s, -j or -y.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.S:
		return format.SExpFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.SExpFormat, false
}

// inFormat returns the format in which to read file.  Without a flag the
// file suffix decides.
func (cfg *MainConfig) inFormat(file string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.FromSuffix(file)
}

func (cfg *MainConfig) parseOpts(file string) []parse.ParseOption {
	return []parse.ParseOption{parse.ParseFormat(cfg.inFormat(file))}
}

// outFormat returns the output format, falling back to def.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return def
}

func (cfg *MainConfig) loadPalette() (*theme.Palette, error) {
	if cfg.palette != nil {
		return cfg.palette, nil
	}
	if cfg.Theme == "" {
		cfg.palette = theme.DefaultPalette()
		return cfg.palette, nil
	}
	f, err := os.Open(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("could not open theme %q: %w", cfg.Theme, err)
	}
	defer f.Close()
	p, err := theme.Load(f)
	if err != nil {
		return nil, fmt.Errorf("theme %s: %w", cfg.Theme, err)
	}
	cfg.palette = p
	return p, nil
}

func (cfg *MainConfig) encOpts(w io.Writer, f format.Format) ([]encode.EncodeOption, error) {
	p, err := cfg.loadPalette()
	if err != nil {
		return nil, err
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeTheme(p),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res, nil
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res, nil
	}
	file, ok := w.(*os.File)
	if !ok {
		return res, nil
	}
	if isatty.IsTerminal(file.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res, nil
}

type EditConfig struct {
	*MainConfig
	Log  string `cli:"name=log desc='write session log and debug output to file'"`
	Gops bool   `cli:"name=gops desc='start a gops agent'"`

	Edit *cli.Command
}

type ViewConfig struct {
	*MainConfig
	Path string `cli:"name=p aliases=path desc='highlight the cursor at path'"`

	View *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	Diff  bool `cli:"name=d desc='print a diff instead of the result'"`

	Fmt *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type PathConfig struct {
	*MainConfig

	Path *cli.Command
}

type FindConfig struct {
	*MainConfig
	Count bool `cli:"name=c aliases=count desc='print only the number of matches'"`

	Find *cli.Command
}
