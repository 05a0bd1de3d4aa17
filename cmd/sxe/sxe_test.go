package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sexp-edit/format"
)

func TestFmtFile(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		in       string
		want     string
		wantDiff []string
	}{
		{
			name:     "relayout",
			file:     "x.sexp",
			in:       "(a b c)\n",
			want:     "(a\n    b\n    c)\n",
			wantDiff: []string{"--- ", "-(a b c)", "+(a", "+    b", "+    c)"},
		},
		{
			name: "already formatted",
			file: "y.sexp",
			in:   "(a b)\n",
			want: "(a b)\n",
		},
		{
			name:     "comments dropped",
			file:     "z.sexp",
			in:       "; note\n(f x)\n",
			want:     "(f x)\n",
			wantDiff: []string{"-; note"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(file, []byte(tt.in), 0644); err != nil {
				t.Fatal(err)
			}
			cfg := &FmtConfig{MainConfig: &MainConfig{}, Write: true, Diff: true}
			out := bytes.NewBuffer(nil)
			if err := fmtFile(cfg, nil, out, file); err != nil {
				t.Fatal(err)
			}
			got, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(got)); diff != "" {
				t.Errorf("file (-want +got):\n%s", diff)
			}
			if len(tt.wantDiff) == 0 && out.Len() != 0 {
				t.Errorf("unexpected diff:\n%s", out.String())
			}
			for _, l := range tt.wantDiff {
				if !strings.Contains(out.String(), l) {
					t.Errorf("diff has no %q:\n%s", l, out.String())
				}
			}
		})
	}
}

func TestFmtStdin(t *testing.T) {
	cfg := &FmtConfig{MainConfig: &MainConfig{}, Diff: true}
	out := bytes.NewBuffer(nil)
	if err := fmtFile(cfg, strings.NewReader("(a b c)"), out, "-"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "+    c)") {
		t.Errorf("got %q", out.String())
	}
}

func TestFormats(t *testing.T) {
	j, y := format.JSONFormat, format.YAMLFormat
	tests := []struct {
		name    string
		cfg     *MainConfig
		file    string
		wantIn  format.Format
		wantOut format.Format
	}{
		{
			name:    "suffix",
			cfg:     &MainConfig{},
			file:    "a.json",
			wantIn:  format.JSONFormat,
			wantOut: format.SExpFormat,
		},
		{
			name:    "flag",
			cfg:     &MainConfig{Y: true},
			file:    "a.json",
			wantIn:  format.YAMLFormat,
			wantOut: format.YAMLFormat,
		},
		{
			name:    "explicit",
			cfg:     &MainConfig{J: true, InFormat: &y, OutFormat: &j},
			file:    "a.sexp",
			wantIn:  format.YAMLFormat,
			wantOut: format.JSONFormat,
		},
		{
			name:    "stdin",
			cfg:     &MainConfig{},
			file:    "-",
			wantIn:  format.SExpFormat,
			wantOut: format.SExpFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.inFormat(tt.file); got != tt.wantIn {
				t.Errorf("in: got %s want %s", got, tt.wantIn)
			}
			if got := tt.cfg.outFormat(format.SExpFormat); got != tt.wantOut {
				t.Errorf("out: got %s want %s", got, tt.wantOut)
			}
		})
	}
}

func TestInputs(t *testing.T) {
	if diff := cmp.Diff([]string{"-"}, inputs(nil)); diff != "" {
		t.Error(diff)
	}
	if diff := cmp.Diff([]string{"a", "b"}, inputs([]string{"a", "b"})); diff != "" {
		t.Error(diff)
	}
}

func TestLoadPalette(t *testing.T) {
	file := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(file, []byte("ident: \"#010203\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := &MainConfig{Theme: file}
	p, err := cfg.loadPalette()
	if err != nil {
		t.Fatal(err)
	}
	if r, g, b := p.Ident.RGB(); r != 1 || g != 2 || b != 3 {
		t.Errorf("ident %s", p.Ident)
	}
	cfg = &MainConfig{Theme: filepath.Join(t.TempDir(), "missing.yaml")}
	if _, err := cfg.loadPalette(); err == nil {
		t.Error("expected error for missing theme")
	}
}
