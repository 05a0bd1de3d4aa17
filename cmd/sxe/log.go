package main

import (
	"io"
	"log/slog"
	"os"
)

func newLog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey {
				if a.Value.String() == "INFO" {
					return slog.Attr{}
				}
			}
			return a
		},
	}))
}

// openLog returns the session logger for file, discarding records when
// file is empty.
func openLog(file string) (*slog.Logger, io.Writer, func() error, error) {
	if file == "" {
		return slog.New(slog.DiscardHandler), io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, nil, err
	}
	return newLog(f), f, f.Close, nil
}
