// Package debug holds switches, read from the environment, that turn on
// tracing of the editor's internals.
//
//	SXE_DEBUG_REPAIR  path repair steps
//	SXE_DEBUG_EDIT    tree mutations
//	SXE_DEBUG_PAINT   paint calls
//	SXE_DEBUG_KEYS    key events and mode changes
package debug

import (
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Repair bool
	Edit   bool
	Paint  bool
	Keys   bool
}

var d *debug

var (
	outMu sync.Mutex
	out   io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Repair = boolEnv("SXE_DEBUG_REPAIR")
	d.Edit = boolEnv("SXE_DEBUG_EDIT")
	d.Paint = boolEnv("SXE_DEBUG_PAINT")
	d.Keys = boolEnv("SXE_DEBUG_KEYS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Repair() bool {
	return d.Repair
}
func Edit() bool {
	return d.Edit
}
func Paint() bool {
	return d.Paint
}
func Keys() bool {
	return d.Keys
}

// SetOutput sends debug output to w instead of stderr and returns the
// previous writer.
func SetOutput(w io.Writer) io.Writer {
	outMu.Lock()
	defer outMu.Unlock()
	prev := out
	out = w
	return prev
}
