// Package debug gates trace logging on STRINGLY_DEBUG_* environment
// variables.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("STRINGLY_DEBUG_EVAL")
	d.Patch = boolEnv("STRINGLY_DEBUG_PATCH")
	d.Diff = boolEnv("STRINGLY_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
