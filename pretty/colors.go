package pretty

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Colors selects the sprintf-style colorizers applied to literal text
// and to the ">|" / " |" markers. Colorized output is for display
// only; it is not valid Deprettify input.
type Colors struct {
	Literal func(format string, a ...any) string
	Marker  func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Literal: color.RGB(128, 216, 236).SprintfFunc(),
		Marker:  color.RGB(255, 0, 196).SprintfFunc(),
	}
}

// ColorsEnabled reports whether f is a terminal that can render the
// color palette.
func ColorsEnabled(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type Option func(*options)

type options struct {
	colors *Colors
}

// WithColors colorizes the prettified output.
func WithColors(c *Colors) Option {
	return func(o *options) {
		o.colors = c
	}
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) text(s string) string {
	if o.colors == nil || o.colors.Literal == nil {
		return s
	}
	return o.colors.Literal("%s", s)
}

func (o *options) marker(s string) string {
	if o.colors == nil || o.colors.Marker == nil {
		return s
	}
	return o.colors.Marker("%s", s)
}
