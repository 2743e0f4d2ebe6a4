package convert

import (
	"fmt"

	"github.com/stringly-format/go-stringly/format"
	"github.com/stringly-format/go-stringly/pretty"
)

// To re-renders a document from one format to another, going through
// the flat encoding.
func To(s string, from, to format.Format) (string, error) {
	flat, err := reduce(s, from)
	if err != nil {
		return "", err
	}
	return render(flat, to)
}

func reduce(s string, f format.Format) (string, error) {
	switch f {
	case format.FlatFormat:
		return s, nil
	case format.PrettyFormat:
		return pretty.Deprettify(s)
	case format.JSONFormat:
		return FromJSON([]byte(s))
	case format.YAMLFormat:
		return FromYAML([]byte(s))
	default:
		return "", fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
	}
}

func render(flat string, f format.Format) (string, error) {
	switch f {
	case format.FlatFormat:
		return flat, nil
	case format.PrettyFormat:
		return pretty.Prettify(flat), nil
	case format.JSONFormat:
		d, err := ToJSON(flat)
		return string(d), err
	case format.YAMLFormat:
		d, err := ToYAML(flat)
		return string(d), err
	default:
		return "", fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
	}
}
