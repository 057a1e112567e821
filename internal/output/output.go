package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/model"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatYAML, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("invalid format %q: use yaml or json", s)
}

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// TreeResult is the top-level output of the `tree` command.
type TreeResult struct {
	App      string          `yaml:"app,omitempty" json:"app,omitempty"`
	PID      int             `yaml:"pid,omitempty" json:"pid,omitempty"`
	TS       int64           `yaml:"ts"            json:"ts"`
	Elements []model.Element `yaml:"elements"      json:"elements"`
}

// TreeFlatResult is the top-level output when --flat is used.
type TreeFlatResult struct {
	App      string              `yaml:"app,omitempty" json:"app,omitempty"`
	PID      int                 `yaml:"pid,omitempty" json:"pid,omitempty"`
	TS       int64               `yaml:"ts"            json:"ts"`
	Elements []model.FlatElement `yaml:"elements"      json:"elements"`
}

// AttributesResult lists what an element supports.
type AttributesResult struct {
	Handle     string   `yaml:"handle,omitempty"   json:"handle,omitempty"`
	Element    string   `yaml:"element"            json:"element"`
	Attributes []string `yaml:"attributes"         json:"attributes"`
	Actions    []string `yaml:"actions"            json:"actions"`
	Settable   []string `yaml:"settable,omitempty" json:"settable,omitempty"`
}

// ValueResult is one attribute read.
type ValueResult struct {
	Element   string `yaml:"element"   json:"element"`
	Attribute string `yaml:"attribute" json:"attribute"`
	Value     any    `yaml:"value"     json:"value"`
}

// NewValueResult renders v with ax.Plain.
func NewValueResult(el *ax.Element, attribute string, v ax.Value) ValueResult {
	return ValueResult{Element: el.String(), Attribute: attribute, Value: ax.Plain(v)}
}

// AtResult is the output of the `at` command.
type AtResult struct {
	X       float64       `yaml:"x"             json:"x"`
	Y       float64       `yaml:"y"             json:"y"`
	PID     int           `yaml:"pid,omitempty" json:"pid,omitempty"`
	Element model.Element `yaml:"element"       json:"element"`
}

// ActionResult reports a completed action or write.
type ActionResult struct {
	OK      bool   `yaml:"ok"                json:"ok"`
	Element string `yaml:"element,omitempty" json:"element,omitempty"`
	Action  string `yaml:"action,omitempty"  json:"action,omitempty"`
	Detail  string `yaml:"detail,omitempty"  json:"detail,omitempty"`
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	data, err := Render(v, OutputFormat, PrettyOutput)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

// Render serializes v in the given format.
func Render(v interface{}, format Format, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		if pretty {
			enc.SetIndent("", "  ")
		}
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("json encode: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("yaml encode: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return buf.Bytes(), nil
}
