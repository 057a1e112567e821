package output

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/mj1618/axkit/ax"
	"github.com/mj1618/axkit/internal/model"
	"gopkg.in/yaml.v3"
)

func sampleTree() TreeResult {
	return TreeResult{
		App: "Safari",
		PID: 1234,
		TS:  1707500000,
		Elements: []model.Element{
			{ID: 1, Role: "btn", Title: "OK", Bounds: [4]int{10, 20, 100, 30}},
		},
	}
}

// capture runs fn with os.Stdout redirected and returns what it wrote.
func capture(t *testing.T, fn func() error) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	err = fn()
	w.Close()
	os.Stdout = old

	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestPrint_YAML(t *testing.T) {
	OutputFormat, PrettyOutput = FormatYAML, false
	output := capture(t, func() error { return Print(sampleTree()) })

	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("YAML output should be multi-line, got:\n%s", output)
	}
	var decoded TreeResult
	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if decoded.App != "Safari" {
		t.Errorf("app: got %q, want %q", decoded.App, "Safari")
	}
	if len(decoded.Elements) != 1 || decoded.Elements[0].Title != "OK" {
		t.Errorf("elements: got %+v", decoded.Elements)
	}
}

func TestPrint_JSONCompact(t *testing.T) {
	OutputFormat, PrettyOutput = FormatJSON, false
	defer func() { OutputFormat = FormatYAML }()
	output := capture(t, func() error { return Print(sampleTree()) })

	if bytes.Count([]byte(output), []byte("\n")) > 1 {
		t.Errorf("compact output should be single line, got:\n%s", output)
	}
	var decoded TreeResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.PID != 1234 {
		t.Errorf("pid: got %d, want 1234", decoded.PID)
	}
}

func TestPrint_JSONPretty(t *testing.T) {
	OutputFormat, PrettyOutput = FormatJSON, true
	defer func() { OutputFormat, PrettyOutput = FormatYAML, false }()
	output := capture(t, func() error { return Print(sampleTree()) })

	if bytes.Count([]byte(output), []byte("\n")) <= 1 {
		t.Errorf("pretty output should be multi-line, got:\n%s", output)
	}
}

func TestRender_UnsupportedFormat(t *testing.T) {
	if _, err := Render(sampleTree(), Format("xml"), false); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestTreeResult_OmitEmpty(t *testing.T) {
	data, err := yaml.Marshal(TreeResult{TS: 123, Elements: []model.Element{}})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]interface{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	if _, ok := m["app"]; ok {
		t.Error("empty app should be omitted")
	}
	if _, ok := m["pid"]; ok {
		t.Error("zero pid should be omitted")
	}
	if _, ok := m["ts"]; !ok {
		t.Error("ts should always be present")
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "json"} {
		if f, err := ParseFormat(s); err != nil || string(f) != s {
			t.Errorf("ParseFormat(%q) = %q, %v", s, f, err)
		}
	}
	if _, err := ParseFormat("toml"); err == nil {
		t.Error("ParseFormat(\"toml\") should fail")
	}
}

func TestNewValueResult(t *testing.T) {
	v := ax.List{ax.Point{X: 1, Y: 2}, ax.Int(3)}
	res := NewValueResult(&ax.Element{}, ax.AttrPosition, v)

	data, err := Render(res, FormatJSON, false)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"element":"<ax.Element <No role!> >","attribute":"AXPosition","value":[{"x":1,"y":2},3]}` + "\n"
	if string(data) != want {
		t.Errorf("Render = %s, want %s", data, want)
	}
}
