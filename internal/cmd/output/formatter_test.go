package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/champdiff/internal/cmd/table"
	"github.com/agentstation/champdiff/pkg/catalogs"
)

type buildInfo struct {
	Version string `json:"version"`
	BuiltBy string `json:"built_by,omitempty"`
	hidden  string
}

func sampleData() Data {
	return Data{
		Headers: []string{"Key", "Name"},
		Rows: [][]string{
			{"Aatrox", "Aatrox"},
			{"MonkeyKing", "Wukong"},
		},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignRight},
	}
}

func TestNewFormatter(t *testing.T) {
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML))
	assert.IsType(t, &TextFormatter{}, NewFormatter(FormatText))
	assert.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
	assert.IsType(t, &TableFormatter{}, NewFormatter(""))
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatJSON).Format(&buf, map[string]int{"missing": 2})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"missing\": 2\n}\n", buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := NewFormatter(FormatYAML).Format(&buf, []string{"14.1.1", "14.0.1"})
	require.NoError(t, err)
	assert.Equal(t, "- 14.1.1\n- 14.0.1\n", buf.String())
}

func TestTextFormatter(t *testing.T) {
	tests := []struct {
		name string
		data any
		want string
	}{
		{"table data", sampleData(), "Aatrox Aatrox\nMonkeyKing Wukong\n"},
		{"strings", []string{"a", "b"}, "a\nb\n"},
		{"struct", buildInfo{Version: "1.0.0", BuiltBy: "make"}, "Version 1.0.0\nBuilt By make\n"},
		{"stringer", catalogs.Champion{Key: "Kaisa", ID: "145", Name: "Kai'Sa", Title: "Daughter of the Void"},
			"Kaisa (ID: 145, Name: Kai'Sa, Title: Daughter of the Void)\n"},
		{"scalar", 42, "42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, NewFormatter(FormatText).Format(&buf, tt.data))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, sampleData()))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "KEY")
	assert.Contains(t, out, "MonkeyKing")
	assert.Contains(t, out, "Wukong")
}

func TestTableFormatter_Struct(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, &buildInfo{Version: "1.0.0"}))

	out := buf.String()
	assert.Contains(t, out, "Built By")
	assert.Contains(t, out, "1.0.0")
	assert.NotContains(t, out, "hidden")
}

func TestTableFormatter_FallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []int{1, 2}))
	assert.JSONEq(t, "[1, 2]", buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "TABLE", "json", "yaml", ""} {
		_, err := ParseFormat(in)
		assert.NoError(t, err, in)
	}

	_, err := ParseFormat("csv")
	assert.ErrorContains(t, err, "invalid format")
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}
