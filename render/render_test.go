package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/databrickslabs/sandbox/heavybag/render"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestRenderTemplateAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := render.RenderTemplate(&buf, "Word\tCount\tShare{{range .}}\n{{.Word}}\t{{.Count}}\t{{percent .Count 4}}{{end}}\n", []struct {
		Word  string
		Count int64
	}{{"a", 3}, {"longer", 1}})
	require.NoError(t, err)
	assert.Equal(t, "Word    Count  Share\na       3      75.00%\nlonger  1      25.00%\n", buf.String())
}

func TestRenderTemplateParseError(t *testing.T) {
	err := render.RenderTemplate(&bytes.Buffer{}, "{{", nil)
	assert.ErrorContains(t, err, "parse")
}

func TestJSONIsValidWithoutColor(t *testing.T) {
	var buf bytes.Buffer
	err := render.JSON(&buf, map[string]int{"a": 1})
	require.NoError(t, err)

	var out map[string]int
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, map[string]int{"a": 1}, out)
}
