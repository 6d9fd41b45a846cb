package output_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"designpatterns/src/output"
)

type row struct {
	Name string `json:"name" yaml:"name"`
	Kind string `json:"kind" yaml:"kind"`
}

type rows []row

func (r rows) Table() output.Table {
	t := output.Table{Headers: []string{"Name", "Kind"}}
	for _, x := range r {
		t.Rows = append(t.Rows, []string{x.Name, x.Kind})
	}
	return t
}

func TestParseFormat(t *testing.T) {
	f, err := output.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, output.FormatTable, f)

	f, err = output.ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, output.FormatYAML, f)

	_, err = output.ParseFormat("csv")
	assert.Error(t, err)
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatJSON, rows{{"composite", "structural"}}))
	var decoded []row
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, []row{{"composite", "structural"}}, decoded)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatYAML, rows{{"observer", "behavioral"}}))
	assert.Contains(t, buf.String(), "name: observer")
	assert.Contains(t, buf.String(), "kind: behavioral")
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, output.Write(&buf, output.FormatTable, rows{{"builder", "creational"}}))
	assert.Contains(t, buf.String(), "builder")
	assert.Contains(t, buf.String(), "creational")
}

func TestWriteTableRejectsPlainData(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, output.Write(&buf, output.FormatTable, []string{"x"}))
}
