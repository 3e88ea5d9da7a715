package report

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat/flatten"
)

var sample = []flatten.ParameterRecord{
	{Path: "id", Type: "Integer", Required: true},
	{Path: "items", Type: "List[Item]", Required: false},
	{Path: "items[...].name", Type: "String", Required: true},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"CSV", FormatCSV, false},
		{" markdown ", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"json", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Valid formats: text, csv, markdown, json, yaml")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatText))

	want := "" +
		"Parameter Path   Expected Type / Structure  Required?\n" +
		"id               Integer                    Yes\n" +
		"items            List[Item]                 No\n" +
		"items[...].name  String                     Yes\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTable_Quiet(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sample[:2], true)
	assert.Equal(t, "id\tInteger\tYes\nitems\tList[Item]\tNo\n", buf.String())
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, nil, false)
	assert.Empty(t, buf.String())
}

func TestWriteTable_WideRunes(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, []flatten.ParameterRecord{
		{Path: "名前", Type: "String"},
		{Path: "abcd", Type: "Integer"},
	}, false)

	// 名前 is four columns wide, the same as abcd
	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Equal(t, "名前            String                     No", string(lines[1]))
	assert.Equal(t, "abcd            Integer                    No", string(lines[2]))
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, displayWidth(""))
	assert.Equal(t, 5, displayWidth("items"))
	assert.Equal(t, 4, displayWidth("名前"))
	assert.Equal(t, 2, displayWidth("Ａ"))
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	records := append([]flatten.ParameterRecord{}, sample...)
	records = append(records, flatten.ParameterRecord{Path: "a,b", Type: `Unknown ("x")`})
	require.NoError(t, Write(&buf, records, FormatCSV))

	want := "" +
		"Parameter Path,Expected Type / Structure,Required?\n" +
		"id,Integer,Yes\n" +
		"items,List[Item],No\n" +
		"items[...].name,String,Yes\n" +
		`"a,b","Unknown (""x"")",No` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_CSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Parameter Path,Expected Type / Structure,Required?\n", buf.String())
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample, FormatMarkdown))

	want := "" +
		"| Parameter Path | Expected Type / Structure | Required? |\n" +
		"| :------------- | :------------------------ | :-------- |\n" +
		"| `id` | Integer | Yes |\n" +
		"| `items` | List[Item] | No |\n" +
		"| `items[...].name` | String | Yes |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdown_EscapesPipes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdown(&buf, []flatten.ParameterRecord{{Path: "x", Type: "Unknown (a|b)"}}))
	assert.Contains(t, buf.String(), `| Unknown (a\|b) |`)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample[:1], FormatJSON))
	want := "[\n  {\n    \"path\": \"id\",\n    \"type\": \"Integer\",\n    \"required\": true\n  }\n]\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, Write(&buf, nil, FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sample[:1], FormatYAML))
	out := buf.String()
	assert.Contains(t, out, "- path: id\n")
	assert.Contains(t, out, "type: Integer\n")
	assert.Contains(t, out, "required: true\n")
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sample, Format("xml")))
	assert.Error(t, RenderDetail(&buf, sample, FormatText))
}

func TestWriteFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	files, err := WriteFiles(dir, "", sample)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "parameters_full.md"), files.Markdown)
	assert.Equal(t, filepath.Join(dir, "parameters_full.csv"), files.CSV)

	md, err := os.ReadFile(files.Markdown)
	require.NoError(t, err)
	assert.Contains(t, string(md), "| `items[...].name` | String | Yes |")

	csvData, err := os.ReadFile(files.CSV)
	require.NoError(t, err)
	assert.Contains(t, string(csvData), "items[...].name,String,Yes")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(files.CSV)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestWriteFiles_CustomBase(t *testing.T) {
	dir := t.TempDir()
	files, err := WriteFiles(dir, "post_pets", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "post_pets.md"), files.Markdown)

	md, err := os.ReadFile(files.Markdown)
	require.NoError(t, err)
	assert.Equal(t, "| Parameter Path | Expected Type / Structure | Required? |\n| :------------- | :------------------------ | :-------- |\n", string(md))
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"Method", "Path"}, [][]string{
		{"POST", "/pets"},
		{"DELETE", "/pets/{id}"},
	}, false)
	assert.Equal(t, "Method  Path\nPOST    /pets\nDELETE  /pets/{id}\n", buf.String())
}
