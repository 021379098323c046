package project

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdown-dev/inkdown/pkg/document"
)

var testProjectSource = []byte(`version: "1"
createdAt: "2026-01-12"
project:
  id: proj-1
  name: Demo
  owner: data-team
  notebooks:
    - id: nb-1
      name: Analysis
      blocks:
        - id: "00000000000000000000000000000001"
          type: h1
          content: Report
          orderingKey: a0
        - id: "00000000000000000000000000000002"
          type: code
          content: print(42)
          orderingKey: a1
          executionCount: 2
          outputs:
            - output_type: stream
              name: stdout
              text: "42\n"
    - id: nb-2
      name: Scratch
      blocks: []
`)

func TestParse(t *testing.T) {
	f, err := Parse(testProjectSource)
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "proj-1", f.Project.ID)
	require.Len(t, f.Notebooks(), 2)

	blocks := f.Notebooks()[0].Blocks
	require.Len(t, blocks, 2)
	assert.Equal(t, "h1", blocks[0].Type)
	assert.Equal(t, "Report", blocks[0].Content)

	code := blocks[1]
	require.NotNil(t, code.ExecutionCount)
	assert.Equal(t, 2, *code.ExecutionCount)
	require.Len(t, code.Outputs, 1)
	assert.Equal(t, document.OutputTypeStream, code.Outputs[0].Type)
	require.NotNil(t, code.Outputs[0].Text)
	assert.Equal(t, "42\n", *code.Outputs[0].Text)
}

func TestParse_UnknownFieldsPreserved(t *testing.T) {
	f, err := Parse(testProjectSource)
	require.NoError(t, err)

	// Fields the model does not own land in the inline rest maps.
	assert.Equal(t, "2026-01-12", f.Rest["createdAt"])
	assert.Equal(t, "data-team", f.Project.Rest["owner"])

	data, err := f.Marshal()
	require.NoError(t, err)

	reparsed, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(f, reparsed))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("not: [valid"))
	assert.Error(t, err)

	_, err = Parse([]byte("version: \"1\"\n"))
	assert.Error(t, err)
}

func TestNotebook(t *testing.T) {
	f, err := Parse(testProjectSource)
	require.NoError(t, err)

	t.Run("ByID", func(t *testing.T) {
		nb, err := f.Notebook("nb-2")
		require.NoError(t, err)
		assert.Equal(t, "Scratch", nb.Name)
	})

	t.Run("ByName", func(t *testing.T) {
		nb, err := f.Notebook("Analysis")
		require.NoError(t, err)
		assert.Equal(t, "nb-1", nb.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := f.Notebook("missing")
		assert.ErrorContains(t, err, `notebook "missing" not found`)
	})

	t.Run("EmptySelectorAmbiguous", func(t *testing.T) {
		_, err := f.Notebook("")
		assert.Error(t, err)
	})

	t.Run("EmptySelectorSingleNotebook", func(t *testing.T) {
		single := &File{Project: &Project{Notebooks: []*Notebook{{ID: "only"}}}}
		nb, err := single.Notebook("")
		require.NoError(t, err)
		assert.Equal(t, "only", nb.ID)
	})
}

func TestWriteAndLoad(t *testing.T) {
	f, err := Parse(testProjectSource)
	require.NoError(t, err)

	path := t.TempDir() + "/demo.inkdown.yaml"
	require.NoError(t, f.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(f, loaded))
}
