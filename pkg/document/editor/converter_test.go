package editor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkdown-dev/inkdown/pkg/document"
	"github.com/inkdown-dev/inkdown/pkg/document/transform"
)

func newTestConverter() *Converter {
	return NewConverter(transform.Builtin(), Options{})
}

func TestConverter_ExampleScenario(t *testing.T) {
	conv := newTestConverter()

	blocks := []*document.Block{
		{
			ID:          "b1",
			Type:        "code",
			Content:     "x=1",
			OrderingKey: "a0",
			Outputs: []*document.Output{
				{Type: document.OutputTypeStream, Text: document.Str("hi\n")},
			},
		},
	}

	cells := conv.ToCells(blocks)
	require.Len(t, cells, 1)

	cell := cells[0]
	assert.Equal(t, CodeKind, cell.Kind)
	assert.Equal(t, "x=1", cell.Value)
	assert.Equal(t, "python", cell.LanguageID)
	assert.Equal(t, "b1", cell.Metadata[IDAttributeName])

	pocket := PocketFrom(cell.Metadata)
	require.NotNil(t, pocket)
	assert.Equal(t, "code", pocket.Type)
	assert.Equal(t, "a0", pocket.OrderingKey)

	require.Len(t, cell.Outputs, 1)
	require.Len(t, cell.Outputs[0].Items, 1)
	assert.Equal(t, MimeStdout, cell.Outputs[0].Items[0].Mime)
	assert.Equal(t, "hi\n", string(cell.Outputs[0].Items[0].Data))

	back := conv.ToBlocks(cells)
	assert.Empty(t, cmp.Diff(blocks, back))
}

func TestConverter_RoundTrip(t *testing.T) {
	conv := newTestConverter()

	blocks := []*document.Block{
		{
			ID:          "00000000000000000000000000000001",
			Type:        "h1",
			Content:     "Report",
			OrderingKey: "a0",
		},
		{
			ID:          "00000000000000000000000000000002",
			Type:        "markdown",
			Content:     "Some *prose* here.",
			OrderingKey: "a1",
			Metadata:    map[string]any{"collapsed": false},
		},
		{
			ID:             "00000000000000000000000000000003",
			Type:           "code",
			Content:        "print(42)",
			OrderingKey:    "a2",
			GroupID:        "grp-1",
			ExecutionCount: document.Int(7),
			Outputs: []*document.Output{
				{Type: document.OutputTypeStream, Name: document.StreamStdout, Text: document.Str("42\n")},
				{
					Type: document.OutputTypeExecuteResult,
					Data: map[string]any{
						"text/plain": "42",
						"text/html":  "<b>42</b>",
					},
					ExecutionCount: document.Int(7),
				},
			},
		},
		{
			ID:          "00000000000000000000000000000004",
			Type:        "sql",
			Content:     "SELECT * FROM t",
			OrderingKey: "a3",
			Outputs: []*document.Output{
				{
					Type:      document.OutputTypeError,
					Ename:     "OperationalError",
					Evalue:    "no such table: t",
					Traceback: []string{"line 1", "line 2"},
				},
			},
		},
	}

	back := conv.ToBlocks(conv.ToCells(blocks))
	assert.Empty(t, cmp.Diff(blocks, back))
}

func TestConverter_OrderingStability(t *testing.T) {
	conv := newTestConverter()

	blocks := []*document.Block{
		{ID: "b3", Type: "markdown", Content: "third", OrderingKey: "c0"},
		{ID: "b1", Type: "markdown", Content: "first", OrderingKey: "a0"},
		{ID: "b2a", Type: "markdown", Content: "tie a", OrderingKey: "b0"},
		{ID: "b2b", Type: "markdown", Content: "tie b", OrderingKey: "b0"},
	}

	cells := conv.ToCells(blocks)
	require.Len(t, cells, 4)

	var ids []string
	for _, cell := range cells {
		ids = append(ids, cell.Metadata[IDAttributeName].(string))
	}
	// Ties on the ordering key preserve the original relative order.
	assert.Equal(t, []string{"b1", "b2a", "b2b", "b3"}, ids)

	// The input slice is left untouched.
	assert.Equal(t, "b3", blocks[0].ID)
}

func TestConverter_UnknownTypeFallback(t *testing.T) {
	conv := newTestConverter()

	blocks := []*document.Block{
		{ID: "b1", Type: "not-yet-invented", Content: "payload", OrderingKey: "a0"},
	}

	cells := conv.ToCells(blocks)
	require.Len(t, cells, 1)
	assert.Equal(t, MarkupKind, cells[0].Kind)
	assert.Equal(t, "payload", cells[0].Value)
	assert.Equal(t, "plaintext", cells[0].LanguageID)

	back := conv.ToBlocks(cells)
	assert.Empty(t, cmp.Diff(blocks, back))
}

func TestConverter_PocketMinimality(t *testing.T) {
	conv := newTestConverter()

	cells := conv.ToCells([]*document.Block{{ID: "b1", Content: "bare"}})
	require.Len(t, cells, 1)

	_, hasPocket := cells[0].Metadata[PocketAttributeName]
	assert.False(t, hasPocket, "block without document-only fields must not produce a pocket")
	assert.Equal(t, "b1", cells[0].Metadata[IDAttributeName])
}

func TestConverter_FreshCellDefaults(t *testing.T) {
	conv := newTestConverter()

	blocks := conv.ToBlocks([]*Cell{
		{Kind: CodeKind, Value: "y = 2", LanguageID: "python"},
		{Kind: CodeKind, Value: "z = 3", LanguageID: "python"},
	})
	require.Len(t, blocks, 2)

	assert.Equal(t, testMockID, blocks[0].ID)
	assert.Equal(t, "code", blocks[0].Type)
	assert.Equal(t, "y = 2", blocks[0].Content)
	assert.Equal(t, "a00", blocks[0].OrderingKey)
	assert.Equal(t, "a01", blocks[1].OrderingKey)
	assert.Nil(t, blocks[0].Outputs)
}

func TestConverter_FreshCellOrderingKeysStaySorted(t *testing.T) {
	conv := newTestConverter()

	// More than ten fresh cells, so single-digit and double-digit numeric
	// suffixes mix. The generated keys must keep the positional order under
	// the converter's lexicographic sort.
	var cells []*Cell
	for i := 0; i < 12; i++ {
		cells = append(cells, &Cell{Kind: MarkupKind, Value: string(rune('A' + i))})
	}

	blocks := conv.ToBlocks(cells)
	require.Len(t, blocks, 12)

	resorted := conv.ToCells(blocks)
	for i, cell := range resorted {
		assert.Equal(t, string(rune('A'+i)), cell.Value, "cell %d out of order", i)
	}
}

func TestConverter_HeadingRoundTrip(t *testing.T) {
	conv := newTestConverter()

	blocks := []*document.Block{
		{ID: "b1", Type: "h2", Content: "Section", OrderingKey: "a0"},
	}

	cells := conv.ToCells(blocks)
	require.Len(t, cells, 1)
	assert.Equal(t, "## Section", cells[0].Value)

	back := conv.ToBlocks(cells)
	assert.Empty(t, cmp.Diff(blocks, back))
}

func TestConverter_CaseInsensitiveType(t *testing.T) {
	conv := newTestConverter()

	cells := conv.ToCells([]*document.Block{
		{ID: "b1", Type: "SQL", Content: "SELECT 1", OrderingKey: "a0"},
	})
	require.Len(t, cells, 1)
	assert.Equal(t, "sql", cells[0].LanguageID)

	back := conv.ToBlocks(cells)
	// The original casing of the type tag survives through the pocket.
	assert.Equal(t, "SQL", back[0].Type)
}
