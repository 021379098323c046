package editor

const (
	// InternalAttributePrefix marks cell metadata keys owned by inkdown
	// rather than by the user or the editor surface.
	InternalAttributePrefix = "inkdown.dev"

	// IDAttributeName is the top-level cell metadata key holding the block
	// identifier. It stays outside the pocket because collaborators need it
	// independent of round-trip concerns.
	IDAttributeName = "id"
)

// PocketAttributeName is the reserved cell metadata key holding the pocket.
var PocketAttributeName = PrefixAttributeName(InternalAttributePrefix, "pocket")

func PrefixAttributeName(prefix, name string) string {
	return prefix + "/" + name
}

type CellKind int

const (
	MarkupKind CellKind = iota + 1
	CodeKind
)

// Cell resembles NotebookCellData from VS Code.
// https://github.com/microsoft/vscode/blob/085c409898bbc89c83409f6a394e73130b932add/src/vscode-dts/vscode.d.ts#L13715
type Cell struct {
	Kind       CellKind       `json:"kind"`
	Value      string         `json:"value"`
	LanguageID string         `json:"languageId"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Outputs    []*CellOutput  `json:"outputs,omitempty"`
}

// CellOutputItem is one typed piece of a logical execution result.
//
// Unnamed marks a stream item that originated from a record without a
// channel name, so that converting back does not invent one.
type CellOutputItem struct {
	Mime    string `json:"mime"`
	Data    []byte `json:"data"`
	Unnamed bool   `json:"unnamed,omitempty"`
}

// CellOutput is the editor-side presentation of one output record. Its
// items all belong to one logical result, e.g. one item per mime type of a
// rich output.
type CellOutput struct {
	Items          []*CellOutputItem `json:"items"`
	Metadata       map[string]any    `json:"metadata,omitempty"`
	ExecutionCount *int              `json:"executionCount,omitempty"`
}

// Notebook is the editor-side counterpart of one document sub-collection.
type Notebook struct {
	Cells    []*Cell        `json:"cells"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func newOutputItem(mime string, data string) *CellOutputItem {
	return &CellOutputItem{Mime: mime, Data: []byte(data)}
}
