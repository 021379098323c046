package editor

import (
	"github.com/inkdown-dev/inkdown/internal/identity"
	"github.com/inkdown-dev/inkdown/internal/orderkey"
	"github.com/inkdown-dev/inkdown/pkg/document"
)

// defaultBlockType is assumed for cells whose pocket does not carry a type,
// e.g. cells created fresh in the editor.
const defaultBlockType = "code"

// Pocket holds the block fields that have no editor-model equivalent. It is
// created during block-to-cell conversion, stored under PocketAttributeName
// in the cell metadata, and consumed during cell-to-block conversion. The
// block identifier is deliberately not part of it; collaborators need the id
// independent of the pocket's lifecycle.
type Pocket struct {
	Type           string `json:"type,omitempty"`
	OrderingKey    string `json:"orderingKey,omitempty"`
	ExecutionCount *int   `json:"executionCount,omitempty"`
	GroupID        string `json:"groupId,omitempty"`
}

// Pocket-eligible top-level metadata keys.
const (
	pocketTypeKey           = "type"
	pocketOrderingKeyKey    = "orderingKey"
	pocketExecutionCountKey = "executionCount"
	pocketGroupIDKey        = "groupId"
)

// SplitPocket partitions a flat metadata map into the residual metadata and
// the pocket. Pocket-eligible keys found at the top level move into the
// pocket; everything else stays in the residual map. The pocket is nil when
// none of the eligible keys were present, so that items which never carried
// document-only fields do not acquire an empty pocket.
func SplitPocket(raw map[string]any) (map[string]any, *Pocket) {
	residual := make(map[string]any, len(raw))
	var pocket *Pocket

	ensure := func() *Pocket {
		if pocket == nil {
			pocket = &Pocket{}
		}
		return pocket
	}

	for k, v := range raw {
		switch k {
		case pocketTypeKey:
			if s, ok := v.(string); ok {
				ensure().Type = s
				continue
			}
		case pocketOrderingKeyKey:
			if s, ok := v.(string); ok {
				ensure().OrderingKey = s
				continue
			}
		case pocketGroupIDKey:
			if s, ok := v.(string); ok {
				ensure().GroupID = s
				continue
			}
		case pocketExecutionCountKey:
			if n, ok := asInt(v); ok {
				ensure().ExecutionCount = &n
				continue
			}
		}
		residual[k] = v
	}

	return residual, pocket
}

// PocketFrom returns the pocket stored in the cell metadata, or nil. It
// accepts both the typed form produced by SplitPocket and the generic map
// form a pocket takes after crossing a JSON boundary.
func PocketFrom(metadata map[string]any) *Pocket {
	if metadata == nil {
		return nil
	}

	switch v := metadata[PocketAttributeName].(type) {
	case *Pocket:
		return v
	case Pocket:
		return &v
	case map[string]any:
		p := &Pocket{}
		if s, ok := v[pocketTypeKey].(string); ok {
			p.Type = s
		}
		if s, ok := v[pocketOrderingKeyKey].(string); ok {
			p.OrderingKey = s
		}
		if s, ok := v[pocketGroupIDKey].(string); ok {
			p.GroupID = s
		}
		if n, ok := asInt(v[pocketExecutionCountKey]); ok {
			p.ExecutionCount = &n
		}
		return p
	default:
		return nil
	}
}

// RecoverBlock rebuilds the block-side fields from a cell's metadata. The
// id comes from the top-level metadata, or is freshly generated; the
// ordering key comes from the pocket, or is derived from the cell's position
// in the notebook; the type comes from the pocket, or defaults to the
// baseline executable type. Content and outputs are the converter's concern.
func RecoverBlock(metadata map[string]any, fallbackIndex int) *document.Block {
	block := &document.Block{}

	id, _ := metadata[IDAttributeName].(string)
	if id == "" {
		id = identity.GenerateID()
	}
	block.ID = id

	pocket := PocketFrom(metadata)
	if pocket == nil {
		pocket = &Pocket{}
	}

	block.Type = pocket.Type
	if block.Type == "" {
		block.Type = defaultBlockType
	}

	block.OrderingKey = pocket.OrderingKey
	if block.OrderingKey == "" {
		block.OrderingKey = orderkey.Generate(fallbackIndex)
	}

	block.GroupID = pocket.GroupID

	if pocket.ExecutionCount != nil {
		n := *pocket.ExecutionCount
		block.ExecutionCount = &n
	}

	var residual map[string]any
	for k, v := range metadata {
		if k == IDAttributeName || k == PocketAttributeName {
			continue
		}
		if residual == nil {
			residual = make(map[string]any)
		}
		residual[k] = v
	}
	block.Metadata = residual

	return block
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}
