package editor

import (
	"sort"

	"go.uber.org/zap"

	"github.com/inkdown-dev/inkdown/pkg/document"
	"github.com/inkdown-dev/inkdown/pkg/document/transform"
)

type Options struct {
	Logger *zap.Logger
}

// Converter maps blocks to cells and back. It holds no per-conversion state;
// concurrent conversions are safe as long as the registry is not mutated
// while they run.
type Converter struct {
	registry *transform.Registry
	logger   *zap.Logger
}

func NewConverter(registry *transform.Registry, opts Options) *Converter {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Converter{registry: registry, logger: logger}
}

// ToCells converts the blocks of one notebook into editor cells, ordered by
// ascending ordering key. The sort is stable, so blocks with equal keys keep
// their original relative order.
func (c *Converter) ToCells(blocks []*document.Block) []*Cell {
	sorted := make([]*document.Block, len(blocks))
	copy(sorted, blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OrderingKey < sorted[j].OrderingKey
	})

	cells := make([]*Cell, 0, len(sorted))
	for _, block := range sorted {
		cells = append(cells, c.toCell(block))
	}
	return cells
}

// ToBlocks converts editor cells back into blocks. A cell's positional index
// serves as the ordering-key fallback for cells created fresh in the editor.
func (c *Converter) ToBlocks(cells []*Cell) []*document.Block {
	blocks := make([]*document.Block, 0, len(cells))
	for idx, cell := range cells {
		blocks = append(blocks, c.toBlock(cell, idx))
	}
	return blocks
}

func (c *Converter) toCell(block *document.Block) *Cell {
	rendering := c.transformFor(block.Type).Forward(block)

	raw := make(map[string]any, len(block.Metadata)+5)
	for k, v := range block.Metadata {
		raw[k] = v
	}
	if block.ID != "" {
		raw[IDAttributeName] = block.ID
	}
	if block.Type != "" {
		raw[pocketTypeKey] = block.Type
	}
	if block.OrderingKey != "" {
		raw[pocketOrderingKeyKey] = block.OrderingKey
	}
	if block.GroupID != "" {
		raw[pocketGroupIDKey] = block.GroupID
	}
	if block.ExecutionCount != nil {
		raw[pocketExecutionCountKey] = *block.ExecutionCount
	}

	metadata, pocket := SplitPocket(raw)
	if pocket != nil {
		metadata[PocketAttributeName] = pocket
	}

	cell := &Cell{
		Kind:       CellKind(rendering.Kind),
		Value:      rendering.Value,
		LanguageID: rendering.LanguageID,
	}
	if len(metadata) > 0 {
		cell.Metadata = metadata
	}
	if len(block.Outputs) > 0 {
		cell.Outputs = encodeOutputs(block.Outputs)
	}

	return cell
}

func (c *Converter) toBlock(cell *Cell, index int) *document.Block {
	block := RecoverBlock(cell.Metadata, index)
	block.Content = c.transformFor(block.Type).Inverse(cell.Value)

	if len(cell.Outputs) > 0 {
		block.Outputs = decodeOutputs(cell.Outputs)
	}

	return block
}

func (c *Converter) transformFor(blockType string) transform.Transform {
	t, ok := c.registry.Lookup(blockType)
	if !ok {
		c.logger.Debug("no transform registered, using passthrough", zap.String("type", blockType))
		return transform.Fallback()
	}
	return t
}
