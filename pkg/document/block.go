package document

// Block is a single content item of a notebook as persisted in the project
// file. Its Content is raw and its meaning is defined by Type; the editor
// model derives a displayable value from it via a content transform.
type Block struct {
	ID             string         `json:"id" yaml:"id"`
	Type           string         `json:"type" yaml:"type"`
	Content        string         `json:"content" yaml:"content"`
	OrderingKey    string         `json:"orderingKey" yaml:"orderingKey"`
	GroupID        string         `json:"groupId,omitempty" yaml:"groupId,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	ExecutionCount *int           `json:"executionCount,omitempty" yaml:"executionCount,omitempty"`
	Outputs        []*Output      `json:"outputs,omitempty" yaml:"outputs,omitempty"`
}

// Clone returns a deep copy of the block.
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}

	clone := *b
	clone.Metadata = cloneMap(b.Metadata)
	clone.ExecutionCount = cloneIntPtr(b.ExecutionCount)

	if b.Outputs != nil {
		clone.Outputs = make([]*Output, 0, len(b.Outputs))
		for _, o := range b.Outputs {
			clone.Outputs = append(clone.Outputs, o.Clone())
		}
	}

	return &clone
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	clone := make(map[string]any, len(m))
	for k, v := range m {
		clone[k] = cloneValue(v)
	}
	return clone
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneMap(t)
	case []any:
		clone := make([]any, 0, len(t))
		for _, e := range t {
			clone = append(clone, cloneValue(e))
		}
		return clone
	default:
		return v
	}
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
