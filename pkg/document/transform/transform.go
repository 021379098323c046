// Package transform converts a block's raw content into the text shown by
// the editor and back. Every transform is a pure forward/inverse pair; the
// inverse must recover the exact content the forward direction was given,
// as long as the value was not edited in between.
package transform

import "github.com/inkdown-dev/inkdown/pkg/document"

type Kind int

const (
	MarkupKind Kind = iota + 1
	CodeKind
)

// Rendering is the editor-facing result of a forward transform.
type Rendering struct {
	Kind       Kind
	Value      string
	LanguageID string
}

// Transform converts between a block's raw content and its editable value.
// Implementations must not read or write pocket metadata; they only ever see
// the block's content and type-specific fields.
type Transform interface {
	// Forward converts the block's content to the editor value.
	Forward(block *document.Block) Rendering
	// Inverse converts an editor value back to raw block content.
	Inverse(value string) string
	// SupportedTypes returns the type tags this transform handles,
	// in canonical form.
	SupportedTypes() []string
}

const fallbackLanguageID = "plaintext"

type passthrough struct{}

func (passthrough) Forward(block *document.Block) Rendering {
	return Rendering{
		Kind:       MarkupKind,
		Value:      block.Content,
		LanguageID: fallbackLanguageID,
	}
}

func (passthrough) Inverse(value string) string { return value }

func (passthrough) SupportedTypes() []string { return nil }

// Fallback returns the passthrough transform used for block types that have
// no registered transform. Unknown types degrade to inert editable text
// instead of failing the conversion.
func Fallback() Transform {
	return passthrough{}
}
