package transform

import (
	"strconv"
	"strings"

	"github.com/inkdown-dev/inkdown/pkg/document"
)

// executable is a transform for blocks whose content is source code shown
// verbatim in an executable cell.
type executable struct {
	types      []string
	languageID string
}

func (t executable) Forward(block *document.Block) Rendering {
	return Rendering{
		Kind:       CodeKind,
		Value:      block.Content,
		LanguageID: t.languageID,
	}
}

func (executable) Inverse(value string) string { return value }

func (t executable) SupportedTypes() []string { return t.types }

// Code returns the transform for code blocks.
func Code() Transform {
	return executable{types: []string{"code"}, languageID: "python"}
}

// SQL returns the transform for SQL blocks.
func SQL() Transform {
	return executable{types: []string{"sql"}, languageID: "sql"}
}

type markdown struct{}

func (markdown) Forward(block *document.Block) Rendering {
	return Rendering{
		Kind:       MarkupKind,
		Value:      block.Content,
		LanguageID: "markdown",
	}
}

func (markdown) Inverse(value string) string { return value }

func (markdown) SupportedTypes() []string { return []string{"markdown"} }

// Markdown returns the transform for markdown blocks.
func Markdown() Transform {
	return markdown{}
}

// heading wraps the block content in a markdown heading marker so the editor
// renders it at the right level, and unwraps it on the way back.
type heading struct {
	level int
}

func (t heading) marker() string {
	return strings.Repeat("#", t.level) + " "
}

func (t heading) Forward(block *document.Block) Rendering {
	return Rendering{
		Kind:       MarkupKind,
		Value:      t.marker() + block.Content,
		LanguageID: "markdown",
	}
}

func (t heading) Inverse(value string) string {
	if stripped, ok := strings.CutPrefix(value, t.marker()); ok {
		return stripped
	}
	// The user may have deleted the space after the marker.
	if stripped, ok := strings.CutPrefix(value, strings.Repeat("#", t.level)); ok {
		return stripped
	}
	return value
}

func (t heading) SupportedTypes() []string {
	return []string{"h" + strconv.Itoa(t.level)}
}

// Heading returns the transform for heading blocks of the given level.
func Heading(level int) Transform {
	return heading{level: level}
}
