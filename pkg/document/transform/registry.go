package transform

import (
	"sort"
	"strings"
)

// Registry maps block type tags to their content transforms. It is built
// once during initialization and is read-only afterwards; registering while
// conversions are in flight is not safe.
type Registry struct {
	transforms map[string]registration
}

type registration struct {
	tag       string
	transform Transform
}

func NewRegistry() *Registry {
	return &Registry{
		transforms: make(map[string]registration),
	}
}

// Register associates all of the transform's supported type tags with it.
// A tag registered twice keeps the last transform.
func (r *Registry) Register(t Transform) {
	for _, tag := range t.SupportedTypes() {
		r.transforms[strings.ToLower(tag)] = registration{tag: tag, transform: t}
	}
}

// Lookup returns the transform for the given type tag. The lookup is
// case-insensitive.
func (r *Registry) Lookup(tag string) (Transform, bool) {
	reg, ok := r.transforms[strings.ToLower(tag)]
	if !ok {
		return nil, false
	}
	return reg.transform, true
}

// SupportedTypes returns all registered type tags in canonical form,
// sorted ascending.
func (r *Registry) SupportedTypes() []string {
	tags := make([]string, 0, len(r.transforms))
	for _, reg := range r.transforms {
		tags = append(tags, reg.tag)
	}
	sort.Strings(tags)
	return tags
}

// Builtin returns a registry with all built-in transforms registered.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(Code())
	r.Register(SQL())
	r.Register(Markdown())
	r.Register(Heading(1))
	r.Register(Heading(2))
	r.Register(Heading(3))
	return r
}
