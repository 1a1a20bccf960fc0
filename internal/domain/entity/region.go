package entity

import (
	"strings"

	"cek-cuaca/pkg/util/numberutils"
)

// Region is one node of the administrative hierarchy.
// Villages are leaves and carry no children collection.
type Region struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Level Level  `json:"level"`

	children []*Region
	index    map[string]*Region
}

// NewRegion creates a region whose level is derived from its code.
func NewRegion(code string, name string) *Region {
	r := &Region{Code: code, Name: name, Level: LevelOf(code)}
	if !r.IsLeaf() {
		r.index = make(map[string]*Region)
	}
	return r
}

// LevelOf returns the level encoded by a dotted region code.
func LevelOf(code string) Level {
	return Level(strings.Count(code, ".") + 1)
}

// IsLeaf reports whether the region sits at the village level.
func (r *Region) IsLeaf() bool {
	return r.Level >= Village
}

// Children returns the direct children in insertion order, nil for leaves.
func (r *Region) Children() []*Region {
	return r.children
}

// Child looks up a direct child by its full code.
func (r *Region) Child(code string) (*Region, bool) {
	child, ok := r.index[code]
	return child, ok
}

// AddChild attaches child unless a child with the same code exists, returning the attached node.
// Leaf children replace the existing name instead.
func (r *Region) AddChild(child *Region) *Region {
	if r.IsLeaf() {
		return nil
	}
	if existing, ok := r.index[child.Code]; ok {
		if child.IsLeaf() {
			existing.Name = child.Name
		}
		return existing
	}
	r.index[child.Code] = child
	r.children = append(r.children, child)
	return child
}

// Hierarchy is the forest of provinces, read-only once built.
type Hierarchy struct {
	root *Region
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{root: &Region{index: make(map[string]*Region)}}
}

// AddProvince inserts or reuses a level-1 region.
func (h *Hierarchy) AddProvince(province *Region) *Region {
	return h.root.AddChild(province)
}

// Provinces returns the level-1 regions in file order.
func (h *Hierarchy) Provinces() []*Region {
	return h.root.children
}

// Len returns the number of provinces.
func (h *Hierarchy) Len() int {
	return len(h.root.children)
}

// Lookup walks an explicit path of codes from a province downwards.
func (h *Hierarchy) Lookup(path ...string) (*Region, bool) {
	node := h.root
	for _, code := range path {
		child, ok := node.Child(code)
		if !ok {
			return nil, false
		}
		node = child
	}
	if node == h.root {
		return nil, false
	}
	return node, true
}

// Find resolves a code through its dotted prefixes, e.g. "11.01.02" walks 11 → 11.01 → 11.01.02.
func (h *Hierarchy) Find(code string) (*Region, bool) {
	if code == "" {
		return nil, false
	}
	return h.Lookup(PathOf(code)...)
}

// PathOf expands a code into the codes of its ancestors and itself.
func PathOf(code string) []string {
	parts := strings.Split(code, ".")
	path := make([]string, len(parts))
	for i := range parts {
		path[i] = strings.Join(parts[:i+1], ".")
	}
	return path
}

// IsValidCode reports whether code has one to four dot-separated numeric segments.
func IsValidCode(code string) bool {
	parts := strings.Split(code, ".")
	if len(parts) > int(Village) {
		return false
	}
	for _, part := range parts {
		if !numberutils.IsDigits(part) {
			return false
		}
	}
	return true
}
