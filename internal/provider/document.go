// Package provider materializes a merged style configuration into the
// document's presentation state: the CSS variable table, the marker
// classes, and injected custom-CSS blocks. The state lives in an explicit
// Document value owned by the caller; the Provider is the only writer and
// guarantees that everything written on activation is removed on
// deactivation.
package provider

import (
	"sort"
	"strings"
)

// Document is the host page's presentation state. One Document exists per
// rendered page; the active Provider is its sole writer.
type Document struct {
	vars    map[string]string
	classes map[string]struct{}
	blocks  map[string]string // style-block key -> raw CSS
}

// NewDocument creates an empty presentation state.
func NewDocument() *Document {
	return &Document{
		vars:    make(map[string]string),
		classes: make(map[string]struct{}),
		blocks:  make(map[string]string),
	}
}

// SetVar writes one presentation variable.
func (d *Document) SetVar(name, value string) { d.vars[name] = value }

// RemoveVar deletes one presentation variable.
func (d *Document) RemoveVar(name string) { delete(d.vars, name) }

// Var returns a variable's value and whether it is set.
func (d *Document) Var(name string) (string, bool) {
	v, ok := d.vars[name]
	return v, ok
}

// VarCount returns the number of live variables.
func (d *Document) VarCount() int { return len(d.vars) }

// AddClass adds a marker class.
func (d *Document) AddClass(name string) { d.classes[name] = struct{}{} }

// RemoveClass removes a marker class.
func (d *Document) RemoveClass(name string) { delete(d.classes, name) }

// HasClass reports whether a marker class is set.
func (d *Document) HasClass(name string) bool {
	_, ok := d.classes[name]
	return ok
}

// RemoveClassesWithPrefix removes every marker class starting with prefix
// and returns the removed names. Used to replace a previous theme marker.
func (d *Document) RemoveClassesWithPrefix(prefix string) []string {
	var removed []string
	for c := range d.classes {
		if strings.HasPrefix(c, prefix) {
			removed = append(removed, c)
			delete(d.classes, c)
		}
	}
	sort.Strings(removed)
	return removed
}

// Classes returns the marker classes sorted for stable output.
func (d *Document) Classes() []string {
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// ClassAttr renders the class attribute value for the document root.
func (d *Document) ClassAttr() string { return strings.Join(d.Classes(), " ") }

// SetStyleBlock injects (or replaces) a keyed raw-CSS block.
func (d *Document) SetStyleBlock(key, css string) { d.blocks[key] = css }

// RemoveStyleBlock removes a keyed style block.
func (d *Document) RemoveStyleBlock(key string) { delete(d.blocks, key) }

// StyleBlock returns a keyed style block and whether it exists.
func (d *Document) StyleBlock(key string) (string, bool) {
	css, ok := d.blocks[key]
	return css, ok
}

// StyleBlockKeys returns the injected block keys sorted for stable output.
func (d *Document) StyleBlockKeys() []string {
	out := make([]string, 0, len(d.blocks))
	for k := range d.blocks {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// VariableCSS renders the live variable table as a :root rule, variables
// in the fixed table order so output is deterministic.
func (d *Document) VariableCSS() string {
	if len(d.vars) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range VariableNames() {
		if v, ok := d.vars[name]; ok {
			b.WriteString("  ")
			b.WriteString(name)
			b.WriteString(": ")
			b.WriteString(v)
			b.WriteString(";\n")
		}
	}
	b.WriteString("}")
	return b.String()
}
