// Package normalize maps loosely-typed Notion property values onto stable
// internal values. The store schema is user-editable, so property names and
// types drift between deployments; every helper here is total and degrades
// to a zero value or a declared default instead of failing.
package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

// Kind identifies which property payload a candidate expects.
type Kind int

const (
	KindTitle Kind = iota
	KindText       // rich_text
	KindSelect
	KindStatus
	KindURL
	KindDate
	KindNumber
	KindFiles
	KindEmail
)

// Candidate is one (property name, expected kind) pair in a fallback chain.
type Candidate struct {
	Property string
	Kind     Kind
}

// FieldShape declares how one logical field is extracted: candidates are
// tried in order and the first non-empty extraction wins, else Default.
type FieldShape struct {
	Candidates []Candidate
	Default    string
}

// Cand builds one candidate.
func Cand(property string, kind Kind) Candidate {
	return Candidate{Property: property, Kind: kind}
}

// Shape builds a FieldShape from a default value and its candidates.
func Shape(def string, cands ...Candidate) FieldShape {
	return FieldShape{Candidates: cands, Default: def}
}

// PlainText concatenates the plain-text content of rich-text runs in order.
// Formatting and links are discarded. Nil input yields "".
func PlainText(rt []notionapi.RichText) string {
	if len(rt) == 0 {
		return ""
	}
	var b strings.Builder
	for _, run := range rt {
		b.WriteString(run.PlainText)
	}
	return b.String()
}

// FirstFileURL resolves the first entry of a file-list property to a URL.
// Externally-hosted and store-hosted entries produce the same output shape;
// empty or malformed lists yield "".
func FirstFileURL(files []notionapi.File) string {
	if len(files) == 0 {
		return ""
	}
	f := files[0]
	if f.External != nil {
		return f.External.URL
	}
	if f.File != nil {
		return f.File.URL
	}
	return ""
}

// Field evaluates a FieldShape against a record's properties. Absence and
// type mismatch are indistinguishable: both skip to the next candidate.
func Field(props notionapi.Properties, shape FieldShape) string {
	for _, cand := range shape.Candidates {
		prop, ok := props[cand.Property]
		if !ok || prop == nil {
			continue
		}
		if v := extract(prop, cand.Kind); v != "" {
			return v
		}
	}
	return shape.Default
}

func extract(prop notionapi.Property, kind Kind) string {
	switch kind {
	case KindTitle:
		if p, ok := prop.(*notionapi.TitleProperty); ok {
			return PlainText(p.Title)
		}
	case KindText:
		if p, ok := prop.(*notionapi.RichTextProperty); ok {
			return PlainText(p.RichText)
		}
	case KindSelect:
		if p, ok := prop.(*notionapi.SelectProperty); ok {
			return p.Select.Name
		}
	case KindStatus:
		if p, ok := prop.(*notionapi.StatusProperty); ok {
			return p.Status.Name
		}
	case KindURL:
		if p, ok := prop.(*notionapi.URLProperty); ok {
			return p.URL
		}
	case KindDate:
		if p, ok := prop.(*notionapi.DateProperty); ok {
			if p.Date != nil && p.Date.Start != nil {
				return time.Time(*p.Date.Start).Format(time.RFC3339)
			}
		}
	case KindNumber:
		if p, ok := prop.(*notionapi.NumberProperty); ok {
			if p.Number == 0 {
				return ""
			}
			return strconv.FormatFloat(p.Number, 'f', -1, 64)
		}
	case KindFiles:
		if p, ok := prop.(*notionapi.FilesProperty); ok {
			return FirstFileURL(p.Files)
		}
	case KindEmail:
		if p, ok := prop.(*notionapi.EmailProperty); ok {
			return p.Email
		}
	}
	return ""
}

// Tags resolves a tag set: the first named property carrying a non-empty
// multi-select wins; a single select is boxed into a one-element set.
func Tags(props notionapi.Properties, names ...string) []string {
	for _, name := range names {
		p, ok := props[name].(*notionapi.MultiSelectProperty)
		if !ok || len(p.MultiSelect) == 0 {
			continue
		}
		tags := make([]string, 0, len(p.MultiSelect))
		for _, opt := range p.MultiSelect {
			tags = append(tags, opt.Name)
		}
		return tags
	}
	for _, name := range names {
		if p, ok := props[name].(*notionapi.SelectProperty); ok && p.Select.Name != "" {
			return []string{p.Select.Name}
		}
	}
	return nil
}

// Checked reports whether any of the named checkbox properties is true.
func Checked(props notionapi.Properties, names ...string) bool {
	for _, name := range names {
		if p, ok := props[name].(*notionapi.CheckboxProperty); ok && p.Checkbox {
			return true
		}
	}
	return false
}

// NumberOr reads a numeric property, falling back when absent or retyped.
func NumberOr(props notionapi.Properties, name string, fallback float64) float64 {
	if p, ok := props[name].(*notionapi.NumberProperty); ok && p.Number != 0 {
		return p.Number
	}
	return fallback
}
