package configdef

import (
	"fmt"
	"strings"
)

// FieldDoc is the exported documentation record for one field, used by the
// CLI to render the configuration reference.
type FieldDoc struct {
	Key        string `json:"key"`
	Type       string `json:"type"`
	Required   bool   `json:"required"`
	Default    string `json:"default,omitempty"`
	Importance string `json:"importance"`
	Group      string `json:"group,omitempty"`
	Display    string `json:"display,omitempty"`
	Doc        string `json:"doc,omitempty"`
}

// Documentation returns one record per field in rendering order.
func (r *Registry) Documentation() []FieldDoc {
	docs := make([]FieldDoc, 0, len(r.declared))
	for _, key := range r.Keys() {
		f := r.fields[key]
		docs = append(docs, FieldDoc{
			Key:        f.Key,
			Type:       f.Type.String(),
			Required:   f.Required,
			Default:    defaultString(f),
			Importance: f.Importance.String(),
			Group:      f.Group,
			Display:    f.DisplayName,
			Doc:        f.Doc,
		})
	}
	return docs
}

// RenderMarkdown renders the configuration reference as one markdown table
// per group.
func (r *Registry) RenderMarkdown() string {
	var b strings.Builder
	for _, group := range r.groupOrder {
		if group != "" {
			fmt.Fprintf(&b, "## %s\n\n", group)
		}
		b.WriteString("| Key | Type | Default | Importance | Description |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, key := range r.groupKeys(group) {
			f := r.fields[key]
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s | %s |\n",
				f.Key, f.Type, defaultCell(f), f.Importance, markdownCell(f.Doc))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func defaultString(f Field) string {
	if f.Required {
		return ""
	}
	switch v := f.Default.(type) {
	case nil:
		return "null"
	case *Password:
		// Password defaults are only ever nil in practice; redact anyway.
		return v.String()
	case []string:
		return strings.Join(v, ",")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func defaultCell(f Field) string {
	if f.Required {
		return "(required)"
	}
	s := defaultString(f)
	if s == "" {
		return `""`
	}
	return s
}

func markdownCell(doc string) string {
	return strings.ReplaceAll(strings.ReplaceAll(doc, "\n", " "), "|", "\\|")
}
