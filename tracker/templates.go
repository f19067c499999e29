package tracker

import (
	_ "embed"
	"fmt"
	"sort"

	"minesafety/model"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

type TemplateItem struct {
	Task     string `yaml:"task" json:"task"`
	Category string `yaml:"category" json:"category"`
}

// Template is the ordered task list handed to a role each day.
type Template struct {
	Role  string
	items []TemplateItem
}

// Items returns a copy of the template entries.
func (t Template) Items() []TemplateItem {
	out := make([]TemplateItem, len(t.items))
	copy(out, t.items)
	return out
}

func (t Template) Len() int {
	return len(t.items)
}

// Decoded once during package initialization and never written again.
var templateTable = mustParseTemplates(templatesYAML)

func parseTemplates(raw []byte) (map[string]Template, error) {
	var decoded map[string][]TemplateItem
	if err := yaml.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode checklist templates: %w", err)
	}
	if len(decoded[model.RoleWorker]) == 0 {
		return nil, fmt.Errorf("checklist templates: %q template is required as fallback", model.RoleWorker)
	}

	table := make(map[string]Template, len(decoded))
	for role, items := range decoded {
		for i, item := range items {
			if item.Task == "" || item.Category == "" {
				return nil, fmt.Errorf("checklist templates: %s item %d is missing task or category", role, i)
			}
		}
		table[role] = Template{Role: role, items: items}
	}
	return table, nil
}

func mustParseTemplates(raw []byte) map[string]Template {
	table, err := parseTemplates(raw)
	if err != nil {
		panic(err)
	}
	return table
}

// LookupTemplate returns the template for role and whether the role has one.
func LookupTemplate(role string) (Template, bool) {
	tpl, ok := templateTable[role]
	return tpl, ok
}

// ResolveTemplate never fails: unrecognized roles get the worker template
// and recognized is false.
func ResolveTemplate(role string) (tpl Template, recognized bool) {
	if tpl, ok := LookupTemplate(role); ok {
		return tpl, true
	}
	return templateTable[model.RoleWorker], false
}

func TemplateRoles() []string {
	roles := make([]string, 0, len(templateTable))
	for role := range templateTable {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}
