package nutrition

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// Preset is a named food whose composition can be applied in one step.
type Preset struct {
	Name    string
	Cal100  float64
	Fat100  float64
	Carb100 float64
	Prot100 float64
}

var presets = []Preset{
	{Name: "Corn cakes", Cal100: 400, Fat100: 1.8, Carb100: 64, Prot100: 7.4},
	{Name: "Avocado", Cal100: 160, Fat100: 15, Carb100: 9, Prot100: 2},
	{Name: "Banana", Cal100: 89, Fat100: 0.3, Carb100: 23, Prot100: 1.1},
	{Name: "Olive oil (100g)", Cal100: 884, Fat100: 100, Carb100: 0, Prot100: 0},
}

// Presets returns the fixed preset list in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// Slug returns a kebab-case handle for the preset, e.g. "olive-oil".
// Parenthesised qualifiers are dropped.
func (p Preset) Slug() string {
	name := p.Name
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strcase.ToKebab(strings.TrimSpace(name))
}

// FindPreset looks a preset up by exact name (case-insensitive) or slug.
func FindPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, false
	}
	slug := strcase.ToKebab(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) || p.Slug() == slug {
			return p, true
		}
	}
	return Preset{}, false
}
