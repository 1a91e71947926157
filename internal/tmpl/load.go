package tmpl

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yuna/weekcard/internal/schema"
)

// templateFile is the on-disk YAML shape for custom templates.
type templateFile struct {
	Templates []templateDef `yaml:"templates"`
}

type templateDef struct {
	ID           string     `yaml:"id"`
	Name         string     `yaml:"name"`
	DefaultTheme string     `yaml:"default_theme"`
	Themes       []string   `yaml:"themes"`
	MultiEntry   bool       `yaml:"multi_entry"`
	Fields       []fieldDef `yaml:"fields"`
}

type fieldDef struct {
	Key         string   `yaml:"key"`
	Kind        string   `yaml:"kind"`
	Placeholder string   `yaml:"placeholder"`
	Required    bool     `yaml:"required"`
	MaxLength   int      `yaml:"max_length"`
	Options     []string `yaml:"options"`
	Default     any      `yaml:"default"`
	OfflineOnly bool     `yaml:"offline_only"`
}

// LoadFile reads custom template definitions from a YAML file. A missing
// file is not an error: most installs only use the built-ins.
func LoadFile(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read templates: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]Template, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	out := make([]Template, 0, len(tf.Templates))
	for _, def := range tf.Templates {
		if def.ID == "" {
			return nil, fmt.Errorf("template without id")
		}
		t := Template{
			ID:           def.ID,
			Name:         def.Name,
			DefaultTheme: def.DefaultTheme,
			Themes:       def.Themes,
			Schema:       schema.Schema{MultiEntry: def.MultiEntry},
		}
		if t.Name == "" {
			t.Name = def.ID
		}
		for _, f := range def.Fields {
			t.Schema.Fields = append(t.Schema.Fields, schema.Field{
				Key:          f.Key,
				Kind:         schema.Kind(f.Kind),
				Placeholder:  f.Placeholder,
				Required:     f.Required,
				MaxLength:    f.MaxLength,
				Options:      f.Options,
				DefaultValue: f.Default,
				OfflineOnly:  f.OfflineOnly,
			})
		}
		if err := schema.Validate(t.Schema); err != nil {
			return nil, fmt.Errorf("template %q: %w", def.ID, err)
		}
		if len(t.Themes) == 0 {
			t.Themes = []string{"mono"}
		}
		if t.DefaultTheme == "" {
			t.DefaultTheme = t.Themes[0]
		}
		out = append(out, t)
	}
	return out, nil
}
