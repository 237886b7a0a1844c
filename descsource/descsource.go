// Package descsource implements the description-provider collaborator
// consumed by DESC expressions: a lookup from mod name to its
// human-readable description, loaded from a YAML document.
package descsource

import (
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/duron27/plox/rules"
)

// document mirrors the on-disk YAML shape:
//
//	descriptions:
//	  some mod.esp: "an old compatibility patch, superseded by..."
type document struct {
	Descriptions map[string]string `yaml:"descriptions"`
}

// Provider resolves mod descriptions case-insensitively.
type Provider struct {
	byName map[string]string
}

var _ rules.DescriptionProvider = Provider{}

func (p Provider) Description(mod string) (string, bool) {
	desc, ok := p.byName[strings.ToLower(mod)]
	return desc, ok
}

// FromYAML parses data as a descriptions document.
func FromYAML(data []byte) (Provider, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Provider{}, err
	}

	byName := make(map[string]string, len(doc.Descriptions))
	for name, desc := range doc.Descriptions {
		byName[strings.ToLower(name)] = desc
	}
	return Provider{byName: byName}, nil
}

// Load reads and parses the descriptions document at path within fsys.
func Load(fsys fs.FS, path string) (Provider, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Provider{}, err
	}
	return FromYAML(data)
}
