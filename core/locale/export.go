package locale

import (
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"quantify/core/unit"
)

// Export is a serializable snapshot of the abbreviations a culture sees
// after fallback merging. Useful for inspecting override files and diffing
// cultures.
type Export struct {
	Culture    string            `yaml:"culture"`
	Dimensions []ExportDimension `yaml:"dimensions"`
}

// ExportDimension groups exported units by dimension
type ExportDimension struct {
	Name  string       `yaml:"name"`
	Units []ExportUnit `yaml:"units"`
}

// ExportUnit lists the abbreviations accepted for one unit
type ExportUnit struct {
	Name          string   `yaml:"name"`
	Preferred     string   `yaml:"preferred"`
	Abbreviations []string `yaml:"abbreviations"`
}

// Export captures the merged view for a culture
func (r *Registry) Export(tag language.Tag) Export {
	v := r.View(tag)
	doc := Export{Culture: tag.String()}
	for _, d := range unit.Dimensions() {
		dim := ExportDimension{Name: d.String()}
		accepted := v.Abbreviations(d)
		for raw := uint8(1); int(raw) <= unit.Count(d); raw++ {
			dim.Units = append(dim.Units, ExportUnit{
				Name:          unit.NameOf(d, raw),
				Preferred:     r.Abbreviation(tag, d, raw),
				Abbreviations: accepted[raw],
			})
		}
		doc.Dimensions = append(doc.Dimensions, dim)
	}
	return doc
}

// ExportYAML renders the merged view for a culture as YAML
func (r *Registry) ExportYAML(tag language.Tag) ([]byte, error) {
	return yaml.Marshal(r.Export(tag))
}
