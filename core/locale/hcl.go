package locale

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"quantify/core/unit"
	"quantify/internal/errors"
	"quantify/internal/logging"
)

// LoadHCLFile reads abbreviation overrides from an HCL file and registers
// them. The format groups units by culture and dimension, each attribute
// naming a unit and listing accepted abbreviations, preferred first:
//
//	culture "de-DE" {
//	  dimension "length" {
//	    meter = ["m", "Meter"]
//	  }
//	}
func (r *Registry) LoadHCLFile(path string) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return errors.Config(fmt.Sprintf("failed to parse %s", path), diags)
	}

	content, diags := file.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "culture", LabelNames: []string{"tag"}},
		},
	})
	if diags.HasErrors() {
		return errors.Config(fmt.Sprintf("invalid override file %s", path), diags)
	}

	registered := 0
	for _, block := range content.Blocks {
		tag, err := language.Parse(block.Labels[0])
		if err != nil {
			return errors.Config(fmt.Sprintf("invalid culture tag %q in %s", block.Labels[0], path), err)
		}
		n, err := r.loadCultureBlock(tag, block)
		if err != nil {
			return err
		}
		registered += n
	}

	logging.Debug("loaded abbreviation overrides",
		zap.String("path", path),
		zap.Int("entries", registered))
	return nil
}

func (r *Registry) loadCultureBlock(tag language.Tag, block *hcl.Block) (int, error) {
	content, diags := block.Body.Content(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "dimension", LabelNames: []string{"name"}},
		},
	})
	if diags.HasErrors() {
		return 0, errors.Config(fmt.Sprintf("invalid culture block %q", tag), diags)
	}

	registered := 0
	for _, dblock := range content.Blocks {
		d, ok := unit.DimensionByName(dblock.Labels[0])
		if !ok {
			return 0, errors.Newf(errors.TypeConfig, "unknown dimension %q", dblock.Labels[0])
		}

		attrs, diags := dblock.Body.JustAttributes()
		if diags.HasErrors() {
			return 0, errors.Config(fmt.Sprintf("invalid dimension block %q", dblock.Labels[0]), diags)
		}

		// attribute maps are unordered; sort for deterministic
		// first-match-wins behavior
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			raw, ok := unit.ByName(d, name)
			if !ok {
				return 0, errors.Newf(errors.TypeConfig, "unknown %s unit %q", d, name)
			}
			abbrs, err := stringList(attrs[name].Expr)
			if err != nil {
				return 0, errors.Config(fmt.Sprintf("invalid abbreviations for %s.%s", d, name), err)
			}
			r.Register(tag, d, raw, abbrs...)
			registered++
		}
	}
	return registered, nil
}

func stringList(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("expected a list of strings, got %s", val.Type().FriendlyName())
	}
	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		if ev.Type() != cty.String {
			return nil, fmt.Errorf("expected a string element, got %s", ev.Type().FriendlyName())
		}
		out = append(out, ev.AsString())
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("abbreviation list is empty")
	}
	return out, nil
}
