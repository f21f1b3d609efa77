package document

import (
	"fmt"

	"fieldoverrides/internal/diagnostic"
	"fieldoverrides/internal/matcher"
	"fieldoverrides/internal/registry"
	"fieldoverrides/internal/suggest"
)

// Validate checks a document against the given registries. Problems that
// make the frames unusable are errors; references resolution would skip
// (unknown matcher or property ids) are warnings.
func Validate(doc *Document, props *registry.Registry, matchers *matcher.Registry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if doc == nil {
		res.AddError("document_is_nil", "document is nil", "", "")
		return res
	}

	if props == nil {
		props = registry.Standard()
	}

	if matchers == nil {
		matchers = matcher.Standard()
	}

	if doc.Version != CurrentVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported version %q, expected %q", doc.Version, CurrentVersion), "", "version")
	}

	for i := range doc.Frames {
		validateFrame(res, i, &doc.Frames[i])
	}

	if doc.FieldConfig != nil {
		validateOverrides(res, doc, props, matchers)
	}

	return res
}

func validateFrame(res *diagnostic.Diagnostics, index int, fs *FrameSpec) {
	seen := map[string]struct{}{}

	for j := range fs.Fields {
		f := &fs.Fields[j]
		path := fmt.Sprintf("frames[%d].fields[%d]", index, j)

		if f.Type != "" && !f.Type.IsValid() {
			res.AddError(diagnostic.CodeInvalidFieldType,
				fmt.Sprintf("invalid field type %q", f.Type), "", path+".type")
		}

		if j > 0 && len(f.Values) != len(fs.Fields[0].Values) {
			res.AddError(diagnostic.CodeFieldLength,
				fmt.Sprintf("field has %d values, expected %d", len(f.Values), len(fs.Fields[0].Values)),
				"", path+".values")
		}

		if f.Name == "" {
			continue
		}

		if _, dup := seen[f.Name]; dup {
			res.AddWarning(diagnostic.CodeDuplicateFieldName,
				fmt.Sprintf("duplicate field name %q", f.Name), "", path+".name")
		}

		seen[f.Name] = struct{}{}
	}
}

func validateOverrides(
	res *diagnostic.Diagnostics,
	doc *Document,
	props *registry.Registry,
	matchers *matcher.Registry,
) {
	for i, rule := range doc.FieldConfig.Overrides {
		ruleName := fmt.Sprintf("overrides[%d]", i)

		if _, ok := matchers.Get(rule.Matcher.ID); !ok {
			res.AddWarning(diagnostic.CodeUnknownMatcher,
				fmt.Sprintf("unknown matcher %q, rule has no effect", rule.Matcher.ID),
				ruleName, "matcher.id",
				suggest.Closest(rule.Matcher.ID, matchers.IDs(), 0)...)
		} else if _, err := matchers.Compile(rule.Matcher); err != nil {
			res.AddError(diagnostic.CodeInvalidMatcher, err.Error(), ruleName, "matcher.options")
		}

		for j, p := range rule.Properties {
			if _, ok := props.Get(p.ID); ok {
				continue
			}

			res.AddWarning(diagnostic.CodeUnknownProperty,
				fmt.Sprintf("unknown property %q, assignment has no effect", p.ID),
				ruleName, fmt.Sprintf("properties[%d].id", j),
				suggest.Closest(p.ID, props.IDs(), 0)...)
		}
	}
}
