package overrides

import (
	"fmt"
	"maps"

	"go.uber.org/zap"

	"fieldoverrides/internal/diagnostic"
	"fieldoverrides/internal/display"
	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
	"fieldoverrides/internal/links"
	"fieldoverrides/internal/matcher"
	"fieldoverrides/internal/registry"
	"fieldoverrides/internal/stats"
	"fieldoverrides/internal/suggest"
	"fieldoverrides/internal/urlutil"
	"fieldoverrides/internal/vars"
)

// Options holds the inputs of a resolution call. Only Data and FieldConfig
// are required; every collaborator has a default.
type Options struct {
	Data        []*frame.Frame
	FieldConfig *fieldconfig.Source

	// ReplaceVariables defaults to vars.Interpolate.
	ReplaceVariables vars.InterpolateFunc
	Theme            display.Theme
	TimeZone         string
	// AutoMinMax fills a missing min/max of numeric fields with the range
	// of every numeric value in Data.
	AutoMinMax bool

	// Registry defaults to registry.Standard().
	Registry *registry.Registry
	// Matchers defaults to matcher.Standard().
	Matchers *matcher.Registry
	// Reducer defaults to stats.Default.
	Reducer stats.Reducer
	// Display defaults to display.NewProcessor.
	Display display.Factory
	// Locator defaults to urlutil.Static{}.
	Locator urlutil.Locator

	Logger *zap.Logger
	// Diagnostics receives a warning per skipped rule or property when set.
	Diagnostics *diagnostic.Diagnostics
}

// compiledRule is an override rule with its matcher resolved.
type compiledRule struct {
	index      int
	match      matcher.Predicate
	properties []fieldconfig.DynamicConfigValue
}

// Resolver applies a field configuration source to frames.
type Resolver struct {
	opts  Options
	rules []compiledRule
}

// NewResolver fills the defaults of opts and compiles the override rules.
// Rules with an unknown matcher id or rejected options are dropped.
func NewResolver(opts Options) *Resolver {
	if opts.ReplaceVariables == nil {
		opts.ReplaceVariables = vars.Interpolate
	}

	if opts.Registry == nil {
		opts.Registry = registry.Standard()
	}

	if opts.Matchers == nil {
		opts.Matchers = matcher.Standard()
	}

	if opts.Reducer == nil {
		opts.Reducer = stats.Default
	}

	if opts.Display == nil {
		opts.Display = display.NewProcessor
	}

	if opts.Locator == nil {
		opts.Locator = urlutil.Static{}
	}

	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Theme.Name == "" {
		opts.Theme = display.DarkTheme()
	}

	r := &Resolver{opts: opts}
	r.compileRules()

	return r
}

func (r *Resolver) compileRules() {
	if r.opts.FieldConfig == nil {
		return
	}

	for i, rule := range r.opts.FieldConfig.Overrides {
		ruleName := fmt.Sprintf("overrides[%d]", i)

		pred, err := r.opts.Matchers.Compile(rule.Matcher)
		if err != nil {
			r.opts.Logger.Debug("override rule dropped",
				zap.Int("rule", i),
				zap.String("matcher", rule.Matcher.ID),
				zap.Error(err))
			r.reportMatcher(ruleName, rule.Matcher, err)

			continue
		}

		for j, prop := range rule.Properties {
			if _, ok := r.opts.Registry.Get(prop.ID); ok {
				continue
			}

			r.opts.Logger.Debug("unknown override property",
				zap.Int("rule", i),
				zap.String("property", prop.ID))

			if r.opts.Diagnostics != nil {
				r.opts.Diagnostics.AddWarning(diagnostic.CodeUnknownProperty,
					fmt.Sprintf("unknown property %q", prop.ID),
					ruleName, fmt.Sprintf("properties[%d].id", j),
					suggest.Closest(prop.ID, r.opts.Registry.IDs(), 0)...)
			}
		}

		r.rules = append(r.rules, compiledRule{
			index:      i,
			match:      pred,
			properties: rule.Properties,
		})
	}
}

func (r *Resolver) reportMatcher(ruleName string, cfg fieldconfig.MatcherConfig, err error) {
	if r.opts.Diagnostics == nil {
		return
	}

	if _, known := r.opts.Matchers.Get(cfg.ID); known {
		r.opts.Diagnostics.AddWarning(diagnostic.CodeInvalidMatcher, err.Error(), ruleName, "matcher.options")
		return
	}

	r.opts.Diagnostics.AddWarning(diagnostic.CodeUnknownMatcher,
		fmt.Sprintf("unknown matcher %q", cfg.ID),
		ruleName, "matcher.id",
		suggest.Closest(cfg.ID, r.opts.Matchers.IDs(), 0)...)
}

// Resolve returns new frames with every field resolved. Without data it
// returns an empty slice; without a field configuration source it returns
// the input frames as they are.
func (r *Resolver) Resolve() []*frame.Frame {
	if len(r.opts.Data) == 0 {
		return []*frame.Frame{}
	}

	if r.opts.FieldConfig == nil {
		return r.opts.Data
	}

	p := &pass{Resolver: r}
	out := make([]*frame.Frame, 0, len(r.opts.Data))

	for i, f := range r.opts.Data {
		if f == nil {
			continue
		}

		out = append(out, p.resolveFrame(i, f))
	}

	return out
}

// ApplyFieldOverrides resolves opts.Data against opts.FieldConfig.
func ApplyFieldOverrides(opts Options) []*frame.Frame {
	return NewResolver(opts).Resolve()
}

// pass is the state of a single Resolve call.
type pass struct {
	*Resolver

	globalRange *GlobalMinMax
}

// rangeOf computes the global numeric range once per pass.
func (p *pass) rangeOf() GlobalMinMax {
	if p.globalRange == nil {
		r := FindNumericFieldMinMax(p.opts.Data, p.opts.Reducer)
		p.globalRange = &r
	}

	return *p.globalRange
}

func (p *pass) resolveFrame(index int, in *frame.Frame) *frame.Frame {
	name := in.Name
	if name == "" {
		name = fmt.Sprintf("Series[%d]", index)
	}

	out := &frame.Frame{
		Name:   name,
		RefID:  in.RefID,
		Meta:   maps.Clone(in.Meta),
		Fields: make([]*frame.Field, 0, len(in.Fields)),
	}

	for j, field := range in.Fields {
		if field == nil {
			continue
		}

		out.Fields = append(out.Fields, p.resolveField(index, out, j, field))
	}

	return out
}

func (p *pass) resolveField(frameIndex int, out *frame.Frame, index int, field *frame.Field) *frame.Field {
	name := field.Name
	if name == "" {
		name = fmt.Sprintf("Field[%d]", index)
	}

	scoped := vars.ScopedVars{
		vars.SeriesVar: {Text: "Series", Value: map[string]any{"name": out.Name}},
		vars.FieldVar:  {Text: "Field", Value: map[string]any{"name": name}},
	}

	cfg := field.Config.Clone()
	cfg.ScopedVars = scoped

	ctx := &registry.Context{
		Field:            field,
		Data:             p.opts.Data,
		FrameIndex:       frameIndex,
		ReplaceVariables: p.opts.ReplaceVariables,
		ScopedVars:       scoped,
	}

	SetFieldConfigDefaults(&cfg, &p.opts.FieldConfig.Defaults, ctx, p.opts.Registry)

	for _, rule := range p.rules {
		if !rule.match(field) {
			continue
		}

		for _, prop := range rule.properties {
			if !SetDynamicConfigValue(&cfg, prop, ctx, p.opts.Registry) {
				p.opts.Logger.Debug("override property skipped",
					zap.Int("rule", rule.index),
					zap.String("property", prop.ID),
					zap.String("field", name))
			}
		}
	}

	typ := field.Type
	if typ == "" || typ == frame.FieldTypeOther {
		if guessed, ok := frame.GuessFieldType(field); ok {
			typ = guessed
		}
	}

	applyUnitRange(&cfg)

	if p.opts.AutoMinMax && typ == frame.FieldTypeNumber {
		p.applyAutoRange(&cfg)
	}

	fieldconfig.Validate(&cfg)

	resolved := &frame.Field{
		Name:   name,
		Type:   typ,
		Labels: maps.Clone(field.Labels),
		Config: cfg,
		Values: field.Values,
	}

	resolved.Display = p.opts.Display(display.Options{
		Field:    resolved,
		Theme:    p.opts.Theme,
		TimeZone: p.opts.TimeZone,
	})
	resolved.GetLinks = links.NewSupplier(out, resolved, scoped, links.Options{
		ReplaceVariables: p.opts.ReplaceVariables,
		Locator:          p.opts.Locator,
		Display:          p.opts.Display,
		Theme:            p.opts.Theme,
		TimeZone:         p.opts.TimeZone,
	})

	return resolved
}

// applyUnitRange sets the range implied by percent units when not set.
func applyUnitRange(cfg *fieldconfig.FieldConfig) {
	var lo, hi float64

	switch cfg.Unit() {
	case "percent":
		lo, hi = 0, 100
	case "percentunit":
		lo, hi = 0, 1
	default:
		return
	}

	if _, ok := cfg.Min(); !ok {
		cfg.SetMin(lo)
	}

	if _, ok := cfg.Max(); !ok {
		cfg.SetMax(hi)
	}
}

func (p *pass) applyAutoRange(cfg *fieldconfig.FieldConfig) {
	_, hasMin := cfg.Min()
	_, hasMax := cfg.Max()

	if hasMin && hasMax {
		return
	}

	global := p.rangeOf()
	if global.IsEmpty() {
		return
	}

	if !hasMin {
		cfg.SetMin(global.Min)
	}

	if !hasMax {
		cfg.SetMax(global.Max)
	}
}
