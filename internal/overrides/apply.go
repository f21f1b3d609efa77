package overrides

import (
	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/registry"
)

// SetFieldConfigDefaults fills every property of cfg that is still unset
// from defaults. Set properties are never overwritten. The configuration
// is validated afterwards.
func SetFieldConfigDefaults(
	cfg *fieldconfig.FieldConfig,
	defaults *fieldconfig.FieldConfig,
	ctx *registry.Context,
	reg *registry.Registry,
) {
	if defaults != nil {
		for _, prop := range reg.List() {
			info := prop.Info()
			if cfg.IsSet(info.Path, info.IsCustom) {
				continue
			}

			if !prop.ShouldApply(ctx.Field) {
				continue
			}

			raw, _ := defaults.Get(info.Path, info.IsCustom)
			if raw == nil {
				continue
			}

			if val := prop.Process(raw, ctx); val != nil {
				cfg.Set(info.Path, info.IsCustom, val)
			}
		}
	}

	fieldconfig.Validate(cfg)
}

// SetDynamicConfigValue applies one override assignment to cfg. A
// processed value of nil removes the property. It returns false when the
// property is unknown or does not apply to the field.
func SetDynamicConfigValue(
	cfg *fieldconfig.FieldConfig,
	value fieldconfig.DynamicConfigValue,
	ctx *registry.Context,
	reg *registry.Registry,
) bool {
	prop, ok := reg.Get(value.ID)
	if !ok || !prop.ShouldApply(ctx.Field) {
		return false
	}

	info := prop.Info()

	val := prop.Process(value.Value, ctx)
	if val == nil {
		cfg.Unset(info.Path, info.IsCustom)
		return true
	}

	cfg.Set(info.Path, info.IsCustom, val)

	return true
}
