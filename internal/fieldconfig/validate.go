package fieldconfig

import "math"

// Validate restores the configuration invariants in place. It never writes
// through to threshold or color values shared with another configuration;
// corrected values are stored as fresh copies. Calling it again is a no-op.
func Validate(c *FieldConfig) {
	if c.Standard == nil {
		c.Standard = Values{}
	}

	thresholds := c.Thresholds()
	if thresholds != nil {
		thresholds = normalizeThresholds(thresholds)
		c.Standard[PathThresholds] = thresholds
	}

	color := c.Color()
	if color != nil && color.Mode == "" {
		delete(c.Standard, PathColor)
		color = nil
	}

	if color == nil {
		if thresholds != nil {
			c.Standard[PathColor] = &ColorConfig{Mode: ColorModeThresholds}
		}
	} else {
		fixed := *color
		if fixed.Mode == ColorModeScheme {
			if fixed.SchemeName == "" {
				fixed.SchemeName = DefaultSchemeName
			}
		} else {
			fixed.SchemeName = ""
		}

		c.Standard[PathColor] = &fixed
	}

	minV, hasMin := c.Min()
	maxV, hasMax := c.Max()

	if hasMin && hasMax && minV > maxV {
		c.Standard[PathMin] = maxV
		c.Standard[PathMax] = minV
	}
}

func normalizeThresholds(t *ThresholdsConfig) *ThresholdsConfig {
	out := t.Clone()
	if out.Mode == "" {
		out.Mode = ThresholdsModeAbsolute
	}

	if out.Steps == nil {
		out.Steps = []Threshold{}
	} else if len(out.Steps) > 0 {
		// The first step is the lower bound of everything.
		out.Steps[0].Value = math.Inf(-1)
	}

	return out
}
