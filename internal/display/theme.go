package display

import "strings"

// Theme maps named colors to concrete color values.
type Theme struct {
	Name    string
	IsDark  bool
	Palette map[string]string
}

// Visualize returns the theme's value for a named color, or the input
// unchanged when it is not a palette name.
func (t Theme) Visualize(color string) string {
	if c, ok := t.Palette[strings.ToLower(color)]; ok {
		return c
	}

	return color
}

// DarkTheme returns the built-in dark theme.
func DarkTheme() Theme {
	return Theme{
		Name:   "dark",
		IsDark: true,
		Palette: map[string]string{
			"green":  "#73BF69",
			"red":    "#F2495C",
			"orange": "#FF9830",
			"yellow": "#FADE2A",
			"blue":   "#5794F2",
			"purple": "#B877D9",
			"text":   "#D8D9DA",
		},
	}
}

// LightTheme returns the built-in light theme.
func LightTheme() Theme {
	return Theme{
		Name: "light",
		Palette: map[string]string{
			"green":  "#56A64B",
			"red":    "#E02F44",
			"orange": "#FF780A",
			"yellow": "#F2CC0C",
			"blue":   "#3274D9",
			"purple": "#A352CC",
			"text":   "#464C54",
		},
	}
}

// ThemeByName returns the light theme for "light" and the dark theme
// otherwise.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, "light") {
		return LightTheme()
	}

	return DarkTheme()
}
