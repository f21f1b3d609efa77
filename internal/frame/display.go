package frame

// DisplayValue is the rendered form of a single raw value.
type DisplayValue struct {
	Text    string
	Numeric float64
	Prefix  string
	Suffix  string
	Color   string
	Title   string
}

// String joins prefix, text and suffix.
func (v DisplayValue) String() string {
	return v.Prefix + v.Text + v.Suffix
}

// DisplayProcessor converts a raw value into its display form.
type DisplayProcessor func(value any) DisplayValue
