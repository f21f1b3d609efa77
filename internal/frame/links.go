package frame

// LinkModel is a resolved data link ready for rendering.
type LinkModel struct {
	Href   string
	Title  string
	Target string
	// Origin is the field the link was configured on.
	Origin *Field
}

// ValueLinkConfig selects which value a link is evaluated for: either a row
// of the frame or a reduced value computed by the caller.
type ValueLinkConfig struct {
	ValueRowIndex   *int
	CalculatedValue *DisplayValue
}

// RowLink returns a ValueLinkConfig for the given row.
func RowLink(row int) ValueLinkConfig {
	return ValueLinkConfig{ValueRowIndex: &row}
}

// CalculatedLink returns a ValueLinkConfig for a reduced value.
func CalculatedLink(v DisplayValue) ValueLinkConfig {
	return ValueLinkConfig{CalculatedValue: &v}
}

// LinkSupplier resolves a field's links for a value context on demand.
type LinkSupplier func(cfg ValueLinkConfig) []LinkModel
