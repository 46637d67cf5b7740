package fields

// Catalog lists the permitted values for select-style fields. Fields without
// an entry accept any value.
type Catalog map[Field][]string

var colorShades = []string{"100", "200", "300", "400", "500", "600", "700", "800", "900"}

var colorHues = []string{"gray", "red", "orange", "yellow", "green", "teal", "blue", "indigo", "purple", "pink"}

// DefaultCatalog returns the stock values offered by the typography and
// background panels.
func DefaultCatalog() Catalog {
	colors := []string{"transparent", "current", "black", "white"}
	for _, hue := range colorHues {
		for _, shade := range colorShades {
			colors = append(colors, hue+"-"+shade)
		}
	}

	return Catalog{
		FontSize:        {"xs", "sm", "base", "lg", "xl", "2xl", "3xl", "4xl", "5xl", "6xl"},
		FontWeight:      {"hairline", "thin", "light", "normal", "medium", "semibold", "bold", "extrabold", "black"},
		TextTransform:   {"uppercase", "lowercase", "capitalize", "normal-case"},
		Leading:         {"none", "tight", "snug", "normal", "relaxed", "loose", "3", "4", "5", "6", "7", "8", "9", "10"},
		TextColor:       colors,
		BackgroundColor: append([]string(nil), colors...),
	}
}

// Values returns the permitted values for f, or nil when f is free-form.
func (c Catalog) Values(f Field) []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c[f]...)
}

// Allows reports whether value is acceptable for f.
func (c Catalog) Allows(f Field, value string) bool {
	values, ok := c[f]
	if !ok || len(values) == 0 {
		return true
	}
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Merge returns a copy of c with the entries from overrides replacing whole
// field lists.
func (c Catalog) Merge(overrides Catalog) Catalog {
	merged := make(Catalog, len(c)+len(overrides))
	for f, values := range c {
		merged[f] = append([]string(nil), values...)
	}
	for f, values := range overrides {
		merged[f] = append([]string(nil), values...)
	}
	return merged
}
