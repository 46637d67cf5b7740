package fields

import (
	"strings"

	designerrors "github.com/alexisbeaulieu97/designtools/pkg/errors"
)

// Field identifies a style property the inspector can edit.
type Field string

const (
	Width           Field = "width"
	MinWidth        Field = "minWidth"
	Height          Field = "height"
	MinHeight       Field = "minHeight"
	MarginTop       Field = "marginTop"
	MarginRight     Field = "marginRight"
	MarginBottom    Field = "marginBottom"
	MarginLeft      Field = "marginLeft"
	PaddingTop      Field = "paddingTop"
	PaddingRight    Field = "paddingRight"
	PaddingBottom   Field = "paddingBottom"
	PaddingLeft     Field = "paddingLeft"
	FontSize        Field = "fontSize"
	FontWeight      Field = "fontWeight"
	TextColor       Field = "textColor"
	TextTransform   Field = "textTransform"
	Leading         Field = "leading"
	BackgroundColor Field = "backgroundColor"
)

// allFields is the closed set, in panel order.
var allFields = []Field{
	Width, MinWidth, Height, MinHeight,
	MarginTop, MarginRight, MarginBottom, MarginLeft,
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft,
	FontSize, FontWeight, TextColor, TextTransform, Leading,
	BackgroundColor,
}

// All returns every known field in panel order.
func All() []Field {
	return append([]Field(nil), allFields...)
}

// Valid reports whether f belongs to the closed set.
func (f Field) Valid() bool {
	for _, known := range allFields {
		if f == known {
			return true
		}
	}
	return false
}

func (f Field) String() string {
	return string(f)
}

// Parse resolves a field name, accepting surrounding whitespace.
func Parse(name string) (Field, error) {
	f := Field(strings.TrimSpace(name))
	if !f.Valid() {
		return "", designerrors.NewFieldError(string(f), nil)
	}
	return f, nil
}
