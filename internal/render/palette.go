package render

import "slices"

// rdYlBu9 is the nine-class ColorBrewer RdYlBu diverging scheme, red first.
var rdYlBu9 = []string{
	"#d73027", "#f46d43", "#fdae61", "#fee090", "#ffffbf",
	"#e0f3f8", "#abd9e9", "#74add1", "#4575b4",
}

// Palette returns the cell colours ordered cold to hot (blue to red).
func Palette() []string {
	p := slices.Clone(rdYlBu9)
	slices.Reverse(p)
	return p
}
