package geom

// Palette is an ordered list of hex colors cycled by index.
type Palette []string

// At returns the color for index i, cycling past the end.
// An empty palette returns the empty string.
func (p Palette) At(i int) string {
	if len(p) == 0 {
		return ""
	}
	if i < 0 {
		i = -i
	}
	return p[i%len(p)]
}

// Default is the fallback palette applied when a point carries no color.
var Default Palette

func init() {
	Default = splitColorString("4f46e510b981f59e0bef44448b5cf606b6d4ec489984cc16f973166366f1")
}

// splitColorString expands a packed run of 6-digit hex codes into a palette.
func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
