package mapview

// Palette is the fixed set of layer colors, cycled when a result set spans
// more collections than the palette has entries
var Palette = []string{
	"#1f77b4",
	"#ff7f0e",
	"#2ca02c",
	"#d62728",
	"#9467bd",
	"#8c564b",
	"#e377c2",
	"#7f7f7f",
	"#bcbd22",
	"#17becf",
}

// ColorFor returns the palette color for the i-th collection group
func ColorFor(i int) string {
	return Palette[i%len(Palette)]
}
