package mapview

import "fmt"

// Preset is a fixed basemap, projection and center triple for the map
// surface
type Preset struct {
	Name    string
	Basemap string
	CRS     string
	Center  [2]float64 // lat, lon
	Zoom    int
}

// Named presets for the supported map configurations
const (
	GlobalPreset     = "global"
	NorthPolarPreset = "north"
	SouthPolarPreset = "south"
)

var presets = map[string]Preset{
	GlobalPreset: {
		Name:    GlobalPreset,
		Basemap: "Esri.WorldImagery",
		CRS:     "EPSG:3857",
		Center:  [2]float64{0, 0},
		Zoom:    3,
	},
	NorthPolarPreset: {
		Name:    NorthPolarPreset,
		Basemap: "NASAGIBS.BlueMarble3413",
		CRS:     "EPSG:3413",
		Center:  [2]float64{90, 0},
		Zoom:    3,
	},
	SouthPolarPreset: {
		Name:    SouthPolarPreset,
		Basemap: "NASAGIBS.BlueMarble3031",
		CRS:     "EPSG:3031",
		Center:  [2]float64{-90, 0},
		Zoom:    3,
	},
}

// PresetFor returns the preset registered under the given configuration key
func PresetFor(name string) (Preset, error) {
	preset, ok := presets[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown map preset: %q", name)
	}
	return preset, nil
}
