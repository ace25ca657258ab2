package render

import (
	"math"
	"strconv"
)

// Options control presentation knobs that are configuration, not data.
type Options struct {
	MarkerSize int
	ColorScale string
}

// DefaultOptions matches the original dashboard's appearance.
func DefaultOptions() Options {
	return Options{MarkerSize: 5, ColorScale: "Viridis"}
}

// jsonFloat marshals NaN and infinities as null. encoding/json rejects them
// outright, while Plotly treats null as a gap.
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'g', -1, 64), nil
}

// Figure is a Plotly figure: one scatter3d trace plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is the scatter3d series the graph renders.
type Trace struct {
	Type      string      `json:"type"`
	Mode      string      `json:"mode"`
	X         []jsonFloat `json:"x"`
	Y         []jsonFloat `json:"y"`
	Z         []jsonFloat `json:"z"`
	Marker    Marker      `json:"marker"`
	Text      []string    `json:"text"`
	HoverInfo string      `json:"hoverinfo"`
}

// Marker styles the points and drives the continuous color scale.
type Marker struct {
	Size       int         `json:"size"`
	Color      []jsonFloat `json:"color"`
	ColorScale string      `json:"colorscale"`
	ShowScale  bool        `json:"showscale"`
	CMin       jsonFloat   `json:"cmin"`
	CMax       jsonFloat   `json:"cmax"`
}

// Layout mirrors the original dashboard's scene titling and margins.
type Layout struct {
	Title  string `json:"title"`
	Scene  Scene  `json:"scene"`
	Margin Margin `json:"margin"`
}

type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

type Axis struct {
	Title string `json:"title"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	B int `json:"b"`
	T int `json:"t"`
}

// NewFigure wraps a point cloud in the Plotly figure the dashboard renders.
// An empty point cloud produces a valid figure with zero points, which the
// graph displays as empty axes rather than an error.
func NewFigure(pc PointCloud, opts Options) Figure {
	return Figure{
		Data: []Trace{{
			Type: "scatter3d",
			Mode: "markers",
			X:    toJSONFloats(pc.X),
			Y:    toJSONFloats(pc.Y),
			Z:    toJSONFloats(pc.Z),
			Marker: Marker{
				Size:       opts.MarkerSize,
				Color:      toJSONFloats(pc.Color),
				ColorScale: opts.ColorScale,
				ShowScale:  true,
				CMin:       jsonFloat(pc.ColorMin),
				CMax:       jsonFloat(pc.ColorMax),
			},
			Text:      pc.Text,
			HoverInfo: "text",
		}},
		Layout: Layout{
			Title: "3D Geomagnetic Storm Data",
			Scene: Scene{
				XAxis: Axis{Title: "BX (nT)"},
				YAxis: Axis{Title: "BY (nT)"},
				ZAxis: Axis{Title: "BZ (nT)"},
			},
			Margin: Margin{L: 0, R: 0, B: 0, T: 40},
		},
	}
}

func toJSONFloats(vs []float64) []jsonFloat {
	out := make([]jsonFloat, len(vs))
	for i, v := range vs {
		out[i] = jsonFloat(v)
	}
	return out
}
