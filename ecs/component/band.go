package component

import "github.com/jakecoffman/cp"

// Band is one obstacle segment. Top grows downward in world space and is
// negative while the band is still above the viewport.
type Band struct {
	Top    float64  `yaml:"top"`
	Height float64  `yaml:"height"`
	X      float64  `yaml:"x"`
	Width  float64  `yaml:"width"`
	Kind   BandKind `yaml:"kind"`
	Thin   bool     `yaml:"thin,omitempty"`

	Motion *Motion `yaml:"motion,omitempty"`
	Group  GroupID `yaml:"group,omitempty"`
	// Anchor marks the band that dependent orbs of Group track.
	Anchor bool `yaml:"anchor,omitempty"`
}

// Motion bounces a band horizontally. Min and Max bound X itself.
type Motion struct {
	Speed float64 `yaml:"speed"`
	Dir   float64 `yaml:"dir"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Bounds returns the band rectangle. cp.BB's B/T hold the top and bottom
// edges in screen order (B < T).
func (b *Band) Bounds() cp.BB {
	return cp.BB{L: b.X, B: b.Top, R: b.X + b.Width, T: b.Top + b.Height}
}

// Advance moves the band by dtMs milliseconds of travel, reversing at the
// range edges.
func (m *Motion) Advance(x, dtMs float64) float64 {
	if m == nil || m.Speed <= 0 {
		return x
	}
	if m.Dir == 0 {
		m.Dir = 1
	}
	next := x + m.Dir*m.Speed*dtMs/1000
	if next < m.Min {
		m.Dir = 1
		next = m.Min
	} else if next > m.Max {
		m.Dir = -1
		next = m.Max
	}
	return next
}
