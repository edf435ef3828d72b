package component

import "github.com/jakecoffman/cp"

// Orb is a collectible that only a player in Required phase can take.
type Orb struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	R        float64 `yaml:"r"`
	Required Phase   `yaml:"required"`
	// Visual picks the render color; it always matches Required.
	Visual Phase   `yaml:"visual"`
	Taken  bool    `yaml:"-"`
	Follow *Follow `yaml:"follow,omitempty"`
}

// Follow pins an orb's X to its group's anchor band.
type Follow struct {
	Group   GroupID `yaml:"group"`
	OffsetX float64 `yaml:"offset_x"`
}

func (o *Orb) Pos() cp.Vector {
	return cp.Vector{X: o.X, Y: o.Y}
}
