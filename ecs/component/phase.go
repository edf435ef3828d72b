package component

// Phase is the player's current material state.
type Phase uint8

const (
	PhaseSolid Phase = iota
	PhaseGhost
)

func (p Phase) Opposite() Phase {
	if p == PhaseSolid {
		return PhaseGhost
	}
	return PhaseSolid
}

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "SOLID"
	case PhaseGhost:
		return "GHOST"
	default:
		return "UNKNOWN"
	}
}

// MarshalYAML writes phases by name.
func (p Phase) MarshalYAML() (any, error) {
	return p.String(), nil
}

// BandKind decides which phase, if any, may pass through a band.
type BandKind uint8

const (
	BandSolid BandKind = iota
	BandGhost
	BandNeutral
)

// KindFor returns the band kind that lets phase p through.
func KindFor(p Phase) BandKind {
	if p == PhaseGhost {
		return BandGhost
	}
	return BandSolid
}

// Passable reports whether a player in phase p can overlap the band.
// Neutral bands block every phase.
func (k BandKind) Passable(p Phase) bool {
	switch k {
	case BandSolid:
		return p == PhaseSolid
	case BandGhost:
		return p == PhaseGhost
	default:
		return false
	}
}

func (k BandKind) String() string {
	switch k {
	case BandSolid:
		return "SOLID"
	case BandGhost:
		return "GHOST"
	case BandNeutral:
		return "NEUTRAL"
	default:
		return "UNKNOWN"
	}
}

func (k BandKind) MarshalYAML() (any, error) {
	return k.String(), nil
}
