package component

// GroupID names a motion group. The zero value means the entity belongs to
// no group.
type GroupID uint32

// Group ties dependent orbs to the band they track horizontally. Bands and
// orbs carrying the same GroupID are members; Anchor is the band whose X the
// orbs follow.
type Group struct {
	Anchor int
}
