package card

import "fmt"

// NoOverlay marks a Place that refers to a zone or pile slot rather than to a
// material stacked under an xyz monster.
const NoOverlay int32 = -1

// Place identifies a zone, a pile slot, or a material within a zone's
// materials stack.
type Place struct {
	Con  uint8
	Loc  Location
	Seq  uint32
	OSeq int32
}

func NewPlace(con uint8, loc Location, seq uint32) Place {
	return Place{Con: con, Loc: loc, Seq: seq, OSeq: NoOverlay}
}

// Material returns the place of the oseq-th material attached to p's zone.
func (p Place) Material(oseq int32) Place {
	p.OSeq = oseq
	return p
}

// Zone strips the material index.
func (p Place) Zone() Place {
	p.OSeq = NoOverlay
	return p
}

func (p Place) IsMaterial() bool { return p.OSeq >= 0 }

// Less orders places by controller, location, sequence, then material index.
func (p Place) Less(o Place) bool {
	if p.Con != o.Con {
		return p.Con < o.Con
	}
	if p.Loc != o.Loc {
		return p.Loc < o.Loc
	}
	if p.Seq != o.Seq {
		return p.Seq < o.Seq
	}
	return p.OSeq < o.OSeq
}

func (p Place) String() string {
	if p.IsMaterial() {
		return fmt.Sprintf("%d/%s/%d/%d", p.Con, p.Loc, p.Seq, p.OSeq)
	}
	return fmt.Sprintf("%d/%s/%d", p.Con, p.Loc, p.Seq)
}
