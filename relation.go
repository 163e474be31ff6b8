package hwnet

import "strconv"

// Relation describes the position of a component relative to another one in
// the hierarchy.
//
type Relation int

// Relations returned by Relate(a, b), from the point of view of b.
//
const (
	Identical Relation = iota // a == b
	Parent                    // b is the parent of a
	Child                     // b is a child of a
	Sibling                   // a and b have the same parent
	Unrelated                 // none of the above
)

var relationNames = [...]string{
	Identical: "same host",
	Parent:    "writer nested deeper than reader",
	Child:     "reader nested deeper than writer",
	Sibling:   "sibling hosts",
	Unrelated: "hosts too far apart",
}

func (r Relation) String() string {
	if r < 0 || int(r) >= len(relationNames) {
		return "Relation(" + strconv.Itoa(int(r)) + ")"
	}
	return relationNames[r]
}

// Relate returns the relation of component b to component a.
//
func (h *Hierarchy) Relate(a, b Comp) Relation {
	pa, pb := h.Parent(a), h.Parent(b)
	switch {
	case a == b:
		return Identical
	case pa == b:
		return Parent
	case pb == a:
		return Child
	case pa != NoComp && pa == pb:
		return Sibling
	}
	return Unrelated
}
