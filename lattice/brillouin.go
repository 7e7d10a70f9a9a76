package lattice

// BrillouinZoneCoordinate is a k-point in fractional reciprocal coordinates:
// k = P·b1 + Q·b2. Label is an optional high-symmetry name ("Γ", "M", "K").
// It is a pure value and carries no basis of its own.
type BrillouinZoneCoordinate struct {
	P, Q  float64
	Label string
}

// K resolves the fractional coordinate to a Cartesian k-vector using the
// reciprocal vectors of basis.
func (c BrillouinZoneCoordinate) K(basis *Basis) Vec2 {
	return basis.B1.Scale(c.P).Add(basis.B2.Scale(c.Q))
}
