package solver

import "gonum.org/v1/gonum/mat"

// Polarisation selects which field component is decomposed in the 2D Maxwell
// eigenproblem. The two values form a closed enumeration; each carries its
// own matrix-assembly rule so the solve path itself is polarisation-free.
type Polarisation int

const (
	// TE decomposes the in-plane electric field: ε enters reciprocally, μ is
	// the right-hand operator.
	TE Polarisation = iota
	// TM decomposes the out-of-plane electric field: μ enters reciprocally,
	// ε is the right-hand operator.
	TM
)

// String returns the conventional polarisation label.
func (p Polarisation) String() string {
	switch p {
	case TE:
		return "TE"
	case TM:
		return "TM"
	default:
		return "unknown"
	}
}

// operators returns the reciprocal (inverted) convolution operator entering
// the left-hand side and the right-hand operator B for this polarisation.
// The reciprocal operators swap roles between the polarisations.
func (p Polarisation) operators(s *Solver) (reciprocal, rhs *mat.CDense, ok bool) {
	switch p {
	case TE:
		return s.epcInv, s.muc, true
	case TM:
		return s.mucInv, s.epc, true
	default:
		return nil, nil, false
	}
}
