package FV1D

import (
	"fmt"

	"github.com/notargets/gofv1d/types"
	"github.com/notargets/gofv1d/utils"
)

// BoundaryCondition fills the ghost rows of a conservative table from its
// domain rows. Domain rows are never written.
type BoundaryCondition interface {
	Apply(U utils.Matrix)
}

// ghostBoundary fills the ghost layers at each end from the domain. A
// mirrored boundary copies the k-th domain row from each wall into the k-th
// ghost row on the other side of that wall; otherwise every ghost layer
// repeats the domain row next to the wall.
type ghostBoundary struct {
	NBoundary, NDomain int
	momentumSign       float64
	mirrored           bool
}

func newGhostBoundary(nBoundary, nDomain int, momentumSign float64, mirrored bool) ghostBoundary {
	if nBoundary < 1 {
		panic(fmt.Errorf("at least one ghost layer is required, have %d", nBoundary))
	}
	if nDomain < nBoundary {
		panic(fmt.Errorf("domain of %d cells is too small to mirror %d ghost layers", nDomain, nBoundary))
	}
	return ghostBoundary{NBoundary: nBoundary, NDomain: nDomain, momentumSign: momentumSign, mirrored: mirrored}
}

func (gb ghostBoundary) Apply(U utils.Matrix) {
	var (
		nb, nd = gb.NBoundary, gb.NDomain
		nt     = 2*nb + nd
	)
	if U.Rows() != nt {
		panic(fmt.Errorf("boundary expects %d rows, table has %d", nt, U.Rows()))
	}
	fill := func(ghost, interior int) {
		g, q := U.RowView(ghost), U.RowView(interior)
		g[IRho] = q[IRho]
		g[IRhoU] = gb.momentumSign * q[IRhoU]
		g[IEner] = q[IEner]
	}
	for k := 0; k < nb; k++ {
		if gb.mirrored {
			fill(nb-1-k, nb+k)       // left wall
			fill(nb+nd+k, nb+nd-1-k) // right wall
		} else {
			fill(nb-1-k, nb)
			fill(nb+nd+k, nb+nd-1)
		}
	}
}

// NoFlowBoundary is a reflective solid wall: density and energy are mirrored
// and velocity changes sign, so the wall carries no mass or energy flux.
type NoFlowBoundary struct {
	ghostBoundary
}

func NewNoFlowBoundary(nBoundary, nDomain int) *NoFlowBoundary {
	return &NoFlowBoundary{newGhostBoundary(nBoundary, nDomain, -1, true)}
}

// TransmissiveBoundary is a zero gradient outflow boundary: every ghost
// layer holds the state of the domain cell next to the boundary.
type TransmissiveBoundary struct {
	ghostBoundary
}

func NewTransmissiveBoundary(nBoundary, nDomain int) *TransmissiveBoundary {
	return &TransmissiveBoundary{newGhostBoundary(nBoundary, nDomain, 1, false)}
}

func NewBoundaryCondition(bc types.BCFLAG, nBoundary, nDomain int) (b BoundaryCondition, err error) {
	switch bc {
	case types.BC_Wall:
		b = NewNoFlowBoundary(nBoundary, nDomain)
	case types.BC_Out:
		b = NewTransmissiveBoundary(nBoundary, nDomain)
	default:
		err = fmt.Errorf("unable to use boundary condition %s", bc.String())
	}
	return
}
