package FV1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gofv1d/utils"
)

// FluxCalculator returns the NDomain+1 interface fluxes for a conservative
// table. Every calculator takes dt; the Riemann family ignores it.
type FluxCalculator interface {
	Compute(U utils.Matrix, dt float64) (F utils.Matrix)
}

// RiemannFluxCalculator reconstructs face states and resolves them with a Riemann solver.
type RiemannFluxCalculator struct {
	Reconstructor SpatialReconstructor
	Solver        RiemannSolver
}

func NewRiemannFluxCalculator(rc SpatialReconstructor, rs RiemannSolver) *RiemannFluxCalculator {
	return &RiemannFluxCalculator{Reconstructor: rc, Solver: rs}
}

func (rf *RiemannFluxCalculator) Compute(U utils.Matrix, _ float64) (F utils.Matrix) {
	var (
		Ul = rf.Reconstructor.CalcLeft(U)
		Ur = rf.Reconstructor.CalcRight(U)
	)
	return rf.Solver.Solve(Ul, Ur)
}

type LaxWendroffFluxCalculator struct {
	Reconstructor *LaxWendroffReconstructor
}

func NewLaxWendroffFluxCalculator(dx, gamma float64, nBoundary, nDomain int) *LaxWendroffFluxCalculator {
	return &LaxWendroffFluxCalculator{NewLaxWendroffReconstructor(dx, gamma, nBoundary, nDomain)}
}

func (lw *LaxWendroffFluxCalculator) Compute(U utils.Matrix, dt float64) (F utils.Matrix) {
	return lw.Reconstructor.CalcFlux(U, dt)
}

type FluxType uint

const (
	FLUX_Riemann FluxType = iota
	FLUX_LaxWendroff
)

var (
	FluxNames = map[string]FluxType{
		"riemann":     FLUX_Riemann,
		"laxwendroff": FLUX_LaxWendroff,
		"lw":          FLUX_LaxWendroff,
	}
	FluxPrintNames = []string{"Riemann", "Lax Wendroff"}
)

func (ft FluxType) Print() (txt string) {
	txt = FluxPrintNames[ft]
	return
}

func NewFluxType(label string) (ft FluxType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if ft, ok = FluxNames[label]; !ok {
		err = fmt.Errorf("unable to use flux named %s", label)
	}
	return
}

type ReconstructionType uint

const (
	Reconstruction_FirstOrder ReconstructionType = iota
	Reconstruction_MUSCL
)

var (
	ReconstructionNames = map[string]ReconstructionType{
		"firstorder": Reconstruction_FirstOrder,
		"first":      Reconstruction_FirstOrder,
		"muscl":      Reconstruction_MUSCL,
	}
	ReconstructionPrintNames = []string{"First Order", "MUSCL"}
)

func (rt ReconstructionType) Print() (txt string) {
	txt = ReconstructionPrintNames[rt]
	return
}

func NewReconstructionType(label string) (rt ReconstructionType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if rt, ok = ReconstructionNames[label]; !ok {
		err = fmt.Errorf("unable to use reconstruction named %s", label)
	}
	return
}
