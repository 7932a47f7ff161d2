package FV1D

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/gofv1d/utils"
)

// MinimumVelocity floors the wave speed so a quiescent flow still gets a finite step
const MinimumVelocity = 0.1

// CFLTimestep computes the largest step that keeps every wave within one cell
type CFLTimestep struct {
	Dx, Gamma, CFL float64
}

func NewCFLTimestep(dx, gamma, CFL float64) *CFLTimestep {
	return &CFLTimestep{Dx: dx, Gamma: gamma, CFL: CFL}
}

func (ts *CFLTimestep) Compute(U utils.Matrix) (dt float64) {
	var (
		u, _, c = CalcVelocityPressureSonic(U, ts.Gamma)
		up      = make([]float64, len(u))
		um      = make([]float64, len(u))
	)
	for i := range u {
		up[i] = math.Abs(u[i] + c[i])
		um[i] = math.Abs(u[i] - c[i])
	}
	maxSpeed := math.Max(math.Max(floats.Max(up), floats.Max(um)), MinimumVelocity)
	dt = ts.CFL * ts.Dx / maxSpeed
	return
}
