package FV1D

import (
	"fmt"
	"strings"

	"github.com/notargets/gofv1d/utils"
)

// TimeIntegrator advances U in place by dt. The integrator owns U for the
// duration of the call and leaves consistent ghost rows behind.
type TimeIntegrator interface {
	Update(U utils.Matrix, dt float64, fc FluxCalculator, bc BoundaryCondition)
}

// ExplicitEuler is the forward Euler finite volume update
//
//	U[i] -= dt/dx * (F[i+1/2] - F[i-1/2])
type ExplicitEuler struct {
	gridShape
	Dx         float64
	Partitions *utils.PartitionMap
}

func NewExplicitEuler(dx float64, nBoundary, nDomain int, pm *utils.PartitionMap) *ExplicitEuler {
	return &ExplicitEuler{gridShape{nBoundary, nDomain}, dx, pm}
}

func (ee *ExplicitEuler) Update(U utils.Matrix, dt float64, fc FluxCalculator, bc BoundaryCondition) {
	F := fc.Compute(U, dt)
	F.SetReadOnly("Flux")
	ee.applyFluxDivergence(U, F, dt)
	bc.Apply(U)
}

func (ee *ExplicitEuler) applyFluxDivergence(U, F utils.Matrix, dt float64) {
	var (
		dtdx = dt / ee.Dx
		nb   = ee.NBoundary
	)
	ee.checkRows(U)
	if F.Rows() != ee.NumInterfaces() {
		panic(fmt.Errorf("flux table has %d rows, need %d", F.Rows(), ee.NumInterfaces()))
	}
	if U.IsReadOnly() {
		panic(fmt.Errorf("state table is read only"))
	}
	// Cell k of the domain is bounded by interfaces k and k+1
	ee.Partitions.Execute(ee.NDomain, func(kMin, kMax int) {
		for k := kMin; k < kMax; k++ {
			var (
				q      = U.RowView(nb + k)
				fl, fr = F.RowView(k), F.RowView(k + 1)
			)
			for n := 0; n < NumFields; n++ {
				q[n] -= dtdx * (fr[n] - fl[n])
			}
		}
	})
}

// SSPRK3 is the three stage strong stability preserving Runge-Kutta scheme,
// a convex combination of forward Euler stages.
type SSPRK3 struct {
	euler *ExplicitEuler
}

func NewSSPRK3(dx float64, nBoundary, nDomain int, pm *utils.PartitionMap) *SSPRK3 {
	return &SSPRK3{NewExplicitEuler(dx, nBoundary, nDomain, pm)}
}

func (rk *SSPRK3) Update(U utils.Matrix, dt float64, fc FluxCalculator, bc BoundaryCondition) {
	// SSP RK Stage 1
	U1 := U.Copy()
	rk.euler.Update(U1, dt, fc, bc)

	// SSP RK Stage 2
	U2 := U1.Copy()
	rk.euler.Update(U2, dt, fc, bc)
	U2.Scale(0.25).AddScaled(0.75, U)
	bc.Apply(U2)

	// SSP RK Stage 3
	U3 := U2.Copy()
	rk.euler.Update(U3, dt, fc, bc)
	U.Scale(1./3.).AddScaled(2./3., U3)
	bc.Apply(U)
}

type IntegratorType uint

const (
	Integrator_Euler IntegratorType = iota
	Integrator_SSPRK3
)

var (
	IntegratorNames = map[string]IntegratorType{
		"euler":  Integrator_Euler,
		"ssprk3": Integrator_SSPRK3,
		"rk3":    Integrator_SSPRK3,
	}
	IntegratorPrintNames = []string{"Explicit Euler", "SSP Runge-Kutta 3"}
)

func (it IntegratorType) Print() (txt string) {
	txt = IntegratorPrintNames[it]
	return
}

func NewIntegratorType(label string) (it IntegratorType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if it, ok = IntegratorNames[label]; !ok {
		err = fmt.Errorf("unable to use time integrator named %s", label)
	}
	return
}

func NewTimeIntegrator(it IntegratorType, dx float64, nBoundary, nDomain int, pm *utils.PartitionMap) (ti TimeIntegrator) {
	switch it {
	case Integrator_SSPRK3:
		ti = NewSSPRK3(dx, nBoundary, nDomain, pm)
	default:
		ti = NewExplicitEuler(dx, nBoundary, nDomain, pm)
	}
	return
}
