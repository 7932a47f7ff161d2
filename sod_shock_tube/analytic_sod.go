package sod_shock_tube

import (
	"fmt"
	"math"

	"github.com/notargets/gofv1d/utils"
)

// ShockTube is the exact solution of a shock tube with gas at rest on both
// sides of a diaphragm at X0 and PL > PR: a left moving rarefaction, a contact
// and a right moving shock.
type ShockTube struct {
	X0, Gamma          float64
	RhoL, PL, RhoR, PR float64
	// Post wave states
	PPost, VPost, RhoPost, VShock, RhoMiddle float64
	cL, mu2                                  float64
}

// NewSod is Sod's classic problem on [0,1]
func NewSod() *ShockTube {
	return NewShockTube(0.5, 1.4, 1, 1, 0.125, 0.1)
}

func NewShockTube(x0, gamma, rhoL, pL, rhoR, pR float64) (st *ShockTube) {
	if pL <= pR {
		panic(fmt.Errorf("shock tube requires PL > PR, have %v, %v", pL, pR))
	}
	st = &ShockTube{
		X0: x0, Gamma: gamma,
		RhoL: rhoL, PL: pL, RhoR: rhoR, PR: pR,
		cL:  math.Sqrt(gamma * pL / rhoL),
		mu2: (gamma - 1) / (gamma + 1),
	}
	st.PPost = fzero(st.sodFunc, pR, pL)
	st.VPost = st.rarefactionVelocity(st.PPost)
	st.RhoPost = rhoR * (((st.PPost / pR) + st.mu2) / (1 + st.mu2*(st.PPost/pR)))
	st.VShock = st.VPost * (st.RhoPost / rhoR) / ((st.RhoPost / rhoR) - 1.)
	st.RhoMiddle = rhoL * math.Pow(st.PPost/pL, 1./gamma)
	return
}

func (st *ShockTube) rarefactionVelocity(P float64) float64 {
	return 2 * (st.cL / (st.Gamma - 1)) * (1 - math.Pow(P/st.PL, (st.Gamma-1)/(2*st.Gamma)))
}

// sodFunc is zero where the velocity behind the shock matches the velocity behind the rarefaction
func (st *ShockTube) sodFunc(P float64) (y float64) {
	y = (P-st.PR)*math.Sqrt((1-st.mu2)/(st.RhoR*(P+st.mu2*st.PR))) - st.rarefactionVelocity(P)
	return
}

// Positions returns the rarefaction head and tail, the contact and the shock at time t
func (st *ShockTube) Positions(t float64) (x1, x2, x3, x4 float64) {
	var (
		c2 = st.cL - 0.5*(st.Gamma-1.)*st.VPost
	)
	x1 = st.X0 - st.cL*t
	x2 = st.X0 + t*(st.VPost-c2)
	x3 = st.X0 + st.VPost*t
	x4 = st.X0 + st.VShock*t
	return
}

// Sample returns density, velocity and pressure at x and time t
func (st *ShockTube) Sample(x, t float64) (rho, u, p float64) {
	if t <= 0 {
		if x < st.X0 {
			return st.RhoL, 0, st.PL
		}
		return st.RhoR, 0, st.PR
	}
	x1, x2, x3, x4 := st.Positions(t)
	switch {
	case x < x1:
		rho, p, u = st.RhoL, st.PL, 0
	case x <= x2:
		c := st.mu2*((st.X0-x)/t) + (1.-st.mu2)*st.cL
		rho = st.RhoL * math.Pow(c/st.cL, 2/(st.Gamma-1))
		p = st.PL * math.Pow(rho/st.RhoL, st.Gamma)
		u = (1. - st.mu2) * ((-(st.X0 - x) / t) + st.cL)
	case x <= x3:
		rho, p, u = st.RhoMiddle, st.PPost, st.VPost
	case x <= x4:
		rho, p, u = st.RhoPost, st.PPost, st.VPost
	default:
		rho, p, u = st.RhoR, st.PR, 0
	}
	return
}

// Solution samples the exact solution at every X, returning specific internal energy in E
func (st *ShockTube) Solution(X []float64, t float64) (Rho, U, P, E []float64) {
	Rho = make([]float64, len(X))
	U = make([]float64, len(X))
	P = make([]float64, len(X))
	E = make([]float64, len(X))
	for i, x := range X {
		Rho[i], U[i], P[i] = st.Sample(x, t)
		E[i] = P[i] / ((st.Gamma - 1.) * Rho[i])
	}
	return
}

// CellCenters returns the centers of nDomain cells of width dx starting at xMin
func CellCenters(xMin, dx float64, nDomain int) (X []float64) {
	X = make([]float64, nDomain)
	for i := range X {
		X[i] = xMin + (float64(i)+0.5)*dx
	}
	return
}

// InitialCondition builds the primitive table, ghost rows included, for a
// grid of nDomain cells of width dx starting at xMin. Ghost rows are left
// for the boundary condition to fill and hold the nearest domain value.
func (st *ShockTube) InitialCondition(xMin, dx float64, nBoundary, nDomain int) (V utils.Matrix) {
	var (
		X = CellCenters(xMin, dx, nDomain)
	)
	V = utils.NewMatrix(2*nBoundary+nDomain, 3)
	for i := 0; i < V.Rows(); i++ {
		k := i - nBoundary
		switch {
		case k < 0:
			k = 0
		case k >= nDomain:
			k = nDomain - 1
		}
		rho, u, p := st.Sample(X[k], 0)
		V.SetRow(i, []float64{rho, u, p})
	}
	return
}

// fzero finds a root of f bracketed by [a, b] by bisection
func fzero(f func(P float64) (y float64), a, b float64) float64 {
	var (
		tol    = 1.e-13
		fa, fb = f(a), f(b)
	)
	if fa*fb > 0 {
		panic(fmt.Errorf("root is not bracketed by [%v, %v]", a, b))
	}
	for i := 0; i < 200 && (b-a) > tol*math.Max(1, math.Abs(a)); i++ {
		m := 0.5 * (a + b)
		fm := f(m)
		if fm == 0 {
			return m
		}
		if fa*fm < 0 {
			b = m
		} else {
			a, fa = m, fm
		}
	}
	return 0.5 * (a + b)
}
