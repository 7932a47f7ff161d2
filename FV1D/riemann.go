package FV1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofv1d/utils"
)

// RiemannSolver resolves one flux per interface from the left and right
// conservative face states. Ul and Ur have one row per interface.
type RiemannSolver interface {
	Solve(Ul, Ur utils.Matrix) (F utils.Matrix)
}

type interfaceFlux func(qL, qR, f []float64)

func solveInterfaces(Ul, Ur utils.Matrix, pm *utils.PartitionMap, flux interfaceFlux) (F utils.Matrix) {
	var (
		nr = Ul.Rows()
	)
	if Ur.Rows() != nr {
		panic(fmt.Errorf("left and right face tables differ in length: %d vs %d", nr, Ur.Rows()))
	}
	F = utils.NewMatrix(nr, NumFields)
	pm.Execute(nr, func(iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			flux(Ul.RowView(i), Ur.RowView(i), F.RowView(i))
		}
	})
	return
}

type faceState struct {
	rho, u, p, c, h float64
	f               [NumFields]float64
}

func newFaceState(q []float64, gamma float64) (fs faceState) {
	fs.rho = q[IRho]
	fs.u = Velocity(q[IRho], q[IRhoU])
	fs.p = Pressure(fs.rho, fs.u, q[IEner], gamma)
	fs.c = SonicVelocity(fs.rho, fs.p, gamma)
	fs.h = Enthalpy(fs.rho, q[IEner], fs.p)
	EulerFlux(q, fs.f[:], gamma)
	return
}

// RusanovSolver is the local Lax-Friedrichs flux, dissipating with the
// largest local wave speed.
type RusanovSolver struct {
	Gamma      float64
	Partitions *utils.PartitionMap
}

func (rs *RusanovSolver) Solve(Ul, Ur utils.Matrix) (F utils.Matrix) {
	return solveInterfaces(Ul, Ur, rs.Partitions, func(qL, qR, f []float64) {
		var (
			L, R = newFaceState(qL, rs.Gamma), newFaceState(qR, rs.Gamma)
			LFc  = math.Max(math.Abs(L.u)+L.c, math.Abs(R.u)+R.c)
		)
		for n := 0; n < NumFields; n++ {
			f[n] = 0.5*(L.f[n]+R.f[n]) - 0.5*LFc*(qR[n]-qL[n])
		}
	})
}

// RoeSolver is Roe's approximate Riemann solver with Harten's entropy fix.
type RoeSolver struct {
	Gamma      float64
	Partitions *utils.PartitionMap
}

func (rs *RoeSolver) Solve(Ul, Ur utils.Matrix) (F utils.Matrix) {
	// Phi is the Harten entropy correction - it modifies the eigenvalues to eliminate aphysical solutions
	phi := func(eig, del float64) (res float64) {
		absLam := math.Abs(eig)
		if absLam > del {
			res = absLam
		} else {
			res = (eig*eig + del*del) / (2 * del)
		}
		return
	}
	return solveInterfaces(Ul, Ur, rs.Partitions, func(qL, qR, f []float64) {
		var (
			L, R     = newFaceState(qL, rs.Gamma), newFaceState(qR, rs.Gamma)
			srl, srr = math.Sqrt(L.rho), math.Sqrt(R.rho)
			roeAve   = func(ul, ur float64) float64 { return (srl*ul + srr*ur) / (srl + srr) }
			rhoRL    = srl * srr
			uRL      = roeAve(L.u, R.u)
			hRL      = roeAve(L.h, R.h)
			aRL      = math.Sqrt((rs.Gamma - 1) * (hRL - 0.5*uRL*uRL))
			delRho   = R.rho - L.rho
			delU     = R.u - L.u
			delP     = R.p - L.p
			delta    = aRL / 20
			ooarl2   = 1 / (aRL * aRL)
			// Wave strengths
			a1 = (delP - rhoRL*aRL*delU) * 0.5 * ooarl2
			a2 = delRho - delP*ooarl2
			a3 = (delP + rhoRL*aRL*delU) * 0.5 * ooarl2
			// Eigenvalue magnitudes
			l1, l2, l3 = phi(uRL-aRL, delta), phi(uRL, delta), phi(uRL+aRL, delta)
			// Right eigenvectors
			r1 = [NumFields]float64{1, uRL - aRL, hRL - uRL*aRL}
			r2 = [NumFields]float64{1, uRL, 0.5 * uRL * uRL}
			r3 = [NumFields]float64{1, uRL + aRL, hRL + uRL*aRL}
		)
		for n := 0; n < NumFields; n++ {
			diss := l1*a1*r1[n] + l2*a2*r2[n] + l3*a3*r3[n]
			f[n] = 0.5*(L.f[n]+R.f[n]) - 0.5*diss
		}
	})
}

// HLLSolver is the Harten-Lax-van Leer two wave solver using Davis wave speed estimates.
type HLLSolver struct {
	Gamma      float64
	Partitions *utils.PartitionMap
}

func (hs *HLLSolver) Solve(Ul, Ur utils.Matrix) (F utils.Matrix) {
	return solveInterfaces(Ul, Ur, hs.Partitions, func(qL, qR, f []float64) {
		var (
			L, R = newFaceState(qL, hs.Gamma), newFaceState(qR, hs.Gamma)
			sL   = math.Min(L.u-L.c, R.u-R.c)
			sR   = math.Max(L.u+L.c, R.u+R.c)
		)
		switch {
		case sL >= 0:
			copy(f, L.f[:])
		case sR <= 0:
			copy(f, R.f[:])
		default:
			oods := 1 / (sR - sL)
			for n := 0; n < NumFields; n++ {
				f[n] = (sR*L.f[n] - sL*R.f[n] + sL*sR*(qR[n]-qL[n])) * oods
			}
		}
	})
}

type RiemannType uint

const (
	Riemann_Rusanov RiemannType = iota
	Riemann_Roe
	Riemann_HLL
)

var (
	RiemannNames = map[string]RiemannType{
		"rusanov": Riemann_Rusanov,
		"lax":     Riemann_Rusanov,
		"roe":     Riemann_Roe,
		"hll":     Riemann_HLL,
	}
	RiemannPrintNames = []string{"Rusanov (Local Lax Friedrichs)", "Roe", "HLL"}
)

func (rt RiemannType) Print() (txt string) {
	txt = RiemannPrintNames[rt]
	return
}

func NewRiemannType(label string) (rt RiemannType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if rt, ok = RiemannNames[label]; !ok {
		err = fmt.Errorf("unable to use Riemann solver named %s", label)
	}
	return
}

func NewRiemannSolver(rt RiemannType, gamma float64, pm *utils.PartitionMap) (rs RiemannSolver) {
	switch rt {
	case Riemann_Roe:
		rs = &RoeSolver{Gamma: gamma, Partitions: pm}
	case Riemann_HLL:
		rs = &HLLSolver{Gamma: gamma, Partitions: pm}
	default:
		rs = &RusanovSolver{Gamma: gamma, Partitions: pm}
	}
	return
}
