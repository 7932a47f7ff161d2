package FV1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofv1d/utils"
)

// Column layout shared by primitive and conservative tables
const (
	NumFields = 3
	// Primitive columns
	IRho = 0
	IU   = 1
	IP   = 2
	// Conservative columns
	IRhoU = 1
	IEner = 2
)

func checkFields(A utils.Matrix, label string) {
	if _, nc := A.Dims(); nc != NumFields {
		err := fmt.Errorf("%s table must have %d columns, has %d", label, NumFields, nc)
		panic(err)
	}
}

// ToConservative maps (rho, u, p) rows to (rho, rho*u, rho*E) rows
func ToConservative(V utils.Matrix, gamma float64) (U utils.Matrix) {
	var (
		nr   = V.Rows()
		rDiv = 1. / (gamma - 1.)
	)
	checkFields(V, "primitive")
	U = utils.NewMatrix(nr, NumFields)
	for i := 0; i < nr; i++ {
		v, u := V.RowView(i), U.RowView(i)
		rho, vel, p := v[IRho], v[IU], v[IP]
		u[IRho] = rho
		u[IRhoU] = rho * vel
		u[IEner] = 0.5*rho*vel*vel + p*rDiv
	}
	return
}

// ToPrimitive is the algebraic inverse of ToConservative
func ToPrimitive(U utils.Matrix, gamma float64) (V utils.Matrix) {
	var (
		nr = U.Rows()
	)
	checkFields(U, "conservative")
	V = utils.NewMatrix(nr, NumFields)
	for i := 0; i < nr; i++ {
		u, v := U.RowView(i), V.RowView(i)
		rho := u[IRho]
		vel := Velocity(rho, u[IRhoU])
		v[IRho] = rho
		v[IU] = vel
		v[IP] = Pressure(rho, vel, u[IEner], gamma)
	}
	return
}

func Velocity(rho, rhoU float64) float64 { return rhoU / rho }

func Pressure(rho, u, rhoE, gamma float64) float64 {
	return (gamma - 1.) * (rhoE - 0.5*rho*utils.POW(u, 2))
}

func SonicVelocity(rho, p, gamma float64) float64 { return math.Sqrt(gamma * p / rho) }

// Enthalpy is the total specific enthalpy (rhoE + p) / rho
func Enthalpy(rho, rhoE, p float64) float64 { return (rhoE + p) / rho }

// CalcVelocityPressureSonic derives u, p and c for every row of U, ghost rows included.
func CalcVelocityPressureSonic(U utils.Matrix, gamma float64) (u, p, c []float64) {
	var (
		nr = U.Rows()
	)
	u, p, c = make([]float64, nr), make([]float64, nr), make([]float64, nr)
	for i := 0; i < nr; i++ {
		q := U.RowView(i)
		u[i] = Velocity(q[IRho], q[IRhoU])
		p[i] = Pressure(q[IRho], u[i], q[IEner], gamma)
		c[i] = SonicVelocity(q[IRho], p[i], gamma)
	}
	return
}

// EulerFlux evaluates the physical flux of conservative state q into f
func EulerFlux(q, f []float64, gamma float64) {
	var (
		rho, rhoU, rhoE = q[IRho], q[IRhoU], q[IEner]
		u               = Velocity(rho, rhoU)
		p               = Pressure(rho, u, rhoE, gamma)
	)
	f[0] = rhoU
	f[1] = rhoU*u + p
	f[2] = u * (rhoE + p)
}

// Totals returns the domain integrals of mass, momentum and energy
func Totals(U utils.Matrix, nBoundary, nDomain int, dx float64) (totals [NumFields]float64) {
	var (
		// Zero copy window onto the domain rows
		domain = U.M.Slice(nBoundary, nBoundary+nDomain, 0, NumFields)
		col    = make([]float64, nDomain)
	)
	for n := 0; n < NumFields; n++ {
		mat.Col(col, n, domain)
		totals[n] = dx * floats.Sum(col)
	}
	return
}
