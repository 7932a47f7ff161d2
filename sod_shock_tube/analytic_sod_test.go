package sod_shock_tube

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSOD(t *testing.T) {
	st := NewSod()
	assert.InDelta(t, 0.30313, st.PPost, 0.00001)
	assert.InDelta(t, 0.92745, st.VPost, 0.00001)
	assert.InDelta(t, 0.26557, st.RhoPost, 0.00001)
	assert.InDelta(t, 0.42632, st.RhoMiddle, 0.00001)

	x1, x2, x3, x4 := st.Positions(0.1)
	assert.InDelta(t, 0.38168, x1, 0.0001)
	assert.InDelta(t, 0.49297, x2, 0.0001)
	assert.InDelta(t, 0.59275, x3, 0.0001)
	assert.InDelta(t, 0.6752, x4, 0.0001)
	_, _, _, x4 = st.Positions(0.2)
	assert.InDelta(t, 0.8504, x4, 0.0001)

	X := []float64{0, 0.3815784043380077, 0.39280783577858336, 0.4373255615408861, 0.4818432873031888,
		0.5, 0.5926452620047974, 0.6, 0.675115573202932, 0.7, 1}
	rhoCheck := []float64{1, 1, 0.9240353444481086, 0.6648901587403833, 0.467449846536279,
		0.4263194281781805, 0.4263194281781805, 0.26557371170513905, 0.26557371170513905, 0.125, 0.125}
	Rho, U, P, E := st.Solution(X, 0.1)
	require.Len(t, Rho, len(X))
	assert.True(t, isNear(rhoCheck, Rho, 0.001))
	for i := range X {
		assert.InDelta(t, P[i]/(0.4*Rho[i]), E[i], 1.e-12)
	}
	// Gas at rest outside the wave fan, uniform velocity between the tail and the shock
	assert.Equal(t, 0., U[0])
	assert.Equal(t, 0., U[len(U)-1])
	assert.InDelta(t, st.VPost, U[5], 1.e-12)
	assert.InDelta(t, st.VPost, U[7], 1.e-12)
	// Pressure is continuous across the contact
	assert.Equal(t, P[5], P[7])
}

func TestInitialCondition(t *testing.T) {
	var (
		st     = NewSod()
		nb, nd = 2, 10
		dx     = 0.1
	)
	V := st.InitialCondition(0, dx, nb, nd)
	nr, nc := V.Dims()
	assert.Equal(t, 2*nb+nd, nr)
	assert.Equal(t, 3, nc)
	for i := 0; i < nr; i++ {
		row := V.RowView(i)
		if i < nb+nd/2 {
			assert.Equal(t, []float64{1, 0, 1}, row)
		} else {
			assert.Equal(t, []float64{0.125, 0, 0.1}, row)
		}
	}
	X := CellCenters(0, dx, nd)
	assert.InDelta(t, 0.05, X[0], 1.e-15)
	assert.InDelta(t, 0.95, X[nd-1], 1.e-15)
}

func TestShockTubePanics(t *testing.T) {
	assert.Panics(t, func() { NewShockTube(0.5, 1.4, 0.125, 0.1, 1, 1) })
}

func TestFzero(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	assert.InDelta(t, math.Sqrt2, fzero(f, 0, 2), 1.e-12)
	// Either bracket orientation works
	assert.InDelta(t, -math.Sqrt2, fzero(f, -2, 0), 1.e-12)
	assert.Equal(t, 1., fzero(func(x float64) float64 { return x - 1 }, 0, 2))
	assert.Panics(t, func() { fzero(f, 2, 3) })
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}
