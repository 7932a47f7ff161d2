package FV1D

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/gofv1d/utils"
)

// linearState has every column varying linearly with the row index
func linearState(nb, nd int) (U utils.Matrix) {
	U = utils.NewMatrix(2*nb+nd, 3)
	for i := 0; i < U.Rows(); i++ {
		x := float64(i)
		U.SetRow(i, []float64{1 + 0.1*x, 0.2 * x, 3 + 0.05*x})
	}
	return
}

func TestFirstOrderReconstructor(t *testing.T) {
	var (
		nb, nd = 1, 4
		U      = linearState(nb, nd)
		rc     = NewFirstOrderReconstructor(nb, nd)
	)
	Ul, Ur := rc.CalcLeft(U), rc.CalcRight(U)
	assert.Equal(t, nd+1, Ul.Rows())
	assert.Equal(t, nd+1, Ur.Rows())
	for i := 0; i <= nd; i++ {
		assert.Equal(t, U.RowView(nb-1+i), Ul.RowView(i))
		assert.Equal(t, U.RowView(nb+i), Ur.RowView(i))
	}
	// Results do not alias the state
	Ul.RowView(0)[0] = -1
	assert.Equal(t, 1., U.At(0, 0))
	assert.Panics(t, func() { rc.CalcLeft(utils.NewMatrix(3, 3)) })
	assert.Panics(t, func() { NewFirstOrderReconstructor(0, 4) })
}

func TestMUSCLReconstructor(t *testing.T) {
	var (
		nb, nd = 2, 5
		U      = linearState(nb, nd)
	)
	for _, lim := range []Limiter{Minmod, VanLeer, Superbee} {
		rc := NewMUSCLReconstructor(nb, nd, lim)
		Ul, Ur := rc.CalcLeft(U), rc.CalcRight(U)
		// A linear profile is reproduced exactly, so both sides meet at the face midpoint
		for i := 0; i <= nd; i++ {
			for n := 0; n < 3; n++ {
				mid := 0.5 * (U.At(nb-1+i, n) + U.At(nb+i, n))
				assert.InDelta(t, mid, Ul.At(i, n), 1.e-14)
				assert.InDelta(t, mid, Ur.At(i, n), 1.e-14)
			}
		}
	}
	{ // At an extremum the slope is limited to zero and the scheme is first order
		U := utils.NewMatrix(7, 3, []float64{
			1, 0, 1,
			1, 0, 1,
			1, 0, 1,
			2, 0, 1,
			1, 0, 1,
			1, 0, 1,
			1, 0, 1,
		})
		rc := NewMUSCLReconstructor(2, 3, nil)
		Ul, Ur := rc.CalcLeft(U), rc.CalcRight(U)
		assert.Equal(t, 2., Ul.At(2, 0))
		assert.Equal(t, 2., Ur.At(1, 0))
	}
	assert.Panics(t, func() { NewMUSCLReconstructor(1, 5, Minmod) })
}

func TestLimiters(t *testing.T) {
	assert.Equal(t, 0., Minmod(1, -1))
	assert.Equal(t, 1., Minmod(1, 3))
	assert.Equal(t, -1., Minmod(-3, -1))
	assert.Equal(t, 0., VanLeer(2, -1))
	assert.InDelta(t, 1.5, VanLeer(1, 3), 1.e-15)
	assert.Equal(t, 0., Superbee(0, 1))
	assert.Equal(t, 2., Superbee(1, 3))
	assert.Equal(t, -2., Superbee(-1, -2))
	for _, name := range []string{"minmod", "VanLeer", "SUPERBEE"} {
		l, err := NewLimiter(name)
		assert.NoError(t, err)
		assert.NotNil(t, l)
	}
	_, err := NewLimiter("koren")
	assert.Error(t, err)
}

func TestLaxWendroffReconstructor(t *testing.T) {
	var (
		nb, nd = 1, 6
		gamma  = 1.4
		U      = ToConservative(newUniform(nb, nd, 1.3, 0.7, 2.1), gamma)
		lw     = NewLaxWendroffReconstructor(0.1, gamma, nb, nd)
		f      = make([]float64, 3)
	)
	F := lw.CalcFlux(U, 0.01)
	assert.Equal(t, nd+1, F.Rows())
	EulerFlux(U.RowView(0), f, gamma)
	for i := 0; i <= nd; i++ {
		assert.Equal(t, f, F.RowView(i))
	}
	{ // The predictor moves the face state by the flux difference of its neighbors
		U := utils.NewMatrix(3, 3, []float64{
			1, 0, 2.5,
			1, 0, 2.5,
			0.5, 0, 1.25,
		})
		lw := NewLaxWendroffReconstructor(0.1, gamma, 1, 1)
		dt := 0.02
		F := lw.CalcFlux(U, dt)
		// Mass flux equals the predicted momentum: -0.5*dt/dx*(pR - pL)
		assert.InDelta(t, -0.5*dt/0.1*(0.5-1), F.At(1, 0), 1.e-14)
		assert.Equal(t, 0., F.At(0, 0))
	}
}
