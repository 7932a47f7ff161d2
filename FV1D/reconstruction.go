package FV1D

import (
	"fmt"

	"github.com/notargets/gofv1d/utils"
)

// SpatialReconstructor produces the conservative states on either side of
// each of the NDomain+1 interfaces bounding the domain cells. Interface i
// lies between cells NBoundary-1+i and NBoundary+i of the full table.
type SpatialReconstructor interface {
	CalcLeft(U utils.Matrix) (Ul utils.Matrix)
	CalcRight(U utils.Matrix) (Ur utils.Matrix)
}

type gridShape struct {
	NBoundary, NDomain int
}

func (gs gridShape) TotalCells() int    { return 2*gs.NBoundary + gs.NDomain }
func (gs gridShape) NumInterfaces() int { return gs.NDomain + 1 }

func (gs gridShape) checkRows(U utils.Matrix) {
	if U.Rows() != gs.TotalCells() {
		err := fmt.Errorf("expected %d rows (%d ghost + %d domain per side layout), have %d",
			gs.TotalCells(), 2*gs.NBoundary, gs.NDomain, U.Rows())
		panic(err)
	}
	checkFields(U, "conservative")
}

// FirstOrderReconstructor is piecewise constant: each face takes the value of
// its adjacent cell.
type FirstOrderReconstructor struct {
	gridShape
}

func NewFirstOrderReconstructor(nBoundary, nDomain int) *FirstOrderReconstructor {
	if nBoundary < 1 {
		panic(fmt.Errorf("first order reconstruction needs one ghost layer, have %d", nBoundary))
	}
	return &FirstOrderReconstructor{gridShape{nBoundary, nDomain}}
}

func (fo *FirstOrderReconstructor) CalcLeft(U utils.Matrix) (Ul utils.Matrix) {
	return fo.shift(U, fo.NBoundary-1)
}

func (fo *FirstOrderReconstructor) CalcRight(U utils.Matrix) (Ur utils.Matrix) {
	return fo.shift(U, fo.NBoundary)
}

func (fo *FirstOrderReconstructor) shift(U utils.Matrix, first int) (R utils.Matrix) {
	fo.checkRows(U)
	R = utils.NewMatrix(fo.NumInterfaces(), NumFields)
	for i := 0; i < fo.NumInterfaces(); i++ {
		copy(R.RowView(i), U.RowView(first+i))
	}
	return
}

// MUSCLReconstructor extrapolates limited linear profiles of the conservative
// variables to the faces. It needs two ghost layers.
type MUSCLReconstructor struct {
	gridShape
	Limiter Limiter
}

func NewMUSCLReconstructor(nBoundary, nDomain int, limiter Limiter) *MUSCLReconstructor {
	if nBoundary < 2 {
		panic(fmt.Errorf("MUSCL reconstruction needs two ghost layers, have %d", nBoundary))
	}
	if limiter == nil {
		limiter = Minmod
	}
	return &MUSCLReconstructor{gridShape{nBoundary, nDomain}, limiter}
}

func (mr *MUSCLReconstructor) CalcLeft(U utils.Matrix) (Ul utils.Matrix) {
	// Left face state is the right edge of cell NBoundary-1+i
	return mr.extrapolate(U, mr.NBoundary-1, 0.5)
}

func (mr *MUSCLReconstructor) CalcRight(U utils.Matrix) (Ur utils.Matrix) {
	// Right face state is the left edge of cell NBoundary+i
	return mr.extrapolate(U, mr.NBoundary, -0.5)
}

func (mr *MUSCLReconstructor) extrapolate(U utils.Matrix, first int, side float64) (R utils.Matrix) {
	mr.checkRows(U)
	R = utils.NewMatrix(mr.NumInterfaces(), NumFields)
	for i := 0; i < mr.NumInterfaces(); i++ {
		var (
			j         = first + i
			qm, q, qp = U.RowView(j - 1), U.RowView(j), U.RowView(j + 1)
			r         = R.RowView(i)
		)
		for n := 0; n < NumFields; n++ {
			slope := mr.Limiter(q[n]-qm[n], qp[n]-q[n])
			r[n] = q[n] + side*slope
		}
	}
	return
}

// LaxWendroffReconstructor folds reconstruction and flux evaluation into the
// two step Richtmyer predictor: the interface state is advanced half a step
// from the average of its neighbors and the physical flux is taken there.
type LaxWendroffReconstructor struct {
	gridShape
	Dx, Gamma float64
}

func NewLaxWendroffReconstructor(dx, gamma float64, nBoundary, nDomain int) *LaxWendroffReconstructor {
	if nBoundary < 1 {
		panic(fmt.Errorf("Lax-Wendroff needs one ghost layer, have %d", nBoundary))
	}
	return &LaxWendroffReconstructor{gridShape{nBoundary, nDomain}, dx, gamma}
}

func (lw *LaxWendroffReconstructor) CalcFlux(U utils.Matrix, dt float64) (F utils.Matrix) {
	var (
		alpha  = 0.5 * dt / lw.Dx
		fL, fR = make([]float64, NumFields), make([]float64, NumFields)
		qm     = make([]float64, NumFields)
	)
	lw.checkRows(U)
	F = utils.NewMatrix(lw.NumInterfaces(), NumFields)
	for i := 0; i < lw.NumInterfaces(); i++ {
		var (
			qL, qR = U.RowView(lw.NBoundary - 1 + i), U.RowView(lw.NBoundary + i)
		)
		EulerFlux(qL, fL, lw.Gamma)
		EulerFlux(qR, fR, lw.Gamma)
		for n := 0; n < NumFields; n++ {
			qm[n] = 0.5*(qL[n]+qR[n]) - alpha*(fR[n]-fL[n])
		}
		EulerFlux(qm, F.RowView(i), lw.Gamma)
	}
	return
}
