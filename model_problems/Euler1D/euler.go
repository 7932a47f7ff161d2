package Euler1D

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/notargets/gofv1d/FV1D"
	"github.com/notargets/gofv1d/InputParameters"
	"github.com/notargets/gofv1d/sod_shock_tube"
	"github.com/notargets/gofv1d/utils"
)

type CaseType uint

const (
	SOD_TUBE CaseType = iota
	FREESTREAM
)

var (
	CaseNames = map[string]CaseType{
		"sod":        SOD_TUBE,
		"sodtube":    SOD_TUBE,
		"freestream": FREESTREAM,
		"fs":         FREESTREAM,
	}
	CasePrintNames = []string{"Sod Shock Tube", "Freestream"}
)

func (ct CaseType) Print() (txt string) {
	txt = CasePrintNames[ct]
	return
}

func NewCaseType(label string) (ct CaseType, err error) {
	var ok bool
	label = strings.ToLower(label)
	if ct, ok = CaseNames[label]; !ok {
		err = fmt.Errorf("unable to use case named %s", label)
	}
	return
}

// Euler runs one named case on the finite volume simulator and keeps the
// tables needed to compare the result with the exact solution.
type Euler struct {
	Case    CaseType
	Params  *InputParameters.ProblemParameters
	Sim     *FV1D.Simulator
	Tube    *sod_shock_tube.ShockTube // nil unless Case is SOD_TUBE
	X       []float64                 // Domain cell centers
	V0, V   utils.Matrix              // Initial and final primitive tables, ghosts included
	Stats   FV1D.Stats
	Elapsed time.Duration
}

func NewEuler(pp *InputParameters.ProblemParameters, ct CaseType) (c *Euler, err error) {
	var (
		sim    *FV1D.Simulator
		nb, nd = pp.NumBoundaryCells, pp.NumDomainCells
	)
	if sim, err = FV1D.NewSimulatorFromParameters(pp); err != nil {
		return
	}
	c = &Euler{
		Case:   ct,
		Params: pp,
		Sim:    sim,
		X:      sod_shock_tube.CellCenters(0, pp.Dx, nd),
	}
	switch ct {
	case SOD_TUBE:
		c.Tube = sod_shock_tube.NewShockTube(0.5*float64(nd)*pp.Dx, pp.Gamma, 1, 1, 0.125, 0.1)
		c.V0 = c.Tube.InitialCondition(0, pp.Dx, nb, nd)
	case FREESTREAM:
		c.V0 = utils.NewMatrix(2*nb+nd, FV1D.NumFields)
		for i := 0; i < c.V0.Rows(); i++ {
			c.V0.SetRow(i, []float64{1, 0, 1})
		}
	default:
		return nil, fmt.Errorf("unknown case type %d", ct)
	}
	return
}

// Run advances the initial condition to FinalTime. On a numerical
// instability V holds the last state reached.
func (c *Euler) Run() (err error) {
	start := time.Now()
	c.V, c.Stats, err = c.Sim.RunWithStats(c.V0)
	c.Elapsed = time.Since(start)
	return
}

// Exact returns the primitive solution at FinalTime sampled at the domain cell centers
func (c *Euler) Exact() (Rho, U, P []float64) {
	switch c.Case {
	case SOD_TUBE:
		Rho, U, P, _ = c.Tube.Solution(c.X, c.Params.FinalTime)
	default:
		nb := c.Params.NumBoundaryCells
		Rho = utils.ConstArray(len(c.X), c.V0.At(nb, FV1D.IRho))
		U = utils.ConstArray(len(c.X), c.V0.At(nb, FV1D.IU))
		P = utils.ConstArray(len(c.X), c.V0.At(nb, FV1D.IP))
	}
	return
}

// Errors returns the L1 and max norm differences of density, velocity and
// pressure against the exact solution, over the domain cells.
func (c *Euler) Errors() (l1, lInf [FV1D.NumFields]float64) {
	if c.V.IsEmpty() {
		panic("case has not been run")
	}
	var (
		Rho, U, P = c.Exact()
		exact     = [FV1D.NumFields][]float64{Rho, U, P}
		nb        = c.Params.NumBoundaryCells
	)
	for n := 0; n < FV1D.NumFields; n++ {
		for k := range c.X {
			diff := math.Abs(c.V.At(nb+k, n) - exact[n][k])
			l1[n] += diff * c.Params.Dx
			lInf[n] = math.Max(lInf[n], diff)
		}
	}
	return
}

// RhoIntegrationCheck integrates the exact and computed density over the cell centers
func (c *Euler) RhoIntegrationCheck() (exact, model float64) {
	var (
		Rho, _, _ = c.Exact()
		nb        = c.Params.NumBoundaryCells
	)
	exact = integrate(c.X, Rho)
	model = integrate(c.X, c.V.Col(FV1D.IRho)[nb:nb+len(c.X)])
	return
}

func (c *Euler) PrintSummary() {
	l1, lInf := c.Errors()
	exact, model := c.RhoIntegrationCheck()
	fmt.Printf("%s: steps = %d, time = %8.4f, elapsed = %v\n", c.Case.Print(), c.Stats.Steps, c.Stats.Time, c.Elapsed)
	fmt.Printf("L1 Error:   rho = %10.6e, u = %10.6e, p = %10.6e\n", l1[0], l1[1], l1[2])
	fmt.Printf("LInf Error: rho = %10.6e, u = %10.6e, p = %10.6e\n", lInf[0], lInf[1], lInf[2])
	fmt.Printf("Rho Integration Check: Exact = %5.4f, Model = %5.4f, Log10 Error = %5.4f\n",
		exact, model, math.Log10(math.Abs(exact-model)))
	fmt.Printf("Memory: %s\n", utils.GetMemUsage())
}

// WriteCSV writes one record per domain cell with the computed and exact
// primitive variables.
func (c *Euler) WriteCSV(w io.Writer) (err error) {
	var (
		cw        = csv.NewWriter(w)
		Rho, U, P = c.Exact()
		nb        = c.Params.NumBoundaryCells
		ff        = func(f float64) string { return strconv.FormatFloat(f, 'g', 10, 64) }
	)
	if err = cw.Write([]string{"x", "rho", "u", "p", "rho_exact", "u_exact", "p_exact"}); err != nil {
		return
	}
	for k, x := range c.X {
		q := c.V.RowView(nb + k)
		rec := []string{ff(x), ff(q[FV1D.IRho]), ff(q[FV1D.IU]), ff(q[FV1D.IP]), ff(Rho[k]), ff(U[k]), ff(P[k])}
		if err = cw.Write(rec); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

func integrate(x, u []float64) (result float64) {
	L := len(x)
	for i := 0; i < L-1; i++ {
		delx := x[i+1] - x[i]
		uave := 0.5 * (u[i+1] + u[i])
		result += uave * delx
	}
	return
}
