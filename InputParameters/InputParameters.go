package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
)

var ErrInvalidParameter = errors.New("invalid problem parameter")

// ProblemParameters is the finalized record consumed by the simulator. The
// scheme names are resolved by FV1D.
type ProblemParameters struct {
	Title            string  `json:"Title"`
	Dx               float64 `json:"Dx"`
	Gamma            float64 `json:"Gamma"`
	FinalTime        float64 `json:"FinalTime"`
	CFL              float64 `json:"CFL"`
	NumBoundaryCells int     `json:"NumBoundaryCells"`
	NumDomainCells   int     `json:"NumDomainCells"`
	FluxType         string  `json:"FluxType"`       // riemann or laxwendroff
	RiemannSolver    string  `json:"RiemannSolver"`  // rusanov, roe or hll
	Reconstruction   string  `json:"Reconstruction"` // firstorder or muscl
	Limiter          string  `json:"Limiter"`        // minmod, vanleer or superbee
	Integrator       string  `json:"Integrator"`     // euler or ssprk3
	BC               string  `json:"BC"`             // wall or outflow
	LogFrequency     int     `json:"LogFrequency"`   // Steps between progress lines, 0 is silent
	ParallelDegree   int     `json:"ParallelDegree"` // Goroutines used within a step, 1 is serial
}

// NewDefaultParameters describes Sod's shock tube on the unit interval
func NewDefaultParameters() (pp *ProblemParameters) {
	var (
		K = 100
	)
	pp = &ProblemParameters{
		Title:            "Sod Shock Tube",
		Dx:               1. / float64(K),
		Gamma:            1.4,
		FinalTime:        0.1,
		CFL:              0.5,
		NumBoundaryCells: 2,
		NumDomainCells:   K,
		FluxType:         "riemann",
		RiemannSolver:    "rusanov",
		Reconstruction:   "firstorder",
		Limiter:          "minmod",
		Integrator:       "euler",
		BC:               "wall",
		ParallelDegree:   1,
	}
	return
}

// Parse overlays the YAML document onto the receiver, so unset keys keep their current values
func (pp *ProblemParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, pp)
}

func (pp *ProblemParameters) TotalCells() int {
	return 2*pp.NumBoundaryCells + pp.NumDomainCells
}

// Validate checks the invariants of the record. A CFL above one is accepted.
func (pp *ProblemParameters) Validate() (err error) {
	check := func(ok bool, format string, args ...any) {
		if !ok && err == nil {
			err = fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...)
		}
	}
	check(pp.Dx > 0, "Dx must be positive, have %v", pp.Dx)
	check(pp.Gamma > 1, "Gamma must exceed 1, have %v", pp.Gamma)
	check(pp.FinalTime >= 0, "FinalTime must be non-negative, have %v", pp.FinalTime)
	check(pp.CFL > 0, "CFL must be positive, have %v", pp.CFL)
	check(pp.NumBoundaryCells >= 1, "NumBoundaryCells must be at least 1, have %d", pp.NumBoundaryCells)
	check(pp.NumDomainCells >= pp.NumBoundaryCells, "NumDomainCells must be at least NumBoundaryCells, have %d", pp.NumDomainCells)
	check(pp.LogFrequency >= 0, "LogFrequency must be non-negative, have %d", pp.LogFrequency)
	return
}

func (pp *ProblemParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", pp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", pp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", pp.FinalTime)
	fmt.Printf("%8.5f\t\t= Dx\n", pp.Dx)
	fmt.Printf("%8.5f\t\t= Gamma\n", pp.Gamma)
	fmt.Printf("[%d, %d]\t\t= Boundary, Domain Cells\n", pp.NumBoundaryCells, pp.NumDomainCells)
	fmt.Printf("[%s]\t\t= Flux Type\n", pp.FluxType)
	fmt.Printf("[%s]\t\t= Riemann Solver\n", pp.RiemannSolver)
	fmt.Printf("[%s/%s]\t= Reconstruction/Limiter\n", pp.Reconstruction, pp.Limiter)
	fmt.Printf("[%s]\t\t= Integrator\n", pp.Integrator)
	fmt.Printf("[%s]\t\t= Boundary Condition\n", pp.BC)
}
