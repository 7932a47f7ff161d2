package FV1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gofv1d/InputParameters"
	"github.com/notargets/gofv1d/types"
	"github.com/notargets/gofv1d/utils"
)

// Simulator advances the 1D Euler equations on a uniform ghost augmented
// grid. It holds parameters and components only; each Run owns its state.
type Simulator struct {
	Title                     string
	Dx, Gamma, FinalTime, CFL float64
	NBoundary, NDomain        int
	LogFrequency              int
	Boundary                  BoundaryCondition
	Flux                      FluxCalculator
	Integrator                TimeIntegrator
	Timestep                  *CFLTimestep
	schemeNames               string
}

// Stats summarizes the step history of one run
type Stats struct {
	Steps        int
	Time         float64 // Final simulated time, equal to FinalTime on success
	DtSum        float64
	DtMin, DtMax float64
}

// NewSimulator uses a reflective boundary and forward Euler time stepping
// around the supplied flux calculator.
func NewSimulator(pp *InputParameters.ProblemParameters, fc FluxCalculator) (s *Simulator) {
	s = &Simulator{
		Title:        pp.Title,
		Dx:           pp.Dx,
		Gamma:        pp.Gamma,
		FinalTime:    pp.FinalTime,
		CFL:          pp.CFL,
		NBoundary:    pp.NumBoundaryCells,
		NDomain:      pp.NumDomainCells,
		LogFrequency: pp.LogFrequency,
		Boundary:     NewNoFlowBoundary(pp.NumBoundaryCells, pp.NumDomainCells),
		Flux:         fc,
		Integrator:   NewExplicitEuler(pp.Dx, pp.NumBoundaryCells, pp.NumDomainCells, nil),
		Timestep:     NewCFLTimestep(pp.Dx, pp.Gamma, pp.CFL),
		schemeNames:  "user supplied flux",
	}
	return
}

// NewSimulatorFromParameters resolves every scheme named in pp
func NewSimulatorFromParameters(pp *InputParameters.ProblemParameters) (s *Simulator, err error) {
	var (
		ft   FluxType
		rt   RiemannType
		rc   ReconstructionType
		it   IntegratorType
		bc   types.BCFLAG
		lim  Limiter
		fc   FluxCalculator
		pm   *utils.PartitionMap
		nb   = pp.NumBoundaryCells
		nd   = pp.NumDomainCells
		name string
	)
	if err = pp.Validate(); err != nil {
		return
	}
	if ft, err = NewFluxType(pp.FluxType); err != nil {
		return
	}
	if it, err = NewIntegratorType(pp.Integrator); err != nil {
		return
	}
	if bc, err = types.NewBCFLAG(pp.BC); err != nil {
		return
	}
	if pp.ParallelDegree != 1 {
		pm = utils.NewPartitionMap(pp.ParallelDegree, nd+1)
	}
	switch ft {
	case FLUX_LaxWendroff:
		fc = NewLaxWendroffFluxCalculator(pp.Dx, pp.Gamma, nb, nd)
		name = ft.Print()
	case FLUX_Riemann:
		var rcs SpatialReconstructor
		if rt, err = NewRiemannType(pp.RiemannSolver); err != nil {
			return
		}
		if rc, err = NewReconstructionType(pp.Reconstruction); err != nil {
			return
		}
		switch rc {
		case Reconstruction_MUSCL:
			if nb < 2 {
				err = fmt.Errorf("%w: MUSCL reconstruction needs NumBoundaryCells >= 2, have %d",
					InputParameters.ErrInvalidParameter, nb)
				return
			}
			if lim, err = NewLimiter(pp.Limiter); err != nil {
				return
			}
			rcs = NewMUSCLReconstructor(nb, nd, lim)
			name = fmt.Sprintf("%s Flux, %s Reconstruction (%s)", rt.Print(), rc.Print(), pp.Limiter)
		default:
			rcs = NewFirstOrderReconstructor(nb, nd)
			name = fmt.Sprintf("%s Flux, %s Reconstruction", rt.Print(), rc.Print())
		}
		fc = NewRiemannFluxCalculator(rcs, NewRiemannSolver(rt, pp.Gamma, pm))
	}
	s = NewSimulator(pp, fc)
	if s.Boundary, err = NewBoundaryCondition(bc, nb, nd); err != nil {
		return nil, err
	}
	s.Integrator = NewTimeIntegrator(it, pp.Dx, nb, nd, pm)
	s.schemeNames = fmt.Sprintf("%s, %s Integration, %s Boundaries", name, it.Print(), bc.String())
	return
}

func (s *Simulator) TotalCells() int {
	return 2*s.NBoundary + s.NDomain
}

// Run advances the primitive field V from t = 0 to FinalTime and returns the
// final primitive field. V must have TotalCells rows and 3 columns; anything
// else panics. If the state becomes unphysical the last state is returned
// along with a *NumericalInstabilityError.
func (s *Simulator) Run(V utils.Matrix) (Vf utils.Matrix, err error) {
	Vf, _, err = s.RunWithStats(V)
	return
}

func (s *Simulator) RunWithStats(V utils.Matrix) (Vf utils.Matrix, stats Stats, err error) {
	if nr, nc := V.Dims(); nr != s.TotalCells() || nc != NumFields {
		panic(fmt.Errorf("initial condition must be [%d,%d], have [%d,%d]", s.TotalCells(), NumFields, nr, nc))
	}
	var (
		Time, dt float64
		tstep    int
		U        = ToConservative(V, s.Gamma)
	)
	s.Boundary.Apply(U)
	s.printHeader()
	if err = s.checkState(U, tstep, Time); err != nil {
		return ToPrimitive(U, s.Gamma), stats, err
	}
	stats.DtMin = math.Inf(1)
	for Time < s.FinalTime {
		dt = s.Timestep.Compute(U)
		if !(dt > 0) || math.IsInf(dt, 0) {
			err = &NumericalInstabilityError{Step: tstep, Time: Time, Cell: -1,
				Rho: math.NaN(), P: math.NaN(),
				Description: fmt.Sprintf("invalid time step %v", dt)}
			break
		}
		isDone := Time+dt >= s.FinalTime
		if isDone {
			dt = s.FinalTime - Time
		}
		s.Integrator.Update(U, dt, s.Flux, s.Boundary)
		tstep++
		if isDone {
			Time = s.FinalTime
		} else {
			Time += dt
		}
		stats.DtSum += dt
		stats.DtMin = math.Min(stats.DtMin, dt)
		stats.DtMax = math.Max(stats.DtMax, dt)
		if err = s.checkState(U, tstep, Time); err != nil {
			break
		}
		if s.LogFrequency > 0 && (tstep%s.LogFrequency == 0 || isDone) {
			rho := U.M.Slice(s.NBoundary, s.NBoundary+s.NDomain, IRho, IRho+1)
			fmt.Printf("Time = %8.4f, step = %d, dt = %8.6f, rhoMin = %8.6f, rhoMax = %8.6f\n",
				Time, tstep, dt, mat.Min(rho), mat.Max(rho))
		}
	}
	if tstep == 0 {
		stats.DtMin = 0
	}
	stats.Steps = tstep
	stats.Time = Time
	Vf = ToPrimitive(U, s.Gamma)
	return
}

// checkState rejects NaN, Inf, non-positive density or non-positive pressure in the domain
func (s *Simulator) checkState(U utils.Matrix, tstep int, Time float64) (err error) {
	for i := s.NBoundary; i < s.NBoundary+s.NDomain; i++ {
		var (
			q   = U.RowView(i)
			rho = q[IRho]
			p   = Pressure(rho, Velocity(rho, q[IRhoU]), q[IEner], s.Gamma)
		)
		var desc string
		switch {
		case utils.IsNan(q) || utils.IsNan(p):
			desc = "non finite state"
		case rho <= 0:
			desc = "non positive density"
		case p <= 0:
			desc = "non positive pressure"
		default:
			continue
		}
		return &NumericalInstabilityError{Step: tstep, Time: Time, Cell: i, Rho: rho, P: p, Description: desc}
	}
	return
}

func (s *Simulator) printHeader() {
	if s.LogFrequency <= 0 {
		return
	}
	fmt.Printf("Euler Equations in 1 Dimension\n%s\nModel Type: %s\n", s.Title, s.schemeNames)
	fmt.Printf("CFL = %8.4f, Domain Cells = %d, Ghost Cells = %d, dx = %8.6f, FinalTime = %8.4f\n\n",
		s.CFL, s.NDomain, s.NBoundary, s.Dx, s.FinalTime)
}
