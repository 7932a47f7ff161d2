package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/gofv1d/FV1D"
	"github.com/notargets/gofv1d/InputParameters"
	"github.com/notargets/gofv1d/model_problems/Euler1D"
)

var (
	csvFile, outFile string
	sizes            = "50,100,200,400"
)

func main() {
	var (
		pp = InputParameters.NewDefaultParameters()
	)
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study, skips running")
	outFilePtr := flag.String("out", outFile, "write the convergence study to this CSV file")
	sizesPtr := flag.String("sizes", sizes, "comma separated list of domain cell counts")
	flag.StringVar(&pp.RiemannSolver, "riemann", pp.RiemannSolver, "riemann solver: rusanov, roe, hll")
	flag.StringVar(&pp.Reconstruction, "reconstruction", pp.Reconstruction, "reconstruction: firstorder, muscl")
	flag.StringVar(&pp.Limiter, "limiter", pp.Limiter, "slope limiter for MUSCL: minmod, vanleer, superbee")
	flag.StringVar(&pp.Integrator, "integrator", pp.Integrator, "time integrator: euler, ssprk3")
	flag.StringVar(&pp.FluxType, "flux", pp.FluxType, "flux type: riemann, laxwendroff")
	flag.Float64Var(&pp.CFL, "CFL", pp.CFL, "CFL number")
	flag.Float64Var(&pp.FinalTime, "finalTime", pp.FinalTime, "FinalTime - the target end time for each run")
	flag.Parse()
	csvFile, outFile, sizes = *csvFilePtr, *outFilePtr, *sizesPtr

	var studies map[string]*ConvergenceStudy
	if len(csvFile) != 0 {
		fmt.Printf("Input file: %v\n", csvFile)
		studies = readCSV(csvFile)
	} else {
		numPTS, err := parseSizes(sizes)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			flag.Usage()
			os.Exit(1)
		}
		cs, err := RunStudy(pp, numPTS)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		studies = map[string]*ConvergenceStudy{cs.title: cs}
		if len(outFile) != 0 {
			writeCSV(outFile, studies)
		}
	}
	keys := make([]string, 0, len(studies))
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		studies[key].Print()
	}
}

type ConvergenceStudy struct {
	title              string
	CFL                float64
	numPTS             []int
	rhoL1, uL1, pL1    []float64
	rhoMAX, uMAX, pMAX []float64
}

func NewConvergenceStudy(title string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, rhoL1, uL1, pL1, rhoMAX, uMAX, pMAX float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.rhoL1 = append(cs.rhoL1, rhoL1)
	cs.uL1 = append(cs.uL1, uL1)
	cs.pL1 = append(cs.pL1, pL1)
	cs.rhoMAX = append(cs.rhoMAX, rhoMAX)
	cs.uMAX = append(cs.uMAX, uMAX)
	cs.pMAX = append(cs.pMAX, pMAX)
}

// Orders returns the observed order of accuracy between successive entries,
// the first entry has no predecessor and is NaN.
func (cs *ConvergenceStudy) Orders(errs []float64) (orders []float64) {
	orders = make([]float64, len(errs))
	for i := range errs {
		if i == 0 {
			orders[i] = math.NaN()
			continue
		}
		ratio := float64(cs.numPTS[i]) / float64(cs.numPTS[i-1])
		orders[i] = math.Log(errs[i-1]/errs[i]) / math.Log(ratio)
	}
	return
}

func (cs *ConvergenceStudy) Print() {
	fmt.Printf("Title = %s, CFL = %5.2f\n", cs.title, cs.CFL)
	fmt.Printf("%8s, %12s, %8s, %12s, %8s, %12s, %8s\n", "N", "rhoL1", "order", "uL1", "order", "pL1", "order")
	rhoO, uO, pO := cs.Orders(cs.rhoL1), cs.Orders(cs.uL1), cs.Orders(cs.pL1)
	for i := range cs.numPTS {
		fmt.Printf("%8d, %12.6e, %8.3f, %12.6e, %8.3f, %12.6e, %8.3f\n",
			cs.numPTS[i], cs.rhoL1[i], rhoO[i], cs.uL1[i], uO[i], cs.pL1[i], pO[i])
	}
}

// RunStudy runs the Sod shock tube on the unit interval at every size in numPTS
func RunStudy(pp *InputParameters.ProblemParameters, numPTS []int) (cs *ConvergenceStudy, err error) {
	var (
		c *Euler1D.Euler
	)
	cs = NewConvergenceStudy(studyTitle(pp), pp.CFL)
	for _, n := range numPTS {
		ppN := *pp
		ppN.NumDomainCells = n
		ppN.Dx = 1. / float64(n)
		ppN.LogFrequency = 0
		if c, err = Euler1D.NewEuler(&ppN, Euler1D.SOD_TUBE); err != nil {
			return
		}
		if err = c.Run(); err != nil {
			return
		}
		l1, lInf := c.Errors()
		cs.Add(n, l1[FV1D.IRho], l1[FV1D.IU], l1[FV1D.IP], lInf[FV1D.IRho], lInf[FV1D.IU], lInf[FV1D.IP])
		fmt.Printf("N = %d, steps = %d, elapsed = %v\n", n, c.Stats.Steps, c.Elapsed)
	}
	return
}

func studyTitle(pp *InputParameters.ProblemParameters) string {
	if strings.EqualFold(pp.FluxType, "riemann") {
		return strings.Join([]string{pp.RiemannSolver, pp.Reconstruction, pp.Limiter, pp.Integrator}, "-")
	}
	return strings.Join([]string{pp.FluxType, pp.Integrator}, "-")
}

func parseSizes(txt string) (numPTS []int, err error) {
	for _, field := range strings.Split(txt, ",") {
		var n int
		if n, err = strconv.Atoi(strings.TrimSpace(field)); err != nil {
			return nil, err
		}
		if n < 2 {
			return nil, fmt.Errorf("grid size must be at least 2, have %d", n)
		}
		numPTS = append(numPTS, n)
	}
	return
}

var csvHeader = []string{"title", "numPTS", "CFL", "rhoL1", "uL1", "pL1", "rhoMAX", "uMAX", "pMAX"}

func writeCSV(csvFile string, studies map[string]*ConvergenceStudy) {
	var (
		err error
		f   *os.File
	)
	if f, err = os.Create(csvFile); err != nil {
		panic(err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		panic(err)
	}
	ff := func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
	for _, cs := range studies {
		for i, n := range cs.numPTS {
			rec := []string{cs.title, strconv.Itoa(n), ff(cs.CFL),
				ff(cs.rhoL1[i]), ff(cs.uL1[i]), ff(cs.pL1[i]), ff(cs.rhoMAX[i]), ff(cs.uMAX[i]), ff(cs.pMAX[i])}
			if err = w.Write(rec); err != nil {
				panic(err)
			}
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		panic(err)
	}
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records                             [][]string
		err                                 error
		f                                   *os.File
		ok                                  bool
		cs                                  *ConvergenceStudy
		cfl                                 float64
		rhoL1, uL1, pL1, rhoMAX, uMAX, pMAX float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	defer f.Close()
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, nptstxt, cfltxt := rec[0], rec[1], rec[2]
		npts, _ := strconv.Atoi(nptstxt)
		_, _ = fmt.Sscanf(cfltxt, "%g", &cfl)
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title, cfl)
			studies[title] = cs
		}
		_, _ = fmt.Sscanf(rec[3], "%g", &rhoL1)
		_, _ = fmt.Sscanf(rec[4], "%g", &uL1)
		_, _ = fmt.Sscanf(rec[5], "%g", &pL1)
		_, _ = fmt.Sscanf(rec[6], "%g", &rhoMAX)
		_, _ = fmt.Sscanf(rec[7], "%g", &uMAX)
		_, _ = fmt.Sscanf(rec[8], "%g", &pMAX)
		cs.Add(npts, rhoL1, uL1, pL1, rhoMAX, uMAX, pMAX)
	}
	return
}
