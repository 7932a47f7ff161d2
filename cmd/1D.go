/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gofv1d/InputParameters"
	"github.com/notargets/gofv1d/model_problems/Euler1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One Dimensional Model Problem Solutions",
	Long: `
Executes the finite volume Euler solver for a model problem. Parameters come from
the defaults (Sod's shock tube), then an optional YAML case file (-I), then the
config file, environment and command line flags.

gofv1d 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			pp  *InputParameters.ProblemParameters
		)
		fmt.Println("1D called")
		m1d := &Model1D{}
		m1d.ICFile, _ = cmd.Flags().GetString("inputConditionsFile")
		m1d.OutFile, _ = cmd.Flags().GetString("outputFile")
		caseName, _ := cmd.Flags().GetString("case")
		if m1d.Case, err = Euler1D.NewCaseType(caseName); err != nil {
			exitOnError(err)
		}
		if pp, err = processInput(viper.GetViper(), m1d.ICFile); err != nil {
			exitOnError(err)
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err = Run1D(m1d, pp); err != nil {
			exitOnError(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	pp := InputParameters.NewDefaultParameters()
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", exampleFile)
	OneDCmd.Flags().StringP("outputFile", "o", "", "CSV file for the final solution and the exact solution")
	OneDCmd.Flags().StringP("case", "c", "sod", "Case to run: sod = SOD Shock Tube, freestream = uniform state at rest")
	OneDCmd.Flags().IntP("k", "k", pp.NumDomainCells, "Number of domain cells")
	OneDCmd.Flags().Int("nb", pp.NumBoundaryCells, "Number of ghost cells at each end")
	OneDCmd.Flags().Float64("xMax", 1, "Length of the domain, the cell size is xMax/k")
	OneDCmd.Flags().Float64("CFL", pp.CFL, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", pp.FinalTime, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().Float64("gamma", pp.Gamma, "ratio of specific heats")
	OneDCmd.Flags().String("flux", pp.FluxType, "flux type: riemann, laxwendroff")
	OneDCmd.Flags().String("riemann", pp.RiemannSolver, "riemann solver: rusanov, roe, hll")
	OneDCmd.Flags().String("reconstruction", pp.Reconstruction, "reconstruction: firstorder, muscl")
	OneDCmd.Flags().String("limiter", pp.Limiter, "slope limiter for MUSCL: minmod, vanleer, superbee")
	OneDCmd.Flags().String("integrator", pp.Integrator, "time integrator: euler, ssprk3")
	OneDCmd.Flags().String("bc", pp.BC, "boundary condition at both ends: wall, outflow")
	OneDCmd.Flags().Int("logFrequency", 50, "steps between progress lines, 0 is silent")
	OneDCmd.Flags().Int("parallel", pp.ParallelDegree, "goroutines used within a step, 0 uses every CPU")
	for _, name := range paramFlags {
		if err := viper.BindPFlag(name, OneDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

var paramFlags = []string{"k", "nb", "xMax", "CFL", "finalTime", "gamma", "flux", "riemann",
	"reconstruction", "limiter", "integrator", "bc", "logFrequency", "parallel"}

const exampleFile = `YAML file for input parameters like:
########################################
Title: "Sod Shock Tube"
CFL: 0.5
FinalTime: 0.2
NumDomainCells: 200
Dx: 0.005
RiemannSolver: roe
Reconstruction: muscl
Limiter: vanleer
Integrator: ssprk3
########################################`

type Model1D struct {
	ICFile, OutFile string
	Case            Euler1D.CaseType
}

// processInput layers the case file and any values set through v over the defaults
func processInput(v *viper.Viper, icFile string) (pp *InputParameters.ProblemParameters, err error) {
	var (
		data []byte
	)
	pp = InputParameters.NewDefaultParameters()
	pp.LogFrequency = 50
	if len(icFile) != 0 {
		if data, err = os.ReadFile(icFile); err != nil {
			return nil, err
		}
		if err = pp.Parse(data); err != nil {
			return nil, fmt.Errorf("unable to parse %s: %w", icFile, err)
		}
	}
	xMax := pp.Dx * float64(pp.NumDomainCells)
	if v.IsSet("xMax") {
		xMax = v.GetFloat64("xMax")
	}
	if v.IsSet("k") {
		pp.NumDomainCells = v.GetInt("k")
	}
	if v.IsSet("xMax") || v.IsSet("k") {
		pp.Dx = xMax / float64(pp.NumDomainCells)
	}
	setInt := func(key string, target *int) {
		if v.IsSet(key) {
			*target = v.GetInt(key)
		}
	}
	setFloat := func(key string, target *float64) {
		if v.IsSet(key) {
			*target = v.GetFloat64(key)
		}
	}
	setString := func(key string, target *string) {
		if v.IsSet(key) {
			*target = v.GetString(key)
		}
	}
	setInt("nb", &pp.NumBoundaryCells)
	setInt("logFrequency", &pp.LogFrequency)
	setInt("parallel", &pp.ParallelDegree)
	setFloat("CFL", &pp.CFL)
	setFloat("finalTime", &pp.FinalTime)
	setFloat("gamma", &pp.Gamma)
	setString("flux", &pp.FluxType)
	setString("riemann", &pp.RiemannSolver)
	setString("reconstruction", &pp.Reconstruction)
	setString("limiter", &pp.Limiter)
	setString("integrator", &pp.Integrator)
	setString("bc", &pp.BC)
	if err = pp.Validate(); err != nil {
		return nil, err
	}
	return
}

// Run1D runs the case and writes the CSV file even when the run ended on a
// numerical instability, so the last state can be inspected.
func Run1D(m1d *Model1D, pp *InputParameters.ProblemParameters) (err error) {
	var (
		c      *Euler1D.Euler
		runErr error
		f      *os.File
	)
	pp.Print()
	if c, err = Euler1D.NewEuler(pp, m1d.Case); err != nil {
		return
	}
	if runErr = c.Run(); runErr == nil {
		c.PrintSummary()
	}
	if len(m1d.OutFile) != 0 {
		if f, err = os.Create(m1d.OutFile); err != nil {
			return
		}
		defer f.Close()
		if err = c.WriteCSV(f); err != nil {
			return
		}
		fmt.Printf("Wrote solution to %s\n", m1d.OutFile)
	}
	return runErr
}

func exitOnError(err error) {
	fmt.Printf("error: %s\n", err.Error())
	os.Exit(1)
}
