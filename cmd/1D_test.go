package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofv1d/FV1D"
	"github.com/notargets/gofv1d/InputParameters"
	"github.com/notargets/gofv1d/model_problems/Euler1D"
)

func TestProcessInput(t *testing.T) {
	var (
		err error
		pp  *InputParameters.ProblemParameters
		dir = t.TempDir()
	)
	{ // Defaults only
		pp, err = processInput(viper.New(), "")
		require.NoError(t, err)
		assert.Equal(t, 100, pp.NumDomainCells)
		assert.Equal(t, 50, pp.LogFrequency)
	}
	fileInput := []byte(`
Title: Test Case
CFL: 0.8
FinalTime: 0.2
NumDomainCells: 200
Dx: 0.005
RiemannSolver: Roe
Reconstruction: MUSCL
`)
	icFile := filepath.Join(dir, "case.yaml")
	require.NoError(t, os.WriteFile(icFile, fileInput, 0644))
	{ // Case file over the defaults
		pp, err = processInput(viper.New(), icFile)
		require.NoError(t, err)
		assert.Equal(t, "Test Case", pp.Title)
		assert.Equal(t, 0.8, pp.CFL)
		assert.Equal(t, 200, pp.NumDomainCells)
		assert.Equal(t, 0.005, pp.Dx)
		assert.Equal(t, "Roe", pp.RiemannSolver)
		assert.Equal(t, "minmod", pp.Limiter)
	}
	{ // Flags and config values over the case file
		v := viper.New()
		v.Set("k", 50)
		v.Set("CFL", 0.25)
		v.Set("limiter", "superbee")
		v.Set("bc", "outflow")
		pp, err = processInput(v, icFile)
		require.NoError(t, err)
		assert.Equal(t, 50, pp.NumDomainCells)
		assert.InDelta(t, 0.02, pp.Dx, 1.e-15)
		assert.Equal(t, 0.25, pp.CFL)
		assert.Equal(t, "superbee", pp.Limiter)
		assert.Equal(t, "outflow", pp.BC)
		assert.Equal(t, 0.2, pp.FinalTime)
	}
	{
		v := viper.New()
		v.Set("CFL", -1)
		_, err = processInput(v, "")
		assert.ErrorIs(t, err, InputParameters.ErrInvalidParameter)
		_, err = processInput(viper.New(), filepath.Join(dir, "missing.yaml"))
		assert.Error(t, err)
	}
}

func TestRun1D(t *testing.T) {
	var (
		dir = t.TempDir()
		pp  = InputParameters.NewDefaultParameters()
	)
	pp.NumDomainCells = 40
	pp.Dx = 1. / 40.
	m1d := &Model1D{Case: Euler1D.SOD_TUBE, OutFile: filepath.Join(dir, "sod.csv")}
	require.NoError(t, Run1D(m1d, pp))
	f, err := os.Open(m1d.OutFile)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 41)

	// The last state is still written when the run fails
	pp.CFL = 10
	m1d.OutFile = filepath.Join(dir, "unstable.csv")
	err = Run1D(m1d, pp)
	assert.ErrorIs(t, err, FV1D.ErrNumericalInstability)
	assert.FileExists(t, m1d.OutFile)
}
