package main

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gofv1d/InputParameters"
)

func TestOrders(t *testing.T) {
	cs := NewConvergenceStudy("synthetic", 0.5)
	for _, n := range []int{10, 20, 40} {
		h := 1. / float64(n)
		cs.Add(n, h, h*h, math.Sqrt(h), 0, 0, 0)
	}
	o1, o2, oHalf := cs.Orders(cs.rhoL1), cs.Orders(cs.uL1), cs.Orders(cs.pL1)
	assert.True(t, math.IsNaN(o1[0]))
	for i := 1; i < 3; i++ {
		assert.InDelta(t, 1., o1[i], 1.e-12)
		assert.InDelta(t, 2., o2[i], 1.e-12)
		assert.InDelta(t, 0.5, oHalf[i], 1.e-12)
	}
}

func TestParseSizes(t *testing.T) {
	numPTS, err := parseSizes("50, 100,200")
	require.NoError(t, err)
	assert.Equal(t, []int{50, 100, 200}, numPTS)
	_, err = parseSizes("50,x")
	assert.Error(t, err)
	_, err = parseSizes("1")
	assert.Error(t, err)
}

func TestRunStudy(t *testing.T) {
	pp := InputParameters.NewDefaultParameters()
	cs, err := RunStudy(pp, []int{25, 50, 100})
	require.NoError(t, err)
	assert.Equal(t, "rusanov-firstorder-minmod-euler", cs.title)
	require.Len(t, cs.rhoL1, 3)
	// Error drops under refinement; across a shock the order is below one
	for i, o := range cs.Orders(cs.rhoL1)[1:] {
		assert.Less(t, cs.rhoL1[i+1], cs.rhoL1[i])
		assert.Greater(t, o, 0.3)
		assert.Less(t, o, 1.2)
	}

	fileName := filepath.Join(t.TempDir(), "study.csv")
	writeCSV(fileName, map[string]*ConvergenceStudy{cs.title: cs})
	studies := readCSV(fileName)
	require.Contains(t, studies, cs.title)
	read := studies[cs.title]
	assert.Equal(t, cs.numPTS, read.numPTS)
	assert.Equal(t, cs.rhoL1, read.rhoL1)
	assert.Equal(t, cs.CFL, read.CFL)
}
