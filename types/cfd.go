package types

import (
	"fmt"
	"strings"
)

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Wall        // Reflective, no flow through the wall
	BC_Out         // Transmissive, zero gradient
)

var BCNameMap = map[string]BCFLAG{
	"wall":         BC_Wall,
	"reflective":   BC_Wall,
	"noflow":       BC_Wall,
	"out":          BC_Out,
	"outflow":      BC_Out,
	"transmissive": BC_Out,
}

var bcPrintNames = []string{"None", "Wall", "Outflow"}

func (bc BCFLAG) String() string {
	if int(bc) < len(bcPrintNames) {
		return bcPrintNames[bc]
	}
	return fmt.Sprintf("BCFLAG(%d)", bc)
}

func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var ok bool
	if bc, ok = BCNameMap[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use boundary condition named %s", label)
	}
	return
}
