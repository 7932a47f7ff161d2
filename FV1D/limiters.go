package FV1D

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gofv1d/utils"
)

// Limiter maps the backward and forward differences of a cell to a limited slope
type Limiter func(a, b float64) float64

func Minmod(a, b float64) float64 {
	switch {
	case a*b <= 0:
		return 0
	case math.Abs(a) < math.Abs(b):
		return a
	}
	return b
}

func VanLeer(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	return 2 * a * b / (a + b)
}

func Superbee(a, b float64) float64 {
	if a*b <= 0 {
		return 0
	}
	var (
		aa, ab = math.Abs(a), math.Abs(b)
		s      = utils.Sign(a)
	)
	return s * math.Max(math.Min(2*aa, ab), math.Min(aa, 2*ab))
}

var (
	LimiterNames = map[string]Limiter{
		"minmod":   Minmod,
		"vanleer":  VanLeer,
		"superbee": Superbee,
	}
)

func NewLimiter(label string) (l Limiter, err error) {
	var ok bool
	label = strings.ToLower(label)
	if l, ok = LimiterNames[label]; !ok {
		err = fmt.Errorf("unable to use limiter named %s", label)
	}
	return
}
