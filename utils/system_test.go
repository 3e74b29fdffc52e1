package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/ebdiffusion/types"
)

func TestIsNan(t *testing.T) {
	a := NewArray4(types.NewBox(types.IntVect{}, types.IntVect{1, 1, 0}), 2)
	assert.False(t, IsNan(a))
	assert.False(t, IsNan([]*Array4{a, a}))
	a.Set(1, 1, 0, 1, math.Inf(-1))
	assert.True(t, IsNan(a))
	assert.True(t, IsNan(math.NaN()))
	assert.True(t, IsNan([]float64{0, math.NaN()}))
	assert.Contains(t, GetMemUsage(), "GC cycles")
}
