package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/ebdiffusion/types"
)

func TestArray4(t *testing.T) {
	bx := types.NewBox(types.IntVect{-1, -2, 0}, types.IntVect{2, 1, 1})
	a := NewArray4(bx, 3)
	assert.Equal(t, 4*4*2*3, len(a.DataP))
	{ // Test indexing is unique over box and components
		seen := make(map[int]bool)
		for n := 0; n < a.NComp; n++ {
			bx.ForEach(func(iv types.IntVect) {
				ind := a.Index(iv[0], iv[1], iv[2], n)
				assert.False(t, seen[ind])
				seen[ind] = true
			})
		}
		assert.Equal(t, len(a.DataP), len(seen))
		assert.Equal(t, 0, a.Index(-1, -2, 0, 0))
		assert.Equal(t, 1, a.Index(0, -2, 0, 0))
		assert.Equal(t, 4, a.Index(-1, -1, 0, 0))
	}
	{ // Test accessors
		iv := types.IntVect{2, 0, 1}
		a.SetIV(iv, 1, 2.5)
		a.AddIV(iv, 1, 0.5)
		assert.Equal(t, 3., a.At(2, 0, 1, 1))
		a.Scatter(iv, 0, []float64{7, 8, 9})
		dst := make([]float64, 2)
		a.Gather(iv, 1, dst)
		assert.Equal(t, []float64{8, 9}, dst)
		assert.Equal(t, 9., a.Comp(2)[a.Index(2, 0, 1, 0)])
		b := a.Copy()
		b.SetVal(0)
		assert.Equal(t, 7., a.AtIV(iv, 0))
		assert.Equal(t, 0., b.AtIV(iv, 0))
	}
	assert.Panics(t, func() { NewArray4(bx, 0) })
}
