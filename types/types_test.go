package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypes(t *testing.T) {
	{ // Test index arithmetic
		iv := NewIntVect(3, 4, 5)
		assert.Equal(t, IntVect{2, 4, 5}, iv.Sub(UnitVector(0)))
		assert.Equal(t, IntVect{3, 6, 5}, iv.Shift(1, 2))
		assert.Equal(t, IntVect{3, 4, -1}, iv.Set(2, -1))
		assert.Equal(t, IntVect{6, 8, 10}, iv.Add(iv))
		assert.Equal(t, IntVect{0, 0, -1}, UnitVector(2).Scale(-1))
		// Values are copied, the receiver is untouched
		assert.Equal(t, IntVect{3, 4, 5}, iv)
	}
	{ // Test boxes
		bx := NewDomainBox(2, [MaxDim]int{4, 3, 7})
		assert.Equal(t, IntVect{3, 2, 0}, bx.Hi)
		assert.Equal(t, 12, bx.NumPts())
		g := bx.Grow(2, 1)
		assert.Equal(t, IntVect{-1, -1, 0}, g.Lo)
		assert.Equal(t, IntVect{4, 3, 0}, g.Hi)
		fx := bx.SurroundingFaces(0)
		assert.Equal(t, 15, fx.NumPts())
		assert.True(t, fx.Contains(IntVect{4, 0, 0}))
		assert.False(t, bx.Contains(IntVect{4, 0, 0}))
		var count int
		last := IntVect{-1, -1, -1}
		bx.ForEach(func(iv IntVect) {
			count++
			last = iv
		})
		assert.Equal(t, 12, count)
		assert.Equal(t, bx.Hi, last)
		empty := bx.Intersect(NewBox(IntVect{10, 10, 0}, IntVect{12, 12, 0}))
		assert.False(t, empty.Ok())
		assert.Equal(t, 0, empty.NumPts())
	}
	{ // Test field layout
		fl, err := NewFieldLayout(3)
		require.NoError(t, err)
		assert.Equal(t, 9, fl.NQ())
		assert.Equal(t, 7, fl.NVAR())
		assert.Equal(t, 6, fl.NCoef())
		assert.Equal(t, 2, fl.RhoD(2))
		assert.Equal(t, []int{3, 4, 5}, []int{fl.Mu(), fl.Xi(), fl.Lambda()})
		assert.Equal(t, "Species[1]", fl.ConservedName(UFS+1))
		assert.Equal(t, "Energy", fl.ConservedName(UEDEN))
		_, err = NewFieldLayout(0)
		assert.Error(t, err)
	}
	{ // Test BC names
		tokens := []string{"Isothermal", " TWALL", "adiabatic", "Wall", "none"}
		flags := []BCFLAG{BC_Isothermal, BC_Isothermal, BC_Adiabatic, BC_Adiabatic, BC_None}
		for i, token := range tokens {
			bf, ok := NewBCFLAG(token)
			assert.True(t, ok)
			assert.Equal(t, flags[i], bf)
		}
		_, ok := NewBCFLAG("periodic")
		assert.False(t, ok)
		df, ok := ParseDomainFace("YHi")
		assert.True(t, ok)
		assert.Equal(t, DomainFace{Dir: 1, High: true}, df)
		assert.Equal(t, 1, df.Normal())
		assert.Equal(t, -1, DomainFace{Dir: 0}.Normal())
	}
}
