package utils

import (
	"fmt"

	"github.com/notargets/ebdiffusion/types"
)

// Array4 stores NComp components over a box with the first index fastest,
// then j, k and the component last. The box normally includes ghost cells.
type Array4 struct {
	Box        types.Box
	NComp      int
	nx, nxy    int
	compStride int
	DataP      []float64
}

func NewArray4(bx types.Box, nComp int) (a *Array4) {
	if !bx.Ok() || nComp < 1 {
		panic(fmt.Errorf("invalid Array4 dimensions: box %s, ncomp %d", bx, nComp))
	}
	a = &Array4{
		Box:   bx,
		NComp: nComp,
		nx:    bx.Length(0),
		nxy:   bx.Length(0) * bx.Length(1),
	}
	a.compStride = a.nxy * bx.Length(2)
	a.DataP = make([]float64, a.compStride*nComp)
	return
}

func (a *Array4) Index(i, j, k, n int) int {
	return (i - a.Box.Lo[0]) + a.nx*(j-a.Box.Lo[1]) + a.nxy*(k-a.Box.Lo[2]) + a.compStride*n
}

func (a *Array4) At(i, j, k, n int) float64 {
	return a.DataP[a.Index(i, j, k, n)]
}

func (a *Array4) AtIV(iv types.IntVect, n int) float64 {
	return a.DataP[a.Index(iv[0], iv[1], iv[2], n)]
}

func (a *Array4) Set(i, j, k, n int, val float64) {
	a.DataP[a.Index(i, j, k, n)] = val
}

func (a *Array4) SetIV(iv types.IntVect, n int, val float64) {
	a.DataP[a.Index(iv[0], iv[1], iv[2], n)] = val
}

func (a *Array4) AddIV(iv types.IntVect, n int, val float64) {
	a.DataP[a.Index(iv[0], iv[1], iv[2], n)] += val
}

// Comp returns the contiguous slice holding component n
func (a *Array4) Comp(n int) []float64 {
	return a.DataP[n*a.compStride : (n+1)*a.compStride]
}

func (a *Array4) SetVal(val float64) {
	for i := range a.DataP {
		a.DataP[i] = val
	}
}

// Gather copies components [n0, n0+len(dst)) at iv into dst
func (a *Array4) Gather(iv types.IntVect, n0 int, dst []float64) {
	ind := a.Index(iv[0], iv[1], iv[2], n0)
	for n := range dst {
		dst[n] = a.DataP[ind+n*a.compStride]
	}
}

// Scatter is the inverse of Gather
func (a *Array4) Scatter(iv types.IntVect, n0 int, src []float64) {
	ind := a.Index(iv[0], iv[1], iv[2], n0)
	for n, val := range src {
		a.DataP[ind+n*a.compStride] = val
	}
}

func (a *Array4) Copy() (b *Array4) {
	b = NewArray4(a.Box, a.NComp)
	copy(b.DataP, a.DataP)
	return
}
