package mesh

import (
	"fmt"
	"strings"

	"github.com/notargets/ebdiffusion/types"
)

/*
CellFlag packs the embedded-boundary classification of a cell and its
connectivity to the 26 surrounding cells into one word. Bits 0-1 hold the
cell type, bits 2-28 one connectivity bit per offset in {-1,0,1}^3 in the
order (i fastest). The centre bit is always set for a non-covered cell.
*/
type CellFlag uint32

const (
	typeRegular CellFlag = iota
	typeSingleValued
	typeMultiValued
	typeCovered

	typeMask     CellFlag = 0x3
	neighborBase          = 2
	allNeighbors CellFlag = ((1 << 27) - 1) << neighborBase
)

func neighborBit(ii, jj, kk int) CellFlag {
	return 1 << (neighborBase + (ii + 1) + 3*(jj+1) + 9*(kk+1))
}

// NewRegularFlag is fully fluid and connected to all 3^spaceDim-1
// neighbours
func NewRegularFlag(spaceDim int) (f CellFlag) {
	f = typeRegular
	forNeighbors(spaceDim, func(off types.IntVect) {
		f |= neighborBit(off[0], off[1], off[2])
	})
	return
}

// NewCoveredFlag has no fluid and no connections
func NewCoveredFlag() CellFlag {
	return typeCovered
}

func (f CellFlag) IsRegular() bool      { return f&typeMask == typeRegular }
func (f CellFlag) IsSingleValued() bool { return f&typeMask == typeSingleValued }
func (f CellFlag) IsMultiValued() bool  { return f&typeMask == typeMultiValued }
func (f CellFlag) IsCovered() bool      { return f&typeMask == typeCovered }

// IsConnected reports whether the neighbour at offset (ii,jj,kk), each in
// {-1,0,1}, is reachable through fluid from this cell. It says nothing about
// the reverse direction, which must be queried on the neighbour's flag.
func (f CellFlag) IsConnected(ii, jj, kk int) bool {
	return f&neighborBit(ii, jj, kk) != 0
}

func (f CellFlag) IsConnectedIV(off types.IntVect) bool {
	return f.IsConnected(off[0], off[1], off[2])
}

func (f *CellFlag) setType(t CellFlag) {
	*f = (*f &^ typeMask) | t
}

func (f *CellFlag) SetRegular()      { f.setType(typeRegular) }
func (f *CellFlag) SetSingleValued() { f.setType(typeSingleValued) }

// SetCovered also drops every connection
func (f *CellFlag) SetCovered() {
	*f = typeCovered
}

func (f *CellFlag) SetConnected(ii, jj, kk int) {
	*f |= neighborBit(ii, jj, kk)
}

func (f *CellFlag) SetDisconnected(ii, jj, kk int) {
	*f &^= neighborBit(ii, jj, kk)
}

// NumConnected counts connected neighbours, the centre excluded
func (f CellFlag) NumConnected() (n int) {
	forNeighbors(types.MaxDim, func(off types.IntVect) {
		if off != (types.IntVect{}) && f.IsConnectedIV(off) {
			n++
		}
	})
	return
}

func (f CellFlag) String() string {
	var kind string
	switch f & typeMask {
	case typeRegular:
		kind = "regular"
	case typeSingleValued:
		kind = "single-valued"
	case typeMultiValued:
		kind = "multi-valued"
	default:
		kind = "covered"
	}
	var axes []string
	for d := 0; d < types.MaxDim; d++ {
		for _, s := range []int{-1, 1} {
			off := types.UnitVector(d).Scale(s)
			if f.IsConnectedIV(off) {
				axes = append(axes, fmt.Sprintf("%+d%c", s, 'x'+rune(d)))
			}
		}
	}
	return fmt.Sprintf("%s{%s}", kind, strings.Join(axes, ","))
}

// forNeighbors visits the offsets in {-1,0,1}^spaceDim, the centre
// included, with unused directions held at zero
func forNeighbors(spaceDim int, f func(off types.IntVect)) {
	var lim [types.MaxDim]int
	for d := 0; d < spaceDim; d++ {
		lim[d] = 1
	}
	for kk := -lim[2]; kk <= lim[2]; kk++ {
		for jj := -lim[1]; jj <= lim[1]; jj++ {
			for ii := -lim[0]; ii <= lim[0]; ii++ {
				f(types.IntVect{ii, jj, kk})
			}
		}
	}
}
