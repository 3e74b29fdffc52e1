package types

import "fmt"

// MaxDim is the storage rank of every index; 2D runs keep the third
// component at zero.
const MaxDim = 3

// IntVect identifies a cell. A face is identified by the IntVect of the cell
// on its high side plus a direction.
type IntVect [MaxDim]int

func NewIntVect(i, j, k int) IntVect {
	return IntVect{i, j, k}
}

// UnitVector returns the IntVect with a one in direction dir
func UnitVector(dir int) (iv IntVect) {
	iv[dir] = 1
	return
}

func (iv IntVect) Add(o IntVect) IntVect {
	return IntVect{iv[0] + o[0], iv[1] + o[1], iv[2] + o[2]}
}

func (iv IntVect) Sub(o IntVect) IntVect {
	return IntVect{iv[0] - o[0], iv[1] - o[1], iv[2] - o[2]}
}

func (iv IntVect) Scale(s int) IntVect {
	return IntVect{s * iv[0], s * iv[1], s * iv[2]}
}

// Shift moves the index by n cells in direction dir
func (iv IntVect) Shift(dir, n int) IntVect {
	iv[dir] += n
	return iv
}

// Set returns a copy of iv with component dir replaced by val
func (iv IntVect) Set(dir, val int) IntVect {
	iv[dir] = val
	return iv
}

func (iv IntVect) String() string {
	return fmt.Sprintf("(%d,%d,%d)", iv[0], iv[1], iv[2])
}

// Box is an inclusive index range [Lo, Hi]
type Box struct {
	Lo, Hi IntVect
}

func NewBox(lo, hi IntVect) Box {
	return Box{Lo: lo, Hi: hi}
}

// NewDomainBox returns the cell box [0, n-1] in each of the first spaceDim
// directions
func NewDomainBox(spaceDim int, n [MaxDim]int) (bx Box) {
	for d := 0; d < spaceDim; d++ {
		bx.Hi[d] = n[d] - 1
	}
	return
}

func (bx Box) Length(dir int) int {
	return bx.Hi[dir] - bx.Lo[dir] + 1
}

func (bx Box) NumPts() int {
	if !bx.Ok() {
		return 0
	}
	return bx.Length(0) * bx.Length(1) * bx.Length(2)
}

func (bx Box) Ok() bool {
	for d := 0; d < MaxDim; d++ {
		if bx.Hi[d] < bx.Lo[d] {
			return false
		}
	}
	return true
}

func (bx Box) Contains(iv IntVect) bool {
	for d := 0; d < MaxDim; d++ {
		if iv[d] < bx.Lo[d] || iv[d] > bx.Hi[d] {
			return false
		}
	}
	return true
}

// Grow extends the box by n cells on both sides in the first spaceDim
// directions
func (bx Box) Grow(spaceDim, n int) Box {
	for d := 0; d < spaceDim; d++ {
		bx.Lo[d] -= n
		bx.Hi[d] += n
	}
	return bx
}

// SurroundingFaces converts a cell box to the box of faces normal to dir,
// the face index being that of the high-side cell
func (bx Box) SurroundingFaces(dir int) Box {
	bx.Hi[dir]++
	return bx
}

// Intersect returns the overlap of two boxes, which may not be Ok
func (bx Box) Intersect(o Box) (r Box) {
	for d := 0; d < MaxDim; d++ {
		r.Lo[d], r.Hi[d] = max(bx.Lo[d], o.Lo[d]), min(bx.Hi[d], o.Hi[d])
	}
	return
}

// ForEach visits every index of the box with the first direction fastest
func (bx Box) ForEach(f func(iv IntVect)) {
	for k := bx.Lo[2]; k <= bx.Hi[2]; k++ {
		for j := bx.Lo[1]; j <= bx.Hi[1]; j++ {
			for i := bx.Lo[0]; i <= bx.Hi[0]; i++ {
				f(IntVect{i, j, k})
			}
		}
	}
}

func (bx Box) String() string {
	return fmt.Sprintf("[%s, %s]", bx.Lo, bx.Hi)
}
