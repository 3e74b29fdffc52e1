package mesh

import (
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// FlagField holds one CellFlag per cell of a box including ghost cells
type FlagField struct {
	Box   types.Box
	flags []CellFlag
	nx    int
	nxy   int
}

func NewFlagField(bx types.Box) (ff *FlagField) {
	ff = &FlagField{
		Box:   bx,
		flags: make([]CellFlag, bx.NumPts()),
		nx:    bx.Length(0),
		nxy:   bx.Length(0) * bx.Length(1),
	}
	return
}

func (ff *FlagField) index(iv types.IntVect) int {
	return (iv[0] - ff.Box.Lo[0]) + ff.nx*(iv[1]-ff.Box.Lo[1]) + ff.nxy*(iv[2]-ff.Box.Lo[2])
}

func (ff *FlagField) At(iv types.IntVect) CellFlag {
	return ff.flags[ff.index(iv)]
}

func (ff *FlagField) Set(iv types.IntVect, f CellFlag) {
	ff.flags[ff.index(iv)] = f
}

// AllRegular reports whether every cell of bx is regular
func (ff *FlagField) AllRegular(bx types.Box) (regular bool) {
	regular = true
	bx.ForEach(func(iv types.IntVect) {
		if regular && !ff.At(iv).IsRegular() {
			regular = false
		}
	})
	return
}

// Count returns the number of regular, cut and covered cells of bx
func (ff *FlagField) Count(bx types.Box) (nRegular, nCut, nCovered int) {
	bx.ForEach(func(iv types.IntVect) {
		switch f := ff.At(iv); {
		case f.IsRegular():
			nRegular++
		case f.IsCovered():
			nCovered++
		default:
			nCut++
		}
	})
	return
}

// EBFactory holds the per-cell flags and the area and volume fractions of a
// staircase embedded boundary described by covered boxes.
type EBFactory struct {
	Geom     *Geometry
	NGhost   int
	Flags    *FlagField
	VolFrac  *utils.Array4                 // one component over the grown domain
	AreaFrac [types.MaxDim]*utils.Array4 // one component over the domain faces per direction
}

/*
NewEBFactory classifies every cell of the domain grown by nGhost:
  - a cell inside any covered box is covered
  - a fluid cell is connected to each neighbour that exists in the grown
    box and is not covered
  - a fluid cell connected to all of its neighbours is regular, otherwise
    single-valued
Volume fractions are 1 for fluid and 0 for covered cells. A face has area
fraction 1 when both adjacent cells are fluid and 0 otherwise.
*/
func NewEBFactory(g *Geometry, nGhost int, covered []types.Box) (eb *EBFactory) {
	var (
		bx = g.GrownDomain(nGhost)
	)
	eb = &EBFactory{
		Geom:    g,
		NGhost:  nGhost,
		Flags:   NewFlagField(bx),
		VolFrac: utils.NewArray4(bx, 1),
	}
	isCovered := func(iv types.IntVect) bool {
		for _, cb := range covered {
			if cb.Contains(iv) {
				return true
			}
		}
		return false
	}
	bx.ForEach(func(iv types.IntVect) {
		if isCovered(iv) {
			eb.Flags.Set(iv, NewCoveredFlag())
			return
		}
		eb.VolFrac.SetIV(iv, 0, 1)
		var (
			f         CellFlag
			connected = true
		)
		forNeighbors(g.SpaceDim, func(off types.IntVect) {
			nb := iv.Add(off)
			if bx.Contains(nb) && !isCovered(nb) {
				f.SetConnected(off[0], off[1], off[2])
			} else {
				connected = false
			}
		})
		if connected {
			f.SetRegular()
		} else {
			f.SetSingleValued()
		}
		eb.Flags.Set(iv, f)
	})
	for dir := 0; dir < g.SpaceDim; dir++ {
		af := g.NewFaceArray(dir, 1)
		af.Box.ForEach(func(iv types.IntVect) {
			lo := iv.Shift(dir, -1)
			if eb.Flags.At(iv).IsCovered() || eb.Flags.At(lo).IsCovered() {
				return
			}
			af.SetIV(iv, 0, 1)
		})
		eb.AreaFrac[dir] = af
	}
	return
}

// ScaledAreas converts area fractions to face areas
func (eb *EBFactory) ScaledAreas() (area [types.MaxDim]*utils.Array4) {
	for dir := 0; dir < eb.Geom.SpaceDim; dir++ {
		area[dir] = eb.AreaFrac[dir].Copy()
		fa := eb.Geom.FaceArea(dir)
		for i := range area[dir].DataP {
			area[dir].DataP[i] *= fa
		}
	}
	return
}

// ScaledVolumes converts volume fractions to cell volumes
func (eb *EBFactory) ScaledVolumes() (vol *utils.Array4) {
	vol = eb.VolFrac.Copy()
	cv := eb.Geom.CellVolume()
	for i := range vol.DataP {
		vol.DataP[i] *= cv
	}
	return
}
