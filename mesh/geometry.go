package mesh

import (
	"fmt"

	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// Geometry is a uniform Cartesian problem domain
type Geometry struct {
	SpaceDim       int
	Domain         types.Box // cell box of the problem domain
	ProbLo, ProbHi [types.MaxDim]float64
}

func NewGeometry(spaceDim int, nCells [types.MaxDim]int, probLo, probHi [types.MaxDim]float64) (g *Geometry, err error) {
	if spaceDim != 2 && spaceDim != 3 {
		err = fmt.Errorf("space dimension must be 2 or 3, have %d", spaceDim)
		return
	}
	for d := 0; d < spaceDim; d++ {
		if nCells[d] < 1 {
			err = fmt.Errorf("need at least one cell in direction %d, have %d", d, nCells[d])
			return
		}
		if probHi[d] <= probLo[d] {
			err = fmt.Errorf("empty extent in direction %d: [%g, %g]", d, probLo[d], probHi[d])
			return
		}
	}
	g = &Geometry{
		SpaceDim: spaceDim,
		Domain:   types.NewDomainBox(spaceDim, nCells),
		ProbLo:   probLo,
		ProbHi:   probHi,
	}
	return
}

func (g *Geometry) CellSize(dir int) float64 {
	if dir >= g.SpaceDim {
		return 1
	}
	return (g.ProbHi[dir] - g.ProbLo[dir]) / float64(g.Domain.Length(dir))
}

// DxInv holds the inverse spacing per direction, one for unused directions
func (g *Geometry) DxInv() (dxinv [types.MaxDim]float64) {
	for d := 0; d < types.MaxDim; d++ {
		dxinv[d] = 1. / g.CellSize(d)
	}
	return
}

// CellCenter is the physical location of the centre of cell iv
func (g *Geometry) CellCenter(iv types.IntVect) (x [types.MaxDim]float64) {
	for d := 0; d < g.SpaceDim; d++ {
		x[d] = g.ProbLo[d] + (float64(iv[d])+0.5)*g.CellSize(d)
	}
	return
}

// CellVolume is the volume of a full cell
func (g *Geometry) CellVolume() (vol float64) {
	vol = 1
	for d := 0; d < g.SpaceDim; d++ {
		vol *= g.CellSize(d)
	}
	return
}

// FaceArea is the area of a full face normal to dir
func (g *Geometry) FaceArea(dir int) (area float64) {
	area = 1
	for d := 0; d < g.SpaceDim; d++ {
		if d != dir {
			area *= g.CellSize(d)
		}
	}
	return
}

// GrownDomain is the domain box with nGhost layers in the active directions
func (g *Geometry) GrownDomain(nGhost int) types.Box {
	return g.Domain.Grow(g.SpaceDim, nGhost)
}

// NewCellArray allocates a cell field over the domain with ghost cells
func (g *Geometry) NewCellArray(nGhost, nComp int) *utils.Array4 {
	return utils.NewArray4(g.GrownDomain(nGhost), nComp)
}

// NewFaceArray allocates a face field normal to dir over the domain faces
func (g *Geometry) NewFaceArray(dir, nComp int) *utils.Array4 {
	return utils.NewArray4(g.Domain.SurroundingFaces(dir), nComp)
}
