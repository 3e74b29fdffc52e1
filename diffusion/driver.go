package diffusion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// Fields are the read-only inputs of a sweep. Q holds the primitive state
// over the domain grown by at least one cell, Flags cover the domain grown
// by two.
type Fields struct {
	Q     *utils.Array4
	Flags *mesh.FlagField
	Area  [types.MaxDim]*utils.Array4 // face areas, already scaled by area fraction
	Vol   *utils.Array4               // fluid cell volumes
}

// WallBC is an isothermal wall on one face of the domain
type WallBC struct {
	Face  types.DomainFace
	Twall float64
}

type Result struct {
	Flux       [types.MaxDim]*utils.Array4 // area weighted face fluxes, NVAR components
	Div        *utils.Array4               // cell update over the domain, NVAR components
	NumUniform int                         // slabs swept with the uniform kernel
	NumEB      int
}

/*
Diffterm computes the diffusive face fluxes in every direction and their
divergence. Each direction's face box is cut into ParallelDegree slabs, one
goroutine and one Workspace per slab. A slab whose stencil cells are all
regular runs the uniform kernel, any other slab the boundary-aware one.
Isothermal walls are added to the face fluxes before the divergence. Covered
cells get a zero update.
*/
func (op *Operator) Diffterm(f Fields, walls []WallBC, ParallelDegree int) (res *Result, err error) {
	var (
		g     = op.Geom
		dxinv = g.DxInv()
		nvar  = op.Layout.NVAR()
		wss   = make([]*Workspace, max(ParallelDegree, 1))
	)
	if !f.Q.Box.Contains(g.GrownDomain(1).Lo) || !f.Q.Box.Contains(g.GrownDomain(1).Hi) {
		err = fmt.Errorf("state box %s does not cover the domain with one ghost cell", f.Q.Box)
		return
	}
	for np := range wss {
		wss[np] = op.NewWorkspace()
	}
	coef := utils.NewArray4(f.Q.Box, op.Layout.NCoef())
	utils.ParallelForSlabs(f.Q.Box, ParallelDegree, func(np int, slab types.Box) {
		op.CellCoefficients(slab, f.Q, f.Flags, coef, wss[np])
	})

	res = &Result{Div: g.NewCellArray(0, nvar)}
	for dir := 0; dir < op.SpaceDim; dir++ {
		flx := g.NewFaceArray(dir, nvar)
		kernel := make([]int, len(wss))
		utils.ParallelForSlabs(flx.Box, ParallelDegree, func(np int, slab types.Box) {
			ws := wss[np]
			if f.Flags.AllRegular(stencilBox(slab, dir, op.SpaceDim)) {
				kernel[np] = uniformKernel
				slab.ForEach(func(iv types.IntVect) {
					FaceCoefficients(iv, dir, coef, f.Flags, ws.coef)
					op.UniformFlux(iv, dir, f.Q, ws.coef, f.Area[dir], dxinv, flx, ws)
				})
				return
			}
			kernel[np] = ebKernel
			slab.ForEach(func(iv types.IntVect) {
				FaceCoefficients(iv, dir, coef, f.Flags, ws.coef)
				op.EBFlux(iv, dir, f.Q, ws.coef, f.Flags, f.Area[dir], dxinv, flx, ws)
			})
		})
		for _, k := range kernel {
			switch k {
			case uniformKernel:
				res.NumUniform++
			case ebKernel:
				res.NumEB++
			}
		}
		res.Flux[dir] = flx
	}

	for _, w := range walls {
		if w.Face.Dir >= op.SpaceDim {
			err = fmt.Errorf("wall on direction %d in a %dD domain", w.Face.Dir, op.SpaceDim)
			return
		}
		var (
			dir   = w.Face.Dir
			plane = g.Domain.SurroundingFaces(dir)
		)
		if w.Face.High {
			plane.Lo[dir] = plane.Hi[dir]
		} else {
			plane.Hi[dir] = plane.Lo[dir]
		}
		utils.ParallelForSlabs(plane, ParallelDegree, func(np int, slab types.Box) {
			slab.ForEach(func(iv types.IntVect) {
				op.IsothermalWallFlux(iv, dir, w.Face.Normal(), f.Q, w.Twall, f.Flags,
					f.Area[dir], res.Flux[dir], wss[np])
			})
		})
	}

	utils.ParallelForSlabs(g.Domain, ParallelDegree, func(np int, slab types.Box) {
		slab.ForEach(func(iv types.IntVect) {
			if f.Flags.At(iv).IsCovered() {
				for n := 0; n < nvar; n++ {
					res.Div.SetIV(iv, n, 0)
				}
				return
			}
			for n := 0; n < nvar; n++ {
				op.FluxDivergence(iv, n, res.Flux, f.Vol, res.Div)
			}
		})
	})
	if utils.IsNan(res.Div) {
		err = fmt.Errorf("non finite value in the flux divergence")
	}
	return
}

// stencilBox is the cell box read by the faces of slab: both adjacent cells
// and one tangential neighbour on each side
func stencilBox(slab types.Box, dir, spaceDim int) (bx types.Box) {
	bx = slab.Grow(spaceDim, 1)
	bx.Hi[dir] = slab.Hi[dir]
	return
}

const (
	noKernel = iota
	uniformKernel
	ebKernel
)

// ComponentSummary reports one conserved component of the divergence over
// the fluid cells
type ComponentSummary struct {
	Name          string
	Min, Max, RMS float64
}

type Summary struct {
	Components []ComponentSummary
	// SpeciesResidual is the largest net species flux through any face
	SpeciesResidual float64
	NumUniform      int
	NumEB           int
}

func (op *Operator) Summarize(res *Result, flags *mesh.FlagField) (s Summary) {
	var (
		fl   = op.Layout
		vals []float64
		sp   = make([]float64, fl.NumSpecies)
	)
	s.NumUniform, s.NumEB = res.NumUniform, res.NumEB
	for n := 0; n < fl.NVAR(); n++ {
		if n == types.UMZ && op.SpaceDim == 2 {
			continue
		}
		vals = vals[:0]
		op.Geom.Domain.ForEach(func(iv types.IntVect) {
			if !flags.At(iv).IsCovered() {
				vals = append(vals, res.Div.AtIV(iv, n))
			}
		})
		cs := ComponentSummary{Name: fl.ConservedName(n)}
		if len(vals) != 0 {
			cs.Min, cs.Max = floats.Min(vals), floats.Max(vals)
			cs.RMS = floats.Norm(vals, 2) / math.Sqrt(float64(len(vals)))
		}
		s.Components = append(s.Components, cs)
	}
	for dir := 0; dir < op.SpaceDim; dir++ {
		flx := res.Flux[dir]
		flx.Box.ForEach(func(iv types.IntVect) {
			flx.Gather(iv, types.UFS, sp)
			s.SpeciesResidual = math.Max(s.SpeciesResidual, math.Abs(floats.Sum(sp)))
		})
	}
	return
}

func (s Summary) Print() (txt string) {
	txt = fmt.Sprintf("slabs: %d uniform, %d boundary-aware\n", s.NumUniform, s.NumEB)
	txt += fmt.Sprintf("%-10s %14s %14s %14s\n", "component", "min", "max", "rms")
	for _, cs := range s.Components {
		txt += fmt.Sprintf("%-10s %14.6e %14.6e %14.6e\n", cs.Name, cs.Min, cs.Max, cs.RMS)
	}
	txt += fmt.Sprintf("species flux residual %.3e\n", s.SpeciesResidual)
	return
}
