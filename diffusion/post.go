package diffusion

import (
	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// FluxDivergence sets D(iv, n) = -sum_d (F_d(iv+e_d, n) - F_d(iv, n)) / V(iv).
// The flux fields are area weighted and V is the fluid volume of the cell.
func (op *Operator) FluxDivergence(iv types.IntVect, n int, flx [types.MaxDim]*utils.Array4,
	vol, D *utils.Array4) {
	var sum float64
	for d := 0; d < op.SpaceDim; d++ {
		sum += flx[d].AtIV(iv.Shift(d, 1), n) - flx[d].AtIV(iv, n)
	}
	D.SetIV(iv, n, -sum/vol.AtIV(iv, 0))
}

/*
IsothermalWallFlux adds the conduction through a wall at temperature twall
to the energy flux of the face iv normal to dir. normal is the outward sign
of the wall seen from the fluid: +1 when the fluid cell is iv-e_dir, -1 when
it is iv. Nothing is done unless the fluid cell is connected across the face.
The conductivity is evaluated at the wall temperature, the fluid pressure and
the fluid composition.
*/
func (op *Operator) IsothermalWallFlux(iv types.IntVect, dir, normal int, q *utils.Array4, twall float64,
	flags *mesh.FlagField, area, flx *utils.Array4, ws *Workspace) {
	ivm := iv
	if normal > 0 {
		ivm = iv.Shift(dir, -1)
	}
	if !flags.At(ivm).IsConnectedIV(types.UnitVector(dir).Scale(normal)) {
		return
	}
	var (
		pwall = q.AtIV(ivm, types.QPRES)
		ywall = ws.ys
	)
	q.Gather(ivm, types.QFS, ywall)
	rhoWall := op.EOS.PYT2R(pwall, ywall, twall)
	op.Transport.TransCoeff(physics.ConductivityTransport, twall, rhoWall, ywall,
		op.Geom.CellCenter(ivm), ws.tc)
	dTdx := 2.0 * (q.AtIV(ivm, types.QTEMP) - twall) / op.Geom.CellSize(dir) * float64(normal)
	flx.AddIV(iv, types.UEDEN, ws.tc.Lambda*dTdx*area.AtIV(iv, 0))
}
