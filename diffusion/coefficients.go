package diffusion

import (
	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// CellCoefficients evaluates the transport tuple at every fluid cell of
// bx into coef, which has NCoef components. Covered cells are left alone.
func (op *Operator) CellCoefficients(bx types.Box, q *utils.Array4, flags *mesh.FlagField,
	coef *utils.Array4, ws *Workspace) {
	var (
		fl = op.Layout
		Y  = ws.ys
	)
	bx.ForEach(func(iv types.IntVect) {
		if flags.At(iv).IsCovered() {
			return
		}
		q.Gather(iv, types.QFS, Y)
		op.Transport.TransCoeff(physics.AllTransport, q.AtIV(iv, types.QTEMP), q.AtIV(iv, types.QRHO),
			Y, op.Geom.CellCenter(iv), ws.tc)
		for n := 0; n < fl.NumSpecies; n++ {
			coef.SetIV(iv, fl.RhoD(n), ws.tc.RhoD[n])
		}
		coef.SetIV(iv, fl.Mu(), ws.tc.Mu)
		coef.SetIV(iv, fl.Xi(), ws.tc.Xi)
		coef.SetIV(iv, fl.Lambda(), ws.tc.Lambda)
	})
}

// FaceCoefficients averages the cell tuples on both sides of face iv into
// dst. When one side is covered the fluid side is used as is; when both are,
// dst is zeroed.
func FaceCoefficients(iv types.IntVect, dir int, coef *utils.Array4, flags *mesh.FlagField, dst []float64) {
	var (
		ivm        = iv.Shift(dir, -1)
		hiCovered  = flags.At(iv).IsCovered()
		lowCovered = flags.At(ivm).IsCovered()
	)
	switch {
	case hiCovered && lowCovered:
		for n := range dst {
			dst[n] = 0
		}
	case hiCovered:
		coef.Gather(ivm, 0, dst)
	case lowCovered:
		coef.Gather(iv, 0, dst)
	default:
		for n := range dst {
			dst[n] = 0.5 * (coef.AtIV(iv, n) + coef.AtIV(ivm, n))
		}
	}
}
