package diffusion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

func newTestOperator(t *testing.T, spaceDim int, et physics.EOSType, names ...string) *Operator {
	sp, err := physics.DefaultSpecies(names...)
	require.NoError(t, err)
	ss, err := physics.NewSpeciesSet(sp)
	require.NoError(t, err)
	eos, err := physics.NewEOS(et, ss)
	require.NoError(t, err)
	trans, err := physics.NewSimpleTransport(ss, 1.8e-5, 300, 0.7, 0.6, 0.72, []float64{0.9})
	require.NoError(t, err)
	layout, err := types.NewFieldLayout(ss.NumSpecies())
	require.NoError(t, err)
	nCells := [types.MaxDim]int{6, 6, 1}
	if spaceDim == 3 {
		nCells[2] = 6
	}
	geom, err := mesh.NewGeometry(spaceDim, nCells, [types.MaxDim]float64{},
		[types.MaxDim]float64{1, 1, 1})
	require.NoError(t, err)
	op, err := NewOperator(layout, geom, eos, trans)
	require.NoError(t, err)
	return op
}

// smoothState is a physical state varying in every direction
func smoothState(op *Operator, x [types.MaxDim]float64, pressure float64, q []float64) {
	var (
		ns  = op.Layout.NumSpecies
		Y   = q[types.QFS : types.QFS+ns]
		sum float64
	)
	q[types.QU] = 10*math.Sin(2*x[0]+x[1]) + 3*x[2]*x[0]
	q[types.QV] = 4*math.Cos(x[0]-2*x[1]) + 2*x[2]
	q[types.QW] = 2 * math.Sin(x[0]+x[1]+3*x[2])
	q[types.QTEMP] = 300 + 50*x[0] + 30*x[1]*x[1] + 20*x[2]
	q[types.QPRES] = pressure * (1 + 0.05*x[0] - 0.03*x[1] + 0.02*x[2])
	for n := range Y {
		Y[n] = 1 + 0.5*math.Sin(float64(n+1)*(x[0]+0.7*x[1]+0.3*x[2]))
		sum += Y[n]
	}
	for n := range Y {
		Y[n] /= sum
	}
	q[types.QRHO] = op.EOS.PYT2R(q[types.QPRES], Y, q[types.QTEMP])
}

// newStateField fills the domain grown by one cell with smoothState
func newStateField(op *Operator, pressure float64) (q *utils.Array4) {
	q = op.Geom.NewCellArray(1, op.Layout.NQ())
	qc := make([]float64, op.Layout.NQ())
	q.Box.ForEach(func(iv types.IntVect) {
		smoothState(op, op.Geom.CellCenter(iv), pressure, qc)
		q.Scatter(iv, 0, qc)
	})
	return
}

func regularFlags(op *Operator, nGhost int) (flags *mesh.FlagField) {
	flags = mesh.NewFlagField(op.Geom.GrownDomain(nGhost))
	flags.Box.ForEach(func(iv types.IntVect) {
		flags.Set(iv, mesh.NewRegularFlag(op.SpaceDim))
	})
	return
}

func unitAreas(op *Operator) (area [types.MaxDim]*utils.Array4) {
	for dir := 0; dir < op.SpaceDim; dir++ {
		area[dir] = op.Geom.NewFaceArray(dir, 1)
		area[dir].SetVal(op.Geom.FaceArea(dir))
	}
	return
}

func cellCoefficients(op *Operator, q *utils.Array4, flags *mesh.FlagField) (coef *utils.Array4) {
	coef = utils.NewArray4(q.Box, op.Layout.NCoef())
	op.CellCoefficients(q.Box, q, flags, coef, op.NewWorkspace())
	return
}

// closeTo compares with a tolerance relative to the larger magnitude
func closeTo(a, b, rel float64) bool {
	return math.Abs(a-b) <= rel*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
