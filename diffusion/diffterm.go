package diffusion

import (
	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

// velocityGradient holds du_a/dx_b as g[a][b]
type velocityGradient [types.MaxDim][types.MaxDim]float64

/*
UniformFlux writes the diffusive flux through the face normal to dir whose
high-side cell is iv. Tangential velocity derivatives use the four point
average of the two face-adjacent columns, so every neighbour within one cell
must hold valid state: never call it next to a cut or covered cell.
*/
func (op *Operator) UniformFlux(iv types.IntVect, dir int, q *utils.Array4, coef []float64,
	area *utils.Array4, dxinv [types.MaxDim]float64, flx *utils.Array4, ws *Workspace) {
	var (
		ivm = iv.Shift(dir, -1)
		g   velocityGradient
	)
	q.Gather(iv, 0, ws.q1)
	q.Gather(ivm, 0, ws.q2)
	op.normalGradient(dir, dxinv[dir], ws.q1, ws.q2, &g)
	for _, t := range op.tangents[dir] {
		g[dir][t] = uniformTangent(q, iv, ivm, t, types.QU+dir, dxinv[t])
		g[t][t] = uniformTangent(q, iv, ivm, t, types.QU+t, dxinv[t])
	}
	dTdd := dxinv[dir] * (ws.q1[types.QTEMP] - ws.q2[types.QTEMP])
	op.stressFlux(dir, &g, dTdd, coef, ws)
	op.Closure.Flux(ws.q1, ws.q2, dxinv[dir], coef, ws.flux, ws)
	op.storeFlux(iv, area.AtIV(iv, 0), flx, ws.flux)
}

/*
EBFlux is UniformFlux for faces near the embedded boundary. The face is
active when its high-side cell is regular or single-valued and its low-side
cell is not covered. A face with a covered low side has zero area by
construction, so that second test changes no flux. An inactive face gets a
zero flux and no state is read.
On an active face each tangential derivative is assembled per side from the
neighbours that side is connected to:

	d(phi)/dx_t = dxinv_t/2 * ((phi(hip) - phi(him)) w_hi + (phi(lop) - phi(lom)) w_lo)

with w = weights[p - m], which reduces to the uniform stencil when every
neighbour is connected.
*/
func (op *Operator) EBFlux(iv types.IntVect, dir int, q *utils.Array4, coef []float64,
	flags *mesh.FlagField, area *utils.Array4, dxinv [types.MaxDim]float64, flx *utils.Array4,
	ws *Workspace) {
	var (
		ivm    = iv.Shift(dir, -1)
		fhi    = flags.At(iv)
		flo    = flags.At(ivm)
		update = (fhi.IsRegular() || fhi.IsSingleValued()) && !flo.IsCovered()
		g      velocityGradient
	)
	if !update {
		for n := range ws.flux {
			ws.flux[n] = 0
		}
		op.storeFlux(iv, 0, flx, ws.flux)
		return
	}
	q.Gather(iv, 0, ws.q1)
	q.Gather(ivm, 0, ws.q2)
	op.normalGradient(dir, dxinv[dir], ws.q1, ws.q2, &g)
	for _, t := range op.tangents[dir] {
		ts := newTangentStencil(fhi, flo, t)
		g[dir][t] = ts.derivative(q, iv, ivm, t, types.QU+dir, dxinv[t])
		g[t][t] = ts.derivative(q, iv, ivm, t, types.QU+t, dxinv[t])
	}
	dTdd := dxinv[dir] * (ws.q1[types.QTEMP] - ws.q2[types.QTEMP])
	op.stressFlux(dir, &g, dTdd, coef, ws)
	op.Closure.Flux(ws.q1, ws.q2, dxinv[dir], coef, ws.flux, ws)
	op.storeFlux(iv, area.AtIV(iv, 0), flx, ws.flux)
}

func (op *Operator) normalGradient(dir int, dxinv float64, q1, q2 []float64, g *velocityGradient) {
	for a := 0; a < op.SpaceDim; a++ {
		g[a][dir] = dxinv * (q1[types.QU+a] - q2[types.QU+a])
	}
}

func uniformTangent(q *utils.Array4, iv, ivm types.IntVect, t, comp int, dxinv float64) float64 {
	return (q.AtIV(iv.Shift(t, 1), comp) + q.AtIV(ivm.Shift(t, 1), comp) -
		q.AtIV(iv.Shift(t, -1), comp) - q.AtIV(ivm.Shift(t, -1), comp)) * (0.25 * dxinv)
}

// tangentStencil holds, per side of a face, the offsets of the furthest
// connected neighbours along one tangential direction and their weight
type tangentStencil struct {
	hip, him int
	lop, lom int
	whi, wlo float64
}

func newTangentStencil(fhi, flo mesh.CellFlag, t int) (ts tangentStencil) {
	var (
		up   = types.UnitVector(t)
		down = up.Scale(-1)
	)
	if fhi.IsConnectedIV(up) {
		ts.hip = 1
	}
	if fhi.IsConnectedIV(down) {
		ts.him = -1
	}
	if flo.IsConnectedIV(up) {
		ts.lop = 1
	}
	if flo.IsConnectedIV(down) {
		ts.lom = -1
	}
	ts.whi = weights[ts.hip-ts.him]
	ts.wlo = weights[ts.lop-ts.lom]
	return
}

func (ts tangentStencil) derivative(q *utils.Array4, iv, ivm types.IntVect, t, comp int, dxinv float64) float64 {
	return (0.5 * dxinv) *
		((q.AtIV(iv.Shift(t, ts.hip), comp)-q.AtIV(iv.Shift(t, ts.him), comp))*ts.whi +
			(q.AtIV(ivm.Shift(t, ts.lop), comp)-q.AtIV(ivm.Shift(t, ts.lom), comp))*ts.wlo)
}

/*
stressFlux fills ws.flux with the Newtonian momentum flux and the energy flux
of viscous work and Fourier conduction, resetting the species entries. On a
face normal to d:

	tau_d = mu (2 du_d/dx_d - 2/3 divu) + xi divu
	tau_t = mu (du_t/dx_d + du_d/dx_t)
*/
func (op *Operator) stressFlux(dir int, g *velocityGradient, dTdd float64, coef []float64, ws *Workspace) {
	var (
		mu     = coef[op.Layout.Mu()]
		xi     = coef[op.Layout.Xi()]
		lambda = coef[op.Layout.Lambda()]
		tau    [types.MaxDim]float64
		divu   = g[dir][dir]
	)
	for _, t := range op.tangents[dir] {
		divu += g[t][t]
	}
	tau[dir] = mu*(2.0*g[dir][dir]-2.0/3.0*divu) + xi*divu
	for _, t := range op.tangents[dir] {
		tau[t] = mu * (g[t][dir] + g[dir][t])
	}
	for n := range ws.flux {
		ws.flux[n] = 0
	}
	var work float64
	for a := 0; a < op.SpaceDim; a++ {
		ws.flux[types.UMX+a] = -tau[a]
		work += -tau[a] * (ws.q1[types.QU+a] + ws.q2[types.QU+a])
	}
	ws.flux[types.UEDEN] = 0.5*work - lambda*dTdd
}

func (op *Operator) storeFlux(iv types.IntVect, area float64, flx *utils.Array4, flux []float64) {
	for n := range flux {
		flux[n] *= area
	}
	flx.Scatter(iv, 0, flux)
}
