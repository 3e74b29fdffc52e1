package diffusion

import (
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
)

/*
SpeciesEnergyFlux closes the species and enthalpy diffusion across one face.
q1 is the primitive state of the high-side cell, q2 of the low side, dxinv
the inverse spacing normal to the face and coef the face transport tuple.
Flux writes flux[UFS+n] for every species and adds the diffusive enthalpy
transport to flux[UEDEN]. After the correction velocity the species fluxes
sum to zero.
*/
type SpeciesEnergyFlux interface {
	Flux(q1, q2 []float64, dxinv float64, coef []float64, flux []float64, ws *Workspace)
}

// NewSpeciesEnergyFlux selects the closure matching the equation of state:
// the multicomponent form for a non-ideal EOS, the mixture form otherwise
func NewSpeciesEnergyFlux(layout types.FieldLayout, eos physics.EOS) SpeciesEnergyFlux {
	if nonIdeal, ok := eos.(physics.NonIdealEOS); ok {
		return &CubicFlux{Layout: layout, EOS: nonIdeal}
	}
	return &IdealMixtureFlux{Layout: layout, EOS: eos}
}

// IdealMixtureFlux is Fickian diffusion of mole fraction with the ideal-gas
// pressure-diffusion term
type IdealMixtureFlux struct {
	Layout types.FieldLayout
	EOS    physics.EOS
}

func (im *IdealMixtureFlux) Flux(q1, q2 []float64, dxinv float64, coef []float64, flux []float64, ws *Workspace) {
	var (
		ns           = im.Layout.NumSpecies
		mass1, mass2 = q1[types.QFS : types.QFS+ns], q2[types.QFS : types.QFS+ns]
		mole1, mole2 = ws.mole1, ws.mole2
		hi1, hi2     = ws.hi1, ws.hi2
		Vc           float64
	)
	im.EOS.Y2X(mass1, mole1)
	im.EOS.Y2X(mass2, mole2)
	im.EOS.T2Hi(q1[types.QTEMP], hi1)
	im.EOS.T2Hi(q2[types.QTEMP], hi2)
	dpdx := dxinv * (q1[types.QPRES] - q2[types.QPRES])
	dlnp := dpdx / (0.5 * (q1[types.QPRES] + q2[types.QPRES]))
	for n := 0; n < ns; n++ {
		var (
			Xface = 0.5 * (mole1[n] + mole2[n])
			Yface = 0.5 * (mass1[n] + mass2[n])
			hface = 0.5 * (hi1[n] + hi2[n])
			dXdx  = dxinv * (mole1[n] - mole2[n])
			Vd    = -coef[im.Layout.RhoD(n)] * (dXdx + (Xface-Yface)*dlnp)
		)
		flux[types.UFS+n] = Vd
		Vc += Vd
		flux[types.UEDEN] += Vd * hface
	}
	correctionVelocity(mass1, mass2, hi1, hi2, Vc, flux)
}

/*
CubicFlux is the multicomponent closure for a non-ideal equation of state.
The pressure-diffusion coefficients and the composition matrix are evaluated
at each cell-centred state and averaged to the face. The driving force

	d_n = diP_face,n dp/dx + sum_j dijY_face,nj dY_j/dx

is projected with d_n -= Y_n sum(d), as the matrix does not sum to zero by
itself.
*/
type CubicFlux struct {
	Layout types.FieldLayout
	EOS    physics.NonIdealEOS
}

func (cf *CubicFlux) Flux(q1, q2 []float64, dxinv float64, coef []float64, flux []float64, ws *Workspace) {
	var (
		ns           = cf.Layout.NumSpecies
		mass1, mass2 = q1[types.QFS : types.QFS+ns], q2[types.QFS : types.QFS+ns]
		hi1, hi2     = ws.hi1, ws.hi2
		rho1, rho2   = q1[types.QRHO], q2[types.QRHO]
		T1, T2       = q1[types.QTEMP], q2[types.QTEMP]
		dpdx         = dxinv * (q1[types.QPRES] - q2[types.QPRES])
		dYdx         = ws.dYdx.RawVector().Data
		ddrive       = ws.ddrive.RawVector().Data
		Vc           float64
	)
	cf.EOS.RTY2Transport(rho1, T1, mass1, ws.diP1, ws.dij1, ws.eos)
	cf.EOS.RTY2Hi(rho1, T1, mass1, hi1, ws.eos)
	cf.EOS.RTY2Transport(rho2, T2, mass2, ws.diP2, ws.dij2, ws.eos)
	cf.EOS.RTY2Hi(rho2, T2, mass2, hi2, ws.eos)
	for n := 0; n < ns; n++ {
		dYdx[n] = dxinv * (mass1[n] - mass2[n])
		ddrive[n] = 0.5 * (ws.diP1[n] + ws.diP2[n]) * dpdx
	}
	ws.dijFace.Add(ws.dij1, ws.dij2)
	ws.dijFace.Scale(0.5, ws.dijFace)
	ws.dijdY.MulVec(ws.dijFace, ws.dYdx)
	ws.ddrive.AddVec(ws.ddrive, ws.dijdY)
	dsum := floats.Sum(ddrive)
	for n := 0; n < ns; n++ {
		var (
			Yface = 0.5 * (mass1[n] + mass2[n])
			hface = 0.5 * (hi1[n] + hi2[n])
		)
		ddrive[n] -= Yface * dsum
		Vd := -coef[cf.Layout.RhoD(n)] * ddrive[n]
		flux[types.UFS+n] = Vd
		Vc += Vd
		flux[types.UEDEN] += Vd * hface
	}
	correctionVelocity(mass1, mass2, hi1, hi2, Vc, flux)
}

// correctionVelocity removes the net diffusive mass flux Vc in proportion to
// the face mass fractions, carrying the matching enthalpy
func correctionVelocity(mass1, mass2, hi1, hi2 []float64, Vc float64, flux []float64) {
	for n := range mass1 {
		var (
			Yface = 0.5 * (mass1[n] + mass2[n])
			hface = 0.5 * (hi1[n] + hi2[n])
		)
		flux[types.UFS+n] -= Yface * Vc
		flux[types.UEDEN] -= Yface * hface * Vc
	}
}
