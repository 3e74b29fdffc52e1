package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/*
SRK is the Soave-Redlich-Kwong cubic equation of state with van der Waals
one-fluid mixing rules, in molar form:

	p = R T / (v - b) - a(T) / (v (v + b))
	a = sum_ij X_i X_j sqrt(a_i a_j),  b = sum_i X_i b_i

Species enthalpies are the ideal-gas values plus the mixture departure per
unit mass, so that sum_i Y_i h_i recovers the mixture enthalpy.
*/
type SRK struct {
	SpeciesSet
	a0, b, m []float64
	FDStep   float64 // composition step for the fugacity derivatives
}

func NewSRK(ss SpeciesSet) (s *SRK, err error) {
	ns := len(ss)
	s = &SRK{
		SpeciesSet: ss,
		a0:         make([]float64, ns),
		b:          make([]float64, ns),
		m:          make([]float64, ns),
		FDStep:     1.e-6,
	}
	for n, sp := range ss {
		if sp.Tc <= 0 || sp.Pc <= 0 {
			err = fmt.Errorf("species %s needs positive critical constants for SRK, have Tc=%g Pc=%g",
				sp.Name, sp.Tc, sp.Pc)
			return nil, err
		}
		s.a0[n] = 0.42748 * RUniversal * RUniversal * sp.Tc * sp.Tc / sp.Pc
		s.b[n] = 0.08664 * RUniversal * sp.Tc / sp.Pc
		s.m[n] = 0.48 + 1.574*sp.Omega - 0.176*sp.Omega*sp.Omega
	}
	return
}

func (s *SRK) Name() string { return EOSPrintNames[EOS_SRK] }

// Scratch is per-goroutine storage for the cubic equation of state so that
// the per-face calls do not allocate. A nil Scratch is allowed and allocates.
type Scratch struct {
	X, Yp, Xp []float64
	lp, lm    []float64
	ai, dai   []float64
	sumXa     []float64
}

func NewScratch(numSpecies int) *Scratch {
	buf := make([]float64, 8*numSpecies)
	next := func() (v []float64) {
		v, buf = buf[:numSpecies:numSpecies], buf[numSpecies:]
		return
	}
	return &Scratch{X: next(), Yp: next(), Xp: next(), lp: next(), lm: next(),
		ai: next(), dai: next(), sumXa: next()}
}

func (s *SRK) scratch(sc *Scratch) *Scratch {
	if sc == nil {
		return NewScratch(len(s.SpeciesSet))
	}
	return sc
}

type srkMixture struct {
	am, bm, damdT float64
	sumXa         []float64 // sum_j X_j a_ij
}

// mixture evaluates the mixing rules at T, X; sumXa is held in sc
func (s *SRK) mixture(T float64, X []float64, sc *Scratch) (mx srkMixture) {
	var (
		ns      = len(s.SpeciesSet)
		ai, dai = sc.ai, sc.dai
	)
	mx.sumXa = sc.sumXa
	for n, sp := range s.SpeciesSet {
		sqrtAlpha := 1 + s.m[n]*(1-math.Sqrt(T/sp.Tc))
		ai[n] = s.a0[n] * sqrtAlpha * sqrtAlpha
		dai[n] = -s.a0[n] * s.m[n] * sqrtAlpha / math.Sqrt(T*sp.Tc)
		mx.bm += X[n] * s.b[n]
		mx.sumXa[n] = 0
	}
	for i := 0; i < ns; i++ {
		for j := 0; j < ns; j++ {
			aij := math.Sqrt(ai[i] * ai[j])
			if aij == 0 {
				continue
			}
			daij := 0.5 * (dai[i]*ai[j] + ai[i]*dai[j]) / aij
			mx.am += X[i] * X[j] * aij
			mx.damdT += X[i] * X[j] * daij
			mx.sumXa[i] += X[j] * aij
		}
	}
	return
}

func (mx srkMixture) pressure(v, T float64) float64 {
	return RUniversal*T/(v-mx.bm) - mx.am/(v*(v+mx.bm))
}

// molarVolume solves the cubic for the vapour-like root by Newton iteration
// from the ideal-gas volume
func (mx srkMixture) molarVolume(p, T float64) (v float64) {
	var (
		RT = RUniversal * T
		bm = mx.bm
	)
	v = RT/p + bm
	for it := 0; it < 100; it++ {
		var (
			vb  = v - bm
			vvb = v * (v + bm)
			f   = RT/vb - mx.am/vvb - p
			df  = -RT/(vb*vb) + mx.am*(2*v+bm)/(vvb*vvb)
		)
		vNew := v - f/df
		if vNew <= bm {
			vNew = 0.5 * (v + bm)
		}
		if math.Abs(vNew-v) <= 1.e-14*v {
			return vNew
		}
		v = vNew
	}
	return
}

// PYT2R allocates its scratch; it serves setup and boundary faces
func (s *SRK) PYT2R(p float64, Y []float64, T float64) float64 {
	sc := NewScratch(len(Y))
	s.Y2X(Y, sc.X)
	mx := s.mixture(T, sc.X, sc)
	return s.MixtureW(Y) / mx.molarVolume(p, T)
}

func (s *SRK) RYT2P(rho float64, Y []float64, T float64) float64 {
	sc := NewScratch(len(Y))
	s.Y2X(Y, sc.X)
	mx := s.mixture(T, sc.X, sc)
	return mx.pressure(s.MixtureW(Y)/rho, T)
}

func (s *SRK) RTY2Hi(rho, T float64, Y, hi []float64, sc *Scratch) {
	sc = s.scratch(sc)
	var (
		Wbar = s.MixtureW(Y)
		v    = Wbar / rho
	)
	s.Y2X(Y, sc.X)
	mx := s.mixture(T, sc.X, sc)
	p := mx.pressure(v, T)
	hdep := p*v - RUniversal*T + (T*mx.damdT-mx.am)/mx.bm*math.Log(1+mx.bm/v)
	s.T2Hi(T, hi)
	for n := range hi {
		hi[n] += hdep / Wbar
	}
}

// lnPhi fills the log fugacity coefficients at pressure p
func (s *SRK) lnPhi(p, T float64, X, lnphi []float64, sc *Scratch) {
	var (
		mx = s.mixture(T, X, sc)
		RT = RUniversal * T
		v  = mx.molarVolume(p, T)
		Z  = p * v / RT
		B  = mx.bm * p / RT
		lg = math.Log(1 + B/Z)
	)
	for n := range lnphi {
		bRatio := s.b[n] / mx.bm
		lnphi[n] = bRatio*(Z-1) - math.Log(Z-B) -
			(2*mx.sumXa[n]-mx.am*bRatio)/(mx.bm*RT)*lg
	}
}

/*
RTY2Transport returns the generalised pressure-diffusion coefficients

	diP_i = (X_i vbar_i / v - Y_i) / p

with vbar_i the partial molar volume, and the matrix of composition
derivatives of the activity at constant T and p

	dijY_ij = X_i d ln(X_i phi_i) / dY_j

Both reduce to the ideal-mixture forms (X_i - Y_i)/p and dX_i/dY_j at low
pressure.
*/
func (s *SRK) RTY2Transport(rho, T float64, Y, diP []float64, dijY *mat.Dense, sc *Scratch) {
	sc = s.scratch(sc)
	var (
		ns       = len(Y)
		X        = sc.X
		Wbar     = s.MixtureW(Y)
		v        = Wbar / rho
		RT       = RUniversal * T
		Yp, Xp   = sc.Yp, sc.Xp
		lp, lm   = sc.lp, sc.lm
		h        = s.FDStep
		sumYonW  float64
		vb, vvbm float64
	)
	s.Y2X(Y, X)
	mx := s.mixture(T, X, sc)
	p := mx.pressure(v, T)
	vb = v - mx.bm
	vvbm = v + mx.bm
	dpdV := -RT/(vb*vb) + mx.am*(2*v+mx.bm)/(v*v*vvbm*vvbm)
	for n := 0; n < ns; n++ {
		dpdn := RT/vb + RT*s.b[n]/(vb*vb) - 2*mx.sumXa[n]/(v*vvbm) +
			mx.am*s.b[n]/(v*vvbm*vvbm)
		vbar := -dpdn / dpdV
		diP[n] = (X[n]*vbar/v - Y[n]) / p
		sumYonW += Y[n] / s.SpeciesSet[n].W
	}
	for j := 0; j < ns; j++ {
		copy(Yp, Y)
		Yp[j] = Y[j] + h
		s.Y2X(Yp, Xp)
		s.lnPhi(p, T, Xp, lp, sc)
		Yp[j] = Y[j] - h
		s.Y2X(Yp, Xp)
		s.lnPhi(p, T, Xp, lm, sc)
		Wj := s.SpeciesSet[j].W
		for i := 0; i < ns; i++ {
			Wi := s.SpeciesSet[i].W
			dXdY := -Y[i] / (Wi * sumYonW * sumYonW * Wj)
			if i == j {
				dXdY += 1. / (Wi * sumYonW)
			}
			dijY.Set(i, j, dXdY+X[i]*(lp[i]-lm[i])/(2*h))
		}
	}
}
