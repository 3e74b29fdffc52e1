package physics

import (
	"fmt"
	"math"
)

// TransportRequest selects the outputs a transport evaluation fills, so
// callers pay only for what they use
type TransportRequest struct {
	Xi, Mu, Lambda, Diffusivity, ThermalDiffusion bool
}

var (
	AllTransport          = TransportRequest{Xi: true, Mu: true, Lambda: true, Diffusivity: true}
	ConductivityTransport = TransportRequest{Lambda: true}
)

// TransportCoeffs holds mixture coefficients; RhoD and ChiMix have one entry
// per species and are only touched when requested
type TransportCoeffs struct {
	Mu, Xi, Lambda float64
	RhoD, ChiMix   []float64
}

func NewTransportCoeffs(numSpecies int) *TransportCoeffs {
	return &TransportCoeffs{
		RhoD:   make([]float64, numSpecies),
		ChiMix: make([]float64, numSpecies),
	}
}

// Transport evaluates mixture transport coefficients at a state. The cell
// location x lets problem-specific models vary in space.
type Transport interface {
	TransCoeff(req TransportRequest, T, rho float64, Y []float64, x [3]float64, tc *TransportCoeffs)
}

// SimpleTransport is a power-law viscosity with constant Prandtl and
// per-species Schmidt numbers:
//
//	mu = MuRef (T/TRef)^Exponent, xi = BulkRatio mu
//	lambda = mu cp / Prandtl,     rhoD_n = mu / Schmidt_n
type SimpleTransport struct {
	Species   SpeciesSet
	MuRef     float64
	TRef      float64
	Exponent  float64
	BulkRatio float64
	Prandtl   float64
	Schmidt   []float64
}

func NewSimpleTransport(ss SpeciesSet, muRef, tRef, exponent, bulkRatio, prandtl float64,
	schmidt []float64) (st *SimpleTransport, err error) {
	if muRef <= 0 || tRef <= 0 || prandtl <= 0 {
		err = fmt.Errorf("transport needs positive MuRef, TRef and Prandtl, have %g, %g, %g",
			muRef, tRef, prandtl)
		return
	}
	sc := make([]float64, len(ss))
	switch len(schmidt) {
	case 0:
		for n := range sc {
			sc[n] = 1
		}
	case 1:
		for n := range sc {
			sc[n] = schmidt[0]
		}
	case len(ss):
		copy(sc, schmidt)
	default:
		err = fmt.Errorf("need 1 or %d Schmidt numbers, have %d", len(ss), len(schmidt))
		return
	}
	for n, s := range sc {
		if s <= 0 {
			err = fmt.Errorf("schmidt number %d must be positive, have %g", n, s)
			return
		}
	}
	st = &SimpleTransport{
		Species:   ss,
		MuRef:     muRef,
		TRef:      tRef,
		Exponent:  exponent,
		BulkRatio: bulkRatio,
		Prandtl:   prandtl,
		Schmidt:   sc,
	}
	return
}

func (st *SimpleTransport) TransCoeff(req TransportRequest, T, rho float64, Y []float64,
	x [3]float64, tc *TransportCoeffs) {
	mu := st.MuRef * math.Pow(T/st.TRef, st.Exponent)
	if req.Mu {
		tc.Mu = mu
	}
	if req.Xi {
		tc.Xi = st.BulkRatio * mu
	}
	if req.Lambda {
		tc.Lambda = mu * st.Species.MixtureCp(Y) / st.Prandtl
	}
	if req.Diffusivity {
		for n, sc := range st.Schmidt {
			tc.RhoD[n] = mu / sc
		}
	}
	if req.ThermalDiffusion {
		for n := range tc.ChiMix {
			tc.ChiMix[n] = 0
		}
	}
}
