package physics

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// EOS is the thermodynamic capability set the diffusive fluxes need from an
// equation of state
type EOS interface {
	NumSpecies() int
	Y2X(Y, X []float64)
	// T2Hi fills per-species specific enthalpies at temperature T
	T2Hi(T float64, hi []float64)
	// PYT2R is the density at pressure p, composition Y and temperature T
	PYT2R(p float64, Y []float64, T float64) (rho float64)
	// RYT2P is the pressure at density rho, composition Y and temperature T
	RYT2P(rho float64, Y []float64, T float64) (p float64)
	Name() string
}

// NonIdealEOS adds the state-dependent quantities used by the
// multicomponent closure
type NonIdealEOS interface {
	EOS
	// RTY2Hi fills per-species specific enthalpies consistent with the
	// non-ideal mixture enthalpy
	RTY2Hi(rho, T float64, Y, hi []float64, sc *Scratch)
	// RTY2Transport fills the pressure-diffusion coefficients diP and the
	// composition-gradient matrix dijY (NumSpecies square)
	RTY2Transport(rho, T float64, Y, diP []float64, dijY *mat.Dense, sc *Scratch)
}

type EOSType uint8

const (
	EOS_Ideal EOSType = iota
	EOS_SRK
)

var (
	EOSNames = map[string]EOSType{
		"ideal":    EOS_Ideal,
		"gammalaw": EOS_Ideal,
		"fuego":    EOS_Ideal,
		"srk":      EOS_SRK,
		"cubic":    EOS_SRK,
	}
	EOSPrintNames = []string{"Ideal Mixture", "Soave-Redlich-Kwong"}
)

func (et EOSType) Print() string {
	return EOSPrintNames[et]
}

func NewEOSType(label string) (et EOSType, err error) {
	var ok bool
	if et, ok = EOSNames[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use equation of state named %s", label)
	}
	return
}

// NewEOS builds the equation of state selected for the run
func NewEOS(et EOSType, ss SpeciesSet) (eos EOS, err error) {
	switch et {
	case EOS_Ideal:
		eos = NewIdealGas(ss)
	case EOS_SRK:
		eos, err = NewSRK(ss)
	default:
		err = fmt.Errorf("unknown equation of state %d", et)
	}
	return
}

// IdealGas is a thermally perfect mixture with constant species heats
type IdealGas struct {
	SpeciesSet
}

func NewIdealGas(ss SpeciesSet) *IdealGas {
	return &IdealGas{SpeciesSet: ss}
}

func (ig *IdealGas) Name() string { return EOSPrintNames[EOS_Ideal] }

func (ig *IdealGas) PYT2R(p float64, Y []float64, T float64) float64 {
	return p * ig.MixtureW(Y) / (RUniversal * T)
}

func (ig *IdealGas) RYT2P(rho float64, Y []float64, T float64) float64 {
	return rho * RUniversal * T / ig.MixtureW(Y)
}
