package physics

import (
	"fmt"
	"strings"
)

const (
	// RUniversal is the universal gas constant, J/(mol K)
	RUniversal = 8.31446261815324
	// TRef is the reference temperature of the formation enthalpies, K
	TRef = 298.15
)

// Species carries the per-species constants used by the equations of state
// and the transport model, in SI units.
type Species struct {
	Name  string  `yaml:"Name"`
	W     float64 `yaml:"W"`     // molecular weight, kg/mol
	Cp    float64 `yaml:"Cp"`    // ideal-gas specific heat, J/(kg K)
	Hf    float64 `yaml:"Hf"`    // specific formation enthalpy at TRef, J/kg
	Tc    float64 `yaml:"Tc"`    // critical temperature, K
	Pc    float64 `yaml:"Pc"`    // critical pressure, Pa
	Omega float64 `yaml:"Omega"` // acentric factor
}

// SpeciesSet is the fixed, ordered species list of a run
type SpeciesSet []Species

func NewSpeciesSet(sp []Species) (ss SpeciesSet, err error) {
	if len(sp) == 0 {
		err = fmt.Errorf("species list is empty")
		return
	}
	names := make(map[string]bool)
	for i, s := range sp {
		if s.W <= 0 || s.Cp <= 0 {
			err = fmt.Errorf("species %d (%s) needs positive W and Cp, have %g, %g", i, s.Name, s.W, s.Cp)
			return
		}
		key := strings.ToLower(s.Name)
		if names[key] {
			err = fmt.Errorf("species %s listed twice", s.Name)
			return
		}
		names[key] = true
	}
	ss = SpeciesSet(sp)
	return
}

func (ss SpeciesSet) NumSpecies() int { return len(ss) }

// Index returns the position of a species by case-insensitive name, or -1
func (ss SpeciesSet) Index(name string) int {
	for i, s := range ss {
		if strings.EqualFold(s.Name, name) {
			return i
		}
	}
	return -1
}

// Y2X converts mass fractions to mole fractions
func (ss SpeciesSet) Y2X(Y, X []float64) {
	var sum float64
	for n, s := range ss {
		X[n] = Y[n] / s.W
		sum += X[n]
	}
	for n := range ss {
		X[n] /= sum
	}
}

// X2Y converts mole fractions to mass fractions
func (ss SpeciesSet) X2Y(X, Y []float64) {
	var sum float64
	for n, s := range ss {
		Y[n] = X[n] * s.W
		sum += Y[n]
	}
	for n := range ss {
		Y[n] /= sum
	}
}

// MixtureW is the mean molecular weight from mass fractions
func (ss SpeciesSet) MixtureW(Y []float64) float64 {
	var sum float64
	for n, s := range ss {
		sum += Y[n] / s.W
	}
	return 1. / sum
}

// T2Hi fills the ideal-gas specific enthalpy of every species
func (ss SpeciesSet) T2Hi(T float64, hi []float64) {
	for n, s := range ss {
		hi[n] = s.Hf + s.Cp*(T-TRef)
	}
}

// MixtureCp is the ideal-gas mixture specific heat
func (ss SpeciesSet) MixtureCp(Y []float64) (cp float64) {
	for n, s := range ss {
		cp += Y[n] * s.Cp
	}
	return
}

// DefaultSpecies returns constants for a few common species
func DefaultSpecies(names ...string) (sp []Species, err error) {
	db := map[string]Species{
		"N2":  {Name: "N2", W: 28.0134e-3, Cp: 1040., Hf: 0, Tc: 126.19, Pc: 3.3958e6, Omega: 0.0372},
		"O2":  {Name: "O2", W: 31.9988e-3, Cp: 918., Hf: 0, Tc: 154.58, Pc: 5.043e6, Omega: 0.0222},
		"H2":  {Name: "H2", W: 2.01588e-3, Cp: 14304., Hf: 0, Tc: 33.19, Pc: 1.313e6, Omega: -0.219},
		"H2O": {Name: "H2O", W: 18.01528e-3, Cp: 1864., Hf: -1.3423e7, Tc: 647.1, Pc: 2.2064e7, Omega: 0.344},
		"CO2": {Name: "CO2", W: 44.0095e-3, Cp: 844., Hf: -8.9433e6, Tc: 304.13, Pc: 7.3773e6, Omega: 0.2239},
		"CH4": {Name: "CH4", W: 16.0425e-3, Cp: 2226., Hf: -4.6735e6, Tc: 190.56, Pc: 4.599e6, Omega: 0.0115},
	}
	for _, name := range names {
		s, ok := db[strings.ToUpper(name)]
		if !ok {
			err = fmt.Errorf("no default constants for species %s", name)
			return
		}
		sp = append(sp, s)
	}
	return
}
