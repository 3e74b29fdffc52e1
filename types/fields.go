package types

import "fmt"

// Primitive state components. Mass fractions start at QFS, one per species.
const (
	QRHO = iota
	QU
	QV
	QW
	QPRES
	QTEMP
	QFS
)

// Conserved flux components. Species mass fluxes start at UFS.
const (
	UMX = iota
	UMY
	UMZ
	UEDEN
	UFS
)

// FieldLayout fixes the number of species for a run and with it the width of
// every per-species array, the state and flux fields and the transport
// coefficient tuple. The tuple is ordered rhoD[0..N-1], mu, xi, lambda.
type FieldLayout struct {
	NumSpecies int
}

func NewFieldLayout(numSpecies int) (fl FieldLayout, err error) {
	if numSpecies < 1 {
		err = fmt.Errorf("need at least one species, have %d", numSpecies)
		return
	}
	fl = FieldLayout{NumSpecies: numSpecies}
	return
}

// NQ is the number of primitive state components
func (fl FieldLayout) NQ() int { return QFS + fl.NumSpecies }

// NVAR is the number of conserved flux components
func (fl FieldLayout) NVAR() int { return UFS + fl.NumSpecies }

// NCoef is the length of the transport coefficient tuple
func (fl FieldLayout) NCoef() int { return fl.NumSpecies + 3 }

func (fl FieldLayout) RhoD(n int) int { return n }
func (fl FieldLayout) Mu() int        { return fl.NumSpecies }
func (fl FieldLayout) Xi() int        { return fl.NumSpecies + 1 }
func (fl FieldLayout) Lambda() int    { return fl.NumSpecies + 2 }

// ConservedName labels a flux component for reports
func (fl FieldLayout) ConservedName(n int) string {
	switch {
	case n == UMX:
		return "XMomentum"
	case n == UMY:
		return "YMomentum"
	case n == UMZ:
		return "ZMomentum"
	case n == UEDEN:
		return "Energy"
	case n >= UFS && n < fl.NVAR():
		return fmt.Sprintf("Species[%d]", n-UFS)
	}
	return "Unknown"
}
