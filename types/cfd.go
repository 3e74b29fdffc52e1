package types

import "strings"

// BCFLAG classifies a domain face for the diffusive wall treatment
type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Isothermal
	BC_Adiabatic
)

var BCNameMap = map[string]BCFLAG{
	"none":       BC_None,
	"interior":   BC_None,
	"isothermal": BC_Isothermal,
	"twall":      BC_Isothermal,
	"adiabatic":  BC_Adiabatic,
	"wall":       BC_Adiabatic,
}

func (bf BCFLAG) String() string {
	return [...]string{"None", "Isothermal", "Adiabatic"}[bf]
}

// NewBCFLAG maps a case-insensitive name to a BCFLAG, ok is false for
// unknown names
func NewBCFLAG(name string) (bf BCFLAG, ok bool) {
	bf, ok = BCNameMap[strings.ToLower(strings.TrimSpace(name))]
	return
}

// DomainFace names one of the 2*MaxDim faces of the problem domain
type DomainFace struct {
	Dir  int
	High bool
}

// Normal is +1 on a high face and -1 on a low face, pointing out of the
// domain
func (df DomainFace) Normal() int {
	if df.High {
		return 1
	}
	return -1
}

var domainFaceNames = map[string]DomainFace{
	"xlo": {0, false}, "xhi": {0, true},
	"ylo": {1, false}, "yhi": {1, true},
	"zlo": {2, false}, "zhi": {2, true},
}

// ParseDomainFace accepts xlo, xhi, ylo, yhi, zlo, zhi
func ParseDomainFace(name string) (df DomainFace, ok bool) {
	df, ok = domainFaceNames[strings.ToLower(strings.TrimSpace(name))]
	return
}
