package problem

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/ebdiffusion/InputParameters"
	"github.com/notargets/ebdiffusion/types"
)

func parse(t *testing.T, input string) *InputParameters.InputParametersDiff {
	var ip InputParameters.InputParametersDiff
	require.NoError(t, ip.Parse([]byte(input)))
	return &ip
}

func TestIsothermalWallHeating(t *testing.T) {
	ip := parse(t, `
Title: Wall heating
SpaceDim: 2
NCells: [4, 4]
ProbHi: [0.04, 0.04]
Species:
  - Name: N2
State:
  T:
    Base: 400.
  P:
    Base: 101325.
BCs:
  Isothermal:
    xhi:
      Twall: 300.
`)
	c, err := NewCase(ip, 2, false)
	require.NoError(t, err)
	require.Len(t, c.Walls, 1)
	assert.Equal(t, types.DomainFace{Dir: 0, High: true}, c.Walls[0].Face)
	res, err := c.Run()
	require.NoError(t, err)
	// lambda(300 K) = 1.8e-5 * 1040 / 0.72
	expected := -2 * 0.026 * (400 - 300) / (0.01 * 0.01)
	c.Geom.Domain.ForEach(func(iv types.IntVect) {
		if iv[0] == 3 {
			assert.InDelta(t, expected, res.Div.AtIV(iv, types.UEDEN), 1.e-9*math.Abs(expected))
		} else {
			assert.Zero(t, res.Div.AtIV(iv, types.UEDEN))
		}
		assert.Zero(t, res.Div.AtIV(iv, types.UMX))
		assert.Zero(t, res.Div.AtIV(iv, types.UFS))
	})
}

func TestCutCorner(t *testing.T) {
	ip := parse(t, `
Title: Cut corner
SpaceDim: 2
NCells: [8, 8]
ProbHi: [0.01, 0.01]
EOS: ideal
Species:
  - Name: N2
  - Name: O2
  - Name: H2
Transport:
  BulkRatio: 0.5
  Schmidt: [0.7, 0.8, 0.2]
State:
  U:
    Base: 5.
    Gradient: [0, 300.]
  V:
    Gradient: [-200., 0]
  T:
    Base: 300.
    Gradient: [5000., 2000.]
  P:
    Base: 101325.
    Gradient: [1.e4, 0]
  MassFractions:
    N2:
      Base: 0.7
    O2:
      Base: 0.2
      Gradient: [10., 0]
    H2:
      Base: 0.1
      Gradient: [0, 5.]
CoveredBoxes:
  - Lo: [-2, -2, 0]
    Hi: [2, 1, 0]
BCs:
  Isothermal:
    yhi:
      Twall: 350.
  Adiabatic:
    xlo: {}
ParallelDegree: 3
`)
	c, err := NewCase(ip, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 3, c.ParallelDegree)
	nReg, nCut, nCov := c.EB.Flags.Count(c.Geom.Domain)
	assert.Equal(t, 64, nReg+nCut+nCov)
	assert.Equal(t, 6, nCov)
	{ // The case file composition reaches the state, normalized
		var (
			iv         = types.NewIntVect(7, 7, 0)
			x          = 7.5 * 0.01 / 8
			yN2, yO2   = 0.7, 0.2 + 10*x
			yH2        = 0.1 + 5*x
			sum        = yN2 + yO2 + yH2
			n2, o2, h2 = c.Species.Index("N2"), c.Species.Index("O2"), c.Species.Index("H2")
		)
		assert.InDelta(t, yN2/sum, c.Q.AtIV(iv, types.QFS+n2), 1.e-12)
		assert.InDelta(t, yO2/sum, c.Q.AtIV(iv, types.QFS+o2), 1.e-12)
		assert.InDelta(t, yH2/sum, c.Q.AtIV(iv, types.QFS+h2), 1.e-12)
	}
	res, err := c.Run()
	require.NoError(t, err)
	assert.Greater(t, res.NumUniform, 0)
	assert.Greater(t, res.NumEB, 0)
	var speciesNorm float64
	c.Geom.Domain.ForEach(func(iv types.IntVect) {
		var sum, norm float64
		for n := 0; n < c.Layout.NumSpecies; n++ {
			d := res.Div.AtIV(iv, types.UFS+n)
			sum += d
			norm += math.Abs(d)
		}
		if c.EB.Flags.At(iv).IsCovered() {
			assert.Zero(t, norm)
			return
		}
		// Species updates carry no net mass
		assert.InDelta(t, 0, sum, 1.e-10*norm+1.e-14)
		speciesNorm += norm
	})
	assert.Greater(t, speciesNorm, 0.)
	s := c.Op.Summarize(res, c.EB.Flags)
	assert.Less(t, s.SpeciesResidual, 1.e-12)
}

func TestNewCaseErrors(t *testing.T) {
	const (
		grid = `
SpaceDim: 2
NCells: [4, 4]
ProbHi: [1, 1]
`
		state = `
State:
  T:
    Base: 300.
  P:
    Base: 1.e5
`
		n2 = `
Species:
  - Name: N2
`
	)
	for name, input := range map[string]string{
		"no species":               grid + state,
		"unknown eos":              grid + state + n2 + "EOS: vdw\n",
		"unknown species":          grid + state + "Species:\n  - Name: Kr\n",
		"unknown species fraction": grid + state + "  MassFractions:\n    O2:\n      Base: 1.\n" + n2,
		"unquoted species key":     grid + state + "  MassFractions:\n    NO:\n      Base: 1.\n" + n2,
		"no mass fractions":        grid + state + n2 + "  - Name: O2\n",
		"bad bc type":              grid + state + n2 + "BCs:\n  Slippery:\n    xlo: {}\n",
		"bad face":                 grid + state + n2 + "BCs:\n  Isothermal:\n    zlo:\n      Twall: 300.\n",
		"missing Twall":            grid + state + n2 + "BCs:\n  Isothermal:\n    xlo: {}\n",
		"negative T":               grid + n2 + "State:\n  T:\n    Base: -1.\n  P:\n    Base: 1.e5\n",
		"bad dimension":            "SpaceDim: 4\nNCells: [4, 4]\n" + state + n2,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewCase(parse(t, input), 1, false)
			assert.Error(t, err)
		})
	}
}
