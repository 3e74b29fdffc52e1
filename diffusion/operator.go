package diffusion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
)

// weights is indexed by the index distance between the furthest reachable
// neighbours above and below a cell in a tangential direction
var weights = [3]float64{0.0, 1.0, 0.5}

/*
Operator evaluates diffusive face fluxes for one run. The space dimension,
the equation of state and with it the species closure are fixed at
construction and never change. The dimension selects once which tangential
derivatives exist per face direction.
*/
type Operator struct {
	Layout    types.FieldLayout
	Geom      *mesh.Geometry
	SpaceDim  int
	EOS       physics.EOS
	Transport physics.Transport
	Closure   SpeciesEnergyFlux
	tangents  [types.MaxDim][]int
}

func NewOperator(layout types.FieldLayout, geom *mesh.Geometry, eos physics.EOS,
	trans physics.Transport) (op *Operator, err error) {
	if geom == nil || eos == nil || trans == nil {
		err = fmt.Errorf("operator needs geometry, equation of state and transport")
		return
	}
	if geom.SpaceDim != 2 && geom.SpaceDim != 3 {
		err = fmt.Errorf("space dimension must be 2 or 3, have %d", geom.SpaceDim)
		return
	}
	if eos.NumSpecies() != layout.NumSpecies {
		err = fmt.Errorf("equation of state has %d species, field layout has %d",
			eos.NumSpecies(), layout.NumSpecies)
		return
	}
	op = &Operator{
		Layout:    layout,
		Geom:      geom,
		SpaceDim:  geom.SpaceDim,
		EOS:       eos,
		Transport: trans,
		Closure:   NewSpeciesEnergyFlux(layout, eos),
	}
	switch geom.SpaceDim {
	case 2:
		op.tangents = [types.MaxDim][]int{{1}, {0}, nil}
	case 3:
		op.tangents = [types.MaxDim][]int{{1, 2}, {0, 2}, {0, 1}}
	}
	return
}

// Tangents lists the directions tangential to a face normal to dir
func (op *Operator) Tangents(dir int) []int {
	return op.tangents[dir]
}

// Workspace is scratch storage for one goroutine; kernels never share one
type Workspace struct {
	q1, q2       []float64 // primitive state on the high and low side
	coef         []float64
	flux         []float64
	mole1, mole2 []float64
	hi1, hi2     []float64
	diP1, diP2   []float64
	dij1, dij2   *mat.Dense
	dijFace      *mat.Dense
	dYdx, ddrive *mat.VecDense
	dijdY        *mat.VecDense
	tc           *physics.TransportCoeffs
	eos          *physics.Scratch
	ys           []float64
}

func NewWorkspace(layout types.FieldLayout) (ws *Workspace) {
	ns := layout.NumSpecies
	ws = &Workspace{
		q1:      make([]float64, layout.NQ()),
		q2:      make([]float64, layout.NQ()),
		coef:    make([]float64, layout.NCoef()),
		flux:    make([]float64, layout.NVAR()),
		mole1:   make([]float64, ns),
		mole2:   make([]float64, ns),
		hi1:     make([]float64, ns),
		hi2:     make([]float64, ns),
		diP1:    make([]float64, ns),
		diP2:    make([]float64, ns),
		dij1:    mat.NewDense(ns, ns, nil),
		dij2:    mat.NewDense(ns, ns, nil),
		dijFace: mat.NewDense(ns, ns, nil),
		dYdx:    mat.NewVecDense(ns, nil),
		ddrive:  mat.NewVecDense(ns, nil),
		dijdY:   mat.NewVecDense(ns, nil),
		tc:      physics.NewTransportCoeffs(ns),
		eos:     physics.NewScratch(ns),
		ys:      make([]float64, ns),
	}
	return
}

func (op *Operator) NewWorkspace() *Workspace {
	return NewWorkspace(op.Layout)
}
