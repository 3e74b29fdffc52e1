package problem

import (
	"fmt"
	"math"
	"sort"

	"github.com/notargets/ebdiffusion/InputParameters"
	"github.com/notargets/ebdiffusion/diffusion"
	"github.com/notargets/ebdiffusion/mesh"
	"github.com/notargets/ebdiffusion/physics"
	"github.com/notargets/ebdiffusion/types"
	"github.com/notargets/ebdiffusion/utils"
)

const (
	stateGhost = 1
	flagGhost  = 2
)

// Case is a configured diffusion evaluation: geometry, embedded boundary,
// physics and the primitive state
type Case struct {
	Title          string
	Layout         types.FieldLayout
	Geom           *mesh.Geometry
	EB             *mesh.EBFactory
	Species        physics.SpeciesSet
	EOS            physics.EOS
	Transport      *physics.SimpleTransport
	Op             *diffusion.Operator
	Q              *utils.Array4
	Walls          []diffusion.WallBC
	ParallelDegree int
}

func NewCase(ip *InputParameters.InputParametersDiff, ProcLimit int, verbose bool) (c *Case, err error) {
	c = &Case{Title: ip.Title}
	if c.Geom, err = mesh.NewGeometry(ip.SpaceDim, ip.NCells, ip.ProbLo, ip.ProbHi); err != nil {
		return
	}
	if err = c.buildPhysics(ip); err != nil {
		return
	}
	if c.Op, err = diffusion.NewOperator(c.Layout, c.Geom, c.EOS, c.Transport); err != nil {
		return
	}
	var covered []types.Box
	for _, b := range ip.CoveredBoxes {
		covered = append(covered, types.NewBox(b.Lo, b.Hi))
	}
	c.EB = mesh.NewEBFactory(c.Geom, flagGhost, covered)
	if err = c.initializeState(ip.State); err != nil {
		return
	}
	if c.Walls, err = parseWalls(ip.BCs, c.Geom.SpaceDim); err != nil {
		return
	}
	if ProcLimit == 0 {
		ProcLimit = ip.ParallelDegree
	}
	c.ParallelDegree = utils.GetParallelDegree(ProcLimit, c.Geom.Domain.Length(utils.SlabDirection(c.Geom.Domain)))

	if verbose {
		nReg, nCut, nCov := c.EB.Flags.Count(c.Geom.Domain)
		fmt.Printf("Diffusive fluxes in %d Dimensions: %s\n", c.Geom.SpaceDim, c.Title)
		fmt.Printf("Using %d go routines in parallel\n", c.ParallelDegree)
		fmt.Printf("Domain %s, cell size %v\n", c.Geom.Domain, cellSizes(c.Geom))
		fmt.Printf("Cells: %d regular, %d cut, %d covered\n", nReg, nCut, nCov)
		fmt.Printf("Equation of state: %s, %d species\n", c.EOS.Name(), c.Layout.NumSpecies)
		for _, w := range c.Walls {
			fmt.Printf("\tIsothermal wall on direction %d (normal %+d), Twall = %8.3f\n",
				w.Face.Dir, w.Face.Normal(), w.Twall)
		}
		fmt.Printf("\n")
	}
	return
}

func cellSizes(g *mesh.Geometry) (dx []float64) {
	for d := 0; d < g.SpaceDim; d++ {
		dx = append(dx, g.CellSize(d))
	}
	return
}

func (c *Case) buildPhysics(ip *InputParameters.InputParametersDiff) (err error) {
	var (
		sp []physics.Species
		et physics.EOSType
	)
	if len(ip.Species) == 0 {
		return fmt.Errorf("no species given")
	}
	for _, s := range ip.Species {
		if s.W == 0 {
			var def []physics.Species
			if def, err = physics.DefaultSpecies(s.Name); err != nil {
				return
			}
			s = def[0]
		}
		sp = append(sp, s)
	}
	if c.Species, err = physics.NewSpeciesSet(sp); err != nil {
		return
	}
	if c.Layout, err = types.NewFieldLayout(c.Species.NumSpecies()); err != nil {
		return
	}
	eosName := ip.EOS
	if eosName == "" {
		eosName = "ideal"
	}
	if et, err = physics.NewEOSType(eosName); err != nil {
		return
	}
	if c.EOS, err = physics.NewEOS(et, c.Species); err != nil {
		return
	}
	tp := ip.Transport
	c.Transport, err = physics.NewSimpleTransport(c.Species,
		orDefault(tp.MuRef, 1.8e-5), orDefault(tp.TRef, 300), orDefault(tp.Exponent, 0.7),
		tp.BulkRatio, orDefault(tp.Prandtl, 0.72), tp.Schmidt)
	return
}

func orDefault(val, def float64) float64 {
	if val == 0 {
		return def
	}
	return val
}

// initializeState fills the fluid cells of the domain and its ghost layer.
// Covered cells hold NaN so that any read of them shows in the result.
func (c *Case) initializeState(sp InputParameters.StateParameters) (err error) {
	var (
		ns = c.Layout.NumSpecies
		Y  = make([]float64, ns)
		yf = make([]InputParameters.Field, ns)
	)
	for name, f := range sp.MassFractions {
		n := c.Species.Index(name)
		if n < 0 {
			return fmt.Errorf("mass fraction given for unknown species %s", name)
		}
		yf[n] = f
	}
	if len(sp.MassFractions) == 0 {
		if ns > 1 {
			return fmt.Errorf("State.MassFractions is required for %d species", ns)
		}
		yf[0].Base = 1
	}
	c.Q = c.Geom.NewCellArray(stateGhost, c.Layout.NQ())
	c.Q.Box.ForEach(func(iv types.IntVect) {
		if err != nil {
			return
		}
		if c.EB.Flags.At(iv).IsCovered() {
			for n := 0; n < c.Q.NComp; n++ {
				c.Q.SetIV(iv, n, math.NaN())
			}
			return
		}
		var (
			x   = c.Geom.CellCenter(iv)
			p   = sp.P.At(x)
			T   = sp.T.At(x)
			sum float64
		)
		for n := range Y {
			Y[n] = math.Max(yf[n].At(x), 0)
			sum += Y[n]
		}
		if p <= 0 || T <= 0 || sum <= 0 {
			err = fmt.Errorf("unphysical state at cell %s: p = %g, T = %g, sum(Y) = %g", iv, p, T, sum)
			return
		}
		for n := range Y {
			Y[n] /= sum
		}
		c.Q.SetIV(iv, types.QU, sp.U.At(x))
		c.Q.SetIV(iv, types.QV, sp.V.At(x))
		c.Q.SetIV(iv, types.QW, sp.W.At(x))
		c.Q.SetIV(iv, types.QPRES, p)
		c.Q.SetIV(iv, types.QTEMP, T)
		c.Q.SetIV(iv, types.QRHO, c.EOS.PYT2R(p, Y, T))
		c.Q.Scatter(iv, types.QFS, Y)
	})
	return
}

// parseWalls reads BCs keyed by BC type, then domain face name. Only the
// isothermal walls need work here.
func parseWalls(bcs map[string]map[string]map[string]float64, spaceDim int) (walls []diffusion.WallBC, err error) {
	kinds := make([]string, 0, len(bcs))
	for k := range bcs {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		bf, ok := types.NewBCFLAG(kind)
		if !ok {
			return nil, fmt.Errorf("unknown boundary condition type %s", kind)
		}
		faces := make([]string, 0, len(bcs[kind]))
		for f := range bcs[kind] {
			faces = append(faces, f)
		}
		sort.Strings(faces)
		for _, name := range faces {
			df, ok := types.ParseDomainFace(name)
			if !ok || df.Dir >= spaceDim {
				return nil, fmt.Errorf("%s is not a face of a %dD domain", name, spaceDim)
			}
			if bf != types.BC_Isothermal {
				continue
			}
			Twall, ok := bcs[kind][name]["Twall"]
			if !ok || Twall <= 0 {
				return nil, fmt.Errorf("isothermal wall on %s needs a positive Twall", name)
			}
			walls = append(walls, diffusion.WallBC{Face: df, Twall: Twall})
		}
	}
	return
}

func (c *Case) Fields() diffusion.Fields {
	return diffusion.Fields{
		Q:     c.Q,
		Flags: c.EB.Flags,
		Area:  c.EB.ScaledAreas(),
		Vol:   c.EB.ScaledVolumes(),
	}
}

// Run evaluates the diffusive update of the case
func (c *Case) Run() (res *diffusion.Result, err error) {
	return c.Op.Diffterm(c.Fields(), c.Walls, c.ParallelDegree)
}
