package InputParameters

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"

	"github.com/notargets/ebdiffusion/physics"
)

// Parameters obtained from the YAML input file
type InputParametersDiff struct {
	Title          string                                   `yaml:"Title"`
	SpaceDim       int                                      `yaml:"SpaceDim"`
	NCells         [3]int                                   `yaml:"NCells"`
	ProbLo         [3]float64                               `yaml:"ProbLo"`
	ProbHi         [3]float64                               `yaml:"ProbHi"`
	EOS            string                                   `yaml:"EOS"`     // ideal or srk
	Species        []physics.Species                        `yaml:"Species"` // constants default by Name when W is zero
	Transport      TransportParameters                      `yaml:"Transport"`
	State          StateParameters                          `yaml:"State"`
	CoveredBoxes   []BoxParameters                          `yaml:"CoveredBoxes"`
	BCs            map[string]map[string]map[string]float64 `yaml:"BCs"` // BC type, then domain face, then parameter name
	ParallelDegree int                                      `yaml:"ParallelDegree"`
}

type TransportParameters struct {
	MuRef     float64   `yaml:"MuRef"`
	TRef      float64   `yaml:"TRef"`
	Exponent  float64   `yaml:"Exponent"`
	BulkRatio float64   `yaml:"BulkRatio"`
	Prandtl   float64   `yaml:"Prandtl"`
	Schmidt   []float64 `yaml:"Schmidt"`
}

// Field is Base + Gradient . x
type Field struct {
	Base     float64    `yaml:"Base"`
	Gradient [3]float64 `yaml:"Gradient"`
}

func (f Field) At(x [3]float64) float64 {
	return f.Base + f.Gradient[0]*x[0] + f.Gradient[1]*x[1] + f.Gradient[2]*x[2]
}

// StateParameters is the initial primitive state. Mass fractions are keyed
// by species name, clipped at zero and normalized. The key is not "Y":
// YAML 1.1 reads a bare Y (like N, NO, ON) as a boolean, so species names
// of that kind must be quoted.
type StateParameters struct {
	U             Field            `yaml:"U"`
	V             Field            `yaml:"V"`
	W             Field            `yaml:"W"`
	P             Field            `yaml:"P"`
	T             Field            `yaml:"T"`
	MassFractions map[string]Field `yaml:"MassFractions"`
}

// BoxParameters is an inclusive cell index range
type BoxParameters struct {
	Lo [3]int `yaml:"Lo"`
	Hi [3]int `yaml:"Hi"`
}

func (ip *InputParametersDiff) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParametersDiff) Print() {
	dim := min(max(ip.SpaceDim, 0), 3)
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Space Dimension\n", ip.SpaceDim)
	fmt.Printf("%v\t\t\t= Cells\n", ip.NCells[:dim])
	fmt.Printf("%v - %v\t= Domain\n", ip.ProbLo[:dim], ip.ProbHi[:dim])
	fmt.Printf("[%s]\t\t\t= EOS\n", ip.EOS)
	names := make([]string, len(ip.Species))
	for i, s := range ip.Species {
		names[i] = s.Name
	}
	fmt.Printf("%v\t\t= Species\n", names)
	species := make([]string, 0, len(ip.State.MassFractions))
	for name := range ip.State.MassFractions {
		species = append(species, name)
	}
	sort.Strings(species)
	for _, name := range species {
		fmt.Printf("%v\t= Mass Fraction[%s]\n", ip.State.MassFractions[name], name)
	}
	fmt.Printf("%d\t\t\t\t= Covered Boxes\n", len(ip.CoveredBoxes))
	keys := make([]string, len(ip.BCs))
	i := 0
	for k := range ip.BCs {
		keys[i] = k
		i++
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("BCs[%s] = %v\n", key, ip.BCs[key])
	}
}
