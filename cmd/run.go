/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/ebdiffusion/InputParameters"
	"github.com/notargets/ebdiffusion/diffusion"
	"github.com/notargets/ebdiffusion/problem"
	"github.com/notargets/ebdiffusion/utils"
)

type RunParameters struct {
	ICFile    string
	ProcLimit int
	Profile   string
	Verbose   bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate the diffusive update of a case",
	Long: `
Reads a YAML case, builds the cut cell geometry and state, and evaluates the
diffusive face fluxes and their divergence once.

ebdiffusion run -I case.yaml -p 4`,
	Run: func(cmd *cobra.Command, args []string) {
		rp := &RunParameters{
			ICFile:    viper.GetString("inputConditionsFile"),
			ProcLimit: viper.GetInt("parallel"),
			Profile:   viper.GetString("profile"),
			Verbose:   viper.GetBool("verbose"),
		}
		ip, err := processInput(rp)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		switch rp.Profile {
		case "cpu":
			defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		case "mem":
			defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
		}
		s, err := RunDiffusion(rp, ip)
		if err != nil {
			log.Printf("run failed: %s", err)
			return
		}
		fmt.Print(s.Print())
	},
}

const exampleFile = `
########################################
Title: "Cut corner"
SpaceDim: 2
NCells: [32, 32]
ProbHi: [0.01, 0.01]
EOS: ideal # or srk
Species:
  - Name: N2
  - Name: O2
State:
  T:
    Base: 300.
    Gradient: [5000., 0]
  P:
    Base: 101325.
  MassFractions:
    N2:
      Base: 0.77
    O2:
      Base: 0.23
CoveredBoxes:
  - Lo: [-2, -2, 0]
    Hi: [10, 10, 0]
BCs:
  Isothermal:
    xhi:
      Twall: 350.
########################################
`

func processInput(rp *RunParameters) (ip *InputParameters.InputParametersDiff, err error) {
	var data []byte
	if len(rp.ICFile) == 0 {
		fmt.Printf("Example File:%s\n", exampleFile)
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(rp.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParametersDiff{}
	if err = ip.Parse(data); err != nil {
		return
	}
	if rp.Verbose {
		ip.Print()
	}
	return
}

// RunDiffusion builds the case and evaluates one diffusive update
func RunDiffusion(rp *RunParameters, ip *InputParameters.InputParametersDiff) (s diffusion.Summary, err error) {
	var (
		c   *problem.Case
		res *diffusion.Result
	)
	start := time.Now()
	if c, err = problem.NewCase(ip, rp.ProcLimit, rp.Verbose); err != nil {
		return
	}
	log.Printf("case %q built in %v", c.Title, time.Since(start))
	start = time.Now()
	if res, err = c.Run(); err != nil {
		return
	}
	log.Printf("diffusive update of %d cells in %v using %d go routines",
		c.Geom.Domain.NumPts(), time.Since(start), c.ParallelDegree)
	if rp.Verbose {
		log.Printf("memory: %s", utils.GetMemUsage())
	}
	s = c.Op.Summarize(res, c.EB.Flags)
	return
}

func init() {
	rootCmd.AddCommand(RunCmd)
	RunCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- NCells\n\t- Species\n\t- State")
	RunCmd.Flags().IntP("parallel", "p", 0, "number of go routines, 0 uses the input file or the CPU count")
	RunCmd.Flags().String("profile", "", "write a cpu or mem profile to the current directory")
	for _, name := range []string{"inputConditionsFile", "parallel", "profile"} {
		_ = viper.BindPFlag(name, RunCmd.Flags().Lookup(name))
	}
}
