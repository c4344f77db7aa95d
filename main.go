// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/svkfem/fem"
	"github.com/cpmech/svkfem/out"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// command line flags
var (
	verbose  bool // show messages
	nworkers int  // number of concurrent workers; overrides simulation file if > 0
	save     bool // save results
	dirout   string
)

var rootCmd = &cobra.Command{
	Use:   "svkfem",
	Short: "svkfem -- Saint-Venant-Kirchhoff solids with the finite element method",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		io.Verbose = verbose
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run <simulation.toml>",
	Short: "Run simulation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fnamepath := args[0]
		log.WithFields(log.Fields{
			"fnamepath": fnamepath,
			"nworkers":  nworkers,
			"save":      save,
		}).Debug("input")

		// analysis data
		analysis, err := fem.NewFEM(fnamepath, nworkers, save, verbose)
		if err != nil {
			return err
		}

		// run simulation
		err = analysis.Run()
		if err != nil {
			return chk.Err("Run failed:\n%v", err)
		}
		sum := analysis.Summary
		log.WithFields(log.Fields{
			"nsteps":      sum.Nsteps,
			"iters":       sum.Iters,
			"energy":      sum.Energy,
			"maxVonMises": sum.MaxVonMises,
		}).Info("finished")
		if save {
			log.WithField("dirout", analysis.Sim.DirOut).Info("results saved")
		}
		return nil
	},
}

var postCmd = &cobra.Command{
	Use:   "post <simulation.toml>",
	Short: "Plot residuals and write the last solution to a VTU file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		err := out.Start(args[0], dirout)
		if err != nil {
			return err
		}
		err = out.LoadResults([]int{out.Sum.Nsteps})
		if err != nil {
			return err
		}
		err = out.PlotResid(out.Sum, out.Sim.DirOut, out.Sim.Key)
		if err != nil {
			return err
		}
		err = out.WriteVtu(out.Dom, out.Sim.DirOut, out.Sim.Key)
		if err != nil {
			return err
		}
		log.WithField("dirout", out.Sim.DirOut).Info("figures and vtu written")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show messages")
	runCmd.Flags().IntVarP(&nworkers, "workers", "w", 0, "number of concurrent workers during assembly")
	runCmd.Flags().BoolVarP(&save, "save", "s", false, "save solution after each load step and summary")
	postCmd.Flags().StringVarP(&dirout, "dirout", "d", "", "directory with results")
	rootCmd.AddCommand(runCmd, postCmd)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// message
	if len(os.Args) > 1 {
		io.Pf("\nsvkfem -- Saint-Venant-Kirchhoff solids\n\n")
	}

	// run command
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
