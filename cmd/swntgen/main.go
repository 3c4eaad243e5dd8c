/*
 * main.go, part of gonano.
 *
 * Copyright 2024 the goNano authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// swntgen generates single-walled nanotube structures and writes them
// as XYZ, PDB or LAMMPS data files.
//
//	swntgen -n 10 -m 5 -nz 3 -fname tube.pdb
//	swntgen -config tubes.toml
//
// With -config, the [swnt] table of the TOML file sets default values,
// which explicit flags override, and each [[tube]] entry is generated
// concurrently.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/geom"
	"github.com/rmera/gonano/nanoplot"
	"github.com/rmera/gonano/swnt"
)

func main() {
	f := defaultJob()
	flag.IntVar(&f.n, "n", f.n, "Chiral index n")
	flag.IntVar(&f.m, "m", f.m, "Chiral index m")
	flag.Float64Var(&f.nz, "nz", f.nz, "Number of unit cells along the tube")
	flag.StringVar(&f.e1, "e1", f.e1, "Element of the first basis atom")
	flag.StringVar(&f.e2, "e2", f.e2, "Element of the second basis atom")
	flag.Float64Var(&f.bond, "bond", f.bond, "Distance between nearest neighbors, in Å")
	flag.Float64Var(&f.length, "L", f.length, "Length of the tube in Å. Overrides -nz")
	flag.BoolVar(&f.fixLength, "fixL", f.fixLength, "Clip the tube to exactly the length given with -L")
	flag.StringVar(&f.fname, "fname", f.fname, "Output file name. A name is built from the chirality if not given")
	flag.StringVar(&f.outpath, "outpath", f.outpath, "Output directory")
	flag.StringVar(&f.format, "format", f.format, "Output format: xyz, pdb or data. Inferred from the file name if not given")
	flag.Float64Var(&f.rotation, "rot", f.rotation, "Rotation angle, in degrees unless -rad is given")
	flag.StringVar(&f.rotAxis, "rotaxis", f.rotAxis, "Rotation axis: x, y or z")
	flag.BoolVar(&f.radians, "rad", f.radians, "The rotation angle is in radians")
	flag.BoolVar(&f.noCenter, "nocenter", f.noCenter, "Don't center the tube on its center of mass")
	flag.StringVar(&f.plot, "plot", f.plot, "Also plot the unrolled tube to this PNG file")
	flag.BoolVar(&f.report, "bonds", f.report, "Print a summary of the bonds of the tube")
	flag.BoolVar(&f.verbose, "v", f.verbose, "Report the generation steps")
	configFile := flag.String("config", "", "TOML file with the parameters of one or more tubes")
	flag.Parse()
	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	var c *config
	if *configFile != "" {
		var err error
		c, err = loadConfig(*configFile)
		if err != nil {
			log.Fatalf("swntgen: %s", err.Error())
		}
	}
	results := runAll(jobs(c, f, set))
	failed := false
	for _, r := range results {
		if r.err != nil {
			log.Printf("swntgen: (%d,%d): %s", r.j.n, r.j.m, r.err.Error())
			if e, ok := r.err.(nano.ErrorDecorator); ok && r.j.verbose {
				log.Printf("swntgen: trace: %v", e.Decorate(""))
			}
			failed = true
			continue
		}
		fmt.Println(r.name)
		if r.report != nil {
			fmt.Println(r.report)
		}
	}
	if failed {
		os.Exit(1)
	}
}

type result struct {
	j      job
	name   string
	report *swnt.Report
	err    error
}

// runAll generates all the tubes concurrently. The results are in the
// same order as js.
func runAll(js []job) []result {
	results := make([]result, len(js))
	var wg sync.WaitGroup
	for i, j := range js {
		wg.Add(1)
		go func(i int, j job) {
			defer wg.Done()
			results[i] = j.run()
		}(i, j)
	}
	wg.Wait()
	return results
}

// run generates the tube and saves it.
func (j job) run() result {
	name, report, err := j.generate()
	return result{j: j, name: name, report: report, err: err}
}

// generate builds the tube, saves it, and does the optional plot and
// bond report. It returns the name of the file written.
func (j job) generate() (string, *swnt.Report, error) {
	o := swnt.DefaultOptions()
	o.Nz(j.nz)
	o.Elements(j.e1, j.e2)
	o.Bond(j.bond)
	o.Length(j.length)
	o.FixLength(j.fixLength)
	if j.verbose {
		o.Observer(swnt.LogObserver(nil))
	}
	G, err := swnt.New(j.n, j.m, o)
	if err != nil {
		return "", nil, err
	}
	so := swnt.DefaultSaveOptions()
	so.Fname(j.fname)
	so.Outpath(j.outpath)
	so.Format(j.format)
	so.CenterCM(!j.noCenter)
	if j.rotation != 0 {
		axis, err := geom.ParseAxis(j.rotAxis)
		if err != nil {
			return "", nil, err
		}
		so.Rotation(j.rotation)
		so.RotationAxis(axis)
		so.Deg2Rad(!j.radians)
	}
	name, err := G.SaveData(so)
	if err != nil {
		return "", nil, err
	}
	if j.plot != "" {
		//the projection needs the tube along z, so no rotation here.
		so.NoRotation()
		atoms, err := G.Prepare(so)
		if err != nil {
			return name, nil, err
		}
		title := fmt.Sprintf("(%d,%d) %s", j.n, j.m, G.Params().Type())
		if err := nanoplot.Projection(atoms, title, j.plot); err != nil {
			return name, nil, err
		}
	}
	if !j.report {
		return name, nil, nil
	}
	report, err := G.BondReport(so)
	if err != nil {
		return name, nil, err
	}
	return name, report, nil
}
