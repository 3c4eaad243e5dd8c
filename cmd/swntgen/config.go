/*
 * config.go, part of gonano.
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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/rmera/gonano/swnt"
)

// tubeConfig has the parameters that can be given in a TOML file, either
// in the [swnt] table or in each [[tube]]. Missing keys are nil.
type tubeConfig struct {
	N         *int     `toml:"n"`
	M         *int     `toml:"m"`
	Nz        *float64 `toml:"nz"`
	E1        *string  `toml:"e1"`
	E2        *string  `toml:"e2"`
	Bond      *float64 `toml:"bond"`
	Length    *float64 `toml:"length"`
	FixLength *bool    `toml:"fix_length"`
	Fname     *string  `toml:"fname"`
	Outpath   *string  `toml:"outpath"`
	Format    *string  `toml:"format"`
	Rotation  *float64 `toml:"rotation"`
	RotAxis   *string  `toml:"rotation_axis"`
	Radians   *bool    `toml:"radians"`
	NoCenter  *bool    `toml:"no_center"`
	Plot      *string  `toml:"plot"`
	Report    *bool    `toml:"bond_report"`
}

// config is the whole TOML file. The [swnt] table holds the defaults for
// all the tubes, and each [[tube]] entry is a tube to generate.
type config struct {
	Swnt  tubeConfig   `toml:"swnt"`
	Tubes []tubeConfig `toml:"tube"`
}

// readConfig decodes a TOML configuration from r.
func readConfig(r io.Reader) (*config, error) {
	var c config
	dec := toml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("readConfig: %w", err)
	}
	return &c, nil
}

// loadConfig reads the TOML configuration file path.
func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readConfig(f)
}

// job has everything needed to generate and save one tube.
type job struct {
	n, m      int
	nz        float64
	e1, e2    string
	bond      float64
	length    float64
	fixLength bool
	fname     string
	outpath   string
	format    string
	rotation  float64
	rotAxis   string
	radians   bool
	noCenter  bool
	plot      string
	report    bool
	verbose   bool
}

func defaultJob() job {
	return job{n: 10, m: 10, nz: 1, e1: "C", e2: "C", bond: swnt.DefaultBond, rotAxis: "z"}
}

// merge returns a copy of j with the values present in t.
func (j job) merge(t tubeConfig) job {
	if t.N != nil {
		j.n = *t.N
	}
	if t.M != nil {
		j.m = *t.M
	}
	if t.Nz != nil {
		j.nz = *t.Nz
	}
	if t.E1 != nil {
		j.e1 = *t.E1
	}
	if t.E2 != nil {
		j.e2 = *t.E2
	}
	if t.Bond != nil {
		j.bond = *t.Bond
	}
	if t.Length != nil {
		j.length = *t.Length
	}
	if t.FixLength != nil {
		j.fixLength = *t.FixLength
	}
	if t.Fname != nil {
		j.fname = *t.Fname
	}
	if t.Outpath != nil {
		j.outpath = *t.Outpath
	}
	if t.Format != nil {
		j.format = *t.Format
	}
	if t.Rotation != nil {
		j.rotation = *t.Rotation
	}
	if t.RotAxis != nil {
		j.rotAxis = *t.RotAxis
	}
	if t.Radians != nil {
		j.radians = *t.Radians
	}
	if t.NoCenter != nil {
		j.noCenter = *t.NoCenter
	}
	if t.Plot != nil {
		j.plot = *t.Plot
	}
	if t.Report != nil {
		j.report = *t.Report
	}
	return j
}

// override returns a copy of j with the values of the flags in set
// taken from f.
func (j job) override(f job, set map[string]bool) job {
	for name := range set {
		switch name {
		case "n":
			j.n = f.n
		case "m":
			j.m = f.m
		case "nz":
			j.nz = f.nz
		case "e1":
			j.e1 = f.e1
		case "e2":
			j.e2 = f.e2
		case "bond":
			j.bond = f.bond
		case "L":
			j.length = f.length
		case "fixL":
			j.fixLength = f.fixLength
		case "fname":
			j.fname = f.fname
		case "outpath":
			j.outpath = f.outpath
		case "format":
			j.format = f.format
		case "rot":
			j.rotation = f.rotation
		case "rotaxis":
			j.rotAxis = f.rotAxis
		case "rad":
			j.radians = f.radians
		case "nocenter":
			j.noCenter = f.noCenter
		case "plot":
			j.plot = f.plot
		case "bonds":
			j.report = f.report
		case "v":
			j.verbose = f.verbose
		}
	}
	return j
}

// jobs returns the tubes to generate from the configuration c, the flag
// values f and the names of the flags explicitly set. Explicit flags take
// precedence over the [swnt] table, and each [[tube]] over both.
func jobs(c *config, f job, set map[string]bool) []job {
	if c == nil {
		return []job{f}
	}
	base := defaultJob().merge(c.Swnt).override(f, set)
	base.verbose = f.verbose
	if len(c.Tubes) == 0 {
		return []job{base}
	}
	ret := make([]job, 0, len(c.Tubes))
	for _, t := range c.Tubes {
		ret = append(ret, base.merge(t))
	}
	return ret
}
