/*
 * config_test.go, part of gonano.
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
	"os"
	"path/filepath"
	"strings"
	"testing"

	nano "github.com/rmera/gonano"
)

const testConfig = `
[swnt]
e1 = "B"
e2 = "N"
nz = 2.0
format = "pdb"

[[tube]]
n = 10
m = 5

[[tube]]
n = 8
m = 0
nz = 3.0
fname = "zigzag"
format = "xyz"
`

func TestReadConfig(Te *testing.T) {
	c, err := readConfig(strings.NewReader(testConfig))
	if err != nil {
		Te.Fatal(err)
	}
	if len(c.Tubes) != 2 {
		Te.Fatalf("Expected 2 tubes, got %d", len(c.Tubes))
	}
	if c.Swnt.N != nil || c.Swnt.E1 == nil || *c.Swnt.E1 != "B" {
		Te.Errorf("Wrong [swnt] table: %+v", c.Swnt)
	}
	if c.Tubes[0].Nz != nil || c.Tubes[1].Nz == nil || *c.Tubes[1].Nz != 3 {
		Te.Errorf("Wrong nz in the tubes")
	}
	_, err = readConfig(strings.NewReader("[swnt\nn = 3"))
	if err == nil {
		Te.Errorf("Malformed TOML should fail")
	}
}

func TestJobs(Te *testing.T) {
	c, err := readConfig(strings.NewReader(testConfig))
	if err != nil {
		Te.Fatal(err)
	}
	f := defaultJob()
	f.nz = 7
	f.e2 = "C"
	f.bond = 1.45
	set := map[string]bool{"e2": true, "bond": true}
	js := jobs(c, f, set)
	if len(js) != 2 {
		Te.Fatalf("Expected 2 jobs, got %d", len(js))
	}
	first := js[0]
	if first.n != 10 || first.m != 5 {
		Te.Errorf("Wrong chirality (%d,%d)", first.n, first.m)
	}
	//nz was not set explicitly, so the [swnt] value is kept.
	if first.nz != 2 || first.e1 != "B" || first.e2 != "C" || first.bond != 1.45 || first.format != "pdb" {
		Te.Errorf("Wrong merge: %+v", first)
	}
	second := js[1]
	if second.nz != 3 || second.fname != "zigzag" || second.format != "xyz" {
		Te.Errorf("Tube entries should override the defaults: %+v", second)
	}
	js = jobs(nil, f, set)
	if len(js) != 1 || js[0] != f {
		Te.Errorf("Without a configuration, the flag values should be used: %+v", js)
	}
}

func TestRunAll(Te *testing.T) {
	dir := Te.TempDir()
	good := defaultJob()
	good.n, good.m = 6, 6
	good.outpath = dir
	good.rotation = 90
	good.rotAxis = "x"
	good.plot = filepath.Join(dir, "unrolled")
	good.report = true
	bad := good
	bad.n, bad.m = 0, 0
	results := runAll([]job{good, bad})
	if results[0].err != nil {
		Te.Fatal(results[0].err)
	}
	if results[0].name != filepath.Join(dir, "0606r_1cell.xyz") {
		Te.Errorf("Wrong file name %s", results[0].name)
	}
	atoms, _, err := nano.XYZFileRead(results[0].name)
	if err != nil {
		Te.Fatal(err)
	}
	if atoms.Len() != 24 {
		Te.Errorf("Expected 24 atoms, got %d", atoms.Len())
	}
	if results[0].report == nil || results[0].report.Atoms != 24 {
		Te.Errorf("Wrong bond report %v", results[0].report)
	}
	if _, err := os.Stat(good.plot + ".png"); err != nil {
		Te.Errorf("Plot not written: %v", err)
	}
	if results[1].err == nil {
		Te.Errorf("The (0,0) tube should fail")
	}
}
