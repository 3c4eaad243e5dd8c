/*
 * projection_test.go, part of gonano.
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

package nanoplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	nano "github.com/rmera/gonano"
	"gonum.org/v1/plot/vg"
)

// ring returns n atoms of elements alternating between B and N on a circle
// of radius r at height z.
func ring(n int, r, z float64) *nano.Atoms {
	atoms := nano.NewAtoms()
	for i := 0; i < n; i++ {
		sym := "B"
		if i%2 == 1 {
			sym = "N"
		}
		a := 2 * math.Pi * float64(i) / float64(n)
		atoms.Append(nano.NewAtom(sym, r*math.Cos(a), r*math.Sin(a), z))
	}
	return atoms
}

func TestUnroll(Te *testing.T) {
	data, symbols := Unroll(ring(8, 3, 1.5))
	if len(symbols) != 2 || symbols[0] != "B" || symbols[1] != "N" {
		Te.Fatalf("Wrong symbols %v", symbols)
	}
	if len(data["B"]) != 4 || len(data["N"]) != 4 {
		Te.Fatalf("Wrong grouping: %v", data)
	}
	for _, sym := range symbols {
		for _, v := range data[sym] {
			if math.Abs(v.X) > 3*math.Pi+1e-9 || v.Y != 1.5 {
				Te.Errorf("Point %v outside the unrolled tube", v)
			}
		}
	}
	//the atom at angle pi/2 is at a quarter of the circumference.
	if math.Abs(data["B"][1].X-3*math.Pi/2) > 1e-9 {
		Te.Errorf("Wrong arc length %v", data["B"][1].X)
	}
}

func TestBasicProjectionPlot(Te *testing.T) {
	p := basicProjectionPlot("title")
	if p.Title.Text != "title" || p.Title.Padding != 3*vg.Millimeter {
		Te.Errorf("Wrong plot title settings: %q %v", p.Title.Text, p.Title.Padding)
	}
}

func TestProjection(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "ring")
	if err := Projection(ring(12, 4, 0), "Test ring", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error(err)
	}
	if err := Projection(nano.NewAtoms(), "empty", name); err == nil {
		Te.Error("Plotting no atoms should fail")
	}
}
