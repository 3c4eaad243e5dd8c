/*
 * swnt_test.go, part of gonano.
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

package swnt

import (
	"bytes"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"strings"
	"testing"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/geom"
)

const tol = 1e-9

func TestChiralParameters(Te *testing.T) {
	cases := []struct {
		n, m        int
		dR, N, M    int
		t1, t2      int
		T, thetaDeg float64
		kind        string
		metallic    bool
	}{
		{10, 5, 5, 70, 15, 4, -5, 1.42 * 3 * math.Sqrt(175) / 5, 19.1066, Chiral, false},
		{10, 0, 10, 20, 10, 1, -2, 1.42 * 3, 0, Zigzag, false},
		{5, 5, 15, 10, 5, 1, -1, 1.42 * math.Sqrt(3), 30, Armchair, true},
	}
	for _, c := range cases {
		P, err := NewParams(c.n, c.m, DefaultBond)
		if err != nil {
			Te.Fatal(err)
		}
		fmt.Println(P)
		if P.Dr != c.dR || P.N != c.N || P.M != c.M || P.T1 != c.t1 || P.T2 != c.t2 {
			Te.Errorf("(%d,%d): wrong integer parameters %+v", c.n, c.m, P)
		}
		if math.Abs(P.T-c.T) > tol || math.Abs(TranslationLength(c.n, c.m, DefaultBond)-c.T) > tol {
			Te.Errorf("(%d,%d): T=%v, expected %v", c.n, c.m, P.T, c.T)
		}
		if math.Abs(ChiralAngle(c.n, c.m, true)-c.thetaDeg) > 1e-4 {
			Te.Errorf("(%d,%d): chiral angle %v, expected %v", c.n, c.m, ChiralAngle(c.n, c.m, true), c.thetaDeg)
		}
		if P.Type() != c.kind || P.Metallic() != c.metallic {
			Te.Errorf("(%d,%d): wrong type %s metallic=%v", c.n, c.m, P.Type(), P.Metallic())
		}
		if math.Abs(P.Psi-2*math.Pi/float64(c.N)) > tol || math.Abs(P.Tau-float64(c.M)*c.T/float64(c.N)) > tol {
			Te.Errorf("(%d,%d): wrong steps psi=%v tau=%v", c.n, c.m, P.Psi, P.Tau)
		}
		if math.Abs(P.Dt()-Dt(c.n, c.m, DefaultBond)) > tol || math.Abs(P.Rt-Rt(c.n, c.m, DefaultBond)) > tol {
			Te.Errorf("(%d,%d): inconsistent radius", c.n, c.m)
		}
	}
}

func TestSymmetryVector(Te *testing.T) {
	for n := 0; n <= 15; n++ {
		for m := 0; m <= 15; m++ {
			if CheckChirality(n, m) != nil {
				continue
			}
			t1, t2 := T1T2(n, m)
			p, q := SymmetryR(n, m)
			N := SymmetryN(n, m)
			M := SymmetryM(n, m)
			if t1*q-t2*p != 1 {
				Te.Errorf("(%d,%d): t1*q-t2*p=%d with p=%d q=%d", n, m, t1*q-t2*p, p, q)
			}
			if M <= 0 || M > N {
				Te.Errorf("(%d,%d): M=%d out of (0, %d]", n, m, M, N)
			}
		}
	}
}

func TestInvalidParameters(Te *testing.T) {
	for _, c := range [][2]int{{0, 0}, {-1, 3}, {4, -2}} {
		if _, err := NewParams(c[0], c[1], DefaultBond); err == nil {
			Te.Errorf("(%d,%d) should be rejected", c[0], c[1])
		}
		if _, err := New(c[0], c[1], nil); err == nil {
			Te.Errorf("New(%d,%d) should fail", c[0], c[1])
		}
	}
	for _, b := range []float64{0, -1.42, math.NaN(), math.Inf(1)} {
		if _, err := NewParams(10, 5, b); err == nil {
			Te.Errorf("Bond %v should be rejected", b)
		}
	}
	o := DefaultOptions()
	o.Nz(0)
	if _, err := New(10, 5, o); err == nil {
		Te.Error("nz=0 should be rejected")
	}
	o = DefaultOptions()
	o.Length(-3)
	if _, err := New(10, 5, o); err == nil {
		Te.Error("Negative length should be rejected")
	}
	o = DefaultOptions()
	o.ElementsZ(200)
	if _, err := New(10, 5, o); err == nil {
		Te.Error("Unknown element should be rejected")
	}
	G, _ := New(5, 5, nil)
	so := DefaultSaveOptions()
	so.Rotation(30)
	so.RotationAxis(geom.Axis(7))
	if _, err := G.Prepare(so); err == nil {
		Te.Error("Invalid rotation axis should be rejected")
	}
}

func TestUnitCell(Te *testing.T) {
	for n := 0; n <= 12; n++ {
		for m := 0; m <= n; m++ {
			if CheckChirality(n, m) != nil {
				continue
			}
			o := DefaultOptions()
			o.Elements("B", "N")
			G, err := New(n, m, o)
			if err != nil {
				Te.Fatal(err)
			}
			P := G.Params()
			uc := G.UnitCell()
			if uc.Len() != 2*P.N || uc.Len() != P.UnitCellAtoms() {
				Te.Errorf("(%d,%d): %d atoms in the unit cell, expected %d", n, m, uc.Len(), 2*P.N)
			}
			for i := 0; i < uc.Len(); i++ {
				at := uc.Atom(i)
				if z := at.Z(); z > P.T-WrapEpsilon || z <= -WrapEpsilon {
					Te.Errorf("(%d,%d): atom %d not wrapped, z=%v T=%v", n, m, i, z, P.T)
				}
				if r := math.Hypot(at.X(), at.Y()); math.Abs(r-P.Rt) > 1e-6 {
					Te.Errorf("(%d,%d): atom %d off the tube wall, r=%v rt=%v", n, m, i, r, P.Rt)
				}
				want := "B"
				if i%2 == 1 {
					want = "N"
				}
				if at.Symbol != want {
					Te.Errorf("(%d,%d): atom %d is %s, expected %s", n, m, i, at.Symbol, want)
				}
			}
		}
	}
}

func TestReplication(Te *testing.T) {
	o := DefaultOptions()
	o.Nz(3)
	G, err := New(8, 2, o)
	if err != nil {
		Te.Fatal(err)
	}
	uc, st := G.UnitCell(), G.Structure()
	if st.Len() != 3*uc.Len() {
		Te.Fatalf("Expected %d atoms, got %d", 3*uc.Len(), st.Len())
	}
	T := G.Params().T
	for r := 0; r < 3; r++ {
		for j := 0; j < uc.Len(); j++ {
			want := uc.Atom(j).R().Add(geom.NewVector(0, 0, float64(r)*T))
			got := st.Atom(r*uc.Len() + j)
			if !got.R().Equal(want, tol) || got.Symbol != uc.Atom(j).Symbol {
				Te.Errorf("Replica %d atom %d at %v, expected %v", r, j, got, want)
			}
			if got.R() == uc.Atom(j).R() {
				Te.Error("Replicated atoms must not share positions with the unit cell")
			}
		}
	}
	//fractional counts are rounded up
	o.Nz(1.5)
	G, _ = New(8, 2, o)
	if G.Structure().Len() != 2*G.UnitCell().Len() {
		Te.Errorf("nz=1.5 should give 2 replicas, got %d atoms", G.Structure().Len())
	}
}

// Scenario: (10,5), one unit cell.
func TestUnitCellTube(Te *testing.T) {
	G, err := New(10, 5, nil)
	if err != nil {
		Te.Fatal(err)
	}
	st := G.Structure()
	if st.Len() != 2*SymmetryN(10, 5) || st.Len() != 140 {
		Te.Errorf("Expected 140 atoms, got %d", st.Len())
	}
	T := G.Params().T
	for i := 0; i < st.Len(); i++ {
		if z := st.Atom(i).Z(); z < 0 || z >= T {
			Te.Errorf("Atom %d has z=%v outside [0, %v)", i, z, T)
		}
	}
	if f := G.DefaultFname(); f != "1005r_1cell" {
		Te.Errorf("Wrong default file name %s", f)
	}
}

// Scenario: (10,0) zigzag tube, 5 cells, centered.
func TestDefaultPrepare(Te *testing.T) {
	G, err := New(10, 0, nil)
	if err != nil {
		Te.Fatal(err)
	}
	atoms, err := G.Prepare(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if atoms.Len() != 40 {
		Te.Errorf("Expected 40 atoms, got %d", atoms.Len())
	}
	if cm := atoms.CM(); !cm.Equal(geom.NewPoint(0, 0, 0), tol) {
		Te.Errorf("CM not at the origin: %v", cm)
	}
	so := DefaultSaveOptions()
	so.Outpath(Te.TempDir())
	name, err := G.SaveData(so)
	if err != nil || filepath.Base(name) != "1000r_1cell.xyz" {
		Te.Errorf("Wrong file %q, error %v", name, err)
	}
}

func TestZigzagCentered(Te *testing.T) {
	o := DefaultOptions()
	o.Nz(5)
	G, err := New(10, 0, o)
	if err != nil {
		Te.Fatal(err)
	}
	atoms, err := G.Prepare(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if atoms.Len() != 2*20*5 {
		Te.Errorf("Expected 200 atoms, got %d", atoms.Len())
	}
	if cm := atoms.CM(); !cm.Equal(geom.NewPoint(0, 0, 0), tol) {
		Te.Errorf("CM not at the origin: %v", cm)
	}
	//Prepare works on a copy
	if cm := G.Structure().CM(); cm.Z() < 1 {
		Te.Errorf("The generator's structure should not be centered: %v", cm)
	}
	if f := G.DefaultFname(); f != "1000r_5cells" {
		Te.Errorf("Wrong default file name %s", f)
	}
}

// Scenario: fixed length shorter than the replicated structure.
func TestFixedLength(Te *testing.T) {
	T := TranslationLength(10, 5, DefaultBond)
	L := 2.5 * T
	o := DefaultOptions()
	o.Length(L)
	o.FixLength(true)
	var stages []Stage
	o.Observer(func(s Stage, g *Generator, a *nano.Atoms) { stages = append(stages, s) })
	G, err := New(10, 5, o)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(G.Nz()-2.5) > tol {
		Te.Errorf("Expected 2.5 cells, got %v", G.Nz())
	}
	unclipped := G.Structure()
	if unclipped.Len() != 3*140 {
		Te.Fatalf("Expected %d atoms before clipping, got %d", 3*140, unclipped.Len())
	}
	cmz := unclipped.CM().Z()
	so := DefaultSaveOptions()
	so.CenterCM(false)
	atoms, err := G.Prepare(so)
	if err != nil {
		Te.Fatal(err)
	}
	if atoms.Len() >= unclipped.Len() || atoms.Len() == 0 {
		Te.Errorf("Clipping should remove some atoms: %d of %d left", atoms.Len(), unclipped.Len())
	}
	zmin, zmax := math.Inf(1), math.Inf(-1)
	for i := 0; i < atoms.Len(); i++ {
		z := atoms.Atom(i).Z() - cmz
		if z < -tol || z > L+tol {
			Te.Errorf("Atom %d at %v from the CM, outside [0, %v]", i, z, L)
		}
		zmin, zmax = math.Min(zmin, z), math.Max(zmax, z)
	}
	//only the half above the CM of the 3 replicated cells is left.
	if ext := zmax - zmin; ext <= 0 || ext > 1.5*T+DefaultBond {
		Te.Errorf("The clipped tube should be about half the replicated one, got %v Å for T=%v", ext, T)
	}
	want := []Stage{UnitCellDone, StructureDone, Clipped}
	if fmt.Sprint(stages) != fmt.Sprint(want) {
		Te.Errorf("Wrong stages %v, expected %v", stages, want)
	}
	if f := G.DefaultFname(); f != "1005r_2.50cells" {
		Te.Errorf("Wrong default file name %s", f)
	}
	//without FixLength the cells are rounded up, and nothing is clipped.
	o.FixLength(false)
	o.Observer(nil)
	G, _ = New(10, 5, o)
	atoms, _ = G.Prepare(nil)
	if G.Nz() != 3 || atoms.Len() != 3*140 {
		Te.Errorf("Expected 3 whole cells, got nz=%v and %d atoms", G.Nz(), atoms.Len())
	}
}

func TestRotation(Te *testing.T) {
	G, err := New(6, 6, nil)
	if err != nil {
		Te.Fatal(err)
	}
	plain, _ := G.Prepare(nil)
	so := DefaultSaveOptions()
	so.Rotation(90)
	so.RotationAxis(geom.X)
	rotated, err := G.Prepare(so)
	if err != nil {
		Te.Fatal(err)
	}
	R := geom.RotationMatrix(90, geom.X, true)
	for i := 0; i < plain.Len(); i++ {
		want := plain.Atom(i).R().Rotate(R)
		if !rotated.Atom(i).R().Equal(want, tol) {
			Te.Errorf("Atom %d at %v, expected %v", i, rotated.Atom(i), want)
		}
	}
	//the same in radians
	so.Rotation(math.Pi / 2)
	so.Deg2Rad(false)
	rad, _ := G.Prepare(so)
	if !rad.Atom(3).R().Equal(rotated.Atom(3).R(), tol) {
		Te.Errorf("Degrees and radians disagree: %v %v", rad.Atom(3), rotated.Atom(3))
	}
}

func TestAutogenAndObserver(Te *testing.T) {
	var buf bytes.Buffer
	o := DefaultOptions()
	o.Autogen(false)
	o.ElementsZ(5, 7)
	o.Observer(LogObserver(log.New(&buf, "", 0)))
	G, err := New(7, 3, o)
	if err != nil {
		Te.Fatal(err)
	}
	if G.UnitCell() != nil || G.Structure() != nil || buf.Len() != 0 {
		Te.Error("Nothing should be generated without autogen")
	}
	if z := o.ElementsZ(); z[0] != 5 || z[1] != 7 {
		Te.Errorf("Wrong atomic numbers %v", z)
	}
	so := DefaultSaveOptions()
	so.Outpath(Te.TempDir())
	if _, err := G.SaveData(so); err != nil {
		Te.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"dpsi", "atoms in 1cell", "saved"} {
		if !strings.Contains(out, want) {
			Te.Errorf("Missing %q in the log:\n%s", want, out)
		}
	}
}

func TestSaveData(Te *testing.T) {
	dir := Te.TempDir()
	o := DefaultOptions()
	o.Nz(2)
	G, err := New(10, 10, o)
	if err != nil {
		Te.Fatal(err)
	}
	so := DefaultSaveOptions()
	so.Outpath(dir)
	so.Fname("armchair.zst")
	name, err := G.SaveData(so)
	if err != nil {
		Te.Fatal(err)
	}
	if name != filepath.Join(dir, "armchair.xyz.zst") {
		Te.Errorf("Wrong file %s", name)
	}
	atoms, comment, err := nano.XYZFileRead(name)
	if err != nil {
		Te.Fatal(err)
	}
	if atoms.Len() != G.Structure().Len() || !strings.Contains(comment, "(10,10) armchair") {
		Te.Errorf("Wrong file contents: %d atoms, comment %q", atoms.Len(), comment)
	}
	so.Fname("")
	so.Format(nano.PDB)
	name, err = G.SaveData(so)
	if err != nil {
		Te.Fatal(err)
	}
	if filepath.Base(name) != "1010r_2cells.pdb" {
		Te.Errorf("Wrong default file %s", name)
	}
	so.Outpath(filepath.Join(dir, "missing"))
	if _, err := G.SaveData(so); err == nil {
		Te.Error("Writing to a missing directory should fail")
	}
}

func TestBondReport(Te *testing.T) {
	o := DefaultOptions()
	o.Nz(3)
	G, err := New(10, 10, o)
	if err != nil {
		Te.Fatal(err)
	}
	R, err := G.BondReport(nil)
	if err != nil {
		Te.Fatal(err)
	}
	if R.Atoms != 120 {
		Te.Errorf("Expected 120 atoms, got %d", R.Atoms)
	}
	//Every atom has at most 3 bonds, and most have exactly 3.
	if 2*R.Bonds > 3*R.Atoms || 2*R.Bonds <= 2*R.Atoms {
		Te.Errorf("Wrong number of bonds %d for %d atoms", R.Bonds, R.Atoms)
	}
	if R.Undercoordinated == 0 || R.Undercoordinated >= R.Atoms {
		Te.Errorf("Wrong number of undercoordinated atoms %d", R.Undercoordinated)
	}
	if math.Abs(R.Mean-DefaultBond) > 0.03 || R.Std > 0.02 {
		Te.Errorf("Wrong bond lengths %.4f ± %.4f", R.Mean, R.Std)
	}
	if R.Components != 1 {
		Te.Errorf("The tube should be in one piece, got %d fragments", R.Components)
	}
	if R.Histo.Total() != R.Bonds {
		Te.Errorf("All the bonds should be in the histogram: %d of %d", R.Histo.Total(), R.Bonds)
	}
	Te.Log(R)
	so := DefaultSaveOptions()
	so.RotationAxis(geom.Axis(7))
	so.Rotation(10)
	if _, err := G.BondReport(so); err == nil {
		Te.Error("An invalid axis should fail")
	}
}
