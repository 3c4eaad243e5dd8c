/*
 * atoms.go, part of gonano.
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

package nano

import (
	"fmt"
	"log"

	"github.com/rmera/gonano/geom"
	v3 "github.com/rmera/gonano/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Atom is a particle with an element and a position. The remaining
// fields are only used when writing some file formats.
type Atom struct {
	Symbol    string
	Znum      int //atomic number
	Mass      float64
	ID        int
	Name      string //PDB atom name. The symbol is used if empty.
	Molname   string //PDB residue name.
	Molid     int
	Chain     string
	Occupancy float64
	Bfactor   float64
	Bonds     []*Bond
	r         *geom.Point
}

// NewAtom returns an atom of element symbol at the position (x, y, z).
// The atomic number and mass are filled from the symbol when the element
// is known, and left at 0 otherwise.
func NewAtom(symbol string, x, y, z float64) *Atom {
	symbol = NormalizeSymbol(symbol)
	A := &Atom{Symbol: symbol, Mass: SymbolMass(symbol), Occupancy: 1, r: geom.NewPoint(x, y, z)}
	A.Znum, _ = ZFromSymbol(symbol)
	return A
}

// Copy returns a copy of the Atom object, position included. Bonds are
// not copied, as they refer to other atoms.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	ret := *A
	ret.Bonds = nil
	ret.r = A.r.Copy()
	return &ret
}

// R returns the position of the atom. Changes to the returned point
// move the atom.
func (A *Atom) R() *geom.Point {
	return A.r
}

// SetR sets the position of the atom to a copy of r, which must be 3D.
func (A *Atom) SetR(r *geom.Point) {
	if r.Nd() != 3 {
		panic(fmt.Sprintf("goNano: atom positions must be 3D, got %d", r.Nd()))
	}
	A.r = r.Copy()
}

// X, Y and Z return the coordinates of the atom.
func (A *Atom) X() float64 { return A.r.X() }
func (A *Atom) Y() float64 { return A.r.Y() }
func (A *Atom) Z() float64 { return A.r.Z() }

// Rezero snaps the coordinates of the atom with absolute value less than
// or equal to epsilon to zero. A non-positive epsilon means geom.DefaultEpsilon.
func (A *Atom) Rezero(epsilon float64) {
	A.r.Rezero(epsilon)
}

func (A *Atom) String() string {
	return fmt.Sprintf("Atom(%s, %v)", A.Symbol, A.r.Coords())
}

/*****Atoms type***/

// Atoms is an ordered collection of atoms.
type Atoms struct {
	atoms []*Atom
}

// NewAtoms returns a collection with the given atoms (not copied).
func NewAtoms(ats ...*Atom) *Atoms {
	return &Atoms{atoms: ats}
}

// Atom returns the Atom corresponding to the index i. Panics if
// out of range.
func (A *Atoms) Atom(i int) *Atom {
	if i >= A.Len() || i < 0 {
		panic(fmt.Sprintf("Atoms: Requested Atom %d out of bounds", i))
	}
	return A.atoms[i]
}

// Len returns the number of atoms in the collection.
func (A *Atoms) Len() int {
	if A == nil {
		return 0
	}
	return len(A.atoms)
}

// Append adds the atoms at the end of the collection.
func (A *Atoms) Append(ats ...*Atom) {
	A.atoms = append(A.atoms, ats...)
}

// Copy returns a deep copy of the collection.
func (A *Atoms) Copy() *Atoms {
	ret := &Atoms{atoms: make([]*Atom, len(A.atoms))}
	for i, v := range A.atoms {
		ret.atoms[i] = v.Copy()
	}
	return ret
}

// AssignUniqueIDs sets the ID of each atom to its 1-based position in
// the collection.
func (A *Atoms) AssignUniqueIDs() {
	for i, v := range A.atoms {
		v.ID = i + 1
	}
}

// Symbols returns the element symbols present in the collection, in order
// of first appearance.
func (A *Atoms) Symbols() []string {
	ret := make([]string, 0, 2)
	seen := make(map[string]bool)
	for _, v := range A.atoms {
		if !seen[v.Symbol] {
			seen[v.Symbol] = true
			ret = append(ret, v.Symbol)
		}
	}
	return ret
}

// Masses returns a slice with the masses of the atoms, and an error if
// some of them are not known.
func (A *Atoms) Masses() ([]float64, error) {
	mass := make([]float64, A.Len())
	for i, v := range A.atoms {
		if v.Mass == 0 {
			return nil, Error{message: fmt.Sprintf("Not all the masses have been obtained: %d %v", i, v), deco: []string{"Masses"}}
		}
		mass[i] = v.Mass
	}
	return mass, nil
}

// Rezero snaps all coordinates with absolute value less than or equal to
// epsilon to zero.
func (A *Atoms) Rezero(epsilon float64) {
	for _, v := range A.atoms {
		v.Rezero(epsilon)
	}
}

// Coords returns a new Nx3 matrix with the coordinates of the atoms, or
// nil if the collection is empty.
func (A *Atoms) Coords() *v3.Matrix {
	if A.Len() == 0 {
		return nil
	}
	data := make([]float64, 0, 3*A.Len())
	for _, v := range A.atoms {
		data = append(data, v.r.Coords()...)
	}
	coords, _ := v3.NewMatrix(data) //can't fail, we just built it
	return coords
}

// SetCoords moves each atom to the position in the corresponding vector
// of coords. Panics if the numbers of atoms and vectors differ.
func (A *Atoms) SetCoords(coords *v3.Matrix) {
	if coords.NVecs() != A.Len() {
		panic(fmt.Sprintf("Wrong number of coordinates (%d) for %d atoms", coords.NVecs(), A.Len()))
	}
	for i, v := range A.atoms {
		row := coords.RawRowView(i)
		v.r.SetX(row[0])
		v.r.SetY(row[1])
		v.r.SetZ(row[2])
	}
}

// Translate displaces all atoms by v, which must be 3D.
func (A *Atoms) Translate(v *geom.Vector) {
	coords := A.Coords()
	if coords == nil {
		return
	}
	vec, err := v3.NewMatrix(v.Components())
	if err != nil || vec.NVecs() != 1 {
		panic(fmt.Sprintf("goNano: Translation vector must be 3D, got %v", v))
	}
	coords.AddVec(coords, vec)
	A.SetCoords(coords)
}

// Rotate applies the 3x3 rotation matrix R (acting on column vectors) to
// the position of every atom. The rotation is about the origin.
func (A *Atoms) Rotate(R mat.Matrix) {
	coords := A.Coords()
	if coords == nil {
		return
	}
	//Each row is a point, so we need r^T R^T
	coords.Mul(coords, R.T())
	A.SetCoords(coords)
}

// CM returns the center of mass of the collection. If some masses are
// unknown, the geometric center is returned instead, and a warning logged.
// Returns the origin for an empty collection.
func (A *Atoms) CM() *geom.Point {
	coords := A.Coords()
	if coords == nil {
		return geom.ZeroPoint(3)
	}
	mass, err := A.Masses()
	if err != nil {
		log.Printf("goNano: %s. Using the geometric center instead of the center of mass", err.Error())
		mass = make([]float64, A.Len())
		floats.AddConst(1, mass)
	}
	total := floats.Sum(mass)
	weights := mat.NewDense(1, A.Len(), mass)
	cm := v3.Zeros(1)
	cm.Mul(weights, coords)
	cm.Scale(1/total, cm)
	return geom.NewPoint(cm.RawRowView(0)...)
}

// CenterCM translates the collection so its center of mass is on the origin.
func (A *Atoms) CenterCM() {
	coords := A.Coords()
	if coords == nil {
		return
	}
	cm, _ := v3.NewMatrix(A.CM().Coords())
	coords.SubVec(coords, cm)
	A.SetCoords(coords)
}

// ClipBounds removes every atom outside region. If centerBeforeClipping
// is true, the collection is first translated so its center of mass is on
// the origin, clipped, and then translated back, so the region is applied
// relative to the center of mass of the structure.
func (A *Atoms) ClipBounds(region *geom.Cuboid, centerBeforeClipping bool) {
	var cm *geom.Point
	if centerBeforeClipping {
		cm = A.CM()
		A.Translate(geom.VectorBetween(geom.ZeroPoint(3), cm))
	}
	kept := A.atoms[:0]
	for _, v := range A.atoms {
		if region.Contains(v.r) {
			kept = append(kept, v)
		}
	}
	//let the removed atoms be collected
	for i := len(kept); i < len(A.atoms); i++ {
		A.atoms[i] = nil
	}
	A.atoms = kept
	if cm != nil {
		A.Translate(geom.NewBoundVector(cm.Coords(), nil))
	}
}
