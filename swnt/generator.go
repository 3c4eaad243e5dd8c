/*
 * generator.go, part of gonano.
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
	"fmt"
	"log"
	"math"

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/geom"
)

// WrapEpsilon is the tolerance, in Å, for wrapping the unit cell atoms
// back into one translation length.
const WrapEpsilon = 0.01

// Stage is a milestone in the generation of a tube.
type Stage int

const (
	UnitCellDone Stage = iota
	StructureDone
	Clipped
	Saved
)

func (s Stage) String() string {
	switch s {
	case UnitCellDone:
		return "unit cell done"
	case StructureDone:
		return "structure done"
	case Clipped:
		return "clipped"
	case Saved:
		return "saved"
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Observer is called by a Generator at each Stage. atoms is the unit
// cell for UnitCellDone, the full structure for StructureDone, and the
// structure to be written for Clipped and Saved. Observers must not
// modify atoms.
type Observer func(stage Stage, g *Generator, atoms *nano.Atoms)

// LogObserver returns an Observer that reports each stage to l. A nil l
// means the standard logger.
func LogObserver(l *log.Logger) Observer {
	if l == nil {
		l = log.Default()
	}
	return func(stage Stage, g *Generator, atoms *nano.Atoms) {
		n, m := g.params.Chirality()
		switch stage {
		case UnitCellDone:
			l.Printf("(%d,%d) dpsi: %.6f dtau: %.6f. Unit cell with %d atoms", n, m, g.params.Dpsi, g.params.Dtau, atoms.Len())
		case StructureDone:
			l.Printf("(%d,%d) %d atoms in %s", n, m, atoms.Len(), g.cellsString())
		case Clipped:
			l.Printf("(%d,%d) %d atoms left after clipping to %.4f Å", n, m, atoms.Len(), g.length)
		default:
			l.Printf("(%d,%d) %s: %d atoms", n, m, stage, atoms.Len())
		}
	}
}

// Options contains the options for a Generator.
type Options struct {
	nz        float64
	elements  [2]string
	bond      float64
	length    float64
	fixLength bool
	autogen   bool
	observer  Observer
}

// DefaultOptions returns the options for 1 unit cell of a carbon tube,
// which is generated when the Generator is created.
func DefaultOptions() *Options {
	return &Options{nz: 1, elements: [2]string{"C", "C"}, bond: DefaultBond, autogen: true}
}

// Nz sets the number of unit cells along the tube, if a value is given.
// Returns the current value. Ignored if a length is given.
func (O *Options) Nz(nz ...float64) float64 {
	if len(nz) > 0 {
		O.nz = nz[0]
	}
	return O.nz
}

// Elements sets the element symbols of the 2 basis atoms, if given. A
// single symbol is used for both. Returns the current values.
func (O *Options) Elements(e ...string) []string {
	if len(e) == 1 {
		e = append(e, e[0])
	}
	if len(e) > 1 {
		O.elements = [2]string{nano.NormalizeSymbol(e[0]), nano.NormalizeSymbol(e[1])}
	}
	return []string{O.elements[0], O.elements[1]}
}

// ElementsZ sets the elements of the 2 basis atoms from their atomic
// numbers, if given. A single number is used for both. Returns the atomic
// numbers of the current elements, 0 for unknown ones. Unknown atomic
// numbers make New fail.
func (O *Options) ElementsZ(z ...int) []int {
	if len(z) == 1 {
		z = append(z, z[0])
	}
	if len(z) > 1 {
		for i, v := range z[:2] {
			s, err := nano.SymbolFromZ(v)
			if err != nil {
				s = fmt.Sprintf("Z=%d", v)
			}
			O.elements[i] = s
		}
	}
	ret := make([]int, 2)
	for i, v := range O.elements {
		ret[i], _ = nano.ZFromSymbol(v)
	}
	return ret
}

// Bond sets the distance between nearest neighbors, in Å, if given.
// Returns the current value.
func (O *Options) Bond(b ...float64) float64 {
	if len(b) > 0 {
		O.bond = b[0]
	}
	return O.bond
}

// Length sets the target length of the tube, in Å, if given. A positive
// length overrides Nz. Returns the current value.
func (O *Options) Length(l ...float64) float64 {
	if len(l) > 0 {
		O.length = l[0]
	}
	return O.length
}

// FixLength sets whether the tube is clipped to the target length L, if
// given, allowing a fractional number of unit cells. Otherwise, the
// number of cells is rounded up. It has no effect without a Length.
// The clip region is [0, L] along z measured from the center of mass of
// the replicated tube, which is itself about L long, so only the half
// above the center of mass is kept: the saved tube is about L/2 long.
// Returns the current value.
func (O *Options) FixLength(f ...bool) bool {
	if len(f) > 0 {
		O.fixLength = f[0]
	}
	return O.fixLength
}

// Autogen sets whether New generates the unit cell and the structure,
// if given. Returns the current value.
func (O *Options) Autogen(a ...bool) bool {
	if len(a) > 0 {
		O.autogen = a[0]
	}
	return O.autogen
}

// Observer sets the function to be called at each generation stage, if
// given. Returns the current value, which can be nil.
func (O *Options) Observer(o ...Observer) Observer {
	if len(o) > 0 {
		O.observer = o[0]
	}
	return O.observer
}

// Generator builds single-walled nanotubes of one chirality. The tube
// axis is z. Separate Generators can be used concurrently.
type Generator struct {
	params    *Params
	nz        float64
	elements  [2]string
	length    float64
	fixLength bool
	observer  Observer
	unitCell  *nano.Atoms
	structure *nano.Atoms
}

// New returns a Generator for the (n, m) tube with the given options. A
// nil o means DefaultOptions. All the parameters are checked here, before
// any generation.
func New(n, m int, o *Options) (*Generator, error) {
	if o == nil {
		o = DefaultOptions()
	}
	params, err := NewParams(n, m, o.bond)
	if err != nil {
		e := err.(Error)
		e.deco = append(e.deco, "New")
		return nil, e
	}
	G := &Generator{params: params, elements: o.elements, observer: o.observer}
	for _, v := range G.elements {
		if _, err := nano.ZFromSymbol(v); err != nil {
			return nil, Error{fmt.Sprintf("Unknown element %q", v), []string{"New"}, true}
		}
	}
	switch {
	case o.length < 0 || math.IsNaN(o.length) || math.IsInf(o.length, 0):
		return nil, Error{fmt.Sprintf("Invalid tube length %v", o.length), []string{"New"}, true}
	case o.length > 0:
		G.length = o.length
		G.fixLength = o.fixLength
		G.nz = o.length / params.T
		if !G.fixLength {
			G.nz = math.Ceil(G.nz)
		}
	case !(o.nz > 0) || math.IsInf(o.nz, 0):
		return nil, Error{fmt.Sprintf("Invalid number of unit cells %v", o.nz), []string{"New"}, true}
	default:
		G.nz = o.nz
	}
	if o.autogen {
		G.GenerateUnitCell()
		G.GenerateStructure()
	}
	return G, nil
}

// Params returns the lattice parameters of the tube. They must not be
// modified.
func (G *Generator) Params() *Params { return G.params }

// Nz returns the number of unit cells along the tube, which is fractional
// only for fixed-length tubes.
func (G *Generator) Nz() float64 { return G.nz }

// Elements returns the symbols of the 2 basis atoms.
func (G *Generator) Elements() (string, string) { return G.elements[0], G.elements[1] }

// Length returns the target length of the tube, or 0 if none was given.
func (G *Generator) Length() float64 { return G.length }

// FixLength returns true if the tube is to be clipped to its target length.
func (G *Generator) FixLength() bool { return G.fixLength }

// UnitCell returns the unit cell, or nil if it has not been generated.
// It must not be modified.
func (G *Generator) UnitCell() *nano.Atoms { return G.unitCell }

// Structure returns the replicated structure, or nil if it has not been
// generated. It must not be modified.
func (G *Generator) Structure() *nano.Atoms { return G.structure }

// cells returns the number of unit cells actually replicated.
func (G *Generator) cells() int {
	return int(math.Ceil(G.nz))
}

// integerCells is true if nz is to be reported as an integer.
func (G *Generator) integerCells() bool {
	return !G.fixLength && G.nz == math.Trunc(G.nz)
}

func (G *Generator) cellsString() string {
	unit := "cells"
	if G.nz == 1 {
		unit = "cell"
	}
	if G.integerCells() {
		return fmt.Sprintf("%d%s", int(G.nz), unit)
	}
	return fmt.Sprintf("%.2f%s", G.nz, unit)
}

func (G *Generator) notify(stage Stage, atoms *nano.Atoms) {
	if G.observer != nil {
		G.observer(stage, G, atoms)
	}
}

// wrap brings z to at most T-WrapEpsilon by subtracting whole translation
// lengths.
func wrap(z, T float64) float64 {
	for z > T-WrapEpsilon {
		z -= T
	}
	return z
}

// GenerateUnitCell builds the 2N atoms of one unit cell, replacing any
// previous unit cell and structure.
func (G *Generator) GenerateUnitCell() {
	P := G.params
	uc := nano.NewAtoms()
	for i := 1; i <= P.N; i++ {
		fi := float64(i)
		a1 := nano.NewAtom(G.elements[0], P.Rt*math.Cos(fi*P.Psi), P.Rt*math.Sin(fi*P.Psi), wrap(fi*P.Tau, P.T))
		a1.Rezero(geom.DefaultEpsilon)
		uc.Append(a1)
		a2 := nano.NewAtom(G.elements[1], P.Rt*math.Cos(fi*P.Psi+P.Dpsi), P.Rt*math.Sin(fi*P.Psi+P.Dpsi), wrap(fi*P.Tau-P.Dtau, P.T))
		a2.Rezero(geom.DefaultEpsilon)
		uc.Append(a2)
	}
	uc.AssignUniqueIDs()
	G.unitCell = uc
	G.structure = nil
	G.notify(UnitCellDone, uc)
}

// GenerateStructure replicates the unit cell ceil(nz) times along z,
// generating the unit cell first if needed. Atom j of replica k is atom j
// of the unit cell translated by (0, 0, kT).
func (G *Generator) GenerateStructure() {
	if G.unitCell == nil {
		G.GenerateUnitCell()
	}
	st := nano.NewAtoms()
	for k := 0; k < G.cells(); k++ {
		dr := geom.NewVector(0, 0, float64(k)*G.params.T)
		for i := 0; i < G.unitCell.Len(); i++ {
			uc := G.unitCell.Atom(i)
			at := nano.NewAtom(uc.Symbol, 0, 0, 0)
			at.SetR(uc.R().Add(dr))
			st.Append(at)
		}
	}
	st.AssignUniqueIDs()
	G.structure = st
	G.notify(StructureDone, st)
}
