/*
 * bonds.go, part of gonano.
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
	"sort"

	"gonum.org/v1/gonum/floats"
)

// constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

// Maximum number of bonds for the elements of a tube wall. Elements not
// here get no limit.
var symbolMaxBonds = map[string]int{
	"B": 3,
	"C": 3,
	"N": 3,
}

// Bond joins 2 atoms of a collection. At1 always comes before At2 in the
// collection.
type Bond struct {
	Index int
	At1   *Atom
	At2   *Atom
	Dist  float64
}

// Cross returns the atom on the other end of the bond from origin.
func (B *Bond) Cross(origin *Atom) *Atom {
	if origin == B.At1 {
		return B.At2
	}
	if origin == B.At2 {
		return B.At1
	}
	panic("Trying to cross a bond: The origin atom given is not present in the bond!")
}

func removeFromSlice(bonds []*Bond, b *Bond) []*Bond {
	ret := make([]*Bond, 0, len(bonds))
	for _, v := range bonds {
		if v != b {
			ret = append(ret, v)
		}
	}
	return ret
}

// AssignBonds assigns bonds to the atoms based on a simple distance
// criterium, similar to that described in DOI:10.1186/1758-2946-3-33.
// Previous bonds are discarded. It returns all the bonds assigned, with
// consecutive indexes starting from 0.
func AssignBonds(atoms Atomer) ([]*Bond, error) {
	if atoms == nil {
		return nil, Error{message: "nil atoms given", deco: []string{"AssignBonds"}, critical: true}
	}
	tot := atoms.Len()
	maxcov := 0.0
	for i := 0; i < tot; i++ {
		at := atoms.Atom(i)
		at.Bonds = nil
		cov := symbolCovrad[at.Symbol]
		if cov == 0 {
			return nil, Error{message: fmt.Sprintf("Couldn't find the covalent radius for %s %d", at.Symbol, i), deco: []string{"AssignBonds"}, critical: true}
		}
		if cov > maxcov {
			maxcov = cov
		}
	}
	//Tubes are long, so we sort along z and only compare atoms that can
	//still be close enough in that direction.
	order := make([]int, tot)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return atoms.Atom(order[i]).Z() < atoms.Atom(order[j]).Z() })
	cutoff := 2*maxcov + bondtol
	bonds := make([]*Bond, 0, 2*tot)
	diff := make([]float64, 3)
	for ii, i := range order {
		at1 := atoms.Atom(i)
		r1 := at1.r.Coords()
		for _, j := range order[ii+1:] {
			at2 := atoms.Atom(j)
			if at2.Z()-at1.Z() > cutoff {
				break
			}
			floats.SubTo(diff, at2.r.Coords(), r1)
			d := floats.Norm(diff, 2)
			if d < symbolCovrad[at1.Symbol]+symbolCovrad[at2.Symbol]+bondtol && d > tooclose {
				b := &Bond{Dist: d, At1: at1, At2: at2}
				if j < i {
					b.At1, b.At2 = at2, at1
				}
				at1.Bonds = append(at1.Bonds, b)
				at2.Bonds = append(at2.Bonds, b)
				bonds = append(bonds, b)
			}
		}
	}
	//Now we check that no atom has too many bonds.
	removed := make(map[*Bond]bool)
	for i := 0; i < tot; i++ {
		at := atoms.Atom(i)
		max := symbolMaxBonds[at.Symbol]
		if max == 0 {
			continue
		}
		sort.Slice(at.Bonds, func(i, j int) bool { return at.Bonds[i].Dist < at.Bonds[j].Dist })
		for len(at.Bonds) > max {
			b := at.Bonds[len(at.Bonds)-1] //we remove the longest bond
			b.At1.Bonds = removeFromSlice(b.At1.Bonds, b)
			b.At2.Bonds = removeFromSlice(b.At2.Bonds, b)
			removed[b] = true
		}
	}
	ret := make([]*Bond, 0, len(bonds))
	for _, b := range bonds {
		if !removed[b] {
			ret = append(ret, b)
		}
	}
	pos := make(map[*Atom]int, tot)
	for i := 0; i < tot; i++ {
		pos[atoms.Atom(i)] = i
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].At1 != ret[j].At1 {
			return pos[ret[i].At1] < pos[ret[j].At1]
		}
		return pos[ret[i].At2] < pos[ret[j].At2]
	})
	for i, b := range ret {
		b.Index = i
	}
	return ret, nil
}
