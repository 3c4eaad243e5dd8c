/*
 * graph.go, part of gonano.
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

// Package bondgraph exposes the bonds of a set of atoms as an undirected,
// weighted gonum graph.
package bondgraph

import (
	"sort"

	nano "github.com/rmera/gonano"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the graph. Its ID is the position of the atom in
// the set it was taken from.
type Atom struct {
	*nano.Atom
	id int64
}

func (A *Atom) ID() int64 { return A.id }

// Bond is an edge of the graph, weighted by the bond length.
type Bond struct {
	*nano.Bond
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node { return B.At1 }

func (B *Bond) To() graph.Node { return B.At2 }

// ReversedEdge returns a new Bond going the other way. The nano.Bond
// is shared.
func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

func (B *Bond) Weight() float64 { return B.Dist }

// Atoms implements graph.Nodes.
type Atoms struct {
	atoms []*Atom
	curr  int
}

func newAtoms(ats []*Atom) *Atoms {
	return &Atoms{atoms: ats, curr: -1}
}

// Len returns the number of atoms left in the iteration.
func (A *Atoms) Len() int {
	if A.curr >= len(A.atoms) {
		return 0
	}
	return len(A.atoms) - A.curr - 1
}

func (A *Atoms) Reset() { A.curr = -1 }

func (A *Atoms) Next() bool {
	if A.curr >= len(A.atoms)-1 {
		A.curr = len(A.atoms)
		return false
	}
	A.curr++
	return true
}

func (A *Atoms) Node() graph.Node {
	if A.curr < 0 || A.curr >= len(A.atoms) {
		return nil
	}
	return A.atoms[A.curr]
}

// Topology implements the gonum graph.Undirected and
// graph.WeightedUndirected interfaces.
type Topology struct {
	atoms []*Atom
	adj   []map[int64]*Bond
}

// New builds a Topology from the bonds of the atoms in ats, as assigned
// by nano.AssignBonds. Bonds to atoms not in ats are ignored.
func New(ats nano.Atomer) *Topology {
	T := &Topology{atoms: make([]*Atom, ats.Len()), adj: make([]map[int64]*Bond, ats.Len())}
	pos := make(map[*nano.Atom]int64, ats.Len())
	for i := 0; i < ats.Len(); i++ {
		at := ats.Atom(i)
		T.atoms[i] = &Atom{Atom: at, id: int64(i)}
		T.adj[i] = make(map[int64]*Bond)
		pos[at] = int64(i)
	}
	for i, A := range T.atoms {
		for _, b := range A.Bonds {
			j, ok := pos[b.Cross(A.Atom)]
			if !ok || j <= int64(i) {
				continue
			}
			B := &Bond{Bond: b, At1: A, At2: T.atoms[j]}
			T.adj[i][j] = B
			T.adj[j][int64(i)] = B
		}
	}
	return T
}

func (T *Topology) valid(id int64) bool {
	return id >= 0 && id < int64(len(T.atoms))
}

// Node returns the atom with the given ID, or nil.
func (T *Topology) Node(id int64) graph.Node {
	if !T.valid(id) {
		return nil
	}
	return T.atoms[id]
}

// Nodes returns all the atoms.
func (T *Topology) Nodes() graph.Nodes {
	return newAtoms(T.atoms)
}

// From returns the atoms bonded to the atom with the given ID, sorted
// by ID.
func (T *Topology) From(id int64) graph.Nodes {
	if !T.valid(id) {
		return newAtoms(nil)
	}
	ret := make([]*Atom, 0, len(T.adj[id]))
	for j := range T.adj[id] {
		ret = append(ret, T.atoms[j])
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].id < ret[j].id })
	return newAtoms(ret)
}

func (T *Topology) HasEdgeBetween(xid, yid int64) bool {
	return T.bond(xid, yid) != nil
}

func (T *Topology) bond(xid, yid int64) *Bond {
	if !T.valid(xid) || !T.valid(yid) {
		return nil
	}
	return T.adj[xid][yid]
}

// WeightedEdge returns the bond going from uid to vid, or nil.
func (T *Topology) WeightedEdge(uid, vid int64) graph.WeightedEdge {
	b := T.bond(uid, vid)
	if b == nil {
		return nil
	}
	if b.At1.id != uid {
		return b.ReversedEdge().(*Bond)
	}
	return b
}

func (T *Topology) WeightedEdgeBetween(xid, yid int64) graph.WeightedEdge {
	return T.WeightedEdge(xid, yid)
}

func (T *Topology) Edge(uid, vid int64) graph.Edge {
	//avoids returning a non-nil interface with a nil value.
	if e := T.WeightedEdge(uid, vid); e != nil {
		return e
	}
	return nil
}

func (T *Topology) EdgeBetween(xid, yid int64) graph.Edge {
	return T.Edge(xid, yid)
}

// Weight returns the bond length between 2 atoms. The weight of an atom
// with itself is 0.
func (T *Topology) Weight(xid, yid int64) (w float64, ok bool) {
	if xid == yid && T.valid(xid) {
		return 0, true
	}
	if b := T.bond(xid, yid); b != nil {
		return b.Dist, true
	}
	return 0, false
}

// Components returns the connected components of the topology, as
// slices of atoms sorted by ID. The components are sorted by their
// first atom.
func (T *Topology) Components() [][]*Atom {
	cc := topo.ConnectedComponents(T)
	ret := make([][]*Atom, 0, len(cc))
	for _, c := range cc {
		ats := make([]*Atom, 0, len(c))
		for _, n := range c {
			ats = append(ats, n.(*Atom))
		}
		sort.Slice(ats, func(i, j int) bool { return ats[i].id < ats[j].id })
		ret = append(ret, ats)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0].id < ret[j][0].id })
	return ret
}
