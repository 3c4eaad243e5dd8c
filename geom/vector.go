/*
 * vector.go, part of gonano.
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

package geom

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Vector is a displacement in 2D or 3D space, bound to an origin point p0
// and a terminal point p. Every mutator keeps v = p - p0.
type Vector struct {
	v  []float64
	p  *Point
	p0 *Point
}

// NewVector returns a vector with the given components, bound to the
// origin. Without components, it returns the zero vector of 3D space.
func NewVector(comps ...float64) *Vector {
	if len(comps) == 0 {
		return ZeroVector(DefaultND)
	}
	return NewBoundVector(comps, nil)
}

// ZeroVector returns the zero vector of nd-dimensional space.
// nd values other than 2 or 3 fall back to 3.
func ZeroVector(nd int) *Vector {
	nd = validND(nd)
	return &Vector{v: make([]float64, nd), p: ZeroPoint(nd), p0: ZeroPoint(nd)}
}

// NewBoundVector returns a vector with components v starting at a copy of p0,
// with its terminal point set to p0+v. A nil p0 means the origin.
func NewBoundVector(v []float64, p0 *Point) *Vector {
	if len(v) == 0 {
		return ZeroVector(DefaultND)
	}
	ret := &Vector{v: make([]float64, len(v))}
	copy(ret.v, v)
	if p0 == nil {
		ret.p0 = ZeroPoint(len(v))
	} else {
		mustMatch(len(v), p0.Nd())
		ret.p0 = p0.Copy()
	}
	ret.p = ret.p0.Copy()
	ret.syncP()
	return ret
}

// VectorBetween returns the vector going from p0 to p, bound to copies of
// both points.
func VectorBetween(p, p0 *Point) *Vector {
	mustMatch(p.Nd(), p0.Nd())
	ret := &Vector{v: make([]float64, p.Nd()), p: p.Copy(), p0: p0.Copy()}
	ret.syncV()
	return ret
}

// VectorFrom builds a vector from v, with the same rules as PointFrom.
// A *Vector is aliased if copy is false, deep-copied otherwise. The
// result is bound to the origin unless it comes from a *Vector.
func VectorFrom(v any, copy bool) *Vector {
	if vec, ok := v.(*Vector); ok && vec != nil {
		if !copy {
			return vec
		}
		return vec.Copy()
	}
	c, alias, ok := components(v)
	if !ok {
		return ZeroVector(DefaultND)
	}
	if alias && !copy {
		ret := &Vector{v: c, p0: ZeroPoint(len(c))}
		ret.p = ret.p0.Copy()
		ret.syncP()
		return ret
	}
	return NewBoundVector(c, nil)
}

// ParseVector is like VectorFrom, but returns an error for inputs that
// VectorFrom would replace by the zero vector.
func ParseVector(v any) (*Vector, error) {
	if vec, ok := v.(*Vector); ok && vec != nil {
		return vec.Copy(), nil
	}
	c, _, ok := components(v)
	if !ok {
		return nil, Error{fmt.Sprintf("Can't make a vector from %T", v), []string{"ParseVector"}, true}
	}
	return NewBoundVector(c, nil), nil
}

// p = p0 + v
func (V *Vector) syncP() {
	floats.AddTo(V.p.c, V.p0.c, V.v)
}

// v = p - p0
func (V *Vector) syncV() {
	floats.SubTo(V.v, V.p.c, V.p0.c)
}

// Nd returns the dimensionality of the vector.
func (V *Vector) Nd() int {
	return len(V.v)
}

// At returns the ith component. Panics if out of range.
func (V *Vector) At(i int) float64 {
	return V.v[i]
}

// Set sets the ith component to val and moves the terminal point
// accordingly. The origin point does not change.
func (V *Vector) Set(i int, val float64) {
	V.v[i] = val
	V.p.c[i] = V.p0.c[i] + val
}

func (V *Vector) X() float64 { return V.v[X] }
func (V *Vector) Y() float64 { return V.v[Y] }
func (V *Vector) Z() float64 { return V.v[Z] }

func (V *Vector) SetX(val float64) { V.Set(int(X), val) }
func (V *Vector) SetY(val float64) { V.Set(int(Y), val) }
func (V *Vector) SetZ(val float64) { V.Set(int(Z), val) }

// Components returns a copy of the components of the vector.
func (V *Vector) Components() []float64 {
	ret := make([]float64, len(V.v))
	copy(ret, V.v)
	return ret
}

// P returns a copy of the terminal point of the vector.
func (V *Vector) P() *Point {
	return V.p.Copy()
}

// P0 returns a copy of the origin point of the vector.
func (V *Vector) P0() *Point {
	return V.p0.Copy()
}

// SetP replaces the terminal point of the vector and recomputes the
// components.
func (V *Vector) SetP(p *Point) {
	mustMatch(V.Nd(), p.Nd())
	copy(V.p.c, p.c)
	V.syncV()
}

// SetP0 replaces the origin point of the vector and recomputes the
// components. The terminal point does not change.
func (V *Vector) SetP0(p0 *Point) {
	mustMatch(V.Nd(), p0.Nd())
	copy(V.p0.c, p0.c)
	V.syncV()
}

// Copy returns a deep copy of the vector, points included.
func (V *Vector) Copy() *Vector {
	ret := &Vector{v: V.Components(), p: V.p.Copy(), p0: V.p0.Copy()}
	return ret
}

// Rezero sets every component with absolute value less than or equal to
// epsilon to exactly zero, and moves the terminal point accordingly.
// A non-positive epsilon means DefaultEpsilon.
func (V *Vector) Rezero(epsilon float64) {
	rezero(V.v, epsilon, DefaultEpsilon)
	V.syncP()
}

// Norm returns the euclidean length of the vector.
func (V *Vector) Norm() float64 {
	return floats.Norm(V.v, 2)
}

// Dot returns the dot product of V and W.
func (V *Vector) Dot(W *Vector) float64 {
	mustMatch(V.Nd(), W.Nd())
	return floats.Dot(V.v, W.v)
}

// Scale multiplies every component by f, in place, moving the terminal point.
func (V *Vector) Scale(f float64) {
	floats.Scale(f, V.v)
	V.syncP()
}

func (V *Vector) String() string {
	return fmt.Sprintf("Vector(%v, p0=%v, p=%v)", V.v, V.p0.c, V.p.c)
}
