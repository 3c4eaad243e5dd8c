/*
 * point.go, part of gonano.
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

// Package geom contains the geometric primitives of goNano: points and
// vectors in 2D or 3D space, an axis-aligned box used for clipping, and
// rotation matrices about the principal axes.
//
// Many functions here panic instead of returning errors. They are
// fundamental functions: if something goes wrong (dimension mismatch,
// index out of range) the program is most likely wrong and should crash.
package geom

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Axis names a principal axis. The value is the index of the
// corresponding component.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis returns the Axis named by s ("x", "y" or "z", any case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return Z, Error{fmt.Sprintf("Unknown axis %q", s), []string{"ParseAxis"}, true}
}

// DefaultND is the dimensionality used when none can be determined.
const DefaultND = 3

// Point is a point in 2D or 3D space. The dimensionality is fixed at
// construction.
type Point struct {
	c []float64
}

// NewPoint returns a point with the given coordinates, its dimensionality
// being the number of coordinates. Without coordinates, it returns the origin
// of 3D space.
func NewPoint(coords ...float64) *Point {
	if len(coords) == 0 {
		return ZeroPoint(DefaultND)
	}
	c := make([]float64, len(coords))
	copy(c, coords)
	return &Point{c}
}

// ZeroPoint returns the origin of nd-dimensional space.
// nd values other than 2 or 3 fall back to 3.
func ZeroPoint(nd int) *Point {
	return &Point{make([]float64, validND(nd))}
}

func validND(nd int) int {
	if nd != 2 && nd != 3 {
		return DefaultND
	}
	return nd
}

// PointFrom builds a point from v. It never fails. The accepted inputs are:
//
//	*Point: returned as is if copy is false, copied otherwise.
//	[]float64: aliased if copy is false, copied otherwise.
//	Point, *Vector: always copied. For a *Vector the components are used.
//	[]float32, []int: converted to float64.
//	[]*float64: nil elements become 0.
//
// Anything else, including nil, gives the origin of 3D space.
// Use ParsePoint to get an error instead.
func PointFrom(v any, copy bool) *Point {
	c, alias, ok := components(v)
	if !ok {
		return ZeroPoint(DefaultND)
	}
	if p, isp := v.(*Point); isp && !copy {
		return p
	}
	if alias && !copy {
		return &Point{c}
	}
	return NewPoint(c...)
}

// ParsePoint is like PointFrom, but returns an error for inputs that PointFrom
// would replace by the origin.
func ParsePoint(v any) (*Point, error) {
	c, _, ok := components(v)
	if !ok {
		return nil, Error{fmt.Sprintf("Can't make a point from %T", v), []string{"ParsePoint"}, true}
	}
	return NewPoint(c...), nil
}

// components extracts a coordinate slice from the accepted inputs of PointFrom
// and VectorFrom. alias is true if the returned slice is v's own storage.
func components(v any) (c []float64, alias bool, ok bool) {
	switch t := v.(type) {
	case *Point:
		if t == nil {
			return nil, false, false
		}
		return t.c, true, true
	case Point:
		return append([]float64(nil), t.c...), false, len(t.c) > 0
	case *Vector:
		if t == nil {
			return nil, false, false
		}
		return t.Components(), false, true
	case []float64:
		return t, true, len(t) > 0
	case []float32:
		c = make([]float64, len(t))
		for i, f := range t {
			c[i] = float64(f)
		}
		return c, false, len(t) > 0
	case []int:
		c = make([]float64, len(t))
		for i, f := range t {
			c[i] = float64(f)
		}
		return c, false, len(t) > 0
	case []*float64:
		c = make([]float64, len(t))
		for i, f := range t {
			if f != nil {
				c[i] = *f
			}
		}
		return c, false, len(t) > 0
	}
	return nil, false, false
}

// Nd returns the dimensionality of the point.
func (P *Point) Nd() int {
	return len(P.c)
}

// At returns the ith coordinate. Panics if out of range.
func (P *Point) At(i int) float64 {
	return P.c[i]
}

// Set sets the ith coordinate to v. Panics if out of range.
func (P *Point) Set(i int, v float64) {
	P.c[i] = v
}

func (P *Point) X() float64 { return P.c[X] }
func (P *Point) Y() float64 { return P.c[Y] }

// Z panics for 2D points.
func (P *Point) Z() float64 { return P.c[Z] }

func (P *Point) SetX(v float64) { P.Set(int(X), v) }
func (P *Point) SetY(v float64) { P.Set(int(Y), v) }
func (P *Point) SetZ(v float64) { P.Set(int(Z), v) }

// Coords returns a copy of the coordinates of the point.
func (P *Point) Coords() []float64 {
	ret := make([]float64, len(P.c))
	copy(ret, P.c)
	return ret
}

// Copy returns a deep copy of the point.
func (P *Point) Copy() *Point {
	return NewPoint(P.c...)
}

// Rezero sets every coordinate with absolute value less than or equal to
// epsilon to exactly zero. A non-positive epsilon means DefaultEpsilon.
func (P *Point) Rezero(epsilon float64) {
	rezero(P.c, epsilon, DefaultEpsilon)
}

// Add returns a new point, displaced from P by v.
func (P *Point) Add(v *Vector) *Point {
	ret := P.Copy()
	ret.Translate(v)
	return ret
}

// Translate displaces P by v, in place.
func (P *Point) Translate(v *Vector) {
	mustMatch(P.Nd(), v.Nd())
	floats.Add(P.c, v.v)
}

// Sub returns the vector going from p0 to P, bound to copies of both points.
func (P *Point) Sub(p0 *Point) *Vector {
	return VectorBetween(P, p0)
}

// Equal returns true if every coordinate of P and Q differs by at most tol.
// Points of different dimensionality are never equal.
func (P *Point) Equal(Q *Point, tol float64) bool {
	if P.Nd() != Q.Nd() {
		return false
	}
	return floats.EqualApprox(P.c, Q.c, tol)
}

func (P *Point) String() string {
	return fmt.Sprintf("Point(%v, nd=%d)", P.c, len(P.c))
}

func mustMatch(a, b int) {
	if a != b {
		panic(fmt.Sprintf("goNano/geom: dimension mismatch (%d vs %d)", a, b))
	}
}

//Errors

// Error is the error type for the geom package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string {
	return err.message
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Critical returns whether the error is critical or it can be ignored
func (err Error) Critical() bool { return err.critical }
