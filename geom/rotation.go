/*
 * rotation.go, part of gonano.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

// Deg2Rad converts degrees to radians.
const Deg2Rad = math.Pi / 180

// Rad2Deg converts radians to degrees.
const Rad2Deg = 180 / math.Pi

// RotationMatrix returns the 3x3 matrix for a right-handed rotation by angle
// around the given principal axis. The angle is taken in degrees if deg2rad
// is true, in radians otherwise. The matrix acts on column vectors
// (r' = R r).
func RotationMatrix(angle float64, axis Axis, deg2rad bool) *mat.Dense {
	if deg2rad {
		angle *= Deg2Rad
	}
	c := math.Cos(angle)
	s := math.Sin(angle)
	var operator []float64
	switch axis {
	case X:
		operator = []float64{
			1, 0, 0,
			0, c, -s,
			0, s, c}
	case Y:
		operator = []float64{
			c, 0, s,
			0, 1, 0,
			-s, 0, c}
	case Z:
		operator = []float64{
			c, -s, 0,
			s, c, 0,
			0, 0, 1}
	default:
		panic("goNano/geom: RotationMatrix: invalid axis " + axis.String())
	}
	RezeroArray(operator, 0)
	return mat.NewDense(3, 3, operator)
}

// Rotate returns a new point, P rotated by the 3x3 matrix R.
// Panics if P is not 3D.
func (P *Point) Rotate(R mat.Matrix) *Point {
	mustMatch(P.Nd(), 3)
	in := mat.NewVecDense(3, P.Coords())
	out := mat.NewVecDense(3, nil)
	out.MulVec(R, in)
	return NewPoint(out.RawVector().Data...)
}
