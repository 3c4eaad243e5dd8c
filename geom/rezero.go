/*
 * rezero.go, part of gonano.
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

import "math"

// DefaultEpsilon is the tolerance used to rezero points and vectors.
const DefaultEpsilon = 1.0e-10

// MachineEpsilon is the difference between 1 and the next float64.
const MachineEpsilon = 2.220446049250313e-16

// ArrayEpsilon is the default tolerance of RezeroArray.
const ArrayEpsilon = 5 * MachineEpsilon

// RezeroArray sets every element of a with absolute value less than or
// equal to epsilon to exactly zero, and returns a. A non-positive epsilon
// means ArrayEpsilon.
func RezeroArray(a []float64, epsilon float64) []float64 {
	rezero(a, epsilon, ArrayEpsilon)
	return a
}

func rezero(a []float64, epsilon, def float64) {
	if epsilon <= 0 {
		epsilon = def
	}
	for i, v := range a {
		if math.Abs(v) <= epsilon {
			a[i] = 0
		}
	}
}
