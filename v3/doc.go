/*
 * doc.go, part of gonano.
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

/*
Package v3 implements a Matrix type representing a row-major Nx3 matrix.
goNano uses it for bulk operations on the cartesian coordinates of a set
of atoms (rotations, centering), where working point by point would be
wasteful. It is based on gonum's Dense type, with the additional restriction
of a fixed number of columns.

Within the package a "vector" is a row of the matrix, i.e. the cartesian
coordinates of one point in space.
*/
package v3
