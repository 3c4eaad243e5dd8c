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
Package nano is the main package of the goNano library. It provides the atom
and atom-collection structures shared by the nanostructure generators, and
facilities for writing the generated structures to files used in
computational chemistry.

	**goNano Capabilities**

	Generates single-walled nanotubes of any chirality (package swnt),
	either as a number of unit cells or clipped to a given length.

	Writes XYZ, PDB and LAMMPS data files, optionally compressed with
	z-standard, and reads XYZ files.

	Rigid rotations, translations and center-of-mass centering of atom
	collections, and clipping against an axis-aligned box.

	Assigns bonds based on a simple distance criterion.

	Draws "unrolled" projections of tubes (package nanoplot).

Points and vectors (package geom) carry the coordinates of single atoms.
Bulk operations go through the Nx3 v3.Matrix type, based on gonum.
*/
package nano
