/*
 * atomicdata.go, part of gonano.
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
	"strings"
)

// Element symbols, indexed by atomic number. Only the first 4 periods,
// which cover the elements used for nanotubes and their dopants.
var zSymbol = []string{"",
	"H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn", "Ga", "Ge", "As", "Se", "Br", "Kr",
}

// A map for assigning mass to elements.
var symbolMass = map[string]float64{
	"H":  1.008,
	"He": 4.0026,
	"Li": 6.94,
	"Be": 9.012,
	"B":  10.81,
	"C":  12.011,
	"N":  14.007,
	"O":  15.999,
	"F":  18.998,
	"Ne": 20.180,
	"Na": 22.990,
	"Mg": 24.305,
	"Al": 26.982,
	"Si": 28.085,
	"P":  30.974,
	"S":  32.06,
	"Cl": 35.45,
	"Ar": 39.948,
	"K":  39.098,
	"Ca": 40.078,
	"Sc": 44.956,
	"Ti": 47.867,
	"V":  50.942,
	"Cr": 51.996,
	"Mn": 54.938,
	"Fe": 55.845,
	"Co": 58.933,
	"Ni": 58.693,
	"Cu": 63.546,
	"Zn": 65.38,
	"Ga": 69.723,
	"Ge": 72.630,
	"As": 74.922,
	"Se": 78.971,
	"Br": 79.904,
	"Kr": 83.798,
}

// A map for assigning covalent radii to elements
// Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
// Note that just the elements likely to be in a tube are present
var symbolCovrad = map[string]float64{
	"H":  0.31,
	"B":  0.84,
	"C":  0.73, //sp2
	"N":  0.71,
	"O":  0.66,
	"F":  0.57,
	"Al": 1.21,
	"Si": 1.11,
	"P":  1.07,
	"S":  1.05,
	"Ga": 1.22,
	"Ge": 1.20,
	"Mo": 1.54,
	"W":  1.62,
}

// SymbolFromZ returns the element symbol for the atomic number z.
func SymbolFromZ(z int) (string, error) {
	if z <= 0 || z >= len(zSymbol) {
		return "", Error{message: fmt.Sprintf("No element known with atomic number %d", z), deco: []string{"SymbolFromZ"}, critical: true}
	}
	return zSymbol[z], nil
}

// ZFromSymbol returns the atomic number for the element symbol s.
// The case of s is normalized, so "c", "C" and " C " are the same.
func ZFromSymbol(s string) (int, error) {
	s = NormalizeSymbol(s)
	for z, v := range zSymbol {
		if z > 0 && v == s {
			return z, nil
		}
	}
	return 0, Error{message: fmt.Sprintf("Unknown element symbol %q", s), deco: []string{"ZFromSymbol"}, critical: true}
}

// NormalizeSymbol returns s with the first letter upper case and the
// rest lower case, without surrounding spaces.
func NormalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// SymbolMass returns the atomic mass for the element symbol s, or 0 if it
// is not known.
func SymbolMass(s string) float64 {
	return symbolMass[NormalizeSymbol(s)]
}
