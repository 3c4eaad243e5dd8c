/*
 * chirality.go, part of gonano.
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
	"math"
)

// DefaultBond is the default distance between nearest neighbor atoms,
// the C-C distance in graphene, in Å.
const DefaultBond = 1.42

// Tube types.
const (
	Armchair = "armchair"
	Zigzag   = "zigzag"
	Chiral   = "chiral"
)

// CheckChirality returns an error if (n, m) are not valid chiral indices:
// both must be non-negative and not both zero.
// All the other functions in this file assume valid chiral indices, and
// may panic otherwise.
func CheckChirality(n, m int) error {
	if n < 0 || m < 0 {
		return Error{fmt.Sprintf("Invalid chirality (%d, %d): indices must be non-negative", n, m), []string{"CheckChirality"}, true}
	}
	if n == 0 && m == 0 {
		return Error{"Invalid chirality (0, 0): indices can't both be zero", []string{"CheckChirality"}, true}
	}
	return nil
}

// ChiralAngle returns the angle between the chiral vector and the first
// lattice vector, in degrees if deg is true, in radians otherwise.
func ChiralAngle(n, m int, deg bool) float64 {
	theta := math.Atan(math.Sqrt(3) * float64(m) / float64(2*n+m))
	if deg {
		return theta * 180 / math.Pi
	}
	return theta
}

// egcd is the extended euclidean algorithm. Returns gcd(a,b) and x, y
// such that a*x + b*y = gcd(a,b). a and b must be non-negative.
func egcd(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := egcd(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// Dr returns gcd(2m+n, 2n+m).
func Dr(n, m int) int {
	g, _, _ := egcd(2*m+n, 2*n+m)
	return g
}

// SymmetryN returns the number of hexagons per unit cell,
// N = 2(n²+m²+nm)/dR.
func SymmetryN(n, m int) int {
	return 2 * (n*n + m*m + n*m) / Dr(n, m)
}

// T1T2 returns the components of the translation vector,
// t1 = (2m+n)/dR and t2 = -(2n+m)/dR.
func T1T2(n, m int) (int, int) {
	dR := Dr(n, m)
	return (2*m + n) / dR, -(2*n + m) / dR
}

// SymmetryR returns the components (p, q) of the symmetry vector. They
// satisfy t1*q - t2*p = 1 and 0 < mp - nq <= N.
func SymmetryR(n, m int) (p, q int) {
	t1, t2 := T1T2(n, m)
	//t1 and -t2 are coprime, so this always has a solution.
	_, q, p = egcd(t1, -t2)
	N := SymmetryN(n, m)
	M := m*p - n*q
	//adding (t1, t2) to (p, q) keeps the first condition and adds N to M.
	r := ((M % N) + N) % N
	if r == 0 {
		r = N
	}
	k := (r - M) / N
	return p + k*t1, q + k*t2
}

// SymmetryM returns the number of translations T in one symmetry
// operation, M = mp - nq.
func SymmetryM(n, m int) int {
	p, q := SymmetryR(n, m)
	return m*p - n*q
}

// Ch returns the length of the chiral vector, the circumference of the tube.
func Ch(n, m int, bond float64) float64 {
	return bond * math.Sqrt(3) * math.Sqrt(float64(n*n+m*m+n*m))
}

// Rt returns the radius of the tube.
func Rt(n, m int, bond float64) float64 {
	return Ch(n, m, bond) / (2 * math.Pi)
}

// Dt returns the diameter of the tube.
func Dt(n, m int, bond float64) float64 {
	return 2 * Rt(n, m, bond)
}

// TranslationLength returns the length T of the unit cell along the tube
// axis.
func TranslationLength(n, m int, bond float64) float64 {
	return math.Sqrt(3) * Ch(n, m, bond) / float64(Dr(n, m))
}

// Params contains the lattice parameters of a tube. Lengths are in
// the units of the bond length, angles in radians.
type Params struct {
	n, m   int
	Bond   float64
	Dr     int
	N      int //hexagons per unit cell
	M      int
	T1, T2 int
	P, Q   int
	Theta  float64 //chiral angle
	Ch     float64
	Rt     float64
	T      float64
	Psi    float64
	Tau    float64
	Dpsi   float64
	Dtau   float64
}

// NewParams returns the lattice parameters for the tube (n, m) with
// nearest neighbor distance bond.
func NewParams(n, m int, bond float64) (*Params, error) {
	if err := CheckChirality(n, m); err != nil {
		e := err.(Error)
		e.deco = append(e.deco, "NewParams")
		return nil, e
	}
	if !(bond > 0) || math.IsInf(bond, 0) {
		return nil, Error{fmt.Sprintf("Invalid bond length %v: must be positive", bond), []string{"NewParams"}, true}
	}
	P := &Params{n: n, m: m, Bond: bond}
	P.Dr = Dr(n, m)
	P.N = SymmetryN(n, m)
	P.T1, P.T2 = T1T2(n, m)
	P.P, P.Q = SymmetryR(n, m)
	P.M = m*P.P - n*P.Q
	P.Theta = ChiralAngle(n, m, false)
	P.Ch = Ch(n, m, bond)
	P.Rt = P.Ch / (2 * math.Pi)
	P.T = math.Sqrt(3) * P.Ch / float64(P.Dr)
	P.Psi = 2 * math.Pi / float64(P.N)
	P.Tau = float64(P.M) * P.T / float64(P.N)
	P.Dpsi = bond * math.Cos(math.Pi/6-P.Theta) / P.Rt
	P.Dtau = bond * math.Sin(math.Pi/6-P.Theta)
	return P, nil
}

// Chirality returns the chiral indices (n, m).
func (P *Params) Chirality() (int, int) { return P.n, P.m }

// Dt returns the diameter of the tube.
func (P *Params) Dt() float64 { return 2 * P.Rt }

// Type returns Armchair, Zigzag or Chiral.
func (P *Params) Type() string {
	switch {
	case P.n == P.m:
		return Armchair
	case P.n == 0 || P.m == 0:
		return Zigzag
	default:
		return Chiral
	}
}

// Metallic returns true if the tube is metallic, false if it is a
// semiconductor, in the zone-folding approximation.
func (P *Params) Metallic() bool {
	return (P.n-P.m)%3 == 0
}

// UnitCellAtoms returns the number of atoms in one unit cell, 2N.
func (P *Params) UnitCellAtoms() int {
	return 2 * P.N
}

func (P *Params) String() string {
	return fmt.Sprintf("(%d, %d) %s tube: dt=%.4f T=%.4f N=%d M=%d theta=%.2f deg", P.n, P.m, P.Type(), P.Dt(), P.T, P.N, P.M, P.Theta*180/math.Pi)
}

// Error is the error type of the swnt package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

// Error returns a string with an error message.
func (err Error) Error() string { return err.message }

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
