/*
 * cuboid.go, part of gonano.
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
	"math"
)

// Cuboid is an axis-aligned box given by its minimum and maximum corners.
// Infinite coordinates in the corners leave the box unbounded on that side.
type Cuboid struct {
	pmin, pmax *Point
	center     *Point
	limits     [][2]float64
	volume     float64
}

// NewCuboid returns the box with corners pmin and pmax (which are copied).
// Panics if the corners have different dimensionality.
func NewCuboid(pmin, pmax *Point) *Cuboid {
	mustMatch(pmin.Nd(), pmax.Nd())
	C := &Cuboid{pmin: pmin.Copy(), pmax: pmax.Copy()}
	C.UpdateRegionLimits()
	return C
}

// UpdateRegionLimits recomputes the per-axis limits, the center and the
// volume of the box from its corners. Swapped corner coordinates are put
// back in order.
func (C *Cuboid) UpdateRegionLimits() {
	nd := C.pmin.Nd()
	C.limits = make([][2]float64, nd)
	C.center = ZeroPoint(nd)
	C.volume = 1
	for i := 0; i < nd; i++ {
		lo, hi := C.pmin.c[i], C.pmax.c[i]
		if lo > hi {
			lo, hi = hi, lo
			C.pmin.c[i], C.pmax.c[i] = lo, hi
		}
		C.limits[i] = [2]float64{lo, hi}
		C.center.c[i] = midpoint(lo, hi)
		C.volume *= hi - lo
	}
}

// midpoint returns 0 for a doubly unbounded axis instead of NaN.
func midpoint(lo, hi float64) float64 {
	if math.IsInf(lo, -1) && math.IsInf(hi, 1) {
		return 0
	}
	return lo + (hi-lo)/2
}

// Pmin returns a copy of the minimum corner.
func (C *Cuboid) Pmin() *Point { return C.pmin.Copy() }

// Pmax returns a copy of the maximum corner.
func (C *Cuboid) Pmax() *Point { return C.pmax.Copy() }

// Center returns a copy of the center of the box.
func (C *Cuboid) Center() *Point { return C.center.Copy() }

// Volume returns the volume (area, in 2D) of the box. It is +Inf for
// unbounded boxes.
func (C *Cuboid) Volume() float64 { return C.volume }

// Limits returns the minimum and maximum of the box along axis a.
func (C *Cuboid) Limits(a Axis) (float64, float64) {
	l := C.limits[a]
	return l[0], l[1]
}

// Contains returns true if p is inside the box or on its surface.
// Only the axes shared by p and the box are compared.
func (C *Cuboid) Contains(p *Point) bool {
	nd := p.Nd()
	if len(C.limits) < nd {
		nd = len(C.limits)
	}
	for i := 0; i < nd; i++ {
		v := p.c[i]
		if v < C.limits[i][0] || v > C.limits[i][1] {
			return false
		}
	}
	return true
}

func (C *Cuboid) String() string {
	return fmt.Sprintf("Cuboid(pmin=%v, pmax=%v)", C.pmin.c, C.pmax.c)
}
