/*
 * projection.go, part of gonano.
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

// Package nanoplot produces plots of nanotube structures, using gonum/plot.
package nanoplot

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	nano "github.com/rmera/gonano"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Error is the error type of the nanoplot package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

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

func basicProjectionPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Arc length (Å)"
	p.Y.Label.Text = "z (Å)"
	p.Add(plotter.NewGrid())
	return p
}

// Unroll maps each atom of a tube aligned with the z axis onto the
// (arc length, z) plane, using the mean distance of the atoms to the z axis
// as radius. The atoms are returned grouped by element, in order of first
// appearance of each element.
func Unroll(atoms *nano.Atoms) (map[string]plotter.XYs, []string) {
	symbols := atoms.Symbols()
	ret := make(map[string]plotter.XYs, len(symbols))
	if atoms.Len() == 0 {
		return ret, symbols
	}
	var rt float64
	for i := 0; i < atoms.Len(); i++ {
		at := atoms.Atom(i)
		rt += math.Hypot(at.X(), at.Y())
	}
	rt /= float64(atoms.Len())
	for i := 0; i < atoms.Len(); i++ {
		at := atoms.Atom(i)
		ret[at.Symbol] = append(ret[at.Symbol], plotter.XY{X: rt * math.Atan2(at.Y(), at.X()), Y: at.Z()})
	}
	return ret, symbols
}

// Projection plots the tube in atoms, which must be aligned with the z axis,
// unrolled onto the (arc length, z) plane. Each element gets its own
// color and glyph. The plot is saved as plotname.png.
func Projection(atoms *nano.Atoms, title, plotname string) error {
	if atoms == nil || atoms.Len() == 0 {
		return Error{"Projection: no atoms to plot", []string{"Projection"}, true}
	}
	p := basicProjectionPlot(title)
	data, symbols := Unroll(atoms)
	for key, sym := range symbols {
		s, err := plotter.NewScatter(data[sym])
		if err != nil {
			return Error{err.Error(), []string{"plotter.NewScatter", "Projection"}, true}
		}
		r, g, b := colors(key, len(symbols))
		s.GlyphStyle.Color = color.RGBA{R: r, B: b, G: g, A: 255}
		s.GlyphStyle.Shape = getShape(key)
		s.GlyphStyle.Radius = vg.Points(2)
		p.Add(s)
		p.Legend.Add(sym, s)
	}
	filename := plotname
	if !strings.HasSuffix(filename, ".png") {
		filename = fmt.Sprintf("%s.png", plotname)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return Error{err.Error(), []string{"Save", "Projection"}, true}
	}
	return nil
}

func getShape(key int) draw.GlyphDrawer {
	switch key % 4 {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.TriangleGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

// takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	conversion := maxcolor * v
	if s == 0.0 {
		return uint8(conversion), uint8(conversion), uint8(conversion)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * conversion), uint8(g * conversion), uint8(b * conversion)
}

// colors spreads steps hues over the color wheel, skipping the yellows,
// which are hard to see on white.
func colors(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	return iHVS2RGB(h, 1, 1)
}
