/*
 * save.go, part of gonano.
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

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/geom"
)

// SaveOptions contains the options for Prepare and SaveData.
type SaveOptions struct {
	fname    string
	outpath  string
	format   string
	comment  string
	angle    float64
	rotate   bool
	axis     geom.Axis
	deg2rad  bool
	centerCM bool
}

// DefaultSaveOptions returns options for a centered, unrotated tube,
// written in the default format with the default file name.
func DefaultSaveOptions() *SaveOptions {
	return &SaveOptions{axis: geom.Z, deg2rad: true, centerCM: true}
}

// Fname sets the output file name, if given. An empty name means the
// default one. Returns the current value.
func (O *SaveOptions) Fname(f ...string) string {
	if len(f) > 0 {
		O.fname = f[0]
	}
	return O.fname
}

// Outpath sets the output directory, if given. Returns the current value.
func (O *SaveOptions) Outpath(p ...string) string {
	if len(p) > 0 {
		O.outpath = p[0]
	}
	return O.outpath
}

// Format sets the output format, if given. An empty format is inferred
// from the file name. Returns the current value.
func (O *SaveOptions) Format(f ...string) string {
	if len(f) > 0 {
		O.format = f[0]
	}
	return O.format
}

// Comment sets the comment line of the output file, if given. Returns
// the current value.
func (O *SaveOptions) Comment(c ...string) string {
	if len(c) > 0 {
		O.comment = c[0]
	}
	return O.comment
}

// Rotation sets the rotation angle, if given, which enables the
// rotation. Returns the current angle.
func (O *SaveOptions) Rotation(angle ...float64) float64 {
	if len(angle) > 0 {
		O.angle = angle[0]
		O.rotate = true
	}
	return O.angle
}

// NoRotation disables the rotation.
func (O *SaveOptions) NoRotation() {
	O.rotate = false
	O.angle = 0
}

// RotationAxis sets the rotation axis, if given. Returns the current value.
func (O *SaveOptions) RotationAxis(a ...geom.Axis) geom.Axis {
	if len(a) > 0 {
		O.axis = a[0]
	}
	return O.axis
}

// Deg2Rad sets whether the rotation angle is in degrees, if given.
// Returns the current value.
func (O *SaveOptions) Deg2Rad(d ...bool) bool {
	if len(d) > 0 {
		O.deg2rad = d[0]
	}
	return O.deg2rad
}

// CenterCM sets whether the tube is centered on its center of mass, if
// given. Returns the current value.
func (O *SaveOptions) CenterCM(c ...bool) bool {
	if len(c) > 0 {
		O.centerCM = c[0]
	}
	return O.centerCM
}

// DefaultFname returns the default output file name, without extension.
// i.e. "1005r_1cell" or "1000r_2.35cells".
func (G *Generator) DefaultFname() string {
	n, m := G.params.Chirality()
	return fmt.Sprintf("%02d%02dr_%s", n, m, G.cellsString())
}

// DefaultComment returns a description of the tube for the file comment.
func (G *Generator) DefaultComment() string {
	n, m := G.params.Chirality()
	return fmt.Sprintf("(%d,%d) %s nanotube, %s, %s. %s", n, m, G.params.Type(), G.elements[0]+G.elements[1], G.cellsString(), nano.DefaultComment)
}

// Prepare returns a copy of the structure ready to be written: clipped
// to the target length if requested, then centered, then rotated, as set
// in so. A nil so means DefaultSaveOptions. The unit cell and the
// structure are generated first if needed. The Generator is not modified
// otherwise.
func (G *Generator) Prepare(so *SaveOptions) (*nano.Atoms, error) {
	if so == nil {
		so = DefaultSaveOptions()
	}
	if so.rotate {
		if so.axis != geom.X && so.axis != geom.Y && so.axis != geom.Z {
			return nil, Error{fmt.Sprintf("Invalid rotation axis %v", so.axis), []string{"Prepare"}, true}
		}
		if math.IsNaN(so.angle) || math.IsInf(so.angle, 0) {
			return nil, Error{fmt.Sprintf("Invalid rotation angle %v", so.angle), []string{"Prepare"}, true}
		}
	}
	if G.structure == nil {
		G.GenerateStructure()
	}
	atoms := G.structure.Copy()
	if G.fixLength && G.length > 0 {
		inf := math.Inf(1)
		region := geom.NewCuboid(geom.NewPoint(-inf, -inf, 0), geom.NewPoint(inf, inf, G.length))
		atoms.ClipBounds(region, true)
		atoms.AssignUniqueIDs()
		G.notify(Clipped, atoms)
	}
	if so.centerCM {
		atoms.CenterCM()
	}
	if so.rotate {
		atoms.Rotate(geom.RotationMatrix(so.angle, so.axis, so.deg2rad))
	}
	return atoms, nil
}

// SaveData prepares the structure as Prepare does, and writes it to a
// file. It returns the path to the file written.
func (G *Generator) SaveData(so *SaveOptions) (string, error) {
	if so == nil {
		so = DefaultSaveOptions()
	}
	atoms, err := G.Prepare(so)
	if err != nil {
		e := err.(Error)
		e.deco = append(e.deco, "SaveData")
		return "", e
	}
	fname := so.fname
	if fname == "" {
		fname = G.DefaultFname()
	}
	comment := so.comment
	if comment == "" {
		comment = G.DefaultComment()
	}
	name, err := nano.WriteStructure(fname, so.outpath, atoms, so.format, comment)
	if err != nil {
		return "", err
	}
	G.notify(Saved, atoms)
	return name, nil
}
