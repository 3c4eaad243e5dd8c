/*
 * report.go, part of gonano.
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

	nano "github.com/rmera/gonano"
	"github.com/rmera/gonano/bondgraph"
	"github.com/rmera/gonano/histo"
	"gonum.org/v1/gonum/stat"
)

// ReportBins is the number of bins in the bond length histogram of a
// Report. The histogram spans 20% around the nominal bond length.
const ReportBins = 8

// Report summarizes the bonds of a generated tube.
type Report struct {
	Atoms int
	Bonds int
	//Mean and standard deviation of the bond lengths, in Å.
	Mean, Std float64
	//Atoms with fewer than 3 bonds, normally those at the ends of the tube.
	Undercoordinated int
	//Connected components of the bond graph. 1 for a proper tube.
	Components int
	Histo      *histo.Data
}

func (R *Report) String() string {
	return fmt.Sprintf("%d atoms, %d bonds, bond length %.4f ± %.4f Å, %d undercoordinated atoms, %d fragment(s)\n%s", R.Atoms, R.Bonds, R.Mean, R.Std, R.Undercoordinated, R.Components, R.Histo)
}

// BondReport assigns bonds to the structure that Prepare returns for so,
// and summarizes them.
func (G *Generator) BondReport(so *SaveOptions) (*Report, error) {
	atoms, err := G.Prepare(so)
	if err != nil {
		e := err.(Error)
		e.deco = append(e.deco, "BondReport")
		return nil, e
	}
	bonds, err := nano.AssignBonds(atoms)
	if err != nil {
		return nil, err
	}
	lengths := make([]float64, len(bonds))
	for i, b := range bonds {
		lengths[i] = b.Dist
	}
	R := &Report{Atoms: atoms.Len(), Bonds: len(bonds)}
	if len(lengths) > 0 {
		R.Mean, R.Std = stat.MeanStdDev(lengths, nil)
	}
	bond := G.params.Bond
	R.Histo = histo.NewData(histo.Uniform(0.8*bond, 1.2*bond, ReportBins), lengths)
	for i := 0; i < atoms.Len(); i++ {
		if len(atoms.Atom(i).Bonds) < 3 {
			R.Undercoordinated++
		}
	}
	R.Components = len(bondgraph.New(atoms).Components())
	return R, nil
}
