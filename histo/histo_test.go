/*
 * histo_test.go, part of gonano.
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

package histo

import (
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

func TestHisto(Te *testing.T) {
	dividers := []float64{0, 1, 2, 3, 4, 8}
	rawdata := []float64{1, 6, 3, 2, 4, 5, 7, 6, 3.5, 3, 5, 1, 1, 0, 0, 5, 8, 1, 2, 3, 44, 3, 7, 3, 1, 3, 5, 32, 1, -1}
	orig := append([]float64(nil), rawdata...)
	D := NewData(dividers, rawdata)
	if !floats.Equal(rawdata, orig) {
		Te.Errorf("The raw data was modified")
	}
	expected := []float64{2, 6, 2, 7, 9}
	if !floats.Equal(D.View(), expected) {
		Te.Errorf("Expected %v, got %v", expected, D.View())
	}
	//8, 44, 32 and -1 are out of range.
	if D.Total() != 26 {
		Te.Errorf("Expected 26 values, got %d", D.Total())
	}
	D.Normalize()
	if math.Abs(D.Sum()-1) > 1e-9 {
		Te.Errorf("Normalized histogram adds up to %f", D.Sum())
	}
	D.AddData(0.5, 2, 100)
	if !D.Normalized() || D.Total() != 28 {
		Te.Errorf("AddData should keep the normalization and count only values in range")
	}
	D.UnNormalize()
	expected = []float64{3, 6, 3, 7, 9}
	if !floats.EqualApprox(D.View(), expected, 1e-9) {
		Te.Errorf("Expected %v, got %v", expected, D.View())
	}
	S := new(Data)
	S.Add(D, D)
	if S.Total() != 56 || S.View()[0] != 6 {
		Te.Errorf("Wrong sum %v", S)
	}
	Te.Log(D.String())
}

func TestHistoJSON(Te *testing.T) {
	D := NewData(Uniform(0, 4, 4), []float64{0.5, 1.5, 1.7, 3.9})
	j, err := json.Marshal(D)
	if err != nil {
		Te.Fatal(err)
	}
	D2 := new(Data)
	if err := json.Unmarshal(j, D2); err != nil {
		Te.Fatal(err)
	}
	if D2.Total() != 4 || !floats.Equal(D2.View(), []float64{1, 2, 0, 1}) || !floats.Equal(D2.Dividers(), []float64{0, 1, 2, 3, 4}) {
		Te.Errorf("Wrong histogram after JSON round trip: %s", D2)
	}
	if err := json.Unmarshal([]byte(`{"dividers":[0,1],"histo":[1,2]}`), D2); err == nil {
		Te.Errorf("Inconsistent histogram should fail")
	}
}
