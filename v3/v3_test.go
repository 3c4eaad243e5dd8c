/*
 * v3_test.go, part of gonano.
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

package v3

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNewMatrix(Te *testing.T) {
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("A slice of 4 elements should not make a Matrix")
	} else if e, ok := err.(Error); !ok || !e.Critical() {
		Te.Errorf("Expected a critical v3.Error, got %v", err)
	}
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 || A.Len() != 2 {
		Te.Errorf("Expected 2 vectors, got %d", A.NVecs())
	}
	View := A.VecView(1)
	View.Set(0, 0, 100)
	if A.At(1, 0) != 100 {
		Te.Error("Changes in a VecView should be reflected in the original")
	}
	fmt.Println("View\n", A, "\n", View)
}

func TestAddSubVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	row, _ := NewMatrix([]float64{10, 20, 30})
	A.AddVec(A, row)
	if A.At(2, 2) != 39 || A.At(0, 0) != 11 {
		Te.Errorf("Wrong addition: %v", A)
	}
	B := Zeros(3)
	B.SubVec(A, row)
	for i, v := range []float64{1, 2, 3, 4, 5, 6, 7, 8, 9} {
		if B.At(i/3, i%3) != v {
			Te.Errorf("Wrong subtraction at %d: %v", i, B)
		}
	}
}

func TestMulAliased(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	//90 degrees around z
	R := mat.NewDense(3, 3, []float64{0, -1, 0, 1, 0, 0, 0, 0, 1})
	A.Mul(A, R.T())
	want := []float64{0, 1, 0, -1, 0, 0}
	for i, v := range want {
		if A.At(i/3, i%3) != v {
			Te.Errorf("Wrong product at %d, %v", i, A)
		}
	}
}

func TestScaleAddSubAliased(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	A.Scale(0.5, A)
	want := []float64{0.5, 1, 1.5, 2, 2.5, 3}
	for i, v := range want {
		if A.At(i/3, i%3) != v {
			Te.Errorf("Wrong scaling at %d, %v", i, A)
		}
	}
	A.Add(A, A)
	A.Sub(A, Zeros(2))
	for i, v := range want {
		if A.At(i/3, i%3) != 2*v {
			Te.Errorf("Wrong addition at %d, %v", i, A)
		}
	}
	//a weighted sum of the vectors, as done for centers of mass.
	w := mat.NewDense(1, 2, []float64{1, 1})
	cm := Zeros(1)
	cm.Mul(w, A)
	cm.Scale(0.5, cm)
	if cm.At(0, 0) != 2.5 || cm.At(0, 2) != 4.5 {
		Te.Errorf("Wrong mean %v", cm)
	}
}
