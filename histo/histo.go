/*
 * histo.go, part of gonano.
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

// Package histo has simple histograms, used to summarize distributions
// such as the bond lengths of a structure.
package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Uniform returns bins+1 dividers evenly spaced between lo and hi.
func Uniform(lo, hi float64, bins int) []float64 {
	if bins < 1 || !(hi > lo) {
		panic("goNano/histo.Uniform: Need at least one bin and hi > lo")
	}
	return floats.Span(make([]float64, bins+1), lo, hi)
}

// Data is a histogram. Values outside the dividers are not counted.
type Data struct {
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

// NewData returns a histogram with the given dividers, filled with rawdata,
// which can be nil. rawdata is not modified.
func NewData(dividers []float64, rawdata []float64) *Data {
	if len(dividers) < 2 {
		panic("goNano/histo.NewData: At least 2 dividers are needed")
	}
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	return d
}

// ReHisto replaces the contents of the histogram with rawdata, binned
// with the given dividers. rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	if len(dividers) < 2 {
		panic("goNano/histo.Data.ReHisto: At least 2 dividers are needed")
	}
	div := make([]float64, len(dividers))
	copy(div, dividers)
	data := make([]float64, len(rawdata))
	copy(data, rawdata)
	sort.Float64s(data)
	//stat.Histogram panics for values out of the range, so we remove them.
	maxi := sort.SearchFloat64s(data, dividers[len(dividers)-1])
	mini := sort.SearchFloat64s(data, dividers[0])
	data = data[mini:maxi]
	D.dividers = div
	D.total = len(data)
	D.normalized = false
	D.histo = stat.Histogram(nil, D.dividers, data, nil)
}

// AddData adds the given data point(s) to the histogram.
func (D *Data) AddData(point ...float64) {
	norma := D.normalized
	if norma {
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v < D.dividers[0] || v >= D.dividers[last] {
			continue
		}
		//first divider not smaller than v
		j := sort.SearchFloat64s(D.dividers, v)
		if D.dividers[j] > v {
			j--
		}
		D.histo[j]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Total returns the number of values counted in the histogram.
func (D *Data) Total() int { return D.total }

// Normalized returns true if the histogram is normalized
func (D *Data) Normalized() bool { return D.normalized }

// Normalize normalizes the histogram so its bins add up to 1.
func (D *Data) Normalize() { D.normaunnorma(true) }

// UnNormalize returns the histogram to counts.
func (D *Data) UnNormalize() { D.normaunnorma(false) }

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	if normalize {
		n = 1 / n
	}
	D.normalized = normalize
	floats.Scale(n, D.histo)
}

// Dividers returns a copy of the dividers of the histogram.
func (D *Data) Dividers() []float64 {
	ret := make([]float64, len(D.dividers))
	copy(ret, D.dividers)
	return ret
}

// View returns the bins of the histogram. It must not be modified.
func (D *Data) View() []float64 { return D.histo }

// Sum returns the sum of all the bins.
func (D *Data) Sum() float64 { return floats.Sum(D.histo) }

// Add puts the sum of a and b in the receiver. Both histograms need to
// have the same dividers and the same normalization.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) || a.normalized != b.normalized {
		panic("goNano/histo.Data.Add: Dividers and normalization must match in added histograms")
	}
	h := make([]float64, len(a.histo))
	floats.AddTo(h, a.histo, b.histo)
	D.dividers = a.Dividers()
	D.histo = h
	D.total = a.total + b.total
	D.normalized = a.normalized
}

// String returns 2 lines with the ranges and the values of the bins.
func (D *Data) String() string {
	d := make([]string, 0, len(D.histo))
	h := make([]string, 0, len(D.histo))
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

type jsonData struct {
	Normalized bool      `json:"normalized"`
	Total      int       `json:"total"`
	Dividers   []float64 `json:"dividers"`
	Histo      []float64 `json:"histo"`
}

func (D *Data) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonData{Normalized: D.normalized, Total: D.total, Dividers: D.dividers, Histo: D.histo})
}

func (D *Data) UnmarshalJSON(b []byte) error {
	var a jsonData
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	if len(a.Dividers) != len(a.Histo)+1 {
		return fmt.Errorf("goNano/histo: %d dividers for %d bins", len(a.Dividers), len(a.Histo))
	}
	D.normalized = a.Normalized
	D.total = a.Total
	D.dividers = a.Dividers
	D.histo = a.Histo
	return nil
}
