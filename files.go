/*
 * files.go, part of gonano.
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
	"bufio"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gonano/geom"
)

// DefaultComment is written in the comment/remark line of the structure
// files when none is given.
const DefaultComment = "Created with goNano"

// Structure formats that can be written.
const (
	XYZ    = "xyz"
	PDB    = "pdb"
	LAMMPS = "data"
)

// ZstdSuffix is the file suffix that triggers zstd compression.
const ZstdSuffix = ".zst"

var supportedFormats = []string{XYZ, PDB, LAMMPS}

// DefaultFormat is used when no valid format is given or can be inferred.
const DefaultFormat = XYZ

// boxPad is added to each side of the LAMMPS box.
const boxPad = 1.0

// ResolveFormat determines the structure format and the final file name
// for fname. If format is empty it is inferred from the extension of fname.
// Unknown formats fall back to DefaultFormat. The extension of the format
// is appended to fname if missing. A ZstdSuffix on fname is kept at the
// end of the name, and compressed is then true.
func ResolveFormat(fname, format string) (name, fmtname string, compressed bool) {
	if strings.HasSuffix(fname, ZstdSuffix) {
		compressed = true
		fname = strings.TrimSuffix(fname, ZstdSuffix)
	}
	format = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	if format == "" {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fname), "."))
		if isSupported(ext) {
			format = ext
		}
	}
	if !isSupported(format) {
		if format != "" {
			log.Printf("goNano: Unknown structure format %q. Will use %s", format, DefaultFormat)
		}
		format = DefaultFormat
	}
	if !strings.HasSuffix(strings.ToLower(fname), "."+format) {
		fname += "." + format
	}
	if compressed {
		fname += ZstdSuffix
	}
	return fname, format, compressed
}

func isSupported(format string) bool {
	for _, v := range supportedFormats {
		if format == v {
			return true
		}
	}
	return false
}

// WriteStructure writes atoms to the file fname, in the directory outpath
// (the current directory if empty), in the given format. See ResolveFormat
// for how the name and format are determined. An empty comment means
// DefaultComment. It returns the path of the file written.
func WriteStructure(fname, outpath string, atoms *Atoms, format, comment string) (string, error) {
	if atoms == nil {
		return "", Error{message: "atoms must be a non-nil collection", deco: []string{"WriteStructure"}, critical: true}
	}
	if strings.TrimSpace(fname) == "" {
		return "", Error{message: "empty file name", deco: []string{"WriteStructure"}, critical: true}
	}
	if comment == "" {
		comment = DefaultComment
	}
	name, format, compressed := ResolveFormat(fname, format)
	if outpath != "" {
		name = filepath.Join(outpath, name)
	}
	f, err := os.Create(name)
	if err != nil {
		return "", Error{message: err.Error(), filename: name, deco: []string{"WriteStructure"}, critical: true, inner: err}
	}
	defer f.Close()
	var out io.Writer = f
	var zw *zstd.Encoder
	if compressed {
		zw, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			return "", Error{message: err.Error(), filename: name, deco: []string{"WriteStructure"}, critical: true, inner: err}
		}
		out = zw
	}
	buf := bufio.NewWriter(out)
	switch format {
	case PDB:
		bonds, berr := AssignBonds(atoms)
		if berr != nil {
			log.Printf("goNano: %s. No CONECT records will be written to %s", berr.Error(), name)
			bonds = nil
		}
		err = PDBWrite(buf, atoms, comment, bonds)
	case LAMMPS:
		err = LAMMPSDataWrite(buf, atoms, comment)
	default:
		err = XYZWrite(buf, atoms, comment)
	}
	if err != nil {
		return "", errDecorate(withFile(err, name), "WriteStructure")
	}
	if err = buf.Flush(); err != nil {
		return "", errDecorate(withFile(err, name), "WriteStructure")
	}
	if zw != nil {
		if err = zw.Close(); err != nil {
			return "", errDecorate(withFile(err, name), "WriteStructure")
		}
	}
	if err = f.Close(); err != nil {
		return "", errDecorate(withFile(err, name), "WriteStructure")
	}
	return name, nil
}

func withFile(err error, name string) error {
	if e, ok := err.(Error); ok {
		if e.filename == "" {
			e.filename = name
		}
		return e
	}
	return Error{message: err.Error(), filename: name, critical: true, inner: err}
}

// rezeroedCoords returns a copy of the position of at, rezeroed with the
// default array epsilon.
func rezeroedCoords(at *Atom) []float64 {
	return geom.RezeroArray(at.r.Coords(), 0)
}

// oneLine replaces line breaks in s, so it can be used in a comment line.
func oneLine(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

// XYZWrite writes atoms to out in XYZ format, with comment in the
// second line.
func XYZWrite(out io.Writer, atoms *Atoms, comment string) error {
	if atoms == nil {
		return Error{message: "atoms must be a non-nil collection", deco: []string{"XYZWrite"}, critical: true}
	}
	if _, err := fmt.Fprintf(out, "%d\n%s\n", atoms.Len(), oneLine(comment)); err != nil {
		return errDecorate(err, "XYZWrite")
	}
	for i := 0; i < atoms.Len(); i++ {
		at := atoms.Atom(i)
		c := rezeroedCoords(at)
		if _, err := fmt.Fprintf(out, "%3s%15.8f%15.8f%15.8f\n", at.Symbol, c[0], c[1], c[2]); err != nil {
			return errDecorate(err, "XYZWrite")
		}
	}
	return nil
}

// PDBWrite writes atoms to out as PDB HETATM records. If bonds is not
// nil, the bonds of each atom, as assigned by AssignBonds, are written as
// CONECT records. Atoms with an ID of 0 get their
// 1-based position in the collection, and empty names, residue names and
// chains get the symbol, "TUB" and "A", respectively.
func PDBWrite(out io.Writer, atoms *Atoms, comment string, bonds []*Bond) error {
	if atoms == nil {
		return Error{message: "atoms must be a non-nil collection", deco: []string{"PDBWrite"}, critical: true}
	}
	if _, err := fmt.Fprintf(out, "REMARK     %s\n", oneLine(comment)); err != nil {
		return errDecorate(err, "PDBWrite")
	}
	ids := make(map[*Atom]int, atoms.Len())
	for i := 0; i < atoms.Len(); i++ {
		at := atoms.Atom(i)
		id := at.ID
		if id == 0 {
			id = i + 1
		}
		ids[at] = id
		name, molname, chain := at.Name, at.Molname, at.Chain
		if name == "" {
			name = at.Symbol
		}
		if molname == "" {
			molname = "TUB"
		}
		if chain == "" {
			chain = "A"
		}
		molid := at.Molid
		if molid == 0 {
			molid = 1
		}
		c := rezeroedCoords(at)
		var err error
		//4 chars for the atom name are aligned differently.
		if len(name) < 4 {
			_, err = fmt.Fprintf(out, "%-6s%5d  %-3s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", "HETATM", id, name, molname, chain,
				molid, c[0], c[1], c[2], at.Occupancy, at.Bfactor, at.Symbol)
		} else if len(name) == 4 {
			_, err = fmt.Fprintf(out, "%-6s%5d %4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s  \n", "HETATM", id, name, molname, chain,
				molid, c[0], c[1], c[2], at.Occupancy, at.Bfactor, at.Symbol)
		} else {
			err = Error{message: fmt.Sprintf("Atom name %q too long for PDB", name), critical: true}
		}
		if err != nil {
			return errDecorate(err, "PDBWrite")
		}
	}
	if bonds != nil {
		if err := pdbConect(out, atoms, ids); err != nil {
			return errDecorate(err, "PDBWrite")
		}
	}
	_, err := fmt.Fprint(out, "END\n")
	return errDecorate(err, "PDBWrite")
}

// pdbConect writes the CONECT records for the bonds already assigned to
// the atoms, at most 4 partners per record.
func pdbConect(out io.Writer, atoms *Atoms, ids map[*Atom]int) error {
	for i := 0; i < atoms.Len(); i++ {
		at := atoms.Atom(i)
		if len(at.Bonds) == 0 {
			continue
		}
		partners := make([]int, 0, len(at.Bonds))
		for _, b := range at.Bonds {
			if id, ok := ids[b.Cross(at)]; ok {
				partners = append(partners, id)
			}
		}
		for len(partners) > 0 {
			n := min(4, len(partners))
			line := fmt.Sprintf("CONECT%5d", ids[at])
			for _, p := range partners[:n] {
				line += fmt.Sprintf("%5d", p)
			}
			if _, err := fmt.Fprintln(out, line); err != nil {
				return err
			}
			partners = partners[n:]
		}
	}
	return nil
}

// LAMMPSDataWrite writes atoms to out as a LAMMPS data file, atomic style.
// Each element is an atom type, numbered in order of first appearance.
// The box is the bounding box of the atoms, padded by 1 Å on each side.
func LAMMPSDataWrite(out io.Writer, atoms *Atoms, comment string) error {
	if atoms == nil {
		return Error{message: "atoms must be a non-nil collection", deco: []string{"LAMMPSDataWrite"}, critical: true}
	}
	symbols := atoms.Symbols()
	types := make(map[string]int, len(symbols))
	for i, v := range symbols {
		types[v] = i + 1
	}
	lo := []float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := []float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	coords := make([][]float64, atoms.Len())
	for i := range coords {
		coords[i] = rezeroedCoords(atoms.Atom(i))
		for j, v := range coords[i] {
			lo[j] = math.Min(lo[j], v)
			hi[j] = math.Max(hi[j], v)
		}
	}
	if atoms.Len() == 0 {
		lo = []float64{0, 0, 0}
		hi = []float64{0, 0, 0}
	}
	w := &errWriter{w: out}
	w.printf("%s\n\n", oneLine(comment))
	w.printf("%d atoms\n", atoms.Len())
	w.printf("%d atom types\n\n", len(symbols))
	for j, ax := range []string{"x", "y", "z"} {
		w.printf("%.8f %.8f %slo %shi\n", lo[j]-boxPad, hi[j]+boxPad, ax, ax)
	}
	w.printf("\nMasses\n\n")
	for i, v := range symbols {
		w.printf("%d %.4f\n", i+1, SymbolMass(v))
	}
	w.printf("\nAtoms\n\n")
	for i, c := range coords {
		at := atoms.Atom(i)
		w.printf("%d %d %.8f %.8f %.8f\n", i+1, types[at.Symbol], c[0], c[1], c[2])
	}
	return errDecorate(w.err, "LAMMPSDataWrite")
}

// errWriter keeps the first error from a series of writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}

// XYZRead reads a structure in XYZ format from r. It returns the atoms
// and the comment line.
func XYZRead(r io.Reader) (*Atoms, string, error) {
	xyz := bufio.NewReader(r)
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, "", Error{message: "Ill formatted XYZ file: can't read the number of atoms", deco: []string{"XYZRead"}, critical: true, inner: err}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms < 0 {
		return nil, "", Error{message: fmt.Sprintf("Ill formatted XYZ file: wrong number of atoms %q", strings.TrimSpace(line)), deco: []string{"XYZRead"}, critical: true, inner: err}
	}
	comment, err := xyz.ReadString('\n')
	if err != nil && !(err == io.EOF && natoms == 0) {
		return nil, "", Error{message: "Ill formatted XYZ file: missing comment line", deco: []string{"XYZRead"}, critical: true, inner: err}
	}
	comment = strings.TrimRight(comment, "\r\n")
	atoms := &Atoms{atoms: make([]*Atom, 0, natoms)}
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && !(err == io.EOF && line != "") {
			return nil, "", Error{message: fmt.Sprintf("Ill formatted XYZ file: expected %d atoms, found %d", natoms, i), deco: []string{"XYZRead"}, critical: true, inner: err}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, "", Error{message: fmt.Sprintf("Ill formatted XYZ file: line for atom %d has %d fields", i+1, len(fields)), deco: []string{"XYZRead"}, critical: true}
		}
		c := make([]float64, 3)
		for j := range c {
			c[j], err = strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return nil, "", Error{message: fmt.Sprintf("Ill formatted XYZ file: bad coordinate for atom %d", i+1), deco: []string{"XYZRead"}, critical: true, inner: err}
			}
		}
		atoms.Append(NewAtom(fields[0], c[0], c[1], c[2]))
	}
	return atoms, comment, nil
}

// XYZFileRead reads the XYZ file name, decompressing it if its name ends
// in ZstdSuffix.
func XYZFileRead(name string) (*Atoms, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", Error{message: err.Error(), filename: name, deco: []string{"XYZFileRead"}, critical: true, inner: err}
	}
	defer f.Close()
	var in io.Reader = f
	if strings.HasSuffix(name, ZstdSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, "", Error{message: err.Error(), filename: name, deco: []string{"XYZFileRead"}, critical: true, inner: err}
		}
		defer dec.Close()
		in = dec
	}
	atoms, comment, err := XYZRead(in)
	if err != nil {
		return nil, "", errDecorate(withFile(err, name), "XYZFileRead")
	}
	return atoms, comment, nil
}
