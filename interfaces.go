/*
 * interfaces.go, part of gonano.
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

import "fmt"

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the set. Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Errors

// ErrorDecorator is implemented by all the errors in this library. The
// Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type ErrorDecorator interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

// Error is the error type of the nano package.
type Error struct {
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     []string
	critical bool
	inner    error //the error from other packages that caused this one, if any.
}

// Error returns a string with an error message.
func (err Error) Error() string {
	if err.filename == "" {
		return err.message
	}
	return fmt.Sprintf("%s (file: %s)", err.message, err.filename)
}

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

// Unwrap returns the underlying error, if any.
func (err Error) Unwrap() error { return err.inner }

// FileName returns the name of the file related to the error, if any.
func (err Error) FileName() string { return err.filename }

// errDecorate decorates err with the caller's name, if err is one of ours.
// Other errors (i.e. from the os package) are wrapped in a critical Error.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(Error); ok {
		e.deco = append(e.deco, caller)
		return e
	}
	return Error{message: err.Error(), deco: []string{caller}, critical: true, inner: err}
}
