// This file is part of Geodash.
//
// Geodash is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Geodash is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Geodash.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns that are checked for in more than one place
// should be stored as a const string, suitably named. For example, the
// registers package declares:
//
//	const MappingError = "registers: mapping: %v"
//
// and the start-up code can test for it with:
//
//	if curated.Is(err, registers.MappingError) {
//		// peripheral is missing or misconfigured
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(registers.MappingError, "no such device")
//	f := curated.Errorf("geodash: %v", e)
//
//	curated.Has(f, registers.MappingError) // true
//	curated.Is(f, registers.MappingError)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference as being 'expected' and
// 'unexpected' errors depending on how we choose to handle the result.
//
// The Error() function normalises the error chain, removing duplicate adjacent
// parts. For the purposes of this package a chain is composed of parts
// separated by the sub-string ': ', as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan). For example:
//
//	part 1: part 2: part 3
//
// Curated errors also implement Unwrap() so errors.Is() and errors.As() from
// the standard library can see through them to any wrapped error value. This
// is important for errors such as device.ErrInvalidCommand which are wrapped
// on their way up from the device transport.
package curated
