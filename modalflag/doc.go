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

// Package modalflag wraps the flag package of the standard library so that a
// program can have modes, each mode with its own set of flags.
//
// Geodash uses it like this:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "AUDIO", "LEVEL", "STATUS")
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		device := md.AddString("device", "", "device backend")
//		...
//	}
//
// Unlike flag.FlagSet, the arguments are given to NewArgs() and Parse() takes
// no arguments. This is so that Parse() can be called again after NewMode()
// and continue from where the previous Parse() stopped.
//
// The first sub-mode given to AddSubModes() is the default mode. It is
// selected when the first argument after the flags is not a listed mode, or
// when the flags are not recognised in the current mode (they are assumed to
// belong to the default mode). Mode names are case insensitive.
//
// The mode path is all the modes selected by successive calls to Parse(),
// joined with a slash. For example "RUN" or "LEVEL/SAVE".
package modalflag
