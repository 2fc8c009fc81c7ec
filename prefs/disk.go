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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/geodash-fpga/geodash/curated"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is written to the first line of every prefs file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between the key and value in each line of a prefs file.
const keySep = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile  = "prefs: no prefs file (%s)"
	PrefsFileErr = "prefs: %v"
)

// Disk represents preference values as stored on disk. Values are added to a
// disk instance with the Add() function. Lines in the prefs file which are
// not known to the disk instance are preserved when the file is saved, so
// more than one Disk can share the same file.
type Disk struct {
	path    string
	entries map[string]pref

	// keys whose value was taken from the command line stack. these values
	// are not overwritten by Load()
	commandLine map[string]bool
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}, nil
}

// Add preference value to list of values to store/load from disk. The key is
// the name of the value in the prefs file. It must not contain the key
// separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	if strings.Contains(key, strings.TrimSpace(keySep)) || strings.Contains(key, "\n") {
		return curated.Errorf(PrefsFileErr, fmt.Sprintf("illegal key (%s)", key))
	}
	dsk.entries[key] = p

	// a value on the command line stack overrides the default
	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(PrefsFileErr, err)
		}
		dsk.commandLine[key] = true
	}

	return nil
}

// sorted list of keys
func (dsk *Disk) keys() []string {
	k := make([]string, 0, len(dsk.entries))
	for key := range dsk.entries {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}

// read the prefs file, returning the key/value pairs
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileErr, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line must be the warning boilerplate
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(PrefsFileErr, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), keySep, 2)
		if len(kv) != 2 {
			continue
		}
		values[kv[0]] = kv[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileErr, err)
	}

	return values, nil
}

// Save current preference values to disk. Values in the file for keys unknown
// to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, values[k])
	}

	if err := w.Flush(); err != nil {
		return curated.Errorf(PrefsFileErr, err)
	}

	return nil
}

// Load preference values from disk. If the prefs file does not exist and
// saveOnMissing is true, the current values are saved to create a new file.
// The NoPrefsFile error is still returned in that case.
func (dsk *Disk) Load(saveOnMissing bool) error {
	values, err := dsk.read()
	if err != nil {
		if curated.Is(err, NoPrefsFile) && saveOnMissing {
			if serr := dsk.Save(); serr != nil {
				return serr
			}
		}
		return err
	}

	for k, p := range dsk.entries {
		if dsk.commandLine[k] {
			continue
		}
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsFileErr, err)
			}
		}
	}

	return nil
}

// Reset all preference values to their reset state.
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return nil
}
