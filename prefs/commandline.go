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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// separators in a command line group. see PushCommandLineStack()
const (
	groupSep = ";"
	pairSep  = "::"
)

// a group of preference values given on the command line, keyed by the
// preference name used in the prefs file
type group map[string]Value

// parseGroup ignores malformed entries. a later entry for the same key
// replaces an earlier one
func parseGroup(s string) group {
	g := make(group)
	for _, entry := range strings.Split(s, groupSep) {
		key, value, ok := strings.Cut(entry, pairSep)
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.Contains(value, pairSep) {
			continue
		}
		g[key] = strings.TrimSpace(value)
	}
	return g
}

// String returns the group in the form accepted by parseGroup() with the keys
// sorted
func (g group) String() string {
	keys := make([]string, 0, len(g))
	for k := range g {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]string, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, fmt.Sprintf("%s%s%v", k, pairSep, g[k]))
	}
	return strings.Join(entries, groupSep+" ")
}

// the most recent group is at the end of the stack. only the most recent
// group is consulted by GetCommandLinePref()
var commandLine struct {
	crit  sync.Mutex
	stack []group
}

// SizeCommandLineStack returns the number of groups that have been added with
// PushCommandLineStack().
func SizeCommandLineStack() int {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	return len(commandLine.stack)
}

// PushCommandLineStack parses a -prefs flag value and adds it as a new group.
// The string is of the form:
//
//	device.backend::sim; game.tickrate::50; audio.pollevery::50
//
// Values in the group take precedence over values loaded from the prefs file
// by any prefs.Disk that adds the key. Malformed entries are dropped.
func PushCommandLineStack(prefs string) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()
	commandLine.stack = append(commandLine.stack, parseGroup(prefs))
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). The values in the group that were never claimed by a
// prefs.Disk are returned in the same form. A non-empty result normally means
// a misspelt key.
func PopCommandLineStack() string {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return ""
	}
	top := commandLine.stack[n-1]
	commandLine.stack = commandLine.stack[:n-1]
	return top.String()
}

// GetCommandLinePref claims the value for the key in the most recent group.
// The value is removed from the group so it is applied only once.
func GetCommandLinePref(key string) (bool, Value) {
	commandLine.crit.Lock()
	defer commandLine.crit.Unlock()

	n := len(commandLine.stack)
	if n == 0 {
		return false, nil
	}
	top := commandLine.stack[n-1]
	v, ok := top[key]
	if ok {
		delete(top, key)
	}
	return ok, v
}
