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

// Package paths contains functions to prepare paths to geodash resources: the
// preferences file and saved levels.
//
// The policy of ResourcePath() is simple: if the base resource path,
// ".geodash", is present in the program's current directory then that is the
// base path that will be used. If it is not present then the user's config
// directory is used (see os.UserConfigDir()).
//
// On the DE1-SoC board, where the program is usually run from the directory
// holding the level and audio files, the local directory is the one that is
// picked.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".geodash"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details. The directory part
// of the path is created if it does not exist.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath(subPth)
	if err != nil {
		return "", err
	}
	return filepath.Join(base, file), nil
}

func getBasePath(subPth string) (string, error) {
	pth := filepath.Join(baseResourcePath, subPth)
	if _, err := os.Stat(baseResourcePath); err != nil {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		pth = filepath.Join(cnf, baseResourcePath[1:], subPth)
	}

	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Used to name saved levels and audio
// captures. Format of the returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	return fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d%s", prepend,
		n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), ext)
}
