// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system utilities.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/viscera/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths returns the files with the given names that exist
// in the given directories, in path order and then name order. Errors
// other than a file not existing are logged.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range paths {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			if ok, err := FileExists(fp); ok {
				res = append(res, fp)
			} else {
				errors.Log(err)
			}
		}
	}
	return res
}
