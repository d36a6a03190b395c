// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package enumgen

// Config contains the configuration information
// used by enumgen
type Config struct {

	// the source directory to run enumgen on (can be set to multiple through paths like ./...)
	Dir string `default:"."`

	// the output file location relative to the package on which enumgen is being called
	Output string `default:"enumgen.go"`

	// if specified, a comma-separated list of prefixes to trim from each item
	TrimPrefix string

	// whether to use line comment text as printed text when present
	LineComment bool
}
