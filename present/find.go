// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package present

import (
	"slices"
	"strings"

	"cogentcore.org/viscera/member"
	"cogentcore.org/viscera/navigate"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// MinSimilarity is the minimum similarity of a result of [Find].
var MinSimilarity = 0.7

// Match is a result of [Find].
type Match struct {

	// Path is the path of the member.
	Path string

	// EntityName is the entity name of the member.
	EntityName string

	// Similarity is how closely the entity name matches the query,
	// from 0 to 1.
	Similarity float64
}

// Find returns the visible members of the current entity of the given
// page whose entity names match the given query, best match first.
// Matching ignores case and tolerates small typos.
func Find(p *navigate.Page, query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	swg := metrics.NewSmithWatermanGotoh()
	swg.CaseSensitive = false
	var ms []Match
	var walk func(rs []row, parent string)
	walk = func(rs []row, parent string) {
		for i, r := range rs {
			path := joinPath(parent, i)
			if r.member.Kind != member.Level {
				sim := strutil.Similarity(query, r.member.EntityName, swg)
				if sim >= MinSimilarity {
					ms = append(ms, Match{Path: path, EntityName: r.member.EntityName, Similarity: sim})
				}
			}
			walk(r.children(), path)
		}
	}
	walk(topRows(p.Current()), "")
	slices.SortStableFunc(ms, func(a, b Match) int {
		switch {
		case a.Similarity > b.Similarity:
			return -1
		case a.Similarity < b.Similarity:
			return 1
		}
		return 0
	})
	return ms
}
