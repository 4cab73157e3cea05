// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const buildInfoUnset = "N/A"

// BuildInfo identifies the running binary. Fields come from -ldflags -X.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// OrUnset returns a copy with every empty field reported as "N/A".
func (b BuildInfo) OrUnset() BuildInfo {
	for _, field := range []*string{&b.Version, &b.Date, &b.Commit} {
		if *field == "" {
			*field = buildInfoUnset
		}
	}

	return b
}
