// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

package params

import "fmt"

var (
	// GitCommit and GitTag are injected through build flags.
	GitCommit string
	GitTag    string
)

// Version format: Major.Minor.Build
const (
	VersionMajor    = 0
	VersionMinor    = 1
	VersionBuild    = 0
	VersionModifier = ""
)

// Version holds the textual version string.
var Version = fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionBuild)

// VersionWithMeta holds the textual version string including the modifier
// and, if available, the short git commit it was built from.
var VersionWithMeta = func() string {
	v := Version
	if VersionModifier != "" {
		v += "-" + VersionModifier
	}
	if len(GitCommit) >= 8 {
		v += "-" + GitCommit[:8]
	}
	return v
}()
