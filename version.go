// Copyright 2025 Contriboss
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package semver provides an immutable semantic version value type
// (major.minor.patch[-prerelease][+build]) with parsing, canonical
// formatting, precedence ordering and part-level increment operations.
//
// Parsing is total: Parse never returns an error. Malformed input is
// absorbed into the validity flag while every field keeps its best-effort
// value, so even an invalid Version renders and compares deterministically.
//
// Example:
//
//	v := semver.Parse("v1.2.3-rc.1")
//	fmt.Println(v)            // 1.2.3-rc.1
//	fmt.Println(v.IsStable()) // false
//	fmt.Println(v.IncMinor()) // 1.3.0
package semver

import "fmt"

// Version represents a semantic version. The zero value is a valid-flagged
// 0.0.0; construct values with New or Parse.
//
// A Version is immutable after construction: every operation either reads
// fields or returns a new value, so values are safe for unrestricted
// concurrent use without synchronization.
type Version struct {
	major      uint64
	minor      uint64
	patch      uint64
	prerelease string
	build      string
	valid      bool
}

// New returns a valid Version with the given numeric triple and no
// prerelease or build metadata.
func New(major, minor, patch uint64) Version {
	return Version{
		major: major,
		minor: minor,
		patch: patch,
		valid: true,
	}
}

// Parse parses a semantic version string such as "1.2.3", "1.2.3-alpha.1"
// or "1.2.3-rc.1+build.5". A leading 'v' or 'V' is tolerated and dropped.
// Missing minor and patch numbers default to zero, so "1" parses as 1.0.0.
//
// Parse never fails. When the input is malformed the returned Version
// reports false from IsValid while still carrying whatever fragments the
// scanner could recover; callers that need strictness must check IsValid.
// The empty string parses as a valid 0.0.0.
func Parse(source string) Version {
	var v Version
	v.scan(source)
	return v
}

// Major returns the major version number.
func (v Version) Major() uint64 { return v.major }

// Minor returns the minor version number.
func (v Version) Minor() uint64 { return v.minor }

// Patch returns the patch version number.
func (v Version) Patch() uint64 { return v.patch }

// Prerelease returns the dot-separated prerelease identifiers as raw text,
// without the leading '-'. Empty means no prerelease.
func (v Version) Prerelease() string { return v.prerelease }

// Build returns the dot-separated build metadata identifiers as raw text,
// without the leading '+'. Empty means no build metadata.
func (v Version) Build() string { return v.build }

// IsValid reports whether every fragment of the source passed validation.
// Versions built with New are always valid.
func (v Version) IsValid() bool { return v.valid }

// IsStable reports whether the version has no prerelease identifiers.
// Build metadata and validity do not affect stability.
func (v Version) IsStable() bool { return v.prerelease == "" }

// String returns the canonical form "major.minor.patch[-prerelease][+build]".
// The canonical form never carries a 'v' prefix or leading zeros, and
// parsing it always reproduces an equal, valid Version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)

	if v.prerelease != "" {
		s += "-" + v.prerelease
	}

	if v.build != "" {
		s += "+" + v.build
	}

	return s
}

// IncMajor returns a new Version with the major number incremented, minor
// and patch reset to zero and prerelease/build cleared. The result is
// always valid.
func (v Version) IncMajor() Version {
	return New(v.major+1, 0, 0)
}

// IncMinor returns a new Version with the minor number incremented, patch
// reset to zero and prerelease/build cleared. The result is always valid.
func (v Version) IncMinor() Version {
	return New(v.major, v.minor+1, 0)
}

// IncPatch returns a new Version with the patch number incremented and
// prerelease/build cleared. The result is always valid.
func (v Version) IncPatch() Version {
	return New(v.major, v.minor, v.patch+1)
}

// DifferAt returns the most significant part at which v and other differ,
// checked in order major, minor, patch, prerelease, build. Prerelease and
// build compare as raw text here, matching Equal.
//
// Both versions must be valid and must not be equal: no Part means "no
// difference", so calling DifferAt on equal or invalid versions is a
// programming error and panics.
func (v Version) DifferAt(other Version) Part {
	if !v.valid || !other.valid {
		panic("semver: DifferAt called on invalid version")
	}
	switch {
	case v.major != other.major:
		return PartMajor
	case v.minor != other.minor:
		return PartMinor
	case v.patch != other.patch:
		return PartPatch
	case v.prerelease != other.prerelease:
		return PartPrerelease
	case v.build != other.build:
		return PartBuild
	}
	panic("semver: DifferAt called on equal versions")
}

var (
	_ fmt.Stringer = Version{}
)
