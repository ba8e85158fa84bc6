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

package semver

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// Compare returns a three-way comparison establishing a total order over
// versions:
//
//	-1 if v < other
//	 0 if v == other
//	 1 if v > other
//
// The major, minor and patch numbers compare first; the first difference
// decides. On an equal triple the prerelease identifier sequences compare
// next, then the build identifier sequences.
//
// Prerelease precedence follows SemVer: a prerelease version sorts below
// the release it precedes (1.0.0-alpha < 1.0.0). Build metadata deviates
// from SemVer, which ignores it entirely: here it is compared like a
// prerelease sequence, and its presence sorts a version above its bare
// counterpart (1.0.0+build > 1.0.0).
//
// The validity flag does not participate in ordering.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.major, other.major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.minor, other.minor); c != 0 {
		return c
	}
	if c := cmp.Compare(v.patch, other.patch); c != 0 {
		return c
	}

	// A prerelease version has lower precedence than the release it
	// precedes, inverting the shared sequence rule below.
	switch {
	case v.prerelease == "" && other.prerelease != "":
		return 1
	case v.prerelease != "" && other.prerelease == "":
		return -1
	}
	if c := compareIdentifiers(v.prerelease, other.prerelease); c != 0 {
		return c
	}

	return compareIdentifiers(v.build, other.build)
}

// CompareString parses other and compares against it, so
// v.CompareString("1.2.3") behaves exactly like v.Compare(Parse("1.2.3")).
func (v Version) CompareString(other string) int {
	return v.Compare(Parse(other))
}

// Equal reports whether v and other have identical major, minor, patch,
// prerelease and build fields. Prerelease and build compare as raw text.
//
// The validity flag is excluded: two differently malformed inputs that
// decompose to the same fields are equal.
func (v Version) Equal(other Version) bool {
	return v.major == other.major &&
		v.minor == other.minor &&
		v.patch == other.patch &&
		v.prerelease == other.prerelease &&
		v.build == other.build
}

// EqualString parses other and reports equality against it.
func (v Version) EqualString(other string) bool {
	return v.Equal(Parse(other))
}

// SortVersions sorts versions in place into ascending precedence order.
func SortVersions(versions []Version) {
	slices.SortFunc(versions, Version.Compare)
}

// compareIdentifiers compares two dot-separated identifier sequences by
// walking identifier pairs position by position. A pair where both sides
// are all decimal digits compares as unsigned integers; any unequal result
// decides immediately. Every other pair, including numerically equal digit
// pairs that differ in leading zeros, compares as plain text. When all
// paired identifiers are equal the longer sequence is greater, so an empty
// sequence sorts below any non-empty one.
func compareIdentifiers(a, b string) int {
	as := splitIdentifiers(a)
	bs := splitIdentifiers(b)

	for i := 0; i < min(len(as), len(bs)); i++ {
		an, aNum := numericIdentifier(as[i])
		bn, bNum := numericIdentifier(bs[i])

		if aNum && bNum {
			if c := cmp.Compare(an, bn); c != 0 {
				return c
			}
		}
		if c := strings.Compare(as[i], bs[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(as), len(bs))
}

// splitIdentifiers splits a raw identifier sequence on '.'. An empty
// sequence yields no identifiers rather than a single empty one.
func splitIdentifiers(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ".")
}

// numericIdentifier reports whether s consists entirely of decimal digits
// and fits an unsigned 64-bit integer, returning its value when it does.
// Oversized digit runs fall back to the plain-text comparison branch.
func numericIdentifier(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
