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

import "strconv"

// fragmentKind identifies which fragment of a version string the scanner is
// currently accumulating. Fragments are scanned strictly in declaration
// order; the transition table below only ever moves forward.
type fragmentKind int

const (
	fragMajor fragmentKind = iota
	fragMinor
	fragPatch
	fragPrerelease
	fragBuild
)

// transition returns the fragment kind that follows kind when the delimiter
// delim is seen. The second result is false when delim is not a delimiter
// for kind, in which case the character belongs to the current fragment.
//
// Delimiter sets per kind: major and minor accept '.', '-' and '+'; patch
// accepts '-' and '+'; prerelease accepts '+'; build is terminal and accepts
// none, so everything after the '+' marker is consumed as a single fragment.
func transition(kind fragmentKind, delim byte) (fragmentKind, bool) {
	switch kind {
	case fragMajor:
		switch delim {
		case '.':
			return fragMinor, true
		case '-':
			return fragPrerelease, true
		case '+':
			return fragBuild, true
		}
	case fragMinor:
		switch delim {
		case '.':
			return fragPatch, true
		case '-':
			return fragPrerelease, true
		case '+':
			return fragBuild, true
		}
	case fragPatch:
		switch delim {
		case '-':
			return fragPrerelease, true
		case '+':
			return fragBuild, true
		}
	case fragPrerelease:
		if delim == '+' {
			return fragBuild, true
		}
	}
	return kind, false
}

// validFragment reports whether every character of text is legal for kind:
// ASCII decimal digits for the numeric kinds, ASCII alphanumerics plus '.'
// and '-' for prerelease and build. Non-ASCII bytes are never legal.
//
// An empty text passes for every kind. For prerelease and build that means
// "not present"; for the numeric kinds the empty string is caught by the
// integer conversion instead.
func validFragment(kind fragmentKind, text string) bool {
	switch kind {
	case fragMajor, fragMinor, fragPatch:
		for i := 0; i < len(text); i++ {
			if !isDigit(text[i]) {
				return false
			}
		}
	default:
		for i := 0; i < len(text); i++ {
			c := text[i]
			if !isDigit(c) && !isLetter(c) && c != '.' && c != '-' {
				return false
			}
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// scan decomposes source into its five fragments with a single
// left-to-right pass and no backtracking, storing the result in v.
//
// A fragment is closed when the current character is a delimiter for the
// current kind, or at end of input. An invalid or unconvertible fragment
// marks v invalid but never stops the scan: later fragments are still
// populated, so callers always get a best-effort decomposition of malformed
// input.
func (v *Version) scan(source string) {
	v.valid = true
	if source == "" {
		// Deliberately permissive: the empty string is a trivially
		// valid 0.0.0.
		return
	}
	if source[0] == 'v' || source[0] == 'V' {
		source = source[1:]
	}

	kind := fragMajor
	start := 0
	for i := 0; i < len(source); i++ {
		next, ok := transition(kind, source[i])
		if !ok {
			continue
		}
		v.setFragment(kind, source[start:i])
		kind = next
		start = i + 1
	}
	v.setFragment(kind, source[start:])
}

// setFragment validates a closed fragment and stores it in the field for
// kind. Numeric fragments that fail validation or conversion leave the
// field at zero; prerelease and build text is stored even when invalid.
func (v *Version) setFragment(kind fragmentKind, text string) {
	if !validFragment(kind, text) {
		v.valid = false
	}
	switch kind {
	case fragMajor, fragMinor, fragPatch:
		n, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			// Empty fragment, stray non-digit or overflow: all
			// invalidate the version the same way.
			v.valid = false
			return
		}
		switch kind {
		case fragMajor:
			v.major = n
		case fragMinor:
			v.minor = n
		case fragPatch:
			v.patch = n
		}
	case fragPrerelease:
		v.prerelease = text
	case fragBuild:
		v.build = text
	}
}
