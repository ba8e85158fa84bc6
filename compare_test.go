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

package semver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	semver "github.com/contriboss/semver-go"
)

func TestCompareNumericTriple(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.2.3", "1.2.4", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.10.0", "1.9.0", 1},
		{"1", "1.0.0", 0},
		{"1.2", "1.2.0", 0},
		{"v1.2.3", "1.2.3", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a := semver.Parse(tt.a)
			b := semver.Parse(tt.b)

			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

// TestCompareOrderingChain pins the canonical SemVer precedence chain as a
// strict total order: every version sorts below every later one.
func TestCompareOrderingChain(t *testing.T) {
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i, lower := range chain {
		a := semver.Parse(lower)
		assert.Equal(t, 0, a.Compare(semver.Parse(lower)), "%s should equal itself", lower)

		for _, higher := range chain[i+1:] {
			b := semver.Parse(higher)
			assert.Equal(t, -1, a.Compare(b), "%s should sort below %s", lower, higher)
			assert.Equal(t, 1, b.Compare(a), "%s should sort above %s", higher, lower)
		}
	}
}

// TestCompareEmptinessAsymmetry pins both directions of the emptiness rule:
// a prerelease sorts a version below its bare counterpart, while build
// metadata sorts it above. The build direction is a deliberate deviation
// from public SemVer, which ignores build metadata for precedence.
func TestCompareEmptinessAsymmetry(t *testing.T) {
	alpha := semver.Parse("1.0.0-alpha")
	release := semver.Parse("1.0.0")
	assert.Equal(t, -1, alpha.Compare(release))
	assert.Equal(t, 1, release.Compare(alpha))

	build := semver.Parse("1.0.0+build")
	assert.Equal(t, 1, build.Compare(release))
	assert.Equal(t, -1, release.Compare(build))

	rc := semver.Parse("1.0.0-rc.1")
	rcBuild := semver.Parse("1.0.0-rc.1+build.5")
	assert.Equal(t, 1, rcBuild.Compare(rc))
	assert.Equal(t, -1, rc.Compare(rcBuild))
}

func TestCompareIdentifierPairs(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		// Numeric identifiers compare as integers, not text.
		{"1.0.0-beta.2", "1.0.0-beta.11", -1},
		{"1.0.0+build.2", "1.0.0+build.11", -1},
		// Numerically equal identifiers fall through to text order.
		{"1.0.0-01", "1.0.0-1", -1},
		// Mixed numeric/alphanumeric pairs compare as text; digits
		// sort below letters in ASCII.
		{"1.0.0-1", "1.0.0-beta", -1},
		// A sequence that is a prefix of a longer one sorts below it.
		{"1.0.0-alpha", "1.0.0-alpha.1", -1},
		{"1.0.0+build", "1.0.0+build.5", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha.1", 0},
		{"1.0.0-rc.1+build.5", "1.0.0-rc.1+build.5", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+" vs "+tt.b, func(t *testing.T) {
			a := semver.Parse(tt.a)
			b := semver.Parse(tt.b)

			assert.Equal(t, tt.want, a.Compare(b))
			assert.Equal(t, -tt.want, b.Compare(a))
		})
	}
}

func TestCompareString(t *testing.T) {
	v := semver.Parse("1.2.3")

	assert.Equal(t, 0, v.CompareString("1.2.3"))
	assert.Equal(t, 0, v.CompareString("v1.2.3"))
	assert.Equal(t, -1, v.CompareString("1.2.4"))
	assert.Equal(t, 1, v.CompareString("1.2.3-alpha"))
}

func TestEqual(t *testing.T) {
	assert.True(t, semver.Parse("1.2.3").Equal(semver.New(1, 2, 3)))
	assert.True(t, semver.Parse("v1.2.3").Equal(semver.Parse("1.2.3")))
	assert.False(t, semver.Parse("1.2.3").Equal(semver.Parse("1.2.3-alpha")))
	assert.False(t, semver.Parse("1.2.3").Equal(semver.Parse("1.2.3+build")))
}

// TestEqualIgnoresValidity pins that the validity flag is excluded from
// equality: two differently malformed inputs with identical best-effort
// fields are equal.
func TestEqualIgnoresValidity(t *testing.T) {
	a := semver.Parse("1.x.3")
	b := semver.Parse("1.y.3")

	assert.False(t, a.IsValid())
	assert.False(t, b.IsValid())
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))

	// An invalid parse also equals a trusted construction with the same
	// fields.
	assert.True(t, a.Equal(semver.New(1, 0, 3)))
}

func TestEqualString(t *testing.T) {
	v := semver.Parse("1.2.3-rc.1")

	assert.True(t, v.EqualString("1.2.3-rc.1"))
	assert.True(t, v.EqualString("v1.2.3-rc.1"))
	assert.False(t, v.EqualString("1.2.3"))
}

func TestSortVersions(t *testing.T) {
	versions := []semver.Version{
		semver.Parse("1.0.0"),
		semver.Parse("1.0.0-beta.11"),
		semver.Parse("0.9.0"),
		semver.Parse("1.0.0-alpha"),
		semver.Parse("2.0.0"),
		semver.Parse("1.0.0-beta.2"),
	}

	semver.SortVersions(versions)

	got := make([]string, len(versions))
	for i, v := range versions {
		got[i] = v.String()
	}

	assert.Equal(t, []string{
		"0.9.0",
		"1.0.0-alpha",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0",
		"2.0.0",
	}, got)
}
