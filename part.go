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

// Part identifies one of the five parts of a semantic version,
// ordered from most to least significant.
type Part int

const (
	// PartMajor is the major version number
	PartMajor Part = iota
	// PartMinor is the minor version number
	PartMinor
	// PartPatch is the patch version number
	PartPatch
	// PartPrerelease is the dot-separated prerelease identifier sequence
	PartPrerelease
	// PartBuild is the dot-separated build metadata identifier sequence
	PartBuild
)

// String returns the lowercase name of the part.
func (p Part) String() string {
	switch p {
	case PartMajor:
		return "major"
	case PartMinor:
		return "minor"
	case PartPatch:
		return "patch"
	case PartPrerelease:
		return "prerelease"
	case PartBuild:
		return "build"
	default:
		return "unknown"
	}
}
