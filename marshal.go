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
	"encoding"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the canonical string
// form. encoding/json picks this up, so a Version marshals as a JSON string.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike Parse it
// rejects malformed input: silently decoding a best-effort version out of a
// document would mask typos in the document.
func (v *Version) UnmarshalText(text []byte) error {
	parsed := Parse(string(text))
	if !parsed.IsValid() {
		return fmt.Errorf("invalid semantic version %q", string(text))
	}
	*v = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler, emitting the canonical string form
// as a scalar node.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The node must be a scalar
// holding a valid semantic version string.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("semantic version must be a string: %w", err)
	}
	return v.UnmarshalText([]byte(raw))
}

// Verify interface compliance
var (
	_ encoding.TextMarshaler   = Version{}
	_ encoding.TextUnmarshaler = (*Version)(nil)
	_ yaml.Marshaler           = Version{}
	_ yaml.Unmarshaler         = (*Version)(nil)
)
