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

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	semver "github.com/contriboss/semver-go"
)

var root = cobra.Command{
	Use:   "semver",
	Short: "Work with semantic version strings",
	Long:  "Parse, validate, compare, sort and increment semantic version strings.",
}

func main() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseArg parses a version argument strictly, exiting with an error when
// the argument is not a valid semantic version.
func parseArg(raw string) semver.Version {
	v := semver.Parse(raw)
	if !v.IsValid() {
		fmt.Fprintf(os.Stderr, "invalid semantic version %q\n", raw)
		os.Exit(1)
	}
	return v
}
