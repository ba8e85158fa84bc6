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

var validateCmd = &cobra.Command{
	Use:   "validate VERSION...",
	Short: "Check versions and print their canonical form",
	Long:  "Print the canonical form of each valid version. Exits non-zero if any argument is invalid.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runValidate,
}

func init() {
	root.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) {
	ok := true
	for _, arg := range args {
		v := semver.Parse(arg)
		if !v.IsValid() {
			fmt.Fprintf(os.Stderr, "invalid: %s\n", arg)
			ok = false
			continue
		}
		fmt.Println(v)
	}
	if !ok {
		os.Exit(1)
	}
}
