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

	"github.com/spf13/cobra"

	semver "github.com/contriboss/semver-go"
)

var sortCmd = &cobra.Command{
	Use:   "sort VERSION...",
	Short: "Sort versions into ascending precedence order",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSort,
}

func init() {
	root.AddCommand(sortCmd)
}

func runSort(cmd *cobra.Command, args []string) {
	versions := make([]semver.Version, len(args))
	for i, arg := range args {
		versions[i] = parseArg(arg)
	}

	semver.SortVersions(versions)

	for _, v := range versions {
		fmt.Println(v)
	}
}
