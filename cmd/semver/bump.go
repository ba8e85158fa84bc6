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
)

var bumpCmd = &cobra.Command{
	Use:   "bump PART VERSION",
	Short: "Increment the major, minor or patch part",
	Long:  "Print VERSION with PART incremented, lower parts zeroed and prerelease/build metadata dropped.",
	Args:  cobra.ExactArgs(2),
	Run:   runBump,
}

func init() {
	root.AddCommand(bumpCmd)
}

func runBump(cmd *cobra.Command, args []string) {
	v := parseArg(args[1])

	switch args[0] {
	case "major":
		v = v.IncMajor()
	case "minor":
		v = v.IncMinor()
	case "patch":
		v = v.IncPatch()
	default:
		fmt.Fprintf(os.Stderr, "unknown part %q: want major, minor or patch\n", args[0])
		os.Exit(1)
	}

	fmt.Println(v)
}
