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
)

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two versions by precedence",
	Long:  "Print -1, 0 or 1 when A sorts below, equal to or above B.",
	Args:  cobra.ExactArgs(2),
	Run:   runCompare,
}

func init() {
	root.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) {
	a := parseArg(args[0])
	b := parseArg(args[1])
	fmt.Println(a.Compare(b))
}
