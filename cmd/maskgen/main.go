// Copyright 2025 go-vecmath Authors
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

// Command maskgen writes the table of named shuffle masks used by the vector
// package.
//
// Usage:
//
//	maskgen --output vector/mask_table.go --package vector
//	maskgen --output vector/mask_table.go --check
//
// Or via go:generate from the vector package:
//
//	//go:generate go run ../cmd/maskgen --output mask_table.go --package vector
//
// With --check nothing is written; the command fails if the file on disk
// differs from what would be generated.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newCommand() *cobra.Command {
	var (
		output  string
		pkgName string
		check   bool
	)
	cmd := &cobra.Command{
		Use:           "maskgen [--output file] [--package name] [--check]",
		Short:         "Generate the named shuffle mask constants",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := Generate(output, pkgName)
			if err != nil {
				return err
			}
			if check {
				if err := Check(output, src); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", output)
				return nil
			}
			if err := os.WriteFile(output, src, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Successfully generated %d masks in %s\n", maskCount, output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "mask_table.go", "output file")
	cmd.Flags().StringVarP(&pkgName, "package", "p", "vector", "package name of the generated file")
	cmd.Flags().BoolVar(&check, "check", false, "verify the output file is up to date instead of writing it")
	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
