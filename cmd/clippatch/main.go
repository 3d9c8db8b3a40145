// Copyright 2026 Kerem Sonmez
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
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/keremsonmez/clippatch/cmd/clippatch/commands"
	"github.com/keremsonmez/clippatch/cmd/clippatch/opts"
)

func main() {
	ctx := context.Background()

	// Shared options, filled in once flags are parsed
	rootOpts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "clippatch",
		Short: "A tool for patching metadata patterns out of GTA V clip files",
		Long: `clippatch scans the printable metadata inside GTA V .clip files for
configured patterns (mission names, player tags) and overwrites every
match, producing patched copies, a zip archive, or in-place rewrites.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags are parsed by now; wire the debug channel and config
			zlog := setupLogging()
			cmd.SetContext(zlog.WithContext(cmd.Context()))
			return setupOpts(cmd, rootOpts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(
		commands.NewPatchCmd(rootOpts),
		commands.NewScanCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ %s\n", color.New(color.FgRed).Sprint(err))
		os.Exit(1)
	}
}
