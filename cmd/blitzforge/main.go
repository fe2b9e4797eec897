// Command blitzforge recovers passwords from hash targets by searching a
// candidate keyspace generated from a dictionary, a mask pattern, or a raw
// character-set brute force. Ported from original_source/src/main.rs's clap
// Cli/Commands, using cobra for subcommands and viper for configuration
// (env var prefix BLITZFORGE_) the way other_examples/.../dogitect-genpass
// wires its single root command.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "blitzforge",
		Short: "Password recovery and hash pre-image search engine",
	}

	viper.SetEnvPrefix("blitzforge")
	viper.AutomaticEnv()

	root.AddCommand(newGenerateTargetsCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newReportCmd())
	root.AddCommand(newSelftestCmd())

	return root
}
