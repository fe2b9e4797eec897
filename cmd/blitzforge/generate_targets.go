package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/blitzforge/blitzforge/internal/hashdispatch"
	"github.com/blitzforge/blitzforge/internal/target"
	"github.com/blitzforge/blitzforge/internal/tools"
)

// newGenerateTargetsCmd ports original_source/src/cli/commands.rs's
// generate_targets: read known passwords, hash each under every requested
// algorithm, and write a targets manifest.
func newGenerateTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate-targets",
		Short: "Synthesize a demo targets manifest from known passwords",
		RunE:  runGenerateTargets,
	}

	cmd.Flags().StringP("out", "o", "targets.json", "Output manifest path")
	cmd.Flags().StringP("passwords", "p", "", "Path to a newline-delimited password list")
	cmd.Flags().StringP("algorithms", "a", "fastmix,md5,sha1,sha256,md4", "Comma-separated algorithm list")
	cmd.MarkFlagRequired("passwords")
	viper.BindPFlags(cmd.Flags())

	return cmd
}

func runGenerateTargets(cmd *cobra.Command, args []string) error {
	out := viper.GetString("out")
	passwordsPath := viper.GetString("passwords")
	algorithmsCSV := viper.GetString("algorithms")

	fmt.Println("Generating demo targets...")

	var algorithms []hashdispatch.Algorithm
	for _, tag := range strings.Split(algorithmsCSV, ",") {
		algo, err := hashdispatch.ParseAlgorithm(tag)
		if err != nil {
			continue
		}
		algorithms = append(algorithms, algo)
	}
	if len(algorithms) == 0 {
		return fmt.Errorf("no valid algorithms specified")
	}

	passwords, err := readNonBlankLines(passwordsPath)
	if err != nil {
		return fmt.Errorf("reading passwords file %s: %w", passwordsPath, err)
	}
	if len(passwords) == 0 {
		return fmt.Errorf("no passwords found in %s", passwordsPath)
	}

	targets, err := tools.GenerateDemoTargets(context.Background(), passwords, algorithms)
	if err != nil {
		return err
	}

	if err := target.SaveManifest(out, targets); err != nil {
		return err
	}

	fmt.Printf("Generated %d targets -> %s\n", len(targets), out)
	fmt.Printf("   Algorithms: %s\n", algorithmsCSV)
	fmt.Printf("   Passwords: %d\n", len(passwords))
	return nil
}

func readNonBlankLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
