// Package cliui prints the run banner and live statistics to stdout in a
// plain box-drawing style, using straightforward fmt.Printf reporting
// rather than a terminal UI library.
package cliui

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/blitzforge/blitzforge/internal/engine"
)

// PrintBanner prints the startup box and hardware/capability summary.
func PrintBanner(strategy string, workers int) {
	fmt.Printf("╔════════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║  BlitzForge - Password Recovery Engine                     ║\n")
	fmt.Printf("╚════════════════════════════════════════════════════════════╝\n\n")
	fmt.Printf("CPU Cores: %d | Worker Threads: %d\n", runtime.NumCPU(), workers)
	fmt.Printf("Strategy: %s\n", strategy)
	fmt.Printf("SHA-256: %s\n", sha256Acceleration())
	fmt.Printf("\n")
}

// sha256Acceleration reports whether the CPU exposes the instruction sets
// minio/sha256-simd uses to accelerate Sha256 digests.
func sha256Acceleration() string {
	switch {
	case cpu.X86.HasAVX2:
		return "Hardware Accelerated (AVX2)"
	case cpu.X86.HasAVX:
		return "Hardware Accelerated (AVX)"
	case cpu.X86.HasSSE41:
		return "Hardware Accelerated (SSE4.1)"
	case cpu.ARM64.HasSHA2:
		return "Hardware Accelerated (ARM64 SHA2)"
	default:
		return "Portable (no SIMD acceleration detected)"
	}
}

// PrintProgress prints one live-statistics line in "[Stats] ..." format.
func PrintProgress(stats engine.Statistics) {
	fmt.Printf("[Stats] Guesses: %d | Found: %d/%d | Rate: %.0f hashes/sec | Runtime: %.0fs\n",
		stats.GuessesTried, stats.TargetsFound, stats.TargetsTotal, stats.HashesPerSecond, stats.Elapsed())
}

// PrintMatch prints a single found match in "*** MATCH FOUND! ***" format.
func PrintMatch(targetID, username, password string) {
	fmt.Printf("\n*** MATCH FOUND! ***\nTarget: %s (%s)\nPassword: %s\n\n", targetID, username, password)
}

// PrintSummary prints the final run summary.
func PrintSummary(result engine.CrackingResult, totalTargets int) {
	fmt.Printf("════════════════════════════════════════════════════════════\n")
	fmt.Printf("Run complete: %d/%d targets recovered in %.2fs\n", len(result.Matches), totalTargets, result.TotalTime)
	fmt.Printf("Total guesses: %d | Average rate: %.0f hashes/sec\n",
		result.Statistics.GuessesTried, result.Statistics.HashesPerSecond)
	fmt.Printf("════════════════════════════════════════════════════════════\n")
}
