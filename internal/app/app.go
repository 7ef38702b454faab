// Package app provides the main application helpers for the virtual machine runner.
package app

import (
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("retrochip8", log.String("version", VersionString(version, commit, date)))
}

// VersionString returns the build information with an abbreviated commit hash.
func VersionString(version, commit, date string) string {
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if strings.Contains(date, "unknown") {
		date = ""
	}
	return buildinfo.Version(version, commit, date)
}

// PrintInfo prints the information about the program that is about to run.
func PrintInfo(logger *log.Logger, opts options.Program, size int) {
	if opts.Quiet {
		return
	}

	logger.Info("Running CHIP-8 ROM",
		log.String("file", opts.Input),
		log.Int("size", size),
		log.String("unknown_opcodes", opts.Unknown),
	)
	if opts.Cycles == 0 {
		logger.Warn("No cycle limit set, the program runs until it halts or is interrupted")
	}
}

// PrintResult prints the summary of a finished run.
func PrintResult(logger *log.Logger, result runner.Result) {
	logger.Info("Run finished",
		log.String("reason", result.Reason),
		log.Stringer("status", result.Status),
		log.Uint64("cycles", result.Cycles),
		log.Uint64("timer_ticks", result.Ticks),
		log.Int("addresses", result.Addresses),
		log.Int("lit_pixels", result.LitPixels),
	)
}
