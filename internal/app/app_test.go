package app

import (
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/runner"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestVersionString(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		commit   string
		date     string
		expected string
	}{
		{"version only", "1.0.0", "", "", "1.0.0 built with: "},
		{"short commit", "1.0.0", "abc", "", "1.0.0 commit: abc built with: "},
		{"long commit", "dev", "0123456789abcdef", "2026-01-01", "dev commit: 0123456 built at: 2026-01-01 built with: "},
		{"unknown date", "dev", "", "unknown", "dev built with: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := VersionString(tt.version, tt.commit, tt.date)
			assert.True(t, strings.HasPrefix(got, tt.expected), got)
		})
	}
}

func TestPrint(t *testing.T) {
	logger := log.NewTestLogger(t)
	opts := options.Program{
		Parameters: options.Parameters{Input: "pong.ch8"},
		Flags:      options.Flags{Unknown: "halt"},
	}

	PrintBanner(logger, opts, "dev", "0123456789", "2026-01-01")
	PrintInfo(logger, opts, 246)
	PrintResult(logger, runner.Result{Reason: runner.ReasonHaltLoop, Status: machine.StatusRunning, Cycles: 12})
}
