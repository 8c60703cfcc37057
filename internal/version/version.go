// Package version reports build provenance for the emulator binary: the
// ldflags-injected release identifiers plus whatever the Go toolchain's
// own module/VCS metadata adds at build time.
package version

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/snes-emu/snes/internal/cartridge"
)

// Set via -ldflags "-X github.com/snes-emu/snes/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	BuildUser = "unknown"
)

// Info is a snapshot of everything known about how this binary was built.
// Collect fills in the ldflags vars and fills any gaps from the Go
// toolchain's own embedded build metadata.
type Info struct {
	Version    string
	GitCommit  string
	BuildTime  string
	BuildUser  string
	GoVersion  string
	Platform   string
	Arch       string
	CGOEnabled bool
}

// Collect gathers the current build's provenance. VCS settings embedded
// by the Go toolchain (module-aware builds since Go 1.18) fill in commit
// and timestamp only where the ldflags vars were left at their defaults.
func Collect() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildTime: BuildTime,
		BuildUser: BuildUser,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = setting.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = setting.Value
			}
		case "CGO_ENABLED":
			info.CGOEnabled = setting.Value == "1"
		}
	}
	return info
}

// shortCommit trims a VCS revision down to the 7-character form people
// actually read; revisions shorter than that are returned unchanged.
func shortCommit(commit string) string {
	if len(commit) >= 7 {
		return commit[:7]
	}
	return commit
}

// Summary is the one-line identifier suitable for a window title: the
// release version, or "dev-<commit>" when no release version was baked
// in but a VCS revision is available.
func (info Info) Summary() string {
	if info.Version != "dev" {
		return info.Version
	}
	if info.GitCommit == "unknown" {
		return info.Version
	}
	return fmt.Sprintf("dev-%s", shortCommit(info.GitCommit))
}

// String renders a single-line, human-readable build description.
func (info Info) String() string {
	s := fmt.Sprintf("snes version %s", info.Version)
	if info.GitCommit != "unknown" {
		s += fmt.Sprintf(" (commit %s)", shortCommit(info.GitCommit))
	}
	if parsed, err := time.Parse(time.RFC3339, info.BuildTime); err == nil {
		s += fmt.Sprintf(" built on %s", parsed.Format("2006-01-02 15:04:05"))
	} else if info.BuildTime != "unknown" {
		s += fmt.Sprintf(" built on %s", info.BuildTime)
	}
	s += fmt.Sprintf(" with %s for %s/%s", info.GoVersion, info.Platform, info.Arch)
	if info.BuildUser != "unknown" {
		s += fmt.Sprintf(" by %s", info.BuildUser)
	}
	return s
}

// Fprint writes a multi-line build report to w, including the cartridge
// mapping modes this core can load.
func (info Info) Fprint(w io.Writer) {
	fmt.Fprintf(w, "snes - SNES emulator core\n")
	fmt.Fprintf(w, "Version:      %s\n", info.Version)
	fmt.Fprintf(w, "Git Commit:   %s\n", info.GitCommit)
	fmt.Fprintf(w, "Build Time:   %s\n", info.BuildTime)
	fmt.Fprintf(w, "Build User:   %s\n", info.BuildUser)
	fmt.Fprintf(w, "Go Version:   %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform:     %s/%s\n", info.Platform, info.Arch)
	fmt.Fprintf(w, "CGO Enabled:  %t\n", info.CGOEnabled)
	fmt.Fprintf(w, "Cartridges:   %s, %s\n", cartridge.LoROM, cartridge.HiROM)
}

// GetVersion returns the window-title-friendly version summary for the
// currently running binary.
func GetVersion() string { return Collect().Summary() }

// PrintBuildInfo writes the full build report for the currently running
// binary to stdout.
func PrintBuildInfo() { Collect().Fprint(os.Stdout) }
