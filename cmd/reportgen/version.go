package main

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/reportgen/internal/model"
)

// Set at build time via -ldflags "-X main.version=...".
var (
	version = ""
	commit  = ""
	date    = ""
)

// buildInfo describes the running binary.
type buildInfo struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// readBuildInfo resolves each field from ldflags first, then from the
// module build info, then falls back to a placeholder.
func readBuildInfo() buildInfo {
	info := buildInfo{
		Version:   version,
		Commit:    commit,
		Date:      date,
		GoVersion: runtime.Version(),
	}

	var settings map[string]string
	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.Version == "" {
			info.Version = bi.Main.Version
		}
		settings = make(map[string]string, len(bi.Settings))
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
	}

	if info.Commit == "" {
		info.Commit = settings["vcs.revision"]
		if len(info.Commit) > 7 {
			info.Commit = info.Commit[:7]
		}
	}
	if info.Date == "" {
		info.Date = settings["vcs.time"]
	}

	if info.Version == "" {
		info.Version = "(devel)"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return info
}

// getVersion returns the version shown by --version.
func getVersion() string {
	return readBuildInfo().Version
}

// write prints the version block.
func (b buildInfo) write(w io.Writer) {
	types := make([]string, len(model.AllReportTypes))
	for i, t := range model.AllReportTypes {
		types[i] = t.String()
	}

	fmt.Fprintf(w, "reportgen version %s\n", b.Version)
	fmt.Fprintf(w, "  commit:  %s\n", b.Commit)
	fmt.Fprintf(w, "  built:   %s\n", b.Date)
	fmt.Fprintf(w, "  go:      %s\n", b.GoVersion)
	fmt.Fprintf(w, "  reports: %s\n", strings.Join(types, ", "))
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, build date and supported report types of reportgen.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			readBuildInfo().write(cmd.OutOrStdout())
		},
	}
}
