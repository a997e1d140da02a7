package cmd

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/streambinder/ytfetch/downloader"
	"github.com/streambinder/ytfetch/sys"
	syscmd "github.com/streambinder/ytfetch/sys/cmd"
)

// 128 + SIGINT, as shells report it
const exitInterrupted = 130

// report prints the outcome of a run and returns the exit code
func report(w io.Writer, err error, packages []string) int {
	if err == nil {
		return 0
	}

	var (
		red        = color.New(color.FgRed)
		missing    *syscmd.MissingDependencyError
		invocation *downloader.InvocationError
	)
	switch {
	case errors.Is(err, sys.ErrCancelled):
		red.Fprintf(w, "\n\nCancelled by user\n")
		return 0
	case errors.Is(err, sys.ErrInterrupted):
		red.Fprintf(w, "\nInterrupted by user, download incomplete\n")
		return exitInterrupted
	case errors.As(err, &missing):
		red.Fprintf(w, "Missing dependencies: %s\n", strings.Join(missing.Names, ", "))
		fmt.Fprintf(w, "\nInstall them with:\n  %s\n", syscmd.InstallHint(runtime.GOOS, packages...))
	case errors.As(err, &invocation) && invocation.Op == downloader.OpDownload:
		red.Fprintf(w, "\nDownload failed: %s\n", invocation.Err)
	case errors.As(err, &invocation):
		red.Fprintf(w, "Failed to %s: %s\n", invocation.Op, invocation.Err)
	default:
		red.Fprintf(w, "Error: %s\n", err)
		fmt.Fprintln(w, "Run 'ytfetch --help' for usage.")
	}
	return 1
}
