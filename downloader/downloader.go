package downloader

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/alessio/shellescape"
	"github.com/streambinder/ytfetch/sys"
	"github.com/streambinder/ytfetch/sys/cmd"
)

const (
	OpDownload    = "download"
	OpListFormats = "list formats"
	OpOutputDir   = "create output directory"
)

type InvocationError struct {
	Op  string
	Err error
}

func (err *InvocationError) Error() string {
	return err.Op + ": " + err.Err.Error()
}

func (err *InvocationError) Unwrap() error {
	return err.Err
}

type Downloader struct {
	binary string
	runner cmd.Runner
}

func New(binary string, runner cmd.Runner) *Downloader {
	return &Downloader{binary: binary, runner: runner}
}

// Download makes sure the output directory exists, then runs
// the downloader attached to the terminal until it exits
func (d *Downloader) Download(ctx context.Context, request Request) error {
	if err := os.MkdirAll(request.OutputDir, os.ModePerm); err != nil {
		return &InvocationError{Op: OpOutputDir, Err: err}
	}
	return d.attach(ctx, OpDownload, Arguments(request)...)
}

func (d *Downloader) ListFormats(ctx context.Context, url string) error {
	return d.attach(ctx, OpListFormats, flagListFormats, url)
}

func (d *Downloader) attach(ctx context.Context, op string, args ...string) error {
	log.Printf("[downloader]\t%s", shellescape.QuoteCommand(append([]string{d.binary}, args...)))
	if err := d.runner.Attach(ctx, d.binary, args...); err != nil {
		if errors.Is(err, sys.ErrInterrupted) {
			return err
		}
		return &InvocationError{Op: op, Err: err}
	}
	return nil
}
