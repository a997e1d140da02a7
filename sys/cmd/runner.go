package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/streambinder/ytfetch/sys"
)

const interruptGrace = 5 * time.Second

// Runner launches external commands, either capturing their output
// (probing) or attaching them to the parent standard streams
type Runner interface {
	Probe(ctx context.Context, name string, args ...string) error
	Attach(ctx context.Context, name string, args ...string) error
}

type Exec struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// System returns a Runner bound to the process standard streams
func System() Exec {
	return Exec{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

func (Exec) Probe(ctx context.Context, name string, args ...string) error {
	var (
		output bytes.Buffer
		cmd    = exec.CommandContext(ctx, name, args...)
	)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		if lines := strings.Split(strings.TrimSpace(output.String()), "\n"); len(lines[0]) > 0 {
			return fmt.Errorf("%w: %s", err, lines[len(lines)-1])
		}
		return err
	}
	return nil
}

func (e Exec) Attach(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...) // nolint:gosec
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = interruptGrace

	err := cmd.Run()
	if ctx.Err() != nil {
		return sys.ErrInterrupted
	}
	return err
}
