// Package shell provides the bundler runner adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BundlerRunner = (*Runner)(nil)

// Runner implements ports.BundlerRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner streaming command output to logger.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes command in dir once for the manifest. Every "{config}" in the
// arguments is replaced with the manifest path; without a placeholder the path
// is appended as the last argument. Output is streamed line by line to the
// logger and, when ctx carries a vertex, to the vertex as well.
func (r *Runner) Run(ctx context.Context, dir string, command []string, manifest domain.EmittedManifest) error {
	if len(command) == 0 {
		return nil
	}

	args := expand(command, manifest.Path)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LIBTARGET_ENTRY_KEY="+manifest.EntryKey)

	stdout := &logWriter{emit: r.logger.Info}
	stderr := &logWriter{emit: func(line string) { r.logger.Warn(line) }}
	defer stdout.Flush()
	defer stderr.Flush()

	cmd.Stdout = stdout
	cmd.Stderr = stderr
	if v, ok := ports.VertexFromContext(ctx); ok {
		cmd.Stdout = io.MultiWriter(stdout, v.Stdout())
		cmd.Stderr = io.MultiWriter(stderr, v.Stderr())
	}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.Wrap(domain.ErrBundlerFailed, err.Error())
		err = zerr.With(err, "entry_key", manifest.EntryKey)
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

func expand(command []string, manifestPath string) []string {
	args := make([]string, 0, len(command)+1)
	replaced := false
	for _, arg := range command {
		if strings.Contains(arg, domain.ConfigPlaceholder) {
			arg = strings.ReplaceAll(arg, domain.ConfigPlaceholder, manifestPath)
			replaced = true
		}
		args = append(args, arg)
	}
	if !replaced {
		args = append(args, manifestPath)
	}
	return args
}

// logWriter buffers partial writes and emits complete lines.
type logWriter struct {
	emit func(string)
	buf  []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := strings.IndexByte(string(w.buf), '\n')
		if i < 0 {
			break
		}
		w.emit(strings.TrimSuffix(string(w.buf[:i]), "\r"))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush emits any trailing partial line.
func (w *logWriter) Flush() {
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}
