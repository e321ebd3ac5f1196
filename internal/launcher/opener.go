// Package launcher executes result activations against the desktop.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// TargetPlaceholder in a browser command is replaced by the URL or path to open.
// Commands without it get the target appended as the last argument.
const TargetPlaceholder = "{target}"

// ErrEmptyCommand is returned when no opener command is configured.
var ErrEmptyCommand = errors.New("opener command is empty")

// Opener hands a URL or local path to an external program.
type Opener interface {
	Open(ctx context.Context, target string) error
}

// ShellOpener starts a configured command (xdg-open, a browser binary, ...)
// for each target without waiting for it to exit.
type ShellOpener struct {
	name string
	args []string
}

// NewShellOpener parses a command line such as "firefox --new-tab {target}".
func NewShellOpener(command string) (*ShellOpener, error) {
	parts, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse opener command: %w", err)
	}
	if len(parts) == 0 {
		return nil, ErrEmptyCommand
	}
	return &ShellOpener{name: parts[0], args: parts[1:]}, nil
}

// Command returns the program and arguments used to open target.
func (o *ShellOpener) Command(target string) (string, []string) {
	args := make([]string, 0, len(o.args)+1)
	substituted := false
	for _, a := range o.args {
		if strings.Contains(a, TargetPlaceholder) {
			a = strings.ReplaceAll(a, TargetPlaceholder, target)
			substituted = true
		}
		args = append(args, a)
	}
	if !substituted {
		args = append(args, target)
	}
	return o.name, args
}

// Open starts the command for target. The child is reaped in the background.
func (o *ShellOpener) Open(ctx context.Context, target string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name, args := o.Command(target)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("opener exited with error", "command", name, "target", target, "error", err)
		}
	}()

	return nil
}
