// Package executor dispatches assembled invocations to the external
// non-interactive executor process.
package executor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/Dicklesworthstone/sam/internal/config"
	"github.com/Dicklesworthstone/sam/internal/subagent"
)

// Runner launches the configured executor command. The command string from
// the config is split on whitespace; no shell is involved.
type Runner struct {
	command []string
}

// New builds a Runner from the merged config.
func New(cfg *config.Config) (*Runner, error) {
	fields := strings.Fields(cfg.Executor.Command)
	if len(fields) == 0 {
		return nil, errors.New("executor.command is not configured")
	}
	return &Runner{command: fields}, nil
}

// Command returns the executor command line for display.
func (r *Runner) Command() string {
	return strings.Join(r.command, " ")
}

// argv builds the final executor argument vector. The override sequence is
// expanded into repeated `-c` flags ahead of the assembled tokens, in the
// exact order it was constructed; reordering or coalescing entries here
// would break the positional last-wins precedence the merge relies on.
func (r *Runner) argv(inv subagent.Invocation) []string {
	args := make([]string, 0, len(r.command)-1+2*len(inv.Overrides)+len(inv.Args))
	args = append(args, r.command[1:]...)
	for _, o := range inv.Overrides {
		args = append(args, "-c", o)
	}
	args = append(args, inv.Args...)
	return args
}

// Dispatch hands the invocation to the executor and waits for it to finish.
// The executor owns the terminal for the duration of the run; its outcome,
// including a non-zero exit, is returned unchanged.
func (r *Runner) Dispatch(ctx context.Context, inv subagent.Invocation) error {
	cmd := exec.CommandContext(ctx, r.command[0], r.argv(inv)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("executor %q not found in PATH: %w", r.command[0], err)
	}
	return err
}

// ExitCode extracts the executor's exit code from a Dispatch error.
// Returns 1 for errors that never reached the executor (e.g. command not
// found) and 0 for nil.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
