// Package process turns catalog entries into running programs.
package process

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/zhubert/launchpad/internal/catalog"
	"github.com/zhubert/launchpad/internal/errors"
	"github.com/zhubert/launchpad/internal/logger"
)

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// resolveTimeout bounds the PATH lookup so a stale network mount cannot
// stall the UI.
const resolveTimeout = 2 * time.Second

// Resolve builds the command for an entry without starting it.
func Resolve(ctx context.Context, it catalog.Item) (*exec.Cmd, error) {
	path, err := lookup(ctx, it.Command)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(path, it.Args...)
	if it.Dir != "" {
		cmd.Dir = it.Dir
	}
	cmd.Env = append(os.Environ(), "LAUNCHPAD_ENTRY="+it.Name)
	return cmd, nil
}

func lookup(ctx context.Context, command string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	type result struct {
		path string
		err  error
	}
	done := make(chan result, 1)
	go func() {
		p, err := lookPath(command)
		done <- result{p, err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return "", errors.CommandNotFound(command)
		}
		return r.path, nil
	case <-ctx.Done():
		return "", errors.LaunchFailed(command, ctx.Err())
	}
}

// StartDetached starts an entry in the background with no terminal attached.
// The child is reaped in a goroutine; its exit is only logged.
func StartDetached(ctx context.Context, it catalog.Item) (int, error) {
	log := logger.WithComponent("process")

	cmd, err := Resolve(ctx, it)
	if err != nil {
		return 0, err
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	detach(cmd)

	if err := cmd.Start(); err != nil {
		return 0, errors.LaunchFailed(it.Name, err)
	}
	pid := cmd.Process.Pid
	log.Info("started detached entry", "name", it.Name, "pid", pid)

	go func() {
		err := cmd.Wait()
		if err != nil {
			log.Warn("detached entry exited with error", "name", it.Name, "pid", pid, "error", err)
			return
		}
		log.Debug("detached entry exited", "name", it.Name, "pid", pid)
	}()
	return pid, nil
}
