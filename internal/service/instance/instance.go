package instance

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/oshokin/shocker-link/internal/logger"
)

// ErrAlreadyRunning is returned when another instance is alive.
var ErrAlreadyRunning = errors.New("another instance is already running")

// ProcessLister returns a snapshot of running processes.
type ProcessLister func() ([]ps.Process, error)

// Guard detects other running copies of an executable.
type Guard struct {
	executable string
	pid        int
	list       ProcessLister
}

// NewGuard creates a guard for the current executable.
func NewGuard() *Guard {
	name := filepath.Base(os.Args[0])
	if exe, err := os.Executable(); err == nil {
		name = filepath.Base(exe)
	}

	return &Guard{
		executable: name,
		pid:        os.Getpid(),
		list:       ps.Processes,
	}
}

// Check returns ErrAlreadyRunning when a process with the same executable
// name and a different PID exists.
func (g *Guard) Check(ctx context.Context) error {
	processList, err := g.list()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	for _, process := range processList {
		if process.Pid() == g.pid {
			continue
		}

		if !strings.EqualFold(process.Executable(), g.executable) {
			continue
		}

		logger.WarnKV(ctx, "Found a running instance", "pid", process.Pid(), "executable", g.executable)

		return fmt.Errorf("%w (pid %d)", ErrAlreadyRunning, process.Pid())
	}

	return nil
}
