package instance

import (
	"context"
	"errors"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	pid        int
	executable string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 1 }
func (p fakeProcess) Executable() string { return p.executable }

func listOf(processes ...ps.Process) ProcessLister {
	return func() ([]ps.Process, error) { return processes, nil }
}

// TestGuard_Check reports other copies of the executable and ignores itself.
func TestGuard_Check(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		list    ProcessLister
		wantErr error
	}{
		{
			name: "alone",
			list: listOf(fakeProcess{pid: 10, executable: "shocker-link"}, fakeProcess{pid: 11, executable: "bash"}),
		},
		{
			name:    "another copy",
			list:    listOf(fakeProcess{pid: 10, executable: "shocker-link"}, fakeProcess{pid: 12, executable: "Shocker-Link"}),
			wantErr: ErrAlreadyRunning,
		},
		{
			name: "listing fails",
			list: func() ([]ps.Process, error) { return nil, errors.New("denied") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			g := &Guard{executable: "shocker-link", pid: 10, list: tt.list}
			err := g.Check(context.Background())

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.name == "listing fails":
				require.Error(t, err)
				require.NotErrorIs(t, err, ErrAlreadyRunning)
			default:
				require.NoError(t, err)
			}
		})
	}
}

// TestNewGuard uses the current process identity.
func TestNewGuard(t *testing.T) {
	t.Parallel()

	g := NewGuard()
	require.NotEmpty(t, g.executable)
	require.Positive(t, g.pid)
	require.NoError(t, g.Check(context.Background()))
}
