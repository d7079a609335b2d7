package curve

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oshokin/shocker-link/internal/config"
	domain "github.com/oshokin/shocker-link/internal/domain/curve"
	"github.com/oshokin/shocker-link/internal/domain/editor"
)

// Repository defines persistence operations for the editable state.
type Repository interface {
	Load(ctx context.Context) (editor.State, error)
	Save(ctx context.Context, state editor.State) error
}

// FileRepository persists the editable state to a JSON file on disk.
type FileRepository struct {
	// path is the filesystem location of the JSON file.
	path string
	// mu protects concurrent access to the file and lastWritten.
	mu sync.Mutex
	// lastWritten holds the bytes of the latest Save, so the watcher can
	// ignore its own writes.
	lastWritten []byte
}

var (
	// ErrNotFound is returned when the state file does not exist yet.
	ErrNotFound = errors.New("curve state not found")
	// ErrMalformed is returned when the file cannot be decoded.
	ErrMalformed = errors.New("malformed curve state")
)

// document is the on-disk layout. Pointers tell missing keys from zero values.
type document struct {
	CurvePoints [][]float64 `json:"curve_points,omitempty"`
	MinDuration *float64    `json:"min_duration,omitempty"`
	MaxDuration *float64    `json:"max_duration,omitempty"`
	UIMinX      *float64    `json:"ui_min_x,omitempty"`
	UIMaxX      *float64    `json:"ui_max_x,omitempty"`
	// Older files used these names for the view bounds.
	CurveMinX *float64 `json:"curve_min_x,omitempty"`
	CurveMaxX *float64 `json:"curve_max_x,omitempty"`
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the file location.
func (r *FileRepository) Path() string {
	return r.path
}

// Load reads the state from disk. Keys missing from the file keep the
// built-in defaults and every value is clamped into its allowed range.
func (r *FileRepository) Load(_ context.Context) (editor.State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, _, err := r.read()

	return state, err
}

// Save writes the state to disk, rounding points to two decimals and
// durations to a tenth of a second.
func (r *FileRepository) Save(_ context.Context, state editor.State) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(toDocument(state))
	if err != nil {
		return fmt.Errorf("encode curve state: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write curve state file: %w", err)
	}

	r.lastWritten = data

	return nil
}

// read loads and decodes the file. The caller holds mu.
func (r *FileRepository) read() (editor.State, []byte, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return editor.State{}, nil, ErrNotFound
		}

		return editor.State{}, nil, fmt.Errorf("read curve state file: %w", err)
	}

	var doc document
	if err = json.Unmarshal(contents, &doc); err != nil {
		return editor.State{}, contents, fmt.Errorf("decode curve state file: %w: %w", ErrMalformed, err)
	}

	state, err := fromDocument(doc)
	if err != nil {
		return editor.State{}, contents, err
	}

	return state, contents, nil
}

// fromDocument overlays the decoded keys on the default state.
func fromDocument(doc document) (editor.State, error) {
	state := editor.Default()

	if doc.CurvePoints != nil {
		if len(doc.CurvePoints) != len(state.Points) {
			return editor.State{}, fmt.Errorf("%w: want %d curve points, got %d",
				ErrMalformed, len(state.Points), len(doc.CurvePoints))
		}

		for i, pair := range doc.CurvePoints {
			if len(pair) != 2 {
				return editor.State{}, fmt.Errorf("%w: curve point %d has %d coordinates", ErrMalformed, i, len(pair))
			}

			state.Points[i] = domain.Point{Intensity: pair[0], Weight: pair[1]}
		}
	}

	if doc.MinDuration != nil {
		state.MinDuration = seconds(*doc.MinDuration)
	}

	if doc.MaxDuration != nil {
		state.MaxDuration = seconds(*doc.MaxDuration)
	}

	if v := firstOf(doc.UIMinX, doc.CurveMinX); v != nil {
		state.ViewMin = int(*v)
	}

	if v := firstOf(doc.UIMaxX, doc.CurveMaxX); v != nil {
		state.ViewMax = int(*v)
	}

	return state.Normalize(), nil
}

// toDocument renders state in the on-disk layout.
func toDocument(state editor.State) document {
	points := make([][]float64, 0, len(state.Points))
	for _, p := range state.Points {
		points = append(points, []float64{round(p.Intensity, 2), round(p.Weight, 2)})
	}

	var (
		minDuration = round(state.MinDuration.Seconds(), 1)
		maxDuration = round(state.MaxDuration.Seconds(), 1)
		viewMin     = float64(state.ViewMin)
		viewMax     = float64(state.ViewMax)
	)

	return document{
		CurvePoints: points,
		MinDuration: &minDuration,
		MaxDuration: &maxDuration,
		UIMinX:      &viewMin,
		UIMaxX:      &viewMax,
	}
}

func firstOf(values ...*float64) *float64 {
	for _, v := range values {
		if v != nil {
			return v
		}
	}

	return nil
}

func seconds(v float64) time.Duration {
	return time.Duration(math.Round(v * float64(time.Second)))
}

func round(v float64, decimals int) float64 {
	scale := math.Pow10(decimals)

	return math.Round(v*scale) / scale
}

// isOwnWrite reports whether contents are exactly what Save wrote last.
func (r *FileRepository) isOwnWrite(contents []byte) bool {
	return r.lastWritten != nil && bytes.Equal(contents, r.lastWritten)
}
