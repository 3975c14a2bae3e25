package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/numlab/internal/config"
	"github.com/san-kum/numlab/internal/experiment"
	"github.com/san-kum/numlab/internal/numeric"
)

const (
	metadataFile = "metadata.json"
	traceFile    = "trace.csv"
)

// ErrKindMismatch is returned when loading the wrong trace kind for a run.
var ErrKindMismatch = errors.New("storage: trace kind does not match run")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Kind string

const (
	KindRoot       Kind = "root"
	KindQuadrature Kind = "quadrature"
)

type RunMetadata struct {
	ID         string             `json:"id"`
	Kind       Kind               `json:"kind"`
	Method     string             `json:"method"`
	Function   string             `json:"function"`
	Timestamp  time.Time          `json:"timestamp"`
	Config     config.Config      `json:"config"`
	Value      float64            `json:"value"`
	Converged  bool               `json:"converged"`
	Status     string             `json:"status"`
	Steps      int                `json:"steps"`
	ElapsedSec float64            `json:"elapsed_sec"`
	Metrics    map[string]float64 `json:"metrics"`
}

// jsonFloat keeps NaN and ±Inf representable in metadata.json.
func jsonFloat(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func newRunID(method string, now time.Time) string {
	return fmt.Sprintf("%s_%d_%s", method, now.Unix(), uuid.NewString()[:8])
}

// Save writes the report under a fresh run id and returns the id.
func (s *Store) Save(report *experiment.Report) (string, error) {
	now := time.Now()
	runID := newRunID(report.Config.Method, now)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Method:     report.Config.Method,
		Function:   report.Function.Name,
		Timestamp:  now,
		Config:     report.Config,
		Value:      jsonFloat(report.Value()),
		Status:     report.Status(),
		ElapsedSec: report.Elapsed.Seconds(),
		Metrics:    make(map[string]float64, len(report.Metrics)),
	}
	for k, v := range report.Metrics {
		meta.Metrics[k] = jsonFloat(v)
	}
	if report.Root != nil {
		meta.Kind = KindRoot
		meta.Converged = report.Root.Converged
		meta.Steps = report.Root.Iterations
	} else {
		meta.Kind = KindQuadrature
		meta.Converged = !math.IsNaN(report.Quad.Value)
		meta.Steps = report.Quad.N
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, traceFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if report.Root != nil {
		err = writeRecords(w, report.Root.Records)
	} else {
		err = writeSegments(w, report.Quad.Segments)
	}
	if err != nil {
		return "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) readTrace(runID string, want Kind) ([][]string, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.Kind != want {
		return nil, fmt.Errorf("%w: %s is a %s run", ErrKindMismatch, runID, meta.Kind)
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, traceFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

// LoadRecords reads back the iteration trace of a root-finding run.
func (s *Store) LoadRecords(runID string) ([]numeric.IterationRecord, error) {
	rows, err := s.readTrace(runID, KindRoot)
	if err != nil {
		return nil, err
	}
	return parseRecords(rows)
}

// LoadSegments reads back the partition of a quadrature run.
func (s *Store) LoadSegments(runID string) ([]numeric.Segment, error) {
	rows, err := s.readTrace(runID, KindQuadrature)
	if err != nil {
		return nil, err
	}
	return parseSegments(rows)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
