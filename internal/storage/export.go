package storage

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/san-kum/numlab/internal/numeric"
)

type ExportRecord struct {
	Step  int      `json:"step"`
	Prev  float64  `json:"prev"`
	Next  float64  `json:"next"`
	FPrev float64  `json:"f_prev"`
	Line  string   `json:"line,omitempty"`
	Slope *float64 `json:"slope,omitempty"`
	Lo    *float64 `json:"lo,omitempty"`
	Hi    *float64 `json:"hi,omitempty"`
}

type ExportSegment struct {
	Shape   string       `json:"shape"`
	X0      float64      `json:"x0"`
	X1      float64      `json:"x1"`
	Samples [][2]float64 `json:"samples"`
	Failed  bool         `json:"failed"`
}

type ExportData struct {
	Run      RunMetadata     `json:"run"`
	Records  []ExportRecord  `json:"records,omitempty"`
	Segments []ExportSegment `json:"segments,omitempty"`
}

// NewExportData flattens a stored run into a JSON-friendly document.
// Non-finite samples are written as 0 with the segment marked failed.
func NewExportData(meta *RunMetadata, recs []numeric.IterationRecord, segs []numeric.Segment) ExportData {
	data := ExportData{Run: *meta}
	for _, r := range recs {
		er := ExportRecord{Step: r.Step, Prev: jsonFloat(r.Prev), Next: jsonFloat(r.Next), FPrev: jsonFloat(r.FPrev)}
		if r.Line != nil {
			slope := r.Line.Slope
			er.Line = r.Line.Kind.String()
			er.Slope = &slope
		}
		if r.Bracket != nil {
			lo, hi := r.Bracket.Lo, r.Bracket.Hi
			er.Lo, er.Hi = &lo, &hi
		}
		data.Records = append(data.Records, er)
	}
	for _, s := range segs {
		es := ExportSegment{Shape: s.Shape.String(), X0: s.X0, X1: s.X1, Failed: s.Failed}
		for _, p := range s.Samples {
			es.Samples = append(es.Samples, [2]float64{p.X, jsonFloat(p.Y)})
		}
		data.Segments = append(data.Segments, es)
	}
	return data
}

// Export loads a run and its trace.
func (s *Store) Export(runID string) (ExportData, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return ExportData{}, err
	}
	if meta.Kind == KindRoot {
		recs, err := s.LoadRecords(runID)
		if err != nil {
			return ExportData{}, err
		}
		return NewExportData(meta, recs, nil), nil
	}
	segs, err := s.LoadSegments(runID)
	if err != nil {
		return ExportData{}, err
	}
	return NewExportData(meta, nil, segs), nil
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, data)
}

// TraceFile returns the path of a run's trace.csv.
func (s *Store) TraceFile(runID string) string {
	return filepath.Join(s.baseDir, runID, traceFile)
}
