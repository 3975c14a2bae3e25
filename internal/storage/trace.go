package storage

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/san-kum/numlab/internal/numeric"
)

var (
	recordHeader  = []string{"step", "prev", "next", "f_prev", "line", "slope", "lo", "hi"}
	segmentHeader = []string{"segment", "shape", "x0", "x1", "sx0", "sy0", "sx1", "sy1", "sx2", "sy2", "failed"}
)

func writeRecords(w *csv.Writer, recs []numeric.IterationRecord) error {
	if err := w.Write(recordHeader); err != nil {
		return err
	}
	for _, rec := range recs {
		kind, slope := "none", ""
		if rec.Line != nil {
			kind = rec.Line.Kind.String()
			slope = formatFloat(rec.Line.Slope)
		}
		lo, hi := "", ""
		if rec.Bracket != nil {
			lo, hi = formatFloat(rec.Bracket.Lo), formatFloat(rec.Bracket.Hi)
		}
		row := []string{
			strconv.Itoa(rec.Step),
			formatFloat(rec.Prev),
			formatFloat(rec.Next),
			formatFloat(rec.FPrev),
			kind, slope, lo, hi,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func writeSegments(w *csv.Writer, segs []numeric.Segment) error {
	if err := w.Write(segmentHeader); err != nil {
		return err
	}
	for i, seg := range segs {
		row := []string{strconv.Itoa(i), seg.Shape.String(), formatFloat(seg.X0), formatFloat(seg.X1)}
		for j := 0; j < 3; j++ {
			if j < len(seg.Samples) {
				row = append(row, formatFloat(seg.Samples[j].X), formatFloat(seg.Samples[j].Y))
			} else {
				row = append(row, "", "")
			}
		}
		row = append(row, strconv.FormatBool(seg.Failed))
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func parseFloats(row []string, idx ...int) ([]float64, error) {
	out := make([]float64, len(idx))
	for i, j := range idx {
		if j >= len(row) {
			return nil, fmt.Errorf("storage: short row %v", row)
		}
		v, err := strconv.ParseFloat(row[j], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: column %d: %w", j, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseLineKind(s string) numeric.LineKind {
	switch s {
	case "tangent":
		return numeric.LineTangent
	case "secant":
		return numeric.LineSecant
	}
	return numeric.LineNone
}

func parseRecords(rows [][]string) ([]numeric.IterationRecord, error) {
	recs := make([]numeric.IterationRecord, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(recordHeader) {
			continue
		}
		step, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("storage: step: %w", err)
		}
		v, err := parseFloats(row, 1, 2, 3)
		if err != nil {
			return nil, err
		}
		rec := numeric.IterationRecord{Step: step, Prev: v[0], Next: v[1], FPrev: v[2]}

		if kind := parseLineKind(row[4]); kind != numeric.LineNone && row[5] != "" {
			slope, err := strconv.ParseFloat(row[5], 64)
			if err != nil {
				return nil, fmt.Errorf("storage: slope: %w", err)
			}
			anchor := numeric.Point{X: rec.Prev, Y: rec.FPrev}
			rec.Line = &numeric.Line{Kind: kind, Anchor: anchor, Slope: slope}
		}
		if row[6] != "" && row[7] != "" {
			b, err := parseFloats(row, 6, 7)
			if err != nil {
				return nil, err
			}
			rec.Bracket = &numeric.Bracket{Lo: b[0], Hi: b[1]}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func parseShape(s string) (numeric.Shape, error) {
	switch s {
	case "rectangle":
		return numeric.ShapeRectangle, nil
	case "trapezoid":
		return numeric.ShapeTrapezoid, nil
	case "parabola":
		return numeric.ShapeParabola, nil
	}
	return 0, fmt.Errorf("storage: unknown shape %q", s)
}

func parseSegments(rows [][]string) ([]numeric.Segment, error) {
	segs := make([]numeric.Segment, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(segmentHeader) {
			continue
		}
		shape, err := parseShape(row[1])
		if err != nil {
			return nil, err
		}
		bounds, err := parseFloats(row, 2, 3)
		if err != nil {
			return nil, err
		}
		seg := numeric.Segment{Shape: shape, X0: bounds[0], X1: bounds[1]}
		for j := 0; j < 3; j++ {
			xs, ys := row[4+2*j], row[5+2*j]
			if xs == "" {
				break
			}
			p, err := parseFloats([]string{xs, ys}, 0, 1)
			if err != nil {
				return nil, err
			}
			seg.Samples = append(seg.Samples, numeric.Point{X: p[0], Y: p[1]})
		}
		seg.Failed, _ = strconv.ParseBool(row[10])
		segs = append(segs, seg)
	}
	return segs, nil
}
