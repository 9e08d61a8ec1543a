package fastsheet

import (
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/models"
	"github.com/fastsheet/fastsheet-go/pkg/fastsheet/parser"
)

// kindSet tracks which cell kinds were observed in a column sample.
type kindSet struct {
	intSeen      bool
	floatSeen    bool
	stringSeen   bool
	boolSeen     bool
	dateTimeSeen bool
	durationSeen bool
	any          bool
}

func (s *kindSet) observe(kind models.CellKind) {
	switch kind {
	case models.KindEmpty:
		return
	case models.KindInt:
		s.intSeen = true
	case models.KindFloat:
		s.floatSeen = true
	case models.KindBool:
		s.boolSeen = true
	case models.KindDateTime:
		s.dateTimeSeen = true
	case models.KindDuration:
		s.durationSeen = true
	default:
		// Strings, and error markers which extract as their marker text.
		s.stringSeen = true
	}
	s.any = true
}

// unify folds the observed kinds into one column dtype:
//   - nothing observed: Null (the column materializes as all nulls)
//   - any string: String (strings dominate; numerics stringify on extraction)
//   - numerics only: Float when any Float was seen, Int otherwise
//   - Bool, DateTime and Duration each hold only when the sample is
//     homogeneous; any mix falls back to String
//
// String is the universal fallback, so every kind combination unifies.
func (s *kindSet) unify() models.DType {
	if !s.any {
		return models.DTypeNull
	}
	if s.stringSeen {
		return models.DTypeString
	}
	numeric := s.intSeen || s.floatSeen
	switch {
	case s.boolSeen && !numeric && !s.dateTimeSeen && !s.durationSeen:
		return models.DTypeBool
	case s.dateTimeSeen && !numeric && !s.boolSeen && !s.durationSeen:
		return models.DTypeDateTime
	case s.durationSeen && !numeric && !s.boolSeen && !s.dateTimeSeen:
		return models.DTypeDuration
	case numeric && !s.boolSeen && !s.dateTimeSeen && !s.durationSeen:
		if s.floatSeen {
			return models.DTypeFloat
		}
		return models.DTypeInt
	}
	return models.DTypeString
}

// inferDType samples a column over the materialized row window and unifies
// the observed cell kinds into one dtype. A nil sampleRows scans the whole
// window; otherwise only the first sampleRows rows are examined. Empty cells
// never force a type and are kept as nulls on extraction.
func inferDType(grid *parser.CellGrid, col int, window rowWindow, sampleRows *int) models.DType {
	end := window.end
	if sampleRows != nil && window.start+*sampleRows < end {
		end = window.start + *sampleRows
	}

	var seen kindSet
	for row := window.start; row < end; row++ {
		seen.observe(grid.Cell(row, col).Kind())
	}
	return seen.unify()
}
