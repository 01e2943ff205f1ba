package observability

import (
	"go.uber.org/zap"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
)

// LogReport writes every fatal error and warning in rep to logger, one entry
// each, tagged with the unit they came from.
//
// Precondition: logger must be non-nil.
func LogReport(logger *zap.Logger, unit string, rep *diag.Report) {
	if rep == nil {
		return
	}
	for _, err := range rep.Fatals {
		fields := []zap.Field{zap.String("unit", unit), zap.Error(err)}
		if pos, ok := diag.PositionOf(err); ok {
			fields = append(fields, positionFields(pos)...)
		} else {
			fields = append(fields, zap.String("file", rep.File))
		}
		logger.Error("record failed", fields...)
	}
	for _, w := range rep.Warnings {
		fields := append([]zap.Field{zap.String("unit", unit), zap.Stringer("kind", w.Kind)}, positionFields(w.Pos)...)
		logger.Warn(w.Msg, fields...)
	}
}

func positionFields(p diag.Position) []zap.Field {
	fields := []zap.Field{zap.String("file", p.File), zap.Int("line", p.Line)}
	if p.Record != diag.NoRecord {
		fields = append(fields, zap.Int("record", p.Record))
	}
	return fields
}
