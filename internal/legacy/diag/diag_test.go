package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cory-johannsen/mudconvert/internal/legacy/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "30.wld:12", diag.At("30.wld", 12).String())
	assert.Equal(t, "30.wld:12 (record #3001)", diag.Position{File: "30.wld", Line: 12, Record: 3001}.String())
}

func TestIsFatal(t *testing.T) {
	se := &diag.StructuralError{Pos: diag.At("a", 1), Msg: "short line"}
	ue := &diag.UnknownTagError{Pos: diag.At("a", 2), Context: "room", Tag: "Q"}

	assert.True(t, diag.IsFatal(se))
	assert.True(t, diag.IsFatal(fmt.Errorf("wrapped: %w", ue)))
	assert.False(t, diag.IsFatal(errors.New("plain")))
}

func TestPositionOf(t *testing.T) {
	pos := diag.Position{File: "b", Line: 9, Record: 4}
	got, ok := diag.PositionOf(fmt.Errorf("ctx: %w", &diag.UnknownTagError{Pos: pos, Tag: "x"}))
	require.True(t, ok)
	assert.Equal(t, pos, got)

	_, ok = diag.PositionOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestStructuralError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &diag.StructuralError{Pos: diag.At("f", 3), Msg: "bad int", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "f:3")
	assert.Contains(t, err.Error(), "boom")
}

func TestReport_MergeAndSummary(t *testing.T) {
	a := diag.NewReport("a")
	a.Records = 3
	a.Warn(diag.Integrity, diag.At("a", 1), "mismatch %d", 7)

	b := diag.NewReport("b")
	b.Records = 2
	b.Fatal(&diag.StructuralError{Pos: diag.At("b", 4), Msg: "eof"})

	var s diag.Summary
	s.Add(a)
	s.Add(b)
	assert.Equal(t, diag.Summary{Files: 2, Records: 5, Fatals: 1, Warnings: 1}, s)
	assert.False(t, s.OK())

	a.Merge(b)
	assert.True(t, a.HasFatal())
	assert.Equal(t, 5, a.Records)
	assert.Equal(t, "a:1: integrity: mismatch 7", a.Warnings[0].String())
}
