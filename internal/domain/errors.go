package domain

import "errors"

var (
	// ErrCasesDirNotFound is returned when the case directory is missing.
	ErrCasesDirNotFound = errors.New("case directory not found")
	// ErrCaseNotFound is returned when a named case has no input file.
	ErrCaseNotFound = errors.New("test case not found")
	// ErrSubjectUnavailable is returned when the subject program cannot be launched.
	// It aborts the whole invocation.
	ErrSubjectUnavailable = errors.New("subject program unavailable")
	// ErrSnapshotMissing is returned when a case has no recorded snapshot.
	// Callers count it as a failed case, never as a fatal error.
	ErrSnapshotMissing = errors.New("expected snapshot missing")
	// ErrSnapshotWrite is returned when a regenerated snapshot cannot be persisted.
	ErrSnapshotWrite = errors.New("cannot write snapshot")
)
