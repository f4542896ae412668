package types

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every failure returned by the pipeline matches one of these
// through errors.Is.
var (
	ErrMissingFile    = errors.New("file not found")
	ErrSchemaMismatch = errors.New("the file structure is invalid")
	ErrParse          = errors.New("parse failure")
	ErrIO             = errors.New("i/o failure")
)

// MissingFileError reports an input path that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("file '%s' was not found", e.Path)
}

// Is matches ErrMissingFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingFile
}

// FileStructureError reports an input file whose header set differs from
// the required one. RequiredHeaders tells the caller what is expected.
type FileStructureError struct {
	RequiredHeaders []string
	Found           []string
}

func (e *FileStructureError) Error() string {
	return fmt.Sprintf("%s: required headers: [%s]",
		ErrSchemaMismatch.Error(), strings.Join(e.RequiredHeaders, ", "))
}

// Is matches ErrSchemaMismatch.
func (e *FileStructureError) Is(target error) bool {
	return target == ErrSchemaMismatch
}

// ParseError reports a value that could not be converted while loading records.
type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, column %s: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// IOError reports a failed filesystem operation on the output side.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is matches ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
