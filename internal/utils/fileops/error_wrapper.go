package fileops

import (
	stderrors "errors"

	"github.com/toyz/scaffold/internal/errors"
)

// ErrNotDirectory is the cause attached when a path that must be a
// directory is a regular file
var ErrNotDirectory = stderrors.New("not a directory")

// ErrorWrapper provides consistent error wrapping for file operations
type ErrorWrapper struct{}

// NewErrorWrapper creates a new ErrorWrapper instance
func NewErrorWrapper() *ErrorWrapper {
	return &ErrorWrapper{}
}

// WrapFileWriteError wraps file writing errors with context
func (ew *ErrorWrapper) WrapFileWriteError(filePath string, err error) error {
	return errors.WrapFileSystemError("write", filePath, err)
}

// WrapFileOpenError wraps file open errors with context
func (ew *ErrorWrapper) WrapFileOpenError(filePath string, err error) error {
	return errors.WrapFileSystemError("open", filePath, err)
}

// WrapFileCloseError wraps file close errors with context
func (ew *ErrorWrapper) WrapFileCloseError(filePath string, err error) error {
	return errors.WrapFileSystemError("close", filePath, err)
}

// WrapFileCheckError wraps file existence check errors with context
func (ew *ErrorWrapper) WrapFileCheckError(filePath string, err error) error {
	return errors.WrapFileSystemError("check", filePath, err)
}

// WrapDirectoryCreateError wraps directory creation errors with context
func (ew *ErrorWrapper) WrapDirectoryCreateError(dirPath string, err error) error {
	return errors.WrapFileSystemError("create directory", dirPath, err)
}

// WrapNotDirectoryError reports a path that must be a directory but is not
func (ew *ErrorWrapper) WrapNotDirectoryError(path string) error {
	return errors.WrapFileSystemError("create directory", path, ErrNotDirectory).
		WithSuggestion("--output-root and the component directory must not be existing files")
}

// WrapPathResolutionError wraps path resolution errors with context
func (ew *ErrorWrapper) WrapPathResolutionError(path string, err error) error {
	return errors.WrapFileSystemError("resolve path", path, err)
}
