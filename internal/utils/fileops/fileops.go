package fileops

import (
	"os"
)

// FileOps provides a unified interface for the file operations the
// generator performs, combining path validation and error wrapping
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// EnsureDir creates a directory and any missing parents
func (fo *FileOps) EnsureDir(dirPath string, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(dirPath)
	if err != nil {
		return fo.errorWrapper.WrapPathResolutionError(dirPath, err)
	}

	if err := os.MkdirAll(cleanPath, perm); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(cleanPath, err)
	}
	return nil
}

// CheckDir returns an error when path exists but is not a directory
func (fo *FileOps) CheckDir(path string) error {
	exists, err := fo.Exists(path)
	if err != nil {
		return err
	}
	if exists && !fo.IsDir(path) {
		return fo.errorWrapper.WrapNotDirectoryError(path)
	}
	return nil
}

// Exists checks whether a path exists, wrapping unexpected stat failures
func (fo *FileOps) Exists(path string) (bool, error) {
	exists, err := fo.pathValidator.Exists(path)
	if err != nil {
		return false, fo.errorWrapper.WrapFileCheckError(path, err)
	}
	return exists, nil
}

// WriteFile writes content to a file, truncating it if present. The file is
// closed on every path; a close failure is reported when the write succeeded.
func (fo *FileOps) WriteFile(filePath string, content []byte, perm os.FileMode) (err error) {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return fo.errorWrapper.WrapPathResolutionError(filePath, err)
	}

	f, err := os.OpenFile(cleanPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fo.errorWrapper.WrapFileOpenError(cleanPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fo.errorWrapper.WrapFileCloseError(cleanPath, cerr)
		}
	}()

	if _, err := f.Write(content); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}
	return nil
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}
