// Package file provides a file-based override Fetcher for the config
// package.
//
// The override file is read at construction time and cached, so every
// Fetch during a run returns the same snapshot regardless of later
// edits to the file. Errors include the filepath; use
// errors.Is(err, file.ErrPathIsDirectory) to detect a directory path.
package file
