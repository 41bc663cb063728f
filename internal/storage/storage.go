package storage

import "io"

// PhotoStorage abstracts where uploaded profile photos live.
type PhotoStorage interface {
	// SaveFile writes a photo under the given filename.
	SaveFile(name string, reader io.Reader) error
	// ReadFile opens a stored photo for reading.
	ReadFile(name string) (io.ReadCloser, error)
	// DeleteFile removes a stored photo. Missing files are not an error.
	DeleteFile(name string) error
}
