// Package model defines the data structures shared by the formtrack host.
package model

// Path represents a file system path.
type Path string

// FormFile is an HTML document discovered on disk.
type FormFile struct {
	Path Path
	// ShortPath is Path relative to the root it was found under.
	ShortPath string
	Hash      string
}
