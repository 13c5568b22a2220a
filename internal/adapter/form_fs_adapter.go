// Package adapter contains the document and filesystem adapters of the
// formtrack host.
package adapter

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/formtrack/internal/model"
)

// FormFSAdapter abstracts the filesystem access the workflow needs to find,
// load and store HTML documents, so the workflow can be tested without
// touching the disk.
type FormFSAdapter interface {
	// Get resolves the roots to HTML files. A root ending in "/..." is
	// scanned recursively; a root naming a file is taken as is.
	Get(roots []m.Path) ([]m.FormFile, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// Load reads and parses the HTML document at path.
	Load(path m.Path) (*HTMLDocument, error)

	// Save writes a rendered document to path, creating parent
	// directories as needed.
	Save(path m.Path, content []byte) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalFormFSAdapter is the FormFSAdapter backed by the local filesystem.
type LocalFormFSAdapter struct{}

// NewLocalFormFSAdapter constructs a LocalFormFSAdapter.
func NewLocalFormFSAdapter() *LocalFormFSAdapter {
	return &LocalFormFSAdapter{}
}

// Get collects HTML files for the provided roots.
func (a *LocalFormFSAdapter) Get(roots []m.Path) ([]m.FormFile, error) {
	if len(roots) == 0 {
		return []m.FormFile{}, nil
	}

	seen := make(map[string]struct{})

	var files []m.FormFile

	add := func(base, path string) error {
		file, ok, err := a.processFilePath(base, path)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(file.Path)]; exists {
			return nil
		}

		seen[string(file.Path)] = struct{}{}
		files = append(files, file)

		return nil
	}

	for _, root := range roots {
		rootPath, recursive, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := add(filepath.Dir(rootPath), rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), recursive, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				return nil
			}

			return add(rootPath, path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalFormFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// Load reads and parses the HTML document at path.
func (a *LocalFormFSAdapter) Load(path m.Path) (*HTMLDocument, error) {
	content, err := a.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	doc, err := ParseHTML(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return doc, nil
}

// Save writes content into the file at path.
func (a *LocalFormFSAdapter) Save(path m.Path, content []byte) error {
	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// ReadFile loads file contents from disk.
func (a *LocalFormFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalFormFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalFormFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func normalizeRootPath(root string) (string, bool, error) {
	rootStr, recursive := parseRootPath(root)

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false, err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", false, err
	}

	return abs, recursive, nil
}

func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}

func isHTMLFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	default:
		return false
	}
}

func (a *LocalFormFSAdapter) processFilePath(base, path string) (m.FormFile, bool, error) {
	if !isHTMLFile(path) {
		return m.FormFile{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.FormFile{}, false, err
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.FormFile{}, false, fmt.Errorf("hash error for %s: %w", absPath, err)
	}

	short, err := filepath.Rel(base, absPath)
	if err != nil {
		short = filepath.Base(absPath)
	}

	return m.FormFile{Path: m.Path(absPath), ShortPath: short, Hash: hash}, true, nil
}
