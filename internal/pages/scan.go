package pages

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ImageExt is the file extension matched when scanning for page images.
const ImageExt = ".png"

// ErrInvalidStem is wrapped by ParseError when a page image name is not numeric.
var ErrInvalidStem = errors.New("page image name is not an integer")

// ImageFile is one page image found in the scanned directory.
type ImageFile struct {
	Number int    // Integer parsed from the file stem (e.g., "10.png" -> 10)
	Name   string // Base file name
	Path   string // Name joined with the scanned directory
}

// ParseError reports a matched file whose stem does not parse as an integer.
type ParseError struct {
	Name string
	Stem string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid page image name %q: stem %q is not an integer: %v", e.Name, e.Stem, e.Err)
}

// Is reports ErrInvalidStem so callers can match with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidStem
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ScanImages lists dir for page images and returns them sorted by page number.
// Numbers are compared as integers, so "2.png" sorts before "10.png".
// Every stem is parsed before sorting; one bad name fails the whole scan.
func ScanImages(dir string) ([]ImageFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	files := make([]ImageFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ImageExt) {
			continue
		}

		number, err := parsePageNumber(name)
		if err != nil {
			return nil, err
		}

		files = append(files, ImageFile{
			Number: number,
			Name:   name,
			Path:   filepath.Join(dir, name),
		})
	}

	// os.ReadDir returns names in lexical order; a stable sort keeps that
	// order for equal numbers such as "1.png" and "01.png".
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].Number < files[j].Number
	})

	return files, nil
}

func parsePageNumber(name string) (int, error) {
	stem := strings.TrimSuffix(name, ImageExt)
	n, err := strconv.Atoi(stem)
	if err != nil {
		return 0, &ParseError{Name: name, Stem: stem, Err: err}
	}
	return n, nil
}
