package pages

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/disintegration/imaging"
)

// mustEncodePNG returns a small solid PNG. Varying shade keeps fixtures distinct.
func mustEncodePNG(t *testing.T, w, h int, shade uint8) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: shade, G: 255 - shade, B: 128, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("imaging.Encode() error = %v", err)
	}
	return buf.Bytes()
}

// writePageImages writes one PNG per name into dir and returns the bytes by name.
func writePageImages(t *testing.T, dir string, names ...string) map[string][]byte {
	t.Helper()
	written := make(map[string][]byte, len(names))
	for i, name := range names {
		data := mustEncodePNG(t, 4+i, 3, uint8(i*40))
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		written[name] = data
	}
	return written
}

// htmlFiles returns the names of .html files in dir.
func htmlFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("os.ReadDir() error = %v", err)
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".html") {
			names = append(names, e.Name())
		}
	}
	return names
}

func loadPage(t *testing.T, path string) *goquery.Document {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read page %s: %v", path, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to parse page %s: %v", path, err)
	}
	return doc
}

// navLinks returns the href of each nav link keyed by its text.
func navLinks(doc *goquery.Document) map[string]string {
	links := make(map[string]string)
	doc.Find(".nav a").Each(func(_ int, s *goquery.Selection) {
		links[strings.TrimSpace(s.Text())] = s.AttrOr("href", "")
	})
	return links
}
