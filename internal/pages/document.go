package pages

import (
	"encoding/base64"
	"strconv"
	"strings"
)

const dataURIPrefix = "data:image/png;base64,"

// pageStyle is embedded in every page so each document is self-contained.
const pageStyle = `  <style>
    body {
      text-align: center;
      font-family: sans-serif;
      margin: 0;
      padding: 20px;
    }
    .nav {
      margin-top: 20px;
      font-size: 18px;
    }
    .nav a {
      color: #007BFF;
      text-decoration: none;
      margin: 0 10px;
      font-family: sans-serif;
    }
    .nav a:hover {
      text-decoration: underline;
    }
    img {
      width: 100%;
      max-width: 800px;
      margin-top: 20px;
      box-shadow: 0 4px 12px rgba(0,0,0,0.1);
    }
  </style>
`

// Document is one rendered page.
// PrevLink and NextLink are empty on the first and last page respectively.
type Document struct {
	Number       int
	ImageDataURI string
	PrevLink     string
	NextLink     string
}

// NewDocument builds the page at zero-based position index in a sequence of
// total pages, embedding data as its image.
func NewDocument(index, total int, data []byte) Document {
	number := index + 1
	doc := Document{
		Number:       number,
		ImageDataURI: EncodeDataURI(data),
	}
	if index > 0 {
		doc.PrevLink = PageFileName(number - 1)
	}
	if index < total-1 {
		doc.NextLink = PageFileName(number + 1)
	}
	return doc
}

// EncodeDataURI returns data as a base64 PNG data URI.
func EncodeDataURI(data []byte) string {
	return dataURIPrefix + base64.StdEncoding.EncodeToString(data)
}

// PageFileName returns the output file name for a page number.
func PageFileName(number int) string {
	return strconv.Itoa(number) + ".html"
}

// FileName returns the name the document is written under.
func (d Document) FileName() string {
	return PageFileName(d.Number)
}

// Render returns the complete HTML for the page.
func (d Document) Render() string {
	title := "Page " + strconv.Itoa(d.Number)

	var b strings.Builder
	b.Grow(len(d.ImageDataURI) + len(pageStyle) + 512)

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("  <meta charset=\"utf-8\">\n")
	b.WriteString("  \n")
	b.WriteString(pageStyle)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("  <h2>" + title + "</h2>\n")
	b.WriteString("  <img src=\"" + d.ImageDataURI + "\" alt=\"" + title + "\">\n")
	b.WriteString("  <div class=\"nav\">\n")

	// Each nav part sits on its own line, left empty when absent.
	b.WriteString("    ")
	if d.PrevLink != "" {
		b.WriteString(`<a href="` + d.PrevLink + `">Prev</a>`)
	}
	b.WriteString("\n    ")
	if d.PrevLink != "" && d.NextLink != "" {
		b.WriteString(" | ")
	}
	b.WriteString("\n    ")
	if d.NextLink != "" {
		b.WriteString(`<a href="` + d.NextLink + `">Next</a>`)
	}
	b.WriteString("\n")

	b.WriteString("  </div>\n</body>\n</html>\n")
	return b.String()
}
