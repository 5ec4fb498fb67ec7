package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	pdf "github.com/ledongthuc/pdf"
)

// Format identifies a supported résumé file type
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// formatByExtension maps file extensions to formats
var formatByExtension = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".pdf":      FormatPDF,
	".docx":     FormatDOCX,
}

// DetectFormat returns the format implied by the file extension of path.
func DetectFormat(path string) (Format, bool) {
	format, ok := formatByExtension[strings.ToLower(filepath.Ext(path))]
	return format, ok
}

// ReadDocument reads a résumé file and returns its cleaned plain text.
func ReadDocument(path string) (string, error) {
	format, ok := DetectFormat(path)
	if !ok {
		return "", &DecodeError{Path: path, Message: fmt.Sprintf("unsupported file type %q", filepath.Ext(path))}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", &DecodeError{Path: path, Format: format, Message: "file not found", Cause: err}
		}
		return "", &DecodeError{Path: path, Format: format, Message: "failed to read file", Cause: err}
	}

	text, err := DecodeDocument(format, data)
	if err != nil {
		return "", &DecodeError{Path: path, Format: format, Message: "failed to extract text", Cause: err}
	}
	return text, nil
}

// DecodeDocument extracts cleaned plain text from data in the given format.
func DecodeDocument(format Format, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch format {
	case FormatText:
		text = string(data)
	case FormatHTML:
		text, err = htmlToText(data)
	case FormatPDF:
		text, err = pdfToText(data)
	case FormatDOCX:
		text, err = docxToText(data)
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return "", err
	}

	if !utf8.ValidString(text) {
		return "", fmt.Errorf("document text is not valid UTF-8")
	}
	return CleanText(text), nil
}

// htmlToText renders the visible text of an HTML document, one block element per line.
func htmlToText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, template").Remove()
	doc.Find("p, li, h1, h2, h3, h4, h5, h6, tr, div, section, article, br").Each(func(_ int, s *goquery.Selection) {
		s.AfterHtml("\n")
	})

	body := doc.Find("body")
	if body.Length() == 0 {
		return doc.Text(), nil
	}
	return body.Text(), nil
}

func pdfToText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", fmt.Errorf("failed to read PDF text: %w", err)
	}
	return buf.String(), nil
}

// docxToText reads word/document.xml, emitting the text runs of each paragraph on its own line.
func docxToText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}

	var body *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			body = f
			break
		}
	}
	if body == nil {
		return "", fmt.Errorf("no word/document.xml in DOCX")
	}

	rc, err := body.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document.xml: %w", err)
	}
	defer func() { _ = rc.Close() }()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("malformed document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString("\t")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}
	return sb.String(), nil
}
