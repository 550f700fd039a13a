package services

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file type")
	ErrNoText            = errors.New("no extractable text found")
)

// SupportedExtensions lists the upload formats ExtractText understands.
var SupportedExtensions = []string{".txt", ".md", ".pdf", ".docx"}

type FileExtractService struct{}

func NewFileExtractService() *FileExtractService {
	return &FileExtractService{}
}

// ExtractText returns the plain text of an uploaded file. The format comes
// from the file name, or from the content itself when the name has no known
// extension. Line structure is kept; blank-line runs collapse to one.
func (s *FileExtractService) ExtractText(filename string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch kind := detectKind(filename, data); kind {
	case ".txt", ".md":
		text = strings.ToValidUTF8(string(data), "")
	case ".pdf":
		text, err = s.extractPDF(data)
	case ".docx":
		text, err = s.extractDOCX(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, kind)
	}
	if err != nil {
		return "", fmt.Errorf("%w in %s: %w", ErrNoText, filename, err)
	}

	text = normalizeExtractedText(text)
	if text == "" {
		return "", fmt.Errorf("%w in %s", ErrNoText, filename)
	}
	return text, nil
}

func detectKind(filename string, data []byte) string {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, known := range SupportedExtensions {
		if ext == known {
			return ext
		}
	}

	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		return ".pdf"
	case mtype.Is("application/vnd.openxmlformats-officedocument.wordprocessingml.document"):
		return ".docx"
	case mtype.Is("text/plain"):
		return ".txt"
	}
	if ext != "" {
		return ext
	}
	return mtype.String()
}

func (s *FileExtractService) extractPDF(data []byte) (_ string, err error) {
	// ledongthuc/pdf panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var b strings.Builder
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(content) == "" {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

func (s *FileExtractService) extractDOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	for _, f := range r.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		documentXML, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return stripDOCXML(documentXML), nil
	}
	return "", fmt.Errorf("docx document.xml not found")
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

var xmlEntities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

func stripDOCXML(src []byte) string {
	s := string(src)

	// paragraphs and breaks become newlines so numbered steps stay on their own line
	s = strings.ReplaceAll(s, "</w:p>", "\n")
	s = strings.ReplaceAll(s, "<w:br/>", "\n")
	s = strings.ReplaceAll(s, "<w:br />", "\n")
	s = strings.ReplaceAll(s, "<w:tab/>", "\t")

	s = xmlTagPattern.ReplaceAllString(s, "")
	return xmlEntities.Replace(s)
}

func normalizeExtractedText(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	var buf strings.Builder
	emptyCount := 0
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			emptyCount++
			if emptyCount > 1 {
				continue
			}
			buf.WriteString("\n")
			continue
		}
		emptyCount = 0
		buf.WriteString(trimmed)
		buf.WriteString("\n")
	}
	return strings.TrimSpace(buf.String())
}
