package services

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// minExtractedLength is the length a cleaned binary document has to exceed
// before its text is trusted over the placeholder.
const minExtractedLength = 100

var whitespaceRun = regexp.MustCompile(`\s+`)

// oleSignature opens legacy Word (.doc) files.
var oleSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

type TextExtractor interface {
	Extract(data []byte, fileName string) string
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (e *textExtractor) Extract(data []byte, fileName string) string {
	return ExtractText(data, fileName)
}

// ExtractText turns a stored CV into text for the model. Plain text comes back
// unchanged. PDF, ZIP based (docx) and OLE (doc) documents are reduced to
// their printable ASCII bytes, which is a heuristic and not a document parser.
func ExtractText(data []byte, fileName string) string {
	if !isBinaryDocument(data) {
		return string(data)
	}

	cleaned := make([]byte, len(data))
	for i, b := range data {
		if isNonPrintable(b) {
			cleaned[i] = ' '
		} else {
			cleaned[i] = b
		}
	}

	text := strings.TrimSpace(whitespaceRun.ReplaceAllString(string(cleaned), " "))
	if len(text) > minExtractedLength {
		return text
	}
	return unreadablePlaceholder(fileName)
}

func isBinaryDocument(data []byte) bool {
	return bytes.Contains(data, []byte("%PDF")) ||
		bytes.HasPrefix(data, []byte("PK")) ||
		bytes.HasPrefix(data, oleSignature)
}

// isNonPrintable keeps tab, newline and carriage return.
func isNonPrintable(b byte) bool {
	switch {
	case b <= 0x08:
		return true
	case b == 0x0B || b == 0x0C:
		return true
	case b >= 0x0E && b <= 0x1F:
		return true
	case b >= 0x7F:
		return true
	}
	return false
}

func unreadablePlaceholder(fileName string) string {
	return fmt.Sprintf("[Document: %s] - Unable to extract full text. The CV contains binary data that requires specialized parsing.", fileName)
}

func downloadFailedPlaceholder(fileName string) string {
	return fmt.Sprintf("[Could not read CV: %s]", fileName)
}
