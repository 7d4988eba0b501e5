package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/dgallion1/workflowdoc/internal/checklist"
)

// Parser converts a checklist source into a Document.
type Parser interface {
	Parse(r io.Reader) (*checklist.Document, error)
}

// SupportedExtensions lists file extensions the checklist parser accepts.
var SupportedExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
	".txt":      true,
}

// ForFile returns the parser for a filename.
func ForFile(filename string, meta checklist.Meta) (Parser, error) {
	if !IsSupportedExtension(filename) {
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
	return &ChecklistParser{Meta: meta}, nil
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}
