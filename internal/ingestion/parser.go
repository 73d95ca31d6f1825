package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Document struct {
	ID       string
	Title    string
	Content  string
	FilePath string
	Metadata map[string]string
}

var supportedExtensions = map[string]bool{
	".txt": true,
	".md":  true,
}

type Parser struct {
}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) ParseFile(path string) (*Document, error) {
	path = strings.TrimSpace(path)

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	doc, err := p.Parse(bytes, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	doc.FilePath = path
	return doc, nil
}

// Parse builds a Document from raw content, e.g. an uploaded file body.
func (p *Parser) Parse(content []byte, filename string) (*Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !supportedExtensions[ext] {
		return nil, fmt.Errorf("unsupported file type %s (expected .txt or .md)", ext)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("file %s is empty", filename)
	}

	title := strings.TrimSuffix(filename, ext)

	return &Document{
		ID:      uuid.New().String(),
		Title:   title,
		Content: string(content),
		Metadata: map[string]string{
			"filename":  filename,
			"extension": ext,
		},
	}, nil
}
