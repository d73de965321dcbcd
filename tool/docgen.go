package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/docx"
)

// DocumentToolOption configures the document tool.
type DocumentToolOption func(*documentToolConfig)

type documentToolConfig struct {
	outputDir string
	heading   string
}

// WithOutputDir sets the directory documents are written to.
// Default is the current directory.
func WithOutputDir(dir string) DocumentToolOption {
	return func(c *documentToolConfig) {
		c.outputDir = dir
	}
}

// WithHeading sets the heading placed at the top of every document.
// Default is "Draft Document".
func WithHeading(heading string) DocumentToolOption {
	return func(c *documentToolConfig) {
		c.heading = heading
	}
}

// docArgs defines arguments for the document creation tool.
type docArgs struct {
	Content  string `json:"content" desc:"The full text of the document" required:"true"`
	FileName string `json:"file_name" desc:"Output file name (defaults to draft.docx)"`
}

// NewDocumentTool creates the create_word_doc tool. The handler renders
// content into a Word document and returns the saved file path.
func NewDocumentTool(opts ...DocumentToolOption) (ai.Tool, Handler) {
	cfg := &documentToolConfig{
		outputDir: ".",
		heading:   "Draft Document",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	t := ai.Tool{
		Name: "create_word_doc",
		Description: "Create a formatted Word document from the given content " +
			"and save it to disk. Returns the saved file path.",
		Parameters: ai.MustSchemaFor[docArgs](),
	}

	handler := func(ctx context.Context, call ai.ToolCall) (string, error) {
		var args docArgs
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", fmt.Errorf("create_word_doc: invalid arguments: %w", err)
		}
		if args.Content == "" {
			return "", fmt.Errorf("create_word_doc: content is required")
		}

		fileName := args.FileName
		if fileName == "" {
			fileName = "draft.docx"
		}
		if !strings.HasSuffix(fileName, ".docx") {
			fileName += ".docx"
		}
		// Keep output inside the configured directory.
		fileName = filepath.Base(fileName)
		path := filepath.Join(cfg.outputDir, fileName)

		doc := docx.New()
		doc.AddHeading(cfg.heading)
		doc.AddParagraph(args.Content)
		if err := doc.Save(path); err != nil {
			return "", err
		}
		return path, nil
	}

	return t, handler
}
