package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	ai "github.com/lexdraft/lexdraft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentTool(t *testing.T) {
	dir := t.TempDir()
	_, handler := NewDocumentTool(WithOutputDir(dir))

	path, err := handler(context.Background(), ai.ToolCall{
		ID:        "call-1",
		Name:      "create_word_doc",
		Arguments: `{"content":"This Agreement is entered into...","file_name":"nda.docx"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "nda.docx"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDocumentTool_DefaultFileName(t *testing.T) {
	dir := t.TempDir()
	_, handler := NewDocumentTool(WithOutputDir(dir))

	path, err := handler(context.Background(), ai.ToolCall{
		Arguments: `{"content":"body"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "draft.docx"), path)
}

func TestDocumentTool_SanitizesFileName(t *testing.T) {
	dir := t.TempDir()
	_, handler := NewDocumentTool(WithOutputDir(dir))

	path, err := handler(context.Background(), ai.ToolCall{
		Arguments: `{"content":"body","file_name":"../../escape"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.docx"), path)
}

func TestDocumentTool_MissingContent(t *testing.T) {
	_, handler := NewDocumentTool()

	_, err := handler(context.Background(), ai.ToolCall{Arguments: `{}`})

	assert.Error(t, err)
}
