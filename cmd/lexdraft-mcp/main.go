// Command lexdraft-mcp exposes the legal drafting tools over MCP stdio,
// so MCP clients can discover and call the search and document tools
// directly.
//
// Configuration is via environment variables (a .env file is loaded if
// present):
//
//	TAVILY_API_KEY              - Tavily key for the search tool (optional)
//	LEXDRAFT_MAX_SEARCH_RESULTS - Search results per query (default: 5)
//	LEXDRAFT_OUTPUT_DIR         - Directory for generated documents (default: .)
//
// Usage:
//
//	go run ./cmd/lexdraft-mcp
package main

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lexdraft/lexdraft/mcp"
	"github.com/lexdraft/lexdraft/tool"
)

func main() {
	godotenv.Load()

	registry := tool.NewRegistry()

	if key := os.Getenv("TAVILY_API_KEY"); key != "" {
		maxResults := 5
		if v := os.Getenv("LEXDRAFT_MAX_SEARCH_RESULTS"); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				maxResults = n
			}
		}
		searchTool, handler := tool.NewSearchTool(key, tool.WithSearchMaxResults(maxResults))
		registry.MustRegister(searchTool, handler)
	}

	outputDir := os.Getenv("LEXDRAFT_OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "."
	}
	docTool, handler := tool.NewDocumentTool(tool.WithOutputDir(outputDir))
	registry.MustRegister(docTool, handler)

	if err := mcp.ServeStdio(registry,
		mcp.WithName("lexdraft-tools"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}
