package main

import (
	"context"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"personal-kb/internal/config"
	"personal-kb/internal/kbmcp"
	"personal-kb/internal/personaldata"
)

func main() {
	config.LoadDotEnv()
	var appCfg config.App
	config.MustParse(&appCfg)

	log.Printf("🚀 Starting knowledge base MCP Server")

	kb, err := personaldata.NewManager(appCfg.AppRoot)
	if err != nil {
		log.Printf("⚠️ %v", err)
	}
	if !kb.IsConfigured() {
		log.Printf("⚠️ Personal data location not configured yet; run `kb-tool setup <path>`, no restart needed")
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "personal-kb-mcp",
		Version: "1.0.0",
	}, nil)
	kbmcp.NewWithIndexFile(kb).Register(server)

	log.Printf("📋 Registered MCP tools: kb_status, list_reports, is_processed, generate_kb, export_kb")
	log.Printf("🔗 Starting MCP server on stdin/stdout...")

	if err := server.Run(context.Background(), mcp.NewStdioTransport()); err != nil {
		log.Fatalf("❌ MCP Server failed: %v", err)
	}
}
