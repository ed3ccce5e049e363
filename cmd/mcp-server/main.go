package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Protocol-Lattice/lattice-params/src"
	"github.com/Protocol-Lattice/lattice-params/src/params"
)

const (
	toolListParams = "list_params"
	toolGetParam   = "get_param"
	toolSetParam   = "set_param"
	toolGetModel   = "get_model"
)

// session owns the editor for the lifetime of the server. Tool calls may
// arrive concurrently; the editor itself is single-threaded.
type session struct {
	mu     sync.Mutex
	editor *params.Editor
	format params.Format
}

func main() {
	cfg, err := src.LoadConfig()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	flag.StringVar(&cfg.File, "file", cfg.File, "seed document (.json, .yaml, .yml)")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "model format returned by get_model: json or yaml")
	flag.Parse()

	format, err := cfg.SnapshotFormat()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	doc, err := cfg.Document()
	if err != nil {
		log.Fatalf("Seed error: %v", err)
	}

	sess := &session{editor: params.NewEditor(doc.Params, doc.Model), format: format}

	s := server.NewMCPServer(
		"Lattice Params MCP Server",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	registerTools(s, sess)

	if err := server.ServeStdio(s); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func registerTools(s *server.MCPServer, sess *session) {
	s.AddTool(mcp.NewTool(toolListParams,
		mcp.WithDescription("List the editable parameter definitions in display order"),
	), sess.handleListParams)

	s.AddTool(mcp.NewTool(toolGetParam,
		mcp.WithDescription("Get the current value of one parameter; unknown ids return an empty string"),
		mcp.WithNumber("param_id", mcp.Required(), mcp.Description("Parameter id")),
	), sess.handleGetParam)

	s.AddTool(mcp.NewTool(toolSetParam,
		mcp.WithDescription("Set the value of one parameter; unknown ids are ignored"),
		mcp.WithNumber("param_id", mcp.Required(), mcp.Description("Parameter id")),
		mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
	), sess.handleSetParam)

	s.AddTool(mcp.NewTool(toolGetModel,
		mcp.WithDescription("Get a snapshot of the model: all parameter values plus colors"),
	), sess.handleGetModel)
}

func (sess *session) handleListParams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess.mu.Lock()
	defs := sess.editor.Params()
	sess.mu.Unlock()

	return jsonResult(defs)
}

func (sess *session) handleGetParam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := paramID(request)
	if errResult != nil {
		return errResult, nil
	}

	sess.mu.Lock()
	value := sess.editor.FieldValue(id)
	sess.mu.Unlock()

	return jsonResult(params.ParamValue{ParamID: id, Value: value})
}

func (sess *session) handleSetParam(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, errResult := paramID(request)
	if errResult != nil {
		return errResult, nil
	}
	args, _ := request.Params.Arguments.(map[string]any)
	if _, ok := args["value"].(string); !ok {
		return mcp.NewToolResultError("value is required and must be a string"), nil
	}
	value := request.GetString("value", "")

	sess.mu.Lock()
	sess.editor.SetFieldValue(id, value)
	current := sess.editor.FieldValue(id)
	sess.mu.Unlock()

	return jsonResult(params.ParamValue{ParamID: id, Value: current})
}

func (sess *session) handleGetModel(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess.mu.Lock()
	snapshot := sess.editor.Snapshot()
	sess.mu.Unlock()

	text, err := params.EncodeString(snapshot, sess.format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode model: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func paramID(request mcp.CallToolRequest) (int, *mcp.CallToolResult) {
	args, _ := request.Params.Arguments.(map[string]any)
	f, ok := args["param_id"].(float64)
	if !ok {
		return 0, mcp.NewToolResultError("param_id is required and must be a number")
	}
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, mcp.NewToolResultError("param_id must be an integer")
	}
	return int(f), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
