package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/lrcat/lrcat-go/pkg/catalog"
	"github.com/lrcat/lrcat-go/pkg/lron"
	"github.com/lrcat/lrcat-go/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams      = -32602 // Invalid method parameters
	ErrorCodeInternalError      = -32603 // Internal JSON-RPC error
	ErrorCodeCatalogNotFound    = -32001 // The catalog path is not a readable file
	ErrorCodeUnsupportedVersion = -32002 // The catalog schema version has no query plan
)

// handleCatalogInfo handles the catalog_info tool invocation
func (s *Server) handleCatalogInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	var response map[string]interface{}
	err := s.withCatalog(ctx, getStringDefault(args, "path", ""), func(cat *catalog.Catalog) error {
		response = map[string]interface{}{
			"path":            cat.Path(),
			"version":         cat.VersionString(),
			"generation":      cat.Version().String(),
			"supported":       cat.Version().IsSupported(),
			"root_keyword_id": cat.RootKeywordID(),
			"dropped_rows":    len(cat.Diagnostics()),
		}
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListKeywords handles the list_keywords tool invocation
func (s *Server) handleListKeywords(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	var response map[string]interface{}
	err := s.withCatalog(ctx, getStringDefault(args, "path", ""), func(cat *catalog.Catalog) error {
		keywords, err := cat.LoadKeywords(ctx)
		if err != nil {
			return err
		}
		tree, err := cat.LoadKeywordTree(ctx)
		if err != nil {
			return err
		}

		parent := types.LrID(getIntDefault(args, "parent", int(cat.RootKeywordID())))
		children := tree.ChildrenFor(parent)
		list := make([]map[string]interface{}, 0, len(children))
		for _, id := range children {
			k, ok := keywords.Get(id)
			if !ok {
				continue
			}
			list = append(list, map[string]interface{}{
				"id":       k.ID(),
				"uuid":     k.UUID(),
				"name":     k.Name,
				"children": len(tree.ChildrenFor(id)),
			})
		}

		response = map[string]interface{}{
			"parent":   parent,
			"keywords": list,
			"total":    keywords.Len(),
		}
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListFolders handles the list_folders tool invocation
func (s *Server) handleListFolders(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	limit := getIntDefault(args, "limit", 1000)
	if limit < 1 || limit > 10000 {
		return nil, newMCPError(ErrorCodeInvalidParams, "limit must be between 1 and 10000", map[string]interface{}{
			"param": "limit",
			"value": limit,
		})
	}

	var response map[string]interface{}
	err := s.withCatalog(ctx, getStringDefault(args, "path", ""), func(cat *catalog.Catalog) error {
		folders, err := cat.LoadFolders(ctx)
		if err != nil {
			return err
		}

		roots := make([]map[string]interface{}, 0, len(folders.Roots))
		for _, root := range folders.Roots {
			roots = append(roots, map[string]interface{}{
				"id":            root.ID(),
				"name":          root.Name,
				"absolute_path": root.AbsolutePath,
			})
		}

		list := make([]map[string]interface{}, 0, min(limit, len(folders.Folders)))
		for _, folder := range folders.Folders {
			if len(list) == limit {
				break
			}
			entry := map[string]interface{}{
				"id":             folder.ID(),
				"root_folder":    folder.RootFolder,
				"path_from_root": folder.PathFromRoot,
			}
			if path, ok := folders.ResolveFolderPath(folder); ok {
				entry["path"] = path
			}
			list = append(list, entry)
		}

		response = map[string]interface{}{
			"root_folders": roots,
			"folders":      list,
			"total":        len(folders.Folders),
		}
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleListCollections handles the list_collections tool invocation
func (s *Server) handleListCollections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	var response map[string]interface{}
	err := s.withCatalog(ctx, getStringDefault(args, "path", ""), func(cat *catalog.Catalog) error {
		collections, err := cat.LoadCollections(ctx)
		if err != nil {
			return err
		}

		list := make([]map[string]interface{}, 0, len(collections))
		for _, c := range collections {
			entry := map[string]interface{}{
				"id":          c.ID(),
				"name":        c.Name,
				"parent":      c.Parent,
				"system_only": c.SystemOnly,
			}
			if c.Content != nil && c.Content.SmartCollection != nil {
				entry["smart"] = smartCollectionJSON(c.Content.SmartCollection)
			}
			list = append(list, entry)
		}

		response = map[string]interface{}{
			"collections": list,
		}
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleCollectionImages handles the collection_images tool invocation
func (s *Server) handleCollectionImages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	collection := getIntDefault(args, "collection", 0)
	if collection <= 0 {
		return nil, newMCPError(ErrorCodeInvalidParams, "collection parameter is required", map[string]interface{}{
			"param":  "collection",
			"reason": "missing or not a positive id",
		})
	}

	var response map[string]interface{}
	err := s.withCatalog(ctx, getStringDefault(args, "path", ""), func(cat *catalog.Catalog) error {
		ids, err := cat.ImagesForCollection(ctx, types.LrID(collection))
		if err != nil {
			return err
		}
		if ids == nil {
			ids = []types.LrID{}
		}
		response = map[string]interface{}{
			"collection": collection,
			"images":     ids,
		}
		return nil
	})
	if err != nil {
		return nil, catalogError(err)
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleParseLron handles the parse_lron tool invocation. A document that
// doesn't parse is a result, not a protocol error.
func (s *Server) handleParseLron(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	text, ok := args["text"].(string)
	if !ok || text == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "text parameter is required", map[string]interface{}{
			"param":  "text",
			"reason": "missing or empty",
		})
	}

	root, err := lron.Parse(text)
	if err != nil {
		response := map[string]interface{}{
			"valid": false,
			"error": err.Error(),
		}
		var parseErr *lron.ParseError
		if errors.As(err, &parseErr) {
			response["line"] = parseErr.Line
			response["column"] = parseErr.Column
			response["expected"] = parseErr.Expected
		}
		return mcp.NewToolResultText(formatJSON(response)), nil
	}

	response := map[string]interface{}{
		"valid": true,
		"root":  lronJSON(root),
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// smartCollectionJSON describes a smart collection's rules
func smartCollectionJSON(sc *catalog.SmartCollection) map[string]interface{} {
	rules := make([]map[string]interface{}, 0)
	for _, r := range sc.Rules() {
		rule := map[string]interface{}{
			"criteria":  r.Criteria,
			"operation": r.Operation,
		}
		if r.Value != nil {
			rule["value"] = lronJSON(r.Value)
		}
		if r.Value2 != nil {
			rule["value2"] = lronJSON(r.Value2)
		}
		rules = append(rules, rule)
	}
	return map[string]interface{}{
		"combine": sc.Combine(),
		"rules":   rules,
	}
}

// lronJSON converts a parsed tree to JSON-friendly values. Dicts become
// arrays since keys may repeat and order matters.
func lronJSON(v interface{}) interface{} {
	switch v := v.(type) {
	case *lron.Pair:
		return map[string]interface{}{"key": v.Key, "value": lronJSON(v.Value)}
	case lron.Dict:
		items := make([]interface{}, 0, len(v))
		for _, o := range v {
			items = append(items, lronJSON(o))
		}
		return items
	case lron.Str:
		return string(v)
	case lron.ZStr:
		return map[string]interface{}{"zstr": string(v)}
	case lron.Int:
		return int64(v)
	case lron.Float:
		return float64(v)
	case lron.Bool:
		return bool(v)
	default:
		return nil
	}
}

// catalogError maps catalog failures to MCP errors
func catalogError(err error) error {
	switch {
	case errors.Is(err, ErrPathRequired), errors.Is(err, ErrPathNotAbsolute):
		return newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	case errors.Is(err, ErrPathNotFound), errors.Is(err, ErrPathNotReadable), errors.Is(err, ErrIsDirectory):
		return newMCPError(ErrorCodeCatalogNotFound, "catalog not found", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	case errors.Is(err, catalog.ErrUnsupportedVersion):
		return newMCPError(ErrorCodeUnsupportedVersion, "unsupported catalog version", map[string]interface{}{
			"error": err.Error(),
		})
	default:
		return newMCPError(ErrorCodeInternalError, "catalog read failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return defaultValue
}
