// Package mcp implements the Model Context Protocol (MCP) server for lrcat.
//
// The server exposes read-only tools over Lightroom catalogs:
//   - catalog_info: schema version and root keyword
//   - list_keywords: children of a keyword in the keyword hierarchy
//   - list_folders: root folders and folders with their resolved paths
//   - list_collections: collections and smart collection rules
//   - collection_images: image ids of a collection
//   - parse_lron: parse a structured text value
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport:
//
//	Client → Server: {"method": "tools/call", "params": {...}}
//	Server → Client: {"result": {...}}
//
// # Catalogs
//
// Catalog tools take an optional absolute "path". Without it the server's
// default catalog is used, set with LRCAT_CATALOG or the -catalog flag.
// Each catalog is opened once, on first use, and kept open until the server
// stops. Calls on the same catalog are serialized.
//
// # Tool: list_keywords
//
//	Request:
//	{
//	  "name": "list_keywords",
//	  "arguments": {
//	    "path": "/photos/Lightroom Catalog.lrcat",
//	    "parent": 12
//	  }
//	}
//
//	Response:
//	{
//	  "parent": 12,
//	  "keywords": [
//	    {"id": 40, "uuid": "...", "name": "Cats", "children": 0}
//	  ],
//	  "total": 215
//	}
//
// # Tool: parse_lron
//
// A document that doesn't parse is reported in the result:
//
//	{
//	  "valid": false,
//	  "error": "lron: parse error at 1:12: expected \"}\"",
//	  "line": 1,
//	  "column": 12
//	}
//
// # MCP Client Configuration
//
//	{
//	  "mcpServers": {
//	    "lrcat": {
//	      "command": "/usr/local/bin/lrcat-mcp",
//	      "env": {
//	        "LRCAT_CATALOG": "/photos/Lightroom Catalog.lrcat"
//	      }
//	    }
//	  }
//	}
//
// # Error Handling
//
// Error codes:
//   - -32602: Invalid params (missing/invalid arguments)
//   - -32603: Internal error (query failure)
//   - -32001: Catalog not found
//   - -32002: Unsupported catalog version
//
// # Logging
//
// The server logs to stderr, stdout is reserved for the protocol. Set the
// level with LRCAT_LOG_LEVEL.
package mcp
