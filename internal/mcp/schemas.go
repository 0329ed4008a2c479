package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// catalogPathProperty is the optional catalog argument every catalog tool takes
func catalogPathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the .lrcat file. Defaults to the server's catalog (LRCAT_CATALOG)",
	}
}

// catalogInfoTool returns the tool definition for catalog_info
func catalogInfoTool() mcp.Tool {
	return mcp.Tool{
		Name:        "catalog_info",
		Description: "Report the schema version and root keyword of a Lightroom catalog",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": catalogPathProperty(),
			},
		},
	}
}

// listKeywordsTool returns the tool definition for list_keywords
func listKeywordsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_keywords",
		Description: "List the child keywords of a keyword, the top level keywords by default",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": catalogPathProperty(),
				"parent": map[string]interface{}{
					"type":        "integer",
					"description": "Id of the parent keyword. Defaults to the root keyword",
				},
			},
		},
	}
}

// listFoldersTool returns the tool definition for list_folders
func listFoldersTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_folders",
		Description: "List the root folders and folders of a catalog with their resolved paths",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": catalogPathProperty(),
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of folders to return (1-10000)",
					"default":     1000,
					"minimum":     1,
					"maximum":     10000,
				},
			},
		},
	}
}

// listCollectionsTool returns the tool definition for list_collections
func listCollectionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_collections",
		Description: "List the collections of a catalog, with smart collection rules",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": catalogPathProperty(),
			},
		},
	}
}

// collectionImagesTool returns the tool definition for collection_images
func collectionImagesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "collection_images",
		Description: "List the ids of the images in a collection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": catalogPathProperty(),
				"collection": map[string]interface{}{
					"type":        "integer",
					"description": "Id of the collection",
				},
			},
			Required: []string{"collection"},
		},
	}
}

// parseLronTool returns the tool definition for parse_lron
func parseLronTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_lron",
		Description: "Parse a Lightroom structured text value (name = { ... }) and return its tree",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"text": map[string]interface{}{
					"type":        "string",
					"description": "Document to parse, e.g. a smart collection definition",
				},
			},
			Required: []string{"text"},
		},
	}
}
