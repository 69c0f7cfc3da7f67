package util

import (
	"fmt"
	"runtime/debug"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// LegacyHandler is the bare-arguments handler shape used by older tool code.
type LegacyHandler func(arguments map[string]interface{}) (*mcp.CallToolResult, error)

// AdaptLegacyHandler lifts a LegacyHandler to the server's handler type.
func AdaptLegacyHandler(handler LegacyHandler) server.ToolHandlerFunc {
	return server.ToolHandlerFunc(handler)
}

// ErrorGuard converts handler panics into tool error results so a bad call
// cannot take down the server.
func ErrorGuard(handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(arguments map[string]interface{}) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = mcp.NewToolResultError(fmt.Sprintf("Panic: %v\nStack trace:\n%s", r, debug.Stack()))
				err = nil
			}
		}()
		return handler(arguments)
	}
}
