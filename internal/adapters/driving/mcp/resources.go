package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for SafeDrive resources.
const uriScheme = "safedrive://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "trips",
		Name:        "trips",
		Description: "All recorded trips in insertion order",
		MIMEType:    "application/json",
	}, s.handleTripsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "vehicles",
		Name:        "vehicles",
		Description: "All registered vehicles in insertion order",
		MIMEType:    "application/json",
	}, s.handleVehiclesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "drivers",
		Name:        "drivers",
		Description: "All registered drivers in insertion order",
		MIMEType:    "application/json",
	}, s.handleDriversResource)
}

func (s *Server) handleTripsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, "trips", s.ports.Records.Trips())
}

func (s *Server) handleVehiclesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, "vehicles", s.ports.Records.Vehicles())
}

func (s *Server) handleDriversResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, "drivers", s.ports.Records.Drivers())
}

// jsonResource renders v as the JSON content of uri. Nil slices render as [].
func jsonResource[T any](uri, kind string, v []T) (*mcp.ReadResourceResult, error) {
	if v == nil {
		v = []T{}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", kind, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
