package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/growthcheck/internal/domain"
)

const referencePrefix = "growthcheck://reference/"

// registerResources registers all growthcheck MCP resources on the given server.
func registerResources(s *server.MCPServer, h *handlers) {
	// 1. growthcheck://history - stored evaluations
	s.AddResource(
		mcplib.NewResource(
			"growthcheck://history",
			"Evaluation History",
			mcplib.WithResourceDescription("Stored evaluations, newest first"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleHistoryResource(),
	)

	// 2. growthcheck://profile - saved profile
	s.AddResource(
		mcplib.NewResource(
			"growthcheck://profile",
			"Profile",
			mcplib.WithResourceDescription("Saved profile used to fill in evaluation fields"),
			mcplib.WithMIMEType("application/json"),
		),
		h.handleProfileResource(),
	)

	// 3. growthcheck://reference/{gender} - LMS rows in use (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			referencePrefix+"{gender}",
			"Growth Reference",
			mcplib.WithTemplateDescription("WHO BMI-for-age LMS parameters for months 60-228 of one gender"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		h.handleReferenceResource(),
	)
}

func (h *handlers) handleHistoryResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := h.evaluate.History(h.dataDir)
		if err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return jsonContents(request.Params.URI, entries)
	}
}

func (h *handlers) handleProfileResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		p, err := h.profiles.Load(h.dataDir)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, p)
	}
}

func (h *handlers) handleReferenceResource() server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		gender, err := domain.ParseGender(strings.TrimPrefix(request.Params.URI, referencePrefix))
		if err != nil {
			return nil, err
		}

		cfg, err := h.configs.Load(h.dataDir)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		table, err := h.references.Load(h.dataDir, cfg.Reference)
		if err != nil {
			return nil, fmt.Errorf("loading growth reference: %w", err)
		}
		return jsonContents(request.Params.URI, table.Rows(gender.Sex()))
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
