package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/growthcheck/internal/application"
	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

// registerTools registers all growthcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, h *handlers) {
	// 1. growthcheck_evaluate
	s.AddTool(
		mcplib.NewTool("growthcheck_evaluate",
			mcplib.WithDescription("Evaluate BMI, WHO BMI-for-age Z-score (ages 5-19), healthy weight range, BMR, TDEE and calorie targets. Dates are Jalali (YYYY/MM/DD). Fields left out are taken from the saved profile."),
			mcplib.WithNumber("weight_kg", mcplib.Required(), mcplib.Description("Body weight in kg")),
			mcplib.WithNumber("height_cm", mcplib.Description("Height in cm")),
			mcplib.WithString("gender", mcplib.Enum("male", "female"), mcplib.Description("Gender")),
			mcplib.WithString("birth_date", mcplib.Description("Jalali birth date, e.g. 1394/01/01")),
			mcplib.WithString("activity_level", mcplib.Description("sedentary, light, moderate, active or very_active")),
			mcplib.WithNumber("waist_cm", mcplib.Description("Optional waist circumference in cm")),
			mcplib.WithString("reference_date", mcplib.Description("Jalali evaluation date (defaults to today)")),
		),
		h.handleEvaluate(),
	)

	// 2. growthcheck_convert_date
	s.AddTool(
		mcplib.NewTool("growthcheck_convert_date",
			mcplib.WithDescription("Convert a date between the Jalali and Gregorian calendars"),
			mcplib.WithString("date", mcplib.Required(), mcplib.Description("Date as YYYY/MM/DD or YYYY-MM-DD")),
			mcplib.WithString("from",
				mcplib.Enum("jalali", "gregorian"),
				mcplib.Description("Calendar of the given date (default: jalali)"),
			),
		),
		h.handleConvertDate(),
	)

	// 3. growthcheck_history
	s.AddTool(
		mcplib.NewTool("growthcheck_history",
			mcplib.WithDescription("Returns stored evaluations, newest first"),
			mcplib.WithNumber("limit", mcplib.Description("Maximum number of entries (default: all)")),
		),
		h.handleHistory(),
	)

	// 4. growthcheck_profile
	s.AddTool(
		mcplib.NewTool("growthcheck_profile",
			mcplib.WithDescription("Returns the saved profile used to fill in evaluation fields"),
		),
		h.handleProfile(),
	)
}

func (h *handlers) handleEvaluate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		weight, err := request.RequireFloat("weight_kg")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		in, err := h.inputFromRequest(request, weight)
		if err != nil {
			return evaluationError(err), nil
		}

		ev, err := h.evaluate.Evaluate(h.dataDir, in)
		if err != nil {
			return evaluationError(err), nil
		}
		return jsonResult(ev)
	}
}

// inputFromRequest starts from the saved profile, when there is one, and
// overlays every argument the caller supplied.
func (h *handlers) inputFromRequest(request mcplib.CallToolRequest, weight float64) (domain.EvaluationInput, error) {
	in, _, err := h.profiles.BaseInput(h.dataDir, weight, request.GetFloat("waist_cm", 0), jalali.FromTime(h.now()))
	if err != nil {
		return in, err
	}
	err = application.InputOverrides{
		Gender:        request.GetString("gender", ""),
		BirthDate:     request.GetString("birth_date", ""),
		ReferenceDate: request.GetString("reference_date", ""),
		ActivityLevel: request.GetString("activity_level", ""),
		HeightCm:      request.GetFloat("height_cm", 0),
	}.Apply(&in)
	return in, err
}

func (h *handlers) handleConvertDate() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		raw, err := request.RequireString("date")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		var d jalali.Date
		switch request.GetString("from", "jalali") {
		case "gregorian":
			d, err = jalali.ParseGregorian(raw)
		default:
			d, err = jalali.Parse(raw)
		}
		if err != nil {
			return evaluationError(fmt.Errorf("%w: %v", domain.ErrInvalidCalendarDate, err)), nil
		}
		return jsonResult(d.Describe())
	}
}

func (h *handlers) handleHistory() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := h.evaluate.History(h.dataDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if limit := int(request.GetFloat("limit", 0)); limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return jsonResult(entries)
	}
}

func (h *handlers) handleProfile() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		p, err := h.profiles.Load(h.dataDir)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(p)
	}
}

// evaluationError reports a failure together with its stable kind.
func evaluationError(err error) *mcplib.CallToolResult {
	payload := map[string]string{"error": err.Error()}
	if kind := domain.ErrorKind(err); kind != "" {
		payload["kind"] = kind
	}
	data, _ := json.Marshal(payload)
	return errorResult(string(data))
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
