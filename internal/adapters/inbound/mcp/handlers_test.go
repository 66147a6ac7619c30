package mcp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

// Nowruz 1404.
var fixedNow = time.Date(2025, 3, 21, 12, 0, 0, 0, time.UTC)

func testHandlers(t *testing.T) *handlers {
	t.Helper()
	h := newHandlers(t.TempDir(), zap.NewNop())
	h.now = func() time.Time { return fixedNow }
	return h
}

func callTool(t *testing.T, name string, args map[string]any) mcplib.CallToolRequest {
	t.Helper()
	return mcplib.CallToolRequest{Params: mcplib.CallToolParams{Name: name, Arguments: args}}
}

func resultText(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := mcplib.AsTextContent(res.Content[0])
	require.True(t, ok)
	return tc.Text
}

func TestHandleEvaluate_ExplicitArguments(t *testing.T) {
	h := testHandlers(t)
	res, err := h.handleEvaluate()(context.Background(), callTool(t, "growthcheck_evaluate", map[string]any{
		"gender":         "female",
		"birth_date":     "1394/01/01",
		"height_cm":      140.0,
		"weight_kg":      32.0,
		"activity_level": "moderate",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))

	var ev domain.Evaluation
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &ev))
	assert.Equal(t, domain.CategoryNormal, ev.Category)
	assert.Equal(t, jalali.Date{Year: 1404, Month: 1, Day: 1}, ev.Input.ReferenceDate)
	require.NotNil(t, ev.ZScore)

	entries, err := h.evaluate.History(h.dataDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHandleEvaluate_FillsFromProfile(t *testing.T) {
	h := testHandlers(t)
	_, err := h.profiles.Save(h.dataDir, domain.Profile{
		Gender:        domain.GenderMale,
		BirthDate:     jalali.Date{Year: 1370, Month: 1, Day: 1},
		HeightCm:      175,
		ActivityLevel: domain.ActivitySedentary,
	})
	require.NoError(t, err)

	res, err := h.handleEvaluate()(context.Background(), callTool(t, "growthcheck_evaluate", map[string]any{
		"weight_kg": 90.0,
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, resultText(t, res))
	assert.Contains(t, resultText(t, res), `"category": "overweight"`)
}

func TestHandleEvaluate_ReportsErrorKind(t *testing.T) {
	h := testHandlers(t)
	res, err := h.handleEvaluate()(context.Background(), callTool(t, "growthcheck_evaluate", map[string]any{
		"gender":         "male",
		"birth_date":     "1405/01/01",
		"height_cm":      150.0,
		"weight_kg":      40.0,
		"activity_level": "light",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, "FutureBirthDate", payload["kind"])
}

func TestHandleEvaluate_MissingWeight(t *testing.T) {
	res, err := testHandlers(t).handleEvaluate()(context.Background(), callTool(t, "growthcheck_evaluate", map[string]any{}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "weight_kg")
}

func TestHandleConvertDate(t *testing.T) {
	h := testHandlers(t)

	res, err := h.handleConvertDate()(context.Background(), callTool(t, "growthcheck_convert_date", map[string]any{
		"date": "1403/12/30",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError)
	var info jalali.Info
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &info))
	assert.Equal(t, "2025-03-20", info.Gregorian)
	assert.Equal(t, "Thursday", info.Weekday)
	assert.True(t, info.LeapYear)
	assert.Equal(t, 30, info.DaysInMonth)

	res, err = h.handleConvertDate()(context.Background(), callTool(t, "growthcheck_convert_date", map[string]any{
		"date": "2025-03-21",
		"from": "gregorian",
	}))
	require.NoError(t, err)
	assert.Contains(t, resultText(t, res), `"jalali": "1404/01/01"`)

	res, err = h.handleConvertDate()(context.Background(), callTool(t, "growthcheck_convert_date", map[string]any{
		"date": "1404/12/30",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "InvalidCalendarDate")
}

func TestHandleHistory_EmptyAndLimited(t *testing.T) {
	h := testHandlers(t)
	res, err := h.handleHistory()(context.Background(), callTool(t, "growthcheck_history", nil))
	require.NoError(t, err)
	assert.Equal(t, "[]", resultText(t, res))

	for _, w := range []float64{30, 31, 32} {
		_, err := h.evaluate.Evaluate(h.dataDir, domain.EvaluationInput{
			Gender:        domain.GenderFemale,
			BirthDate:     jalali.Date{Year: 1394, Month: 1, Day: 1},
			ReferenceDate: jalali.Date{Year: 1404, Month: 1, Day: 1},
			HeightCm:      140,
			WeightKg:      w,
			ActivityLevel: domain.ActivityLight,
		})
		require.NoError(t, err)
	}

	res, err = h.handleHistory()(context.Background(), callTool(t, "growthcheck_history", map[string]any{"limit": 2.0}))
	require.NoError(t, err)
	var entries []domain.HistoryEntry
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 32.0, entries[0].Evaluation.Input.WeightKg)
}

func TestHandleProfile_NotFound(t *testing.T) {
	res, err := testHandlers(t).handleProfile()(context.Background(), callTool(t, "growthcheck_profile", nil))
	require.NoError(t, err)
	assert.True(t, res.IsError)
}

func TestHandleReferenceResource(t *testing.T) {
	h := testHandlers(t)
	uri := "growthcheck://reference/female"
	contents, err := h.handleReferenceResource()(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{URI: uri},
	})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := mcplib.AsTextResourceContents(contents[0])
	require.True(t, ok)
	assert.Equal(t, uri, text.URI)
	assert.Contains(t, text.Text, `"month": 60`)
	assert.Contains(t, text.Text, `"month": 228`)

	_, err = h.handleReferenceResource()(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{URI: "growthcheck://reference/other"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHandleHistoryResource_Empty(t *testing.T) {
	contents, err := testHandlers(t).handleHistoryResource()(context.Background(), mcplib.ReadResourceRequest{
		Params: mcplib.ReadResourceParams{URI: "growthcheck://history"},
	})
	require.NoError(t, err)
	text, ok := mcplib.AsTextResourceContents(contents[0])
	require.True(t, ok)
	assert.Equal(t, "[]", text.Text)
}
