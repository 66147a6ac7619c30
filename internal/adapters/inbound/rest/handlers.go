package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abdidvp/growthcheck/internal/application"
	"github.com/abdidvp/growthcheck/internal/domain"
	"github.com/abdidvp/growthcheck/internal/domain/jalali"
)

// EvaluateRequest is the body of POST /v1/evaluate. Fields left empty are
// taken from the saved profile.
type EvaluateRequest struct {
	Gender        string  `json:"gender"`
	BirthDate     string  `json:"birth_date"`
	ReferenceDate string  `json:"reference_date"`
	HeightCm      float64 `json:"height_cm"`
	WeightKg      float64 `json:"weight_kg" binding:"required"`
	WaistCm       float64 `json:"waist_cm"`
	ActivityLevel string  `json:"activity_level"`
}

func (h *Handler) Evaluate(c *gin.Context) {
	var req EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Invalid request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid request payload",
			"kind":  domain.ErrorKind(domain.ErrInvalidInput),
		})
		return
	}

	in, err := h.input(req)
	if err != nil {
		h.fail(c, err)
		return
	}

	ev, err := h.evaluate.Evaluate(h.dataDir, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (h *Handler) input(req EvaluateRequest) (domain.EvaluationInput, error) {
	in, _, err := h.profiles.BaseInput(h.dataDir, req.WeightKg, req.WaistCm, jalali.FromTime(h.now()))
	if err != nil {
		return in, err
	}
	err = application.InputOverrides{
		Gender:        req.Gender,
		BirthDate:     req.BirthDate,
		ReferenceDate: req.ReferenceDate,
		ActivityLevel: req.ActivityLevel,
		HeightCm:      req.HeightCm,
	}.Apply(&in)
	return in, err
}

func (h *Handler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	entries, err := h.evaluate.History(h.dataDir)
	if err != nil {
		h.fail(c, err)
		return
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *Handler) ClearHistory(c *gin.Context) {
	if err := h.evaluate.ClearHistory(h.dataDir); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Profile(c *gin.Context) {
	p, err := h.profiles.Load(h.dataDir)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) Today(c *gin.Context) {
	c.JSON(http.StatusOK, jalali.FromTime(h.now()).Describe())
}

// fail writes err with the status its kind maps to.
func (h *Handler) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	}
	body := gin.H{"error": err.Error()}
	if kind := domain.ErrorKind(err); kind != "" {
		body["kind"] = kind
	}
	c.JSON(status, body)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnsupportedAge), errors.Is(err, domain.ErrUndefinedInverse):
		return http.StatusUnprocessableEntity
	case domain.ErrorKind(err) != "":
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
