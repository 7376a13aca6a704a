package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/os4p/engine/internal/apperrors"
	"github.com/os4p/engine/internal/engine"
	"github.com/os4p/engine/internal/sensitivity"
)

const ctxKeyRequestID = "request_id"

// errorBody is the error envelope. Validation failures surface the
// user-facing message; anything else stays generic.
type errorBody struct {
	Error string `json:"error"`
}

// sweepRequest asks for a one-parameter sensitivity series. Either an
// explicit value list or an inclusive from/to/steps range is accepted.
type sweepRequest struct {
	Input     engine.Input `json:"input"`
	Parameter string       `json:"parameter"`
	Values    []float64    `json:"values"`
	From      float64      `json:"from"`
	To        float64      `json:"to"`
	Steps     int          `json:"steps"`
}

// handleCalculate serves the form submission: binds the five deployment
// parameters from JSON or form encoding and returns the merged result
// object whose field names the existing consumer depends on.
func (s *Server) handleCalculate(c *gin.Context) {
	start := time.Now()

	var in engine.Input
	if err := c.ShouldBind(&in); err != nil {
		s.metrics.observe("bad_request", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, errorBody{Error: "malformed calculation request"})
		return
	}

	result, err := s.engine.Calculate(in)
	if err != nil {
		s.failCalculation(c, start, err)
		return
	}

	s.metrics.observe("ok", time.Since(start).Seconds())
	c.JSON(http.StatusOK, result)
}

// handleSweep serves the sensitivity-analysis consumer.
func (s *Server) handleSweep(c *gin.Context) {
	start := time.Now()

	var req sweepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.observe("bad_request", time.Since(start).Seconds())
		c.JSON(http.StatusBadRequest, errorBody{Error: "malformed sweep request"})
		return
	}

	values := req.Values
	if len(values) == 0 && req.Steps > 0 {
		values = sensitivity.Range(req.From, req.To, req.Steps)
	}

	points, err := sensitivity.Sweep(s.engine, req.Input, sensitivity.Parameter(req.Parameter), values)
	if err != nil {
		s.failCalculation(c, start, err)
		return
	}

	s.metrics.observe("ok", time.Since(start).Seconds())
	c.JSON(http.StatusOK, gin.H{"parameter": req.Parameter, "points": points})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// failCalculation maps engine errors onto HTTP statuses: validation
// failures are the caller's to fix and never reported as internal faults.
func (s *Server) failCalculation(c *gin.Context, start time.Time, err error) {
	requestID := c.GetString(ctxKeyRequestID)

	if apperrors.IsValidation(err) {
		var appErr *apperrors.Error
		msg := "invalid input"
		if errors.As(err, &appErr) {
			msg = appErr.Message
		}
		s.metrics.observe("invalid_input", time.Since(start).Seconds())
		s.logger.Debug().Str("request_id", requestID).Err(err).Msg("calculation rejected")
		c.JSON(http.StatusBadRequest, errorBody{Error: msg})
		return
	}

	s.metrics.observe("error", time.Since(start).Seconds())
	s.logger.Error().Str("request_id", requestID).Err(err).Msg("calculation failed")
	c.JSON(http.StatusInternalServerError, errorBody{Error: "internal error"})
}
