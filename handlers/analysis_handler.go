package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"casetriage-backend/agent"
	"casetriage-backend/models"
	"casetriage-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalysisHandler handles HTTP requests for case analyses
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// AnalyzeRequest represents the request body for a case analysis
type AnalyzeRequest struct {
	Text     string               `json:"text" binding:"required"`
	Metadata *models.CaseMetadata `json:"metadata"`
}

// AnalyzeCase handles POST /api/analyze (synchronous analysis)
func (h *AnalysisHandler) AnalyzeCase(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.analysisService.AnalyzeCase(c.Request.Context(), service.AnalyzeCaseRequest{
		Input: models.CaseInput{Text: req.Text, Metadata: req.Metadata},
	})
	if err != nil {
		status := http.StatusInternalServerError
		code := "ANALYSIS_FAILED"

		var aggErr *agent.AggregationError
		if errors.As(err, &aggErr) {
			code = "AGGREGATION_FAILED"
		}
		if errors.Is(err, agent.ErrEmptyCaseText) {
			status = http.StatusBadRequest
			code = "INVALID_REQUEST"
		}

		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    code,
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Output,
	})
}

// StartAnalysis handles POST /api/analyses (asynchronous analysis)
func (h *AnalysisHandler) StartAnalysis(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	result, err := h.analysisService.StartAnalysis(c.Request.Context(), service.StartAnalysisRequest{
		Input: models.CaseInput{Text: req.Text, Metadata: req.Metadata},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_CREATE_FAILED",
				"message": err.Error(),
			},
		})
		return
	}

	jobID := result.Job.ID

	// Process in background; the client polls the job endpoint.
	go func() {
		if err := h.analysisService.ProcessAnalysis(context.Background(), jobID); err != nil {
			log.Printf("Warning: analysis job %s failed: %v", jobID, err)
		}
	}()

	c.JSON(http.StatusAccepted, gin.H{
		"success": true,
		"data": gin.H{
			"job_id": jobID,
			"status": result.Job.Status,
		},
	})
}

// GetJob handles GET /api/jobs/:id
func (h *AnalysisHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_JOB_ID",
				"message": "Invalid job id format",
			},
		})
		return
	}

	result, err := h.analysisService.GetJob(c.Request.Context(), service.GetJobRequest{JobID: jobID})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "JOB_NOT_FOUND",
				"message": err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Job,
	})
}
