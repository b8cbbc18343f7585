package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guiyumin/urlcat/internal/categorize"
)

// batchRequest is the body of POST /api/classify
type batchRequest struct {
	URLs []string `json:"urls" binding:"required"`
}

type batchResponse struct {
	Results []categorize.Result `json:"results"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": categorize.Describe()})
}

func (s *Server) handleClassify(c *gin.Context) {
	raw, ok := c.GetQuery("url")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing url query parameter"})
		return
	}
	c.JSON(http.StatusOK, categorize.Classify(raw))
}

func (s *Server) handleClassifyBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if len(req.URLs) > s.cfg.MaxBatch {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("too many urls: %d (max %d)", len(req.URLs), s.cfg.MaxBatch),
		})
		return
	}

	results := make([]categorize.Result, len(req.URLs))
	for i, u := range req.URLs {
		results[i] = categorize.Classify(u)
	}
	c.JSON(http.StatusOK, batchResponse{Results: results})
}
