package scholar

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	searcher Searcher
	log      *zap.Logger
}

func NewHandler(searcher Searcher, log *zap.Logger) *Handler {
	return &Handler{searcher: searcher, log: log}
}

// --------------------------------------------------
// GET /content2articles?content=...
// --------------------------------------------------
func (h *Handler) Content2Articles(c *gin.Context) {
	content := c.Query("content")
	if content == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
		})
		return
	}

	keywords := ExtractKeywords(content)
	if len(keywords) == 0 {
		c.JSON(http.StatusOK, gin.H{"articles": []string{}})
		return
	}

	articles, err := h.searcher.Search(c.Request.Context(), keywords)
	if err != nil {
		h.log.Error("failed to search articles", zap.Strings("keywords", keywords), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to search articles",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
