package llm

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	service *StoryService
	log     *zap.Logger
}

func NewHandler(service *StoryService, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// --------------------------------------------------
// GET /word2story?words=["a","b"]
// --------------------------------------------------
func (h *Handler) Word2Story(c *gin.Context) {
	var words []string
	raw := c.Query("words")
	if raw == "" || json.Unmarshal([]byte(raw), &words) != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid request",
		})
		return
	}

	story, err := h.service.Generate(c.Request.Context(), words)
	if err != nil {
		if errors.Is(err, ErrInvalidWords) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}

		h.log.Error("failed to generate story", zap.Strings("words", words), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "failed to generate story",
		})
		return
	}

	c.JSON(http.StatusOK, story)
}
