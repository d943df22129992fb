package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/valpere/llm-api/internal"
)

func (s *Server) handleTranslate(c *gin.Context) {
	var req internal.TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithDetail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// A client hanging up does not abort the upstream call.
	ctx := context.WithoutCancel(c.Request.Context())

	translated, err := s.translator.Translate(ctx, *req.InputStr)
	if err != nil {
		abortWithDetail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, internal.TranslationResponse{TranslatedText: translated})
}

func abortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, internal.ErrorResponse{Detail: detail})
}
