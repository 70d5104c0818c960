package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/services"
)

// TagHandler coordinates tag-related HTTP handlers.
type TagHandler struct {
	tagService *services.TagService
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(tagService *services.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// ListTags returns all tags.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagService.GetAllTags()
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag creates a new tag.
func (h *TagHandler) CreateTag(c *gin.Context) {
	type CreateTagRequest struct {
		Title string `json:"title" binding:"required"`
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, "invalid request body")
		return
	}

	tag, err := h.tagService.CreateTag(req.Title)
	if err != nil {
		apperrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}
