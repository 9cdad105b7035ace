package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/icemanhv/forum/internal/auth"
	"github.com/icemanhv/forum/internal/service"
)

// ContentHandler serves the public article pages and comment submission.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new content handler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// CommentRequest represents the comment form on the article page.
type CommentRequest struct {
	Content string `json:"content" form:"content"`
}

// Index godoc
// @Summary List articles, newest first, 5 per page
// @Tags content
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.ArticlePage
// @Router / [get]
func (h *ContentHandler) Index(c echo.Context) error {
	page := pageParam(c)
	articles, err := h.contentService.ListArticles(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// Detail godoc
// @Summary View one article with author, tags and comments
// @Tags content
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} model.Blog
// @Failure 404 {object} errors.ErrorResponse
// @Router /blog_detail/{id} [get]
func (h *ContentHandler) Detail(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	blog, err := h.contentService.GetArticle(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, blog)
}

// ByTag godoc
// @Summary List articles carrying a tag
// @Tags content
// @Produce json
// @Param name path string true "Tag name"
// @Param page query int false "Page number" default(1)
// @Success 200 {object} service.ArticlePage
// @Failure 404 {object} errors.ErrorResponse
// @Router /tag/{name} [get]
func (h *ContentHandler) ByTag(c echo.Context) error {
	page := pageParam(c)
	articles, err := h.contentService.FilterByTag(c.Request().Context(), c.Param("name"), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, articles)
}

// AddComment godoc
// @Summary Add a comment to an article
// @Tags content
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param id path int true "Blog ID"
// @Param request body CommentRequest true "Comment text"
// @Success 201 {object} model.Comment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /add_comment/{id} [post]
func (h *ContentHandler) AddComment(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	session, err := auth.SessionFromContext(c)
	if err != nil {
		return httpError(err)
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.contentService.AddComment(c.Request().Context(), session, uint(id), req.Content)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, comment)
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
