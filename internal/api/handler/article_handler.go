package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shrigondanews/news-api/internal/core/domain"
	"github.com/shrigondanews/news-api/internal/core/ports"
)

// ArticleHandler handles HTTP requests for article operations.
type ArticleHandler struct {
	service ports.ArticleService
}

func NewArticleHandler(service ports.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// --- Request / Response types ---

type createArticleRequest struct {
	Title    string   `json:"title"    validate:"required"`
	Content  string   `json:"content"  validate:"required"`
	Excerpt  string   `json:"excerpt"`
	Category string   `json:"category" validate:"required,oneof=local regional national sports entertainment business"`
	Image    string   `json:"image"`
	Tags     []string `json:"tags"`
}

type updateArticleRequest struct {
	Title    *string   `json:"title"`
	Content  *string   `json:"content"`
	Excerpt  *string   `json:"excerpt"`
	Category *string   `json:"category"`
	Image    *string   `json:"image"`
	Tags     *[]string `json:"tags"`
	Status   *string   `json:"status"`
}

type articleListResponse struct {
	Articles []domain.Article `json:"articles"`
}

type articleResponse struct {
	Article *domain.Article `json:"article"`
}

type createArticleResponse struct {
	Message string          `json:"message"`
	Article *domain.Article `json:"article"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// List handles GET /news — the public feed.
//
// @Summary      List published articles
// @Tags         news
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Param        limit     query     int     false  "Maximum number of articles (default 50)"
// @Success      200       {object}  articleListResponse
// @Failure      500       {object}  map[string]string
// @Router       /news [get]
func (h *ArticleHandler) List(c echo.Context) error {
	var limit int64
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "limit must be a non-negative integer"})
		}
		limit = parsed
	}

	articles, err := h.service.List(c.Request().Context(), ports.ListArticlesInput{
		Category: c.QueryParam("category"),
		Limit:    limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, articleListResponse{Articles: articles})
}

// Get handles GET /news/:id — a single published article. Each call
// increments the article's view counter.
//
// @Summary      Get a published article
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  articleResponse
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Article not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, articleResponse{Article: article})
}

// Create handles POST /news. Editor or admin.
//
// @Summary      Create an article
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArticleRequest  true  "Article fields"
// @Success      200   {object}  createArticleResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /news [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	article, err := h.service.Create(c.Request().Context(), principal, ports.CreateArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Image:    req.Image,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createArticleResponse{Message: "Article created", Article: article})
}

// Update handles PUT /news/:id — a partial update. Editor or admin.
//
// @Summary      Update an article
// @Tags         news
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Article id"
// @Param        body  body      updateArticleRequest  true  "Fields to update"
// @Success      200   {object}  messageResponse
// @Failure      404   {object}  map[string]string
// @Router       /news/{id} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req updateArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	in := ports.UpdateArticleInput{
		Title:    req.Title,
		Content:  req.Content,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Image:    req.Image,
		Tags:     req.Tags,
	}
	if req.Status != nil {
		status := domain.ArticleStatus(*req.Status)
		if status != domain.StatusPublished && status != domain.StatusDraft {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "status must be published or draft"})
		}
		in.Status = &status
	}

	if err := h.service.Update(c.Request().Context(), c.Param("id"), in); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Article not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Article updated"})
}

// Delete handles DELETE /news/:id. Admin only.
//
// @Summary      Delete an article
// @Tags         news
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Article id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /news/{id} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrArticleNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Article not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Article deleted"})
}

// ListAll handles GET /admin/articles — every article regardless of publish
// status. Editor or admin.
//
// @Summary      List all articles for the dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  articleListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/articles [get]
func (h *ArticleHandler) ListAll(c echo.Context) error {
	articles, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, articleListResponse{Articles: articles})
}
