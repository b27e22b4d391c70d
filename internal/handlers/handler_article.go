package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/middleware"
)

// articleHandler handles HTTP requests related to the article catalog.
type articleHandler struct {
	articleService portssvc.ArticleSvcFacade
}

// RegisterArticleRoutes registers catalog routes. Every write passes through adminOnly.
func RegisterArticleRoutes(rg *gin.RouterGroup, articleService portssvc.ArticleSvcFacade, adminOnly gin.HandlerFunc) {
	h := &articleHandler{articleService: articleService}

	articles := rg.Group("/article")
	{
		articles.GET("", h.listArticles)
		articles.POST("", adminOnly, h.createArticle)
		articles.GET("/:id", h.getArticle)
		articles.POST("/:id", adminOnly, h.replaceArticle)
		articles.DELETE("/:id", adminOnly, h.deactivateArticle)
	}
}

// listArticles godoc
// @Summary List articles
// @Description Lists the newest revision of each article ordered by name
// @Tags articles
// @Produce json
// @Param active query bool false "Active (default) or retired articles"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Param ancestor query bool false "Include replaced revisions"
// @Success 200 {object} dto.ArticlesResponse
// @Router /article [get]
func (h *articleHandler) listArticles(c *gin.Context) {
	var params dto.ListArticlesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	articles, err := h.articleService.ListArticles(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list articles")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticlesResponse(articles))
}

// getArticle godoc
// @Summary Get an article with its history
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Router /article/{id} [get]
func (h *articleHandler) getArticle(c *gin.Context) {
	articleID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.GetArticle(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err, "Failed to retrieve article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// createArticle godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Param article body dto.CreateArticleRequest true "Article details"
// @Success 201 {object} dto.ArticleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "An active article with this name or barcode exists"
// @Security BearerAuth
// @Router /article [post]
func (h *articleHandler) createArticle(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create article")
		return
	}
	c.JSON(http.StatusCreated, dto.ToArticleResponse(article))
}

// replaceArticle godoc
// @Summary Replace an article by a new revision
// @Description Stores the new revision and retires the old one. Usage counts carry over.
// @Tags articles
// @Accept json
// @Produce json
// @Param id path int true "ID of the revision to replace"
// @Param article body dto.CreateArticleRequest true "New revision"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Failure 409 {object} map[string]string "Article is inactive"
// @Security BearerAuth
// @Router /article/{id} [post]
func (h *articleHandler) replaceArticle(c *gin.Context) {
	articleID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	article, err := h.articleService.ReplaceArticle(c.Request.Context(), articleID, req)
	if err != nil {
		respondError(c, err, "Failed to replace article")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Article replaced",
		slog.Int64("precursor_id", articleID), slog.Int64("article_id", article.ID))
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}

// deactivateArticle godoc
// @Summary Retire an article
// @Tags articles
// @Produce json
// @Param id path int true "Article ID"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} map[string]string "Article not found"
// @Security BearerAuth
// @Router /article/{id} [delete]
func (h *articleHandler) deactivateArticle(c *gin.Context) {
	articleID, ok := int64Param(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.DeactivateArticle(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, err, "Failed to deactivate article")
		return
	}
	c.JSON(http.StatusOK, dto.ToArticleResponse(article))
}
