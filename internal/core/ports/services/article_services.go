package services

import (
	"context"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/sake/strichliste/internal/dto"
)

// ArticleReaderSvc defines read operations for the article catalog
type ArticleReaderSvc interface {
	// GetArticle resolves an article together with every revision it replaced.
	GetArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error)

	// ListArticles lists the newest revision of each article, ordered by name.
	ListArticles(ctx context.Context, params dto.ListArticlesParams) ([]domain.ArticleObject, error)
}

// ArticleWriterSvc defines write operations for the article catalog
type ArticleWriterSvc interface {
	// CreateArticle adds a new article without history.
	CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.ArticleObject, error)

	// ReplaceArticle stores a new revision of an active article and retires the old one.
	ReplaceArticle(ctx context.Context, oldID int64, req dto.CreateArticleRequest) (*domain.ArticleObject, error)

	// DeactivateArticle retires an article revision.
	DeactivateArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error)
}

// ArticleSvcFacade combines all article-related service interfaces
type ArticleSvcFacade interface {
	ArticleReaderSvc
	ArticleWriterSvc
}
