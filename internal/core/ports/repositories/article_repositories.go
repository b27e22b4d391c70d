package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/core/domain"
)

// ArticleFilter narrows ListHeadArticles.
type ArticleFilter struct {
	Active bool
	Limit  int
	Offset int
}

// ArticleReader defines read operations for the article catalog
type ArticleReader interface {
	// FindArticleByID retrieves a single revision, active or not. Returns apperrors.ErrNotFound if absent.
	FindArticleByID(ctx context.Context, articleID int64) (*domain.Article, error)

	// FindArticleChain retrieves articleID together with every revision it replaced.
	FindArticleChain(ctx context.Context, articleID int64) (*domain.ArticleObject, error)

	// FindAncestors loads every revision reachable from the given ids, the ids included.
	FindAncestors(ctx context.Context, articleIDs []int64) (domain.Arena[domain.Article], error)

	// ListHeadArticles retrieves revisions that no other revision replaced, ordered by name.
	ListHeadArticles(ctx context.Context, filter ArticleFilter) ([]domain.Article, error)
}

// ArticleWriter defines write operations for the article catalog
type ArticleWriter interface {
	// SaveArticle inserts a new root revision and returns it with its id assigned.
	SaveArticle(ctx context.Context, article domain.Article) (*domain.Article, error)

	// ReplaceArticle inserts next as the successor of oldID and deactivates
	// oldID in one transaction, returning the successor with its history.
	// Fails with a conflict if oldID is inactive.
	ReplaceArticle(ctx context.Context, oldID int64, next domain.Article) (*domain.ArticleObject, error)

	// DeactivateArticle sets active=false and returns the updated revision.
	DeactivateArticle(ctx context.Context, articleID int64) (*domain.Article, error)
}

// ArticleTransactionSupport defines operations used by the transaction engine
type ArticleTransactionSupport interface {
	// FindArticleChainInTx is FindArticleChain within a given transaction. The
	// requested revision stays share-locked until the transaction ends.
	FindArticleChainInTx(ctx context.Context, tx pgx.Tx, articleID int64) (*domain.ArticleObject, error)

	// IncrementUsageCountInTx records one purchase of articleID.
	IncrementUsageCountInTx(ctx context.Context, tx pgx.Tx, articleID int64) error
}

// ArticleRepositoryFacade combines all article-related repository interfaces
type ArticleRepositoryFacade interface {
	ArticleReader
	ArticleWriter
	ArticleTransactionSupport
}
