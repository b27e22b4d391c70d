package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	"github.com/sake/strichliste/internal/models"
	"github.com/sake/strichliste/internal/utils/mapping"
)

const articleColumns = `id, precursor_id, name, barcode, unit_amount, active, usage_count, created_at`

// ancestorsQuery loads the given revisions and everything they replaced.
const ancestorsQuery = `
	WITH RECURSIVE chain AS (
		SELECT ` + articleColumns + ` FROM articles WHERE id = ANY($1)
		UNION
		SELECT a.id, a.precursor_id, a.name, a.barcode, a.unit_amount, a.active, a.usage_count, a.created_at
		FROM articles a
		JOIN chain c ON a.id = c.precursor_id
	)
	SELECT ` + articleColumns + ` FROM chain;
`

type PgxArticleRepository struct {
	BaseRepository
}

// newPgxArticleRepository creates a new repository for the article catalog.
func newPgxArticleRepository(pool DBPool, lockTimeout time.Duration) *PgxArticleRepository {
	return &PgxArticleRepository{BaseRepository: BaseRepository{Pool: pool, LockTimeout: lockTimeout}}
}

var _ portsrepo.ArticleRepositoryFacade = (*PgxArticleRepository)(nil)

func scanArticle(row rowScanner) (models.Article, error) {
	var m models.Article
	err := row.Scan(&m.ID, &m.PrecursorID, &m.Name, &m.Barcode, &m.UnitAmount, &m.Active, &m.UsageCount, &m.CreatedAt)
	return m, err
}

func collectArticles(rows pgx.Rows) ([]models.Article, error) {
	defer rows.Close()
	var out []models.Article
	for rows.Next() {
		m, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func articleNotFound(articleID int64) error {
	return apperrors.NewEntityNotFoundError("article", fmt.Sprintf("Article %d does not exist.", articleID))
}

// FindArticleByID retrieves a single revision.
func (r *PgxArticleRepository) FindArticleByID(ctx context.Context, articleID int64) (*domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1;`

	m, err := scanArticle(r.Pool.QueryRow(ctx, query, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, articleNotFound(articleID)
		}
		return nil, classifyError(fmt.Sprintf("failed to find article %d", articleID), err)
	}
	a := mapping.ToDomainArticle(m)
	return &a, nil
}

func loadAncestors(ctx context.Context, q querier, articleIDs []int64) (domain.Arena[domain.Article], error) {
	if len(articleIDs) == 0 {
		return domain.Arena[domain.Article]{}, nil
	}
	rows, err := q.Query(ctx, ancestorsQuery, articleIDs)
	if err != nil {
		return nil, classifyError("failed to query article chain", err)
	}
	ms, err := collectArticles(rows)
	if err != nil {
		return nil, classifyError("failed to scan article chain", err)
	}
	return mapping.ToArticleArena(ms), nil
}

func findChain(ctx context.Context, q querier, articleID int64) (*domain.ArticleObject, error) {
	arena, err := loadAncestors(ctx, q, []int64{articleID})
	if err != nil {
		return nil, err
	}
	obj := domain.ResolveArticle(arena, articleID)
	if obj == nil {
		return nil, articleNotFound(articleID)
	}
	return obj, nil
}

// FindArticleChain retrieves a revision with its full history.
func (r *PgxArticleRepository) FindArticleChain(ctx context.Context, articleID int64) (*domain.ArticleObject, error) {
	return findChain(ctx, r.Pool, articleID)
}

// FindAncestors loads every revision reachable from articleIDs.
func (r *PgxArticleRepository) FindAncestors(ctx context.Context, articleIDs []int64) (domain.Arena[domain.Article], error) {
	return loadAncestors(ctx, r.Pool, articleIDs)
}

// ListHeadArticles retrieves the newest revision of each catalog item.
func (r *PgxArticleRepository) ListHeadArticles(ctx context.Context, filter portsrepo.ArticleFilter) ([]domain.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles a
		WHERE a.active = $1
		  AND NOT EXISTS (SELECT 1 FROM articles s WHERE s.precursor_id = a.id)
		ORDER BY a.name, a.id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, filter.Active, filter.Limit, filter.Offset)
	if err != nil {
		return nil, classifyError("failed to list articles", err)
	}
	ms, err := collectArticles(rows)
	if err != nil {
		return nil, classifyError("failed to scan article rows", err)
	}

	out := make([]domain.Article, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainArticle(m)
	}
	return out, nil
}

func insertArticle(ctx context.Context, q querier, article domain.Article) (*domain.Article, error) {
	m := mapping.ToModelArticle(article)
	query := `
		INSERT INTO articles (precursor_id, name, barcode, unit_amount, active, usage_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + articleColumns + `;
	`
	saved, err := scanArticle(q.QueryRow(ctx, query,
		m.PrecursorID, m.Name, m.Barcode, m.UnitAmount, m.Active, m.UsageCount, m.CreatedAt,
	))
	if err != nil {
		return nil, classifyError(fmt.Sprintf("failed to save article %q", m.Name), err)
	}
	a := mapping.ToDomainArticle(saved)
	return &a, nil
}

// SaveArticle inserts a new root revision.
func (r *PgxArticleRepository) SaveArticle(ctx context.Context, article domain.Article) (*domain.Article, error) {
	article.PrecursorID = nil
	article.Active = true
	article.UsageCount = 0
	return insertArticle(ctx, r.Pool, article)
}

// ReplaceArticle deactivates oldID and inserts next as its successor, carrying
// the usage count forward. The returned chain is read before commit.
func (r *PgxArticleRepository) ReplaceArticle(ctx context.Context, oldID int64, next domain.Article) (*domain.ArticleObject, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + articleColumns + ` FROM articles WHERE id = $1 FOR UPDATE;`
	m, err := scanArticle(tx.QueryRow(ctx, lockQuery, oldID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, articleNotFound(oldID)
		}
		return nil, classifyError(fmt.Sprintf("failed to lock article %d", oldID), err)
	}
	if !m.Active {
		return nil, apperrors.NewConflictError(fmt.Sprintf("Article %d is inactive and cannot be replaced.", oldID), nil)
	}

	// the predecessor must be inactive before the successor claims its name
	if _, err := tx.Exec(ctx, `UPDATE articles SET active = false WHERE id = $1;`, oldID); err != nil {
		return nil, classifyError(fmt.Sprintf("failed to deactivate article %d", oldID), err)
	}

	next.PrecursorID = &oldID
	next.Active = true
	next.UsageCount = m.UsageCount
	saved, err := insertArticle(ctx, tx, next)
	if err != nil {
		return nil, err
	}
	chain, err := findChain(ctx, tx, saved.ID)
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return chain, nil
}

// DeactivateArticle sets active=false unconditionally.
func (r *PgxArticleRepository) DeactivateArticle(ctx context.Context, articleID int64) (*domain.Article, error) {
	query := `UPDATE articles SET active = false WHERE id = $1 RETURNING ` + articleColumns + `;`

	m, err := scanArticle(r.Pool.QueryRow(ctx, query, articleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, articleNotFound(articleID)
		}
		return nil, classifyError(fmt.Sprintf("failed to deactivate article %d", articleID), err)
	}
	a := mapping.ToDomainArticle(m)
	return &a, nil
}

// FindArticleChainInTx retrieves a revision with its history inside tx. The
// requested row is share-locked until tx ends, so a concurrent replace or
// deactivate either waits for tx or is seen by it.
func (r *PgxArticleRepository) FindArticleChainInTx(ctx context.Context, tx pgx.Tx, articleID int64) (*domain.ArticleObject, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM articles WHERE id = $1 FOR SHARE;`, articleID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, articleNotFound(articleID)
		}
		return nil, classifyError(fmt.Sprintf("failed to lock article %d", articleID), err)
	}
	return findChain(ctx, tx, articleID)
}

// IncrementUsageCountInTx records one purchase. Inactive revisions are never
// counted; their usage has already been carried to the successor.
func (r *PgxArticleRepository) IncrementUsageCountInTx(ctx context.Context, tx pgx.Tx, articleID int64) error {
	query := `UPDATE articles SET usage_count = usage_count + 1 WHERE id = $1 AND active;`

	tag, err := tx.Exec(ctx, query, articleID)
	if err != nil {
		return classifyError(fmt.Sprintf("failed to increment usage of article %d", articleID), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewEntityNotFoundError("article", "Article does not exist.")
	}
	return nil
}
