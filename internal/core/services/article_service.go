package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/utils"
)

const defaultArticleLimit = 999

// articleService implements the ArticleSvcFacade interface
type articleService struct {
	BaseService
	articleRepo portsrepo.ArticleRepositoryFacade
}

// ArticleServiceOption is a functional option for configuring the article service
type ArticleServiceOption func(*articleService)

// WithArticleClock overrides the clock used for creation timestamps.
func WithArticleClock(clock func() time.Time) ArticleServiceOption {
	return func(s *articleService) {
		s.Clock = clock
	}
}

// NewArticleService creates a new article catalog service.
func NewArticleService(repo portsrepo.ArticleRepositoryFacade, options ...ArticleServiceOption) portssvc.ArticleSvcFacade {
	svc := &articleService{articleRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ArticleSvcFacade = (*articleService)(nil)

func (s *articleService) articleFromRequest(req dto.CreateArticleRequest) (domain.Article, error) {
	name := utils.SanitizeText(req.Name)
	if name == "" {
		return domain.Article{}, apperrors.NewValidationFailedError("Name must not be empty.")
	}
	if req.Amount == nil {
		return domain.Article{}, apperrors.NewValidationFailedError("Amount is required.")
	}
	return domain.Article{
		Name:       name,
		Barcode:    utils.SanitizeOptional(req.Barcode),
		UnitAmount: *req.Amount,
		CreatedAt:  s.Now(),
	}, nil
}

func (s *articleService) CreateArticle(ctx context.Context, req dto.CreateArticleRequest) (*domain.ArticleObject, error) {
	article, err := s.articleFromRequest(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.articleRepo.SaveArticle(ctx, article)
	if err != nil {
		s.LogError(ctx, err, "Failed to save article", slog.String("name", article.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Article created", slog.Int64("article_id", saved.ID), slog.String("name", saved.Name))
	return domain.NewArticleObject([]domain.Article{*saved}), nil
}

func (s *articleService) ReplaceArticle(ctx context.Context, oldID int64, req dto.CreateArticleRequest) (*domain.ArticleObject, error) {
	next, err := s.articleFromRequest(req)
	if err != nil {
		return nil, err
	}

	saved, err := s.articleRepo.ReplaceArticle(ctx, oldID, next)
	if err != nil {
		s.LogError(ctx, err, "Failed to replace article", slog.Int64("article_id", oldID))
		return nil, err
	}

	s.LogInfo(ctx, "Article replaced", slog.Int64("article_id", saved.ID), slog.Int64("precursor_id", oldID))
	return saved, nil
}

func (s *articleService) DeactivateArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error) {
	if _, err := s.articleRepo.DeactivateArticle(ctx, articleID); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Article deactivated", slog.Int64("article_id", articleID))
	return s.articleRepo.FindArticleChain(ctx, articleID)
}

func (s *articleService) GetArticle(ctx context.Context, articleID int64) (*domain.ArticleObject, error) {
	return s.articleRepo.FindArticleChain(ctx, articleID)
}

func (s *articleService) ListArticles(ctx context.Context, params dto.ListArticlesParams) ([]domain.ArticleObject, error) {
	filter := portsrepo.ArticleFilter{Active: true, Limit: defaultArticleLimit, Offset: params.Offset}
	if params.Active != nil {
		filter.Active = *params.Active
	}
	if params.Limit > 0 {
		filter.Limit = params.Limit
	}

	heads, err := s.articleRepo.ListHeadArticles(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ArticleObject, 0, len(heads))
	if !params.WithAncestors() {
		for _, head := range heads {
			out = append(out, domain.ArticleObject{Article: head})
		}
		return out, nil
	}

	ids := make([]int64, len(heads))
	for i, head := range heads {
		ids[i] = head.ID
	}
	arena, err := s.articleRepo.FindAncestors(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, head := range heads {
		obj := domain.ResolveArticle(arena, head.ID)
		if obj == nil {
			// replaced between the two queries; the head row itself is still valid
			obj = &domain.ArticleObject{Article: head}
		}
		out = append(out, *obj)
	}
	return out, nil
}
