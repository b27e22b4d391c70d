package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sake/strichliste/internal/apperrors"
	"github.com/sake/strichliste/internal/core/domain"
	portsrepo "github.com/sake/strichliste/internal/core/ports/repositories"
	portssvc "github.com/sake/strichliste/internal/core/ports/services"
	"github.com/sake/strichliste/internal/dto"
	"github.com/sake/strichliste/internal/platform/metrics"
	"github.com/sake/strichliste/internal/utils"
)

const (
	reasonSenderMissing    = "Sender does not exist."
	reasonRecipientMissing = "Recipient does not exist."
	reasonArticleMissing   = "Article does not exist."
	reasonNoMatchingShape  = "Parameters don't match any addTransaction functionality."
)

// transactionService is the transaction engine. It is the only writer of
// account balances.
type transactionService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	articleRepo portsrepo.ArticleRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryWithTx
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithTransactionClock overrides the clock used for entry timestamps.
func WithTransactionClock(clock func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.Clock = clock
	}
}

// NewTransactionService creates the transaction engine.
func NewTransactionService(
	accountRepo portsrepo.AccountRepositoryFacade,
	articleRepo portsrepo.ArticleRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryWithTx,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		accountRepo: accountRepo,
		articleRepo: articleRepo,
		ledgerRepo:  ledgerRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// inTx runs fn inside one database transaction and records the outcome per kind.
func (s *transactionService) inTx(ctx context.Context, kind domain.TransactionKind, fn func(tx pgx.Tx) (*domain.TransactionObject, error)) (*domain.TransactionObject, error) {
	start := time.Now()
	result, err := s.runTx(ctx, fn)

	amount := int64(0)
	outcome := metrics.OutcomeCommitted
	if err != nil {
		outcome = strings.ToLower(string(apperrors.KindOf(err)))
	} else {
		amount = result.Amount
	}
	metrics.RecordLedgerTransaction(string(kind), outcome, amount, time.Since(start))
	return result, err
}

func (s *transactionService) runTx(ctx context.Context, fn func(tx pgx.Tx) (*domain.TransactionObject, error)) (*domain.TransactionObject, error) {
	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := s.ledgerRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back ledger transaction")
		}
	}()

	result, err := fn(tx)
	if err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return result, nil
}

// lockAccounts locks the given accounts in id order and returns them keyed by id.
func (s *transactionService) lockAccounts(ctx context.Context, tx pgx.Tx, ids ...int64) (map[int64]domain.Account, error) {
	return s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
}

func (s *transactionService) AddValueTransaction(ctx context.Context, accountID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	return s.inTx(ctx, domain.KindValue, func(tx pgx.Tx) (*domain.TransactionObject, error) {
		accounts, err := s.lockAccounts(ctx, tx, accountID)
		if err != nil {
			return nil, err
		}
		actor, ok := accounts[accountID]
		if !ok {
			return nil, apperrors.NewEntityNotFoundError("account", reasonSenderMissing)
		}

		if err := limits.Check(actor.Balance, amount); err != nil {
			s.LogInfo(ctx, "Value transaction rejected",
				slog.Int64("account_id", accountID),
				slog.String("amount", utils.FormatMinorUnits(amount)),
				slog.String("reason", apperrors.Reason(err)))
			return nil, err
		}

		now := s.Now()
		if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, amount, now); err != nil {
			return nil, err
		}
		entry, err := s.ledgerRepo.InsertEntryInTx(ctx, tx, domain.LedgerEntry{
			AccountID: accountID,
			Comment:   utils.SanitizeOptional(comment),
			Amount:    amount,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

		actor.Balance += amount
		actor.LastUpdated = &now
		s.LogInfo(ctx, "Value transaction booked",
			slog.Int64("entry_id", entry.ID),
			slog.Int64("account_id", accountID),
			slog.String("amount", utils.FormatMinorUnits(amount)))
		return &domain.TransactionObject{LedgerEntry: *entry, Account: &actor}, nil
	})
}

func (s *transactionService) AddArticleTransaction(ctx context.Context, accountID int64, articleID int64, quantity *int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	qty := int64(1)
	if quantity != nil {
		qty = *quantity
	}

	return s.inTx(ctx, domain.KindArticle, func(tx pgx.Tx) (*domain.TransactionObject, error) {
		accounts, err := s.lockAccounts(ctx, tx, accountID)
		if err != nil {
			return nil, err
		}
		actor, ok := accounts[accountID]
		if !ok {
			return nil, apperrors.NewEntityNotFoundError("account", reasonSenderMissing)
		}

		article, err := s.articleRepo.FindArticleChainInTx(ctx, tx, articleID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindEntityNotFound {
				return nil, apperrors.NewEntityNotFoundError("article", reasonArticleMissing)
			}
			return nil, err
		}
		if !article.Active {
			return nil, apperrors.NewEntityNotFoundError("article", reasonArticleMissing)
		}

		amount, err := domain.ArticleAmount(article.UnitAmount, qty)
		if err != nil {
			return nil, err
		}
		if err := limits.Check(actor.Balance, amount); err != nil {
			s.LogInfo(ctx, "Article transaction rejected",
				slog.Int64("account_id", accountID),
				slog.Int64("article_id", articleID),
				slog.String("amount", utils.FormatMinorUnits(amount)),
				slog.String("reason", apperrors.Reason(err)))
			return nil, err
		}

		now := s.Now()
		if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, amount, now); err != nil {
			return nil, err
		}
		if err := s.articleRepo.IncrementUsageCountInTx(ctx, tx, articleID); err != nil {
			return nil, err
		}
		entry, err := s.ledgerRepo.InsertEntryInTx(ctx, tx, domain.LedgerEntry{
			AccountID: accountID,
			ArticleID: &articleID,
			Quantity:  &qty,
			Comment:   utils.SanitizeOptional(comment),
			Amount:    amount,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}

		actor.Balance += amount
		actor.LastUpdated = &now
		article.UsageCount++
		s.LogInfo(ctx, "Article transaction booked",
			slog.Int64("entry_id", entry.ID),
			slog.Int64("account_id", accountID),
			slog.Int64("article_id", articleID),
			slog.Int64("quantity", qty),
			slog.String("amount", utils.FormatMinorUnits(amount)))
		return &domain.TransactionObject{LedgerEntry: *entry, Account: &actor, Article: article}, nil
	})
}

func (s *transactionService) AddTransferTransaction(ctx context.Context, accountID int64, recipientID int64, amount int64, comment *string, limits domain.Limits) (*domain.TransactionObject, error) {
	if amount >= 0 {
		return nil, apperrors.NewValidationFailedError("Transfer amount must be negative.")
	}
	// the recipient is credited -amount, which does not exist for MinInt64
	if amount == math.MinInt64 {
		return nil, apperrors.NewValidationFailedError("Transfer amount is out of range.")
	}
	if accountID == recipientID {
		return nil, apperrors.NewValidationFailedError("Sender and recipient must differ.")
	}

	return s.inTx(ctx, domain.KindTransfer, func(tx pgx.Tx) (*domain.TransactionObject, error) {
		accounts, err := s.lockAccounts(ctx, tx, accountID, recipientID)
		if err != nil {
			return nil, err
		}
		actor, ok := accounts[accountID]
		if !ok {
			return nil, apperrors.NewEntityNotFoundError("account", reasonSenderMissing)
		}
		recipient, ok := accounts[recipientID]
		if !ok {
			return nil, apperrors.NewEntityNotFoundError("account", reasonRecipientMissing)
		}

		if err := limits.Check(actor.Balance, amount); err != nil {
			s.LogInfo(ctx, "Transfer rejected",
				slog.Int64("account_id", accountID),
				slog.Int64("recipient_id", recipientID),
				slog.String("amount", utils.FormatMinorUnits(amount)),
				slog.String("reason", apperrors.Reason(err)))
			return nil, err
		}

		now := s.Now()
		cleanComment := utils.SanitizeOptional(comment)
		if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, amount, now); err != nil {
			return nil, err
		}
		if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, recipientID, -amount, now); err != nil {
			return nil, err
		}

		senderEntry, err := s.ledgerRepo.InsertEntryInTx(ctx, tx, domain.LedgerEntry{
			AccountID: accountID,
			Comment:   cleanComment,
			Amount:    amount,
			CreatedAt: now,
		})
		if err != nil {
			return nil, err
		}
		recipientEntry, err := s.ledgerRepo.InsertEntryInTx(ctx, tx, domain.LedgerEntry{
			AccountID:           recipientID,
			SenderTransactionID: &senderEntry.ID,
			Comment:             cleanComment,
			Amount:              -amount,
			CreatedAt:           now,
		})
		if err != nil {
			return nil, err
		}
		// the recipient row's id only exists now, so the sender row is linked last
		if err := s.ledgerRepo.LinkRecipientInTx(ctx, tx, senderEntry.ID, recipientEntry.ID); err != nil {
			return nil, err
		}
		senderEntry.RecipientTransactionID = &recipientEntry.ID

		actor.Balance += amount
		actor.LastUpdated = &now
		recipient.Balance -= amount
		recipient.LastUpdated = &now
		s.LogInfo(ctx, "Transfer booked",
			slog.Int64("entry_id", senderEntry.ID),
			slog.Int64("recipient_entry_id", recipientEntry.ID),
			slog.Int64("account_id", accountID),
			slog.Int64("recipient_id", recipientID),
			slog.String("amount", utils.FormatMinorUnits(amount)))
		return &domain.TransactionObject{LedgerEntry: *senderEntry, Account: &actor, Recipient: &recipient}, nil
	})
}

func (s *transactionService) AddTransaction(ctx context.Context, accountID int64, req dto.CreateTransactionRequest, limits domain.Limits) (*domain.TransactionObject, error) {
	switch {
	case req.ArticleID != nil && req.RecipientID == nil && req.Amount == nil:
		return s.AddArticleTransaction(ctx, accountID, *req.ArticleID, req.Quantity, req.Comment, limits)
	case req.ArticleID == nil && req.RecipientID != nil && req.Amount != nil && *req.Amount < 0:
		return s.AddTransferTransaction(ctx, accountID, *req.RecipientID, *req.Amount, req.Comment, limits)
	case req.ArticleID == nil && req.RecipientID == nil && req.Amount != nil:
		return s.AddValueTransaction(ctx, accountID, *req.Amount, req.Comment, limits)
	default:
		return nil, apperrors.NewValidationFailedError(reasonNoMatchingShape)
	}
}

func (s *transactionService) GetTransaction(ctx context.Context, accountID int64, entryID int64) (*domain.TransactionObject, error) {
	entry, err := s.ledgerRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.AccountID != accountID {
		return nil, apperrors.NewEntityNotFoundError("transaction",
			fmt.Sprintf("Transaction %d does not exist for account %d.", entryID, accountID))
	}

	objs, err := s.enrich(ctx, []domain.LedgerEntry{*entry})
	if err != nil {
		return nil, err
	}
	return &objs[0], nil
}

func (s *transactionService) ListTransactions(ctx context.Context, accountID int64, params dto.ListTransactionsParams) (*domain.TransactionPage, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	entries, nextToken, err := s.ledgerRepo.ListEntriesByAccount(ctx, accountID, params.Limit, params.Offset, params.NextToken)
	if err != nil {
		return nil, err
	}
	count, err := s.ledgerRepo.CountEntriesByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	objs, err := s.enrich(ctx, entries)
	if err != nil {
		return nil, err
	}
	return &domain.TransactionPage{Transactions: objs, Count: count, NextToken: nextToken}, nil
}

// enrich attaches accounts, article chains and transfer counterparts to
// entries with one batched read per record type.
func (s *transactionService) enrich(ctx context.Context, entries []domain.LedgerEntry) ([]domain.TransactionObject, error) {
	if len(entries) == 0 {
		return []domain.TransactionObject{}, nil
	}

	var articleIDs, siblingIDs []int64
	for _, e := range entries {
		if e.ArticleID != nil {
			articleIDs = append(articleIDs, *e.ArticleID)
		}
		if e.RecipientTransactionID != nil {
			siblingIDs = append(siblingIDs, *e.RecipientTransactionID)
		}
		if e.SenderTransactionID != nil {
			siblingIDs = append(siblingIDs, *e.SenderTransactionID)
		}
	}

	arena, err := s.articleRepo.FindAncestors(ctx, articleIDs)
	if err != nil {
		return nil, err
	}
	siblings, err := s.ledgerRepo.FindEntriesByIDs(ctx, siblingIDs)
	if err != nil {
		return nil, err
	}

	accountIDs := make([]int64, 0, len(entries)+len(siblings))
	for _, e := range entries {
		accountIDs = append(accountIDs, e.AccountID)
	}
	for _, sib := range siblings {
		accountIDs = append(accountIDs, sib.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, err
	}

	counterpart := func(siblingID *int64) *domain.Account {
		if siblingID == nil {
			return nil
		}
		sib, ok := siblings[*siblingID]
		if !ok {
			return nil
		}
		acc, ok := accounts[sib.AccountID]
		if !ok {
			return nil
		}
		return &acc
	}

	out := make([]domain.TransactionObject, len(entries))
	for i, e := range entries {
		obj := domain.TransactionObject{LedgerEntry: e}
		if acc, ok := accounts[e.AccountID]; ok {
			obj.Account = &acc
		}
		if e.ArticleID != nil {
			obj.Article = domain.ResolveArticle(arena, *e.ArticleID)
		}
		obj.Recipient = counterpart(e.RecipientTransactionID)
		obj.Sender = counterpart(e.SenderTransactionID)
		out[i] = obj
	}
	return out, nil
}
