package domain_test

import (
	"testing"

	"github.com/sake/strichliste/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func revisions(n int) domain.Arena[domain.Article] {
	arena := domain.Arena[domain.Article]{}
	for i := 1; i <= n; i++ {
		a := domain.Article{ID: int64(i), Name: "Mate", UnitAmount: int64(100 * i), Active: i == n}
		if i > 1 {
			a.PrecursorID = domain.Int64Ptr(int64(i - 1))
		}
		arena[a.ID] = a
	}
	return arena
}

func TestResolveArticle_NestsNewestToOldest(t *testing.T) {
	obj := domain.ResolveArticle(revisions(4), 4)

	require.NotNil(t, obj)
	assert.Equal(t, 4, obj.Depth())
	assert.Equal(t, int64(4), obj.ID)
	assert.Equal(t, int64(3), obj.Precursor.ID)
	assert.Equal(t, int64(2), obj.Precursor.Precursor.ID)
	assert.Equal(t, int64(1), obj.Precursor.Precursor.Precursor.ID)
	assert.Nil(t, obj.Precursor.Precursor.Precursor.Precursor)
}

func TestResolveArticle_RootHasDepthOne(t *testing.T) {
	obj := domain.ResolveArticle(revisions(1), 1)

	require.NotNil(t, obj)
	assert.Equal(t, 1, obj.Depth())
	assert.Nil(t, obj.Precursor)
}

func TestResolveArticle_MiddleOfChain(t *testing.T) {
	obj := domain.ResolveArticle(revisions(5), 3)

	require.NotNil(t, obj)
	assert.Equal(t, 3, obj.Depth())
	ids := []int64{}
	for _, a := range obj.Flatten() {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{3, 2, 1}, ids)
}

func TestResolveArticle_Absent(t *testing.T) {
	assert.Nil(t, domain.ResolveArticle(revisions(2), 9))
}

func TestWalkChain_StopsAtUnresolvedPrecursor(t *testing.T) {
	arena := revisions(3)
	delete(arena, 1)

	chain := domain.WalkChain(3, arena.Lookup, domain.ArticlePrecursor)

	assert.Len(t, chain, 2)
}

func TestWalkChain_StopsOnCycle(t *testing.T) {
	arena := domain.Arena[domain.Article]{
		1: {ID: 1, PrecursorID: domain.Int64Ptr(2)},
		2: {ID: 2, PrecursorID: domain.Int64Ptr(1)},
	}

	chain := domain.WalkChain(1, arena.Lookup, domain.ArticlePrecursor)

	assert.Len(t, chain, 2)
}

func TestLedgerEntry_Kind(t *testing.T) {
	assert.Equal(t, domain.KindValue, domain.LedgerEntry{Amount: 100}.Kind())
	assert.Equal(t, domain.KindArticle, domain.LedgerEntry{ArticleID: domain.Int64Ptr(1)}.Kind())
	assert.Equal(t, domain.KindTransfer, domain.LedgerEntry{RecipientTransactionID: domain.Int64Ptr(2)}.Kind())
	assert.Equal(t, domain.KindTransfer, domain.LedgerEntry{SenderTransactionID: domain.Int64Ptr(1)}.Kind())
}
