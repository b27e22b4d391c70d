package domain

// Arena is a flat set of records addressed by id, as loaded from storage.
type Arena[T any] map[int64]T

// Lookup returns the record stored under id.
func (a Arena[T]) Lookup(id int64) (T, bool) {
	rec, ok := a[id]
	return rec, ok
}

// WalkChain collects the chain that starts at start by repeatedly resolving
// the current id and stepping to its predecessor. The walk ends when a record
// has no predecessor or the predecessor cannot be resolved. The result is
// ordered newest first.
func WalkChain[T any](start int64, lookup func(int64) (T, bool), precursor func(T) *int64) []T {
	var chain []T
	seen := make(map[int64]struct{})

	current := &start
	for current != nil {
		// storage forbids cycles; stop after one lap if the data says otherwise
		if _, ok := seen[*current]; ok {
			break
		}
		seen[*current] = struct{}{}

		rec, ok := lookup(*current)
		if !ok {
			break
		}
		chain = append(chain, rec)
		current = precursor(rec)
	}
	return chain
}

// ArticlePrecursor is the predecessor accessor used when walking article revisions.
func ArticlePrecursor(a Article) *int64 {
	return a.PrecursorID
}

// NewArticleObject folds a newest-first chain into nested nodes, oldest
// revision innermost. Returns nil for an empty chain.
func NewArticleObject(chain []Article) *ArticleObject {
	var node *ArticleObject
	for i := len(chain) - 1; i >= 0; i-- {
		node = &ArticleObject{Article: chain[i], Precursor: node}
	}
	return node
}

// ResolveArticle rebuilds the revision chain of id from arena. Returns nil
// when id itself is not in the arena.
func ResolveArticle(arena Arena[Article], id int64) *ArticleObject {
	return NewArticleObject(WalkChain(id, arena.Lookup, ArticlePrecursor))
}
