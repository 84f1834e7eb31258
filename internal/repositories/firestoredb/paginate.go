package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"

	"orion/internal/utils"
)

// applyOffset emulates a numeric offset on a cursor-only backend: fetch the
// first offset documents in the already-resolved sort order, then start the
// real query after the last one seen. Each deep page therefore re-scans all
// prior pages, O(page × limit) per request. The second return value is
// false when the offset lies past the end of the result set; the caller
// should return an empty page, not an error.
func applyOffset(ctx context.Context, q firestore.Query, offset int) (firestore.Query, bool, error) {
	if offset <= 0 {
		return q, true, nil
	}

	docs, err := q.Limit(offset).Documents(ctx).GetAll()
	if err != nil {
		return q, false, err
	}
	if len(docs) < offset {
		return q, false, nil
	}

	return q.StartAfter(docs[len(docs)-1]), true, nil
}

// fetchPage runs one cursor-paginated fetch of the given query.
func fetchPage(ctx context.Context, q firestore.Query, params *utils.PaginationParams) ([]*firestore.DocumentSnapshot, error) {
	paged, ok, err := applyOffset(ctx, q, params.Offset())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return paged.Limit(params.Limit).Documents(ctx).GetAll()
}

// countAll counts a collection by reading it in full. O(N), mirroring the
// backend's lack of a cheap count primitive for arbitrary queries.
func countAll(ctx context.Context, q firestore.Query) (int64, error) {
	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
