// File: internal/store/comment_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"microblog/internal/database"
	"microblog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCommentStore(t *testing.T) {
	now := time.Now().UTC()

	t.Run("CreateComment success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{vals: []any{9, now}}
			},
		}
		cm := &model.Comment{Content: "nice", PostID: 5, UserID: 3}
		created, err := CreateComment(context.Background(), db, cm)
		require.NoError(t, err)
		require.Equal(t, 9, created.ID)
		require.Equal(t, []any{"nice", 5, 3}, gotArgs)
	})

	t.Run("CreateComment error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("fk violation")}
			},
		}
		_, err := CreateComment(context.Background(), db, &model.Comment{})
		require.Error(t, err)
	})

	t.Run("ListFeedComments success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{
					{1, "first", 5, 3, now, "a@x.com"},
					{2, "second", 5, 4, now, "b@x.com"},
				}}, nil
			},
		}
		comments, err := ListFeedComments(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		require.Equal(t, 5, comments[0].PostID)
		require.Equal(t, "a@x.com", comments[0].Email)
		require.Equal(t, "second", comments[1].Content)
	})

	t.Run("ListFeedComments query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("query")
			},
		}
		_, err := ListFeedComments(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListFeedComments scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rows: [][]any{{1, "x", 5, 3, now, "a@x.com"}}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListFeedComments(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListFeedComments rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{rowsErr: errors.New("rows")}, nil
			},
		}
		_, err := ListFeedComments(context.Background(), db)
		require.Error(t, err)
	})
}
