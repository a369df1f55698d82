package syllabus

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/de-tools/video-curator/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("nil db", func(t *testing.T) {
		s, err := NewStore(nil, 1)
		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("negative limit", func(t *testing.T) {
		db, _, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		s, err := NewStore(db, -1)
		assert.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestStore_List(t *testing.T) {
	cols := []string{"id", "topic", "subtopic"}

	t.Run("limited", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listLimitedQuery)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "Algebra", "Linear Equations"))

		s, err := NewStore(db, 1)
		require.NoError(t, err)

		entries, err := s.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []store.SyllabusEntry{{ID: 1, Topic: "Algebra", Subtopic: "Linear Equations"}}, entries)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unlimited keeps order", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listQuery)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(int64(1), "Algebra", "Linear Equations").
				AddRow(int64(2), "Geometry", "Triangles").
				AddRow(int64(3), "Calculus", "Limits"))

		s, err := NewStore(db, 0)
		require.NoError(t, err)

		entries, err := s.List(context.Background())
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, int64(1), entries[0].ID)
		assert.Equal(t, "Calculus", entries[2].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listQuery)).WillReturnRows(sqlmock.NewRows(cols))

		s, err := NewStore(db, 0)
		require.NoError(t, err)

		entries, err := s.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(regexp.QuoteMeta(listLimitedQuery)).
			WithArgs(1).
			WillReturnError(errors.New("relation \"syllabus\" does not exist"))

		s, err := NewStore(db, 1)
		require.NoError(t, err)

		entries, err := s.List(context.Background())
		assert.Error(t, err)
		assert.Nil(t, entries)
	})
}
