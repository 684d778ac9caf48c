package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales-analytics/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveAndListUploads(t *testing.T) {
	db := openTestDB(t)

	first := model.UploadRecord{
		SessionID: "s1",
		Filename:  "ventas.csv",
		Rows:      100,
		Columns:   4,
		Roles:     model.RoleAssignment{model.RoleSales: "Ventas"},
		CreatedAt: time.Now().UTC().Add(-time.Minute),
	}
	second := model.UploadRecord{
		SessionID: "s2",
		Filename:  "ventas.xlsx",
		Rows:      7,
		Columns:   3,
		Roles:     model.RoleAssignment{},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, db.SaveUpload(first))
	require.NoError(t, db.SaveUpload(second))

	records, err := db.ListUploads(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// newest first
	assert.Equal(t, "s2", records[0].SessionID)
	assert.Equal(t, "s1", records[1].SessionID)
	assert.Equal(t, "Ventas", records[1].Roles[model.RoleSales])
	assert.Equal(t, 100, records[1].Rows)
}

func TestListUploadsRespectsLimit(t *testing.T) {
	db := openTestDB(t)
	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		require.NoError(t, db.SaveUpload(model.UploadRecord{
			SessionID: string(rune('a' + i)),
			Filename:  "f.csv",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	records, err := db.ListUploads(3)
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "e", records[0].SessionID)
}

func TestListUploadsEmpty(t *testing.T) {
	db := openTestDB(t)
	records, err := db.ListUploads(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSaveUploadDuplicateSession(t *testing.T) {
	db := openTestDB(t)
	rec := model.UploadRecord{SessionID: "dup", Filename: "a.csv"}
	require.NoError(t, db.SaveUpload(rec))
	assert.Error(t, db.SaveUpload(rec), "session_id is the primary key")
}
