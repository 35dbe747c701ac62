package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobextract-engine/internal/domain"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "extractions.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.Migrate(context.Background()))
	return db
}

func TestInsertAndListRecent(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	recs := []domain.ReconciledRecord{
		{Success: true, URL: "https://a.test/1", Company: "Acme", JobTitle: "Engineer", AdSource: domain.SourceGeneric, Method: "hybrid-goquery-generic-grok", FullDescription: "d"},
		{Success: false, URL: "https://b.test/2", Company: domain.NotSpecified, JobTitle: domain.NotSpecified, AdSource: domain.SourceLinkedIn, Method: "hybrid-goquery-linkedin-failed-grok-failed", NeedsManualHTML: true},
	}
	for _, rec := range recs {
		require.NoError(t, db.InsertExtraction(ctx, rec, "user-1"))
	}

	rows, err := db.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var byURL = map[string]ExtractionRow{}
	for _, r := range rows {
		byURL[r.URL] = r
	}
	assert.True(t, byURL["https://a.test/1"].Success)
	assert.Equal(t, "Acme", byURL["https://a.test/1"].Company)
	assert.True(t, byURL["https://b.test/2"].NeedsManualHTML)
	assert.Equal(t, domain.SourceLinkedIn, byURL["https://b.test/2"].AdSource)
	assert.Equal(t, "user-1", byURL["https://a.test/1"].RequestedBy)
}

func TestListRecentEmpty(t *testing.T) {
	db := testDB(t)
	rows, err := db.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
