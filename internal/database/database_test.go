package database

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todayproje/server/internal/models"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(":memory:")
	require.NoError(t, err)
	// One in-memory database per test; a second pooled connection would see
	// an empty schema.
	db.GetDB().SetMaxOpenConns(1)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })
	return db
}

func price(v float64) *float64 {
	return &v
}

func insertListing(t *testing.T, db *Database, l models.Listing) int64 {
	t.Helper()
	if l.Title == "" {
		l.Title = "Test listing"
	}
	id, err := db.Insert(l)
	require.NoError(t, err)
	return id
}

func hide(t *testing.T, db *Database, id int64) {
	t.Helper()
	active, err := db.ToggleStatus(id)
	require.NoError(t, err)
	require.False(t, active)
}

func TestInsertAndGet(t *testing.T) {
	db := newTestDatabase(t)

	id := insertListing(t, db, models.Listing{
		Title:         "Deniz Manzaralı Villa",
		Type:          "Satılık",
		Address:       "Antalya, Türkiye",
		IsGold:        true,
		Image1:        "user_custom_upload/a.jpg",
		SalePrice:     price(850000),
		ContractID:    "VIL002",
		Description:   "Deniz manzaralı lüks villa",
		DescriptionEN: "Luxury villa with sea view",
		DescriptionAR: "فيلا فاخرة",
		Deed:          "Tapu",
		BedType:       "4+1",
	})

	l, err := db.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "Deniz Manzaralı Villa", l.Title)
	assert.Equal(t, "Satılık", l.Type)
	assert.True(t, l.IsGold)
	assert.True(t, l.Active, "new listings start active")
	assert.Equal(t, 0, l.ViewCount)
	require.NotNil(t, l.SalePrice)
	assert.Equal(t, 850000.0, *l.SalePrice)
	assert.Nil(t, l.RentPrice)
	assert.False(t, l.CreatedAt.IsZero())
	assert.False(t, l.UpdatedAt.IsZero())
}

func TestGetActiveExcludesHidden(t *testing.T) {
	db := newTestDatabase(t)

	id := insertListing(t, db, models.Listing{Title: "Hidden"})
	hide(t, db, id)

	_, err := db.GetActive(id)
	assert.Equal(t, ErrNotFound, err)

	// Still reachable for admins
	l, err := db.Get(id)
	require.NoError(t, err)
	assert.False(t, l.Active)
}

func TestGetActiveMissing(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.GetActive(999)
	assert.Equal(t, ErrNotFound, err)
}

func TestHomeQueriesExcludeHidden(t *testing.T) {
	db := newTestDatabase(t)

	for i := 0; i < 7; i++ {
		id := insertListing(t, db, models.Listing{Title: fmt.Sprintf("Listing %d", i)})
		if i%2 == 0 {
			hide(t, db, id)
		}
	}

	popular, err := db.TopViewed(5)
	require.NoError(t, err)
	assert.Len(t, popular, 3)
	for _, l := range popular {
		assert.True(t, l.Active)
	}

	newest, err := db.Newest(5)
	require.NoError(t, err)
	assert.Len(t, newest, 3)
}

func TestBrowsePagination(t *testing.T) {
	db := newTestDatabase(t)

	for i := 0; i < 17; i++ {
		insertListing(t, db, models.Listing{Title: fmt.Sprintf("Listing %d", i)})
	}

	page1, err := db.Browse(1, 8, "")
	require.NoError(t, err)
	assert.Len(t, page1.Listings, 8)
	assert.Equal(t, 17, page1.TotalCount)
	assert.Equal(t, 3, page1.TotalPages)
	assert.False(t, page1.HasPrev)
	assert.True(t, page1.HasNext)

	page3, err := db.Browse(3, 8, "")
	require.NoError(t, err)
	assert.Len(t, page3.Listings, 1)
	assert.True(t, page3.HasPrev)
	assert.False(t, page3.HasNext)

	beyond, err := db.Browse(4, 8, "")
	require.NoError(t, err)
	assert.Empty(t, beyond.Listings)
	assert.Equal(t, 17, beyond.TotalCount)
}

func TestBrowseSearch(t *testing.T) {
	db := newTestDatabase(t)

	insertListing(t, db, models.Listing{Title: "A", ContractID: "EMN001"})
	insertListing(t, db, models.Listing{Title: "B", ContractID: "VIL002"})
	hiddenID := insertListing(t, db, models.Listing{Title: "C", ContractID: "EMN003"})
	hide(t, db, hiddenID)

	result, err := db.Browse(1, 8, "EMN")
	require.NoError(t, err)
	require.Len(t, result.Listings, 1)
	assert.Equal(t, "EMN001", result.Listings[0].ContractID)

	// Empty search behaves like no search
	all, err := db.Browse(1, 8, "")
	require.NoError(t, err)
	assert.Len(t, all.Listings, 2)
}

func TestIncrementViews(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{Title: "Viewed"})

	require.NoError(t, db.IncrementViews(id))
	l, err := db.GetActive(id)
	require.NoError(t, err)
	assert.Equal(t, 1, l.ViewCount)
}

func TestIncrementViewsConcurrent(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{Title: "Hot"})

	const n = 25
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, db.IncrementViews(id))
		}()
	}
	wg.Wait()

	l, err := db.GetActive(id)
	require.NoError(t, err)
	assert.Equal(t, n, l.ViewCount, "no increments may be lost")
}

func TestIncrementViewsMissingRowIsNoop(t *testing.T) {
	db := newTestDatabase(t)
	assert.NoError(t, db.IncrementViews(424242))
}

func TestUpdate(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{Title: "Before", ContractID: "OLD"})

	before, err := db.Get(id)
	require.NoError(t, err)
	require.NoError(t, db.IncrementViews(id))

	err = db.Update(id, models.Listing{
		Title:      "After",
		ContractID: "NEW",
		RentPrice:  price(2500),
	})
	require.NoError(t, err)

	after, err := db.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "After", after.Title)
	assert.Equal(t, "NEW", after.ContractID)
	require.NotNil(t, after.RentPrice)
	assert.Equal(t, 2500.0, *after.RentPrice)
	assert.Equal(t, 1, after.ViewCount, "view count untouched by edits")
	assert.Equal(t, before.CreatedAt, after.CreatedAt, "creation date untouched by edits")
}

func TestUpdateMissing(t *testing.T) {
	db := newTestDatabase(t)
	err := db.Update(999, models.Listing{Title: "Ghost"})
	assert.Equal(t, ErrNotFound, err)
}

func TestToggleStatus(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{Title: "Toggled"})

	active, err := db.ToggleStatus(id)
	require.NoError(t, err)
	assert.False(t, active)

	active, err = db.ToggleStatus(id)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestToggleStatusMissing(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{Title: "Bystander"})

	_, err := db.ToggleStatus(999)
	assert.Equal(t, ErrNotFound, err)

	// The existing row is untouched
	l, err := db.Get(id)
	require.NoError(t, err)
	assert.True(t, l.Active)
}

func TestDelete(t *testing.T) {
	db := newTestDatabase(t)
	id := insertListing(t, db, models.Listing{
		Title:  "Doomed",
		Image1: "user_custom_upload/a.jpg",
		Image3: "static/img/premade.jpg",
	})

	images, err := db.Delete(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"user_custom_upload/a.jpg", "", "static/img/premade.jpg"}, images)

	_, err = db.Get(id)
	assert.Equal(t, ErrNotFound, err)
}

func TestDeleteMissing(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.Delete(999)
	assert.Equal(t, ErrNotFound, err)
}

func TestAllIncludesHidden(t *testing.T) {
	db := newTestDatabase(t)

	insertListing(t, db, models.Listing{Title: "Active"})
	id := insertListing(t, db, models.Listing{Title: "Hidden"})
	hide(t, db, id)

	all, err := db.All()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
