package cache

import (
	"path/filepath"
	"testing"

	"github.com/tsudoi-club/tsudoi/internal/collection"
	"github.com/tsudoi-club/tsudoi/internal/model"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_PutGetRoundTrip(t *testing.T) {
	c := openTestCache(t)

	put := collection.PageResult{
		Items: []model.Item{
			{ID: 1, Owner: "mina@club.kr", Title: "first"},
			{ID: 2, Owner: "jun@club.kr", Title: "second"},
		},
		TotalItems: 17,
	}
	if err := c.Put(model.Board, 2, 10, "mina", put); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, at, ok, err := c.Get(model.Board, 2, 10, "mina")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.TotalItems != 17 || len(got.Items) != 2 || got.Items[0].Title != "first" {
		t.Errorf("got %+v", got)
	}
	if at.IsZero() {
		t.Error("fetch time should be recorded")
	}
}

func TestCache_MissAndKeyIsolation(t *testing.T) {
	c := openTestCache(t)
	if err := c.Put(model.Board, 1, 10, "", collection.PageResult{TotalItems: 5}); err != nil {
		t.Fatalf("put: %v", err)
	}

	// Different page, size, term, or collection each miss.
	keys := []struct {
		col      model.Collection
		page     int
		pageSize int
		term     string
	}{
		{model.Board, 2, 10, ""},
		{model.Board, 1, 20, ""},
		{model.Board, 1, 10, "x"},
		{model.Activities, 1, 10, ""},
	}
	for _, k := range keys {
		if _, _, ok, err := c.Get(k.col, k.page, k.pageSize, k.term); ok || err != nil {
			t.Errorf("Get(%v) ok=%v err=%v, want miss", k, ok, err)
		}
	}
}

func TestCache_PutReplaces(t *testing.T) {
	c := openTestCache(t)
	c.Put(model.Japanese, 1, 1, "", collection.PageResult{TotalItems: 1})
	c.Put(model.Japanese, 1, 1, "", collection.PageResult{TotalItems: 9})

	got, _, ok, err := c.Get(model.Japanese, 1, 1, "")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.TotalItems != 9 {
		t.Errorf("total = %d, want the replacing entry's 9", got.TotalItems)
	}
}

func TestCache_Clear(t *testing.T) {
	c := openTestCache(t)
	c.Put(model.Board, 1, 10, "", collection.PageResult{TotalItems: 3})
	c.Put(model.Activities, 1, 3, "", collection.PageResult{TotalItems: 4})

	if err := c.Clear(model.Board); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, _, ok, _ := c.Get(model.Board, 1, 10, ""); ok {
		t.Error("cleared collection still cached")
	}
	if _, _, ok, _ := c.Get(model.Activities, 1, 3, ""); !ok {
		t.Error("other collection should be untouched")
	}
}
