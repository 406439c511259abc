package repository

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"bizlist/internal/domain/listing"
	bizlist_errors "bizlist/pkg/errors"
)

func TestListingCreateAndGetRoundTrip(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	l := testListing("CWB242630605")
	if err := repo.Create(ctx, &l); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if l.ID == 0 {
		t.Error("Create did not assign an id")
	}

	got, err := repo.GetByRefID(ctx, "CWB242630605")
	if err != nil {
		t.Fatalf("GetByRefID: %v", err)
	}
	if got.Title != l.Title || got.Price != l.Price || got.RefID != l.RefID {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if !reflect.DeepEqual(got.Industry, l.Industry) {
		t.Errorf("industry = %v, want %v", got.Industry, l.Industry)
	}
	if !reflect.DeepEqual(got.MainProductServicePercentage, l.MainProductServicePercentage) {
		t.Errorf("percentages = %v, want %v", got.MainProductServicePercentage, l.MainProductServicePercentage)
	}
	if got.FoundationDate.String() != "2015-04-01" {
		t.Errorf("foundation_date = %s, want 2015-04-01", got.FoundationDate)
	}
}

func TestListingCreateDuplicateRefID(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	first := testListing("DUP0001")
	if err := repo.Create(ctx, &first); err != nil {
		t.Fatalf("Create: %v", err)
	}
	second := testListing("DUP0001")
	if err := repo.Create(ctx, &second); !errors.Is(err, bizlist_errors.ErrAlreadyExists) {
		t.Errorf("duplicate ref_id error = %v, want ErrAlreadyExists", err)
	}
}

func TestListingGetByRefIDNotFound(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	if _, err := repo.GetByRefID(context.Background(), "NOPE"); !errors.Is(err, bizlist_errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListingListPagination(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	for _, ref := range []string{"A1", "A2", "A3", "A4", "A5"} {
		l := testListing(ref)
		if err := repo.Create(ctx, &l); err != nil {
			t.Fatalf("Create %s: %v", ref, err)
		}
	}

	page, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("len(page) = %d, want 2", len(page))
	}

	rest, err := repo.List(ctx, 4, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rest) != 1 {
		t.Errorf("len(rest) = %d, want 1", len(rest))
	}
}

func TestListingSearchFilters(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	cafe := testListing("CAFE01")
	cafe.Title = "Cozy Cafe"
	cafe.Price = 500000
	cafe.Turnover = 100000
	cafe.Location = "Shop - CWB"
	cafe.Industry = listing.StringList{"Food & Beverage"}

	salon := testListing("SALON01")
	salon.Title = "Hair Salon"
	salon.Price = 2000000
	salon.Turnover = 400000
	salon.Location = "Mall - TST"
	salon.Industry = listing.StringList{"Beauty"}
	salon.Description = listing.StringList{"established salon"}

	for _, l := range []listing.Listing{cafe, salon} {
		rec := l
		if err := repo.Create(ctx, &rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	t.Run("keyword against title", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{Keyword: strPtr("cozy")}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "CAFE01" {
			t.Errorf("got %d rows, want the cafe", len(got))
		}
	})

	t.Run("keyword against description", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{Keyword: strPtr("established")}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "SALON01" {
			t.Errorf("got %d rows, want the salon", len(got))
		}
	})

	t.Run("price range inclusive", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{MinPrice: floatPtr(500000), MaxPrice: floatPtr(500000)}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "CAFE01" {
			t.Errorf("inclusive bounds should match the cafe exactly, got %d rows", len(got))
		}
	})

	t.Run("turnover range", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{MinTurnover: floatPtr(200000)}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "SALON01" {
			t.Errorf("got %d rows, want the salon", len(got))
		}
	})

	t.Run("location case-insensitive substring", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{Location: strPtr("tst")}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "SALON01" {
			t.Errorf("got %d rows, want the salon", len(got))
		}
	})

	t.Run("industry substring", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{Industry: strPtr("beverage")}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].RefID != "CAFE01" {
			t.Errorf("got %d rows, want the cafe", len(got))
		}
	})

	t.Run("conjunctive filters", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{Keyword: strPtr("salon"), MaxPrice: floatPtr(1000000)}, 0, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 0 {
			t.Errorf("got %d rows, want none", len(got))
		}
	})

	t.Run("no filters respects limit", func(t *testing.T) {
		got, err := repo.Search(ctx, ListingFilter{}, 0, 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 {
			t.Errorf("got %d rows, want 1", len(got))
		}
	})
}

func TestListingUpdatePartial(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	l := testListing("UPD001")
	if err := repo.Create(ctx, &l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.Update(ctx, "UPD001", map[string]interface{}{
		"title": "New title",
		"price": float64(999999),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "New title" || updated.Price != 999999 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.BusinessName != l.BusinessName {
		t.Errorf("business_name changed unexpectedly to %q", updated.BusinessName)
	}
	if updated.RefID != "UPD001" {
		t.Errorf("ref_id changed to %q", updated.RefID)
	}
	if !updated.CreationDatetime.Equal(l.CreationDatetime) {
		t.Errorf("creation_datetime changed: %v != %v", updated.CreationDatetime, l.CreationDatetime)
	}
}

func TestListingUpdateIgnoresImmutableColumns(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	l := testListing("IMM001")
	if err := repo.Create(ctx, &l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.Update(ctx, "IMM001", map[string]interface{}{
		"ref_id": "HACKED",
		"id":     999,
		"title":  "still applied",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.RefID != "IMM001" {
		t.Errorf("ref_id mutated to %q", updated.RefID)
	}
	if updated.ID != l.ID {
		t.Errorf("id mutated to %d", updated.ID)
	}
	if updated.Title != "still applied" {
		t.Errorf("title = %q", updated.Title)
	}
}

func TestListingUpdateListField(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	l := testListing("LST001")
	if err := repo.Create(ctx, &l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := repo.Update(ctx, "LST001", map[string]interface{}{
		"industry": listing.StringList{"Retail", "Wholesale"},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !reflect.DeepEqual(updated.Industry, listing.StringList{"Retail", "Wholesale"}) {
		t.Errorf("industry = %v", updated.Industry)
	}
}

func TestListingUpdateNotFound(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	_, err := repo.Update(context.Background(), "GONE", map[string]interface{}{"title": "x"})
	if !errors.Is(err, bizlist_errors.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestListingDelete(t *testing.T) {
	repo := NewListingRepository(openTestDB(t))
	ctx := context.Background()

	l := testListing("DEL001")
	if err := repo.Create(ctx, &l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	deleted, err := repo.Delete(ctx, "DEL001")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.RefID != "DEL001" || deleted.Title != l.Title {
		t.Errorf("deleted record mismatch: %+v", deleted)
	}

	if _, err := repo.GetByRefID(ctx, "DEL001"); !errors.Is(err, bizlist_errors.ErrNotFound) {
		t.Errorf("get after delete = %v, want ErrNotFound", err)
	}
	if _, err := repo.Delete(ctx, "DEL001"); !errors.Is(err, bizlist_errors.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
