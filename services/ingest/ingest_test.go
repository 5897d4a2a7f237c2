package ingest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"tourism-booking/models/restaurant"
	"tourism-booking/services/validation"
)

type mockRowStore struct {
	insertFunc func(r *restaurant.Restaurant) error
	inserted   []*restaurant.Restaurant
}

func (m *mockRowStore) InsertRestaurant(r *restaurant.Restaurant) error {
	if m.insertFunc != nil {
		if err := m.insertFunc(r); err != nil {
			return err
		}
	}
	m.inserted = append(m.inserted, r)
	return nil
}

const header = "id,name_ko,name_en,name_ja,name_zh,name_th,region,sector,city,address,cuisine,avg_price,gov_certified,airport_priority,description,status"

func goodRow(id string) string {
	return fmt.Sprintf("%s,이문설농탕,Imun Seolleongtang,李門雪濃湯,李门雪浓汤,อีมุน,수도권,노포,서울시 종로구,돈화문로 152,설렁탕,15000,Y,1순위,Over a century of tradition,ACTIVE", id)
}

func blob(rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestIngest_AllRowsWellFormed(t *testing.T) {
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(goodRow("r1"), goodRow("r2"), goodRow("r3")))

	if result.SuccessCount != 3 || result.ErrorCount != 0 {
		t.Fatalf("expected 3/0, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
	if len(store.inserted) != 3 {
		t.Fatalf("expected 3 inserts, got %d", len(store.inserted))
	}

	first := store.inserted[0]
	if first.ID != "r1" {
		t.Errorf("expected id r1, got %s", first.ID)
	}
	if first.AvgPrice != 15000 {
		t.Errorf("expected avg price 15000, got %d", first.AvgPrice)
	}
	if !first.GovCertified {
		t.Error("expected gov certified true for Y flag")
	}
	if first.Status != restaurant.ListingStatusOpen {
		t.Errorf("expected open status for ACTIVE, got %s", first.Status)
	}
}

func TestIngest_ShortRowsNeverReachStore(t *testing.T) {
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(goodRow("r1"), "a,b,c,d,e,f,g,h,i,j", "only,three,fields"))

	if result.SuccessCount != 1 || result.ErrorCount != 2 {
		t.Fatalf("expected 1/2, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
	if len(store.inserted) != 1 {
		t.Fatalf("short rows must not be attempted, got %d inserts", len(store.inserted))
	}
}

func TestIngest_MixedBatchCounts(t *testing.T) {
	// 5 well-formed rows, 2 rows with 10 fields, 1 row failing persistence.
	failing := goodRow("boom")
	rows := []string{
		goodRow("r1"), goodRow("r2"), goodRow("r3"), goodRow("r4"), goodRow("r5"),
		"a,b,c,d,e,f,g,h,i,j",
		"k,l,m,n,o,p,q,r,s,t",
		failing,
	}

	store := &mockRowStore{
		insertFunc: func(r *restaurant.Restaurant) error {
			if r.ID == "boom" {
				return errors.New("unique constraint violation")
			}
			return nil
		},
	}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(rows...))

	if result.SuccessCount != 5 {
		t.Errorf("expected 5 successes, got %d", result.SuccessCount)
	}
	if result.ErrorCount != 3 {
		t.Errorf("expected 3 errors, got %d", result.ErrorCount)
	}
	if result.SuccessCount+result.ErrorCount != len(rows) {
		t.Errorf("counts must cover every data line: %d+%d != %d",
			result.SuccessCount, result.ErrorCount, len(rows))
	}
	if result.Message != "Uploaded 5 restaurants, 3 errors" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestIngest_PersistenceFailureIsolatedToRow(t *testing.T) {
	store := &mockRowStore{
		insertFunc: func(r *restaurant.Restaurant) error {
			if r.ID == "r2" {
				return errors.New("write failed")
			}
			return nil
		},
	}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(goodRow("r1"), goodRow("r2"), goodRow("r3")))

	if result.SuccessCount != 2 || result.ErrorCount != 1 {
		t.Fatalf("expected 2/1, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
}

func TestIngest_BadPriceCountsAsError(t *testing.T) {
	badPrice := strings.Replace(goodRow("r1"), "15000", "cheap", 1)
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(badPrice))

	if result.SuccessCount != 0 || result.ErrorCount != 1 {
		t.Fatalf("expected 0/1, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
	if len(store.inserted) != 0 {
		t.Fatal("row with unparseable price must not be persisted")
	}
}

func TestIngest_UnknownStatusBucketedAsClosed(t *testing.T) {
	unknown := strings.Replace(goodRow("r1"), "ACTIVE", "DEMOLISHED", 1)
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(unknown))

	if result.SuccessCount != 1 {
		t.Fatalf("permissive policy must accept unknown status, got %d/%d",
			result.SuccessCount, result.ErrorCount)
	}
	if store.inserted[0].Status != restaurant.ListingStatusClosed {
		t.Errorf("expected closed bucket, got %s", store.inserted[0].Status)
	}
}

func TestIngest_UnknownStatusRejectedUnderStrict(t *testing.T) {
	unknown := strings.Replace(goodRow("r1"), "ACTIVE", "DEMOLISHED", 1)
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Strict)

	result := ing.Ingest(blob(unknown))

	if result.SuccessCount != 0 || result.ErrorCount != 1 {
		t.Fatalf("strict policy must reject unknown status, got %d/%d",
			result.SuccessCount, result.ErrorCount)
	}
}

func TestIngest_EmptyBlob(t *testing.T) {
	ing := NewIngestor(&mockRowStore{}, validation.Permissive)

	result := ing.Ingest("")
	if result.SuccessCount != 0 || result.ErrorCount != 0 {
		t.Fatalf("expected 0/0 for empty input, got %d/%d", result.SuccessCount, result.ErrorCount)
	}

	result = ing.Ingest(header + "\n")
	if result.SuccessCount != 0 || result.ErrorCount != 0 {
		t.Fatalf("expected 0/0 for header-only input, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
}

func TestIngest_MissingIDGetsGenerated(t *testing.T) {
	noID := strings.Replace(goodRow("r1"), "r1,", ",", 1)
	store := &mockRowStore{}
	ing := NewIngestor(store, validation.Permissive)

	result := ing.Ingest(blob(noID))

	if result.SuccessCount != 1 {
		t.Fatalf("expected success, got %d/%d", result.SuccessCount, result.ErrorCount)
	}
	if store.inserted[0].ID == "" {
		t.Error("expected generated id for blank id field")
	}
}
