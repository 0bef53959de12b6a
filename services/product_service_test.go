package services

import (
	"storebill_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

func inventory(names ...string) []tables.Product {
	products := make([]tables.Product, 0, len(names))
	for _, name := range names {
		products = append(products, tables.Product{
			Id:   uuid.New(),
			Name: name,
		})
	}
	return products
}

func TestRankProductsExactMatchFirst(t *testing.T) {
	products := inventory("Paracetamol 500mg", "Paracetamol", "Ibuprofen 400mg")

	ranked := RankProducts(products, "Paracetamol")
	if len(ranked) < 2 {
		t.Fatalf("expected at least 2 results, got %d", len(ranked))
	}
	if ranked[0].Name != "Paracetamol" {
		t.Errorf("exact match should rank first, got %q", ranked[0].Name)
	}
	if ranked[0].Score != 1.0 {
		t.Errorf("exact match should score 1.0, got %f", ranked[0].Score)
	}
}

func TestRankProductsThreshold(t *testing.T) {
	products := inventory("Paracetamol", "Insulin Glargine")

	ranked := RankProducts(products, "paracetmol")
	for _, rp := range ranked {
		if rp.Score <= SimilarityThreshold {
			t.Errorf("result %q scored %f, at or below threshold", rp.Name, rp.Score)
		}
		if rp.Name == "Insulin Glargine" {
			t.Errorf("unrelated product should not appear in results")
		}
	}
	if len(ranked) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(ranked))
	}
}

func TestRankProductsEmptyQuery(t *testing.T) {
	products := inventory("Paracetamol", "Ibuprofen", "Insulin")

	if ranked := RankProducts(products, ""); len(ranked) != 0 {
		t.Errorf("empty query should return nothing, got %d results", len(ranked))
	}
	if ranked := RankProducts(products, "   "); len(ranked) != 0 {
		t.Errorf("whitespace query should return nothing, got %d results", len(ranked))
	}
}

func TestRankProductsEmptyInventory(t *testing.T) {
	if ranked := RankProducts(nil, "paracetamol"); len(ranked) != 0 {
		t.Errorf("empty inventory should return nothing")
	}
}

func TestRankProductsBatchMatch(t *testing.T) {
	products := []tables.Product{
		{Id: uuid.New(), Name: "Cough Syrup", Batch: "PCM2024A"},
		{Id: uuid.New(), Name: "Throat Lozenge", Batch: "TL9"},
	}

	ranked := RankProducts(products, "PCM2024A")
	if len(ranked) != 1 {
		t.Fatalf("expected 1 result from batch match, got %d", len(ranked))
	}
	if ranked[0].Name != "Cough Syrup" {
		t.Errorf("expected batch match on Cough Syrup, got %q", ranked[0].Name)
	}
	if ranked[0].Score != 1.0 {
		t.Errorf("exact batch match should score 1.0, got %f", ranked[0].Score)
	}
}

func TestRankProductsUsesBestOfNameAndBatch(t *testing.T) {
	product := tables.Product{Id: uuid.New(), Name: "zzzz", Batch: "DOLO650"}

	ranked := RankProducts([]tables.Product{product}, "DOLO650")
	if len(ranked) != 1 {
		t.Fatalf("expected the batch score to carry the product, got %d results", len(ranked))
	}
	if ranked[0].Score != 1.0 {
		t.Errorf("score should be the max of name and batch, got %f", ranked[0].Score)
	}
}

func TestRankProductsSortedDescending(t *testing.T) {
	products := inventory("Paracetamol", "Paracetamol 500mg", "Paracetamol 500mg Strip of 15")

	ranked := RankProducts(products, "paracetamol")
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("results out of order: %q (%f) after %q (%f)",
				ranked[i].Name, ranked[i].Score, ranked[i-1].Name, ranked[i-1].Score)
		}
	}
}
