package aggregator

import (
	"fmt"
	"testing"
	"time"

	"news-aggregator-api/core/domain"
)

var base = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func raw(link string, age time.Duration) domain.RawItem {
	return domain.RawItem{Title: link, Link: link, PublishedAt: base.Add(-age)}
}

func src(id string, kind domain.SourceKind) domain.FeedSource {
	return domain.FeedSource{ID: id, Kind: kind, Subtitle: "sub-" + id}
}

func TestStableID(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"", 1000},
		{"a", 1097},
		{"ab", 4105},
		{"https://www.youtube.com/watch?v=abc123", StableID("https://www.youtube.com/watch?v=abc123")},
	}

	for _, tt := range tests {
		if got := StableID(tt.input); got != tt.want {
			t.Errorf("StableID(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestStableID_AlwaysPositive(t *testing.T) {
	for i := 0; i < 2000; i++ {
		link := fmt.Sprintf("https://example.com/articles/%d/some-long-slug-to-force-overflow-%d", i, i*7919)
		if id := StableID(link); id < 1000 {
			t.Fatalf("StableID(%q) = %d, want >= 1000", link, id)
		}
	}
}

func TestStableID_UTF16(t *testing.T) {
	// é is one UTF-16 unit (0xE9); the emoji is a surrogate pair
	if got, want := StableID("é"), int64(0xE9+1000); got != want {
		t.Errorf("StableID(é) = %d, want %d", got, want)
	}

	var h int32
	for _, c := range []int32{0xD83C, 0xDFAE} {
		h = h*31 + c
	}
	if got, want := StableID("🎮"), int64(h)+1000; got != want {
		t.Errorf("StableID(🎮) = %d, want %d", got, want)
	}
}

func TestAggregate_Caps(t *testing.T) {
	batches := []Batch{
		{Source: src("rps", domain.KindSyndication), Items: []domain.RawItem{raw("s1", 1), raw("s2", 2), raw("s3", 3)}},
		{Source: src("box64", domain.KindRelease), Items: []domain.RawItem{raw("r1", 4), raw("r2", 5)}},
		{Source: src("eta", domain.KindVideo), Items: []domain.RawItem{raw("v1", 6), raw("v2", 7), raw("v3", 8), raw("v4", 9)}},
	}

	got := Aggregate(batches, 0)

	counts := map[string]int{}
	for _, item := range got {
		counts[item.SourceID]++
	}
	if counts["rps"] != 2 || counts["box64"] != 1 || counts["eta"] != 3 {
		t.Errorf("per-source counts = %v, want rps:2 box64:1 eta:3", counts)
	}
	for _, item := range got {
		if item.Link == "s3" || item.Link == "r2" || item.Link == "v4" {
			t.Errorf("item %s should have been cut by the source cap", item.Link)
		}
	}
}

func TestAggregate_SortsNewestFirst(t *testing.T) {
	batches := []Batch{
		{Source: src("rps", domain.KindSyndication), Items: []domain.RawItem{raw("old", 10*time.Hour), raw("mid", 5*time.Hour)}},
		{Source: src("eta", domain.KindVideo), Items: []domain.RawItem{raw("new", time.Hour)}},
	}

	got := Aggregate(batches, 0)
	want := []string{"new", "mid", "old"}
	for i, w := range want {
		if got[i].Link != w {
			t.Errorf("got[%d] = %s, want %s", i, got[i].Link, w)
		}
	}
}

func TestAggregate_StableTies(t *testing.T) {
	same := base
	batches := []Batch{
		{Source: src("v", domain.KindVideo), Items: []domain.RawItem{{Link: "video", PublishedAt: same}}},
		{Source: src("r", domain.KindRelease), Items: []domain.RawItem{{Link: "release", PublishedAt: same}}},
		{Source: src("s", domain.KindSyndication), Items: []domain.RawItem{{Link: "synd-1", PublishedAt: same}, {Link: "synd-2", PublishedAt: same}}},
	}

	want := []string{"synd-1", "synd-2", "release", "video"}
	for run := 0; run < 5; run++ {
		got := Aggregate(batches, 0)
		for i, w := range want {
			if got[i].Link != w {
				t.Fatalf("run %d: got[%d] = %s, want %s", run, i, got[i].Link, w)
			}
		}
	}
}

func TestAggregate_Fields(t *testing.T) {
	got := Aggregate([]Batch{{Source: src("box64", domain.KindRelease), Items: []domain.RawItem{raw("https://github.com/o/r/releases/tag/v1", 0)}}}, 0)

	if len(got) != 1 {
		t.Fatalf("Aggregate() returned %d items, want 1", len(got))
	}
	item := got[0]
	if item.ID != StableID("https://github.com/o/r/releases/tag/v1") {
		t.Errorf("ID = %d", item.ID)
	}
	if item.SourceKind != domain.KindRelease || item.SourceID != "box64" || item.Subtitle != "sub-box64" {
		t.Errorf("unexpected attribution %+v", item)
	}
}

func TestAggregate_MaxTotal(t *testing.T) {
	var batches []Batch
	for i := 0; i < 10; i++ {
		batches = append(batches, Batch{
			Source: src(fmt.Sprintf("eta%d", i), domain.KindVideo),
			Items:  []domain.RawItem{raw(fmt.Sprintf("a%d", i), time.Duration(i)*time.Minute), raw(fmt.Sprintf("b%d", i), time.Duration(i)*time.Hour)},
		})
	}

	if got := Aggregate(batches, 5); len(got) != 5 {
		t.Errorf("Aggregate(max=5) returned %d items", len(got))
	}
	if got := Aggregate(batches, -1); len(got) != 20 {
		t.Errorf("Aggregate(max=-1) returned %d items, want 20", len(got))
	}
}

func TestAggregate_EmptyBatches(t *testing.T) {
	got := Aggregate([]Batch{
		{Source: src("down", domain.KindSyndication)},
		{Source: src("also-down", domain.KindVideo), Items: []domain.RawItem{}},
	}, 50)
	if got == nil || len(got) != 0 {
		t.Errorf("Aggregate() = %v, want empty non-nil slice", got)
	}

	if got := Aggregate(nil, 50); got == nil {
		t.Error("Aggregate(nil) should return a non-nil slice")
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	batches := []Batch{
		{Source: src("rps", domain.KindSyndication), Items: []domain.RawItem{raw("s1", 3), raw("s2", 1)}},
		{Source: src("eta", domain.KindVideo), Items: []domain.RawItem{raw("v1", 2)}},
	}

	first := Aggregate(batches, 0)
	second := Aggregate(batches, 0)
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("run mismatch at %d", i)
		}
	}
}
