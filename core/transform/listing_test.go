package transform

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"news-aggregator-api/core/domain"
)

func newsItems(n int) []domain.NewsItem {
	items := make([]domain.NewsItem, n)
	for i := range items {
		items[i] = domain.NewsItem{
			ID:       int64(1000 + i),
			Subtitle: "Rock Paper Shotgun",
			RawItem: domain.RawItem{
				Title:       fmt.Sprintf("Item %d", i),
				Link:        fmt.Sprintf("https://example.com/%d", i),
				PublishedAt: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
			},
		}
	}
	return items
}

func TestList_Pagination(t *testing.T) {
	items := newsItems(10)
	tr := New("")

	tests := []struct {
		name     string
		page     int
		pageSize int
		wantIDs  []int64
	}{
		{"first page", 1, 4, []int64{1000, 1001, 1002, 1003}},
		{"second page", 2, 4, []int64{1004, 1005, 1006, 1007}},
		{"partial last page", 3, 4, []int64{1008, 1009}},
		{"past the end", 4, 4, nil},
		{"zero page", 0, 4, nil},
		{"negative page", -1, 4, nil},
		{"zero page size", 1, 0, nil},
		{"huge page", 1 << 40, 4, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := tr.List(items, tt.page, tt.pageSize)

			if resp.Data.Total != 10 {
				t.Errorf("Total = %d, want 10", resp.Data.Total)
			}
			if resp.Data.CardList == nil {
				t.Fatal("CardList should never be nil")
			}
			if len(resp.Data.CardList) != len(tt.wantIDs) {
				t.Fatalf("got %d cards, want %d", len(resp.Data.CardList), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if resp.Data.CardList[i].ID != id {
					t.Errorf("card[%d].ID = %d, want %d", i, resp.Data.CardList[i].ID, id)
				}
			}
		})
	}
}

func TestList_Envelope(t *testing.T) {
	resp := New("").List(newsItems(1), 1, 4)

	if resp.Code != 200 || resp.Msg != "Success" || resp.Time != "" {
		t.Errorf("unexpected envelope header %+v", resp)
	}
	d := resp.Data
	if d.Title != "Gaming / Emulation News" || d.AspectRatio != "0.56" || d.FixedCardSize != 2 ||
		d.IsPlayVideo != 2 || d.IsVertical != 1 || d.IsTextOutside != 1 || d.Page != 1 || d.PageSize != 4 {
		t.Errorf("unexpected listing data %+v", d)
	}

	raw, err := json.Marshal(resp.Data.CardList[0])
	if err != nil {
		t.Fatalf("marshal card: %v", err)
	}
	var card map[string]interface{}
	if err := json.Unmarshal(raw, &card); err != nil {
		t.Fatalf("unmarshal card: %v", err)
	}

	want := map[string]interface{}{
		"id": float64(1000), "sys_language_id": float64(1), "platform": float64(1),
		"card_type": float64(2), "jump_type": float64(7), "card_param": "1000",
		"title": "Item 0", "subtitle": "Rock Paper Shotgun", "content_img": DefaultCoverImage,
		"release_text": "", "game_price": "", "discount_price": "", "discount": "",
		"is_pay": float64(2), "end_time": "", "is_display_title": float64(1),
		"card_tag": nil, "game_tag": nil, "game_video_url": "", "game_cover_image": "",
		"game_back_image": "", "game_startup_params": nil, "is_banner_data": float64(2),
		"is_display_price": float64(2), "is_display_start": float64(1), "source": "self",
		"btn_text": "", "is_display_btn": float64(2), "game_channel_params": nil, "ad": float64(0),
	}
	if len(card) != len(want) {
		t.Errorf("card has %d fields, want %d", len(card), len(want))
	}
	for k, v := range want {
		got, ok := card[k]
		if !ok {
			t.Errorf("card missing field %q", k)
			continue
		}
		if got != v {
			t.Errorf("card[%q] = %v, want %v", k, got, v)
		}
	}
}

func TestList_EmptyCardListMarshalsAsArray(t *testing.T) {
	raw, err := json.Marshal(New("").List(nil, 1, 4))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"card_list":[]`) {
		t.Errorf("card_list should marshal as [], got %s", raw)
	}
}

func TestList_CoverImage(t *testing.T) {
	items := newsItems(2)
	items[0].ImageURL = "https://img.example.com/a.jpg"

	resp := New("https://cdn.example.com/cover.png").List(items, 1, 4)
	if resp.Data.CardList[0].ContentImg != "https://img.example.com/a.jpg" {
		t.Errorf("ContentImg = %q", resp.Data.CardList[0].ContentImg)
	}
	if resp.Data.CardList[1].ContentImg != "https://cdn.example.com/cover.png" {
		t.Errorf("ContentImg fallback = %q", resp.Data.CardList[1].ContentImg)
	}
}

func TestTruncateTitle(t *testing.T) {
	exact := strings.Repeat("a", 80)
	long := strings.Repeat("b", 81)
	wide := strings.Repeat("ü", 100)

	if got := truncateTitle(exact); got != exact {
		t.Errorf("80 character title should be kept, got %d chars", len(got))
	}
	if got := truncateTitle(long); got != strings.Repeat("b", 77)+"..." {
		t.Errorf("truncateTitle(81) = %q", got)
	}
	if got := truncateTitle(wide); got != strings.Repeat("ü", 77)+"..." {
		t.Errorf("truncateTitle should count characters, got %q", got)
	}
	if got := truncateTitle(""); got != "" {
		t.Errorf("truncateTitle(\"\") = %q", got)
	}
}
