package domain

import "testing"

func TestNewsItem_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		item     NewsItem
		expected bool
	}{
		{
			name: "valid item with all required fields",
			item: NewsItem{
				ID:      1042,
				RawItem: RawItem{Title: "Test Article", Link: "https://example.com/article"},
			},
			expected: true,
		},
		{
			name: "invalid item with empty title",
			item: NewsItem{
				ID:      1042,
				RawItem: RawItem{Link: "https://example.com/article"},
			},
			expected: false,
		},
		{
			name: "invalid item with empty link",
			item: NewsItem{
				ID:      1042,
				RawItem: RawItem{Title: "Test Article"},
			},
			expected: false,
		},
		{
			name: "invalid item without id",
			item: NewsItem{
				RawItem: RawItem{Title: "Test Article", Link: "https://example.com/article"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.IsValid(); got != tt.expected {
				t.Errorf("IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRawItem_Kind(t *testing.T) {
	if got := (RawItem{}).Kind(); got != KindSyndication {
		t.Errorf("Kind() = %v, want %v", got, KindSyndication)
	}
	if got := (RawItem{Release: &ReleaseInfo{TagName: "v1"}}).Kind(); got != KindRelease {
		t.Errorf("Kind() = %v, want %v", got, KindRelease)
	}
	if got := (RawItem{Video: &VideoInfo{VideoID: "abc"}}).Kind(); got != KindVideo {
		t.Errorf("Kind() = %v, want %v", got, KindVideo)
	}
}

func TestSourceKind_Limits(t *testing.T) {
	tests := []struct {
		kind      SourceKind
		parser    int
		aggregate int
	}{
		{KindSyndication, 10, 2},
		{KindRelease, 1, 1},
		{KindVideo, 3, 3},
		{SourceKind("podcast"), 0, 0},
	}

	for _, tt := range tests {
		if got := tt.kind.ParserLimit(); got != tt.parser {
			t.Errorf("%s ParserLimit() = %d, want %d", tt.kind, got, tt.parser)
		}
		if got := tt.kind.AggregateLimit(); got != tt.aggregate {
			t.Errorf("%s AggregateLimit() = %d, want %d", tt.kind, got, tt.aggregate)
		}
	}
}

func TestFeedSource_FeedURL(t *testing.T) {
	tests := []struct {
		name string
		src  FeedSource
		want string
	}{
		{
			name: "syndication uses url",
			src:  FeedSource{Kind: KindSyndication, URL: "https://example.com/feed"},
			want: "https://example.com/feed",
		},
		{
			name: "release builds atom url",
			src:  FeedSource{Kind: KindRelease, Owner: "ptitSeb", Repo: "box64"},
			want: "https://github.com/ptitSeb/box64/releases.atom",
		},
		{
			name: "video builds channel feed url",
			src:  FeedSource{Kind: KindVideo, ChannelID: "UC_0CVCfC_3iuHqmyClu59Uw"},
			want: "https://www.youtube.com/feeds/videos.xml?channel_id=UC_0CVCfC_3iuHqmyClu59Uw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.FeedURL(); got != tt.want {
				t.Errorf("FeedURL() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSources_Validate(t *testing.T) {
	valid := Sources{
		Syndication: []FeedSource{{ID: "rps", Kind: KindSyndication, URL: "https://example.com/feed"}},
		Release:     []FeedSource{{ID: "dxvk", Kind: KindRelease, Owner: "doitsujin", Repo: "dxvk"}},
		Video:       []FeedSource{{ID: "eta", Kind: KindVideo, ChannelID: "UC123"}},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() returned error for valid sources: %v", err)
	}

	dup := valid
	dup.Video = []FeedSource{{ID: "rps", Kind: KindVideo, ChannelID: "UC123"}}
	if err := dup.Validate(); err == nil {
		t.Error("Validate() should reject duplicate ids")
	}

	badURL := Sources{Syndication: []FeedSource{{ID: "x", Kind: KindSyndication, URL: "not a url"}}}
	if err := badURL.Validate(); err == nil {
		t.Error("Validate() should reject invalid syndication url")
	}

	noRepo := Sources{Release: []FeedSource{{ID: "x", Kind: KindRelease, Owner: "o"}}}
	if err := noRepo.Validate(); err == nil {
		t.Error("Validate() should reject release source without repo")
	}
}

func TestSources_AllOrder(t *testing.T) {
	s := Sources{
		Video:       []FeedSource{{ID: "v1"}},
		Release:     []FeedSource{{ID: "r1"}, {ID: "r2"}},
		Syndication: []FeedSource{{ID: "s1"}},
	}

	all := s.All()
	want := []string{"s1", "r1", "r2", "v1"}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d sources, want %d", len(all), len(want))
	}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("All()[%d] = %s, want %s", i, all[i].ID, id)
		}
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}
