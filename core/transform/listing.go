// ABOUTME: Listing projection turns the aggregated news list into the paged card envelope
// ABOUTME: Card display hints are fixed values the client app expects on every card

package transform

import (
	"strconv"

	"news-aggregator-api/core/domain"
)

const (
	// DefaultCoverImage is used when an item has no image of its own
	DefaultCoverImage = "https://via.placeholder.com/800x450/1a1a1a/ffffff?text=GameHub+News"

	listingTitle   = "Gaming / Emulation News"
	titleMaxLength = 80

	codeOK      = 200
	msgOK       = "Success"
	codeMissing = 404
	msgMissing  = "News not found"
)

// Card is one entry of the listing
type Card struct {
	ID                int64   `json:"id"`
	SysLanguageID     int     `json:"sys_language_id"`
	Platform          int     `json:"platform"`
	CardType          int     `json:"card_type"`
	JumpType          int     `json:"jump_type"`
	CardParam         string  `json:"card_param"`
	Title             string  `json:"title"`
	Subtitle          string  `json:"subtitle"`
	ContentImg        string  `json:"content_img"`
	ReleaseText       string  `json:"release_text"`
	GamePrice         string  `json:"game_price"`
	DiscountPrice     string  `json:"discount_price"`
	Discount          string  `json:"discount"`
	IsPay             int     `json:"is_pay"`
	EndTime           string  `json:"end_time"`
	IsDisplayTitle    int     `json:"is_display_title"`
	CardTag           *string `json:"card_tag"`
	GameTag           *string `json:"game_tag"`
	GameVideoURL      string  `json:"game_video_url"`
	GameCoverImage    string  `json:"game_cover_image"`
	GameBackImage     string  `json:"game_back_image"`
	GameStartupParams *string `json:"game_startup_params"`
	IsBannerData      int     `json:"is_banner_data"`
	IsDisplayPrice    int     `json:"is_display_price"`
	IsDisplayStart    int     `json:"is_display_start"`
	Source            string  `json:"source"`
	BtnText           string  `json:"btn_text"`
	IsDisplayBtn      int     `json:"is_display_btn"`
	GameChannelParams *string `json:"game_channel_params"`
	Ad                int     `json:"ad"`
}

// ListData is the payload of a listing envelope
type ListData struct {
	Title         string `json:"title"`
	AspectRatio   string `json:"aspect_ratio"`
	FixedCardSize int    `json:"fixed_card_size"`
	IsPlayVideo   int    `json:"is_play_video"`
	Total         int    `json:"total"`
	Page          int    `json:"page"`
	PageSize      int    `json:"page_size"`
	IsVertical    int    `json:"is_vertical"`
	IsTextOutside int    `json:"is_text_outside"`
	CardList      []Card `json:"card_list"`
}

// ListResponse is the listing envelope
type ListResponse struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Time string   `json:"time"`
	Data ListData `json:"data"`
}

// Transformer projects aggregated items into client envelopes
type Transformer struct {
	coverImage string
}

// New creates a transformer. An empty coverImage selects DefaultCoverImage.
func New(coverImage string) *Transformer {
	if coverImage == "" {
		coverImage = DefaultCoverImage
	}
	return &Transformer{coverImage: coverImage}
}

// List returns page of items as a listing envelope.
// Pages are 1-based; an out-of-range or non-positive page or pageSize yields
// an empty card list while Total still reports len(items).
func (t *Transformer) List(items []domain.NewsItem, page, pageSize int) ListResponse {
	return ListResponse{
		Code: codeOK,
		Msg:  msgOK,
		Time: "",
		Data: ListData{
			Title:         listingTitle,
			AspectRatio:   "0.56",
			FixedCardSize: 2,
			IsPlayVideo:   2,
			Total:         len(items),
			Page:          page,
			PageSize:      pageSize,
			IsVertical:    1,
			IsTextOutside: 1,
			CardList:      t.cards(pageOf(items, page, pageSize)),
		},
	}
}

func pageOf(items []domain.NewsItem, page, pageSize int) []domain.NewsItem {
	if page < 1 || pageSize < 1 || page-1 > len(items)/pageSize {
		return nil
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (t *Transformer) cards(items []domain.NewsItem) []Card {
	cards := make([]Card, 0, len(items))
	for i := range items {
		cards = append(cards, t.card(&items[i]))
	}
	return cards
}

func (t *Transformer) card(item *domain.NewsItem) Card {
	return Card{
		ID:             item.ID,
		SysLanguageID:  1,
		Platform:       1,
		CardType:       2,
		JumpType:       7,
		CardParam:      strconv.FormatInt(item.ID, 10),
		Title:          truncateTitle(item.Title),
		Subtitle:       item.Subtitle,
		ContentImg:     t.cover(item),
		IsPay:          2,
		IsDisplayTitle: 1,
		IsBannerData:   2,
		IsDisplayPrice: 2,
		IsDisplayStart: 1,
		Source:         "self",
		IsDisplayBtn:   2,
		Ad:             0,
	}
}

func (t *Transformer) cover(item *domain.NewsItem) string {
	if item.ImageURL != "" {
		return item.ImageURL
	}
	return t.coverImage
}

// truncateTitle keeps titles up to 80 characters and shortens longer ones to 77 plus "..."
func truncateTitle(title string) string {
	r := []rune(title)
	if len(r) <= titleMaxLength {
		return title
	}
	return string(r[:titleMaxLength-3]) + "..."
}
