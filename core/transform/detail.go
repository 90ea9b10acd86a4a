// ABOUTME: Detail projection renders one news item as a complete HTML document envelope
// ABOUTME: A missing item maps to the not-found envelope with a null payload

package transform

import "news-aggregator-api/core/domain"

const dateLayout = "2006-01-02"

// DetailData is the payload of a successful detail envelope
type DetailData struct {
	CoverImage string `json:"cover_image"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Time       string `json:"time"`
}

// DetailResponse is the detail envelope. Data is nil for a missing item.
type DetailResponse struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Time string      `json:"time"`
	Data *DetailData `json:"data"`
}

// Found reports whether the envelope carries an item
func (r DetailResponse) Found() bool {
	return r.Code == codeOK && r.Data != nil
}

// NotFound returns the envelope used for unknown ids
func NotFound() DetailResponse {
	return DetailResponse{Code: codeMissing, Msg: msgMissing, Time: ""}
}

// Detail renders item, or the not-found envelope when item is nil
func (t *Transformer) Detail(item *domain.NewsItem) DetailResponse {
	if item == nil {
		return NotFound()
	}

	cover := t.cover(item)
	return DetailResponse{
		Code: codeOK,
		Msg:  msgOK,
		Time: "",
		Data: &DetailData{
			CoverImage: cover,
			Title:      item.Title,
			Content:    renderDocument(item, cover),
			Time:       item.PublishedAt.UTC().Format(dateLayout),
		},
	}
}
