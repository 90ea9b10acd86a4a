// ABOUTME: Parser contract shared by the syndication, release and video parsers
// ABOUTME: A parser turns one fetched document into at most its kind's cap of RawItems

package parsers

import "news-aggregator-api/core/domain"

// Parser converts a fetched feed document into raw items.
// Parse never fails: malformed entries are skipped and an unreadable
// document yields an empty slice.
type Parser interface {
	Parse(data []byte, src domain.FeedSource) []domain.RawItem
}

// ForKind returns the parser for a source kind, or nil for an unknown kind
func ForKind(kind domain.SourceKind) Parser {
	switch kind {
	case domain.KindSyndication:
		return SyndicationParser{}
	case domain.KindRelease:
		return ReleaseParser{}
	case domain.KindVideo:
		return VideoParser{}
	}
	return nil
}
