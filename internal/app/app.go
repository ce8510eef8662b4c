package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/glabrego/newsdeck/internal/news"
	"github.com/glabrego/newsdeck/internal/summary"
)

type NewsClient interface {
	ListTab(ctx context.Context, tab news.TabID, page int) ([]news.Item, error)
	SocialSummary(ctx context.Context, r news.Range) (string, error)
}

// Archive records what was fetched. It is write-only from the service's
// point of view.
type Archive interface {
	SaveItems(ctx context.Context, tab news.TabID, page int, items []news.Item) error
	SaveSummary(ctx context.Context, r news.Range, text string) error
}

type Service struct {
	client  NewsClient
	archive Archive
}

// NewService builds a service. archive may be nil.
func NewService(client NewsClient, archive Archive) *Service {
	return &Service{client: client, archive: archive}
}

func (s *Service) LoadPage(ctx context.Context, tab news.TabID, page int) ([]news.Item, error) {
	if page < 1 {
		page = 1
	}
	items, err := s.client.ListTab(ctx, tab, page)
	if err != nil {
		return nil, fmt.Errorf("fetch %s page %d: %w", tab, page, err)
	}

	if s.archive != nil && len(items) > 0 {
		if err := s.archive.SaveItems(ctx, tab, page, items); err != nil {
			log.WithFields(log.Fields{
				"tab":   tab,
				"page":  page,
				"error": err,
			}).Warn("Failed to archive page")
		}
	}
	return items, nil
}

// Summary returns the summary for a tab and range. Only the social tab has a
// live summary endpoint; the traditional tab gets its canned text.
func (s *Service) Summary(ctx context.Context, tab news.TabID, r news.Range) (news.Summary, error) {
	t, ok := news.LookupTab(tab)
	if !ok {
		return news.Summary{}, fmt.Errorf("unknown tab %q", tab)
	}
	if t.ID != news.TabSocial {
		return summary.Canned(t, r), nil
	}

	text, err := s.client.SocialSummary(ctx, r)
	if err != nil {
		return news.Summary{}, fmt.Errorf("fetch %s summary: %w", r, err)
	}

	if s.archive != nil && text != "" {
		if err := s.archive.SaveSummary(ctx, r, text); err != nil {
			log.WithFields(log.Fields{
				"range": r,
				"error": err,
			}).Warn("Failed to archive summary")
		}
	}
	return summary.Build(text), nil
}
