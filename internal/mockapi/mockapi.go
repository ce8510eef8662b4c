// Package mockapi serves a deterministic local copy of the news API for
// development and tests.
package mockapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/glabrego/newsdeck/internal/news"
)

// Fixtures controls the generated data. Pages past Pages return an empty
// array, which ends pagination in the client.
type Fixtures struct {
	PageSize int
	Pages    int
	Start    time.Time
}

func DefaultFixtures() Fixtures {
	return Fixtures{
		PageSize: 10,
		Pages:    3,
		Start:    time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC),
	}
}

type SocialPost struct {
	ID              string `json:"id"`
	DisplayName     string `json:"displayName"`
	Username        string `json:"username"`
	Text            string `json:"text"`
	ProfileImageURL string `json:"profile_image_url"`
	CreatedAt       string `json:"createdAt"`
}

type Article struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
}

var desks = []string{"city", "world", "business", "science"}

var summaryTopics = map[news.Range][]string{
	news.Range1h:  {"Markets", "Weather"},
	news.Range6h:  {"Markets", "Politics", "Weather"},
	news.Range12h: {"Markets", "Politics", "Sports", "Technology"},
	news.Range24h: {"Markets", "Politics", "Sports", "Technology", "Culture"},
}

type handler struct {
	fixtures Fixtures
}

func NewRouter(fixtures Fixtures) *gin.Engine {
	if fixtures.PageSize < 1 {
		fixtures.PageSize = DefaultFixtures().PageSize
	}
	if fixtures.Start.IsZero() {
		fixtures.Start = DefaultFixtures().Start
	}
	h := &handler{fixtures: fixtures}

	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/news/", h.GetTraditional)
	r.GET("/news/twitter", h.GetSocial)
	r.GET("/news/twitter/summary", h.GetSocialSummary)
	return r
}

func (h *handler) GetSocial(c *gin.Context) {
	page := getQueryPage(c)
	if page > h.fixtures.Pages {
		c.JSON(http.StatusOK, []SocialPost{})
		return
	}
	first := (page-1)*h.fixtures.PageSize + 1
	posts := lo.Map(lo.RangeFrom(first, h.fixtures.PageSize), func(n int, _ int) SocialPost {
		handle := fmt.Sprintf("reporter%d", n%7+1)
		return SocialPost{
			ID:              strconv.Itoa(n),
			DisplayName:     fmt.Sprintf("Reporter %d", n%7+1),
			Username:        handle,
			Text:            fmt.Sprintf("Update #%d: developing story from the %s desk.", n, desks[n%len(desks)]),
			ProfileImageURL: fmt.Sprintf("https://images.example.com/%s.png", handle),
			CreatedAt:       h.fixtures.Start.Add(-time.Duration(n) * 7 * time.Minute).Format(time.RFC3339),
		}
	})
	c.JSON(http.StatusOK, posts)
}

func (h *handler) GetTraditional(c *gin.Context) {
	page := getQueryPage(c)
	if page > h.fixtures.Pages {
		c.JSON(http.StatusOK, []Article{})
		return
	}
	first := (page-1)*h.fixtures.PageSize + 1
	articles := lo.Map(lo.RangeFrom(first, h.fixtures.PageSize), func(n int, _ int) Article {
		return Article{
			ID:          fmt.Sprintf("article-%d", n),
			Title:       fmt.Sprintf("Headline %d", n),
			Summary:     fmt.Sprintf("<p>Background for story %d.</p><p>More reporting to follow.</p>", n),
			URL:         fmt.Sprintf("https://news.example.com/articles/%d", n),
			PublishedAt: h.fixtures.Start.Add(-time.Duration(n) * time.Hour).Format(time.RFC3339),
		}
	})
	c.JSON(http.StatusOK, articles)
}

func (h *handler) GetSocialSummary(c *gin.Context) {
	r, err := news.ParseRange(c.Query("hour"))
	if err != nil {
		log.WithFields(log.Fields{"hour": c.Query("hour")}).Warn("Rejected summary request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, BulletSummary(r))
}

// BulletSummary renders the fixture summary for r in the "* **Label:**
// detail" format the client parses.
func BulletSummary(r news.Range) string {
	topics := summaryTopics[r]
	parts := lo.Map(topics, func(topic string, i int) string {
		return fmt.Sprintf("* **%s:** %s coverage item %d for the last %s.", topic, topic, i+1, r)
	})
	return strings.Join(parts, " ")
}

func getQueryPage(c *gin.Context) int {
	raw := c.Query("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		log.WithFields(log.Fields{"page": raw}).Warn("Invalid page parameter, using 1")
		return 1
	}
	return page
}
