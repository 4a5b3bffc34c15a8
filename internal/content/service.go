package content

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"hts_portal/internal/auth"
	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

// ErrSlugRequired is returned when a page would be saved without a slug.
var ErrSlugRequired = errors.New("Slug is required!")

// Summary is one entry of the article list.
type Summary struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
}

// Service reads and writes knowledge-base articles. Stored markup is rendered
// without sanitizing, so only administrators may save it.
type Service struct {
	pages *store.Pages
}

func NewService(pages *store.Pages) *Service {
	return &Service{pages: pages}
}

// Summaries lists every article, most recently updated first.
func (s *Service) Summaries(ctx context.Context) ([]Summary, error) {
	pages, err := s.pages.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Summary, 0, len(pages))
	for _, p := range pages {
		out = append(out, Summary{
			Slug:    p.Slug,
			Title:   p.TitleText(),
			Excerpt: Excerpt(p.Body(), ExcerptLimit),
		})
	}
	return out, nil
}

// Article returns the page stored under slug, or store.ErrNotFound.
func (s *Service) Article(ctx context.Context, slug string) (models.ContentPage, error) {
	return s.pages.GetBySlug(ctx, slug)
}

// Save creates the page when id is zero and updates it otherwise. On create an
// empty slug is derived from the title; an existing slug is never rewritten
// from the title.
func (s *Service) Save(ctx context.Context, actor *auth.Identity, id int64, d store.PageDraft) (models.ContentPage, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return models.ContentPage{}, err
	}

	d.Slug = strings.TrimSpace(d.Slug)
	if id == 0 && d.Slug == "" {
		d.Slug = Slugify(d.Title)
	}
	if d.Slug == "" {
		return models.ContentPage{}, ErrSlugRequired
	}

	if id == 0 {
		return s.pages.Create(ctx, d)
	}
	if err := s.pages.Update(ctx, id, d); err != nil {
		return models.ContentPage{}, err
	}
	return s.pages.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, actor *auth.Identity, id int64) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	return s.pages.Delete(ctx, id)
}
