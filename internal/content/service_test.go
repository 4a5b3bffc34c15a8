package content

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hts_portal/internal/auth"
	"hts_portal/internal/db/dbtest"
	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

var admin = &auth.Identity{ID: 1, Username: "admin", Role: models.RoleAdmin}

func newService(t *testing.T) *Service {
	return NewService(store.NewPages(dbtest.New(t)))
}

func TestSave_RequiresAdmin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()
	draft := store.PageDraft{Title: "x", Slug: "x"}

	_, err := svc.Save(ctx, nil, 0, draft)
	assert.Equal(t, auth.ErrForbidden, err)

	_, err = svc.Save(ctx, &auth.Identity{Role: models.RoleUser}, 0, draft)
	assert.Equal(t, auth.ErrForbidden, err)

	assert.Equal(t, auth.ErrForbidden, svc.Delete(ctx, &auth.Identity{Role: models.RoleUser}, 1))
}

func TestSave_DerivesSlugOnCreateOnly(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	p, err := svc.Save(ctx, admin, 0, store.PageDraft{Title: "¡Hola, Mundo!", Content: "<p>hi</p>"})
	require.NoError(t, err)
	assert.Equal(t, "hola-mundo", p.Slug)

	p, err = svc.Save(ctx, admin, p.ID, store.PageDraft{Title: "Otro título", Slug: p.Slug, Content: "<p>hi</p>"})
	require.NoError(t, err)
	assert.Equal(t, "hola-mundo", p.Slug)
	assert.Equal(t, "Otro título", p.TitleText())

	_, err = svc.Save(ctx, admin, p.ID, store.PageDraft{Title: "Otro título"})
	assert.Equal(t, ErrSlugRequired, err)

	_, err = svc.Save(ctx, admin, 0, store.PageDraft{Title: "!!!"})
	assert.Equal(t, ErrSlugRequired, err)
}

func TestSummariesAndArticle(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	long := "<p>" + strings.Repeat("a", 450) + "</p>"
	_, err := svc.Save(ctx, admin, 0, store.PageDraft{Title: "Largo", Slug: "largo", Content: long})
	require.NoError(t, err)

	list, err := svc.Summaries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, strings.Repeat("a", 400)+"...", list[0].Excerpt)

	p, err := svc.Article(ctx, "largo")
	require.NoError(t, err)
	assert.Equal(t, long, p.Body())

	_, err = svc.Article(ctx, "does-not-exist")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}
