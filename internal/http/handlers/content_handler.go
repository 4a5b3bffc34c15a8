package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"hts_portal/internal/auth"
	"hts_portal/internal/content"
	"hts_portal/internal/store"
)

// ContentAdmin serves the knowledge-base editor.
type ContentAdmin struct {
	Pages   *store.Pages
	Content *content.Service
	Audit   *Auditor
}

func (h *ContentAdmin) render(c *gin.Context, status int, data gin.H) {
	pages, err := h.Pages.List(c.Request.Context())
	if err != nil {
		logger(c).Error().Err(err).Msg("list pages")
	}
	data["title"] = "Contenido"
	data["pages"] = pages
	if _, ok := data["draft"]; !ok {
		data["draft"] = store.PageDraft{}
	}
	render(c, status, "admin_content.tmpl", data)
}

func pageDraftFromForm(c *gin.Context) store.PageDraft {
	return store.PageDraft{
		Title:   c.PostForm("title"),
		Slug:    c.PostForm("slug"),
		Content: c.PostForm("content"),
	}
}

func (h *ContentAdmin) Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{}
		if id := queryID(c, "edit"); id > 0 {
			if p, err := h.Pages.Get(c.Request.Context(), id); err == nil {
				data["editID"] = p.ID
				data["draft"] = store.PageDraft{Title: p.TitleText(), Slug: p.Slug, Content: p.Body()}
			}
		}
		h.render(c, http.StatusOK, data)
	}
}

// Save handles both the create form (no :id) and the edit form.
func (h *ContentAdmin) Save() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id int64
		if c.Param("id") != "" {
			var ok bool
			if id, ok = paramID(c); !ok {
				seeOther(c, "/admin/content")
				return
			}
		}
		d := pageDraftFromForm(c)

		p, err := h.Content.Save(c.Request.Context(), auth.Current(c), id, d)
		if err != nil {
			data := gin.H{"draft": d}
			if id > 0 {
				data["editID"] = id
			}
			switch {
			case errors.Is(err, content.ErrSlugRequired):
				data["alert"] = err.Error()
			case errors.Is(err, auth.ErrForbidden):
				c.AbortWithStatus(http.StatusForbidden)
				return
			case id > 0:
				data["alert"] = "Error updating page: " + backendMessage(err)
			default:
				data["alert"] = "Error creating page: " + backendMessage(err)
			}
			h.render(c, http.StatusUnprocessableEntity, data)
			return
		}

		action := "content.create"
		if id > 0 {
			action = "content.update"
		}
		h.Audit.Record(c, action, "content_page", p.ID, gin.H{"slug": p.Slug})
		seeOther(c, "/admin/content")
	}
}

func (h *ContentAdmin) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			seeOther(c, "/admin/content")
			return
		}
		if !confirmed(c) {
			renderConfirm(c, "Are you sure you want to delete this page?", "/admin/content")
			return
		}

		if err := h.Content.Delete(c.Request.Context(), auth.Current(c), id); err != nil {
			logger(c).Warn().Err(err).Int64("page_id", id).Msg("delete page")
			h.render(c, http.StatusOK, gin.H{"warning": "Error deleting page"})
			return
		}

		h.Audit.Record(c, "content.delete", "content_page", id, nil)
		seeOther(c, "/admin/content")
	}
}

// Articles lists the knowledge base with plain-text excerpts.
func Articles(svc *content.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.Summaries(c.Request.Context())
		if err != nil {
			logger(c).Error().Err(err).Msg("list articles")
		}
		render(c, http.StatusOK, "contents.tmpl", gin.H{
			"title":    "Artículos de Conocimiento",
			"articles": list,
		})
	}
}

// Article renders one page's stored markup as is.
func Article(svc *content.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Article(c.Request.Context(), c.Param("slug"))
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				logger(c).Error().Err(err).Msg("get article")
			}
			render(c, http.StatusNotFound, "not_found.tmpl", gin.H{"title": "Artículo no encontrado"})
			return
		}
		render(c, http.StatusOK, "content_detail.tmpl", gin.H{
			"title": p.TitleText(),
			"page":  p,
		})
	}
}

func ListArticles(svc *content.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.Summaries(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"contents": list})
	}
}

func GetArticle(svc *content.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Article(c.Request.Context(), c.Param("slug"))
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusOK, gin.H{"content": p})
		}
	}
}
