package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

// CompanyDeleteWarning is shown when a delete fails, typically because users
// still reference the company.
const CompanyDeleteWarning = "Error al eliminar. Puede que haya usuarios vinculados a esta empresa."

// CompanyAdmin serves the companies screen.
type CompanyAdmin struct {
	Companies *store.Companies
	Audit     *Auditor
}

func (h *CompanyAdmin) render(c *gin.Context, status int, data gin.H) {
	companies, err := h.Companies.List(c.Request.Context())
	if err != nil {
		logger(c).Error().Err(err).Msg("list companies")
	}
	data["title"] = "Empresas"
	data["companies"] = companies
	if _, ok := data["draft"]; !ok {
		data["draft"] = models.Company{}
	}
	render(c, status, "admin_companies.tmpl", data)
}

func (h *CompanyAdmin) Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{}
		if id := queryID(c, "edit"); id > 0 {
			if co, err := h.Companies.Get(c.Request.Context(), id); err == nil {
				data["editID"] = co.ID
				data["draft"] = co
			}
		}
		h.render(c, http.StatusOK, data)
	}
}

func (h *CompanyAdmin) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		nombre := strings.TrimSpace(c.PostForm("nombre"))
		draft := models.Company{Nombre: nombre}
		if nombre == "" {
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": "Nombre is required", "draft": draft})
			return
		}

		co, err := h.Companies.Create(c.Request.Context(), nombre)
		if err != nil {
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": "Error al guardar: " + backendMessage(err), "draft": draft})
			return
		}

		h.Audit.Record(c, "company.create", "company", co.ID, gin.H{"nombre": nombre})
		seeOther(c, "/admin/companies")
	}
}

func (h *CompanyAdmin) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			seeOther(c, "/admin/companies")
			return
		}
		nombre := strings.TrimSpace(c.PostForm("nombre"))
		draft := models.Company{ID: id, Nombre: nombre}
		if nombre == "" {
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": "Nombre is required", "draft": draft, "editID": id})
			return
		}

		if err := h.Companies.Update(c.Request.Context(), id, nombre); err != nil {
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": "Error al guardar: " + backendMessage(err), "draft": draft, "editID": id})
			return
		}

		h.Audit.Record(c, "company.update", "company", id, gin.H{"nombre": nombre})
		seeOther(c, "/admin/companies")
	}
}

// Delete never cascades: a company still referenced by users stays, and the
// screen shows CompanyDeleteWarning.
func (h *CompanyAdmin) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			seeOther(c, "/admin/companies")
			return
		}
		if !confirmed(c) {
			renderConfirm(c, "¿Estás seguro de eliminar esta empresa?", "/admin/companies")
			return
		}

		if err := h.Companies.Delete(c.Request.Context(), id); err != nil {
			logger(c).Warn().Err(err).Int64("company_id", id).Msg("delete company")
			h.render(c, http.StatusOK, gin.H{"warning": CompanyDeleteWarning})
			return
		}

		h.Audit.Record(c, "company.delete", "company", id, nil)
		seeOther(c, "/admin/companies")
	}
}
