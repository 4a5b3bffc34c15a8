package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hts_portal/internal/auth"
	"hts_portal/internal/models"
	"hts_portal/internal/store"
)

type userDraft struct {
	Username  string
	Password  string
	Role      models.Role
	CompanyID *int64
}

func userDraftFromForm(c *gin.Context) userDraft {
	d := userDraft{
		Username: strings.TrimSpace(c.PostForm("username")),
		Password: c.PostForm("password"),
		Role:     models.ParseRole(c.PostForm("role")),
	}
	if raw := c.PostForm("empresa_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			d.CompanyID = &id
		}
	}
	return d
}

// UserAdmin serves the users screen.
type UserAdmin struct {
	Users     *store.Users
	Companies *store.Companies
	Passwords auth.PasswordScheme
	Audit     *Auditor
}

func (h *UserAdmin) render(c *gin.Context, status int, data gin.H) {
	ctx := c.Request.Context()
	users, err := h.Users.List(ctx)
	if err != nil {
		logger(c).Error().Err(err).Msg("list users")
	}
	companies, err := h.Companies.ListByName(ctx)
	if err != nil {
		logger(c).Error().Err(err).Msg("list companies")
	}

	data["title"] = "Usuarios"
	data["users"] = users
	data["companies"] = companies
	if _, ok := data["draft"]; !ok {
		data["draft"] = userDraft{Role: models.RoleUser}
	}
	render(c, status, "admin_users.tmpl", data)
}

// Page lists users; ?edit=<id> loads one into the form. The stored password
// is never sent back.
func (h *UserAdmin) Page() gin.HandlerFunc {
	return func(c *gin.Context) {
		data := gin.H{}
		if id := queryID(c, "edit"); id > 0 {
			u, err := h.Users.Get(c.Request.Context(), id)
			if err == nil {
				data["editID"] = u.ID
				data["draft"] = userDraft{Username: u.Username, Role: u.Role, CompanyID: u.CompanyID}
			}
		}
		h.render(c, http.StatusOK, data)
	}
}

func (h *UserAdmin) Create() gin.HandlerFunc {
	return func(c *gin.Context) {
		d := userDraftFromForm(c)
		fail := func(msg string) {
			d.Password = ""
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": msg, "draft": d})
		}

		if d.Username == "" {
			fail("Username is required")
			return
		}
		if d.Password == "" {
			fail("Password is required for new users")
			return
		}
		stored, err := h.Passwords.Hash(d.Password)
		if err != nil {
			fail("Error creating user: " + err.Error())
			return
		}

		u := models.User{Username: d.Username, Password: stored, Role: d.Role, CompanyID: d.CompanyID}
		if err := h.Users.Create(c.Request.Context(), &u); err != nil {
			fail("Error creating user: " + backendMessage(err))
			return
		}

		h.Audit.Record(c, "user.create", "user", u.ID, gin.H{"username": u.Username, "role": u.Role})
		seeOther(c, "/admin/users")
	}
}

// Update saves the edit form. An empty password leaves the stored one as is.
func (h *UserAdmin) Update() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			seeOther(c, "/admin/users")
			return
		}
		d := userDraftFromForm(c)
		fail := func(msg string) {
			d.Password = ""
			h.render(c, http.StatusUnprocessableEntity, gin.H{"alert": msg, "draft": d, "editID": id})
		}

		if d.Username == "" {
			fail("Username is required")
			return
		}
		patch := store.UserPatch{Username: d.Username, Role: d.Role, CompanyID: d.CompanyID}
		if d.Password != "" {
			stored, err := h.Passwords.Hash(d.Password)
			if err != nil {
				fail("Error updating user: " + err.Error())
				return
			}
			patch.Password = &stored
		}

		if err := h.Users.Update(c.Request.Context(), id, patch); err != nil {
			fail("Error updating user: " + backendMessage(err))
			return
		}

		h.Audit.Record(c, "user.update", "user", id, gin.H{
			"username":         d.Username,
			"role":             d.Role,
			"password_changed": patch.Password != nil,
		})
		seeOther(c, "/admin/users")
	}
}

func (h *UserAdmin) Delete() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c)
		if !ok {
			seeOther(c, "/admin/users")
			return
		}
		if !confirmed(c) {
			renderConfirm(c, "¿Seguro que quieres eliminar este usuario?", "/admin/users")
			return
		}

		if err := h.Users.Delete(c.Request.Context(), id); err != nil {
			logger(c).Warn().Err(err).Int64("user_id", id).Msg("delete user")
			h.render(c, http.StatusOK, gin.H{"warning": "Error deleting user"})
			return
		}

		h.Audit.Record(c, "user.delete", "user", id, nil)
		seeOther(c, "/admin/users")
	}
}
