package api

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"todayproje/server/internal/database"
	"todayproje/server/internal/i18n"
	"todayproje/server/internal/models"
	"todayproje/server/internal/pricing"
)

// RequireAdmin guards admin routes: anyone without the admin flag in their
// session is sent to the login page.
func (h *Handler) RequireAdmin(c *gin.Context) {
	if !h.session(c).Admin {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_login.html", nil)
}

// Login checks the configured credential pair, rate limited per client IP.
func (h *Handler) Login(c *gin.Context) {
	s := h.session(c)

	if !h.loginLimiter.Allow(c.ClientIP()) {
		h.logger.WithField("ip", c.ClientIP()).Warn("Login rate limit exceeded")
		h.flash(c, "error", i18n.Resolve(s.Language, "login_failed"))
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	username := c.PostForm("username")
	password := c.PostForm("password")

	if !h.checkCredentials(username, password) {
		h.flash(c, "error", i18n.Resolve(s.Language, "login_failed"))
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	h.loginLimiter.Reset(c.ClientIP())
	s.Admin = true
	h.setSession(c, s)
	h.flash(c, "success", i18n.Resolve(s.Language, "login_success"))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUsername)) == 1

	var passOK bool
	if strings.HasPrefix(h.cfg.AdminPassword, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPassword), []byte(password)) == nil
	} else {
		// Plain-text fallback for development environments.
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	}

	return userOK && passOK
}

func (h *Handler) Logout(c *gin.Context) {
	s := h.session(c)
	s.Admin = false
	h.setSession(c, s)
	h.flash(c, "info", i18n.Resolve(s.Language, "logged_out"))
	c.Redirect(http.StatusFound, "/admin/login")
}

func (h *Handler) Dashboard(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_dashboard.html", nil)
}

// APIListings returns every listing, active or hidden, for the admin table.
func (h *Handler) APIListings(c *gin.Context) {
	listings, err := h.db.All()
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get listings"})
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.JSON(http.StatusOK, gin.H{"data": listings})
}

// ToggleStatus flips a listing between active and hidden.
func (h *Handler) ToggleStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Advertisement not found"})
		return
	}

	newStatus, err := h.db.ToggleStatus(id)
	if err == database.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Advertisement not found"})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to toggle listing status")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to toggle status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "new_status": newStatus})
}

func (h *Handler) AddForm(c *gin.Context) {
	h.render(c, http.StatusOK, "admin_add.html", nil)
}

// Add creates a listing from the submitted form. Each image slot prefers a
// fresh upload, then an explicitly supplied pre-seeded path, then stays
// empty.
func (h *Handler) Add(c *gin.Context) {
	s := h.session(c)

	listing, ok := h.listingFromForm(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/advertisement/add")
		return
	}

	images := [3]string{}
	for i := range images {
		field := "img_" + strconv.Itoa(i+1)
		if fh, err := c.FormFile(field); err == nil && fh.Filename != "" {
			path, err := h.uploads.Save(fh)
			if err != nil {
				h.logger.WithError(err).Warn("Rejected image upload")
				h.flash(c, "error", err.Error())
				c.Redirect(http.StatusFound, "/admin/advertisement/add")
				return
			}
			images[i] = path
		} else if premade := c.PostForm(field + "_path"); premade != "" {
			images[i] = premade
		}
	}
	listing.Image1, listing.Image2, listing.Image3 = images[0], images[1], images[2]

	if _, err := h.db.Insert(listing); err != nil {
		h.logger.WithError(err).Error("Failed to insert listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	h.flash(c, "success", i18n.Resolve(s.Language, "listing_added"))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) EditForm(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.adminNotFound(c)
		return
	}

	listing, err := h.db.Get(id)
	if err == database.ErrNotFound {
		h.adminNotFound(c)
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	h.render(c, http.StatusOK, "admin_edit.html", gin.H{"advertisement": listing})
}

// Edit updates a listing. Image slots keep their current path unless a new
// file was uploaded, in which case the superseded managed file is removed.
func (h *Handler) Edit(c *gin.Context) {
	s := h.session(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.adminNotFound(c)
		return
	}

	current, err := h.db.Get(id)
	if err == database.ErrNotFound {
		h.adminNotFound(c)
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	listing, ok := h.listingFromForm(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/advertisement/"+strconv.FormatInt(id, 10)+"/edit")
		return
	}

	images := [3]string{current.Image1, current.Image2, current.Image3}
	for i := range images {
		field := "img_" + strconv.Itoa(i+1)
		fh, err := c.FormFile(field)
		if err != nil || fh.Filename == "" {
			continue
		}
		path, err := h.uploads.Save(fh)
		if err != nil {
			h.logger.WithError(err).Warn("Rejected image upload")
			h.flash(c, "error", err.Error())
			c.Redirect(http.StatusFound, "/admin/advertisement/"+strconv.FormatInt(id, 10)+"/edit")
			return
		}
		h.uploads.Remove(images[i])
		images[i] = path
	}
	listing.Image1, listing.Image2, listing.Image3 = images[0], images[1], images[2]

	if err := h.db.Update(id, listing); err != nil {
		if err == database.ErrNotFound {
			h.adminNotFound(c)
			return
		}
		h.logger.WithError(err).Error("Failed to update listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	h.flash(c, "success", i18n.Resolve(s.Language, "listing_updated"))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// Delete removes a listing along with any image files it owns under the
// managed upload directory. File removal is best effort.
func (h *Handler) Delete(c *gin.Context) {
	s := h.session(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.adminNotFound(c)
		return
	}

	images, err := h.db.Delete(id)
	if err == database.ErrNotFound {
		h.adminNotFound(c)
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to delete listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	for _, r := range h.uploads.Remove(images...) {
		if r.Err != nil {
			h.logger.WithError(r.Err).WithField("path", r.Path).Warn("Leftover image file after delete")
		}
	}

	h.flash(c, "success", i18n.Resolve(s.Language, "listing_deleted"))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (h *Handler) adminNotFound(c *gin.Context) {
	s := h.session(c)
	h.flash(c, "error", i18n.Resolve(s.Language, "listing_not_found"))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

// listingFromForm builds a listing from the shared add/edit form fields.
// A missing title rejects the submission with a flash notice.
func (h *Handler) listingFromForm(c *gin.Context) (models.Listing, bool) {
	listing := models.Listing{
		Title:         strings.TrimSpace(c.PostForm("title")),
		Type:          c.PostForm("advertisement_type"),
		Address:       c.PostForm("adres"),
		IsGold:        c.PostForm("is_gold") != "",
		SalePrice:     pricing.Parse(c.PostForm("sale_price")),
		RentPrice:     pricing.Parse(c.PostForm("rent_price")),
		ContractID:    c.PostForm("contract_id"),
		Description:   c.PostForm("description"),
		DescriptionEN: c.PostForm("description_en"),
		DescriptionAR: c.PostForm("description_ar"),
		Deed:          c.PostForm("deed"),
		BedType:       c.PostForm("bed_type"),
	}

	if listing.Title == "" {
		h.flash(c, "error", "Title is required")
		return listing, false
	}
	return listing, true
}
