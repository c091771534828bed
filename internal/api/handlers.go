package api

import (
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todayproje/server/config"
	"todayproje/server/internal/database"
	"todayproje/server/internal/i18n"
	"todayproje/server/internal/ratelimit"
	"todayproje/server/internal/session"
	"todayproje/server/internal/uploads"
)

// Listings shown per browse page.
const perPage = 8

// Listings shown in each home page strip.
const homeLimit = 5

const flashCookie = "todayproje_flash"

type Handler struct {
	db           *database.Database
	logger       *logrus.Logger
	uploads      *uploads.Manager
	sessions     *session.Codec
	loginLimiter *ratelimit.Limiter
	cfg          *config.Config
}

func NewHandler(db *database.Database, cfg *config.Config, sessions *session.Codec, uploadManager *uploads.Manager, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		db:           db,
		logger:       logger,
		uploads:      uploadManager,
		sessions:     sessions,
		loginLimiter: ratelimit.NewLimiter(cfg.LoginAttempts, loginWindow(cfg)),
		cfg:          cfg,
	}
}

// session returns the visitor state decoded from the request cookie.
func (h *Handler) session(c *gin.Context) session.Session {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		return session.Default()
	}
	return h.sessions.Decode(token)
}

// setSession issues a fresh signed token and stores it on the response.
func (h *Handler) setSession(c *gin.Context, s session.Session) {
	token, err := h.sessions.Issue(s)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign session token")
		return
	}
	maxAge := int(h.sessions.TTL().Seconds())
	c.SetCookie(session.CookieName, token, maxAge, "/", "", false, true)
}

// flash queues a one-shot notice (category: success, error, info) for the
// next rendered page.
func (h *Handler) flash(c *gin.Context, category, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(category+"|"+message), 60, "/", "", false, true)
}

// takeFlash reads and clears the pending notice, if any.
func (h *Handler) takeFlash(c *gin.Context) (category, message string, ok bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil {
		return "", "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// render wraps c.HTML, injecting the visitor language, translator and any
// pending flash notice alongside the handler's own data.
func (h *Handler) render(c *gin.Context, status int, template string, data gin.H) {
	s := h.session(c)
	if data == nil {
		data = gin.H{}
	}
	data["current_language"] = s.Language
	data["t"] = i18n.Translator(s.Language)
	if category, message, ok := h.takeFlash(c); ok {
		data["flash_category"] = category
		data["flash_message"] = message
	}
	c.HTML(status, template, data)
}

// Home renders the landing page with the five most viewed and five newest
// active listings.
func (h *Handler) Home(c *gin.Context) {
	popular, err := h.db.TopViewed(homeLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get popular listings")
	}
	newest, err := h.db.Newest(homeLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get newest listings")
	}

	h.render(c, http.StatusOK, "index.html", gin.H{
		"popular_ads":     popular,
		"recommended_ads": newest,
	})
}

func (h *Handler) About(c *gin.Context) {
	h.render(c, http.StatusOK, "about.html", nil)
}

func (h *Handler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, "iletisim.html", nil)
}

// SetLanguage stores the chosen locale in the session and sends the visitor
// back where they came from. Unknown codes leave the current choice alone.
func (h *Handler) SetLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if i18n.Supported(lang) {
		s := h.session(c)
		s.Language = lang
		h.setSession(c, s)
	}

	target := c.Request.Referer()
	if target == "" {
		target = "/"
	}
	c.Redirect(http.StatusFound, target)
}

// Browse renders the paginated listing catalog, optionally narrowed by a
// contract-number search.
func (h *Handler) Browse(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	search := c.Query("search")
	priceType := c.DefaultQuery("price_type", "satilik")

	result, err := h.db.Browse(page, perPage, search)
	if err != nil {
		h.logger.WithError(err).Error("Failed to browse listings")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	h.render(c, http.StatusOK, "ilanlar.html", gin.H{
		"advertisements": result.Listings,
		"page":           result.Number,
		"total_pages":    result.TotalPages,
		"total_count":    result.TotalCount,
		"has_prev":       result.HasPrev,
		"has_next":       result.HasNext,
		"search_query":   search,
		"price_type":     priceType,
	})
}

// Detail renders a single active listing and counts the view. Missing or
// hidden listings bounce back to the catalog with a notice.
func (h *Handler) Detail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.notFound(c)
		return
	}
	priceType := c.DefaultQuery("price_type", "satilik")

	listing, err := h.db.GetActive(id)
	if err == database.ErrNotFound {
		h.notFound(c)
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to get listing")
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	if err := h.db.IncrementViews(id); err != nil {
		// The page still renders; only the counter is affected.
		h.logger.WithError(err).WithField("id", id).Error("Failed to increment view count")
	}

	h.render(c, http.StatusOK, "ilan_detay.html", gin.H{
		"advertisement": listing,
		"price_type":    priceType,
	})
}

func (h *Handler) notFound(c *gin.Context) {
	s := h.session(c)
	h.flash(c, "error", i18n.Resolve(s.Language, "listing_not_found"))
	c.Redirect(http.StatusFound, "/ilanlar")
}

func loginWindow(cfg *config.Config) time.Duration {
	return time.Duration(cfg.LoginWindowMinute) * time.Minute
}
