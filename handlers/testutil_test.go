package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Nyagwenchar/bmsafaris/config"
	"github.com/Nyagwenchar/bmsafaris/database"
	"github.com/Nyagwenchar/bmsafaris/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeMailer struct {
	sent []*services.Message
	err  error
}

func (m *fakeMailer) Send(msg *services.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errSMTPDown = errors.New("smtp unreachable")

type testEnv struct {
	db     *gorm.DB
	mailer *fakeMailer
	router *gin.Engine
	cfg    *config.Config
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		SecretKey:        "test-secret-key",
		AdminEmail:       "info@mbtravels.com",
		DefaultFromEmail: "no-reply@mbtravels.com",
	}
	mailer := &fakeMailer{}
	notifier := services.NewNotificationService(mailer, cfg)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.LoadHTMLGlob("../templates/*.html")
	r.Use(sessions.Sessions("bmsafaris_session", cookie.NewStore([]byte(cfg.SecretKey))))

	reviewHandler := &ReviewHandler{DB: db, Notifier: notifier, Config: cfg}
	tourHandler := &TourHandler{DB: db}
	bookingHandler := &BookingHandler{DB: db, Notifier: notifier}
	contactHandler := &ContactHandler{Notifier: notifier}
	authHandler := &AuthHandler{DB: db, Config: cfg}

	r.GET("/", reviewHandler.Home)
	r.POST("/", reviewHandler.Home)
	r.GET("/about/", About)
	r.GET("/contact/", contactHandler.Form)
	r.POST("/contact/", contactHandler.Submit)
	r.GET("/tours/", tourHandler.List)
	r.GET("/tours/:slug/", tourHandler.Detail)
	r.GET("/tours/:slug/book/", bookingHandler.Form)
	r.POST("/tours/:slug/book/", bookingHandler.Submit)
	r.POST("/reviews/submit/", reviewHandler.SubmitReview)
	r.GET("/reviews/load-more/", reviewHandler.LoadMore)
	r.POST("/delete-review/:id/", reviewHandler.Delete)
	r.POST("/api/login", authHandler.Login)

	return &testEnv{db: db, mailer: mailer, router: r, cfg: cfg}
}

type reqOption func(*http.Request)

func asXHR() reqOption {
	return func(r *http.Request) {
		r.Header.Set("X-Requested-With", "XMLHttpRequest")
	}
}

func withToken(token string) reqOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) get(path string, opts ...reqOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postForm(path string, form url.Values, opts ...reqOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(path, body string, opts ...reqOption) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}
