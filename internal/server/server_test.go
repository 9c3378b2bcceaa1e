package server_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/record-manager/internal/config"
	"github.com/tupyy/record-manager/internal/server"
)

var _ = Describe("Server", func() {
	var cfg *config.Configuration

	BeforeEach(func() {
		cfg = config.NewConfigurationWithOptionsAndDefaults()
	})

	It("should mount handlers under /api/v1", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
			router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
		})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(Equal("pong"))
	})

	It("should answer unknown api routes with a json 404", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(w.Body.String()).To(ContainSubstring("route not found"))
	})

	It("should redirect the root to the view", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
		Expect(w.Header().Get("Location")).To(Equal("/api/v1/view"))
	})

	It("should recover from handler panics", func() {
		srv, err := server.NewServer(cfg, func(router *gin.RouterGroup) {
			router.GET("/boom", func(c *gin.Context) { panic("boom") })
		})
		Expect(err).NotTo(HaveOccurred())

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))

		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})

	It("should refuse an unknown mode", func() {
		cfg.Server.ServerMode = "staging"

		_, err := server.NewServer(cfg, func(router *gin.RouterGroup) {})

		Expect(err).To(HaveOccurred())
	})
})
