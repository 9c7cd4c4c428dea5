package handler

import (
	_ "embed"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/confreg-invoicing/internal/presentation/http/dto/response"
)

//go:embed static/index.html
var landingPage []byte

// LandingHandler serves the conference landing page.
type LandingHandler struct {
	page []byte
}

// NewLandingHandler creates a landing handler. A nil page uses the built-in one.
func NewLandingHandler(page []byte) *LandingHandler {
	if page == nil {
		page = landingPage
	}
	return &LandingHandler{page: page}
}

// Serve writes the landing page regardless of method or path.
func (h *LandingHandler) Serve(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", h.page)
}

// NoRoute serves the landing page for everything outside the API.
func (h *LandingHandler) NoRoute(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.NotFound(c, "Endpoint not found")
		return
	}
	h.Serve(c)
}
