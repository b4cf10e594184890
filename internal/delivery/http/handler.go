package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/usecase"
	"github.com/gin-gonic/gin"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	browser *usecase.Browser
}

// NewHandler creates a new HTTP handler. browser may be nil, in which case
// catalog endpoints answer 503.
func NewHandler(browser *usecase.Browser) *Handler {
	return &Handler{browser: browser}
}

// viewRequest is the body of PUT /view
type viewRequest struct {
	SearchText string `json:"searchText"`
	EcoOnly    bool   `json:"ecoOnly"`
	Sort       string `json:"sort"`
	Page       int    `json:"page"`
}

// pageResponse wraps a page with the favorites and compare counters shown
// next to the card list
type pageResponse struct {
	domain.Page
	FavoriteCount int `json:"favoriteCount"`
	CompareCount  int `json:"compareCount"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	body := gin.H{
		"status":  "healthy",
		"service": "chemaware-catalog",
		"version": "1.0.0",
	}
	if h.browser != nil {
		body["products"] = h.browser.Catalog().Len()
	}
	c.JSON(http.StatusOK, body)
}

// ListProducts runs the filter/sort/paginate pipeline from query parameters
// without touching the shared view state
func (h *Handler) ListProducts(c *gin.Context) {
	if !h.ready(c) {
		return
	}

	sortKey, err := domain.ParseSortKey(c.Query("sort"))
	if err != nil {
		respondError(c, err)
		return
	}
	page := 1
	if raw := c.Query("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			respondError(c, domain.ErrInvalidRequest)
			return
		}
	}
	ecoOnly := false
	if raw := c.Query("eco"); raw != "" {
		if ecoOnly, err = strconv.ParseBool(raw); err != nil {
			respondError(c, domain.ErrInvalidRequest)
			return
		}
	}

	state := domain.ViewState{
		SearchText: c.Query("q"),
		EcoOnly:    ecoOnly,
		Sort:       sortKey,
		Page:       page,
	}
	c.JSON(http.StatusOK, h.wrap(usecase.ApplyView(h.browser.Catalog(), state)))
}

// GetProduct returns the details view of one product
func (h *Handler) GetProduct(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	detail, err := h.browser.Details(c.Param("identifier"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// GetView returns the page for the shared view state
func (h *Handler) GetView(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state": h.browser.State(),
		"page":  h.wrap(h.browser.View()),
	})
}

// UpdateView replaces the shared view state
func (h *Handler) UpdateView(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.ErrInvalidRequest)
		return
	}
	sortKey, err := domain.ParseSortKey(req.Sort)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Page == 0 {
		req.Page = 1
	}

	page := h.browser.SetState(domain.ViewState{
		SearchText: req.SearchText,
		EcoOnly:    req.EcoOnly,
		Sort:       sortKey,
		Page:       req.Page,
	})
	c.JSON(http.StatusOK, gin.H{
		"state": h.browser.State(),
		"page":  h.wrap(page),
	})
}

// ListFavorites returns favorite products in catalog order
func (h *Handler) ListFavorites(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	favorites := h.browser.Favorites()
	if favorites == nil {
		favorites = []domain.Product{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items": favorites,
		"count": h.browser.FavoriteCount(),
	})
}

// ToggleFavorite flips one product's favorite state
func (h *Handler) ToggleFavorite(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	identifier := c.Param("identifier")
	on, err := h.browser.ToggleFavorite(c.Request.Context(), identifier)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"identifier": identifier,
		"favorite":   on,
		"count":      h.browser.FavoriteCount(),
	})
}

// RemoveFavorite drops one product from the favorites
func (h *Handler) RemoveFavorite(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.browser.RemoveFavorite(c.Request.Context(), c.Param("identifier")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCompare returns the compare tray
func (h *Handler) GetCompare(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": h.browser.CompareSelection(),
		"max":   usecase.MaxCompare,
	})
}

// AddCompare adds one product to the compare tray
func (h *Handler) AddCompare(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	if err := h.browser.AddCompare(c.Param("identifier")); err != nil {
		respondError(c, err)
		return
	}
	h.GetCompare(c)
}

// RemoveCompare drops one product from the compare tray
func (h *Handler) RemoveCompare(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	h.browser.RemoveCompare(c.Param("identifier"))
	h.GetCompare(c)
}

// ClearCompare empties the compare tray
func (h *Handler) ClearCompare(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	h.browser.ClearCompare()
	h.GetCompare(c)
}

// ComparePair returns the two products for the side-by-side view
func (h *Handler) ComparePair(c *gin.Context) {
	if !h.ready(c) {
		return
	}
	a, b, err := h.browser.ComparePair()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"left":  a,
		"right": b,
	})
}

func (h *Handler) ready(c *gin.Context) bool {
	if h.browser == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "catalog not configured",
		})
		return false
	}
	return true
}

func (h *Handler) wrap(page domain.Page) pageResponse {
	if page.Items == nil {
		page.Items = []domain.Product{}
	}
	return pageResponse{
		Page:          page,
		FavoriteCount: h.browser.FavoriteCount(),
		CompareCount:  len(h.browser.CompareSelection()),
	}
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCompareLimitExceeded):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrInsufficientSelection):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}
