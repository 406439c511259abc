package handler

import (
	"errors"
	"net/http"

	"bizlist/internal/repository"
	"bizlist/internal/services"
	"bizlist/internal/transport/httpdto"
	bizlist_errors "bizlist/pkg/errors"
	"bizlist/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	service *services.ListingService
	log     *logger.Logger
}

func NewListingHandler(service *services.ListingService, log *logger.Logger) *ListingHandler {
	return &ListingHandler{service: service, log: log}
}

func (h *ListingHandler) Create(c *gin.Context) {
	var req httpdto.ListingCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	rec, err := h.service.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		// storage detail stays server-side
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ListingHandler) Search(c *gin.Context) {
	var q httpdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	filter := repository.ListingFilter{
		Keyword:     q.Keyword,
		MinPrice:    q.MinPrice,
		MaxPrice:    q.MaxPrice,
		MinTurnover: q.MinTurnover,
		MaxTurnover: q.MaxTurnover,
		Location:    q.Location,
		Industry:    q.Industry,
	}

	listings, err := h.service.Search(c.Request.Context(), filter, q.Skip, q.Limit)
	if err != nil {
		h.log.Errorf("search businesses: %s", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("An error occurred while searching businesses"))
		return
	}

	items := make([]httpdto.ListingItemView, 0, len(listings))
	for _, l := range listings {
		items = append(items, httpdto.NewListingItemView(l))
	}
	c.JSON(http.StatusOK, items)
}

// ListItems serves the paginated item-view projection.
func (h *ListingHandler) ListItems(c *gin.Context) {
	var q httpdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	listings, err := h.service.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.log.Errorf("list business items: %s", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
		return
	}

	items := make([]httpdto.ListingItemView, 0, len(listings))
	for _, l := range listings {
		items = append(items, httpdto.NewListingItemView(l))
	}
	c.JSON(http.StatusOK, items)
}

// ListFull serves paginated full records.
func (h *ListingHandler) ListFull(c *gin.Context) {
	var q httpdto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	listings, err := h.service.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		h.log.Errorf("list businesses: %s", err)
		c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
		return
	}
	c.JSON(http.StatusOK, listings)
}

func (h *ListingHandler) GetByRefID(c *gin.Context) {
	rec, err := h.service.GetByRefID(c.Request.Context(), c.Param("ref_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ListingHandler) GetInfo(c *gin.Context) {
	rec, err := h.service.GetByRefID(c.Request.Context(), c.Param("ref_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpdto.NewListingInfoView(rec))
}

func (h *ListingHandler) Update(c *gin.Context) {
	var req httpdto.ListingUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, httpdto.NewValidationError(err))
		return
	}

	rec, err := h.service.Update(c.Request.Context(), c.Param("ref_id"), req.Changes())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ListingHandler) Delete(c *gin.Context) {
	rec, err := h.service.Delete(c.Request.Context(), c.Param("ref_id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *ListingHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, bizlist_errors.ErrNotFound) {
		c.JSON(http.StatusNotFound, httpdto.NewDetailError("Listing not found"))
		return
	}
	h.log.Errorf("listing request failed: %s", err)
	c.JSON(http.StatusInternalServerError, httpdto.NewDetailError("Internal server error"))
}
