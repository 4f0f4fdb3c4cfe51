package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/restaurant-api/internal/application"
	"github.com/oksasatya/restaurant-api/internal/application/dto"
	"github.com/oksasatya/restaurant-api/internal/interface/middleware"
	"github.com/oksasatya/restaurant-api/pkg/response"
)

const maxLogoBytes = 2 << 20

type RestaurantHandler struct {
	Svc    *application.RestaurantService
	Logger *logrus.Logger
}

func NewRestaurantHandler(svc *application.RestaurantService, logger *logrus.Logger) *RestaurantHandler {
	return &RestaurantHandler{Svc: svc, Logger: logger}
}

func (h *RestaurantHandler) List(c *gin.Context) {
	var q dto.RestaurantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	page, err := h.Svc.List(c.Request.Context(), q)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, page, "restaurants", nil))
}

func (h *RestaurantHandler) Search(c *gin.Context) {
	q := dto.RestaurantSearchQuery{Size: 10}
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)}))
}

func (h *RestaurantHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	r, err := h.Svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, r, "restaurant", nil))
}

func (h *RestaurantHandler) Create(c *gin.Context) {
	var req dto.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/restaurant/%d", id))
	response.JSON(c, response.Success(c, http.StatusCreated, gin.H{"id": id}, "restaurant created", nil))
}

func (h *RestaurantHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), id, req); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success[any](c, http.StatusOK, nil, "restaurant updated", nil))
}

func (h *RestaurantHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), id); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RestaurantHandler) UploadLogo(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"file": "is required"}))
		return
	}
	if fh.Size > maxLogoBytes {
		response.JSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", gin.H{"file": "must be at most 2MB"}))
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	defer func() { _ = f.Close() }()

	url, err := h.Svc.UploadLogo(c.Request.Context(), middleware.PrincipalFrom(c), id, fh.Filename, fh.Header.Get("Content-Type"), f)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, gin.H{"logoUrl": url}, "logo uploaded", nil))
}
