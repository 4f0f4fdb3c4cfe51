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

type DishHandler struct {
	Svc    *application.DishService
	Logger *logrus.Logger
}

func NewDishHandler(svc *application.DishService, logger *logrus.Logger) *DishHandler {
	return &DishHandler{Svc: svc, Logger: logger}
}

func (h *DishHandler) Create(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	id, err := h.Svc.Create(c.Request.Context(), middleware.PrincipalFrom(c), rid, req)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/restaurant/%d/dish/%d", rid, id))
	response.JSON(c, response.Success(c, http.StatusCreated, gin.H{"id": id}, "dish created", nil))
}

func (h *DishHandler) List(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	dishes, err := h.Svc.List(c.Request.Context(), rid)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, dishes, "dishes", nil))
}

func (h *DishHandler) Get(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	did, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	d, err := h.Svc.GetByID(c.Request.Context(), rid, did)
	if err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success(c, http.StatusOK, d, "dish", nil))
}

func (h *DishHandler) Update(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	did, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	var req dto.UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Svc.Update(c.Request.Context(), middleware.PrincipalFrom(c), rid, did, req); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	response.JSON(c, response.Success[any](c, http.StatusOK, nil, "dish updated", nil))
}

func (h *DishHandler) Delete(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	did, ok := pathID(c, "dishId")
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), middleware.PrincipalFrom(c), rid, did); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *DishHandler) DeleteAll(c *gin.Context) {
	rid, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.Svc.DeleteAll(c.Request.Context(), middleware.PrincipalFrom(c), rid); err != nil {
		respondError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
