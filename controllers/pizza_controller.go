package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/resp"
	"github.com/cykj40/padre-ginos-fem-sub000/services"
)

type PizzaController struct{ Svc *services.CatalogService }

func NewPizzaController(s *services.CatalogService) *PizzaController {
	return &PizzaController{Svc: s}
}

// GET /api/pizzas
func (h *PizzaController) List(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, products)
}

// GET /api/pizza-of-the-day
func (h *PizzaController) OfTheDay(c *gin.Context) {
	product, err := h.Svc.ProductOfTheDay(c.Request.Context(), time.Now())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, product)
}
