package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/resp"
	"github.com/cykj40/padre-ginos-fem-sub000/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// GET /api/orders
func (h *OrderController) List(c *gin.Context) {
	orders, err := h.Svc.ListOrders(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/order?id=
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "id must be a number")
		return
	}
	detail, err := h.Svc.OrderDetail(c.Request.Context(), uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// POST /api/order
func (h *OrderController) Create(c *gin.Context) {
	var req struct {
		Cart []services.OrderLineIn `json:"cart"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	orderID, err := h.Svc.PlaceOrder(c.Request.Context(), req.Cart)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orderId": orderID})
}
