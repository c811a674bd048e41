package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cykj40/padre-ginos-fem-sub000/pkg/resp"
	"github.com/cykj40/padre-ginos-fem-sub000/repository"
	"github.com/cykj40/padre-ginos-fem-sub000/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /api/cart?cartId=
// Without a cartId a fresh identifier is minted and returned with the empty
// cart, for clients that have not stored one yet.
func (h *CartController) Get(c *gin.Context) {
	cartID := c.Query("cartId")
	if cartID == "" {
		cartID = uuid.NewString()
	}
	cart, err := h.Svc.GetCart(c.Request.Context(), cartID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart/add (also POST /api/cart)
func (h *CartController) Add(c *gin.Context) {
	var req struct {
		CartID string `json:"cartId"`
		services.ItemSpec
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.AddItem(c.Request.Context(), cartID(c, req.CartID), req.ItemSpec)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /api/cart/update (also PUT /api/cart, POST /api/cart/update)
func (h *CartController) Update(c *gin.Context) {
	var req struct {
		CartID string `json:"cartId"`
		ItemID uint   `json:"itemId"`
		repository.ItemPatch
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id, ok := itemID(c, req.ItemID)
	if !ok {
		return
	}
	cart, err := h.Svc.UpdateItem(c.Request.Context(), cartID(c, req.CartID), id, req.ItemPatch)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/remove (also POST /api/cart/remove)
func (h *CartController) Remove(c *gin.Context) {
	var req struct {
		CartID string `json:"cartId"`
		ItemID uint   `json:"itemId"`
	}
	// Body is optional for DELETE; the ids may arrive as query params.
	_ = c.ShouldBindJSON(&req)
	id, ok := itemID(c, req.ItemID)
	if !ok {
		return
	}
	cart, err := h.Svc.RemoveItem(c.Request.Context(), cartID(c, req.CartID), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/clear (also POST /api/cart/clear)
func (h *CartController) Clear(c *gin.Context) {
	var req struct {
		CartID string `json:"cartId"`
	}
	_ = c.ShouldBindJSON(&req)
	cart, err := h.Svc.ClearCart(c.Request.Context(), cartID(c, req.CartID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart?cartId=[&itemId=] removes one item when itemId is
// given, otherwise clears the whole cart.
func (h *CartController) Delete(c *gin.Context) {
	if c.Query("itemId") != "" {
		h.Remove(c)
		return
	}
	h.Clear(c)
}

func cartID(c *gin.Context, fromBody string) string {
	if q := c.Query("cartId"); q != "" {
		return q
	}
	return fromBody
}

func itemID(c *gin.Context, fromBody uint) (uint, bool) {
	if q := c.Query("itemId"); q != "" {
		n, err := strconv.ParseUint(q, 10, 32)
		if err != nil {
			resp.BadRequest(c, "itemId must be a number")
			return 0, false
		}
		return uint(n), true
	}
	if fromBody == 0 {
		resp.BadRequest(c, "itemId is required")
		return 0, false
	}
	return fromBody, true
}
