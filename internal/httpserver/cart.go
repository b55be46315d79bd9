package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func getCartHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		cart, err := svc.Get(c.Request.Context(), customer.ID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func addItemHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		var in addItemRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		cart, err := svc.AddItem(c.Request.Context(), customer.ID, in.ItemID, in.Quantity)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func setQuantityHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		var in setQuantityRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		cart, err := svc.SetQuantity(c.Request.Context(), customer.ID, c.Param("itemId"), in.Quantity)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

func removeItemHandler(logger *log.Logger, svc cartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := currentCustomer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
			return
		}
		cart, err := svc.RemoveItem(c.Request.Context(), customer.ID, c.Param("itemId"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}
