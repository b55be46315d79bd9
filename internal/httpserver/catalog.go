package httpserver

import (
	"log"
	"net/http"

	"shopcart/internal/domain"
	catalogsvc "shopcart/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func listProductsHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func createProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		product, err := svc.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

func getProductHandler(logger *log.Logger, svc catalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
