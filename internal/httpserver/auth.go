package httpserver

import (
	"log"
	"net/http"
	"strings"

	"shopcart/internal/domain"
	customersvc "shopcart/internal/service/customer"
	"github.com/gin-gonic/gin"
)

const customerKey = "customer"

// authMiddleware resolves the bearer token to a customer and aborts with 401
// otherwise. Handlers downstream only ever see the resolved identity.
func authMiddleware(svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if header == "" || token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
			return
		}
		customer, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "invalid token"})
			return
		}
		c.Set(customerKey, customer)
		c.Next()
	}
}

func currentCustomer(c *gin.Context) (*domain.Customer, bool) {
	v, ok := c.Get(customerKey)
	if !ok {
		return nil, false
	}
	customer, ok := v.(*domain.Customer)
	return customer, ok
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	Token        string          `json:"token"`
	RefreshToken string          `json:"refreshToken"`
	ExpiresIn    int             `json:"expiresIn"`
	Customer     domain.Customer `json:"customer"`
}

func signupHandler(logger *log.Logger, svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in customersvc.SignupInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		customer, err := svc.Signup(c.Request.Context(), in)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, customer)
	}
}

func loginHandler(logger *log.Logger, svc customerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in loginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Error: "email and password required"})
			return
		}
		customer, access, refresh, err := svc.Login(c.Request.Context(), in.Email, in.Password)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, loginResponse{
			Token:        access,
			RefreshToken: refresh,
			ExpiresIn:    svc.AccessTTLSeconds(),
			Customer:     *customer,
		})
	}
}
