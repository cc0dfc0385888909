package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/abalfour/flightbooking/internal/domain"
	"github.com/abalfour/flightbooking/internal/service/account"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service account.AccountUseCase
}

func NewUserHandler(service account.AccountUseCase) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Register(router *gin.Engine) {
	router.POST("/create_user", h.create)
	router.POST("/user_login", h.login)
	router.POST("/user_info", h.info)
}

type loginResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type customerResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

func (h *UserHandler) create(c *gin.Context) {
	input := account.CreateInput{
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Username:  c.PostForm("username"),
		Password:  c.PostForm("password"),
		Email:     c.PostForm("email"),
	}

	_, err := h.service.Create(c.Request.Context(), input)
	switch {
	case err == nil:
		c.String(http.StatusOK, "New user created successfully")
	case errors.Is(err, domain.ErrMissingFields):
		c.String(http.StatusBadRequest, "Unsuccessful: Incorrect input parameters")
	case errors.Is(err, domain.ErrEmailTaken):
		c.String(http.StatusOK, "That email is already registered to an account.")
	case errors.Is(err, domain.ErrUsernameTaken):
		c.String(http.StatusOK, "That username is already taken. Try another one.")
	default:
		c.String(http.StatusInternalServerError, ServerErrorMessage)
	}
}

func (h *UserHandler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	customer, err := h.service.Authenticate(c.Request.Context(), username, password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, loginResponse{
			ID:      customer.ID,
			Message: "Success. You will be logged in shortly.",
		})
	case errors.Is(err, domain.ErrMissingFields):
		c.String(http.StatusBadRequest, clientErrorMessage)
	case errors.Is(err, domain.ErrInvalidCredentials):
		// The front-end pattern-matches on the -1 sentinel.
		c.JSON(http.StatusOK, loginResponse{
			ID:      -1,
			Message: "Those credentials do not match a user in the system.",
		})
	default:
		c.String(http.StatusInternalServerError, ServerErrorMessage)
	}
}

func (h *UserHandler) info(c *gin.Context) {
	raw := c.PostForm("id")
	if raw == "" {
		c.String(http.StatusBadRequest, "That user does not exist in the system")
		return
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "That user does not exist in the system")
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.String(http.StatusInternalServerError, ServerErrorMessage)
		return
	}

	c.JSON(http.StatusOK, customerResponse{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Username:  customer.Username,
	})
}
