package handlers

import (
	"net/http"

	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
)

type signUpRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Param        body  body  signUpRequest  true  "Credentials"
// @Success      201
// @Failure      422  {string}  string
// @Failure      409  {string}  string
// @Failure      500  {string}  string
// @Router       /sign-up [post]
func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusUnprocessableEntity, msgInvalidBody)
		return
	}

	err := h.services.SignUp(c.Request.Context(), service.SignUpInput{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		RepeatPassword: req.RepeatPassword,
	})
	if err != nil {
		h.writeServiceError(c, err, "sign_up_failed")
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary      Sign in and open a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  signInRequest  true  "Credentials"
// @Success      200  {object}  service.SignInResult
// @Failure      422  {string}  string
// @Failure      404  {string}  string
// @Failure      500  {string}  string
// @Router       /sign-in [post]
func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusUnprocessableEntity, msgInvalidBody)
		return
	}

	res, err := h.services.SignIn(c.Request.Context(), service.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.writeServiceError(c, err, "sign_in_failed")
		return
	}

	c.JSON(http.StatusOK, res)
}
