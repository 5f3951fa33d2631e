package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/idanaslund/final-project-backend/internal/domain/account"
	"github.com/idanaslund/final-project-backend/internal/dto"
	"github.com/idanaslund/final-project-backend/internal/httperr"
	"github.com/idanaslund/final-project-backend/internal/httpresp"
	accountuc "github.com/idanaslund/final-project-backend/internal/usecase/account"
)

type AuthHandler struct {
	signup *accountuc.Signup
	login  *accountuc.Login
}

func NewAuthHandler(signup *accountuc.Signup, login *accountuc.Login) *AuthHandler {
	return &AuthHandler{signup: signup, login: login}
}

// --------- Requests ---------

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Could not create user")
		return
	}

	user, err := h.signup.Execute(c.Request.Context(), accountuc.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		FullName: req.FullName,
		Phone:    req.Phone,
		Bio:      req.Bio,
	})
	if err != nil {
		httperr.FromError(c, err, "Could not create user")
		return
	}

	httpresp.Created(c, dto.NewSignupDTO(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.FromError(c, account.ErrLoginFailed, "Invalid entry")
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.FromError(c, err, "Invalid entry")
		return
	}

	httpresp.OK(c, dto.NewLoginDTO(user))
}
