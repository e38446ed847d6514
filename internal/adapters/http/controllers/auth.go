package controllers

import (
	"net/http"

	"github.com/JCH97/Catalog-APIs/internal/adapters/http/handlers"
	"github.com/JCH97/Catalog-APIs/internal/core/domain"
	"github.com/JCH97/Catalog-APIs/internal/core/dto"
	"github.com/JCH97/Catalog-APIs/internal/core/service"
	"github.com/JCH97/Catalog-APIs/internal/core/serviceerrors"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// SignIn godoc
// @Summary     Sign in
// @Description Issues a role-bearing token for EDITOR or PROVIDER
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body     dto.SignInRequest true "Actor role"
// @Success     200     {object} dto.SignInResponse
// @Failure     400     {object} handlers.ErrorResponse
// @Router      /api/v1/auth/signin [post]
func (ac *AuthController) SignIn(c *gin.Context) {
	var request dto.SignInRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		handlers.HandleError(c, serviceerrors.NewValidationError(err.Error()))
		return
	}

	res := ac.authService.SignIn(c.Request.Context(), domain.Role(request.Role))
	respond(c, http.StatusOK, res, func(token string) any { return dto.SignInResponse{Token: token} })
}
