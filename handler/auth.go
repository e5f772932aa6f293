package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/middleware"
	"github.com/ecomida/ecomida/net/resp"
	"github.com/ecomida/ecomida/service"
)

// AuthHandler handles authentication and profile routes.
type AuthHandler struct {
	auth   *service.AuthService
	logger *logger.Logger
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth *service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register handles POST /cadastro.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	id, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.WithStatusCode(c.Writer, http.StatusCreated, gin.H{
		"mensagem":   "Usuário cadastrado com sucesso!",
		"usuario_id": id,
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	res, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, gin.H{
		"token":    res.Token,
		"usuario":  res.Usuario,
		"mensagem": "Login realizado com sucesso!",
	})
}

// ForgotPassword handles POST /esqueci-senha. The response never
// reveals whether the email is registered.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req service.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	if err := h.auth.RequestPasswordReset(c.Request.Context(), &req); err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, "Se o email existir, um link será enviado")
}

// ResetPassword handles POST /redefinir-senha.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), &req); err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, "Senha redefinida com sucesso!")
}

// GetProfile handles GET /perfil.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		resp.Fail(c.Writer, resp.UnAuthorized("Token não fornecido"))
		return
	}

	resp.Success(c.Writer, gin.H{
		"usuario": gin.H{
			"id":            user.ID.Hex(),
			"nome":          user.Nome,
			"email":         user.Email,
			"data_cadastro": user.DataCadastro,
		},
	})
}

// UpdateProfile handles PUT /perfil.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		resp.Fail(c.Writer, resp.UnAuthorized("Token não fornecido"))
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	if err := h.auth.UpdateProfile(c.Request.Context(), user, &req); err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, "Perfil atualizado com sucesso!")
}

// ChangePassword handles POST /alterar-senha.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		resp.Fail(c.Writer, resp.UnAuthorized("Token não fornecido"))
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("Requisição inválida"))
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user, &req); err != nil {
		resp.Fail(c.Writer, failureFor(err))
		return
	}

	resp.Success(c.Writer, "Senha alterada com sucesso!")
}
