package handler

import (
	"errors"

	"github.com/ecomida/ecomida/net/resp"
	"github.com/ecomida/ecomida/structs"
)

// failureFor maps service errors to HTTP failure responses.
func failureFor(err error) *resp.Exception {
	var ve *structs.ValidationError
	if errors.As(err, &ve) {
		return resp.BadRequest(ve.Message)
	}

	switch {
	case errors.Is(err, structs.ErrEmailAlreadyRegistered):
		return resp.Conflict("Email já cadastrado")
	case errors.Is(err, structs.ErrInvalidCredentials):
		return resp.UnAuthorized("Credenciais inválidas")
	case errors.Is(err, structs.ErrWrongPassword):
		return resp.UnAuthorized("Senha atual incorreta")
	case errors.Is(err, structs.ErrResetTokenInvalid):
		return resp.BadRequest("Token inválido ou expirado")
	case errors.Is(err, structs.ErrResetTokenExpired):
		return resp.BadRequest("Token expirado")
	case errors.Is(err, structs.ErrRecipeNotFound):
		return resp.NotFound("Receita não encontrada")
	case errors.Is(err, structs.ErrUserNotFound):
		return resp.NotFound("Usuário não encontrado")
	default:
		return resp.InternalServer("Erro interno do servidor")
	}
}
