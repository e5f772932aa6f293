package ecode

import (
	"fmt"
	"net/http"
)

// Business error codes. Codes follow the convention: 0 success,
// -100s auth, -400s request, -300s resource, -500s server.
const (
	OK               = 0
	Unauthorized     = -101
	UserInactive     = -106
	RequestErr       = -400
	ParamErr         = -401
	AccessDenied     = -403
	NothingFound     = -404
	MethodNotAllowed = -405
	Conflict         = -409
	ServerErr        = -500
)

var messages = map[int]string{
	OK:               "success",
	Unauthorized:     "não autorizado",
	UserInactive:     "usuário inativo",
	RequestErr:       "requisição inválida",
	ParamErr:         "parâmetros inválidos",
	AccessDenied:     "acesso negado",
	NothingFound:     "não encontrado",
	MethodNotAllowed: "método não permitido",
	Conflict:         "conflito de recurso",
	ServerErr:        "erro interno do servidor",
}

// Text returns the default human-readable message for a code.
func Text(code int) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return fmt.Sprintf("unknown error code %d", code)
}

// ToHTTPStatus maps a business code to an HTTP status code.
func ToHTTPStatus(code int) int {
	switch code {
	case OK:
		return http.StatusOK
	case Unauthorized, UserInactive:
		return http.StatusUnauthorized
	case AccessDenied:
		return http.StatusForbidden
	case NothingFound:
		return http.StatusNotFound
	case MethodNotAllowed:
		return http.StatusMethodNotAllowed
	case Conflict:
		return http.StatusConflict
	case RequestErr, ParamErr:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

const (
	requiredMsg = "é obrigatório"
	invalidMsg  = "inválido"
	existMsg    = "já cadastrado"
)

// FieldIsRequired returns a field required message.
func FieldIsRequired(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], requiredMsg)
	}
	return requiredMsg
}

// FieldIsInvalid returns a field invalid message.
func FieldIsInvalid(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], invalidMsg)
	}
	return invalidMsg
}

// AlreadyExist returns an already registered message.
func AlreadyExist(k ...string) string {
	if len(k) > 0 {
		return fmt.Sprintf("%s %s", k[0], existMsg)
	}
	return existMsg
}
