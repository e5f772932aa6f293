package validator

import (
	"errors"
	"fmt"
	"strings"

	pv "github.com/go-playground/validator/v10"
)

var tagMessages = map[string]string{
	"required": "Campo %s é obrigatório",
	"email":    "Campo %s deve ser um email válido",
	"min":      "Campo %s é muito curto",
	"max":      "Campo %s é muito longo",
}

// TranslateBindingError converts a gin binding error
// (go-playground/validator validation errors) into a single
// client-facing Portuguese message.
func TranslateBindingError(err error) string {
	var verrs pv.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := fieldName(fe.Field())
		if format, ok := tagMessages[fe.Tag()]; ok {
			return fmt.Sprintf(format, field)
		}
		return fmt.Sprintf("Campo %s inválido", field)
	}
	return "Requisição inválida"
}

// fieldName converts a Go struct field name to its snake_case JSON
// counterpart, e.g. ModoPreparo becomes modo_preparo.
func fieldName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
