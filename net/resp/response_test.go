package resp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

// TestSuccessWrapsStringAsMensagem verifies the message convention.
func TestSuccessWrapsStringAsMensagem(t *testing.T) {
	w := httptest.NewRecorder()
	Success(w, "Operação concluída")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode(t, w)["mensagem"]; got != "Operação concluída" {
		t.Errorf("mensagem = %v", got)
	}
}

// TestWithStatusCode verifies custom statuses and map payloads pass
// through untouched.
func TestWithStatusCode(t *testing.T) {
	w := httptest.NewRecorder()
	WithStatusCode(w, http.StatusCreated, map[string]any{"mensagem": "criado", "id": "abc"})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}
	body := decode(t, w)
	if body["mensagem"] != "criado" || body["id"] != "abc" {
		t.Errorf("body = %v", body)
	}
}

// TestFailBodyShape verifies every failure serializes as {"erro": ...} with
// the constructor's status.
func TestFailBodyShape(t *testing.T) {
	tests := []struct {
		name       string
		exc        *Exception
		wantStatus int
		wantErro   string
	}{
		{"bad request", BadRequest("Email inválido"), http.StatusBadRequest, "Email inválido"},
		{"unauthorized", UnAuthorized("Token expirado"), http.StatusUnauthorized, "Token expirado"},
		{"not found", NotFound("Receita não encontrada"), http.StatusNotFound, "Receita não encontrada"},
		{"conflict", Conflict("Email já cadastrado"), http.StatusConflict, "Email já cadastrado"},
		{"not allowed", NotAllowed("Método não permitido"), http.StatusMethodNotAllowed, "Método não permitido"},
		{"internal", InternalServer("Erro interno do servidor"), http.StatusInternalServerError, "Erro interno do servidor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, tt.exc)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			body := decode(t, w)
			if body["erro"] != tt.wantErro {
				t.Errorf("erro = %v, want %q", body["erro"], tt.wantErro)
			}
			if len(body) != 1 {
				t.Errorf("failure body has extra fields: %v", body)
			}
		})
	}
}
