// Package service implements the business logic between handlers and
// repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ecomida/ecomida/crypto"
	"github.com/ecomida/ecomida/data/repository"
	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/messaging/email"
	"github.com/ecomida/ecomida/nanoid"
	"github.com/ecomida/ecomida/security/jwt"
	"github.com/ecomida/ecomida/structs"
	"github.com/ecomida/ecomida/validation/validator"
)

// ResetTokenTTL is how long a password-reset token stays redeemable.
const ResetTokenTTL = time.Hour

// resetTokenLength yields the same entropy as a 32-byte url-safe token.
const resetTokenLength = 43

// RegisterRequest carries the signup form fields.
type RegisterRequest struct {
	Nome      string `json:"nome"`
	Email     string `json:"email"`
	Senha     string `json:"senha"`
	Confirmar string `json:"confirmar"`
}

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token   string
	Usuario *structs.UserSummary
}

// ForgotPasswordRequest carries the email asking for a reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest redeems a reset token for a new password.
type ResetPasswordRequest struct {
	Token          string `json:"token"`
	NovaSenha      string `json:"nova_senha"`
	ConfirmarSenha string `json:"confirmar_senha"`
}

// ChangePasswordRequest changes the password of a logged-in user.
type ChangePasswordRequest struct {
	SenhaAtual     string `json:"senha_atual"`
	NovaSenha      string `json:"nova_senha"`
	ConfirmarSenha string `json:"confirmar_senha"`
}

// UpdateProfileRequest updates the editable profile fields.
type UpdateProfileRequest struct {
	Nome string `json:"nome"`
}

// AuthService handles registration, sessions and password lifecycle.
type AuthService struct {
	users      repository.UserRepository
	tokens     repository.ResetTokenRepository
	tm         *jwt.TokenManager
	sender     email.Sender
	sessionTTL time.Duration
	logger     *logger.Logger
}

// NewAuthService creates a new AuthService instance. A nil sender
// disables reset email delivery.
func NewAuthService(users repository.UserRepository, tokens repository.ResetTokenRepository, tm *jwt.TokenManager, sender email.Sender, sessionTTL time.Duration, logger *logger.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = jwt.DefaultSessionExpire
	}
	return &AuthService{
		users:      users,
		tokens:     tokens,
		tm:         tm,
		sender:     sender,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Register creates a new active user account and returns its ID.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (string, error) {
	nome := strings.TrimSpace(req.Nome)
	emailAddr := normalizeEmail(req.Email)
	senha := req.Senha

	if nome == "" || emailAddr == "" || senha == "" || req.Confirmar == "" {
		return "", structs.NewValidationError("Preencha todos os campos")
	}
	if len([]rune(nome)) < validator.MinNameLength {
		return "", structs.NewValidationError("Nome deve ter pelo menos 2 caracteres")
	}
	if !validator.IsValidEmail(emailAddr) {
		return "", structs.NewValidationError("Email inválido")
	}
	if ok, msg := validator.ValidatePassword(senha); !ok {
		return "", structs.NewValidationError(msg)
	}
	if senha != req.Confirmar {
		return "", structs.NewValidationError("As senhas não coincidem")
	}

	if _, err := s.users.FindByEmail(ctx, emailAddr); err == nil {
		return "", structs.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, structs.ErrUserNotFound) {
		return "", err
	}

	hash, err := crypto.HashPassword(senha)
	if err != nil {
		return "", err
	}

	user := &structs.User{
		Nome:         nome,
		Email:        emailAddr,
		SenhaHash:    hash,
		DataCadastro: time.Now().UTC(),
		Ativo:        true,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info(ctx, "user registered", "email", emailAddr)
	return created.ID.Hex(), nil
}

// Login authenticates the credentials and issues a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	emailAddr := normalizeEmail(req.Email)
	if emailAddr == "" || req.Senha == "" {
		return nil, structs.NewValidationError("Email e senha são obrigatórios")
	}
	if !validator.IsValidEmail(emailAddr) {
		return nil, structs.NewValidationError("Email inválido")
	}

	user, err := s.users.FindActiveByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, structs.ErrUserNotFound) {
			return nil, structs.ErrInvalidCredentials
		}
		return nil, err
	}
	if !crypto.ComparePassword(user.SenhaHash, req.Senha) {
		return nil, structs.ErrInvalidCredentials
	}

	token, err := s.tm.Generate(user.ID.Hex(), user.Email, s.sessionTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "email", emailAddr)
	return &LoginResult{Token: token, Usuario: user.Summary()}, nil
}

// RequestPasswordReset issues a fresh reset token for the account, if
// one exists. The caller gets the same answer either way so the
// endpoint cannot be used to probe registered emails.
func (s *AuthService) RequestPasswordReset(ctx context.Context, req *ForgotPasswordRequest) error {
	emailAddr := normalizeEmail(req.Email)
	if emailAddr == "" {
		return structs.NewValidationError("Email é obrigatório")
	}
	if !validator.IsValidEmail(emailAddr) {
		return structs.NewValidationError("Email inválido")
	}

	user, err := s.users.FindActiveByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, structs.ErrUserNotFound) {
			return nil
		}
		return err
	}

	token := nanoid.String(resetTokenLength)

	// Any previous token for the account dies when a new one is issued.
	if err := s.tokens.DeleteByEmail(ctx, user.Email); err != nil {
		return err
	}
	if _, err := s.tokens.Create(ctx, &structs.ResetToken{
		Token:    token,
		Email:    user.Email,
		CriadoEm: time.Now().UTC(),
		Expirado: false,
	}); err != nil {
		return err
	}

	s.dispatchResetEmail(ctx, user.Email, token)
	return nil
}

// dispatchResetEmail sends the token out of band. Delivery failures are
// logged and never surface to the requester.
func (s *AuthService) dispatchResetEmail(ctx context.Context, recipient, token string) {
	if s.sender == nil {
		s.logger.Warn(ctx, "email delivery disabled, reset token not sent", "email", recipient)
		return
	}
	go func() {
		tpl := email.Template{
			Subject: "Redefinição de Senha - ECOmida",
			Body:    resetEmailBody(token),
			Token:   token,
		}
		if _, err := s.sender.SendTemplateEmail(recipient, tpl); err != nil {
			s.logger.Error(context.Background(), "failed to send reset email", "email", recipient, "error", err)
		}
	}()
}

func resetEmailBody(token string) string {
	return fmt.Sprintf(`Olá!

Você solicitou a redefinição de sua senha no ECOmida.

Use o código abaixo para redefinir sua senha:
%s

Este código expira em 1 hora.

Se você não solicitou esta redefinição, ignore este email.

Equipe ECOmida`, token)
}

// ResetPassword redeems a reset token and sets the new password. A
// token older than ResetTokenTTL is marked expired on the spot and
// rejected; redemption also expires the token so it is single use.
func (s *AuthService) ResetPassword(ctx context.Context, req *ResetPasswordRequest) error {
	if req.Token == "" || req.NovaSenha == "" || req.ConfirmarSenha == "" {
		return structs.NewValidationError("Todos os campos são obrigatórios")
	}
	if ok, msg := validator.ValidatePassword(req.NovaSenha); !ok {
		return structs.NewValidationError(msg)
	}
	if req.NovaSenha != req.ConfirmarSenha {
		return structs.NewValidationError("As senhas não coincidem")
	}

	token, err := s.tokens.FindLiveByToken(ctx, req.Token)
	if err != nil {
		return err
	}

	if time.Since(token.CriadoEm) > ResetTokenTTL {
		if err := s.tokens.MarkExpired(ctx, token.ID); err != nil {
			s.logger.Warn(ctx, "failed to expire stale reset token", "error", err)
		}
		return structs.ErrResetTokenExpired
	}

	hash, err := crypto.HashPassword(req.NovaSenha)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHashByEmail(ctx, token.Email, hash); err != nil {
		return err
	}
	if err := s.tokens.MarkExpired(ctx, token.ID); err != nil {
		return err
	}

	s.logger.Info(ctx, "password reset", "email", token.Email)
	return nil
}

// ChangePassword updates the password of an authenticated user after
// verifying the current one.
func (s *AuthService) ChangePassword(ctx context.Context, user *structs.User, req *ChangePasswordRequest) error {
	if req.SenhaAtual == "" || req.NovaSenha == "" || req.ConfirmarSenha == "" {
		return structs.NewValidationError("Todos os campos são obrigatórios")
	}
	if !crypto.ComparePassword(user.SenhaHash, req.SenhaAtual) {
		return structs.ErrWrongPassword
	}
	if ok, msg := validator.ValidatePassword(req.NovaSenha); !ok {
		return structs.NewValidationError(msg)
	}
	if req.NovaSenha != req.ConfirmarSenha {
		return structs.NewValidationError("As senhas não coincidem")
	}

	hash, err := crypto.HashPassword(req.NovaSenha)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, user.ID.Hex(), hash); err != nil {
		return err
	}

	s.logger.Info(ctx, "password changed", "email", user.Email)
	return nil
}

// UpdateProfile updates the user's display name.
func (s *AuthService) UpdateProfile(ctx context.Context, user *structs.User, req *UpdateProfileRequest) error {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return structs.NewValidationError("Nome é obrigatório")
	}
	if len([]rune(nome)) < validator.MinNameLength {
		return structs.NewValidationError("Nome deve ter pelo menos 2 caracteres")
	}
	return s.users.UpdateName(ctx, user.ID.Hex(), nome)
}

// ResolveSessionUser validates a session token, with or without the
// Bearer prefix, and loads the active user it names.
func (s *AuthService) ResolveSessionUser(ctx context.Context, rawToken string) (*structs.User, error) {
	token := strings.TrimPrefix(rawToken, "Bearer ")

	claims, err := s.tm.Decode(token)
	if err != nil {
		return nil, err
	}
	return s.users.FindActiveByID(ctx, claims.UserID)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
