package usecases

import (
	"context"
	"strings"

	"depot/internal/domain/actor"
	"depot/internal/shared/authorization"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

// TokenIssuer mints access tokens for authenticated actors.
type TokenIssuer interface {
	Generate(actorID uint, role authorization.ActorRole) (string, error)
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	AccessToken string
	ActorID     uint
	Name        string
	Role        authorization.ActorRole
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

// LoginUseCase authenticates an actor by email and password and issues an
// access token. Unknown emails and bad passwords produce the same error.
type LoginUseCase struct {
	actorRepo   actor.ActorRepository
	hasher      actor.PasswordHasher
	tokenIssuer TokenIssuer
	logger      logger.Interface
}

func NewLoginUseCase(
	actorRepo actor.ActorRepository,
	hasher actor.PasswordHasher,
	tokenIssuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		actorRepo:   actorRepo,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	a, err := uc.actorRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Warnw("login attempt for unknown email", "email", email)
		return nil, errors.NewForbiddenError("invalid email or password")
	}

	if err := uc.hasher.Verify(cmd.Password, a.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with bad password", "actor_id", a.ID())
		return nil, errors.NewForbiddenError("invalid email or password")
	}

	role := authorization.RoleOperator
	if a.IsAdmin() {
		role = authorization.RoleAdmin
	}

	token, err := uc.tokenIssuer.Generate(a.ID(), role)
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "actor_id", a.ID(), "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	uc.logger.Infow("actor logged in", "actor_id", a.ID(), "role", role)

	return &LoginResult{
		AccessToken: token,
		ActorID:     a.ID(),
		Name:        a.Name(),
		Role:        role,
	}, nil
}
