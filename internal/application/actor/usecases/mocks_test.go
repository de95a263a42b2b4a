package usecases

import (
	"context"

	"depot/internal/domain/actor"
	"depot/internal/shared/authorization"
	"depot/internal/shared/logger"
)

type mockActorRepository struct {
	SaveFunc                  func(ctx context.Context, a *actor.Actor) error
	GetByIDFunc               func(ctx context.Context, actorID uint) (*actor.Actor, error)
	GetByEmailFunc            func(ctx context.Context, email string) (*actor.Actor, error)
	GetDeletedPlaceholderFunc func(ctx context.Context) (*actor.Actor, error)
}

func (m *mockActorRepository) Save(ctx context.Context, a *actor.Actor) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockActorRepository) GetByID(ctx context.Context, actorID uint) (*actor.Actor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, actorID)
	}
	return nil, nil
}

func (m *mockActorRepository) GetByEmail(ctx context.Context, email string) (*actor.Actor, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockActorRepository) GetDeletedPlaceholder(ctx context.Context) (*actor.Actor, error) {
	if m.GetDeletedPlaceholderFunc != nil {
		return m.GetDeletedPlaceholderFunc(ctx)
	}
	return nil, nil
}

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(actorID uint, role authorization.ActorRole) (string, error)
}

func (m *mockTokenIssuer) Generate(actorID uint, role authorization.ActorRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(actorID, role)
	}
	return "test-token", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
