package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"depot/internal/domain/actor"
	"depot/internal/infrastructure/persistence/models"
	db "depot/internal/shared/db"
)

type ActorRepository struct {
	db             *gorm.DB
	deletedActorID uint
}

func NewActorRepository(db *gorm.DB, deletedActorID uint) *ActorRepository {
	return &ActorRepository{db: db, deletedActorID: deletedActorID}
}

func (r *ActorRepository) Save(ctx context.Context, a *actor.Actor) error {
	model := r.toModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save actor: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ActorRepository) GetByID(ctx context.Context, actorID uint) (*actor.Actor, error) {
	var model models.ActorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, actorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("actor not found")
		}
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}

	return r.toDomain(&model)
}

func (r *ActorRepository) GetByEmail(ctx context.Context, email string) (*actor.Actor, error) {
	var model models.ActorModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("actor not found")
		}
		return nil, fmt.Errorf("failed to find actor: %w", err)
	}

	return r.toDomain(&model)
}

// GetDeletedPlaceholder returns the reserved actor that owns history entries
// left behind by deleted accounts. The row is created by the seed migration.
func (r *ActorRepository) GetDeletedPlaceholder(ctx context.Context) (*actor.Actor, error) {
	return r.GetByID(ctx, r.deletedActorID)
}

func (r *ActorRepository) toModel(a *actor.Actor) *models.ActorModel {
	return &models.ActorModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email(),
		PasswordHash: a.PasswordHash(),
		IsAdmin:      a.IsAdmin(),
		CreatedAt:    a.CreatedAt().UnixMilli(),
		UpdatedAt:    a.UpdatedAt().UnixMilli(),
	}
}

func (r *ActorRepository) toDomain(model *models.ActorModel) (*actor.Actor, error) {
	return actor.ReconstructActor(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		model.IsAdmin,
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}
