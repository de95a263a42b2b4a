package usecases

import (
	"context"
	"strings"
	"time"

	"depot/internal/domain/catalog"
	"depot/internal/domain/pallet"
	"depot/internal/shared/errors"
	"depot/internal/shared/logger"
)

type CreatePalletCommand struct {
	PartNumber  string
	FactoryCode string
}

type CreatePalletResult struct {
	PalletID  uint
	Number    string
	Status    string
	CreatedAt time.Time
}

type CreatePalletUseCase struct {
	palletRepo      pallet.PalletRepository
	factoryRepo     catalog.FactoryRepository
	partNumberRepo  catalog.PartNumberRepository
	numberGenerator pallet.NumberGenerator
	txManager       TransactionManager
	logger          logger.Interface
}

func NewCreatePalletUseCase(
	palletRepo pallet.PalletRepository,
	factoryRepo catalog.FactoryRepository,
	partNumberRepo catalog.PartNumberRepository,
	numberGenerator pallet.NumberGenerator,
	txManager TransactionManager,
	logger logger.Interface,
) *CreatePalletUseCase {
	return &CreatePalletUseCase{
		palletRepo:      palletRepo,
		factoryRepo:     factoryRepo,
		partNumberRepo:  partNumberRepo,
		numberGenerator: numberGenerator,
		txManager:       txManager,
		logger:          logger,
	}
}

func (uc *CreatePalletUseCase) Execute(ctx context.Context, cmd CreatePalletCommand) (*CreatePalletResult, error) {
	uc.logger.Infow("executing create pallet use case",
		"part_number", cmd.PartNumber, "factory_code", cmd.FactoryCode)

	partName := strings.TrimSpace(cmd.PartNumber)
	factoryCode := strings.TrimSpace(cmd.FactoryCode)
	if partName == "" {
		return nil, errors.NewValidationError("part number is required")
	}
	if factoryCode == "" {
		return nil, errors.NewValidationError("factory code is required")
	}

	factory, err := uc.factoryRepo.GetByCode(ctx, factoryCode)
	if err != nil {
		return nil, errors.NewNotFoundError("factory not found", factoryCode)
	}

	part, err := uc.partNumberRepo.GetByName(ctx, partName)
	if err != nil {
		return nil, errors.NewNotFoundError("part number not found", partName)
	}

	var created *pallet.Pallet
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		number, err := uc.numberGenerator.Generate(
			txCtx, factory.ID(), factory.Code(), part.ID(), part.Name())
		if err != nil {
			return err
		}

		newPallet, err := pallet.NewPallet(number, factory.ID(), part.ID())
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		if err := uc.palletRepo.Save(txCtx, newPallet); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("pallet number already exists", number)
			}
			return err
		}

		created = newPallet
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create pallet", "error", err)
		return nil, err
	}

	uc.logger.Infow("pallet created successfully",
		"pallet_id", created.ID(), "number", created.Number())

	return &CreatePalletResult{
		PalletID:  created.ID(),
		Number:    created.Number(),
		Status:    created.Status().String(),
		CreatedAt: created.CreatedAt(),
	}, nil
}
