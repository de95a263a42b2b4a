package catalog

import "context"

type FactoryRepository interface {
	GetByID(ctx context.Context, factoryID uint) (*Factory, error)
	GetByCode(ctx context.Context, code string) (*Factory, error)
	ListAll(ctx context.Context) ([]*Factory, error)
}

type PartNumberRepository interface {
	GetByID(ctx context.Context, partNumberID uint) (*PartNumber, error)
	GetByName(ctx context.Context, name string) (*PartNumber, error)
	ListAll(ctx context.Context) ([]*PartNumber, error)
}
