package interfaces

import (
	"context"

	"github.com/m-mizutani/zipdata/pkg/domain/model"
)

type UseCase interface {
	ProvisionDataset(ctx context.Context, dataset model.Dataset) (*model.ProvisionResult, error)
}
