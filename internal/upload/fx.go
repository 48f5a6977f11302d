package upload

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/service"
)

var Module = fx.Module("upload.service",
	fx.Provide(repository.New, service.New, service.NewOrderGateway),
)
