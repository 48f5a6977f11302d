package settings

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/service"
)

var Module = fx.Module("settings.service",
	fx.Provide(repository.New, service.New),
)
