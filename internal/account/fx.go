package account

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/service"
)

var Module = fx.Module("account.service",
	fx.Provide(repository.New, service.New),
)
