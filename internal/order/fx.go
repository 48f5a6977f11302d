package order

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/service"
)

var Module = fx.Module("order.service",
	fx.Provide(repository.New, service.New),
)
