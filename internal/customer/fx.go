package customer

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/service"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.New, service.New, service.AsDirectory),
)
