package mergegroup

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/repository"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/service"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

var Module = fx.Module("mergegroup.service",
	fx.Provide(
		repository.New,
		service.New,
		func(r orderdomain.Repository) domain.OrderReader { return r },
	),
)
