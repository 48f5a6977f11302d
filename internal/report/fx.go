package report

import (
	"go.uber.org/fx"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/report/service"
)

var Module = fx.Module("report.service",
	fx.Provide(service.New, service.AsInvalidator),
)
