// Package server exposes the back-office HTTP API.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	accountdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/config"
	customerdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/domain"
	mergedomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	reportservice "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/report/service"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
	uploaddomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(RunHTTP),
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Cfg       config.Config
	Orders    orderdomain.Service
	Customers customerdomain.Service
	Accounts  accountdomain.Service
	Groups    mergedomain.Service
	Uploads   uploaddomain.Service
	Reports   *reportservice.Service
	Settings  settingsdomain.Service
}

type Server struct {
	log       *zap.Logger
	engine    *gin.Engine
	orderSvc  orderdomain.Service
	custSvc   customerdomain.Service
	acctSvc   accountdomain.Service
	groupSvc  mergedomain.Service
	uploadSvc uploaddomain.Service
	reportSvc *reportservice.Service
	settings  settingsdomain.Service
}

func NewServer(p Params) *Server {
	s := &Server{
		log:       p.Log.Named("server"),
		orderSvc:  p.Orders,
		custSvc:   p.Customers,
		acctSvc:   p.Accounts,
		groupSvc:  p.Groups,
		uploadSvc: p.Uploads,
		reportSvc: p.Reports,
		settings:  p.Settings,
	}

	if p.Cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), metricsMiddleware())
	s.engine = engine
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", metricsHandler())

	v1 := s.engine.Group("/api/v1")

	orders := v1.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:code", s.GetOrder)
	orders.PATCH("/:code", s.UpdateOrder)
	orders.POST("/:code/status", s.ChangeOrderStatus)
	orders.POST("/:code/payments", s.ApplyOrderPayment)
	orders.DELETE("/:code", s.DeleteOrder)
	orders.POST("/bulk-delete", s.BulkDeleteOrders)
	orders.POST("/bulk-place", s.BulkPlaceOrders)

	customers := v1.Group("/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)

	accounts := v1.Group("/accounts")
	accounts.POST("", s.CreateAccount)
	accounts.GET("", s.ListAccounts)
	accounts.GET("/:id", s.GetAccount)
	accounts.PUT("/:id", s.UpdateAccount)
	accounts.DELETE("/:id", s.DeleteAccount)

	groups := v1.Group("/merge-groups")
	groups.POST("", s.CreateMergeGroup)
	groups.GET("", s.ListMergeGroups)
	groups.GET("/:id", s.GetMergeGroup)
	groups.POST("/:id/members", s.AddMergeGroupMember)
	groups.DELETE("/:id/members/:code", s.RemoveMergeGroupMember)
	groups.DELETE("/:id", s.DeleteMergeGroup)

	uploads := v1.Group("/uploads")
	uploads.POST("", s.CreateUpload)
	uploads.GET("/object-key", s.NewUploadObjectKey)
	uploads.GET("", s.ListUploads)
	uploads.GET("/:id", s.GetUpload)
	uploads.POST("/:id/approve", s.ApproveUpload)
	uploads.POST("/:id/reject", s.RejectUpload)

	reports := v1.Group("/reports")
	reports.GET("/accounts", s.AccountsReport)
	reports.GET("/clients", s.ClientsReport)
	reports.GET("/daily", s.DailyReport)

	settings := v1.Group("/settings")
	settings.GET("", s.GetSettings)
	settings.PUT("", s.UpdateSettings)
}

func RunHTTP(lc fx.Lifecycle, s *Server, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.Server.Addr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
