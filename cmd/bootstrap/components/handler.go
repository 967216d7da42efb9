package components

import (
	"petshop-api/internal/handler"
	"petshop-api/internal/handler/api"
	"petshop-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAppointmentHandler,
		api.NewSaleHandler,
		api.NewInventoryHandler,
		api.NewCatalogHandler,
		api.NewCustomerHandler,
		api.NewUserHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Appointments *api.AppointmentHandler
	Sales        *api.SaleHandler
	Inventory    *api.InventoryHandler
	Catalog      *api.CatalogHandler
	Customers    *api.CustomerHandler
	Users        *api.UserHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Appointments: p.Appointments,
		Sales:        p.Sales,
		Inventory:    p.Inventory,
		Catalog:      p.Catalog,
		Customers:    p.Customers,
		Users:        p.Users,
	}
}
