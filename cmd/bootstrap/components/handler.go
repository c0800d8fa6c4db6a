package components

import (
	"bibliolights/internal/handler"
	"bibliolights/internal/handler/api"
	"bibliolights/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCatalogHandler,
		api.NewBookRequestHandler,
		api.NewOrderHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		func(
			catalog *api.CatalogHandler,
			requests *api.BookRequestHandler,
			orders *api.OrderHandler,
			profile *api.ProfileHandler,
		) handler.Handlers {
			return handler.Handlers{
				Catalog:  catalog,
				Requests: requests,
				Orders:   orders,
				Profile:  profile,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
