package router

import (
	"github.com/gin-gonic/gin"
	"github.com/recyclezone/marketplace/internal/interfaces/http/handler"
)

// Handlers is every HTTP handler the marketplace serves
type Handlers struct {
	System         *handler.SystemHandler
	Token          *handler.TokenHandler
	User           *handler.UserHandler
	Category       *handler.CategoryHandler
	Product        *handler.ProductHandler
	Order          *handler.OrderHandler
	Payment        *handler.PaymentHandler
	Advertisement  *handler.AdvertisementHandler
	Report         *handler.ReportHandler
	TokenRateLimit gin.HandlerFunc // optional guard in front of /jwt
}

// DomainGroups arranges the handlers into route groups. Paths are the
// public contract of the storefront client and are mounted at the root.
func DomainGroups(h Handlers) []RouteRegistrar {
	system := NewDomainGroup("system", "")
	system.GET("/", h.System.Root)
	system.GET("/health", h.System.Health)

	identity := NewDomainGroup("identity", "")
	if h.TokenRateLimit != nil {
		identity.GET("/jwt", h.TokenRateLimit, h.Token.Issue)
	} else {
		identity.GET("/jwt", h.Token.Issue)
	}
	users := identity.Group("users", "/users")
	users.GET("", h.User.List)
	users.POST("", h.User.Register)
	users.DELETE("/:id", h.User.Delete)
	users.GET("/buyer/:email", h.User.IsBuyer)
	users.GET("/seller/:email", h.User.IsSeller)
	users.GET("/admin/:email", h.User.IsAdmin)
	users.GET("/allseller", h.User.ListSellers)
	users.GET("/allbuyer", h.User.ListBuyers)
	users.PUT("/seller/:id", h.User.VerifySeller)
	// The storefront client has always requested this spelling.
	identity.GET("/veryfied/seller/:email", h.User.GetVerifiedSeller)

	catalog := NewDomainGroup("catalog", "")
	catalog.GET("/categories", h.Category.List)
	catalog.POST("/categories", h.Category.Create)
	catalog.GET("/products", h.Product.List)
	catalog.POST("/products", h.Product.Create)
	catalog.GET("/products/:email", h.Product.ListBySeller)
	catalog.DELETE("/products/:id", h.Product.Delete)
	catalog.GET("/category/:categoryName", h.Product.ListByCategory)
	catalog.PATCH("/stockout/:id", h.Product.StockOut)
	catalog.GET("/advertisements", h.Advertisement.List)
	catalog.POST("/advertisements", h.Advertisement.Create)

	trade := NewDomainGroup("trade", "")
	orders := trade.Group("orders", "/orders")
	orders.POST("", h.Order.Create)
	orders.GET("/:email", h.Order.ListByBuyer)
	orders.GET("/payment/:id", h.Order.GetForPayment)
	orders.DELETE("/:id", h.Order.Delete)
	trade.POST("/create-payment-intent", h.Payment.CreateIntent)
	trade.POST("/payments", h.Payment.Record)
	trade.GET("/payments/:orderId", h.Payment.ListForOrder)

	moderation := NewDomainGroup("moderation", "")
	moderation.POST("/report-items", h.Report.Create)
	moderation.GET("/reports", h.Report.List)
	moderation.DELETE("/reported-products/:id", h.Report.Delete)

	return []RouteRegistrar{system, identity, catalog, trade, moderation}
}
