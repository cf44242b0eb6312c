package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/eco-stock/eco-stock-api/internal/application/auth"
	"github.com/eco-stock/eco-stock-api/internal/application/expiration"
	"github.com/eco-stock/eco-stock-api/internal/application/ledger"
	"github.com/eco-stock/eco-stock-api/internal/application/reports"
	"github.com/eco-stock/eco-stock-api/internal/application/usecase"
	"github.com/eco-stock/eco-stock-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC   *usecase.CategoryUseCase
	UnitUC       *usecase.UnitUseCase
	ProductUC    *usecase.ProductUseCase
	SupplierUC   *usecase.SupplierUseCase
	UserUC       *usecase.UserUseCase
	AuthUC       *auth.UseCase
	LedgerUC     *ledger.UseCase
	ExpirationUC *expiration.UseCase
	ReportsUC    *reports.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Usuarios: registro/login/refresh públicos
	userHandler := NewUserHandler(deps.AuthUC, deps.UserUC)
	usuarios := api.Group("/usuarios")
	usuarios.Post("/register", userHandler.Register)
	usuarios.Post("/autenticar", userHandler.Login)
	usuarios.Post("/refresh", userHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Administración de usuarios y roles (solo admin)
	adminOnly := RequireRole(entity.RoleAdmin)
	usuariosAdmin := protected.Group("/usuarios", adminOnly)
	usuariosAdmin.Get("/", userHandler.List)
	usuariosAdmin.Get("/:id", userHandler.GetByID)
	usuariosAdmin.Put("/:id", userHandler.Update)
	usuariosAdmin.Delete("/:id", userHandler.Delete)

	roles := protected.Group("/roles", adminOnly)
	roles.Post("/", userHandler.CreateRole)
	roles.Get("/", userHandler.ListRoles)
	roles.Get("/:id", userHandler.GetRole)
	roles.Put("/:id", userHandler.UpdateRole)
	roles.Delete("/:id", userHandler.DeleteRole)

	// Categorías
	categorias := protected.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categorias.Post("/", categoryHandler.Create)
	categorias.Get("/", categoryHandler.List)
	categorias.Get("/:id", categoryHandler.GetByID)
	categorias.Put("/:id", categoryHandler.Update)
	categorias.Delete("/:id", categoryHandler.Delete)

	// Unidades de medida
	unidades := protected.Group("/unidades-medida")
	unitHandler := NewUnitHandler(deps.UnitUC)
	unidades.Post("/", unitHandler.Create)
	unidades.Get("/", unitHandler.List)
	unidades.Get("/:id", unitHandler.GetByID)
	unidades.Put("/:id", unitHandler.Update)
	unidades.Delete("/:id", unitHandler.Delete)

	// Productos (rutas fijas antes de /:id)
	productos := protected.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReportsUC)
	productos.Post("/", productHandler.Create)
	productos.Get("/", productHandler.List)
	productos.Get("/buscar", productHandler.Search)
	productos.Get("/por_categoria", productHandler.ByCategory)
	productos.Get("/por_lote", productHandler.ByLot)
	productos.Get("/dashboard", productHandler.Dashboard)
	productos.Get("/estadisticas", productHandler.Statistics)
	productos.Get("/:id", productHandler.GetByID)
	productos.Put("/:id", productHandler.Update)
	productos.Delete("/:id", productHandler.Delete)

	// Asociación producto-proveedor
	prodProv := protected.Group("/producto-proveedor")
	prodProv.Post("/", productHandler.AssignSupplier)
	prodProv.Get("/por_producto/:id", productHandler.SuppliersForProduct)
	prodProv.Get("/por_proveedor/:id", productHandler.ProductsForSupplier)
	prodProv.Delete("/", productHandler.UnassignSupplier)

	// Proveedores
	proveedores := protected.Group("/proveedores")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	proveedores.Post("/", supplierHandler.Create)
	proveedores.Get("/", supplierHandler.List)
	proveedores.Get("/activos", supplierHandler.ListActive)
	proveedores.Get("/:id", supplierHandler.GetByID)
	proveedores.Put("/:id", supplierHandler.Update)
	proveedores.Delete("/:id", supplierHandler.Delete)

	// Movimientos e inventario
	inventoryHandler := NewInventoryHandler(deps.LedgerUC)
	movimientos := protected.Group("/movimientos")
	movimientos.Post("/registrar_entrada", inventoryHandler.RegisterEntry)
	movimientos.Post("/registrar_salida", inventoryHandler.RegisterExit)
	movimientos.Get("/por_producto", inventoryHandler.MovementsByProduct)
	movimientos.Get("/por_periodo", inventoryHandler.MovementsByPeriod)
	movimientos.Get("/por_usuario", inventoryHandler.MovementsByUser)

	inventario := protected.Group("/inventario")
	inventario.Get("/stock_actual", inventoryHandler.CurrentStock)
	inventario.Get("/bajo_stock", inventoryHandler.LowStock)
	inventario.Get("/agotados", inventoryHandler.OutOfStock)
	inventario.Patch("/:id/ajustar", inventoryHandler.AdjustQuantity)

	// Vencimientos
	expirationHandler := NewExpirationHandler(deps.ExpirationUC)
	vencimientos := protected.Group("/vencimientos")
	vencimientos.Post("/", expirationHandler.Record)
	vencimientos.Get("/por_vencer", expirationHandler.Expiring)
	vencimientos.Get("/vencidos", expirationHandler.Expired)
	vencimientos.Get("/no_notificados", expirationHandler.Unnotified)
	vencimientos.Patch("/:id/marcar_notificado", expirationHandler.MarkNotified)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportes := protected.Group("/reportes")
	reportes.Get("/resumen", reportHandler.Summary)
	reportes.Get("/por_categoria", reportHandler.ByCategory)
	reportes.Get("/por_proveedor", reportHandler.BySupplier)
	reportes.Get("/top_productos", reportHandler.TopProducts)
	reportes.Get("/tipos", reportHandler.ListTypes)
	reportes.Post("/", reportHandler.Generate)
	reportes.Get("/", reportHandler.List)
	reportes.Get("/:id/pdf", reportHandler.ExportPDF)
	reportes.Get("/:id", reportHandler.Get)
}
