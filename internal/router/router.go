package router

import (
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/infra"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, dispatcher *worker.Dispatcher, smtpBreaker *infra.CircuitBreaker) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	subcategoryRepo := repository.NewSubCategoryRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	productRepo := repository.NewProductRepository(db)
	imageRepo := repository.NewImageRepository(db)
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	brandSvc := service.NewBrandService(brandRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	subcategorySvc := service.NewSubCategoryService(subcategoryRepo, categoryRepo)
	sectionSvc := service.NewSectionService(sectionRepo)
	productSvc := service.NewProductService(productRepo, imageRepo, brandRepo, categoryRepo, subcategoryRepo, sectionRepo, rdb)
	userSvc := service.NewUserService(userRepo, roleRepo, dispatcher)
	authSvc := service.NewAuthService(userRepo, roleRepo, cfg)
	addressSvc := service.NewAddressService(addressRepo, userRepo)
	orderSvc := service.NewOrderService(orderRepo, userRepo, productRepo, statusRepo, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	brandsH := handler.NewBrandsHandler(brandSvc)
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	subcategoriesH := handler.NewSubCategoriesHandler(subcategorySvc)
	sectionsH := handler.NewSectionsHandler(sectionSvc)
	productsH := handler.NewProductsHandler(productSvc)
	usersH := handler.NewUsersHandler(userSvc)
	authH := handler.NewAuthHandler(authSvc)
	addressesH := handler.NewAddressesHandler(addressSvc)
	ordersH := handler.NewOrdersHandler(orderSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpBreaker))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.GET("/validate/:token", authH.ValidateAccount)
	}

	// Registration is open; everything else under /v1 requires a token
	r.POST("/v1/users", usersH.Register)

	// Catalog reads are public (storefront browsing)
	r.GET("/v1/brands", brandsH.List)
	r.GET("/v1/brands/:id", brandsH.Get)
	r.GET("/v1/categories", categoriesH.List)
	r.GET("/v1/categories/:id", categoriesH.Get)
	r.GET("/v1/subcategories", subcategoriesH.List)
	r.GET("/v1/subcategories/:id", subcategoriesH.Get)
	r.GET("/v1/sections", sectionsH.List)
	r.GET("/v1/sections/:id", sectionsH.Get)
	r.GET("/v1/products", productsH.List)
	r.GET("/v1/products/count", productsH.Count)
	r.GET("/v1/products/:id", productsH.Get)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Catalog writes, admin only
		brands := v1.Group("/brands", middleware.RequireRole("admin"))
		{
			brands.POST("", brandsH.Create)
			brands.PUT("/:id", brandsH.Update)
			brands.DELETE("/:id", brandsH.Delete)
		}

		categories := v1.Group("/categories", middleware.RequireRole("admin"))
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		subcategories := v1.Group("/subcategories", middleware.RequireRole("admin"))
		{
			subcategories.POST("", subcategoriesH.Create)
			subcategories.PUT("/:id", subcategoriesH.Update)
			subcategories.DELETE("/:id", subcategoriesH.Delete)
		}

		sections := v1.Group("/sections", middleware.RequireRole("admin"))
		{
			sections.POST("", sectionsH.Create)
			sections.PUT("/:id", sectionsH.Update)
			sections.DELETE("/:id", sectionsH.Delete)
		}

		products := v1.Group("/products", middleware.RequireRole("admin"))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
			products.POST("/:id/images", productsH.AddImage)
			products.DELETE("/:id/images/:imageID", productsH.RemoveImage)
		}

		// Users: list and delete are admin only; get and update allow the
		// account owner or an admin (enforced in the handler via the JWT
		// claims), with role and lock changes restricted to admins
		v1.GET("/users", middleware.RequireRole("admin"), usersH.List)
		v1.GET("/users/:id", usersH.Get)
		v1.PUT("/users/:id", usersH.Update)
		v1.DELETE("/users/:id", middleware.RequireRole("admin"), usersH.Delete)
		v1.GET("/users/:id/addresses", addressesH.ListByUser)

		addresses := v1.Group("/addresses")
		{
			addresses.POST("", addressesH.Create)
			addresses.GET("/:id", addressesH.Get)
			addresses.PUT("/:id", addressesH.Update)
			addresses.DELETE("/:id", addressesH.Delete)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", ordersH.Create)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.GET("/:id/receipt", ordersH.Receipt)
			orders.PATCH("/:id/status", middleware.RequireRole("admin"), ordersH.UpdateStatus)
			orders.DELETE("/:id", middleware.RequireRole("admin"), ordersH.Delete)
		}
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
