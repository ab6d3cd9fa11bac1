package routes

import (
	"kantin-backend/configs"
	"kantin-backend/controllers"
	"kantin-backend/middlewares"
	"kantin-backend/repository"
	"kantin-backend/services"
	"kantin-backend/ws"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	kategoriRepo := repository.NewKategoriRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	userRepo := repository.NewUserRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	keranjangRepo := repository.NewKeranjangRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, roleRepo, cfg.JWTSecret, cfg.JWTTTL)
	kategoriSvc := services.NewKategoriService(kategoriRepo)
	menuSvc := services.NewMenuService(db, menuRepo, kategoriRepo)
	roleSvc := services.NewRoleService(roleRepo)
	userSvc := services.NewUserService(db, userRepo, roleRepo)
	orderSvc := services.NewOrderService(db, orderRepo, userRepo, menuRepo, keranjangRepo)
	keranjangSvc := services.NewKeranjangService(db, keranjangRepo, menuRepo, userRepo)

	// Order baru di-broadcast ke dashboard admin lewat websocket.
	orderHub := ws.NewOrderHub()
	go orderHub.Run()
	orderSvc.Publisher = orderHub

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	kategoriCtrl := controllers.NewKategoriController(kategoriSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	userCtrl := controllers.NewUserController(userSvc, roleSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	keranjangCtrl := controllers.NewKeranjangController(keranjangSvc)

	api := r.Group("/api")
	{
		// Auth
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)

		// Menu
		api.GET("/menu", menuCtrl.List)
		api.GET("/menu/:id", menuCtrl.Detail)
		api.GET("/menu/kategori/:id", menuCtrl.ListByKategori)
		api.POST("/menu", menuCtrl.Create)
		api.PUT("/menu/:id", menuCtrl.Update)
		api.DELETE("/menu/:id", menuCtrl.Delete)

		// Kategori
		api.GET("/kategori", kategoriCtrl.List)
		api.GET("/kategori/:id", kategoriCtrl.Detail)
		api.POST("/kategori", kategoriCtrl.Create)
		api.PUT("/kategori/:id", kategoriCtrl.Update)
		api.DELETE("/kategori/:id", kategoriCtrl.Delete)

		// Users & roles
		api.GET("/users", userCtrl.List)
		api.GET("/users/:id", userCtrl.Detail)
		api.PUT("/users/:id", userCtrl.Update)
		api.DELETE("/users/:id", userCtrl.Delete)
		api.GET("/users/:id/orders", orderCtrl.History)
		api.GET("/roles", userCtrl.Roles)

		// Orders
		api.GET("/orders", orderCtrl.List)
		api.POST("/orders", orderCtrl.Create)
		api.GET("/orders/:id", orderCtrl.Detail)
		api.PUT("/orders/:id", orderCtrl.UpdateStatus)
		api.DELETE("/orders/:id", orderCtrl.Delete)
		api.GET("/orders/:id/details", orderCtrl.Details)
		api.GET("/orders/history/:user_id", orderCtrl.History)

		// Keranjang. Arti :id per rute ada di godoc KeranjangController.
		api.GET("/keranjang/:id", keranjangCtrl.List)
		api.POST("/keranjang", keranjangCtrl.Add)
		api.PUT("/keranjang/:id", keranjangCtrl.UpdateJumlah)
		api.DELETE("/keranjang/:id", keranjangCtrl.Remove)
		api.DELETE("/keranjang/:id/clear", keranjangCtrl.Clear)
	}

	// Feed order untuk dashboard admin.
	r.GET("/ws/orders", middlewares.AuthMiddleware(cfg, "admin"), orderHub.HandleWebSocket)
}
