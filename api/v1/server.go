package v1

import "github.com/gin-gonic/gin"

// ServerInterface is implemented by the HTTP handlers.
type ServerInterface interface {
	// (POST /login)
	Login(c *gin.Context)

	// (GET /warehouses)
	ListWarehouses(c *gin.Context)
	// (POST /warehouses)
	CreateWarehouse(c *gin.Context)
	// (GET /warehouses/names)
	ListWarehouseNames(c *gin.Context)
	// (GET /warehouses/next-id)
	GetNextWarehouseID(c *gin.Context)
	// (GET /warehouses/export)
	ExportWarehouses(c *gin.Context)
	// (PUT /warehouses/:id)
	UpdateWarehouse(c *gin.Context, id string)
	// (DELETE /warehouses/:id)
	DeleteWarehouse(c *gin.Context, id string)

	// (GET /products)
	ListProducts(c *gin.Context)
	// (POST /products)
	CreateProduct(c *gin.Context)
	// (GET /products/export)
	ExportProducts(c *gin.Context)
	// (PUT /products/:id)
	UpdateProduct(c *gin.Context, id string)
	// (DELETE /products/:id)
	DeleteProduct(c *gin.Context, id string)
}

// RegisterHandlers mounts every route of si on router.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	router.POST("/login", si.Login)

	router.GET("/warehouses", si.ListWarehouses)
	router.POST("/warehouses", si.CreateWarehouse)
	router.GET("/warehouses/names", si.ListWarehouseNames)
	router.GET("/warehouses/next-id", si.GetNextWarehouseID)
	router.GET("/warehouses/export", si.ExportWarehouses)
	router.PUT("/warehouses/:id", func(c *gin.Context) { si.UpdateWarehouse(c, c.Param("id")) })
	router.DELETE("/warehouses/:id", func(c *gin.Context) { si.DeleteWarehouse(c, c.Param("id")) })

	router.GET("/products", si.ListProducts)
	router.POST("/products", si.CreateProduct)
	router.GET("/products/export", si.ExportProducts)
	router.PUT("/products/:id", func(c *gin.Context) { si.UpdateProduct(c, c.Param("id")) })
	router.DELETE("/products/:id", func(c *gin.Context) { si.DeleteProduct(c, c.Param("id")) })
}
