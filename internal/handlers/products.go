package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/export"
)

// ListProducts returns the products with filtering and pagination
// (GET /products)
func (h *Handler) ListProducts(c *gin.Context) {
	q := c.Request.URL.Query()
	params, err := v1.ParseProductListParams(q)
	if err != nil {
		writeError(c, "product_handler", "invalid product filter", err)
		return
	}

	result, err := h.productSrv.List(c.Request.Context(), params)
	if err != nil {
		writeError(c, "product_handler", "failed to list products", err)
		return
	}

	page := v1.ParsePage(q)
	products := make([]v1.Product, 0, len(result.Products))
	for _, p := range result.Products {
		products = append(products, v1.NewProductFromModel(p))
	}

	c.JSON(http.StatusOK, v1.ProductListResponse{
		Products:  products,
		Total:     result.Total,
		Page:      page.Number,
		PageCount: page.PageCount(result.Total),
	})
}

// (POST /products)
func (h *Handler) CreateProduct(c *gin.Context) {
	var body v1.ProductWrite
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	p, err := h.productSrv.Create(c.Request.Context(), body.ToInput())
	if err != nil {
		writeError(c, "product_handler", "failed to create product", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewProductFromModel(*p))
}

// (PUT /products/:id)
func (h *Handler) UpdateProduct(c *gin.Context, id string) {
	var body v1.ProductWrite
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	input := body.ToInput()
	input.ID = id
	if err := h.productSrv.Update(c.Request.Context(), input); err != nil {
		writeError(c, "product_handler", "failed to update product", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// (DELETE /products/:id)
func (h *Handler) DeleteProduct(c *gin.Context, id string) {
	if err := h.productSrv.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "product_handler", "failed to delete product", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportProducts writes the filtered listing, ignoring paging, as xlsx
// (GET /products/export)
func (h *Handler) ExportProducts(c *gin.Context) {
	params, err := v1.ParseProductListParams(c.Request.URL.Query())
	if err != nil {
		writeError(c, "product_handler", "invalid product filter", err)
		return
	}
	params.Limit, params.Offset = 0, 0

	result, err := h.productSrv.List(c.Request.Context(), params)
	if err != nil {
		writeError(c, "product_handler", "failed to list products", err)
		return
	}

	var buf bytes.Buffer
	if err := export.Products(&buf, result.Products); err != nil {
		writeError(c, "product_handler", "failed to export products", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="products.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
