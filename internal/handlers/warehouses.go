package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/export"
)

// ListWarehouses returns warehouses ordered by id
// (GET /warehouses)
func (h *Handler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.warehouseSrv.List(c.Request.Context(), v1.ParseWarehouseListParams(c.Request.URL.Query()))
	if err != nil {
		writeError(c, "warehouse_handler", "failed to list warehouses", err)
		return
	}

	out := make([]v1.Warehouse, 0, len(warehouses))
	for _, w := range warehouses {
		out = append(out, v1.NewWarehouseFromModel(w))
	}
	c.JSON(http.StatusOK, out)
}

// (POST /warehouses)
func (h *Handler) CreateWarehouse(c *gin.Context) {
	var body v1.WarehouseWrite
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	w, err := h.warehouseSrv.Create(c.Request.Context(), body.Name)
	if err != nil {
		writeError(c, "warehouse_handler", "failed to create warehouse", err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewWarehouseFromModel(*w))
}

// ListWarehouseNames returns the cached names, sorted
// (GET /warehouses/names)
func (h *Handler) ListWarehouseNames(c *gin.Context) {
	c.JSON(http.StatusOK, v1.WarehouseNames{Names: h.warehouseSrv.Names()})
}

// (GET /warehouses/next-id)
func (h *Handler) GetNextWarehouseID(c *gin.Context) {
	id, err := h.warehouseSrv.NextID(c.Request.Context())
	if err != nil {
		writeError(c, "warehouse_handler", "failed to compute next warehouse id", err)
		return
	}
	c.JSON(http.StatusOK, v1.NextWarehouseID{Id: id})
}

// (PUT /warehouses/:id)
func (h *Handler) UpdateWarehouse(c *gin.Context, id string) {
	var body v1.WarehouseWrite
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Error: "invalid request body"})
		return
	}

	if err := h.warehouseSrv.Rename(c.Request.Context(), id, body.Name); err != nil {
		writeError(c, "warehouse_handler", "failed to update warehouse", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// (DELETE /warehouses/:id)
func (h *Handler) DeleteWarehouse(c *gin.Context, id string) {
	if err := h.warehouseSrv.Delete(c.Request.Context(), id); err != nil {
		writeError(c, "warehouse_handler", "failed to delete warehouse", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// (GET /warehouses/export)
func (h *Handler) ExportWarehouses(c *gin.Context) {
	warehouses, err := h.warehouseSrv.List(c.Request.Context(), v1.ParseWarehouseListParams(c.Request.URL.Query()))
	if err != nil {
		writeError(c, "warehouse_handler", "failed to list warehouses", err)
		return
	}

	var buf bytes.Buffer
	if err := export.Warehouses(&buf, warehouses); err != nil {
		writeError(c, "warehouse_handler", "failed to export warehouses", err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="warehouses.xlsx"`)
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}
