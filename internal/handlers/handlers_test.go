package handlers_test

import (
	"bytes"
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/xuri/excelize/v2"

	v1 "github.com/unison/inventory-manager/api/v1"
	"github.com/unison/inventory-manager/internal/export"
)

var _ = Describe("HTTP API", func() {
	var (
		ctx context.Context
		a   *api
	)

	BeforeEach(func() {
		ctx = context.Background()
		a = newAPI(ctx)
	})

	AfterEach(func() {
		a.db.Close()
	})

	Context("Login", func() {
		It("should issue a token for valid credentials", func() {
			rec := a.do(http.MethodPost, "/api/v1/login", "", v1.LoginRequest{Username: "ANA", Password: "admin-pass"})

			Expect(rec.Code).To(Equal(http.StatusOK))
			resp := decode[v1.LoginResponse](rec)
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User).To(Equal("ana"))
			Expect(resp.Role).To(Equal("admin"))
		})

		It("should answer 401 for a wrong password", func() {
			rec := a.do(http.MethodPost, "/api/v1/login", "", v1.LoginRequest{Username: "ana", Password: "nope"})

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a malformed token", func() {
			rec := a.do(http.MethodGet, "/api/v1/warehouses", "garbage", nil)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Context("Warehouses", func() {
		It("should list the seeded warehouses without a token", func() {
			rec := a.do(http.MethodGet, "/api/v1/warehouses", "", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			warehouses := decode[[]v1.Warehouse](rec)
			Expect(warehouses).To(HaveLen(5))
			Expect(warehouses[0].Name).To(Equal("Hermosillo"))
		})

		It("should forbid anonymous writes", func() {
			rec := a.do(http.MethodPost, "/api/v1/warehouses", "", v1.WarehouseWrite{Name: "Magdalena"})

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		// Given an admin token
		// When a warehouse is created
		// Then the names endpoint should list it right away
		It("should create a warehouse and refresh the names", func() {
			// Arrange
			token := a.login("ana", "admin-pass")

			// Act
			rec := a.do(http.MethodPost, "/api/v1/warehouses", token, v1.WarehouseWrite{Name: "Magdalena"})

			// Assert
			Expect(rec.Code).To(Equal(http.StatusCreated))
			created := decode[v1.Warehouse](rec)
			Expect(created.Id).To(Equal("6"))
			Expect(created.ModifiedBy).To(Equal("ana"))

			names := decode[v1.WarehouseNames](a.do(http.MethodGet, "/api/v1/warehouses/names", "", nil))
			Expect(names.Names).To(ContainElement("Magdalena"))

			next := decode[v1.NextWarehouseID](a.do(http.MethodGet, "/api/v1/warehouses/next-id", "", nil))
			Expect(next.Id).To(Equal("7"))
		})

		It("should answer 409 for a duplicate name", func() {
			token := a.login("ana", "admin-pass")

			rec := a.do(http.MethodPost, "/api/v1/warehouses", token, v1.WarehouseWrite{Name: "Caborca"})

			Expect(rec.Code).To(Equal(http.StatusConflict))
		})

		It("should answer 404 when renaming an unknown warehouse", func() {
			token := a.login("ana", "admin-pass")

			rec := a.do(http.MethodPut, "/api/v1/warehouses/99", token, v1.WarehouseWrite{Name: "Ghost"})

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should delete a warehouse", func() {
			token := a.login("ana", "admin-pass")

			rec := a.do(http.MethodDelete, "/api/v1/warehouses/5", token, nil)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			names := decode[v1.WarehouseNames](a.do(http.MethodGet, "/api/v1/warehouses/names", "", nil))
			Expect(names.Names).NotTo(ContainElement("Nogales"))
		})
	})

	Context("Products", func() {
		var token string

		BeforeEach(func() {
			token = a.login("pedro", "products-pass")
		})

		It("should create and list a product", func() {
			rec := a.do(http.MethodPost, "/api/v1/products", token, v1.ProductWrite{
				Id: "p1", Name: "Desk", Price: "19.99", Quantity: "4", Department: "Mobiliario", Warehouse: "Caborca",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			list := decode[v1.ProductListResponse](a.do(http.MethodGet, "/api/v1/products?warehouse=Caborca", "", nil))
			Expect(list.Total).To(Equal(1))
			Expect(list.PageCount).To(Equal(1))
			Expect(list.Products[0].Price).To(Equal("19.99"))
			Expect(list.Products[0].Warehouse).To(Equal("Caborca"))
			Expect(list.Products[0].ModifiedBy).To(Equal("pedro"))
		})

		// Given a product priced with three decimals
		// When it is created and read back by id
		// Then the price should keep every digit
		It("should return the stored price without rounding", func() {
			rec := a.do(http.MethodPost, "/api/v1/products", token, v1.ProductWrite{
				Id: "p9", Name: "Tornillo", Price: "19.999", Quantity: "100", Department: "Materiales", WarehouseId: "1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			list := decode[v1.ProductListResponse](a.do(http.MethodGet, "/api/v1/products?id=p9", "", nil))
			Expect(list.Products).To(HaveLen(1))
			Expect(list.Products[0].Price).To(Equal("19.999"))

			rec = a.do(http.MethodPut, "/api/v1/products/p9", token, v1.ProductWrite{
				Name: "Tornillo", Price: list.Products[0].Price, Quantity: "99", Department: "Materiales", WarehouseId: "1",
			})
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			list = decode[v1.ProductListResponse](a.do(http.MethodGet, "/api/v1/products?id=p9", "", nil))
			Expect(list.Products[0].Price).To(Equal("19.999"))
		})

		It("should answer 400 for an unparsable price", func() {
			rec := a.do(http.MethodPost, "/api/v1/products", token, v1.ProductWrite{
				Name: "Desk", Price: "cheap", Quantity: "4", Department: "Mobiliario", WarehouseId: "1",
			})

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 400 for an unparsable filter bound", func() {
			rec := a.do(http.MethodGet, "/api/v1/products?priceMin=abc", "", nil)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should forbid warehouse writes for the products role", func() {
			rec := a.do(http.MethodPost, "/api/v1/warehouses", token, v1.WarehouseWrite{Name: "Magdalena"})

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("should update and delete a product", func() {
			rec := a.do(http.MethodPost, "/api/v1/products", token, v1.ProductWrite{
				Id: "p1", Name: "Desk", Price: "10", Quantity: "1", Department: "Mobiliario", WarehouseId: "1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = a.do(http.MethodPut, "/api/v1/products/p1", token, v1.ProductWrite{
				Name: "Desk", Price: "12", Quantity: "2", Department: "Mobiliario", WarehouseId: "2",
			})
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			rec = a.do(http.MethodDelete, "/api/v1/products/p1", token, nil)
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			rec = a.do(http.MethodDelete, "/api/v1/products/p1", token, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should export the listing as a workbook", func() {
			rec := a.do(http.MethodPost, "/api/v1/products", token, v1.ProductWrite{
				Id: "p1", Name: "Desk", Price: "10", Quantity: "1", Department: "Mobiliario", WarehouseId: "1",
			})
			Expect(rec.Code).To(Equal(http.StatusCreated))

			rec = a.do(http.MethodGet, "/api/v1/products/export", "", nil)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Header().Get("Content-Type")).To(Equal(export.ContentType))
			f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
			Expect(err).NotTo(HaveOccurred())
			defer f.Close()
			rows, err := f.GetRows(export.ProductsSheet)
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})
	})

	It("should expose prometheus metrics", func() {
		a.do(http.MethodGet, "/api/v1/warehouses", "", nil)

		rec := a.do(http.MethodGet, "/metrics", "", nil)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(rec.Body.String()).To(ContainSubstring("inventory_http_requests_total"))
	})
})
