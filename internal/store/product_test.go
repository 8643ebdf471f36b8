package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

var _ = Describe("ProductStore", func() {
	var (
		ctx      context.Context
		s        *store.Store
		db       *sql.DB
		identity *fakeIdentity
	)

	BeforeEach(func() {
		ctx = context.Background()
		identity = &fakeIdentity{name: "ana"}
		s, db = newTestStore(ctx, identity)
		Expect(s.SeedInitialWarehouses(ctx)).To(Succeed())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Insert", func() {
		// Given a valid product form for warehouse 2
		// When we insert it
		// Then it should be listed with the warehouse name and audit stamps
		It("should store the product with its warehouse name", func() {
			// Act
			p, err := s.Product().Insert(ctx, productForm("p1", "Desk", "19.99", "4", "2"))

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(p.WarehouseName).To(Equal("Caborca"))

			products, err := s.Product().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			got := products[0]
			Expect(got.ID).To(Equal("p1"))
			Expect(got.Price.String()).To(Equal("19.99"))
			Expect(got.Quantity).To(Equal(int64(4)))
			Expect(got.Department).To(Equal(models.DepartmentFurniture))
			Expect(got.WarehouseName).To(Equal("Caborca"))
			Expect(got.CreatedAt).To(Equal(fixedStamp))
			Expect(got.ModifiedAt).To(Equal(got.CreatedAt))
			Expect(got.ModifiedBy).To(Equal("ana"))
		})

		It("should read back a price with three decimals unchanged", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Screw", "19.999", "3", "1"))
			Expect(err).NotTo(HaveOccurred())

			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{ID: "p1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Price.Equal(decimal.RequireFromString("19.999"))).To(BeTrue())
			Expect(products[0].PriceText()).To(Equal("19.999"))
		})

		It("should generate an id when none is given", func() {
			p, err := s.Product().Insert(ctx, productForm("", "Desk", "1", "1", "1"))

			Expect(err).NotTo(HaveOccurred())
			Expect(p.ID).To(HaveLen(36))

			exists, err := s.Product().Exists(ctx, p.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("should read the acting user at write time", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "1", "1", "1"))
			Expect(err).NotTo(HaveOccurred())

			identity.name = "luis"
			_, err = s.Product().Insert(ctx, productForm("p2", "Lamp", "1", "1", "1"))
			Expect(err).NotTo(HaveOccurred())

			products, err := s.Product().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(products[0].ModifiedBy).To(Equal("ana"))
			Expect(products[1].ModifiedBy).To(Equal("luis"))
		})

		DescribeTable("should reject unparsable or negative numbers with a format error",
			func(price, quantity string) {
				_, err := s.Product().Insert(ctx, productForm("p1", "Desk", price, quantity, "1"))

				Expect(err).To(HaveOccurred())
				Expect(srvErrors.IsFormatError(err)).To(BeTrue())

				count, err := s.Product().Count(ctx, store.ProductFilter{})
				Expect(err).NotTo(HaveOccurred())
				Expect(count).To(BeZero())
			},
			Entry("non-numeric price", "abc", "1"),
			Entry("empty price", "", "1"),
			Entry("negative price", "-0.01", "1"),
			Entry("fractional quantity", "1", "1.5"),
			Entry("negative quantity", "1", "-3"),
		)

		It("should reject an unknown warehouse with a constraint violation", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "1", "1", "99"))

			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())
		})

		It("should reject a missing warehouse with a constraint violation", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "1", "1", ""))

			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())
		})

		It("should reject a duplicate id with a constraint violation", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "1", "1", "1"))
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Product().Insert(ctx, productForm("p1", "Other", "1", "1", "1"))

			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())
		})
	})

	Context("Update", func() {
		BeforeEach(func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "10", "1", "1"))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should overwrite the editable fields", func() {
			identity.name = "luis"
			form := productForm("p1", "Standing desk", "250.50", "3", "5")
			form.Department = models.DepartmentComputing

			Expect(s.Product().Update(ctx, form)).To(Succeed())

			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{ID: "p1"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Name).To(Equal("Standing desk"))
			Expect(products[0].Price.Equal(decimal.RequireFromString("250.5"))).To(BeTrue())
			Expect(products[0].WarehouseName).To(Equal("Nogales"))
			Expect(products[0].Department).To(Equal(models.DepartmentComputing))
			Expect(products[0].ModifiedBy).To(Equal("luis"))
		})

		It("should return not found for an unknown id", func() {
			err := s.Product().Update(ctx, productForm("nope", "Desk", "1", "1", "1"))

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given no product with id "nope"
		// When it is updated with an unknown warehouse as well
		// Then the missing product should be reported, not the warehouse
		It("should report an unknown id before an unknown warehouse", func() {
			err := s.Product().Update(ctx, productForm("nope", "Desk", "1", "1", "77"))

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
			Expect(srvErrors.IsConstraintViolationError(err)).To(BeFalse())
		})

		It("should reject moving to an unknown warehouse", func() {
			err := s.Product().Update(ctx, productForm("p1", "Desk", "1", "1", "77"))

			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())
		})

		It("should reject a bad quantity before touching the row", func() {
			err := s.Product().Update(ctx, productForm("p1", "Desk", "1", "many", "1"))

			Expect(srvErrors.IsFormatError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		It("should delete an existing product", func() {
			_, err := s.Product().Insert(ctx, productForm("p1", "Desk", "10", "1", "1"))
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Product().Delete(ctx, "p1")).To(Succeed())

			exists, err := s.Product().Exists(ctx, "p1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})

		It("should return not found for an unknown id", func() {
			err := s.Product().Delete(ctx, "nope")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Exists", func() {
		It("should report false for a blank id", func() {
			exists, err := s.Product().Exists(ctx, "  ")

			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			forms := []models.ProductForm{
				{ID: "a", Name: "Oak chair", Price: "45.00", Quantity: "10", Department: models.DepartmentFurniture, WarehouseID: "1"},
				{ID: "b", Name: "PLA filament", Price: "20.50", Quantity: "100", Department: models.Department3DPrinting, WarehouseID: "2"},
				{ID: "c", Name: "Laptop", Price: "899.99", Quantity: "2", Department: models.DepartmentComputing, WarehouseID: "2"},
				{ID: "d", Name: "Chair cushion", Price: "12", Quantity: "0", Department: models.DepartmentFurniture, WarehouseID: "3"},
			}
			for _, f := range forms {
				_, err := s.Product().Insert(ctx, f)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should return every product ordered by name without filters", func() {
			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{})

			Expect(err).NotTo(HaveOccurred())
			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
			}
			Expect(names).To(Equal([]string{"Chair cushion", "Laptop", "Oak chair", "PLA filament"}))
		})

		It("should match names case-insensitively by substring", func() {
			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{Name: "CHAIR"})

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
		})

		It("should match departments case-insensitively", func() {
			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{Department: "mobiliario"})

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
		})

		It("should apply inclusive price and quantity bounds", func() {
			minPrice := decimal.RequireFromString("20.50")
			maxPrice := decimal.RequireFromString("45")
			minQty := int64(10)

			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{
				PriceMin:    &minPrice,
				PriceMax:    &maxPrice,
				QuantityMin: &minQty,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
			Expect(products[0].ID).To(Equal("a"))
			Expect(products[1].ID).To(Equal("b"))
		})

		It("should combine filters with AND", func() {
			maxQty := int64(5)

			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{WarehouseID: "2", QuantityMax: &maxQty})

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].ID).To(Equal("c"))
		})

		It("should match LIKE wildcards in names literally", func() {
			for _, name := range []string{"_", "%", "Oak%chair"} {
				products, err := s.Product().ListFiltered(ctx, store.ProductFilter{Name: name})

				Expect(err).NotTo(HaveOccurred())
				Expect(products).To(BeEmpty(), "filter %q", name)
			}
		})

		It("should treat filter values as data, never as SQL", func() {
			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{Name: "' OR '1'='1"})

			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(BeEmpty())
		})

		It("should page through results and count without paging", func() {
			filter := store.ProductFilter{Limit: 2, Offset: 1}

			products, err := s.Product().ListFiltered(ctx, filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(2))
			Expect(products[0].Name).To(Equal("Laptop"))

			count, err := s.Product().Count(ctx, filter)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(4))
		})
	})

	Context("Seeded inventory", func() {
		// Given the five seeded warehouses
		// When a Widget is stored in warehouse 1 and products are filtered by warehouse and price
		// Then exactly that product should come back with the Hermosillo name
		It("should find the product by warehouse and price range with its warehouse name", func() {
			// Arrange
			_, err := s.Product().Insert(ctx, models.ProductForm{
				Name:        "Widget",
				Price:       "10.50",
				Quantity:    "5",
				Department:  models.DepartmentMaterials,
				WarehouseID: "1",
			})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Product().Insert(ctx, productForm("other", "Gadget", "30", "1", "1"))
			Expect(err).NotTo(HaveOccurred())

			// Act
			priceMin := decimal.NewFromInt(5)
			priceMax := decimal.NewFromInt(20)
			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{
				WarehouseID: "1",
				PriceMin:    &priceMin,
				PriceMax:    &priceMax,
			})

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Name).To(Equal("Widget"))
			Expect(products[0].PriceText()).To(Equal("10.50"))
			Expect(products[0].Quantity).To(Equal(int64(5)))
			Expect(products[0].Department).To(Equal(models.DepartmentMaterials))
			Expect(products[0].WarehouseName).To(Equal("Hermosillo"))
		})

		// Given a product stored in seeded warehouse 2 and the default orphan policy
		// When warehouse 2 is deleted and products are listed by warehouse id 2
		// Then the product should still be returned, with the Unknown warehouse name
		It("should keep listing products of a deleted warehouse by its id", func() {
			_, err := s.Product().Insert(ctx, productForm("p2", "Desk", "10", "1", "2"))
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Warehouse().Delete(ctx, "2")).To(Succeed())

			products, err := s.Product().ListFiltered(ctx, store.ProductFilter{WarehouseID: "2"})
			Expect(err).NotTo(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].ID).To(Equal("p2"))
			Expect(products[0].WarehouseID).To(Equal("2"))
			Expect(products[0].WarehouseName).To(Equal(models.UnknownWarehouse))
		})
	})
})
