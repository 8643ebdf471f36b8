package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unison/inventory-manager/internal/auth"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/services"
	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

var _ = Describe("WarehouseService", func() {
	var (
		ctx context.Context
		f   *fixture
	)

	BeforeEach(func() {
		ctx = context.Background()
		f = newFixture(ctx)
		f.actAs("ana", auth.RoleAdmin)
	})

	AfterEach(func() {
		f.db.Close()
	})

	Context("Create", func() {
		// Given a cache holding the seeded warehouses
		// When a warehouse is created
		// Then the cache should know the new name before Create returns
		It("should rebuild the cache after the insert", func() {
			w, err := f.warehouses.Create(ctx, "Magdalena")

			Expect(err).NotTo(HaveOccurred())
			Expect(w.ID).To(Equal("6"))
			Expect(w.ModifiedBy).To(Equal("ana"))
			Expect(w.CreatedAt).To(Equal("2024-01-15 00:00:00"))
			Expect(f.names.NameFor("6")).To(Equal("Magdalena"))
			id, ok := f.names.IDFor("Magdalena")
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("6"))
		})

		It("should reject an empty name", func() {
			_, err := f.warehouses.Create(ctx, "")

			Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		})

		It("should surface duplicate names as constraint violations", func() {
			_, err := f.warehouses.Create(ctx, "Caborca")

			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())
			Expect(f.names.AllNames()).To(HaveLen(5))
		})

		It("should forbid roles without warehouse write access", func() {
			f.actAs("pedro", auth.RoleProducts)

			_, err := f.warehouses.Create(ctx, "Magdalena")

			Expect(srvErrors.IsForbiddenError(err)).To(BeTrue())
			_, ok := f.names.IDFor("Magdalena")
			Expect(ok).To(BeFalse())
		})

		It("should use the request principal over the session", func() {
			f.actAs("guest", auth.RoleGuest)
			reqCtx := auth.WithPrincipal(ctx, auth.Principal{Name: "maria", Role: "warehouses"})

			w, err := f.warehouses.Create(reqCtx, "Magdalena")

			Expect(err).NotTo(HaveOccurred())
			Expect(w.ModifiedBy).To(Equal("maria"))
		})
	})

	Context("Rename", func() {
		It("should rebuild the cache after the update", func() {
			Expect(f.warehouses.Rename(ctx, "3", "Guaymas Norte")).To(Succeed())

			Expect(f.names.NameFor("3")).To(Equal("Guaymas Norte"))
			_, ok := f.names.IDFor("Guaymas")
			Expect(ok).To(BeFalse())
		})

		It("should return not found for an unknown id", func() {
			err := f.warehouses.Rename(ctx, "99", "Nowhere")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		// Given a product stored in warehouse 4
		// When warehouse 4 is deleted
		// Then the cache drops it and the product shows Unknown
		It("should rebuild the cache and orphan products", func() {
			// Arrange
			_, err := f.products.Create(ctx, services.ProductInput{
				Name: "Chair", Price: "10", Quantity: "1", Department: "Mobiliario", Warehouse: "Sonoita",
			})
			Expect(err).NotTo(HaveOccurred())

			// Act
			err = f.warehouses.Delete(ctx, "4")

			// Assert
			Expect(err).NotTo(HaveOccurred())
			Expect(f.names.NameFor("4")).To(Equal(models.UnknownWarehouse))
			Expect(f.warehouses.Names()).NotTo(ContainElement("Sonoita"))

			result, err := f.products.List(ctx, services.ProductListParams{})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Products).To(HaveLen(1))
			Expect(result.Products[0].WarehouseName).To(Equal(models.UnknownWarehouse))
		})

		It("should return not found for an unknown id", func() {
			err := f.warehouses.Delete(ctx, "99")

			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		It("should filter by name", func() {
			found, err := f.warehouses.List(ctx, services.WarehouseListParams{Name: "nog"})

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(1))
			Expect(found[0].ID).To(Equal("5"))
		})

		It("should be allowed for guests", func() {
			f.actAs("nobody", auth.RoleGuest)

			found, err := f.warehouses.List(ctx, services.WarehouseListParams{})

			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(HaveLen(5))
		})
	})

	It("should preview the next id", func() {
		id, err := f.warehouses.NextID(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(id).To(Equal("6"))
	})
})
