package cache_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unison/inventory-manager/internal/audit"
	"github.com/unison/inventory-manager/internal/cache"
	"github.com/unison/inventory-manager/internal/models"
	"github.com/unison/inventory-manager/internal/store"
)

type fakeSource struct {
	warehouses []models.Warehouse
	err        error
	calls      int
}

func (f *fakeSource) AllWarehouses(context.Context) ([]models.Warehouse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.warehouses, nil
}

var _ = Describe("WarehouseNames", func() {
	var (
		ctx    context.Context
		source *fakeSource
		c      *cache.WarehouseNames
	)

	BeforeEach(func() {
		ctx = context.Background()
		source = &fakeSource{warehouses: []models.Warehouse{
			{ID: "1", Name: "Hermosillo"},
			{ID: "2", Name: "Caborca"},
			{ID: "5", Name: "Nogales"},
		}}
		c = cache.NewWarehouseNames(source)
	})

	It("should be empty before the first rebuild", func() {
		Expect(c.AllNames()).To(BeEmpty())
		Expect(c.NameFor("1")).To(Equal(models.UnknownWarehouse))
	})

	Context("after Rebuild", func() {
		BeforeEach(func() {
			Expect(c.Rebuild(ctx)).To(Succeed())
		})

		It("should resolve ids to names", func() {
			Expect(c.NameFor("2")).To(Equal("Caborca"))
			Expect(c.NameFor(" 2 ")).To(Equal("Caborca"))
		})

		It("should return Unknown for blank or missing ids", func() {
			Expect(c.NameFor("")).To(Equal(models.UnknownWarehouse))
			Expect(c.NameFor("   ")).To(Equal(models.UnknownWarehouse))
			Expect(c.NameFor("9")).To(Equal(models.UnknownWarehouse))
		})

		It("should resolve names to ids exactly", func() {
			id, ok := c.IDFor("Nogales")
			Expect(ok).To(BeTrue())
			Expect(id).To(Equal("5"))

			_, ok = c.IDFor("nogales")
			Expect(ok).To(BeFalse())

			_, ok = c.IDFor(models.UnknownWarehouse)
			Expect(ok).To(BeFalse())
		})

		It("should list names sorted without synthetic entries", func() {
			Expect(c.AllNames()).To(Equal([]string{"Caborca", "Hermosillo", "Nogales"}))
		})

		It("should hand out copies of the name list", func() {
			names := c.AllNames()
			names[0] = "mutated"

			Expect(c.AllNames()[0]).To(Equal("Caborca"))
		})

		// Given a cache built from three warehouses
		// When the source fails during the next rebuild
		// Then the error is returned and the previous view is kept
		It("should keep the previous snapshot when the source fails", func() {
			// Arrange
			source.err = errors.New("disk gone")

			// Act
			err := c.Rebuild(ctx)

			// Assert
			Expect(err).To(MatchError("disk gone"))
			Expect(c.NameFor("1")).To(Equal("Hermosillo"))
			Expect(c.AllNames()).To(HaveLen(3))
		})

		It("should leave earlier snapshots untouched by later rebuilds", func() {
			before := c.Snapshot()
			source.warehouses = []models.Warehouse{{ID: "1", Name: "Renamed"}}

			Expect(c.Rebuild(ctx)).To(Succeed())

			Expect(before.NameFor("1")).To(Equal("Hermosillo"))
			Expect(c.NameFor("1")).To(Equal("Renamed"))
			Expect(c.NameFor("2")).To(Equal(models.UnknownWarehouse))
		})
	})

	Context("backed by the store", func() {
		It("should reflect the seeded warehouses", func() {
			db, err := store.NewDB(":memory:")
			Expect(err).NotTo(HaveOccurred())
			defer db.Close()

			stamper, err := audit.NewStamper(nil, "")
			Expect(err).NotTo(HaveOccurred())
			s := store.NewStore(db, stamper)
			Expect(s.CreateSchema(ctx)).To(Succeed())
			Expect(s.SeedInitialWarehouses(ctx)).To(Succeed())

			names := cache.NewWarehouseNames(s.Warehouse())
			Expect(names.Rebuild(ctx)).To(Succeed())

			Expect(names.AllNames()).To(Equal([]string{"Caborca", "Guaymas", "Hermosillo", "Nogales", "Sonoita"}))
			Expect(names.NameFor("4")).To(Equal("Sonoita"))
		})
	})
})
