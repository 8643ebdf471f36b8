package main

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	srvErrors "github.com/unison/inventory-manager/pkg/errors"
)

var _ = Describe("inventory CLI", func() {
	var ws *workspace

	BeforeEach(func() {
		ws = newWorkspace()
		setEnv("INVENTORY_AUTH_BCRYPT_COST", "4")
	})

	It("should create the schema and seed the baseline warehouses", func() {
		out, err := ws.run("migrate")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("5 warehouses"))

		out, err = ws.run("warehouse", "names")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("Caborca\nGuaymas\nHermosillo\nNogales\nSonoita\n"))

		out, err = ws.run("warehouse", "next-id")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("6\n"))
	})

	It("should reject writes from an anonymous session", func() {
		_, err := ws.run("warehouse", "add", "Obregon")
		Expect(srvErrors.IsForbiddenError(err)).To(BeTrue())
	})

	It("should write as a logged-in user", func() {
		_, err := ws.run("user", "add", "ana", "--new-password", "secret", "--role", "almacenes")
		Expect(err).NotTo(HaveOccurred())

		out, err := ws.run("--user", "ana", "--password", "secret", "warehouse", "add", "Obregon")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("created with id 6"))

		out, err = ws.run("warehouse", "list", "--name", "obre")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Obregon"))
		Expect(out).To(ContainSubstring("ana"))
	})

	It("should refuse a wrong password", func() {
		_, err := ws.run("user", "add", "ana", "--new-password", "secret", "--role", "admin")
		Expect(err).NotTo(HaveOccurred())

		_, err = ws.run("--user", "ana", "--password", "nope", "warehouse", "names")
		Expect(srvErrors.IsInvalidCredentialsError(err)).To(BeTrue())
	})

	Context("with authentication disabled", func() {
		BeforeEach(func() {
			setEnv("INVENTORY_AUTH_ENABLED", "false")
		})

		It("should manage products as the local admin", func() {
			_, err := ws.run("product", "add",
				"--id", "p-1", "--name", "Escritorio", "--price", "1499.90", "--quantity", "3",
				"--department", "Furniture", "--warehouse", "Guaymas")
			Expect(err).NotTo(HaveOccurred())

			out, err := ws.run("product", "list", "--warehouse", "Guaymas", "--price-min", "1000")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("Escritorio"))
			Expect(out).To(ContainSubstring("1499.90"))
			Expect(out).To(ContainSubstring("Mobiliario"))
			Expect(out).To(ContainSubstring("local"))

			_, err = ws.run("product", "update", "p-1",
				"--name", "Escritorio", "--price", "1299.90", "--quantity", "2",
				"--department", "Mobiliario", "--warehouse-id", "3")
			Expect(err).NotTo(HaveOccurred())

			out, err = ws.run("product", "export", "--out", ws.path("products.xlsx"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("1 products written"))
			Expect(ws.path("products.xlsx")).To(BeAnExistingFile())

			_, err = ws.run("product", "delete", "p-1")
			Expect(err).NotTo(HaveOccurred())

			out, err = ws.run("product", "list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("no products found"))
		})

		It("should honour the delete policy flag", func() {
			_, err := ws.run("product", "add",
				"--name", "Filamento", "--price", "350", "--quantity", "10",
				"--department", "Impresion3D", "--warehouse-id", "2")
			Expect(err).NotTo(HaveOccurred())

			_, err = ws.run("--delete-policy", "restrict", "warehouse", "delete", "2")
			Expect(srvErrors.IsConstraintViolationError(err)).To(BeTrue())

			_, err = ws.run("--delete-policy", "cascade", "warehouse", "delete", "2")
			Expect(err).NotTo(HaveOccurred())

			out, err := ws.run("product", "list")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("no products found"))
		})

		It("should not resurrect a deleted seed warehouse", func() {
			_, err := ws.run("warehouse", "delete", "5")
			Expect(err).NotTo(HaveOccurred())

			out, err := ws.run("warehouse", "names")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).NotTo(ContainSubstring("Nogales"))

			out, err = ws.run("warehouse", "next-id")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("6\n"))
		})

		It("should export warehouses", func() {
			out, err := ws.run("warehouse", "export", "-o", ws.path("warehouses.xlsx"))
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("5 warehouses written"))

			info, err := os.Stat(ws.path("warehouses.xlsx"))
			Expect(err).NotTo(HaveOccurred())
			Expect(info.Size()).To(BeNumerically(">", 0))
		})
	})

	It("should reject an unparsable bound before opening the database", func() {
		_, err := ws.run("product", "list", "--quantity-max", "many")
		Expect(srvErrors.IsValidationError(err)).To(BeTrue())
		Expect(ws.path("inventory.duckdb")).NotTo(BeAnExistingFile())
	})

	It("should reject an unknown delete policy", func() {
		_, err := ws.run("--delete-policy", "shred", "warehouse", "names")
		Expect(err).To(MatchError(ContainSubstring("unknown delete policy")))
	})
})
