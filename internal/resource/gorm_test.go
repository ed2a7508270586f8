package resource_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/usahaku/erp-dashboard/internal/resource"
)

type shipment struct {
	ID        int64     `gorm:"primaryKey"`
	Carrier   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (shipment) TableName() string {
	return "shipments"
}

var _ = Describe("Repository", func() {
	var (
		db   *gorm.DB
		repo *resource.Repository[shipment]
		ctx  context.Context
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&shipment{})).To(Succeed())

		repo = resource.NewRepository[shipment](db, "created_at")
		ctx = context.Background()
	})

	Describe("Insert and List", func() {
		It("should list newest first by the order column", func() {
			older := &shipment{Carrier: "JNE", CreatedAt: time.Now().Add(-time.Hour)}
			newer := &shipment{Carrier: "SiCepat", CreatedAt: time.Now()}
			Expect(repo.Insert(ctx, older)).To(Succeed())
			Expect(repo.Insert(ctx, newer)).To(Succeed())

			records, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(2))
			Expect(records[0].Carrier).To(Equal("SiCepat"))
			Expect(records[1].Carrier).To(Equal("JNE"))
		})
	})

	Describe("Update", func() {
		It("should replace the record but keep id and created_at", func() {
			created := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
			existing := &shipment{Carrier: "JNE", CreatedAt: created}
			Expect(repo.Insert(ctx, existing)).To(Succeed())

			replacement := &shipment{Carrier: "Pos Indonesia"}
			Expect(repo.Update(ctx, existing.ID, replacement)).To(Succeed())

			Expect(replacement.ID).To(Equal(existing.ID))
			Expect(replacement.CreatedAt.Unix()).To(Equal(created.Unix()))

			records, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(HaveLen(1))
			Expect(records[0].ID).To(Equal(existing.ID))
			Expect(records[0].Carrier).To(Equal("Pos Indonesia"))
			Expect(records[0].CreatedAt.Unix()).To(Equal(created.Unix()))
		})

		It("should report a missing record", func() {
			err := repo.Update(ctx, 42, &shipment{Carrier: "JNE"})
			Expect(err).To(MatchError(resource.ErrNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove the record", func() {
			existing := &shipment{Carrier: "JNE"}
			Expect(repo.Insert(ctx, existing)).To(Succeed())
			Expect(repo.Delete(ctx, existing.ID)).To(Succeed())

			records, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(records).To(BeEmpty())
		})

		It("should report a missing record", func() {
			Expect(repo.Delete(ctx, 42)).To(MatchError(resource.ErrNotFound))
		})
	})
})
