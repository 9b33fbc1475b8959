package item

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Item", func() {
	ginkgo.Describe("NeedsReorder", func() {
		ginkgo.It("should flag stock at or below the reorder level", func() {
			gomega.Expect((&Item{Quantity: 5, ReorderLevel: 5}).NeedsReorder()).To(gomega.BeTrue())
			gomega.Expect((&Item{Quantity: 2, ReorderLevel: 5}).NeedsReorder()).To(gomega.BeTrue())
			gomega.Expect((&Item{Quantity: 6, ReorderLevel: 5}).NeedsReorder()).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("HasExpired", func() {
		now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

		ginkgo.It("should report a passed expiry date", func() {
			past := now.Add(-time.Hour)
			gomega.Expect((&Item{ExpiryDate: &past}).HasExpired(now)).To(gomega.BeTrue())
		})

		ginkgo.It("should not flag a future expiry date", func() {
			future := now.Add(time.Hour)
			gomega.Expect((&Item{ExpiryDate: &future}).HasExpired(now)).To(gomega.BeFalse())
		})

		ginkgo.It("should never flag an item without an expiry date", func() {
			gomega.Expect((&Item{}).HasExpired(now)).To(gomega.BeFalse())
		})
	})
})
