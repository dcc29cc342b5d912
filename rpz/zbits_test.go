package rpz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ZBits", func() {
	Describe("Set/Test/Clear", func() {
		It("tracks individual zone membership", func() {
			var zb ZBits

			zb = zb.Set(0).Set(5)
			Expect(zb.Test(0)).Should(BeTrue())
			Expect(zb.Test(5)).Should(BeTrue())
			Expect(zb.Test(1)).Should(BeFalse())

			zb = zb.Clear(0)
			Expect(zb.Test(0)).Should(BeFalse())
			Expect(zb.Test(5)).Should(BeTrue())
		})
	})

	Describe("Lowest", func() {
		It("returns the lowest ordinal set, preferring higher priority", func() {
			zb := Zone(3).Union(Zone(1)).Union(Zone(7))

			z, ok := Lowest(zb)
			Expect(ok).Should(BeTrue())
			Expect(z).Should(Equal(uint8(1)))
		})

		It("reports not-ok for an empty set", func() {
			_, ok := Lowest(ZBits(0))
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("MaskBelow", func() {
		It("covers every zone of strictly higher priority", func() {
			m := MaskBelow(3)
			Expect(m.Test(0)).Should(BeTrue())
			Expect(m.Test(1)).Should(BeTrue())
			Expect(m.Test(2)).Should(BeTrue())
			Expect(m.Test(3)).Should(BeFalse())
		})

		It("is zero for zone 0", func() {
			Expect(MaskBelow(0)).Should(Equal(ZBits(0)))
		})
	})

	Describe("maskBelowOrEqualLowest", func() {
		It("keeps the lowest matching zone and everything above it", func() {
			h := Zone(2).Union(Zone(5))

			m := maskBelowOrEqualLowest(h)
			Expect(m.Test(0)).Should(BeTrue())
			Expect(m.Test(1)).Should(BeTrue())
			Expect(m.Test(2)).Should(BeTrue())
			Expect(m.Test(3)).Should(BeFalse())
		})

		It("is all-ones when nothing matched", func() {
			Expect(maskBelowOrEqualLowest(0)).Should(Equal(AllZones))
		})
	})
})
