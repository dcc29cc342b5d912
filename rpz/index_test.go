package rpz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Index", func() {
	var idx *Index

	BeforeEach(func() {
		idx = NewIndex(false, nil)
		Expect(idx.RegisterZone("zone0.rpz.", 0, "rpz-ip", "rpz-nsip", "rpz-nsdname", "rpz-passthru")).Should(Succeed())
		Expect(idx.RegisterZone("zone1.rpz.", 1, "rpz-ip", "rpz-nsip", "rpz-nsdname", "rpz-passthru")).Should(Succeed())
	})

	loadZone := func(zone uint8, owners ...string) {
		h, err := idx.Begin(zone)
		Expect(err).Should(Succeed())

		for _, o := range owners {
			Expect(h.Add(o)).Should(Succeed())
		}

		Expect(h.Ready()).Should(Succeed())
	}

	Describe("first load", func() {
		It("makes a qname trigger queryable", func() {
			loadZone(0, "evil.example.zone0.rpz.")

			got := idx.FindName(Qname, AllZones, "evil.example.")
			Expect(got.Test(0)).Should(BeTrue())
		})

		It("makes an IP trigger queryable", func() {
			loadZone(0, "32.1.1.1.10.rpz-ip.zone0.rpz.")

			m, ok := idx.FindIPv4(AnswerIP, AllZones, 10, 1, 1, 1)
			Expect(ok).Should(BeTrue())
			Expect(m.Zone).Should(Equal(uint8(0)))
			Expect(m.Prefix).Should(Equal(uint8(32)))
		})
	})

	Describe("reload preserves other zones", func() {
		It("keeps zone 1's triggers intact while zone 0 reloads", func() {
			loadZone(0, "old.example.zone0.rpz.")
			loadZone(1, "kept.example.zone1.rpz.")

			// reload zone 0: drop the old trigger, add a new one
			h, err := idx.Begin(0)
			Expect(err).Should(Succeed())
			Expect(h.Delete("old.example.zone0.rpz.")).Should(Succeed())
			Expect(h.Add("new.example.zone0.rpz.")).Should(Succeed())
			Expect(h.Ready()).Should(Succeed())

			Expect(idx.FindName(Qname, AllZones, "kept.example.").Test(1)).Should(BeTrue())
			Expect(idx.FindName(Qname, AllZones, "old.example.").Test(0)).Should(BeFalse())
			Expect(idx.FindName(Qname, AllZones, "new.example.").Test(0)).Should(BeTrue())
		})
	})
})
