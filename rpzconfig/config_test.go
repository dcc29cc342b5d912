package rpzconfig

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	Describe("Parse", func() {
		It("applies defaults to an empty document", func() {
			cfg, err := Parse([]byte(``))
			Expect(err).Should(Succeed())

			Expect(cfg.QnameWaitRecurse).Should(BeTrue())
			Expect(cfg.Zones).Should(BeEmpty())
		})

		It("applies per-zone defaults while keeping explicit values", func() {
			doc := []byte(`
qnameWaitRecurse: false
zones:
  - origin: rpz.example.
    ordinal: 0
  - origin: rpz2.example.
    ordinal: 1
    rpzIp: custom-rpz-ip
`)

			cfg, err := Parse(doc)
			Expect(err).Should(Succeed())

			Expect(cfg.QnameWaitRecurse).Should(BeFalse())
			Expect(cfg.Zones).Should(HaveLen(2))

			first := cfg.Zones[0]
			Expect(first.Origin).Should(Equal("rpz.example."))
			Expect(first.RpzIP).Should(Equal("rpz-ip"))
			Expect(first.RpzNsIP).Should(Equal("rpz-nsip"))
			Expect(first.RpzNsdname).Should(Equal("rpz-nsdname"))
			Expect(first.Passthru).Should(Equal("rpz-passthru"))
			Expect(first.Policy).Should(Equal("given"))

			second := cfg.Zones[1]
			Expect(second.RpzIP).Should(Equal("custom-rpz-ip"))
			Expect(second.RpzNsIP).Should(Equal("rpz-nsip"))
		})

		It("rejects malformed YAML", func() {
			_, err := Parse([]byte("zones: [this is not valid"))
			Expect(err).ShouldNot(Succeed())
		})
	})

	Describe("LoadFile", func() {
		It("reports an error for a missing file", func() {
			_, err := LoadFile("/nonexistent/path/rpz.yaml")
			Expect(err).ShouldNot(Succeed())
		})
	})
})
