package rpz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecodeCNAME", func() {
	zrec := &zoneRecord{origin: "zone0.rpz.", passthru: "rpz-passthru"}

	It("decodes the root target as NXDOMAIN", func() {
		Expect(DecodeCNAME(zrec, ".", "")).Should(Equal(PolicyNXDOMAIN))
	})

	It("decodes a bare wildcard target as NODATA", func() {
		Expect(DecodeCNAME(zrec, "*.", "")).Should(Equal(PolicyNODATA))
	})

	It("decodes a wildcard CNAME target as WILDCNAME", func() {
		Expect(DecodeCNAME(zrec, "*.garden.net.", "")).Should(Equal(PolicyWILDCNAME))
	})

	It("decodes the zone's passthru sentinel as PASSTHRU", func() {
		Expect(DecodeCNAME(zrec, "rpz-passthru.zone0.rpz.", "")).Should(Equal(PolicyPASSTHRU))
	})

	It("decodes a self-referential target as PASSTHRU", func() {
		Expect(DecodeCNAME(zrec, "self.example.", "self.example.")).Should(Equal(PolicyPASSTHRU))
	})

	It("decodes any other target as RECORD", func() {
		Expect(DecodeCNAME(zrec, "real-target.example.", "")).Should(Equal(PolicyRECORD))
	})
})

var _ = Describe("Str2Policy/Policy2Str", func() {
	It("round-trips every known policy string", func() {
		for _, s := range []string{"given", "disabled", "passthru", "nxdomain", "nodata", "cname"} {
			Expect(Policy2Str(Str2Policy(s))).Should(Equal(s))
		}
	})

	It("maps the legacy no-op alias to passthru", func() {
		Expect(Str2Policy("no-op")).Should(Equal(ZonePolicyPassthru))
	})

	It("maps an unparseable string to error", func() {
		Expect(Str2Policy("bogus")).Should(Equal(ZonePolicyError))
	})
})
