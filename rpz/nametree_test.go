package rpz

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("nameTree", func() {
	var tree *nameTree

	BeforeEach(func() {
		tree = newNameTree()
	})

	Describe("wildcard contribution", func() {
		BeforeEach(func() {
			tree.insert("*.evil.example.", pair{d: Zone(2)})
		})

		It("matches a descendant of the wildcard owner", func() {
			got := tree.lookup("foo.evil.example.", AllZones, directionD)
			Expect(got.Test(2)).Should(BeTrue())
		})

		It("does not match the bare wildcard owner name itself", func() {
			got := tree.lookup("evil.example.", AllZones, directionD)
			Expect(got.Test(2)).Should(BeFalse())
		})
	})

	Describe("exact contribution", func() {
		BeforeEach(func() {
			tree.insert("blocked.example.", pair{d: Zone(3)})
		})

		It("matches the exact name", func() {
			got := tree.lookup("blocked.example.", AllZones, directionD)
			Expect(got.Test(3)).Should(BeTrue())
		})

		It("does not match an unrelated descendant", func() {
			got := tree.lookup("sub.blocked.example.", AllZones, directionD)
			Expect(got.Test(3)).Should(BeFalse())
		})
	})

	Describe("delete", func() {
		It("is the inverse of insert", func() {
			tree.insert("blocked.example.", pair{d: Zone(3)})
			Expect(tree.delete("blocked.example.", pair{d: Zone(3)})).Should(Equal(resultOK))

			got := tree.lookup("blocked.example.", AllZones, directionD)
			Expect(got.Test(3)).Should(BeFalse())
		})
	})

	Describe("caller mask", func() {
		It("restricts the result to the caller's zbits", func() {
			tree.insert("blocked.example.", pair{d: Zone(3)})

			got := tree.lookup("blocked.example.", Zone(1), directionD)
			Expect(got.IsZero()).Should(BeTrue())
		})
	})
})
