package log

import (
	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("EntrySink", func() {
	var (
		entry *logrus.Entry
		hook  *MockLoggerHook
		sink  EntrySink
	)

	BeforeEach(func() {
		entry, hook = NewMockEntry()
		entry.Logger.SetLevel(logrus.TraceLevel)
		sink = NewEntrySink(entry)
	})

	It("routes a line through to the entry's logger", func() {
		sink.Logf(LevelWarn, "rpz", "zone %d: %s", 3, "reload failed")

		Expect(hook.Messages).Should(ContainElement("zone 3: reload failed"))
	})

	It("falls back to info for an unrecognized level", func() {
		sink.Logf(Level(99), "rpz", "unrecognized level line")

		Expect(hook.Messages).Should(ContainElement("unrecognized level line"))
	})
})
