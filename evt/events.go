package evt

import (
	"github.com/asaskevich/EventBus"
)

const (
	// ZoneLoadBegunEvent fires when a zone load cycle starts. Parameters: zone ordinal, load id (string)
	ZoneLoadBegunEvent = "rpz:loadBegun"

	// ZoneReadyEvent fires when a zone load cycle completes successfully. Parameters: zone ordinal, load id (string)
	ZoneReadyEvent = "rpz:ready"

	// ZoneLoadFailedEvent fires when Ready() aborts a load. Parameters: zone ordinal, load id (string), error
	ZoneLoadFailedEvent = "rpz:loadFailed"

	// ZoneTriggerCountChanged fires whenever a zone's trigger counters change. Parameters: zone ordinal, kind, count
	ZoneTriggerCountChanged = "rpz:triggerCountChanged"

	// QnameSkipRecurseChanged fires whenever have.qname_skip_recurse is recomputed. Parameter: new mask (uint64)
	QnameSkipRecurseChanged = "rpz:qnameSkipRecurseChanged"
)

// nolint
var evtBus = EventBus.New()

// Bus returns the global bus instance
func Bus() EventBus.Bus {
	return evtBus
}
