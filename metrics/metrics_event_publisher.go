package metrics

import (
	"fmt"

	"github.com/0xERR0R/rpzindex/evt"
	"github.com/0xERR0R/rpzindex/log"

	"github.com/prometheus/client_golang/prometheus"
)

// RegisterEventListeners registers all metric handlers on the event bus
func RegisterEventListeners() {
	registerZoneLifecycleListeners()
	registerTriggerCountListeners()
}

func registerZoneLifecycleListeners() {
	readyCnt := zoneReadyCounter()
	failedCnt := zoneLoadFailedCounter()
	lastReady := lastZoneReadyGauge()

	RegisterMetric(readyCnt)
	RegisterMetric(failedCnt)
	RegisterMetric(lastReady)

	subscribe(evt.ZoneReadyEvent, func(zone uint8, loadID string) {
		readyCnt.WithLabelValues(fmt.Sprintf("%d", zone)).Inc()
		lastReady.WithLabelValues(fmt.Sprintf("%d", zone)).SetToCurrentTime()
	})

	subscribe(evt.ZoneLoadFailedEvent, func(zone uint8, loadID string, err error) {
		failedCnt.WithLabelValues(fmt.Sprintf("%d", zone)).Inc()
	})
}

func zoneReadyCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpz_zone_ready_total",
			Help: "Number of successful Ready() calls per zone",
		}, []string{"zone"},
	)
}

func zoneLoadFailedCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rpz_zone_load_failed_total",
			Help: "Number of aborted loads per zone",
		}, []string{"zone"},
	)
}

func lastZoneReadyGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rpz_zone_last_ready_timestamp",
			Help: "Timestamp of the last successful Ready() per zone",
		}, []string{"zone"},
	)
}

func registerTriggerCountListeners() {
	triggerCnt := triggerCountGauge()

	RegisterMetric(triggerCnt)

	subscribe(evt.ZoneTriggerCountChanged, func(zone uint8, kind string, count int) {
		triggerCnt.WithLabelValues(fmt.Sprintf("%d", zone), kind).Set(float64(count))
	})
}

func triggerCountGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rpz_zone_trigger_count",
			Help: "Number of triggers registered per zone, by kind",
		}, []string{"zone", "kind"},
	)
}

func subscribe(topic string, fn interface{}) {
	if err := evt.Bus().Subscribe(topic, fn); err != nil {
		log.Log().Fatalf("can't subscribe topic '%s': %v", topic, err)
	}
}
