package rpz

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/0xERR0R/rpzindex/evt"
	"github.com/0xERR0R/rpzindex/log"

	"github.com/google/uuid"
	"github.com/hako/durafmt"
	"github.com/hashicorp/go-multierror"
	"github.com/miekg/dns"
)

// Index is the dual CIDR/name trigger index for a set of policy zones
// The zero value is not usable; construct with NewIndex.
type Index struct {
	maintMu  sync.Mutex
	searchMu sync.RWMutex

	cidr  *cidrTree
	names *nameTree
	reg   *registry

	loadBegun ZBits

	sink log.Sink
}

// NewIndex constructs an empty index. sink receives diagnostic lines;
// qnameWaitRecurse mirrors the resolver's configuration flag of the same
// name.
func NewIndex(qnameWaitRecurse bool, sink log.Sink) *Index {
	if sink == nil {
		sink = log.NewEntrySink(nil)
	}

	return &Index{
		cidr:  &cidrTree{},
		names: newNameTree(),
		reg:   newRegistry(qnameWaitRecurse),
		sink:  sink,
	}
}

// RegisterZone adds a policy zone's identity to the index. It must be
// called before Begin(zone) and is not itself part of the load protocol.
func (idx *Index) RegisterZone(origin string, ordinal uint8, rpzIP, rpzNsIP, rpzNsdname, passthru string) error {
	if ordinal >= MaxZones {
		return fmt.Errorf("%w: zone ordinal %d >= %d", ErrInternal, ordinal, MaxZones)
	}

	idx.maintMu.Lock()
	defer idx.maintMu.Unlock()

	idx.reg.register(zoneRecord{
		origin:     dns.Fqdn(origin),
		ordinal:    ordinal,
		rpzIP:      rpzIP,
		rpzNsIP:    rpzNsIP,
		rpzNsdname: rpzNsdname,
		passthru:   passthru,
	})

	return nil
}

// LoadHandle is returned by Begin and consumed by Add/Delete/Ready for one
// zone's load cycle.
type LoadHandle struct {
	idx    *Index
	zone   uint8
	loadID string
	shadow bool
	begun  time.Time
	cidr   *cidrTree
	names  *nameTree
}

// Begin starts a load cycle for zone: the zone's first-ever load writes
// straight into the live index; subsequent loads build a shadow index so
// the live data stays queryable until Ready.
func (idx *Index) Begin(zone uint8) (*LoadHandle, error) {
	idx.maintMu.Lock()
	defer idx.maintMu.Unlock()

	if idx.reg.zones[zone] == nil {
		return nil, fmt.Errorf("%w: zone %d not registered", ErrInternal, zone)
	}

	loadID := uuid.NewString()

	var h *LoadHandle

	if !idx.loadBegun.Test(zone) {
		idx.loadBegun = idx.loadBegun.Set(zone)
		h = &LoadHandle{idx: idx, zone: zone, loadID: loadID, shadow: false, cidr: idx.cidr, names: idx.names}
	} else {
		h = &LoadHandle{idx: idx, zone: zone, loadID: loadID, shadow: true, cidr: &cidrTree{}, names: newNameTree()}
	}

	h.begun = time.Now()

	evt.Bus().Publish(evt.ZoneLoadBegunEvent, zone, loadID)

	return h, nil
}

// classified is the result of decoding one owner name's trigger category.
type classified struct {
	kind TriggerKind
	isNS bool
	ip   IPKey
	isIP bool
	name string
}

// classify decodes the name to detect the trigger category from the
// owner's subdomain.
func classify(owner string, zrec *zoneRecord) (classified, error) {
	ownerFqdn := dns.Fqdn(owner)
	origin := zrec.origin

	var rel string

	switch {
	case ownerFqdn == origin:
		rel = ""
	case strings.HasSuffix(ownerFqdn, "."+origin):
		rel = strings.TrimSuffix(ownerFqdn, "."+origin)
	default:
		return classified{}, ErrInvalidName
	}

	if rel == "" {
		return classified{}, ErrInvalidName
	}

	labels := dns.SplitDomainName(rel)
	if len(labels) == 0 {
		return classified{}, ErrInvalidName
	}

	marker := labels[len(labels)-1]
	rest := labels[:len(labels)-1]

	switch {
	case strings.EqualFold(marker, zrec.rpzIP) && zrec.rpzIP != "":
		key, err := DecodeIPKeyLabels(rest)
		if err != nil {
			return classified{}, err
		}

		kind := TriggerIPv4
		if !key.IsIPv4() {
			kind = TriggerIPv6
		}

		return classified{kind: kind, isIP: true, ip: key}, nil

	case strings.EqualFold(marker, zrec.rpzNsIP) && zrec.rpzNsIP != "":
		key, err := DecodeIPKeyLabels(rest)
		if err != nil {
			return classified{}, err
		}

		kind := TriggerNsipv4
		if !key.IsIPv4() {
			kind = TriggerNsipv6
		}

		return classified{kind: kind, isIP: true, isNS: true, ip: key}, nil

	case strings.EqualFold(marker, zrec.rpzNsdname) && zrec.rpzNsdname != "":
		if len(rest) == 0 {
			return classified{}, ErrInvalidName
		}

		return classified{kind: TriggerNsdname, isNS: true, name: dns.Fqdn(strings.Join(rest, "."))}, nil

	default:
		return classified{kind: TriggerQname, name: dns.Fqdn(strings.Join(labels, "."))}, nil
	}
}

func bitsFor(zone uint8, isNS bool) pair {
	if isNS {
		return pair{ns: Zone(zone)}
	}

	return pair{d: Zone(zone)}
}

// Add decodes owner and registers zone's trigger for it. Malformed owners
// are logged and swallowed.
func (h *LoadHandle) Add(owner string) error {
	idx := h.idx

	idx.maintMu.Lock()
	defer idx.maintMu.Unlock()

	zrec := idx.reg.zones[h.zone]

	c, err := classify(owner, zrec)
	if err != nil {
		idx.sink.Logf(log.LevelWarn, "rpz", "zone %d: ignoring malformed trigger owner %q: %v", h.zone, owner, err)
		return nil
	}

	bits := bitsFor(h.zone, c.isNS)

	if !h.shadow {
		idx.searchMu.Lock()
	}

	if c.isIP {
		h.cidr.insert(c.ip, bits)
	} else {
		h.names.insert(c.name, bits)
	}

	if !h.shadow {
		idx.searchMu.Unlock()
	}

	idx.reg.adjust(h.zone, c.kind, 1)
	idx.publishTriggerCount(h.zone, c.kind)

	return nil
}

// Delete decodes owner and removes zone's trigger for it. A name not
// currently present is silently ignored.
func (h *LoadHandle) Delete(owner string) error {
	idx := h.idx

	idx.maintMu.Lock()
	defer idx.maintMu.Unlock()

	zrec := idx.reg.zones[h.zone]

	c, err := classify(owner, zrec)
	if err != nil {
		idx.sink.Logf(log.LevelWarn, "rpz", "zone %d: ignoring malformed trigger owner %q: %v", h.zone, owner, err)
		return nil
	}

	bits := bitsFor(h.zone, c.isNS)

	if !h.shadow {
		idx.searchMu.Lock()
	}

	var res cidrResult
	if c.isIP {
		res = h.cidr.delete(c.ip, bits)
	} else {
		res = h.names.delete(c.name, bits)
	}

	if !h.shadow {
		idx.searchMu.Unlock()
	}

	if res == resultOK {
		idx.reg.adjust(h.zone, c.kind, -1)
		idx.publishTriggerCount(h.zone, c.kind)
	}

	return nil
}

func (idx *Index) publishTriggerCount(zone uint8, k TriggerKind) {
	rec := idx.reg.zones[zone]
	if rec == nil {
		return
	}

	evt.Bus().Publish(evt.ZoneTriggerCountChanged, zone, k.String(), rec.counters.get(k))
}

// Ready completes h's load cycle: first-time loads simply recompute
// counters; shadow loads copy every other zone's live entries in, then
// atomically swap the live trees under the exclusive search lock.
func (h *LoadHandle) Ready() error {
	idx := h.idx
	start := h.begun

	idx.maintMu.Lock()
	defer idx.maintMu.Unlock()

	if !h.shadow {
		idx.reg.recomputeFromTrees(h.cidr, h.names)
		evt.Bus().Publish(evt.ZoneReadyEvent, h.zone, h.loadID)
		idx.logReadyDuration(h.zone, h.loadID, start)

		return nil
	}

	exclude := pair{d: Zone(h.zone), ns: Zone(h.zone)}

	var merr *multierror.Error

	idx.cidr.walk(func(n *cidrNode) {
		bits := n.pair.andNot(exclude)
		if bits.isZero() {
			return
		}

		if res := h.cidr.insert(n.ip, bits); res != resultOK {
			merr = multierror.Append(merr, fmt.Errorf("%w: copying cidr entry during ready", ErrInternal))
		}
	})

	idx.names.walk(func(e walkEntry) {
		h.names.insertLabels(e.labels, e.pair.andNot(exclude), false)
		h.names.insertLabels(e.labels, e.wild.andNot(exclude), true)
	})

	if err := merr.ErrorOrNil(); err != nil {
		evt.Bus().Publish(evt.ZoneLoadFailedEvent, h.zone, h.loadID, err)

		return err
	}

	idx.reg.recomputeFromTrees(h.cidr, h.names)

	idx.searchMu.Lock()
	idx.cidr = h.cidr
	idx.names = h.names
	idx.searchMu.Unlock()

	evt.Bus().Publish(evt.ZoneReadyEvent, h.zone, h.loadID)
	idx.logReadyDuration(h.zone, h.loadID, start)

	return nil
}

// logReadyDuration logs how long a load cycle took from Begin to Ready,
// alongside the zone's post-ready trigger totals.
func (idx *Index) logReadyDuration(zone uint8, loadID string, start time.Time) {
	rec := idx.reg.zones[zone]
	if rec == nil {
		return
	}

	total := rec.counters.qname + rec.counters.nsdname + rec.counters.ipv4 +
		rec.counters.ipv6 + rec.counters.nsipv4 + rec.counters.nsipv6

	idx.sink.Logf(log.LevelInfo, "rpz", "zone %d ready (load %s) in %s, %d triggers total",
		zone, loadID, durafmt.Parse(time.Since(start)).String(), total)
}
