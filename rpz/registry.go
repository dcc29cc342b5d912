package rpz

import "github.com/0xERR0R/rpzindex/evt"

// zoneRecord carries one policy zone's identity and the conventional
// subnames used to recognize its trigger categories, plus its per-kind
// trigger counters.
type zoneRecord struct {
	origin    string
	ordinal   uint8
	rpzIP     string
	rpzNsIP   string
	rpzNsdname string
	passthru  string

	counters triggerCounters
}

// triggerCounters tracks how many live triggers a zone has registered per
// kind. A kind's bit in the registry's have.* aggregate is set iff its
// counter is > 0.
type triggerCounters struct {
	qname   int
	nsdname int
	ipv4    int
	ipv6    int
	nsipv4  int
	nsipv6  int
}

func (c *triggerCounters) get(k TriggerKind) int {
	switch k {
	case TriggerQname:
		return c.qname
	case TriggerNsdname:
		return c.nsdname
	case TriggerIPv4:
		return c.ipv4
	case TriggerIPv6:
		return c.ipv6
	case TriggerNsipv4:
		return c.nsipv4
	case TriggerNsipv6:
		return c.nsipv6
	default:
		return 0
	}
}

func (c *triggerCounters) adjust(k TriggerKind, delta int) (crossedZero bool) {
	var field *int

	switch k {
	case TriggerQname:
		field = &c.qname
	case TriggerNsdname:
		field = &c.nsdname
	case TriggerIPv4:
		field = &c.ipv4
	case TriggerIPv6:
		field = &c.ipv6
	case TriggerNsipv4:
		field = &c.nsipv4
	case TriggerNsipv6:
		field = &c.nsipv6
	default:
		return false
	}

	before := *field
	*field += delta
	after := *field

	return (before == 0) != (after == 0)
}

// haveBitmaps is the registry-wide aggregate of which zones have at least
// one live trigger of each kind.
type haveBitmaps struct {
	qname   ZBits
	nsdname ZBits
	ipv4    ZBits
	ipv6    ZBits
	nsipv4  ZBits
	nsipv6  ZBits

	qnameSkipRecurse ZBits
}

func (h *haveBitmaps) ip() ZBits {
	return h.ipv4 | h.ipv6
}

func (h *haveBitmaps) nsip() ZBits {
	return h.nsipv4 | h.nsipv6
}

func (h *haveBitmaps) setBit(k TriggerKind, z uint8, set bool) {
	field := h.fieldFor(k)
	if field == nil {
		return
	}

	if set {
		*field = (*field).Set(z)
	} else {
		*field = (*field).Clear(z)
	}
}

func (h *haveBitmaps) fieldFor(k TriggerKind) *ZBits {
	switch k {
	case TriggerQname:
		return &h.qname
	case TriggerNsdname:
		return &h.nsdname
	case TriggerIPv4:
		return &h.ipv4
	case TriggerIPv6:
		return &h.ipv6
	case TriggerNsipv4:
		return &h.nsipv4
	case TriggerNsipv6:
		return &h.nsipv6
	default:
		return nil
	}
}

// recomputeQnameSkipRecurse: when qnameWaitRecurse is set,
// every zone must wait for recursion. Otherwise a zone may decide purely
// on qname if no zone of equal-or-higher priority has any post-recursion
// trigger kind (ip, nsdname, nsip).
func (h *haveBitmaps) recomputeQnameSkipRecurse(qnameWaitRecurse bool) {
	defer func() { evt.Bus().Publish(evt.QnameSkipRecurseChanged, uint64(h.qnameSkipRecurse)) }()

	if qnameWaitRecurse {
		h.qnameSkipRecurse = 0
		return
	}

	postRecurse := h.ip() | h.nsip() | h.nsdname

	z, ok := Lowest(postRecurse)
	if !ok {
		h.qnameSkipRecurse = AllZones
		return
	}

	h.qnameSkipRecurse = MaskBelow(z)
}

// registry owns every zone's record and the index-wide have.* aggregates.
type registry struct {
	zones            [MaxZones]*zoneRecord
	numZones         uint8
	qnameWaitRecurse bool
	have             haveBitmaps
}

func newRegistry(qnameWaitRecurse bool) *registry {
	return &registry{qnameWaitRecurse: qnameWaitRecurse}
}

func (r *registry) register(z zoneRecord) {
	rec := z
	r.zones[z.ordinal] = &rec

	if int(z.ordinal)+1 > int(r.numZones) {
		r.numZones = z.ordinal + 1
	}
}

// adjust updates zone z's counter for kind k by delta and keeps have.*
// (including qname_skip_recurse) consistent.
func (r *registry) adjust(z uint8, k TriggerKind, delta int) {
	rec := r.zones[z]
	if rec == nil {
		return
	}

	crossed := rec.counters.adjust(k, delta)
	if !crossed {
		return
	}

	r.have.setBit(k, z, rec.counters.get(k) > 0)
	r.have.recomputeQnameSkipRecurse(r.qnameWaitRecurse)
}

// recomputeAll rebuilds have.* from scratch across every registered zone's
// current counters.
func (r *registry) recomputeAll() {
	r.have = haveBitmaps{}

	for z := uint8(0); z < r.numZones; z++ {
		rec := r.zones[z]
		if rec == nil {
			continue
		}

		for _, k := range []TriggerKind{
			TriggerQname, TriggerNsdname, TriggerIPv4, TriggerIPv6, TriggerNsipv4, TriggerNsipv6,
		} {
			if rec.counters.get(k) > 0 {
				r.have.setBit(k, z, true)
			}
		}
	}

	r.have.recomputeQnameSkipRecurse(r.qnameWaitRecurse)
}

// bump increments zone z's counter for kind k by one, ignoring
// unregistered zones. Unlike adjust it does not touch have.*; callers
// recompute that separately once every zone's counters are settled.
func (r *registry) bump(z uint8, k TriggerKind) {
	rec := r.zones[z]
	if rec == nil {
		return
	}

	rec.counters.adjust(k, 1)
}

// recountFromTrees zeroes every registered zone's counters and retallies
// them by walking cidr and names directly, rather than trusting the
// accumulated Add/Delete deltas: a shadow reload's Delete calls run
// against an empty shadow tree and can never decrement what a live zone
// already had, so the accumulated counters drift upward across reloads.
func (r *registry) recountFromTrees(cidr *cidrTree, names *nameTree) {
	for z := uint8(0); z < r.numZones; z++ {
		if rec := r.zones[z]; rec != nil {
			rec.counters = triggerCounters{}
		}
	}

	cidr.walk(func(n *cidrNode) {
		ipKind, nsKind := TriggerIPv4, TriggerNsipv4
		if !n.ip.IsIPv4() {
			ipKind, nsKind = TriggerIPv6, TriggerNsipv6
		}

		forEachZone(n.pair.d, func(z uint8) { r.bump(z, ipKind) })
		forEachZone(n.pair.ns, func(z uint8) { r.bump(z, nsKind) })
	})

	names.walk(func(e walkEntry) {
		forEachZone(e.pair.d, func(z uint8) { r.bump(z, TriggerQname) })
		forEachZone(e.pair.ns, func(z uint8) { r.bump(z, TriggerNsdname) })
		forEachZone(e.wild.d, func(z uint8) { r.bump(z, TriggerQname) })
		forEachZone(e.wild.ns, func(z uint8) { r.bump(z, TriggerNsdname) })
	})
}

// recomputeFromTrees recounts every registered zone's counters from cidr/
// names and then rebuilds have.* (including qname_skip_recurse) from the
// fresh counts. Ready calls this for both the first-time load and the
// shadow-reload path so have.* never trusts stale incremental bookkeeping.
func (r *registry) recomputeFromTrees(cidr *cidrTree, names *nameTree) {
	r.recountFromTrees(cidr, names)
	r.recomputeAll()
}
