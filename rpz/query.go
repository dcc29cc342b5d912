package rpz

import (
	"strings"

	"github.com/miekg/dns"
)

// Match is the outcome of a successful find-by-ip.
type Match struct {
	Zone   uint8
	Owner  string
	Prefix uint8
}

// FindIPv4 looks up a 32-bit address for kind (answer-IP or NS-IP),
// restricted to zbits, and returns the winning zone, its owner name and
// the matched prefix length.
func (idx *Index) FindIPv4(kind IPKind, zbits ZBits, o0, o1, o2, o3 byte) (Match, bool) {
	return idx.findIP(kind, zbits, NewIPv4Key(o0, o1, o2, o3, 32))
}

// FindIPv6 looks up a 128-bit address for kind, restricted to zbits.
func (idx *Index) FindIPv6(kind IPKind, zbits ZBits, words [8]uint16) (Match, bool) {
	return idx.findIP(kind, zbits, NewIPv6Key(words, 128))
}

func (idx *Index) findIP(kind IPKind, zbits ZBits, addr IPKey) (Match, bool) {
	idx.searchMu.RLock()
	defer idx.searchMu.RUnlock()

	have := idx.reg.have

	var restrict ZBits
	if kind == NsIP {
		restrict = have.nsip()
	} else {
		restrict = have.ip()
	}

	zbits &= restrict
	if zbits.IsZero() {
		return Match{}, false
	}

	var live pair
	if kind == NsIP {
		live.ns = zbits
	} else {
		live.d = zbits
	}

	res := idx.cidr.lookup(addr, live)
	if res.result != resultOK {
		return Match{}, false
	}

	var found ZBits
	if kind == NsIP {
		found = res.node.pair.ns
	} else {
		found = res.node.pair.d
	}

	z, ok := Lowest(found & zbits)
	if !ok {
		return Match{}, false
	}

	owner := EncodeIPKeyLabels(res.node.ip)
	prefix := res.node.ip.prefix
	if res.node.ip.IsIPv4() {
		prefix -= v4MappedPrefix
	}

	return Match{Zone: z, Owner: strings.Join(owner, "."), Prefix: prefix}, true
}

// FindName looks up name for kind (qname or nsdname), restricted to
// zbits, and returns the union of candidate zones.
// No priority trimming is applied; the caller picks the lowest ordinal.
func (idx *Index) FindName(kind NameKind, zbits ZBits, name string) ZBits {
	idx.searchMu.RLock()
	defer idx.searchMu.RUnlock()

	have := idx.reg.have

	var restrict ZBits
	dir := directionD

	if kind == Nsdname {
		restrict = have.nsdname
		dir = directionNS
	} else {
		restrict = have.qname
	}

	zbits &= restrict
	if zbits.IsZero() {
		return 0
	}

	return idx.names.lookup(name, zbits, dir)
}

// DecodeCNAME classifies a CNAME target's decode-target action: it checks
// target (the policy record's CNAME target name) against zone's passthru
// sentinel and selfName (the trigger's own owner name, for the obsolete
// self-loopback form).
func DecodeCNAME(zrec *zoneRecord, target string, selfName string) Policy {
	target = dns.Fqdn(target)

	if target == "." {
		return PolicyNXDOMAIN
	}

	labels := dns.SplitDomainName(strings.TrimSuffix(target, "."))

	if len(labels) == 1 && labels[0] == "*" {
		return PolicyNODATA
	}

	if len(labels) > 1 && labels[0] == "*" {
		return PolicyWILDCNAME
	}

	if zrec != nil && strings.EqualFold(target, dns.Fqdn(zrec.passthru+"."+zrec.origin)) {
		return PolicyPASSTHRU
	}

	if selfName != "" && strings.EqualFold(target, dns.Fqdn(selfName)) {
		return PolicyPASSTHRU
	}

	return PolicyRECORD
}

// DecodeCNAME is exposed on Index so callers don't need zoneRecord's
// unexported fields; it looks up zone's record internally.
func (idx *Index) DecodeCNAME(zone uint8, target, selfName string) Policy {
	idx.maintMu.Lock()
	zrec := idx.reg.zones[zone]
	idx.maintMu.Unlock()

	return DecodeCNAME(zrec, target, selfName)
}

// Str2Policy parses a configured policy string (policy string
// parsing").
func Str2Policy(text string) ZonePolicy {
	return str2policy(text)
}

// Policy2Str is the inverse of Str2Policy.
func Policy2Str(p ZonePolicy) string {
	return policy2str(p)
}

// Type2Str renders a TriggerKind the way the resolver logs it.
func Type2Str(k TriggerKind) string {
	return k.String()
}
