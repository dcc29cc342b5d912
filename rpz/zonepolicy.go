package rpz

import "strings"

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

// ZonePolicy is a zone's configured override mode, as written in its
// configuration ENUM(
// given // use whatever action the zone's records encode (no override)
// disabled // the zone is loaded but never applies
// passthru // never override, always let the real answer through
// nxdomain // always synthesize NXDOMAIN
// nodata // always synthesize NODATA
// cname // always follow the record's CNAME target
// error // the configured string didn't parse
// )
type ZonePolicy int

// str2policy maps a policy string to a ZonePolicy, case-insensitively, with
// "no-op" accepted as a legacy alias for "passthru". An unparseable string
// maps to ZonePolicyError, not an error return.
func str2policy(text string) ZonePolicy {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "given":
		return ZonePolicyGiven
	case "disabled":
		return ZonePolicyDisabled
	case "passthru":
		return ZonePolicyPassthru
	case "no-op":
		return ZonePolicyPassthru
	case "nxdomain":
		return ZonePolicyNxdomain
	case "nodata":
		return ZonePolicyNodata
	case "cname":
		return ZonePolicyCname
	default:
		return ZonePolicyError
	}
}

// policy2str is the inverse of str2policy, for logging/config round-trips.
func policy2str(p ZonePolicy) string {
	return p.String()
}
