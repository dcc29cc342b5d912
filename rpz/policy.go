package rpz

//go:generate go run github.com/abice/go-enum -f=$GOFILE --marshal --names

// Policy is the outcome of decoding a policy zone record's CNAME-like
// target ENUM(
// NXDOMAIN // target is the root: synthesize NXDOMAIN
// NODATA // target is a bare wildcard: synthesize NODATA
// WILDCNAME // target is a wildcard CNAME: caller substitutes qname for '*'
// PASSTHRU // target is the passthru sentinel, or the obsolete self-loopback form
// RECORD // target is an ordinary record: return the rdata verbatim
// )
type Policy int
