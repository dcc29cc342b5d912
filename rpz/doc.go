// Package rpz implements the Response Policy Zone trigger index: an
// in-memory dual-index data structure a recursive resolver consults to
// decide whether a qname, an answer IP address, an authoritative
// nameserver's domain name, or a nameserver's IP address is subject to a
// policy override declared by one or more RPZ policy zones.
//
// The index is split into a CIDR radix tree (IP/prefix triggers) and a
// domain-name radix tree (qname/nsdname triggers), both keyed by
// priority-ordered zone bitsets so that, across many zones, the first
// matching (lowest-ordinal) zone wins and, within that zone, the longest
// matching prefix wins.
//
// Wire parsing, zone transfer, resolver recursion, answer caching and
// configuration loading are all external collaborators: this package only
// decides which zone matched, at which owner name.
package rpz
