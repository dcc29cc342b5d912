package rpz

import (
	"strings"

	"github.com/miekg/dns"
)

// nameLabels splits a fully-qualified DNS name into labels, most
// significant (TLD-ward) last, matching the order an owner name is
// naturally written: "foo.evil.example" -> ["foo", "evil", "example"].
func nameLabels(name string) []string {
	labels := dns.SplitDomainName(strings.TrimSuffix(name, "."))
	if labels == nil {
		return nil
	}

	return labels
}

// nameTreeNode is one owner name's entry in the name summary tree.
// Children are keyed by the next label walking
// from the root (TLD) toward the leaf.
type nameTreeNode struct {
	label    string
	pair     pair
	wild     pair
	children map[string]*nameTreeNode
}

func newNameTreeNode(label string) *nameTreeNode {
	return &nameTreeNode{label: label, children: map[string]*nameTreeNode{}}
}

func (n *nameTreeNode) isEmpty() bool {
	return n.pair.isZero() && n.wild.isZero() && len(n.children) == 0
}

// nameTree is a domain-name-keyed radix tree rooted at the DNS root.
type nameTree struct {
	root *nameTreeNode
}

func newNameTree() *nameTree {
	return &nameTree{root: newNameTreeNode("")}
}

// splitOwner separates a wildcard marker from an owner name's labels,
// returning the labels of the name that actually receives the
// contribution and whether it goes to wild.
func splitOwner(owner string) (labels []string, isWildcard bool) {
	labels = nameLabels(owner)
	if len(labels) > 0 && labels[0] == "*" {
		return labels[1:], true
	}

	return labels, false
}

// reversed returns labels in root-to-leaf order for tree descent: the
// input is leaf-to-root (dns.SplitDomainName order), so this reverses it.
func reversed(labels []string) []string {
	out := make([]string, len(labels))
	for i, l := range labels {
		out[len(labels)-1-i] = l
	}

	return out
}

func (t *nameTree) descend(labels []string, create bool) *nameTreeNode {
	cur := t.root

	for _, label := range reversed(labels) {
		next, ok := cur.children[label]
		if !ok {
			if !create {
				return nil
			}

			next = newNameTreeNode(label)
			cur.children[label] = next
		}

		cur = next
	}

	return cur
}

// insert adds bits to owner's contribution (pair, or wild if owner begins
// with a wildcard label).
func (t *nameTree) insert(owner string, bits pair) {
	labels, wildcard := splitOwner(owner)
	t.insertLabels(labels, bits, wildcard)
}

// insertLabels adds bits directly to the node at labels (leaf-to-root
// order, as produced by splitOwner/nameLabels), landing in wild instead of
// pair when wildcard is set. Used by Ready's cross-zone copy so it can
// carry a walked entry's wildcard-ness across without re-rendering and
// re-parsing an owner name.
func (t *nameTree) insertLabels(labels []string, bits pair, wildcard bool) {
	if bits.isZero() {
		return
	}

	node := t.descend(labels, true)
	if wildcard {
		node.wild = node.wild.union(bits)
	} else {
		node.pair = node.pair.union(bits)
	}
}

// delete removes bits from owner's contribution, pruning empty nodes. It
// returns resultNotFound when owner's node does not carry any of bits.
func (t *nameTree) delete(owner string, bits pair) cidrResult {
	labels, wildcard := splitOwner(owner)

	node := t.descend(labels, false)
	if node == nil {
		return resultNotFound
	}

	if (wildcard && node.wild.intersect(bits).isZero()) || (!wildcard && node.pair.intersect(bits).isZero()) {
		return resultNotFound
	}

	if wildcard {
		node.wild = node.wild.andNot(bits)
	} else {
		node.pair = node.pair.andNot(bits)
	}

	t.prune(labels)

	return resultOK
}

// prune removes empty nodes along the path to labels, leaf-first.
func (t *nameTree) prune(labels []string) {
	path := make([]*nameTreeNode, 0, len(labels)+1)
	path = append(path, t.root)

	cur := t.root
	for _, label := range reversed(labels) {
		next, ok := cur.children[label]
		if !ok {
			return
		}

		path = append(path, next)
		cur = next
	}

	for i := len(path) - 1; i > 0; i-- {
		node := path[i]
		if !node.isEmpty() {
			return
		}

		delete(path[i-1].children, node.label)
	}
}

// lookup returns the union zbits for name: the deepest exact match's pair,
// plus every ancestor's wild, masked by caller (lookup by trigger
// name"). No priority trimming is applied here.
func (t *nameTree) lookup(name string, caller ZBits, kind direction) ZBits {
	labels := reversed(nameLabels(name))

	cur := t.root
	var result ZBits
	matchedAll := true

	for _, label := range labels {
		// cur is a proper ancestor of name here: its wild covers name.
		result |= selectField(cur.wild, kind)

		next, ok := cur.children[label]
		if !ok {
			matchedAll = false
			break
		}

		cur = next
	}

	if matchedAll {
		// cur is name's own node: only its exact pair applies, not its wild.
		result |= selectField(cur.pair, kind)
	}

	return result & caller
}

// direction selects which half of a pair to read (d or ns).
type direction int

const (
	directionD direction = iota
	directionNS
)

func selectField(p pair, dir direction) ZBits {
	if dir == directionNS {
		return p.ns
	}

	return p.d
}

// walkEntry is one owner name's full payload, reconstructed during a tree
// walk for cross-zone copy during Ready. labels are leaf-to-root, the same
// order splitOwner/insertLabels expect, so a caller can feed an entry
// straight back into another tree without rendering or re-parsing a name.
type walkEntry struct {
	labels []string
	pair   pair
	wild   pair
}

// walk visits every node carrying a nonzero pair or wild, calling fn with
// its labels.
func (t *nameTree) walk(fn func(e walkEntry)) {
	var rec func(n *nameTreeNode, labels []string)
	rec = func(n *nameTreeNode, labels []string) {
		if n != t.root && (!n.pair.isZero() || !n.wild.isZero()) {
			fn(walkEntry{labels: reversed(labels), pair: n.pair, wild: n.wild})
		}

		for label, child := range n.children {
			next := make([]string, len(labels), len(labels)+1)
			copy(next, labels)
			next = append(next, label)
			rec(child, next)
		}
	}

	rec(t.root, nil)
}
