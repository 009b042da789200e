// Package result implements the per-unit result store of the composer: the
// accumulator that collects components and diagnostic hints produced while
// processing one packaging unit, derives a stable global identifier for
// every component from its contributing metadata, and keeps components,
// content hashes and global IDs consistent under any call order.
//
// A Result is owned by exactly one scanning goroutine for the lifetime of
// one unit. It holds no cross-unit state and does no locking; callers that
// process units concurrently create one Result per unit and merge the
// results afterwards.
package result

import (
	"github.com/StinkyLord/metacompose/internal/hints"
	"github.com/StinkyLord/metacompose/internal/model"
)

// Result accumulates everything discovered while processing a single unit.
type Result struct {
	bundleKind model.BundleKind
	bundleID   string

	// cpts maps local component ID -> component. At most one component per
	// ID; replacing an entry orphans the old object's content hash.
	cpts map[string]*model.Component

	// mdataHashes maps component identity (pointer) -> accumulated metadata
	// checksum. Keyed by pointer rather than ID: after a replacement two
	// distinct objects may share an ID, and their hashes must not collapse.
	mdataHashes map[*model.Component]string

	// hintstore maps component ID -> hints emitted for it. An ID may carry
	// hints without a stored component, e.g. when extraction failed before
	// a usable component existed.
	hintstore map[string][]*hints.Hint
}

// New creates an empty result store for one unit.
func New() *Result {
	return &Result{
		cpts:        make(map[string]*model.Component),
		mdataHashes: make(map[*model.Component]string),
		hintstore:   make(map[string][]*hints.Hint),
	}
}

// UnitIgnored reports whether the unit produced nothing at all: no
// components and no hints.
func (r *Result) UnitIgnored() bool {
	return len(r.cpts) == 0 && len(r.hintstore) == 0
}

// ComponentsCount returns the number of components found for this unit.
func (r *Result) ComponentsCount() int {
	return len(r.cpts)
}

// HintsCount returns the number of component IDs that have hints attached.
func (r *Result) HintsCount() int {
	return len(r.hintstore)
}

// BundleKind returns the kind of packaging unit these results are for.
func (r *Result) BundleKind() model.BundleKind {
	return r.bundleKind
}

// SetBundleKind sets the kind of packaging unit these results are for.
func (r *Result) SetBundleKind(kind model.BundleKind) {
	r.bundleKind = kind
}

// BundleID returns the name of the bundle/package these results belong to.
func (r *Result) BundleID() string {
	return r.bundleID
}

// SetBundleID sets the name of the bundle/package these results belong to.
func (r *Result) SetBundleID(id string) {
	r.bundleID = id
}

// Component looks up a component by its local ID. Returns nil if absent.
func (r *Result) Component(cid string) *model.Component {
	return r.cpts[cid]
}

// FetchComponents returns a newly allocated snapshot of all stored
// components, in map iteration order. The components themselves remain
// shared with the store.
func (r *Result) FetchComponents() []*model.Component {
	res := make([]*model.Component, 0, len(r.cpts))
	for _, cpt := range r.cpts {
		res = append(res, cpt)
	}
	return res
}

// Hints returns the hints recorded for a component ID, or nil if none were
// ever recorded. The returned slice is the stored one, not a copy.
func (r *Result) Hints(cid string) []*hints.Hint {
	return r.hintstore[cid]
}

// ComponentIDsWithHints returns a snapshot of every component ID that has
// at least one hint attached.
func (r *Result) ComponentIDsWithHints() []string {
	ids := make([]string, 0, len(r.hintstore))
	for cid := range r.hintstore {
		ids = append(ids, cid)
	}
	return ids
}

// UpdateComponentGCID folds data into the component's rolling metadata
// checksum and rewrites its global ID from the new checksum. Returns true
// if the component's global ID was updated.
//
// A component with an empty local ID gets the empty-ID placeholder global
// ID and no recorded checksum; this fast path exists for anonymous merge
// components and deliberately succeeds without the component being present
// in the store. A component with a non-empty ID must already be stored,
// otherwise nothing happens and false is returned.
func (r *Result) UpdateComponentGCID(cpt *model.Component, data string) bool {
	cid := cpt.ID
	if cid == "" {
		cpt.GlobalID = BuildGlobalID(cid, "")
		return true
	}
	if _, ok := r.cpts[cid]; !ok {
		return false
	}

	hash := AccumulateHash(r.mdataHashes[cpt], data)
	r.mdataHashes[cpt] = hash
	cpt.GlobalID = BuildGlobalID(cid, hash)
	return true
}

// AddComponent adds a component to the results set, records the unit's
// bundle identity on it and seeds its global ID from data. If a component
// with the same ID already exists it is replaced.
//
// Components without an ID can not be stored; the only error returned is
// the empty-ID rejection.
func (r *Result) AddComponent(cpt *model.Component, data string) error {
	cid := cpt.ID
	if cid == "" {
		return emptyIDError()
	}

	r.associateBundle(cpt)

	r.cpts[cid] = cpt
	r.UpdateComponentGCID(cpt, data)
	return nil
}

// RemoveComponent removes a component from the results set by its current
// local ID. On removal the component's global ID is cleared; its content
// hash entry is dropped either way. Returns whether a component was
// actually removed.
func (r *Result) RemoveComponent(cpt *model.Component) bool {
	_, ok := r.cpts[cpt.ID]
	if ok {
		delete(r.cpts, cpt.ID)
		cpt.GlobalID = ""
	}
	delete(r.mdataHashes, cpt)
	return ok
}

// AddHint attaches a hint with the given tag to a component ID. kv is a
// flat list of key/value pairs for the hint's explanation template.
//
// If the tag resolves to error severity, a component stored under that ID
// is removed from the results set. The return value reports whether the
// component is still valid (i.e. the hint was not fatal for it).
func (r *Result) AddHint(cid, tag string, kv ...string) bool {
	h := hints.New(tag, kv...)
	r.hintstore[cid] = append(r.hintstore[cid], h)

	if h.IsError() {
		if cpt, ok := r.cpts[cid]; ok {
			r.RemoveComponent(cpt)
		}
		return false
	}
	return true
}

// AddHintByComponent attaches a hint to the component's own ID.
func (r *Result) AddHintByComponent(cpt *model.Component, tag string, kv ...string) bool {
	return r.AddHint(cpt.ID, tag, kv...)
}
