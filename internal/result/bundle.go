package result

import "github.com/StinkyLord/metacompose/internal/model"

// exemptFromBundleAssociation reports whether a component category should
// never carry a package/bundle association. Web applications, operating
// systems and component-removal merges are not meaningfully "contained in"
// a package or bundle.
func exemptFromBundleAssociation(kind model.ComponentKind, merge model.MergeKind) bool {
	return kind == model.ComponentKindWebApp ||
		kind == model.ComponentKindOperatingSystem ||
		merge == model.MergeKindRemoveComponent
}

// associateBundle records the unit's bundle identity on a newly added
// component. For package units the bundle ID becomes the component's
// package-name association (overwriting any prior one); for other known
// bundle kinds a bundle reference is appended. Units of unknown or absent
// bundle kind leave the component untouched.
func (r *Result) associateBundle(cpt *model.Component) {
	if exemptFromBundleAssociation(cpt.Kind, cpt.MergeKind) {
		return
	}

	switch r.bundleKind {
	case model.BundleKindPackage:
		cpt.SetPkgNames([]string{r.bundleID})
	case model.BundleKindUnknown, model.BundleKindNone:
		// nothing to associate
	default:
		cpt.AddBundle(model.Bundle{Kind: r.bundleKind, ID: r.bundleID})
	}
}
