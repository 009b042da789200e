// Package model defines the catalog data structures shared by the composer engine.
package model

// ComponentKind classifies a software component in the catalog.
type ComponentKind int

const (
	ComponentKindUnknown ComponentKind = iota
	ComponentKindGeneric
	ComponentKindDesktopApp
	ComponentKindConsoleApp
	ComponentKindWebApp
	ComponentKindService
	ComponentKindAddon
	ComponentKindRuntime
	ComponentKindOperatingSystem
)

var componentKindNames = map[ComponentKind]string{
	ComponentKindUnknown:         "unknown",
	ComponentKindGeneric:         "generic",
	ComponentKindDesktopApp:      "desktop-application",
	ComponentKindConsoleApp:      "console-application",
	ComponentKindWebApp:          "web-application",
	ComponentKindService:         "service",
	ComponentKindAddon:           "addon",
	ComponentKindRuntime:         "runtime",
	ComponentKindOperatingSystem: "operating-system",
}

func (k ComponentKind) String() string {
	if s, ok := componentKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseComponentKind maps a metainfo type string to a ComponentKind.
// Unrecognised strings map to ComponentKindUnknown.
func ParseComponentKind(s string) ComponentKind {
	for k, name := range componentKindNames {
		if name == s {
			return k
		}
	}
	// legacy metainfo spelling
	if s == "desktop" {
		return ComponentKindDesktopApp
	}
	return ComponentKindUnknown
}

// MergeKind marks a component as a merge/edit instruction instead of a
// standalone catalog entry.
type MergeKind int

const (
	MergeKindNone MergeKind = iota
	MergeKindReplace
	MergeKindAppend
	MergeKindRemoveComponent
)

var mergeKindNames = map[MergeKind]string{
	MergeKindNone:            "none",
	MergeKindReplace:         "replace",
	MergeKindAppend:          "append",
	MergeKindRemoveComponent: "remove-component",
}

func (k MergeKind) String() string {
	if s, ok := mergeKindNames[k]; ok {
		return s
	}
	return "none"
}

// ParseMergeKind maps a metainfo merge type string to a MergeKind.
func ParseMergeKind(s string) MergeKind {
	for k, name := range mergeKindNames {
		if name == s {
			return k
		}
	}
	return MergeKindNone
}

// BundleKind describes the packaging container a component was extracted from.
type BundleKind int

const (
	// BundleKindUnknown means the unit's packaging could not be determined.
	BundleKindUnknown BundleKind = iota
	// BundleKindNone is the sentinel for units that carry no bundle at all
	// (e.g. loose metadata directories).
	BundleKindNone
	BundleKindPackage
	BundleKindFlatpak
	BundleKindAppImage
	BundleKindSnap
	BundleKindTarball
)

var bundleKindNames = map[BundleKind]string{
	BundleKindUnknown:  "unknown",
	BundleKindNone:     "none",
	BundleKindPackage:  "package",
	BundleKindFlatpak:  "flatpak",
	BundleKindAppImage: "appimage",
	BundleKindSnap:     "snap",
	BundleKindTarball:  "tarball",
}

func (k BundleKind) String() string {
	if s, ok := bundleKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseBundleKind maps a bundle kind string (e.g. a --bundle-kind flag value)
// to a BundleKind.
func ParseBundleKind(s string) BundleKind {
	for k, name := range bundleKindNames {
		if name == s {
			return k
		}
	}
	return BundleKindUnknown
}

// Bundle is a reference to the packaging container a component ships in.
type Bundle struct {
	Kind BundleKind `json:"kind" yaml:"kind"`
	ID   string     `json:"id" yaml:"id"`
}

// Component is a single catalog entry discovered while processing a unit.
// Components are shared by pointer: the result store, the extraction
// strategies and the catalog writer all hold the same object, and the store
// keys its content hashes by pointer identity.
type Component struct {
	// ID is the local component identifier (e.g. "org.example.App").
	// Set by the extraction strategy, immutable afterwards.
	ID        string
	Kind      ComponentKind
	MergeKind MergeKind

	// GlobalID is the content-derived global identifier. Only the result
	// store writes this field.
	GlobalID string

	Name    string
	Summary string

	// Launchable is the desktop-entry id this component can be launched
	// through, if any (metainfo <launchable type="desktop-id">).
	Launchable string

	// PkgNames is the package-name association. Single-assignment: setting
	// it replaces any previous value.
	PkgNames []string

	// Bundles holds bundle references. Additive.
	Bundles []Bundle
}

// SetPkgNames replaces the component's package-name association.
func (c *Component) SetPkgNames(names []string) {
	c.PkgNames = names
}

// AddBundle appends a bundle reference to the component.
func (c *Component) AddBundle(b Bundle) {
	c.Bundles = append(c.Bundles, b)
}
