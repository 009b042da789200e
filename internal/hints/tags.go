// Package hints provides the diagnostic hint records attached to component
// identifiers during composition, and the built-in registry of known hint
// tags with their severities.
package hints

import "strings"

// Severity ranks how serious a hint is. Error-severity hints usually mean
// the affected component will not make it into the catalog.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityPedantic
	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityNames = map[Severity]string{
	SeverityUnknown:  "unknown",
	SeverityPedantic: "pedantic",
	SeverityInfo:     "info",
	SeverityWarning:  "warning",
	SeverityError:    "error",
}

func (s Severity) String() string {
	if n, ok := severityNames[s]; ok {
		return n
	}
	return "unknown"
}

// TagDef describes a known hint tag.
type TagDef struct {
	Tag         string
	Severity    Severity
	Explanation string // template; {{var}} placeholders are filled from hint vars
}

// knownTags is the built-in hint tag registry.
var knownTags = []TagDef{
	{
		Tag:         "internal-unknown-tag",
		Severity:    SeverityError,
		Explanation: "A hint with the unknown tag '{{tag}}' was emitted. This is a bug in the composer.",
	},
	{
		Tag:         "internal-error",
		Severity:    SeverityError,
		Explanation: "An internal error occurred while processing this component: {{msg}}",
	},
	{
		Tag:         "metainfo-parse-error",
		Severity:    SeverityError,
		Explanation: "Unable to parse the metainfo file '{{fname}}': {{msg}}",
	},
	{
		Tag:         "metainfo-no-id",
		Severity:    SeverityError,
		Explanation: "The metainfo file '{{fname}}' does not declare a component ID.",
	},
	{
		Tag:         "component-id-empty",
		Severity:    SeverityError,
		Explanation: "A component with an empty ID was rejected from the results set.",
	},
	{
		Tag:         "desktop-file-missing",
		Severity:    SeverityWarning,
		Explanation: "The component declares the launchable '{{desktop_id}}', but no matching desktop file was found in the unit.",
	},
	{
		Tag:         "desktop-entry-parse-error",
		Severity:    SeverityWarning,
		Explanation: "Unable to parse the desktop file '{{fname}}': {{msg}}",
	},
	{
		Tag:         "desktop-entry-hidden",
		Severity:    SeverityInfo,
		Explanation: "The desktop file '{{fname}}' is marked as hidden and was skipped.",
	},
	{
		Tag:         "legacy-metainfo-directory",
		Severity:    SeverityPedantic,
		Explanation: "The metainfo file '{{fname}}' was found in the legacy appdata directory.",
	},
}

var tagIndex = func() map[string]*TagDef {
	idx := make(map[string]*TagDef, len(knownTags))
	for i := range knownTags {
		idx[knownTags[i].Tag] = &knownTags[i]
	}
	return idx
}()

// Resolve returns the definition for a tag, or nil if the tag is unknown.
func Resolve(tag string) *TagDef {
	return tagIndex[tag]
}

// Hint is one diagnostic record attached to a component identifier.
type Hint struct {
	Tag      string            `json:"tag" yaml:"tag"`
	Severity Severity          `json:"-" yaml:"-"`
	Vars     map[string]string `json:"vars,omitempty" yaml:"vars,omitempty"`
}

// New creates a hint for the given tag, resolving its severity through the
// registry. kv is a flat list of key/value pairs for the explanation
// template. Unknown tags are converted into an internal-unknown-tag error
// hint so they never get lost silently.
func New(tag string, kv ...string) *Hint {
	def := Resolve(tag)
	if def == nil {
		return &Hint{
			Tag:      "internal-unknown-tag",
			Severity: SeverityError,
			Vars:     map[string]string{"tag": tag},
		}
	}
	h := &Hint{Tag: def.Tag, Severity: def.Severity}
	if len(kv) > 0 {
		h.Vars = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			h.Vars[kv[i]] = kv[i+1]
		}
	}
	return h
}

// IsError reports whether this hint is severe enough to reject a component.
func (h *Hint) IsError() bool {
	return h.Severity == SeverityError
}

// Explanation renders the tag's explanation template with the hint's vars.
func (h *Hint) Explanation() string {
	def := Resolve(h.Tag)
	if def == nil {
		return ""
	}
	text := def.Explanation
	for k, v := range h.Vars {
		text = strings.ReplaceAll(text, "{{"+k+"}}", v)
	}
	return text
}
