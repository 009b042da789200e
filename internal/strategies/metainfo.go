// Package strategies contains the per-format extraction steps that turn a
// unit's metadata files into components and hints on a result store.
package strategies

import (
	"encoding/xml"
	"path"
	"strings"

	"github.com/StinkyLord/metacompose/internal/model"
	"github.com/StinkyLord/metacompose/internal/result"
	"github.com/StinkyLord/metacompose/internal/unit"
)

// metainfoXML mirrors the subset of the metainfo format the composer reads.
type metainfoXML struct {
	XMLName xml.Name `xml:"component"`
	Type    string   `xml:"type,attr"`
	Merge   string   `xml:"merge,attr"`
	ID      string   `xml:"id"`
	Name    string   `xml:"name"`
	Summary string   `xml:"summary"`

	Launchables []struct {
		Type  string `xml:"type,attr"`
		Value string `xml:",chardata"`
	} `xml:"launchable"`
}

// MetainfoStrategy extracts components from metainfo XML files
// (*.metainfo.xml, plus legacy *.appdata.xml).
type MetainfoStrategy struct{}

func (s *MetainfoStrategy) Name() string { return "metainfo" }

// Claims reports whether the strategy handles the given unit file.
func (s *MetainfoStrategy) Claims(fname string) bool {
	return strings.HasSuffix(fname, ".metainfo.xml") || strings.HasSuffix(fname, ".appdata.xml")
}

// Process parses one metainfo file and adds the resulting component to the
// store, with the raw file contents as its first GCID data contribution.
// Extraction failures become hints instead of errors; the unit keeps
// processing.
func (s *MetainfoStrategy) Process(u unit.Unit, fname string, res *result.Result) {
	base := path.Base(fname)

	data, err := u.ReadData(fname)
	if err != nil {
		res.AddHint(guessCIDFromFilename(base), "internal-error", "msg", err.Error())
		return
	}

	var mi metainfoXML
	if err := xml.Unmarshal(data, &mi); err != nil {
		res.AddHint(guessCIDFromFilename(base), "metainfo-parse-error",
			"fname", base, "msg", err.Error())
		return
	}
	if mi.ID == "" {
		res.AddHint(guessCIDFromFilename(base), "metainfo-no-id", "fname", base)
		return
	}

	kind := model.ParseComponentKind(mi.Type)
	if mi.Type == "" {
		// metainfo files without a type attribute describe generic components
		kind = model.ComponentKindGeneric
	}

	cpt := &model.Component{
		ID:        mi.ID,
		Kind:      kind,
		MergeKind: model.ParseMergeKind(mi.Merge),
		Name:      strings.TrimSpace(mi.Name),
		Summary:   strings.TrimSpace(mi.Summary),
	}
	for _, l := range mi.Launchables {
		if l.Type == "" || l.Type == "desktop-id" {
			cpt.Launchable = strings.TrimSpace(l.Value)
			break
		}
	}
	if cpt.Launchable == "" && kind == model.ComponentKindDesktopApp && strings.HasSuffix(mi.ID, ".desktop") {
		// pre-launchable metainfo files name the desktop file in <id>
		cpt.Launchable = mi.ID
	}

	if err := res.AddComponent(cpt, string(data)); err != nil {
		res.AddHint(guessCIDFromFilename(base), "component-id-empty")
		return
	}

	if strings.Contains(fname, "appdata/") {
		res.AddHintByComponent(cpt, "legacy-metainfo-directory", "fname", base)
	}
}

// guessCIDFromFilename derives a best-effort component ID from a metainfo
// filename, for hints emitted before a usable component exists.
func guessCIDFromFilename(base string) string {
	for _, suffix := range []string{".metainfo.xml", ".appdata.xml", ".desktop"} {
		if strings.HasSuffix(base, suffix) {
			return strings.TrimSuffix(base, suffix)
		}
	}
	return base
}
