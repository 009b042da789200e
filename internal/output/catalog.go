// Package output provides catalog serializers.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/StinkyLord/metacompose/internal/model"
	"github.com/StinkyLord/metacompose/internal/result"
)

// Document is the merged catalog produced from all per-unit results.
type Document struct {
	Version    string             `json:"catalogVersion" yaml:"catalogVersion"`
	Origin     string             `json:"origin" yaml:"origin"`
	Generated  string             `json:"generated" yaml:"generated"`
	Components []CatalogComponent `json:"components" yaml:"components"`
	Hints      []UnitHints        `json:"hints,omitempty" yaml:"hints,omitempty"`
}

// CatalogComponent is one serialized catalog entry.
type CatalogComponent struct {
	ID       string          `json:"id" yaml:"id"`
	GlobalID string          `json:"globalID" yaml:"globalID"`
	Kind     string          `json:"kind" yaml:"kind"`
	Merge    string          `json:"merge,omitempty" yaml:"merge,omitempty"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Summary  string          `json:"summary,omitempty" yaml:"summary,omitempty"`
	PkgNames []string        `json:"pkgnames,omitempty" yaml:"pkgnames,omitempty"`
	Bundles  []CatalogBundle `json:"bundles,omitempty" yaml:"bundles,omitempty"`
}

// CatalogBundle is a serialized bundle reference.
type CatalogBundle struct {
	Kind string `json:"kind" yaml:"kind"`
	ID   string `json:"id" yaml:"id"`
}

// UnitHints groups the hints of one unit for the diagnostic section.
type UnitHints struct {
	Unit  string       `json:"unit" yaml:"unit"`
	Hints []HintRecord `json:"hints" yaml:"hints"`
}

// HintRecord is one rendered hint.
type HintRecord struct {
	ComponentID string `json:"componentID" yaml:"componentID"`
	Tag         string `json:"tag" yaml:"tag"`
	Severity    string `json:"severity" yaml:"severity"`
	Explanation string `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// BuildDocument merges the per-unit results into one catalog document.
// Components and hints are sorted for deterministic output; units that
// produced nothing are skipped.
func BuildDocument(results []*result.Result, origin string) *Document {
	doc := &Document{
		Version:   "1.0",
		Origin:    origin,
		Generated: time.Now().UTC().Format(time.RFC3339),
	}

	for _, res := range results {
		if res == nil || res.UnitIgnored() {
			continue
		}

		for _, cpt := range res.FetchComponents() {
			entry := CatalogComponent{
				ID:       cpt.ID,
				GlobalID: cpt.GlobalID,
				Kind:     cpt.Kind.String(),
				Name:     cpt.Name,
				Summary:  cpt.Summary,
				PkgNames: cpt.PkgNames,
			}
			if cpt.MergeKind != model.MergeKindNone {
				entry.Merge = cpt.MergeKind.String()
			}
			for _, b := range cpt.Bundles {
				entry.Bundles = append(entry.Bundles, CatalogBundle{
					Kind: b.Kind.String(),
					ID:   b.ID,
				})
			}
			doc.Components = append(doc.Components, entry)
		}

		if res.HintsCount() > 0 {
			uh := UnitHints{Unit: res.BundleID()}
			cids := res.ComponentIDsWithHints()
			sort.Strings(cids)
			for _, cid := range cids {
				for _, h := range res.Hints(cid) {
					uh.Hints = append(uh.Hints, HintRecord{
						ComponentID: cid,
						Tag:         h.Tag,
						Severity:    h.Severity.String(),
						Explanation: h.Explanation(),
					})
				}
			}
			doc.Hints = append(doc.Hints, uh)
		}
	}

	sort.Slice(doc.Components, func(i, j int) bool {
		if doc.Components[i].ID != doc.Components[j].ID {
			return doc.Components[i].ID < doc.Components[j].ID
		}
		return doc.Components[i].GlobalID < doc.Components[j].GlobalID
	})
	sort.Slice(doc.Hints, func(i, j int) bool {
		return doc.Hints[i].Unit < doc.Hints[j].Unit
	})

	return doc
}

// WriteCatalog serialises the merged catalog and writes it to outputPath.
// Format is "json" or "yaml"; "-" as path writes to stdout.
func WriteCatalog(results []*result.Result, origin, outputPath, format string) error {
	doc := BuildDocument(results, origin)

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	default:
		return fmt.Errorf("unsupported format %q (supported: json, yaml)", format)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	if outputPath == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}
