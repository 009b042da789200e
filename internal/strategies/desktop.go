package strategies

import (
	"bufio"
	"fmt"
	"path"
	"strings"

	"github.com/StinkyLord/metacompose/internal/result"
	"github.com/StinkyLord/metacompose/internal/unit"
)

// desktopDirs are the places inside a unit where desktop files live.
var desktopDirs = []string{
	"usr/share/applications/",
	"share/applications/",
	"applications/",
	"",
}

// MergeDesktopData folds desktop-entry data into the components already in
// the store. For every component that declares a launchable, the matching
// desktop file is located, parsed, its display fields merged into the
// component, and its raw contents contributed to the component's GCID hash.
//
// Must run after the metainfo pass: the store's chained hashing makes the
// contribution order part of the global ID.
func MergeDesktopData(u unit.Unit, files []string, res *result.Result) {
	fileSet := make(map[string]bool, len(files))
	for _, f := range files {
		fileSet[f] = true
	}

	for _, cpt := range res.FetchComponents() {
		if cpt.Launchable == "" {
			continue
		}

		fname := findDesktopFile(fileSet, cpt.Launchable)
		if fname == "" {
			res.AddHintByComponent(cpt, "desktop-file-missing",
				"desktop_id", cpt.Launchable)
			continue
		}

		data, err := u.ReadData(fname)
		if err != nil {
			res.AddHintByComponent(cpt, "desktop-entry-parse-error",
				"fname", path.Base(fname), "msg", err.Error())
			continue
		}

		entry, err := parseDesktopEntry(data)
		if err != nil {
			res.AddHintByComponent(cpt, "desktop-entry-parse-error",
				"fname", path.Base(fname), "msg", err.Error())
			continue
		}

		if entry["Hidden"] == "true" || entry["NoDisplay"] == "true" {
			res.AddHintByComponent(cpt, "desktop-entry-hidden",
				"fname", path.Base(fname))
			continue
		}

		if cpt.Name == "" {
			cpt.Name = entry["Name"]
		}
		if cpt.Summary == "" {
			cpt.Summary = entry["Comment"]
		}

		res.UpdateComponentGCID(cpt, string(data))
	}
}

// findDesktopFile locates a desktop file for the given desktop-id in the
// unit's file list.
func findDesktopFile(fileSet map[string]bool, desktopID string) string {
	for _, dir := range desktopDirs {
		if candidate := dir + desktopID; fileSet[candidate] {
			return candidate
		}
	}
	return ""
}

// parseDesktopEntry parses the [Desktop Entry] group of a desktop file into
// a key/value map. Localised keys (Name[de]=...) are skipped.
func parseDesktopEntry(data []byte) (map[string]string, error) {
	entry := map[string]string{}
	inDesktopEntry := false
	sawGroup := false

	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") {
			if !strings.HasSuffix(line, "]") {
				return nil, fmt.Errorf("malformed group header %q", line)
			}
			sawGroup = true
			inDesktopEntry = line == "[Desktop Entry]"
			continue
		}
		if !inDesktopEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("malformed line %q", line)
		}
		key = strings.TrimSpace(key)
		if strings.Contains(key, "[") {
			// localised key
			continue
		}
		entry[key] = strings.TrimSpace(value)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sawGroup {
		return nil, fmt.Errorf("no desktop entry group found")
	}
	return entry, nil
}
