package result

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// noChecksumSegment is the placeholder used in a global ID when no metadata
// checksum has been accumulated for the component yet.
const noChecksumSegment = "last"

// knownTLDs is the set of top-level domains recognised when deciding whether
// a component ID follows the reverse-DNS naming scheme.
var knownTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "io": true, "edu": true,
	"gov": true, "info": true, "dev": true, "app": true, "co": true,
	"me": true, "eu": true, "de": true, "uk": true, "us": true,
	"fr": true, "nl": true, "se": true, "ch": true, "at": true,
}

// BuildGlobalID derives the global component identifier from a local
// component ID and an accumulated metadata checksum.
//
// Reverse-DNS IDs are split on their first two dots, so "org.example.App"
// with checksum "c0ffee" becomes "org/example/app/c0ffee". Other IDs use the
// first one and two characters as directory prefixes: "firefox" becomes
// "f/fi/firefox/c0ffee". When checksum is empty the "last" placeholder is
// used instead, so the ID stays well-formed for components without any
// metadata contribution.
//
// An empty cid yields an empty global ID.
func BuildGlobalID(cid, checksum string) string {
	if cid == "" {
		return ""
	}
	if checksum == "" {
		checksum = noChecksumSegment
	}

	lower := strings.ToLower(cid)
	if strings.Contains(lower, ".") {
		parts := strings.SplitN(lower, ".", 3)
		if len(parts) == 3 && knownTLDs[parts[0]] && parts[1] != "" && parts[2] != "" {
			return parts[0] + "/" + parts[1] + "/" + parts[2] + "/" + checksum
		}
	}

	if len(lower) < 2 {
		return lower + "/" + lower + "/" + lower + "/" + checksum
	}
	return lower[:1] + "/" + lower[:2] + "/" + lower + "/" + checksum
}

// AccumulateHash advances a rolling metadata checksum with a new data
// contribution. The first contribution hashes the data alone; every later
// contribution hashes the previous checksum concatenated with the new data,
// so the result folds in all prior contributions in call order.
//
// MD5 is used as a fast content fingerprint here, not for security.
func AccumulateHash(prev, data string) string {
	var sum [md5.Size]byte
	if prev == "" {
		sum = md5.Sum([]byte(data))
	} else {
		sum = md5.Sum([]byte(prev + data))
	}
	return hex.EncodeToString(sum[:])
}
