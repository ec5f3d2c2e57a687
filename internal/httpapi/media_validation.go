package httpapi

import (
	"net/http"
	"strings"
)

// detectMediaContentType sniffs the content type of uploaded bytes and
// reports whether it is an image or video. Sniffing cannot identify every
// video container, so the client's declared type is used as a fallback when
// the sniff is inconclusive.
func detectMediaContentType(data []byte, declared string) (string, bool) {
	sniffed := http.DetectContentType(data)

	if isMediaType(sniffed) {
		return sniffed, true
	}

	declared = strings.TrimSpace(strings.ToLower(strings.Split(declared, ";")[0]))
	if sniffed == "application/octet-stream" && isMediaType(declared) {
		return declared, true
	}

	return sniffed, false
}

func isMediaType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") || strings.HasPrefix(contentType, "video/")
}
