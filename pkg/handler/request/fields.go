package request

import (
	"net/http"
	"strings"
)

// ResponseFormat is how a game action answers: a redirect back to the page
// for plain form posts, or the game state for script calls.
type ResponseFormat int

const (
	ResponseHTML ResponseFormat = iota
	ResponseJSON
)

func (s ResponseFormat) String() string {
	switch s {
	case ResponseHTML:
		return "html"
	case ResponseJSON:
		return "json"
	default:
		return "html"
	}
}

func ParseResponseFormat(accept string) ResponseFormat {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if mediaType == "application/json" {
			return ResponseJSON
		}
	}
	return ResponseHTML // browsers posting forms
}

func FormatOf(r *http.Request) ResponseFormat {
	return ParseResponseFormat(r.Header.Get("Accept"))
}
