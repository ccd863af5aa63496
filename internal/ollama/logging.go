package ollama

import "github.com/rs/zerolog"

// zlog is an optional structured logger. If unset, requests are not logged.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used for outbound API requests.
func SetLogger(l zerolog.Logger) { zlog = &l }

func logRequest(method, url string) {
	if zlog == nil {
		return
	}
	zlog.Debug().Str("method", method).Str("url", url).Msg("ollama request")
}
