package workflow

import "github.com/cardkeeper/cardkeeper/internal/api"

// userMessage picks the text for a failure notification: the server's
// structured error when the API returned one, else the fallback.
func userMessage(err error, fallback string) string {
	return api.UserMessage(err, fallback)
}
