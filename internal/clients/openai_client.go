package clients

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// NewOpenAISpeechService returns the audio speech endpoint of an OpenAI
// client whose HTTP requests are bounded by timeout.
func NewOpenAISpeechService(apiKey string, timeout time.Duration) *openai.AudioSpeechService {
	httpClient := &http.Client{
		Timeout: timeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(1),
		option.WithHeader("User-Agent", USER_AGENT),
	)

	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout", slog.Duration("timeout", timeout))
	return client.Audio.Speech
}
