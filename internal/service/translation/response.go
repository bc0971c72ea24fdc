package translation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/asonkiya/novel-chrome-extension/internal/contextmem"
	"github.com/asonkiya/novel-chrome-extension/internal/domain"
)

// Response is a validated backend answer.
type Response struct {
	Translation string
	Updates     contextmem.Updates
}

// ParseResponse validates the raw backend answer. It must be a JSON object
// whose translation is a string and whose context_updates is absent, null
// or an object. Anything else fails with domain.ErrInvalidResponse.
func ParseResponse(raw []byte) (Response, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Response{}, fmt.Errorf("%w: not a JSON object", domain.ErrInvalidResponse)
	}

	var translation string
	rawTranslation, ok := fields["translation"]
	if !ok {
		return Response{}, fmt.Errorf("%w: translation missing", domain.ErrInvalidResponse)
	}
	if err := json.Unmarshal(rawTranslation, &translation); err != nil || isNull(rawTranslation) {
		return Response{}, fmt.Errorf("%w: translation must be a string", domain.ErrInvalidResponse)
	}

	var updates contextmem.Updates
	if rawUpdates, ok := fields["context_updates"]; ok && !isNull(rawUpdates) {
		var obj map[string]any
		if err := json.Unmarshal(rawUpdates, &obj); err != nil {
			return Response{}, fmt.Errorf("%w: context_updates must be an object", domain.ErrInvalidResponse)
		}
		updates = contextmem.ParseUpdates(obj)
	}

	return Response{Translation: translation, Updates: updates}, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
