package nlp

import (
	"strings"

	"customer-care-assistant/internal/model"
)

// ParseIntent coerces raw model text into a catalog intent. The model is
// prompted for a bare keyword; anything outside the catalog (including
// gateway sentinel text) collapses to general_query.
func ParseIntent(raw string) model.Intent {
	intent := model.Intent(strings.ToLower(strings.TrimSpace(raw)))
	if !model.ValidIntents[intent] {
		return model.IntentGeneralQuery
	}
	return intent
}
