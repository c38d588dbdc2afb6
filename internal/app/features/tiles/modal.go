// internal/app/features/tiles/modal.go
package tiles

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/app/system/timeouts"
)

type modalAllowedResponse struct {
	Resources []string `json:"resources"`
	Modules   []string `json:"modules"`
}

// ServeModalAllowed reports which resource and module types the requesting
// client may open in a modal. Mobile and legacy clients always get empty
// lists so the page falls back to plain links.
//
// GET /tiles/modal-allowed
func (h *Handler) ServeModalAllowed(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	allowed := h.Svc.AllowedModalModules(ctx, device.Classify(r))

	resp := modalAllowedResponse{
		Resources: sortedTokens(allowed.Resources),
		Modules:   sortedTokens(allowed.Modules),
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func sortedTokens(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for tok := range set {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
