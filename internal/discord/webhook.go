package discord

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lojasmm/rowkit/internal/log"
	"github.com/lojasmm/rowkit/internal/metrics"
)

const maxBodyBytes = 1 << 20

// InteractionHandler is called for every verified interaction other than a ping.
type InteractionHandler func(ctx context.Context, in *Interaction) error

type WebhookHandler struct {
	publicKey ed25519.PublicKey
	handle    InteractionHandler
	logger    zerolog.Logger
}

// NewWebhookHandler takes the application's hex-encoded public key.
func NewWebhookHandler(publicKeyHex string, handle InteractionHandler) (*WebhookHandler, error) {
	key, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key has %d bytes, want %d", len(key), ed25519.PublicKeySize)
	}
	return &WebhookHandler{
		publicKey: ed25519.PublicKey(key),
		handle:    handle,
		logger:    log.WithComponent("webhook"),
	}, nil
}

// HandleInteraction processes POST /interactions.
// Reference: https://discord.com/developers/docs/interactions/overview#setting-up-an-endpoint
func (h *WebhookHandler) HandleInteraction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if !h.verify(r.Header.Get("X-Signature-Ed25519"), r.Header.Get("X-Signature-Timestamp"), body) {
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var in Interaction
	if err := json.Unmarshal(body, &in); err != nil {
		h.logger.Warn().Err(err).Msg("failed to decode interaction")
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	metrics.InteractionsTotal.WithLabelValues(in.Type.String()).Inc()

	if in.Type == InteractionPing {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(InteractionResponse{Type: CallbackPong})
		return
	}

	if err := h.handle(r.Context(), &in); err != nil {
		h.logger.Error().Err(err).
			Str(log.FieldInteractionID, in.ID).
			Str(log.FieldInteraction, in.Type.String()).
			Msg("interaction handler failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	// The response itself went out through the callback endpoint.
	w.WriteHeader(http.StatusAccepted)
}

func (h *WebhookHandler) verify(sigHex, timestamp string, body []byte) bool {
	if sigHex == "" || timestamp == "" {
		return false
	}
	sig, err := hex.DecodeString(sigHex)
	if err != nil || len(sig) != ed25519.SignatureSize {
		return false
	}
	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	return ed25519.Verify(h.publicKey, msg, sig)
}
