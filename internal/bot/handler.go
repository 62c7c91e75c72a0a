package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/discord"
	"github.com/lojasmm/rowkit/internal/log"
	"github.com/lojasmm/rowkit/internal/metrics"
	"github.com/lojasmm/rowkit/internal/response"
	"github.com/lojasmm/rowkit/internal/session"
	"github.com/lojasmm/rowkit/internal/store"
)

const (
	DraftPrefix = "draft:"
	ClonePrefix = "clone:"
)

const (
	msgUnknownDraft    = "That draft no longer exists."
	msgUnknownControl  = "This control is not handled by rowkit."
	msgUnsupported     = "Commands are not supported yet."
	msgBrokenComponent = "The components on this message could not be read."
	msgNothingToClone  = "This message has no components to copy."
	msgInvalidResponse = "This response could not be built."
)

// Responder sends interaction callbacks and followups. *discord.Client
// satisfies it.
type Responder interface {
	Respond(ctx context.Context, interactionID, token string, resp discord.InteractionResponse) error
	Followup(ctx context.Context, token string, p response.Payload) error
}

type Handler struct {
	out      Responder
	store    store.Store
	sessions *session.Manager
	logger   zerolog.Logger
}

func NewHandler(out Responder, s store.Store, sessions *session.Manager) *Handler {
	return &Handler{
		out:      out,
		store:    s,
		sessions: sessions,
		logger:   log.WithComponent("bot"),
	}
}

// HandleInteraction answers one verified interaction. Interactions from the
// same channel are handled one at a time.
func (h *Handler) HandleInteraction(ctx context.Context, in *discord.Interaction) error {
	key := in.ChannelID
	if key == "" {
		key = in.ID
	}
	return h.sessions.WithLock(key, func() error {
		return h.dispatch(ctx, in)
	})
}

func (h *Handler) dispatch(ctx context.Context, in *discord.Interaction) error {
	logger := h.logger.With().
		Str(log.FieldInteractionID, in.ID).
		Str(log.FieldChannelID, in.ChannelID).
		Logger()

	switch in.Type {
	case discord.InteractionApplicationCommand:
		logger.Debug().Str("command", in.Data.Name).Msg("command received")
		return h.notice(ctx, in, msgUnsupported)
	case discord.InteractionMessageComponent:
	default:
		logger.Warn().Str(log.FieldInteraction, in.Type.String()).Msg("unhandled interaction type")
		return h.notice(ctx, in, msgUnknownControl)
	}

	customID := in.Data.CustomID
	logger = logger.With().Str(log.FieldCustomID, customID).Logger()

	switch {
	case strings.HasPrefix(customID, DraftPrefix):
		return h.sendDraft(ctx, in, strings.TrimPrefix(customID, DraftPrefix), logger)
	case strings.HasPrefix(customID, ClonePrefix):
		return h.cloneMessage(ctx, in, logger)
	default:
		logger.Debug().Msg("no route for custom id")
		return h.notice(ctx, in, msgUnknownControl)
	}
}

func (h *Handler) sendDraft(ctx context.Context, in *discord.Interaction, id string, logger zerolog.Logger) error {
	logger = logger.With().Str(log.FieldDraftID, id).Logger()

	d, err := h.store.GetDraft(id)
	if err != nil {
		return fmt.Errorf("loading draft %s: %w", id, err)
	}
	if d == nil {
		logger.Info().Msg("draft not found")
		return h.notice(ctx, in, msgUnknownDraft)
	}

	p, err := response.NewBuilderFromDraft(*d).AsEphemeral(true).Build()
	if err != nil {
		return h.invalid(ctx, in, err, logger)
	}
	if err := h.send(ctx, in, p); err != nil {
		return err
	}

	// The builder only carries the first embed; the rest follow up.
	if len(d.Embeds) > 1 {
		extra := response.NewBuilder().AddEmbeds(d.Embeds[1:]...).AsEphemeral(true)
		p, err := extra.Build()
		if err != nil {
			return fmt.Errorf("building followup: %w", err)
		}
		if err := h.out.Followup(ctx, in.Token, p); err != nil {
			metrics.ResponsesTotal.WithLabelValues("failed").Inc()
			return fmt.Errorf("sending followup: %w", err)
		}
		metrics.ResponsesTotal.WithLabelValues("sent").Inc()
	}

	logger.Info().Int("extra_embeds", max(len(d.Embeds)-1, 0)).Msg("draft sent")
	return nil
}

func (h *Handler) cloneMessage(ctx context.Context, in *discord.Interaction, logger zerolog.Logger) error {
	if in.Message == nil || len(in.Message.Components) == 0 {
		return h.notice(ctx, in, msgNothingToClone)
	}

	rows, err := component.DecodeRows(in.Message.Components)
	if err != nil {
		metrics.DecodeErrorsTotal.WithLabelValues(decodeReason(err)).Inc()
		logger.Warn().Err(err).Msg("source message components failed to decode")
		return h.notice(ctx, in, msgBrokenComponent)
	}

	b := response.NewBuilder().AsEphemeral(true)
	if _, err := b.WithContent(in.Message.Content); err != nil {
		return h.invalid(ctx, in, err, logger)
	}
	for _, row := range rows {
		if _, err := b.WithComponents(row.Components...); err != nil {
			return h.invalid(ctx, in, err, logger)
		}
	}

	if err := h.respond(ctx, in, b); err != nil {
		return err
	}
	logger.Info().Int("rows", len(rows)).Msg("message cloned")
	return nil
}

func (h *Handler) notice(ctx context.Context, in *discord.Interaction, text string) error {
	b := response.NewBuilder().AsEphemeral(true)
	if _, err := b.WithContent(text); err != nil {
		return err
	}
	return h.respond(ctx, in, b)
}

// invalid answers with a notice when the builder rejects a response. The
// notice itself always passes validation.
func (h *Handler) invalid(ctx context.Context, in *discord.Interaction, err error, logger zerolog.Logger) error {
	metrics.ResponsesTotal.WithLabelValues("invalid").Inc()
	logger.Warn().Err(err).Msg("response rejected by builder")
	return h.notice(ctx, in, msgInvalidResponse)
}

func (h *Handler) respond(ctx context.Context, in *discord.Interaction, b *response.Builder) error {
	p, err := b.Build()
	if err != nil {
		logger := h.logger.With().Str(log.FieldInteractionID, in.ID).Logger()
		return h.invalid(ctx, in, err, logger)
	}
	return h.send(ctx, in, p)
}

func (h *Handler) send(ctx context.Context, in *discord.Interaction, p response.Payload) error {
	err := h.out.Respond(ctx, in.ID, in.Token, discord.InteractionResponse{
		Type: discord.CallbackChannelMessageWithSource,
		Data: &p,
	})
	if err != nil {
		metrics.ResponsesTotal.WithLabelValues("failed").Inc()
		return fmt.Errorf("responding to interaction %s: %w", in.ID, err)
	}
	metrics.ResponsesTotal.WithLabelValues("sent").Inc()
	return nil
}

func decodeReason(err error) string {
	var cerr *component.Error
	if errors.As(err, &cerr) {
		return string(cerr.Kind)
	}
	return "unknown"
}
