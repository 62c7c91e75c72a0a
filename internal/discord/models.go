package discord

import (
	"github.com/lojasmm/rowkit/internal/response"
	"github.com/lojasmm/rowkit/internal/wire"
)

// --- Incoming interaction payload ---
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object

type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
)

func (t InteractionType) String() string {
	switch t {
	case InteractionPing:
		return "ping"
	case InteractionApplicationCommand:
		return "application_command"
	case InteractionMessageComponent:
		return "message_component"
	default:
		return "unknown"
	}
}

type Interaction struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Type          InteractionType `json:"type"`
	Token         string          `json:"token"`
	ChannelID     string          `json:"channel_id,omitempty"`
	GuildID       string          `json:"guild_id,omitempty"`
	Data          InteractionData `json:"data"`
	Message       *Message        `json:"message,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
}

// InteractionData covers both command and component data; only the fields
// matching Type are set.
type InteractionData struct {
	Name          string   `json:"name,omitempty"`
	CustomID      string   `json:"custom_id,omitempty"`
	ComponentType int      `json:"component_type,omitempty"`
	Values        []string `json:"values,omitempty"`
}

// Message is the message a component interaction was triggered from.
// Components are kept raw and decoded with the component package.
type Message struct {
	ID         string      `json:"id"`
	ChannelID  string      `json:"channel_id"`
	Content    string      `json:"content"`
	Components []wire.Node `json:"components,omitempty"`
}

type Member struct {
	User *User `json:"user,omitempty"`
}

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// UserID returns the invoking user in both guild and DM contexts.
func (i *Interaction) UserID() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// --- Outgoing interaction response ---
// Reference: https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-response-object

type CallbackType int

const (
	CallbackPong                     CallbackType = 1
	CallbackChannelMessageWithSource CallbackType = 4
)

type InteractionResponse struct {
	Type CallbackType      `json:"type"`
	Data *response.Payload `json:"data,omitempty"`
}
