package log

// Canonical field names for structured logging.
const (
	FieldComponent     = "component"
	FieldInteractionID = "interaction_id"
	FieldInteraction   = "interaction_type"
	FieldCustomID      = "custom_id"
	FieldDraftID       = "draft_id"
	FieldChannelID     = "channel_id"
	FieldStatus        = "status"
	FieldPath          = "path"
)
