package store

import (
	"fmt"
	"strconv"

	"github.com/lojasmm/rowkit/internal/response"
)

// MentionRecord is the storage and seed-file form of a response.Mention.
// Kind is one of "user", "role", "everyone", "replied_user".
type MentionRecord struct {
	Kind string `json:"kind" yaml:"kind"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty"`
}

func encodeMentions(mentions []response.Mention) []MentionRecord {
	out := make([]MentionRecord, 0, len(mentions))
	for _, m := range mentions {
		switch v := m.(type) {
		case response.UserMention:
			out = append(out, MentionRecord{Kind: "user", ID: strconv.FormatUint(v.ID, 10)})
		case response.RoleMention:
			out = append(out, MentionRecord{Kind: "role", ID: strconv.FormatUint(v.ID, 10)})
		case response.EveryoneMention:
			out = append(out, MentionRecord{Kind: "everyone"})
		case response.RepliedUserMention:
			out = append(out, MentionRecord{Kind: "replied_user"})
		}
	}
	return out
}

func decodeMentions(records []MentionRecord) ([]response.Mention, error) {
	if len(records) == 0 {
		return nil, nil
	}
	out := make([]response.Mention, 0, len(records))
	for _, r := range records {
		switch r.Kind {
		case "user", "role":
			id, err := strconv.ParseUint(r.ID, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%s mention id %q: %w", r.Kind, r.ID, err)
			}
			if r.Kind == "user" {
				out = append(out, response.UserMention{ID: id})
			} else {
				out = append(out, response.RoleMention{ID: id})
			}
		case "everyone":
			out = append(out, response.EveryoneMention{})
		case "replied_user":
			out = append(out, response.RepliedUserMention{})
		default:
			return nil, fmt.Errorf("unknown mention kind %q", r.Kind)
		}
	}
	return out, nil
}
