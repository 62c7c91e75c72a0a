package response

import "strconv"

// Mention allows one kind of mention in the message content to ping.
// Anything not listed is suppressed once at least one Mention is set.
type Mention interface {
	mention()
}

type UserMention struct{ ID uint64 }

type RoleMention struct{ ID uint64 }

// EveryoneMention allows @everyone and @here.
type EveryoneMention struct{}

// RepliedUserMention pings the author of the message being replied to.
type RepliedUserMention struct{}

func (UserMention) mention()        {}
func (RoleMention) mention()        {}
func (EveryoneMention) mention()    {}
func (RepliedUserMention) mention() {}

// AllowedMentions is the wire form of a mention list.
type AllowedMentions struct {
	Parse       []string `json:"parse"`
	Users       []string `json:"users,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	RepliedUser bool     `json:"replied_user,omitempty"`
}

func allowedMentions(mentions []Mention) *AllowedMentions {
	if len(mentions) == 0 {
		return nil
	}

	am := &AllowedMentions{Parse: []string{}}
	for _, m := range mentions {
		switch v := m.(type) {
		case UserMention:
			am.Users = append(am.Users, strconv.FormatUint(v.ID, 10))
		case RoleMention:
			am.Roles = append(am.Roles, strconv.FormatUint(v.ID, 10))
		case EveryoneMention:
			if !contains(am.Parse, "everyone") {
				am.Parse = append(am.Parse, "everyone")
			}
		case RepliedUserMention:
			am.RepliedUser = true
		}
	}
	return am
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
