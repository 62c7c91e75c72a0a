package store_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/response"
	"github.com/lojasmm/rowkit/internal/store"
)

func openStore(t *testing.T) *store.BoltStore {
	t.Helper()
	s, err := store.NewBoltStore(filepath.Join(t.TempDir(), "rowkit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleDraft() response.Draft {
	placeholder := "Choose"
	return response.Draft{
		Content: "Welcome!",
		Embeds:  []response.Embed{{Title: "Rules", Color: 0x5865F2}},
		Components: []component.ActionRow{
			{Components: []component.Leaf{
				component.NewButton(component.ButtonPrimary, "draft:rules", "Rules"),
				component.NewLinkButton("https://example.com", "Site"),
			}},
			{Components: []component.Leaf{
				component.SelectMenu{
					CustomID:    "roles",
					Placeholder: &placeholder,
					Options:     []component.SelectOption{{Label: "Red", Value: "red", Emoji: &component.Emoji{Name: "🟥"}}},
				},
			}},
		},
		Mentions: []response.Mention{response.UserMention{ID: 10}, response.EveryoneMention{}},
	}
}

func TestBoltStore_DraftRoundTrip(t *testing.T) {
	s := openStore(t)
	want := sampleDraft()

	require.NoError(t, s.SaveDraft("welcome", want))

	got, err := s.GetDraft("welcome")
	require.NoError(t, err)
	require.NotNil(t, got)

	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestBoltStore_MissingDraft(t *testing.T) {
	s := openStore(t)
	got, err := s.GetDraft("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBoltStore_ListAndDelete(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.SaveDraft("b", response.Draft{Content: "b"}))
	require.NoError(t, s.SaveDraft("a", response.Draft{Content: "a"}))

	ids, err := s.ListDrafts()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)

	require.NoError(t, s.DeleteDraft("a"))
	ids, err = s.ListDrafts()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)
}

func TestBoltStore_EmptyID(t *testing.T) {
	s := openStore(t)
	assert.Error(t, s.SaveDraft("", response.Draft{}))
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
drafts:
  - id: welcome
    content: "Hi there"
    embeds:
      - title: First
      - title: Second
    mentions:
      - kind: role
        id: "123"
    components:
      - type: 1
        components:
          - {type: 2, style: 1, custom_id: "draft:rules", label: Rules, disabled: false}
          - {type: 2, style: 2, custom_id: "x", disabled: false, emoji: {id: 854260064906117121}}
  - content: "anonymous"
`), 0o600))

	drafts, err := store.LoadSeedFile(path)
	require.NoError(t, err)
	require.Len(t, drafts, 2)

	w := drafts["welcome"]
	assert.Equal(t, "Hi there", w.Content)
	assert.Len(t, w.Embeds, 2)
	assert.Equal(t, []response.Mention{response.RoleMention{ID: 123}}, w.Mentions)
	require.Len(t, w.Components, 1)
	require.Len(t, w.Components[0].Components, 2)
	b := w.Components[0].Components[1].(component.Button)
	assert.Equal(t, uint64(854260064906117121), b.Emoji.ID)

	var anonID string
	for id := range drafts {
		if id != "welcome" {
			anonID = id
		}
	}
	assert.Len(t, anonID, 36, "drafts without an id get a UUID")

	s := openStore(t)
	require.NoError(t, store.Seed(s, drafts))
	got, err := s.GetDraft("welcome")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, w.Mentions, got.Mentions)
}

func TestLoadSeedFile_RejectsNestedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
drafts:
  - id: bad
    components:
      - type: 1
        components:
          - type: 1
            components: []
`), 0o600))

	_, err := store.LoadSeedFile(path)
	assert.ErrorIs(t, err, component.ErrInvalidNesting)
}

func TestLoadSeedFile_UnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("drafts:\n  - id: x\n    colour: red\n"), 0o600))

	_, err := store.LoadSeedFile(path)
	assert.Error(t, err)
}

func TestLoadSeedFile_RejectsLongContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.yaml")
	doc := "drafts:\n  - id: long\n    content: " + strings.Repeat("x", 2001) + "\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := store.LoadSeedFile(path)
	assert.ErrorContains(t, err, "2001 characters")
}
