package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lojasmm/rowkit/internal/component"
	"github.com/lojasmm/rowkit/internal/response"
	"github.com/lojasmm/rowkit/internal/wire"
)

// SeedFile is the YAML document drafts are bootstrapped from:
//
//	drafts:
//	  - id: welcome
//	    content: "Hi!"
//	    components:
//	      - type: 1
//	        components:
//	          - {type: 2, style: 1, custom_id: "draft:rules", label: "Rules", disabled: false}
type SeedFile struct {
	Drafts []SeedDraft `yaml:"drafts"`
}

type SeedDraft struct {
	ID         string           `yaml:"id"`
	Content    string           `yaml:"content"`
	Embeds     []response.Embed `yaml:"embeds"`
	Mentions   []MentionRecord  `yaml:"mentions"`
	Components []map[string]any `yaml:"components"`
}

// LoadSeedFile reads and parses a seed file. Components go through the same
// decoder as inbound payloads, so a bad seed fails here rather than at send time.
func LoadSeedFile(path string) (map[string]response.Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var f SeedFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}

	drafts := make(map[string]response.Draft, len(f.Drafts))
	for i, sd := range f.Drafts {
		id := sd.ID
		if id == "" {
			id = uuid.NewString()
		}
		if _, dup := drafts[id]; dup {
			return nil, fmt.Errorf("seed draft %d: duplicate id %q", i, id)
		}

		if n := utf8.RuneCountInString(sd.Content); n > response.MaxContentLength {
			return nil, fmt.Errorf("seed draft %q: content has %d characters, limit is %d", id, n, response.MaxContentLength)
		}

		nodes := make([]wire.Node, len(sd.Components))
		for j, c := range sd.Components {
			nodes[j] = wire.Node(c)
		}
		rows, err := component.DecodeRows(nodes)
		if err != nil {
			return nil, fmt.Errorf("seed draft %q: %w", id, err)
		}
		mentions, err := decodeMentions(sd.Mentions)
		if err != nil {
			return nil, fmt.Errorf("seed draft %q: %w", id, err)
		}

		drafts[id] = response.Draft{
			Content:    sd.Content,
			Embeds:     sd.Embeds,
			Components: rows,
			Mentions:   mentions,
		}
	}
	return drafts, nil
}

// Seed writes every draft into s, replacing drafts with the same ID.
func Seed(s Store, drafts map[string]response.Draft) error {
	for id, d := range drafts {
		if err := s.SaveDraft(id, d); err != nil {
			return fmt.Errorf("seeding draft %s: %w", id, err)
		}
	}
	return nil
}
