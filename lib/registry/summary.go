package registry

import (
	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog/log"
)

// Summary is the typed view of a part served by the api and printed by the cli.
type Summary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name,omitempty"`
	ShortName   string       `json:"short_name,omitempty"`
	Type        string       `json:"type,omitempty"`
	Nickname    string       `json:"nickname,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      string       `json:"status,omitempty"`
	URL         strfmt.URI   `json:"url,omitempty"`
	Entered     *strfmt.Date `json:"entered,omitempty"`
	Author      string       `json:"author,omitempty"`
	UniProtID   string       `json:"uniprot_id,omitempty"`
	Sequence    string       `json:"sequence,omitempty"`
}

// Summary collects the well-known attributes. Absent attributes are left empty.
func (p *Part) Summary() Summary {
	get := func(path string) string {
		v, _ := p.Attribute(path)
		return v
	}

	s := Summary{
		ID:          p.ID,
		Name:        get(PartName),
		ShortName:   get(PartShortName),
		Type:        get(PartType),
		Nickname:    get(PartNickname),
		Description: get(PartShortDesc),
		Status:      get(ReleaseStatus),
		Author:      get(PartAuthor),
		Sequence:    get(SequenceData),
	}
	s.UniProtID, _ = p.UniProtID()

	if u := get(PartUrl); u != "" && strfmt.Default.Validates("uri", u) {
		s.URL = strfmt.URI(u)
	}

	if entered := get(PartEntered); entered != "" {
		var d strfmt.Date
		if err := d.UnmarshalText([]byte(entered)); err != nil {
			log.Debug().Err(err).Str("part", p.ID).Str("entered", entered).Msg("unparseable entry date")
		} else {
			s.Entered = &d
		}
	}
	return s
}
