// Package hashid maps internal numeric primary keys to the opaque tokens
// exposed by the public API. Tokens are deterministic and collision-free
// within one entity type; nothing outside this package ever sees a raw key.
package hashid

import (
	"fmt"

	hashids "github.com/speps/go-hashids/v2"

	"trailhead/internal/config"
)

type Codec struct {
	post       *hashids.HashID
	file       *hashids.HashID
	location   *hashids.HashID
	collection *hashids.HashID
}

// NewCodec builds one hashid instance per entity type. Each type gets its
// own salt so a post token never decodes as a file ID and vice versa.
func NewCodec(cfg *config.Config) (*Codec, error) {
	c := &Codec{}
	for name, target := range map[string]**hashids.HashID{
		"post":       &c.post,
		"file":       &c.file,
		"location":   &c.location,
		"collection": &c.collection,
	} {
		hd := hashids.NewData()
		hd.Salt = cfg.Hashid.Salt + ":" + name
		hd.MinLength = cfg.Hashid.MinLength

		h, err := hashids.NewWithData(hd)
		if err != nil {
			return nil, fmt.Errorf("hashid init for %s: %w", name, err)
		}
		*target = h
	}
	return c, nil
}

func (c *Codec) EncodePost(id int64) string       { return encode(c.post, id) }
func (c *Codec) EncodeFile(id int64) string       { return encode(c.file, id) }
func (c *Codec) EncodeLocation(id int64) string   { return encode(c.location, id) }
func (c *Codec) EncodeCollection(id int64) string { return encode(c.collection, id) }

func (c *Codec) DecodePost(token string) (int64, bool)       { return decode(c.post, token) }
func (c *Codec) DecodeFile(token string) (int64, bool)       { return decode(c.file, token) }
func (c *Codec) DecodeLocation(token string) (int64, bool)   { return decode(c.location, token) }
func (c *Codec) DecodeCollection(token string) (int64, bool) { return decode(c.collection, token) }

func encode(h *hashids.HashID, id int64) string {
	token, err := h.EncodeInt64([]int64{id})
	if err != nil {
		// Only negative inputs can fail; internal keys are positive.
		return ""
	}
	return token
}

// decode returns (0, false) for any token that does not map back to an ID.
// An unresolvable token is a normal condition, not an error.
func decode(h *hashids.HashID, token string) (int64, bool) {
	if token == "" {
		return 0, false
	}
	ids, err := h.DecodeInt64WithError(token)
	if err != nil || len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}
