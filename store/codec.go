package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/FamilyWing/models"
	"github.com/spf13/cast"
	yaml "gopkg.in/yaml.v3"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// tomlDocument wraps the list because TOML has no top-level arrays.
type tomlDocument struct {
	Members []models.Member `toml:"members"`
}

// ParseMembers decodes an exported member list.
// The only structural check is that the payload is a JSON array; each element
// is read leniently (numbers become strings, missing keys stay empty, and
// anything that is not an object becomes an empty record). Dangling or cyclic
// parent references are accepted as they are.
func ParseMembers(data []byte) ([]models.Member, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrValidation, err)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected array, got %s", ErrValidation, jsonKind(raw))
	}

	members := make([]models.Member, 0, len(items))
	for _, item := range items {
		fields, _ := item.(map[string]any)
		members = append(members, models.Member{
			ID:       cast.ToString(fields["id"]),
			Name:     cast.ToString(fields["name"]),
			Gender:   models.ParseGender(cast.ToString(fields["gender"])),
			DOB:      cast.ToString(fields["dob"]),
			FatherID: cast.ToString(fields["fatherId"]),
			MotherID: cast.ToString(fields["motherId"]),
		})
	}
	return members, nil
}

// Encode serializes members for export. JSON uses a two-space indent and is
// the only format ParseMembers reads back. TOML writes one [[members]] table
// per member.
func Encode(members []models.Member, format string) ([]byte, error) {
	if members == nil {
		members = []models.Member{}
	}

	switch strings.ToLower(format) {
	case "", FormatJSON:
		return json.MarshalIndent(members, "", "  ")
	case FormatYAML:
		return yaml.Marshal(members)
	case FormatTOML:
		buf := new(bytes.Buffer)
		if err := toml.NewEncoder(buf).Encode(tomlDocument{Members: members}); err != nil {
			return nil, fmt.Errorf("failed to marshal TOML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s. Supported formats are json, yaml, toml", format)
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
