package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// GenreList is the domain representation of an entity's genres. The column
// stores the comma-joined form only; splitting and joining live here so no
// other layer sees the encoding. Legacy rows may be wrapped in braces
// ("{Rock,Jazz}"), which Scan strips.
type GenreList []string

func (GenreList) GormDataType() string {
	return "text"
}

func (g *GenreList) Scan(value any) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*g = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported genres column type %T", value)
	}

	raw = strings.Trim(raw, "{}")
	if raw == "" {
		*g = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	genres := make(GenreList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			genres = append(genres, trimmed)
		}
	}

	*g = genres
	return nil
}

func (g GenreList) Value() (driver.Value, error) {
	return strings.Join(g, ","), nil
}
