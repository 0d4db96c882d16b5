package team

import (
	"fmt"
	"strings"
)

// Team is a club that can be scheduled into fixtures.
type Team struct {
	ID      string
	Name    string
	Manager string
	Stadium string
	Logo    string
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}
	if strings.TrimSpace(t.Manager) == "" {
		return fmt.Errorf("team manager is required")
	}
	if strings.TrimSpace(t.Stadium) == "" {
		return fmt.Errorf("team stadium is required")
	}

	return nil
}

// NormalizeName is the canonical form used for the uniqueness check, so
// "Arsenal" and "arsenal" collide.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
