package toml

import (
	"fmt"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Session sessionSchema `toml:"session"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Token           string `toml:"token"`
	DisplayName     string `toml:"display_name"`
	Role            string `toml:"role"`
	RestrictedAgent bool   `toml:"restricted_agent"`
	EstablishedAt   string `toml:"established_at,omitempty"`
}

func toSchema(session domain.Session) sessionSchema {
	encoded := sessionSchema{
		Token:           session.Token,
		DisplayName:     session.Profile.DisplayName,
		Role:            string(session.Profile.Role),
		RestrictedAgent: session.Profile.RestrictedAgent,
	}
	if !session.EstablishedAt.IsZero() {
		encoded.EstablishedAt = session.EstablishedAt.UTC().Format(time.RFC3339)
	}

	return encoded
}

func fromSchema(encoded sessionSchema) domain.Session {
	session := domain.Session{
		Token: encoded.Token,
		Profile: domain.Profile{
			DisplayName:     encoded.DisplayName,
			Role:            domain.Role(encoded.Role),
			RestrictedAgent: encoded.RestrictedAgent,
		},
	}
	if encoded.EstablishedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, encoded.EstablishedAt); err == nil {
			session.EstablishedAt = parsed
		}
	}

	return session
}
