package api

import (
	"encoding/json"
	"time"

	"github.com/rentora/admin-cli/internal/domain"
)

type addressPayload struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type userPayload struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Email          string         `json:"email"`
	Phone          string         `json:"phone"`
	AlternatePhone string         `json:"alternatePhone"`
	Address        addressPayload `json:"address"`
	Role           string         `json:"role"`
	IsBlocked      bool           `json:"isBlocked"`
	CreatedAt      string         `json:"createdAt"`
	Gender         string         `json:"gender"`
	DateOfBirth    string         `json:"dateOfBirth"`
	Bio            string         `json:"bio"`
	ProfileImage   string         `json:"profileImage"`
}

func (p userPayload) toRecord() domain.Record {
	status := domain.StatusActive
	if p.IsBlocked {
		status = domain.StatusBlocked
	}

	return domain.Record{
		ID:             p.ID,
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		AlternatePhone: p.AlternatePhone,
		Role:           p.Role,
		Status:         status,
		CreatedAt:      parseServerTime(p.CreatedAt),
		Address: domain.Address{
			Line1:   p.Address.Line1,
			City:    p.Address.City,
			State:   p.Address.State,
			Pincode: p.Address.Pincode,
		},
		Gender:       p.Gender,
		DateOfBirth:  p.DateOfBirth,
		Bio:          p.Bio,
		ProfileImage: p.ProfileImage,
	}
}

type propertyPayload struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Category     string         `json:"category"`
	ContactEmail string         `json:"contactEmail"`
	ContactPhone string         `json:"contactPhone"`
	Address      addressPayload `json:"address"`
	IsApproved   bool           `json:"isApproved"`
	CreatedAt    string         `json:"createdAt"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
}

func (p propertyPayload) toRecord() domain.Record {
	status := domain.StatusPending
	if p.IsApproved {
		status = domain.StatusPublished
	}

	return domain.Record{
		ID:        p.ID,
		Name:      p.Title,
		Email:     p.ContactEmail,
		Phone:     p.ContactPhone,
		Role:      p.Category,
		Status:    status,
		CreatedAt: parseServerTime(p.CreatedAt),
		Address: domain.Address{
			Line1:   p.Address.Line1,
			City:    p.Address.City,
			State:   p.Address.State,
			Pincode: p.Address.Pincode,
		},
		Bio:          p.Description,
		ProfileImage: p.Image,
	}
}

// unwrapListPayload accepts the handful of wrapper shapes the service
// has shipped for list responses: a bare array or an object keyed by
// properties, listings, or data. None matched means an empty list.
func unwrapListPayload(body []byte) []json.RawMessage {
	var direct []json.RawMessage
	if err := json.Unmarshal(body, &direct); err == nil {
		return direct
	}

	var wrapped struct {
		Properties []json.RawMessage `json:"properties"`
		Listings   []json.RawMessage `json:"listings"`
		Data       []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil
	}

	switch {
	case wrapped.Properties != nil:
		return wrapped.Properties
	case wrapped.Listings != nil:
		return wrapped.Listings
	case wrapped.Data != nil:
		return wrapped.Data
	default:
		return nil
	}
}

func parseServerTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return time.Time{}
}
