package dto

import (
	"time"

	"github.com/allisson/serials/internal/serials/domain"
)

// SerialsResponse is the result of one-shot serial generation.
type SerialsResponse struct {
	Serials []string `json:"serials"`
	Count   int      `json:"count"`
}

// MapSerialsToResponse converts generated serials to an API response.
func MapSerialsToResponse(serials []domain.Serial) SerialsResponse {
	return SerialsResponse{
		Serials: domain.SerialsToStrings(serials),
		Count:   len(serials),
	}
}

// SerialGroupResponse represents a serial group, including its serials.
type SerialGroupResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Serials   []string  `json:"serials"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// MapSerialGroupToResponse converts a domain serial group to an API response.
func MapSerialGroupToResponse(group *domain.SerialGroup) SerialGroupResponse {
	return SerialGroupResponse{
		ID:        group.ID.String(),
		Name:      group.Name,
		Serials:   domain.SerialsToStrings(group.Serials),
		Count:     len(group.Serials),
		CreatedAt: group.CreatedAt,
	}
}

// SerialGroupSummaryResponse represents a serial group in list responses.
// Serials are left out to keep listings small.
type SerialGroupSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// ListSerialGroupsResponse represents a paginated list of serial groups.
type ListSerialGroupsResponse struct {
	Data []SerialGroupSummaryResponse `json:"data"`
}

// MapSerialGroupsToListResponse converts domain serial groups to a list response.
func MapSerialGroupsToListResponse(groups []*domain.SerialGroup) ListSerialGroupsResponse {
	data := make([]SerialGroupSummaryResponse, 0, len(groups))
	for _, group := range groups {
		data = append(data, SerialGroupSummaryResponse{
			ID:        group.ID.String(),
			Name:      group.Name,
			Count:     len(group.Serials),
			CreatedAt: group.CreatedAt,
		})
	}

	return ListSerialGroupsResponse{
		Data: data,
	}
}

// ExportSerialGroupResponse reports where a group was exported.
type ExportSerialGroupResponse struct {
	Key string `json:"key"`
}

// ExportSerialGroupsResponse reports every object written by a bulk export.
type ExportSerialGroupsResponse struct {
	Keys []string `json:"keys"`
}
