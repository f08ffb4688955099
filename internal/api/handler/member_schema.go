package handler

import "github.com/fitengage/gym-manager/internal/core/domain"

type memberRequest struct {
	Name             string `json:"name"               validate:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	MembershipTypeID uint   `json:"membership_type_id"`
	MembershipStart  string `json:"membership_start"`
	MembershipEnd    string `json:"membership_end"`
	Notes            string `json:"notes"`
}

type membersResponse struct {
	envelope
	Members []domain.Member `json:"members"`
}

type membershipTypesResponse struct {
	envelope
	MembershipTypes []domain.MembershipType `json:"membershipTypes"`
}

type memberCreatedResponse struct {
	envelope
	MemberID uint `json:"memberId,omitempty"`
}
