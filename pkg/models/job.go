package models

import (
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/google/uuid"
)

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobStatusActive   JobStatus = "active"
	JobStatusInactive JobStatus = "inactive"
	JobStatusExpired  JobStatus = "expired"
	JobStatusUpcoming JobStatus = "upcoming"
)

// JobStatuses is the closed set of accepted job statuses.
var JobStatuses = []JobStatus{JobStatusActive, JobStatusInactive, JobStatusExpired, JobStatusUpcoming}

// Job is a normalized exam/job posting. Fields typed Nullable keep the
// absent/null/value distinction of the submitted record.
type Job struct {
	ID                      uuid.UUID                 `json:"id,omitzero"`
	Title                   string                    `json:"title"`
	Slug                    string                    `json:"slug,omitempty"`
	ShortDescription        Nullable[string]          `json:"shortDescription,omitzero"`
	Description             Nullable[string]          `json:"description,omitzero"`
	Status                  JobStatus                 `json:"status"`
	OrganizationID          uuid.UUID                 `json:"organizationId"`
	CategoryID              Nullable[uuid.UUID]       `json:"categoryId,omitzero"`
	StateIDs                Nullable[[]uuid.UUID]     `json:"stateIds,omitzero"`
	TagIDs                  Nullable[[]uuid.UUID]     `json:"tagIds,omitzero"`
	RelatedJobIDs           Nullable[[]uuid.UUID]     `json:"relatedJobIds,omitzero"`
	TotalVacancies          int                       `json:"totalVacancies"`
	MinAge                  Nullable[int]             `json:"minAge,omitzero"`
	MaxAge                  Nullable[int]             `json:"maxAge,omitzero"`
	Qualification           Nullable[string]          `json:"qualification,omitzero"`
	ApplyStartDate          Nullable[time.Time]       `json:"applyStartDate,omitzero"`
	ExpiryDate              Nullable[time.Time]       `json:"expiryDate,omitzero"`
	MainExamDate            Nullable[time.Time]       `json:"mainExamDate,omitzero"`
	ApplyURL                Nullable[string]          `json:"applyUrl,omitzero"`
	OfficialNotificationURL Nullable[string]          `json:"officialNotificationUrl,omitzero"`
	ApplicationFee          Nullable[jsonvalue.Value] `json:"applicationFee,omitzero"`
	ImportantDates          Nullable[jsonvalue.Value] `json:"importantDates,omitzero"`
	IsFeatured              bool                      `json:"isFeatured"`
	DynamicFields           Nullable[[]DynamicField]  `json:"dynamicFields,omitzero"`
	SEO                     Nullable[SEO]             `json:"seo,omitzero"`

	// Set by the store; never part of a submitted record.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
