package models

import (
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/google/uuid"
)

// AdmitCardStatus is the availability state of an admit card.
type AdmitCardStatus string

const (
	AdmitCardStatusActive   AdmitCardStatus = "active"
	AdmitCardStatusInactive AdmitCardStatus = "inactive"
	AdmitCardStatusExpired  AdmitCardStatus = "expired"
)

var AdmitCardStatuses = []AdmitCardStatus{AdmitCardStatusActive, AdmitCardStatusInactive, AdmitCardStatusExpired}

// ReviewStatus is the editorial state of an admit card.
type ReviewStatus string

const (
	ReviewStatusDraft     ReviewStatus = "draft"
	ReviewStatusPublished ReviewStatus = "published"
	ReviewStatusArchived  ReviewStatus = "archived"
)

var ReviewStatuses = []ReviewStatus{ReviewStatusDraft, ReviewStatusPublished, ReviewStatusArchived}

// ExamShift is one sitting of an exam. Times are kept as the admin typed
// them ("08:00", "8:30 AM").
type ExamShift struct {
	ShiftName       string `json:"shiftName"`
	ReportingTime   string `json:"reportingTime"`
	GateClosingTime string `json:"gateClosingTime"`
	ExamTime        string `json:"examTime"`
}

// ImportantLink is a labelled external link shown on the admit card page.
type ImportantLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// AdmitCard is a normalized admit card release, usually attached to a Job.
type AdmitCard struct {
	ID             uuid.UUID                 `json:"id,omitzero"`
	Title          string                    `json:"title"`
	Slug           string                    `json:"slug,omitempty"`
	OrganizationID uuid.UUID                 `json:"organizationId"`
	CategoryID     Nullable[uuid.UUID]       `json:"categoryId,omitzero"`
	JobID          Nullable[uuid.UUID]       `json:"jobId,omitzero"`
	Status         AdmitCardStatus           `json:"status"`
	ReviewStatus   ReviewStatus              `json:"reviewStatus"`
	ExamDate       Nullable[time.Time]       `json:"examDate,omitzero"`
	ReleaseDate    Nullable[time.Time]       `json:"releaseDate,omitzero"`
	DownloadURL    Nullable[string]          `json:"downloadUrl,omitzero"`
	Description    Nullable[string]          `json:"description,omitzero"`
	ExamShifts     Nullable[[]ExamShift]     `json:"examShifts,omitzero"`
	ImportantLinks Nullable[[]ImportantLink] `json:"importantLinks,omitzero"`
	ImportantDates Nullable[jsonvalue.Value] `json:"importantDates,omitzero"`
	DynamicFields  Nullable[[]DynamicField]  `json:"dynamicFields,omitzero"`
	SEO            Nullable[SEO]             `json:"seo,omitzero"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
