package models

import "time"

// JobRecord is a stored Job as served by the API and kept in the read cache:
// the record itself plus the timestamps the store assigns.
type JobRecord struct {
	*Job
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func NewJobRecord(j *Job) JobRecord {
	return JobRecord{Job: j, CreatedAt: j.CreatedAt, UpdatedAt: j.UpdatedAt}
}

// Unwrap returns the Job with its timestamps restored.
func (r JobRecord) Unwrap() *Job {
	if r.Job == nil {
		return nil
	}
	j := *r.Job
	j.CreatedAt, j.UpdatedAt = r.CreatedAt, r.UpdatedAt
	return &j
}

// AdmitCardRecord is the AdmitCard counterpart of JobRecord.
type AdmitCardRecord struct {
	*AdmitCard
	CreatedAt time.Time `json:"createdAt,omitzero"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

func NewAdmitCardRecord(a *AdmitCard) AdmitCardRecord {
	return AdmitCardRecord{AdmitCard: a, CreatedAt: a.CreatedAt, UpdatedAt: a.UpdatedAt}
}

func (r AdmitCardRecord) Unwrap() *AdmitCard {
	if r.AdmitCard == nil {
		return nil
	}
	a := *r.AdmitCard
	a.CreatedAt, a.UpdatedAt = r.CreatedAt, r.UpdatedAt
	return &a
}
