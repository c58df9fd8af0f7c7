// Package validate checks raw Job and AdmitCard records against their
// declared shapes and returns normalized models.
//
// Input may be a map[string]any as produced by encoding/json or yaml.v3, or a
// jsonvalue.Value. Validation is exhaustive: every field is visited and every
// issue is reported in a single *Report. On any issue no record is returned.
// Shapes are built once at init and are safe for concurrent use.
package validate

import (
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
)

const (
	EntityJob       = "job"
	EntityAdmitCard = "admit_card"
)

// ValidateJob validates raw as a Job. The returned error, if any, is a
// *Report.
func ValidateJob(raw any, mode Mode) (*models.Job, error) {
	r := &Report{Entity: EntityJob}
	j, ok := jobShape.decode("", raw, mode, r)
	if !ok {
		return nil, r
	}
	return &j, nil
}

// ValidateAdmitCard validates raw as an AdmitCard. The returned error, if
// any, is a *Report.
func ValidateAdmitCard(raw any, mode Mode) (*models.AdmitCard, error) {
	r := &Report{Entity: EntityAdmitCard}
	a, ok := admitCardShape.decode("", raw, mode, r)
	if !ok {
		return nil, r
	}
	return &a, nil
}
