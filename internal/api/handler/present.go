package handler

import "github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"

// PresentJob adds the store timestamps to a Job response.
func PresentJob(j *models.Job) any { return models.NewJobRecord(j) }

func PresentAdmitCard(a *models.AdmitCard) any { return models.NewAdmitCardRecord(a) }
