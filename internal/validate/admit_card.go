package validate

import (
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

type admitCard = models.AdmitCard

var admitCardShape = newShape("admit card",
	identityField("id", func(a *admitCard, v uuid.UUID) { a.ID = v }),
	requiredField("title", titleValue, func(a *admitCard, v string) { a.Title = v }),
	optionalField("slug", slugValue, func(a *admitCard, v string) { a.Slug = v }),
	requiredField("organizationId", uuidValue, func(a *admitCard, v uuid.UUID) { a.OrganizationID = v }),
	nullableField("categoryId", uuidValue, func(a *admitCard) *nullUUID { return &a.CategoryID }),
	nullableField("jobId", uuidValue, func(a *admitCard) *nullUUID { return &a.JobID }),
	defaultField("status", enum(models.AdmitCardStatuses),
		func(a *admitCard, v models.AdmitCardStatus) { a.Status = v }, models.AdmitCardStatusActive),
	defaultField("reviewStatus", enum(models.ReviewStatuses),
		func(a *admitCard, v models.ReviewStatus) { a.ReviewStatus = v }, models.ReviewStatusDraft),
	nullableField("examDate", dateValue, func(a *admitCard) *nullDate { return &a.ExamDate }),
	nullableField("releaseDate", dateValue, func(a *admitCard) *nullDate { return &a.ReleaseDate }),
	nullableField("downloadUrl", urlValue, func(a *admitCard) *nullText { return &a.DownloadURL }),
	nullableField("description", richTextValue, func(a *admitCard) *nullText { return &a.Description }),
	nullableField("examShifts", examShiftsValue,
		func(a *admitCard) *models.Nullable[[]models.ExamShift] { return &a.ExamShifts }),
	nullableField("importantLinks", importantLinksValue,
		func(a *admitCard) *models.Nullable[[]models.ImportantLink] { return &a.ImportantLinks }),
	nullableField("importantDates", opaqueValue, func(a *admitCard) *nullJSON { return &a.ImportantDates }),
	nullableField("dynamicFields", dynamicFieldsValue,
		func(a *admitCard) *models.Nullable[[]models.DynamicField] { return &a.DynamicFields }),
	nullableField("seo", seoValue, func(a *admitCard) *models.Nullable[models.SEO] { return &a.SEO }),
)
