package validate

import (
	"fmt"
	"time"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
	"github.com/google/uuid"
)

type (
	job       = models.Job
	nullUUID  = models.Nullable[uuid.UUID]
	nullUUIDs = models.Nullable[[]uuid.UUID]
	nullText  = models.Nullable[string]
	nullDate  = models.Nullable[time.Time]
	nullInt   = models.Nullable[int]
	nullJSON  = models.Nullable[jsonvalue.Value]
)

var jobShape = newShape("job",
	identityField("id", func(j *job, v uuid.UUID) { j.ID = v }),
	requiredField("title", titleValue, func(j *job, v string) { j.Title = v }),
	optionalField("slug", slugValue, func(j *job, v string) { j.Slug = v }),
	nullableField("shortDescription", boundedString(coerce.Bounds{Max: 500}),
		func(j *job) *nullText { return &j.ShortDescription }),
	nullableField("description", richTextValue, func(j *job) *nullText { return &j.Description }),
	defaultField("status", enum(models.JobStatuses),
		func(j *job, v models.JobStatus) { j.Status = v }, models.JobStatusActive),
	requiredField("organizationId", uuidValue, func(j *job, v uuid.UUID) { j.OrganizationID = v }),
	nullableField("categoryId", uuidValue, func(j *job) *nullUUID { return &j.CategoryID }),
	nullableField("stateIds", uuidArray, func(j *job) *nullUUIDs { return &j.StateIDs }),
	nullableField("tagIds", uuidArray, func(j *job) *nullUUIDs { return &j.TagIDs }),
	nullableField("relatedJobIds", uuidArray, func(j *job) *nullUUIDs { return &j.RelatedJobIDs }),
	defaultField("totalVacancies", countValue, func(j *job, v int) { j.TotalVacancies = v }, 0),
	nullableField("minAge", countValue, func(j *job) *nullInt { return &j.MinAge }),
	nullableField("maxAge", countValue, func(j *job) *nullInt { return &j.MaxAge }),
	nullableField("qualification", boundedString(coerce.Bounds{Max: 1000}),
		func(j *job) *nullText { return &j.Qualification }),
	nullableField("applyStartDate", dateValue, func(j *job) *nullDate { return &j.ApplyStartDate }),
	nullableField("expiryDate", dateValue, func(j *job) *nullDate { return &j.ExpiryDate }),
	nullableField("mainExamDate", dateValue, func(j *job) *nullDate { return &j.MainExamDate }),
	nullableField("applyUrl", urlValue, func(j *job) *nullText { return &j.ApplyURL }),
	nullableField("officialNotificationUrl", urlValue,
		func(j *job) *nullText { return &j.OfficialNotificationURL }),
	nullableField("applicationFee", opaqueValue, func(j *job) *nullJSON { return &j.ApplicationFee }),
	nullableField("importantDates", opaqueValue, func(j *job) *nullJSON { return &j.ImportantDates }),
	defaultField("isFeatured", boolValue, func(j *job, v bool) { j.IsFeatured = v }, false),
	nullableField("dynamicFields", dynamicFieldsValue,
		func(j *job) *models.Nullable[[]models.DynamicField] { return &j.DynamicFields }),
	nullableField("seo", seoValue, func(j *job) *models.Nullable[models.SEO] { return &j.SEO }),
).withCheck(checkAgeRange)

// checkAgeRange rejects an inverted age window. Either bound may be absent or
// null, or may have failed its own coercion, in which case nothing is checked.
func checkAgeRange(j *job, p Path, r *Report) {
	lo, okLo := j.MinAge.Get()
	hi, okHi := j.MaxAge.Get()
	if okLo && okHi && lo > hi {
		r.add(p.Key("maxAge"), CodeInvalidRange,
			fmt.Sprintf("must be greater than or equal to minAge (%d), got %d", lo, hi))
	}
}
