package validate

import (
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
)

var seoShape = newShape("seo",
	nullableField("metaTitle", boundedString(coerce.Bounds{Max: 70}),
		func(s *models.SEO) *models.Nullable[string] { return &s.MetaTitle }),
	nullableField("metaDescription", boundedString(coerce.Bounds{Max: 160}),
		func(s *models.SEO) *models.Nullable[string] { return &s.MetaDescription }),
	nullableField("keywords", keywordsValue,
		func(s *models.SEO) *models.Nullable[[]string] { return &s.Keywords }),
	nullableField("canonicalUrl", urlValue,
		func(s *models.SEO) *models.Nullable[string] { return &s.CanonicalURL }),
	nullableField("schemaMarkup", opaqueValue,
		func(s *models.SEO) *models.Nullable[jsonvalue.Value] { return &s.SchemaMarkup }),
)

var examShiftShape = newShape("exam shift",
	requiredField("shiftName", shortTextValue, func(s *models.ExamShift, v string) { s.ShiftName = v }),
	requiredField("reportingTime", shortTextValue, func(s *models.ExamShift, v string) { s.ReportingTime = v }),
	requiredField("gateClosingTime", shortTextValue, func(s *models.ExamShift, v string) { s.GateClosingTime = v }),
	requiredField("examTime", shortTextValue, func(s *models.ExamShift, v string) { s.ExamTime = v }),
)

var importantLinkShape = newShape("important link",
	requiredField("label", titleValue, func(l *models.ImportantLink, v string) { l.Label = v }),
	requiredField("url", urlValue, func(l *models.ImportantLink, v string) { l.URL = v }),
)

var (
	seoValue            = seoShape.converter()
	examShiftsValue     = arrayOf(examShiftShape.converter())
	importantLinksValue = arrayOf(importantLinkShape.converter())
)
