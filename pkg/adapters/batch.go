package adapters

import (
	"github.com/de-tools/video-curator/pkg/models/api"
	"github.com/de-tools/video-curator/pkg/models/domain"
)

func MapBatchReportDomainToApi(report *domain.BatchReport) api.BatchReport {
	apiReport := api.BatchReport{
		Details: []api.OutcomeDetail{},
	}
	if report == nil {
		return apiReport
	}

	apiReport.Total = report.Total
	apiReport.Processed = report.Processed
	apiReport.Errors = report.Errors
	for _, d := range report.Details {
		apiReport.Details = append(apiReport.Details, api.OutcomeDetail{
			TopicID:  d.TopicID,
			Topic:    d.Topic,
			Subtopic: d.Subtopic,
			Status:   string(d.Status),
			Message:  d.Message,
		})
	}

	return apiReport
}

func MapCurateRequestApiToDomain(req api.CurateRequest) domain.WorkItem {
	return domain.WorkItem{
		ID:       req.TopicID,
		Topic:    req.Topic,
		Subtopic: req.Subtopic,
	}
}

func MapWorkItemDomainToApi(item domain.WorkItem) api.CurateRequest {
	return api.CurateRequest{
		TopicID:  item.ID,
		Topic:    item.Topic,
		Subtopic: item.Subtopic,
	}
}
