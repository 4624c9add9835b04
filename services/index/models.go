package index

import (
	"context"
	"strings"

	"github.com/meghashyamc/sitesearch/db/indexdb"
)

const modelRelevance = 7

// modelEntry matches one entry of the model-data JSON resource.
type modelEntry struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	UseCase     []string `json:"useCase"`
	Tags        []string `json:"tags"`
	Difficulty  string   `json:"difficulty"`
}

type modelData struct {
	Models []modelEntry `json:"models"`
}

// indexModelData fetches the model-data resource and emits one record per
// model entry. A failed fetch or decode costs the whole source but nothing
// else.
func (s *Service) indexModelData(ctx context.Context) ([]indexdb.SearchRecord, SourceReport) {
	report := SourceReport{Name: sourceModels}

	var data modelData
	if err := s.fetcher.getJSON(ctx, s.modelsPath, &data); err != nil {
		s.logger.Warn("skipping model data", "path", s.modelsPath, "err", err.Error())
		report.Errors = append(report.Errors, err.Error())
		return nil, report
	}

	var records []indexdb.SearchRecord
	for _, model := range data.Models {
		if model.ID == "" || model.Name == "" {
			continue
		}

		searchableParts := []string{model.Name, model.Description}
		searchableParts = append(searchableParts, model.UseCase...)
		searchableParts = append(searchableParts, model.Tags...)
		if model.Difficulty != "" {
			searchableParts = append(searchableParts, model.Difficulty)
		}

		records = append(records, indexdb.SearchRecord{
			ID:             "model-" + model.ID,
			Title:          model.Name,
			Content:        model.Description,
			URL:            "/#model-comparison",
			Type:           indexdb.TypeModel,
			SearchableText: strings.ToLower(strings.Join(searchableParts, " ")),
			Relevance:      modelRelevance,
			Keywords:       model.Tags,
		})
	}

	report.Records = len(records)
	return records, report
}
