package dto

import "learnpath/internal/domain"

// ResultItem is one catalog row as served by /data. Field names keep the
// catalog's column names.
// @Description Catalog entry
type ResultItem struct {
	Titel            string  `json:"Titel"`
	Niveau           int     `json:"Niveau"`
	Onderwerp        string  `json:"Onderwerp,omitempty"`
	Type             string  `json:"Type,omitempty"`
	Tijdsinvestering float64 `json:"Tijdsinvestering"`
	Taal             string  `json:"Taal,omitempty"`
	Organisatie      string  `json:"Organisatie,omitempty"`
	Beschrijving     string  `json:"Beschrijving,omitempty"`
	Link             string  `json:"Link,omitempty"`
}

// DataResponse is the /data body
// @Description Filtered recommendations
type DataResponse struct {
	Status string       `json:"status,omitempty"`
	Data   []ResultItem `json:"data"`
}

// CourseResponse is one entry of /api/courses
type CourseResponse struct {
	ID string `json:"id"`
	ResultItem
}

// DataRequest holds the raw /data query parameters.
type DataRequest struct {
	Score string `query:"score"`
	Topic string `query:"topic"`
	Time  string `query:"time"`
	Type  string `query:"type"`
}

func ToResultItem(e *domain.Elearning) ResultItem {
	return ResultItem{
		Titel:            e.Titel,
		Niveau:           e.Niveau,
		Onderwerp:        e.Onderwerp,
		Type:             e.Type,
		Tijdsinvestering: e.Tijdsinvestering,
		Taal:             e.Taal,
		Organisatie:      e.Organisatie,
		Beschrijving:     e.Beschrijving,
		Link:             e.Link,
	}
}

// ToDataResponse converts a filter result. Data is never null.
func ToDataResponse(r *domain.FilterResult) DataResponse {
	resp := DataResponse{Status: r.Status, Data: make([]ResultItem, 0, len(r.Items))}
	for _, e := range r.Items {
		resp.Data = append(resp.Data, ToResultItem(e))
	}
	return resp
}

func ToCourseResponses(items []*domain.Elearning) []CourseResponse {
	out := make([]CourseResponse, 0, len(items))
	for _, e := range items {
		out = append(out, CourseResponse{ID: e.ID, ResultItem: ToResultItem(e)})
	}
	return out
}
