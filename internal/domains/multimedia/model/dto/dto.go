package dto

import (
	"multimedia/internal/domains/multimedia/model"
	"multimedia/shared"
	"multimedia/shared/dataurl"
)

type EntryResponse struct {
	ID          string `json:"id"`
	ImageURL    string `json:"image_url"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

func (r *EntryResponse) FromModel(m model.Entry) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.Description = m.Description
	r.CreatedAt = m.CreatedAt
}

type GetEntriesResponse struct {
	Entries   []EntryResponse `json:"entries"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetEntriesResponse) FromModels(models []model.Entry, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Entries = make([]EntryResponse, len(models))
	for i, m := range models {
		r.Entries[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image dataurl.File
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}
