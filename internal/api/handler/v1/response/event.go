package response

type EventViewResponse struct {
	Success bool `json:"success"`
}

type EventUpdateResponse struct {
	Success     bool     `json:"success"`
	Photos      []string `json:"photos"`
	Video       *string  `json:"video"`
	MediaPhotos []string `json:"media_photos"`
}

type EventAddResponse struct {
	Success bool `json:"success"`
	EventID uint `json:"event_id"`
}
