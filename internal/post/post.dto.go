package post

type CreatePostRequest struct {
	Title           string `json:"title,omitempty"`
	Text            string `json:"text" validate:"required,max=2000"`
	ImageURL        string `json:"imageUrl,omitempty"`
	ImageCaption    string `json:"imageCaption,omitempty"`
	SongTitle       string `json:"songTitle,omitempty"`
	ArtistName      string `json:"artistName,omitempty"`
	AlbumArtURL     string `json:"albumArtUrl,omitempty"`
	AudioPreviewURL string `json:"audioPreviewUrl,omitempty"`
}

type FeedResponse struct {
	Posts      []*Post `json:"posts"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
	TotalCount int     `json:"totalCount"`
}
