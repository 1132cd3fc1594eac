package seed

type CreateSeedRequest struct {
	Front    string `json:"front" validate:"required"`
	Back     string `json:"back" validate:"required"`
	Category string `json:"category,omitempty"`
}

type ReviewSeedRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=forgot hard easy"`
}

type ReviewSessionResponse struct {
	Seeds []*Seed `json:"seeds"`
	Count int     `json:"count"`
}
