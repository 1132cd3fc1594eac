package user

type CreateUserRequest struct {
	ClerkID       string `json:"clerkId" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Username      string `json:"username" validate:"required,min=3,max=30"`
	Bio           string `json:"bio,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

type UpdateProfileRequest struct {
	Username      string `json:"username,omitempty"`
	Bio           string `json:"bio,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
}

type SearchResult struct {
	Users []*User `json:"users"`
	Count int     `json:"count"`
}
