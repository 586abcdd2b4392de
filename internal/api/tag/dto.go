package tags

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,min=1,max=256"`
	Slug string `json:"slug" validate:"required,min=1,max=256"`
}

type UpdateTagRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=256"`
	Slug *string `json:"slug" validate:"omitempty,min=1,max=256"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}
