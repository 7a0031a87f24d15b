package types

type CreateCurationRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsPublic    bool     `json:"isPublic"`
}

type UpdateCurationRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsPublic    *bool    `json:"isPublic"`
	CoverImage  string   `json:"coverImage"`
}

type AddCurationEntryRequest struct {
	PlaceID     string   `json:"placeId" binding:"required"`
	DisplayName *string  `json:"displayName"`
	Address     *string  `json:"address"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Rating      *float64 `json:"rating"`
	PriceLevel  *string  `json:"priceLevel"`
	PrimaryType *string  `json:"primaryType"`
	Note        string   `json:"note"`
}

type CurationListQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=50"`
}
