package dto

type CreateInquiryDTO struct {
	PropertyID string `json:"propertyId" binding:"required"`
	Message    string `json:"message" binding:"max=1000"`
}
