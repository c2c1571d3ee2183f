package dto

type AddressDTO struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	PinCode int    `json:"pinCode"`
	Country string `json:"country"`
}

type CreatePropertyDTO struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	PropertyType string     `json:"propertyType" binding:"required,oneof=Apartment House Villa Plot Studio Other"`
	Price        float64    `json:"price" binding:"required,gt=0"`
	Area         float64    `json:"area" binding:"required,gt=0"`
	Amenities    []string   `json:"amenities"`
	Coordinates  []float64  `json:"coordinates" binding:"required,len=2"`
	Address      AddressDTO `json:"address" binding:"required"`
}

type UpdatePropertyDTO struct {
	Title           *string     `json:"title,omitempty"`
	Description     *string     `json:"description,omitempty"`
	PropertyType    *string     `json:"propertyType,omitempty" binding:"omitempty,oneof=Apartment House Villa Plot Studio Other"`
	Status          *string     `json:"status,omitempty" binding:"omitempty,oneof='For Sale' 'For Rent' Sold"`
	Price           *float64    `json:"price,omitempty" binding:"omitempty,gt=0"`
	SecurityDeposit *float64    `json:"securityDeposit,omitempty"`
	Area            *float64    `json:"area,omitempty" binding:"omitempty,gt=0"`
	Amenities       *[]string   `json:"amenities,omitempty"`
	Coordinates     *[]float64  `json:"coordinates,omitempty" binding:"omitempty,len=2"`
	Address         *AddressDTO `json:"address,omitempty"`
}
