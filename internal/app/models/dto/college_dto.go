package dto

// CreateCollegeRequest represents the payload for registering a college.
// The owning user is taken from the auth context, never from the body.
type CreateCollegeRequest struct {
	Name            string  `json:"name" binding:"required"`
	EstablishedYear int     `json:"establishedYear" binding:"required,gte=1800,lte=2100"`
	Accreditation   string  `json:"accreditation" binding:"required"`
	City            string  `json:"city" binding:"required"`
	State           string  `json:"state" binding:"required"`
	ContactEmail    string  `json:"contactEmail" binding:"required,email"`
	ContactPhone    *string `json:"contactPhone,omitempty"`
	Website         *string `json:"website,omitempty"`
	EmailDomain     string  `json:"emailDomain" binding:"required"`
	Description     *string `json:"description,omitempty"`
}

// UpdateCollegeRequest is a full replace of the mutable college attributes
type UpdateCollegeRequest = CreateCollegeRequest

// UpsertInfrastructureRequest represents the one-to-one infrastructure payload
type UpsertInfrastructureRequest struct {
	CampusArea  float64 `json:"campusArea" binding:"required,gt=0"`
	Hostel      bool    `json:"hostel"`
	Labs        bool    `json:"labs"`
	Sports      bool    `json:"sports"`
	Library     bool    `json:"library"`
	Wifi        bool    `json:"wifi"`
	Description *string `json:"description,omitempty"`
}

// CollegeListFilter carries the optional search filters of the public
// college listing endpoint.
type CollegeListFilter struct {
	City  string `form:"city"`
	State string `form:"state"`
	Name  string `form:"name"`
	Page  int    `form:"page,default=1"`
	Size  int    `form:"size,default=10"`
}
