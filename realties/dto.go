package realties

// CreateRealtyRequest is the payload for POST /realties. Every field is a
// free-form string; UserID, when set, must name an existing user.
type CreateRealtyRequest struct {
	Name         string `json:"name" example:"Casa principal"`
	Street       string `json:"street" example:"Somewhere in Paris, France"`
	Number       string `json:"number" example:"12"`
	ZipCode      string `json:"zipCode" example:"555-5555"`
	Neighborhood string `json:"neighborhood" example:"Bairro Latino"`
	City         string `json:"city" example:"Paris"`
	State        string `json:"state" example:"-"`
	LiterCost    string `json:"literCost" example:"15"`
	UserID       *uint  `json:"userId,omitempty" example:"1"`
}
