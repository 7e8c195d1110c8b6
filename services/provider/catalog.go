package provider

// ServiceCategory is an offered service type with its marketing copy.
type ServiceCategory struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ServiceCategories is the catalog of service types a provider may register
// under. The registered provider carries the category's title and
// description.
var ServiceCategories = []ServiceCategory{
	{ID: "plumbing", Title: "Plumbing", Description: "Professional plumbing services"},
	{ID: "electrical", Title: "Electrical", Description: "Electrical installation and repair services"},
	{ID: "cleaning", Title: "Cleaning", Description: "Professional cleaning services"},
	{ID: "painting", Title: "Painting", Description: "Interior and exterior painting services"},
	{ID: "gardening", Title: "Gardening", Description: "Gardening and landscaping services"},
	{ID: "carpentry", Title: "Carpentry", Description: "Carpentry and woodworking services"},
}

// LookupCategory returns the catalog entry for the given id.
func LookupCategory(id string) (ServiceCategory, bool) {
	for _, c := range ServiceCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ServiceCategory{}, false
}
