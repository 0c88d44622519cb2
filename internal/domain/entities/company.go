package entities

// MaxLogoBytes bounds the decoded size of an uploaded company logo.
const MaxLogoBytes = 2 * 1024 * 1024

// CompanyInfo is the letterhead printed on estimates, stored at /info.
type CompanyInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DefaultCompanyInfo is shown until the operator saves their own details.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:    "Pixar World Construction Private Limited",
		Email:   "pixarworldconstruction@gmail.com",
		Phone:   "+91 6354753565",
		Address: "FF-08 Fortune Greens, Vadodara",
	}
}

// WithDefaults fills blank fields from DefaultCompanyInfo.
func (c CompanyInfo) WithDefaults() CompanyInfo {
	d := DefaultCompanyInfo()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Email == "" {
		c.Email = d.Email
	}
	if c.Phone == "" {
		c.Phone = d.Phone
	}
	if c.Address == "" {
		c.Address = d.Address
	}
	return c
}
