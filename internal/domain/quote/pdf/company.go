package pdf

// Company is the static content printed on every quote.
type Company struct {
	Name    string
	Tagline string
	Address string
	Phones  string
	Email   string
	Banking Banking
}

type Banking struct {
	Bank          string
	AccountName   string
	AccountNumber string
	BranchCode    string
	ReferenceNote string
	SwiftCode     string
}

func DefaultCompany() Company {
	return Company{
		Name:    "Eagles Events",
		Tagline: "Creating Unforgettable Moments",
		Address: "Phiva St, Protea Glen, Soweto, 1819",
		Phones:  "083-989-4082 / 068-078-0301",
		Email:   "eaglesevents581@gmail.com",
		Banking: Banking{
			Bank:          "First National Bank (FNB)",
			AccountName:   "Eagles Events",
			AccountNumber: "628 123 456 78",
			BranchCode:    "250 655",
			ReferenceNote: "Use Quote Reference or Customer Name",
			SwiftCode:     "FIRNZAJJ (for international transfers)",
		},
	}
}
