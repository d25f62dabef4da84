package domain

import "strings"

// Name is one of the names a user is known by
type Name struct {
	First  string  `validate:"required"`
	Last   string  `validate:"required"`
	Middle *string `validate:"omitempty"`
	Suffix *string `validate:"omitempty"`
}

// FullName joins the present name parts with single spaces
func (n Name) FullName() string {
	parts := []string{n.First}
	if n.Middle != nil && *n.Middle != "" {
		parts = append(parts, *n.Middle)
	}
	parts = append(parts, n.Last)
	if n.Suffix != nil && *n.Suffix != "" {
		parts = append(parts, *n.Suffix)
	}
	return strings.Join(parts, " ")
}

// Address is one of the places a user has lived
type Address struct {
	City    string  `validate:"required"`
	State   string  `validate:"required,len=2"`
	Street  *string `validate:"omitempty"`
	ZipCode *string `validate:"omitempty"`
}

// Profile is the personal information brokers are searched for
type Profile struct {
	ID        *int64
	Names     []Name    `validate:"min=1,dive"`
	Addresses []Address `validate:"min=1,dive"`
	Phones    []string  `validate:"dive,required"`
	BirthYear int       `validate:"gte=1900"`
}

// ProfileQuery is one search derived from a profile
type ProfileQuery struct {
	ID         *int64
	FirstName  string
	LastName   string
	MiddleName *string
	Suffix     *string
	City       string
	State      string
	Street     *string
	ZipCode    *string
	Phone      *string
	BirthYear  int
	Deprecated bool
}

// Identity returns a key that is equal for queries searching for the same person at the same place
func (q ProfileQuery) Identity() string {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	fields := []string{
		q.FirstName,
		deref(q.MiddleName),
		q.LastName,
		deref(q.Suffix),
		q.City,
		q.State,
		deref(q.Street),
		deref(q.ZipCode),
		deref(q.Phone),
	}
	for i, f := range fields {
		fields[i] = strings.ToLower(strings.TrimSpace(f))
	}
	return strings.Join(fields, "|")
}

// Queries fans a profile out into one query per (name, address) pair.
// Every query carries the first phone number and the birth year.
func (p Profile) Queries() []ProfileQuery {
	var phone *string
	if len(p.Phones) > 0 {
		ph := p.Phones[0]
		phone = &ph
	}

	queries := make([]ProfileQuery, 0, len(p.Names)*len(p.Addresses))
	for _, n := range p.Names {
		for _, a := range p.Addresses {
			queries = append(queries, ProfileQuery{
				FirstName:  n.First,
				LastName:   n.Last,
				MiddleName: n.Middle,
				Suffix:     n.Suffix,
				City:       a.City,
				State:      a.State,
				Street:     a.Street,
				ZipCode:    a.ZipCode,
				Phone:      phone,
				BirthYear:  p.BirthYear,
			})
		}
	}
	return queries
}
