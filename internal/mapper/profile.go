package mapper

import (
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/store"
	"github.com/brokerguard/dbp/internal/store/schema"
	"github.com/brokerguard/dbp/internal/types"
)

// ProfileRows is a profile split into its encrypted rows
type ProfileRows struct {
	Profile   schema.ProfileDB
	Names     []schema.NameDB
	Addresses []schema.AddressDB
	Phones    []schema.PhoneDB
}

// ProfileToDB encrypts a profile and its children
func (m *Mapper) ProfileToDB(profile domain.Profile) (*ProfileRows, error) {
	birthYear, err := m.encryptInt(profile.BirthYear)
	if err != nil {
		return nil, err
	}

	rows := &ProfileRows{
		Profile: schema.ProfileDB{ID: types.SafeInt64(profile.ID), BirthYear: birthYear},
	}
	for _, n := range profile.Names {
		row, err := m.NameToDB(n)
		if err != nil {
			return nil, err
		}
		rows.Names = append(rows.Names, row)
	}
	for _, a := range profile.Addresses {
		row, err := m.AddressToDB(a)
		if err != nil {
			return nil, err
		}
		rows.Addresses = append(rows.Addresses, row)
	}
	for _, p := range profile.Phones {
		row, err := m.PhoneToDB(p)
		if err != nil {
			return nil, err
		}
		rows.Phones = append(rows.Phones, row)
	}
	return rows, nil
}

// ProfileToModel decrypts a stored profile
func (m *Mapper) ProfileToModel(stored store.ProfileWithChildren) (*domain.Profile, error) {
	birthYear, err := m.decryptInt(stored.Profile.BirthYear)
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:        types.Int64Ptr(stored.Profile.ID),
		BirthYear: birthYear,
	}
	for _, row := range stored.Names {
		n, err := m.NameToModel(row)
		if err != nil {
			return nil, err
		}
		profile.Names = append(profile.Names, n)
	}
	for _, row := range stored.Addresses {
		a, err := m.AddressToModel(row)
		if err != nil {
			return nil, err
		}
		profile.Addresses = append(profile.Addresses, a)
	}
	for _, row := range stored.Phones {
		p, err := m.PhoneToModel(row)
		if err != nil {
			return nil, err
		}
		profile.Phones = append(profile.Phones, p)
	}
	return profile, nil
}

func (m *Mapper) NameToDB(n domain.Name) (schema.NameDB, error) {
	var row schema.NameDB
	var err error
	if row.First, err = m.encrypt(n.First); err != nil {
		return row, err
	}
	if row.Last, err = m.encrypt(n.Last); err != nil {
		return row, err
	}
	if row.Middle, err = m.encryptOptional(n.Middle); err != nil {
		return row, err
	}
	if row.Suffix, err = m.encryptOptional(n.Suffix); err != nil {
		return row, err
	}
	return row, nil
}

func (m *Mapper) NameToModel(row schema.NameDB) (domain.Name, error) {
	var n domain.Name
	var err error
	if n.First, err = m.decrypt(row.First); err != nil {
		return n, err
	}
	if n.Last, err = m.decrypt(row.Last); err != nil {
		return n, err
	}
	if n.Middle, err = m.decryptOptional(row.Middle); err != nil {
		return n, err
	}
	if n.Suffix, err = m.decryptOptional(row.Suffix); err != nil {
		return n, err
	}
	return n, nil
}

func (m *Mapper) AddressToDB(a domain.Address) (schema.AddressDB, error) {
	var row schema.AddressDB
	var err error
	if row.City, err = m.encrypt(a.City); err != nil {
		return row, err
	}
	if row.State, err = m.encrypt(a.State); err != nil {
		return row, err
	}
	if row.Street, err = m.encryptOptional(a.Street); err != nil {
		return row, err
	}
	if row.ZipCode, err = m.encryptOptional(a.ZipCode); err != nil {
		return row, err
	}
	return row, nil
}

func (m *Mapper) AddressToModel(row schema.AddressDB) (domain.Address, error) {
	var a domain.Address
	var err error
	if a.City, err = m.decrypt(row.City); err != nil {
		return a, err
	}
	if a.State, err = m.decrypt(row.State); err != nil {
		return a, err
	}
	if a.Street, err = m.decryptOptional(row.Street); err != nil {
		return a, err
	}
	if a.ZipCode, err = m.decryptOptional(row.ZipCode); err != nil {
		return a, err
	}
	return a, nil
}

func (m *Mapper) PhoneToDB(phone string) (schema.PhoneDB, error) {
	number, err := m.encrypt(phone)
	if err != nil {
		return schema.PhoneDB{}, err
	}
	return schema.PhoneDB{PhoneNumber: number}, nil
}

func (m *Mapper) PhoneToModel(row schema.PhoneDB) (string, error) {
	return m.decrypt(row.PhoneNumber)
}

// ProfileQueryToDB encrypts a profile query; the profile id is set by the store
func (m *Mapper) ProfileQueryToDB(q domain.ProfileQuery) (schema.ProfileQueryDB, error) {
	row := schema.ProfileQueryDB{ID: types.SafeInt64(q.ID), Deprecated: q.Deprecated}
	var err error
	if row.First, err = m.encrypt(q.FirstName); err != nil {
		return row, err
	}
	if row.Last, err = m.encrypt(q.LastName); err != nil {
		return row, err
	}
	if row.Middle, err = m.encryptOptional(q.MiddleName); err != nil {
		return row, err
	}
	if row.Suffix, err = m.encryptOptional(q.Suffix); err != nil {
		return row, err
	}
	if row.City, err = m.encrypt(q.City); err != nil {
		return row, err
	}
	if row.State, err = m.encrypt(q.State); err != nil {
		return row, err
	}
	if row.Street, err = m.encryptOptional(q.Street); err != nil {
		return row, err
	}
	if row.ZipCode, err = m.encryptOptional(q.ZipCode); err != nil {
		return row, err
	}
	if row.Phone, err = m.encryptOptional(q.Phone); err != nil {
		return row, err
	}
	if row.BirthYear, err = m.encryptInt(q.BirthYear); err != nil {
		return row, err
	}
	return row, nil
}

func (m *Mapper) ProfileQueryToModel(row schema.ProfileQueryDB) (domain.ProfileQuery, error) {
	q := domain.ProfileQuery{ID: types.Int64Ptr(row.ID), Deprecated: row.Deprecated}
	var err error
	if q.FirstName, err = m.decrypt(row.First); err != nil {
		return q, err
	}
	if q.LastName, err = m.decrypt(row.Last); err != nil {
		return q, err
	}
	if q.MiddleName, err = m.decryptOptional(row.Middle); err != nil {
		return q, err
	}
	if q.Suffix, err = m.decryptOptional(row.Suffix); err != nil {
		return q, err
	}
	if q.City, err = m.decrypt(row.City); err != nil {
		return q, err
	}
	if q.State, err = m.decrypt(row.State); err != nil {
		return q, err
	}
	if q.Street, err = m.decryptOptional(row.Street); err != nil {
		return q, err
	}
	if q.ZipCode, err = m.decryptOptional(row.ZipCode); err != nil {
		return q, err
	}
	if q.Phone, err = m.decryptOptional(row.Phone); err != nil {
		return q, err
	}
	if q.BirthYear, err = m.decryptInt(row.BirthYear); err != nil {
		return q, err
	}
	return q, nil
}
