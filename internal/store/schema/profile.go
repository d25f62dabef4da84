package schema

// Encrypted columns hold opaque vault ciphertext.
// Optional encrypted columns hold a zero-length blob when the value is absent, so they can be part of
// composite keys (SQLite treats NULLs in a key as distinct from each other).

// ProfileDB is the root of a user's personal information
type ProfileDB struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	BirthYear []byte `gorm:"column:birth_year;not null"`
}

func (ProfileDB) TableName() string {
	return "profile"
}

// NameDB is a name of a profile, keyed by all of its fields
type NameDB struct {
	First     []byte `gorm:"column:first;primaryKey"`
	Last      []byte `gorm:"column:last;primaryKey"`
	Middle    []byte `gorm:"column:middle;primaryKey"`
	Suffix    []byte `gorm:"column:suffix;primaryKey"`
	ProfileID int64  `gorm:"column:profile_id;primaryKey"`
}

func (NameDB) TableName() string {
	return "name"
}

// AddressDB is an address of a profile, keyed by all of its fields
type AddressDB struct {
	City      []byte `gorm:"column:city;primaryKey"`
	State     []byte `gorm:"column:state;primaryKey"`
	Street    []byte `gorm:"column:street;primaryKey"`
	ZipCode   []byte `gorm:"column:zip_code;primaryKey"`
	ProfileID int64  `gorm:"column:profile_id;primaryKey"`
}

func (AddressDB) TableName() string {
	return "address"
}

// PhoneDB is a phone number of a profile
type PhoneDB struct {
	PhoneNumber []byte `gorm:"column:phone_number;primaryKey"`
	ProfileID   int64  `gorm:"column:profile_id;primaryKey"`
}

func (PhoneDB) TableName() string {
	return "phone"
}

// ProfileQueryDB is one search derived from a profile
type ProfileQueryDB struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProfileID  int64  `gorm:"column:profile_id;not null"`
	First      []byte `gorm:"column:first"`
	Last       []byte `gorm:"column:last"`
	Middle     []byte `gorm:"column:middle"`
	Suffix     []byte `gorm:"column:suffix"`
	City       []byte `gorm:"column:city"`
	State      []byte `gorm:"column:state"`
	Street     []byte `gorm:"column:street"`
	ZipCode    []byte `gorm:"column:zip_code"`
	Phone      []byte `gorm:"column:phone"`
	BirthYear  []byte `gorm:"column:birth_year"`
	Deprecated bool   `gorm:"column:deprecated;not null"`
}

func (ProfileQueryDB) TableName() string {
	return "profile_query"
}
