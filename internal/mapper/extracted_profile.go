package mapper

import (
	"fmt"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/store/schema"
	"github.com/brokerguard/dbp/internal/types"
)

type extractedAddressJSON struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type extractedProfileJSON struct {
	ID               *int64                 `json:"id,omitempty"`
	Name             *string                `json:"name,omitempty"`
	AlternativeNames []string               `json:"alternativeNames,omitempty"`
	Addresses        []extractedAddressJSON `json:"addresses,omitempty"`
	Relatives        []string               `json:"relatives,omitempty"`
	Age              *string                `json:"age,omitempty"`
	Email            *string                `json:"email,omitempty"`
	Phones           []string               `json:"phoneNumbers,omitempty"`
	ProfileURL       *string                `json:"profileUrl,omitempty"`
	Identifier       *string                `json:"identifier,omitempty"`
	RemovedDate      *MillisTime            `json:"removedDate,omitempty"`
}

// ExtractedProfileToDB encrypts the JSON form of an extracted profile.
// The owning broker and profile query are filled in by the store.
func (m *Mapper) ExtractedProfileToDB(p domain.ExtractedProfile) (schema.ExtractedProfileDB, error) {
	dto := extractedProfileJSON{
		Name:             p.Name,
		AlternativeNames: p.AlternativeNames,
		Relatives:        p.Relatives,
		Age:              p.Age,
		Email:            p.Email,
		Phones:           p.Phones,
		ProfileURL:       p.ProfileURL,
		Identifier:       p.Identifier,
		RemovedDate:      NewMillisTime(p.RemovedDate),
	}
	for _, a := range p.Addresses {
		dto.Addresses = append(dto.Addresses, extractedAddressJSON(a))
	}

	payload, err := m.json.Marshal(dto)
	if err != nil {
		return schema.ExtractedProfileDB{}, fmt.Errorf("failed to marshal extracted profile: %w", err)
	}
	encrypted, err := m.mechanism.Encrypt(payload)
	if err != nil {
		return schema.ExtractedProfileDB{}, fmt.Errorf("failed to encrypt extracted profile: %w", err)
	}
	return schema.ExtractedProfileDB{
		ID:          types.SafeInt64(p.ID),
		Profile:     encrypted,
		RemovedDate: p.RemovedDate,
	}, nil
}

// ExtractedProfileToModel decrypts an extracted profile; id and removal date come from the row
func (m *Mapper) ExtractedProfileToModel(row schema.ExtractedProfileDB) (domain.ExtractedProfile, error) {
	payload, err := m.mechanism.Decrypt(row.Profile)
	if err != nil {
		return domain.ExtractedProfile{}, fmt.Errorf("failed to decrypt extracted profile: %w", err)
	}
	var dto extractedProfileJSON
	if err := m.json.Unmarshal(payload, &dto); err != nil {
		return domain.ExtractedProfile{}, fmt.Errorf("failed to unmarshal extracted profile: %w", err)
	}

	p := domain.ExtractedProfile{
		ID:               types.Int64Ptr(row.ID),
		Name:             dto.Name,
		AlternativeNames: dto.AlternativeNames,
		Relatives:        dto.Relatives,
		Age:              dto.Age,
		Email:            dto.Email,
		Phones:           dto.Phones,
		ProfileURL:       dto.ProfileURL,
		Identifier:       dto.Identifier,
		RemovedDate:      row.RemovedDate,
	}
	for _, a := range dto.Addresses {
		p.Addresses = append(p.Addresses, domain.ExtractedAddress(a))
	}
	return p, nil
}
