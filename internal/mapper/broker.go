package mapper

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/store/schema"
	"github.com/brokerguard/dbp/internal/types"
)

// BrokerToDB stores the full broker definition as JSON next to its indexed columns
func (m *Mapper) BrokerToDB(broker domain.Broker) (schema.BrokerDB, error) {
	payload, err := m.json.Marshal(broker)
	if err != nil {
		return schema.BrokerDB{}, fmt.Errorf("failed to marshal broker %s: %w", broker.Name, err)
	}
	return schema.BrokerDB{
		ID:      types.SafeInt64(broker.ID),
		Name:    broker.Name,
		JSON:    datatypes.JSON(payload),
		Version: broker.Version,
		URL:     broker.URL,
	}, nil
}

func (m *Mapper) BrokerToModel(row schema.BrokerDB) (domain.Broker, error) {
	var broker domain.Broker
	if err := m.json.Unmarshal(row.JSON, &broker); err != nil {
		return broker, fmt.Errorf("failed to unmarshal broker %s: %w", row.Name, err)
	}
	// columns win over the payload
	broker.ID = types.Int64Ptr(row.ID)
	broker.Name = row.Name
	broker.Version = row.Version
	broker.URL = row.URL
	return broker, nil
}
