package brokers

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/domain"
)

// Loader reads broker definitions from a directory of JSON files
type Loader struct {
	fs       adapter.FileSystem
	json     adapter.JSON
	validate *validator.Validate
}

// NewLoader creates a broker definition loader
func NewLoader(fs adapter.FileSystem, json adapter.JSON) *Loader {
	return &Loader{
		fs:       fs,
		json:     json,
		validate: validator.New(),
	}
}

// LoadDirectory parses every *.json file in dir as a broker definition.
// The first invalid file fails the whole load.
func (l *Loader) LoadDirectory(dir string) ([]domain.Broker, error) {
	files, err := l.fs.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list broker definitions in %s: %w", dir, err)
	}

	brokers := make([]domain.Broker, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		broker, err := l.loadFile(file)
		if err != nil {
			return nil, err
		}
		if other, ok := seen[broker.Name]; ok {
			return nil, fmt.Errorf("broker %s is defined in both %s and %s", broker.Name, other, file)
		}
		seen[broker.Name] = file
		brokers = append(brokers, broker)
	}
	return brokers, nil
}

func (l *Loader) loadFile(file string) (domain.Broker, error) {
	data, err := l.fs.ReadFile(file)
	if err != nil {
		return domain.Broker{}, fmt.Errorf("failed to read broker definition %s: %w", file, err)
	}

	var broker domain.Broker
	if err := l.json.Unmarshal(data, &broker); err != nil {
		return domain.Broker{}, fmt.Errorf("failed to parse broker definition %s: %w", file, err)
	}
	if err := l.validate.Struct(broker); err != nil {
		return domain.Broker{}, fmt.Errorf("invalid broker definition %s: %w", file, err)
	}
	if len(broker.Steps) == 0 {
		broker.Steps = []byte("[]")
	}
	return broker, nil
}
