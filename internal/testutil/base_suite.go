package testutil

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/stimasense/stimasense/internal/config"
	"github.com/stimasense/stimasense/internal/logger"
	"github.com/stimasense/stimasense/internal/types"
)

// BaseServiceTestSuite provides the shared fixture for service tests: a
// default configuration, a real logger and an in-memory reading store.
type BaseServiceTestSuite struct {
	suite.Suite

	ctx          context.Context
	cfg          *config.Configuration
	log          *logger.Logger
	readingStore *InMemoryMeterReadingStore
}

// SetupTest initializes the fixture before each test.
func (s *BaseServiceTestSuite) SetupTest() {
	s.cfg = config.GetDefaultConfig()

	log, err := logger.NewLogger(s.cfg)
	s.Require().NoError(err)
	s.log = log

	s.readingStore = NewInMemoryMeterReadingStore()
	s.ctx = types.SetRequestID(context.Background(), types.GenerateUUIDWithPrefix(types.UUID_PREFIX_REQUEST))
}

// TearDownTest clears shared state after each test.
func (s *BaseServiceTestSuite) TearDownTest() {
	if s.readingStore != nil {
		s.readingStore.Clear()
	}
}

func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.cfg
}

func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.log
}

func (s *BaseServiceTestSuite) GetReadingStore() *InMemoryMeterReadingStore {
	return s.readingStore
}
