package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/blogem/dues-ledger/models"
	"github.com/blogem/dues-ledger/repositories/mocks"
)

// RosterServiceTestSuite covers seeding an empty roster
type RosterServiceTestSuite struct {
	suite.Suite
	service    RosterService
	mockRoster *mocks.MockSheetRepository
	seed       *models.RosterSeed
}

// SetupTest sets up the test suite before each test
func (suite *RosterServiceTestSuite) SetupTest() {
	suite.mockRoster = mocks.NewMockSheetRepository(suite.T())
	suite.service = NewRosterService(suite.mockRoster, zaptest.NewLogger(suite.T()))
	suite.seed = &models.RosterSeed{
		Columns: testHeader,
		Rows: [][]string{
			{"Chris", "Lee", "", "100", "40"},
			{"Dana", "Park", "", "100", "100"},
		},
	}
}

// TestSeed writes the header first and then each row in order
func (suite *RosterServiceTestSuite) TestSeed() {
	// Setup
	suite.mockRoster.EXPECT().RowCount(mock.Anything).Return(0, nil)
	header := suite.mockRoster.EXPECT().AppendRow(mock.Anything, testHeader).Return(nil).Call
	first := suite.mockRoster.EXPECT().AppendRow(mock.Anything, suite.seed.Rows[0]).Return(nil).Call
	first.NotBefore(header)
	suite.mockRoster.EXPECT().AppendRow(mock.Anything, suite.seed.Rows[1]).Return(nil).NotBefore(first)

	// Act
	n, err := suite.service.Seed(context.Background(), suite.seed)

	// Assert
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, n)
}

// TestSeed_NonEmptyRoster leaves existing data untouched
func (suite *RosterServiceTestSuite) TestSeed_NonEmptyRoster() {
	// Setup
	suite.mockRoster.EXPECT().RowCount(mock.Anything).Return(3, nil)

	// Act
	n, err := suite.service.Seed(context.Background(), suite.seed)

	// Assert
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "refusing to seed")
	assert.Zero(suite.T(), n)
	suite.mockRoster.AssertNotCalled(suite.T(), "AppendRow", mock.Anything, mock.Anything)
}

// TestSeed_InvalidSeed fails before touching the repository
func (suite *RosterServiceTestSuite) TestSeed_InvalidSeed() {
	// Act
	_, err := suite.service.Seed(context.Background(), &models.RosterSeed{Columns: []string{"Name", "Name"}})

	// Assert
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "Duplicate column: Name")
}

// TestSeed_RowFailure reports how many rows were written
func (suite *RosterServiceTestSuite) TestSeed_RowFailure() {
	// Setup
	suite.mockRoster.EXPECT().RowCount(mock.Anything).Return(0, nil)
	suite.mockRoster.EXPECT().AppendRow(mock.Anything, testHeader).Return(nil)
	suite.mockRoster.EXPECT().AppendRow(mock.Anything, suite.seed.Rows[0]).Return(nil)
	suite.mockRoster.EXPECT().AppendRow(mock.Anything, suite.seed.Rows[1]).Return(errors.New("disk full"))

	// Act
	n, err := suite.service.Seed(context.Background(), suite.seed)

	// Assert
	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to write row 2")
	assert.Equal(suite.T(), 1, n)
}

// TestRosterServiceTestSuite runs the roster service test suite
func TestRosterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RosterServiceTestSuite))
}

func TestSeedThenReport(t *testing.T) {
	sheet := &memorySheet{}
	ctx := context.Background()

	n, err := NewRosterService(sheet, zaptest.NewLogger(t)).Seed(ctx, &models.RosterSeed{
		Columns: testHeader,
		Rows:    [][]string{{"Chris", "Lee", "c@x.org", "100", "40"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	reply, err := NewReportService(sheet).GetTotalOutstanding(ctx)
	require.NoError(t, err)
	assert.Equal(t, "📉 Total outstanding: $60.00", reply)
}
