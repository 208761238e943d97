package taskrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelflow/internal/adapters/out/postgres/taskrepo"
	"parcelflow/internal/core/domain/model/kernel"
	"parcelflow/internal/core/domain/model/task"
	"parcelflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// TaskRepositoryIntegrationTestSuite provides integration tests for
// TaskRepository using PostgreSQL containers. The slot uniqueness behavior
// depends on the real unique index, so it cannot be verified with mocks.
type TaskRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *taskrepo.GormTaskRepository
	tracker    *MockAggregateTracker
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database. TranslateError is
	// required so unique-index violations surface as gorm.ErrDuplicatedKey.
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&taskrepo.TaskDTO{}))
}

func (suite *TaskRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tasks").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = taskrepo.NewGormTaskRepository(suite.db, suite.tracker)
}

func (suite *TaskRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAdd_ValidTask_Success() {
	ctx := context.Background()

	testTask := suite.createCompleteTask(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testTask.ID(), testTask).Once()

	err := suite.repository.Add(ctx, testTask)
	suite.Require().NoError(err)

	suite.assertTaskCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAdd_DuplicateSlot_ReturnsConflict() {
	ctx := context.Background()

	requestID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()

	first := suite.createDropoff(requestID, warehouseID)
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// Second dropoff for the same request targets the same slot. The unique
	// index on (request_id, slot) must reject it with a conflict.
	second := suite.createDropoff(requestID, warehouseID)
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConflict)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.assertTaskCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAdd_DifferentSlots_SameRequest_Succeeds() {
	ctx := context.Background()

	requestID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	dropoff := suite.createDropoff(requestID, warehouseID)
	suite.Require().NoError(suite.repository.Add(ctx, dropoff))

	pickup := suite.createUnclaimedPickup(requestID, warehouseID)
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	suite.assertTaskCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestAdd_SameSlot_DifferentRequests_Succeeds() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createDropoff(kernel.NewUUID(), warehouseID)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createDropoff(kernel.NewUUID(), warehouseID)))

	suite.assertTaskCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_ExistingTask_ReturnsTask() {
	ctx := context.Background()

	original := suite.createCompleteTask(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.RequestID(), retrieved.RequestID())
	suite.Equal(*original.CarrierID(), *retrieved.CarrierID())
	suite.Nil(retrieved.WarehouseID())
	suite.True(retrieved.IsComplete())
	suite.Equal(task.Assigned, retrieved.Status())
	suite.Equal(original.ValidationCode(), retrieved.ValidationCode())
	suite.Equal(original.Origin().City(), retrieved.Origin().City())
	suite.Equal(original.Destination().City(), retrieved.Destination().City())
	suite.Equal(original.Price().Amount(), retrieved.Price().Amount())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGet_NonExistentTask_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_TaskLifecycle_PersistsTransitions() {
	ctx := context.Background()

	testTask := suite.createCompleteTask(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", testTask.ID(), testTask).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testTask))

	suite.Require().NoError(testTask.Start())
	suite.Require().NoError(suite.repository.Update(ctx, testTask))

	retrieved, err := suite.repository.Get(ctx, testTask.ID())
	suite.Require().NoError(err)
	suite.Equal(task.InProgress, retrieved.Status())
	suite.NotNil(retrieved.StartedAt())

	suite.Require().NoError(testTask.Complete())
	suite.Require().NoError(suite.repository.Update(ctx, testTask))

	retrieved, err = suite.repository.Get(ctx, testTask.ID())
	suite.Require().NoError(err)
	suite.Equal(task.Delivered, retrieved.Status())
	suite.NotNil(retrieved.FinishedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_ClaimedPickup_PersistsCarrier() {
	ctx := context.Background()

	requestID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	pickup := suite.createUnclaimedPickup(requestID, warehouseID)
	suite.tracker.On("TrackAggregate", pickup.ID(), pickup).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	carrierID := kernel.NewUUID()
	suite.Require().NoError(pickup.Claim(carrierID))
	suite.Require().NoError(suite.repository.Update(ctx, pickup))

	retrieved, err := suite.repository.Get(ctx, pickup.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved.CarrierID())
	suite.Equal(carrierID, *retrieved.CarrierID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestUpdate_NonExistentTask_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.createCompleteTask(kernel.NewUUID()))
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetByRequestID_ReturnsAllIncludingCancelled() {
	ctx := context.Background()

	requestID := kernel.NewUUID()
	warehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	dropoff := suite.createDropoff(requestID, warehouseID)
	suite.Require().NoError(dropoff.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, dropoff))

	pickup := suite.createUnclaimedPickup(requestID, warehouseID)
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	// Task of another request must not leak in
	suite.Require().NoError(suite.repository.Add(ctx, suite.createCompleteTask(kernel.NewUUID())))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createDropoff(kernel.NewUUID(), warehouseID)))

	tasks, err := suite.repository.GetByRequestID(ctx, requestID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 2)

	// Ordered by segment: dropoff before pickup
	suite.Equal(dropoff.ID(), tasks[0].ID())
	suite.Equal(task.Cancelled, tasks[0].Status())
	suite.Equal(pickup.ID(), tasks[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetAllUnclaimed_FiltersClaimedAndCancelled() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)

	unclaimed := suite.createUnclaimedPickup(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(suite.repository.Add(ctx, unclaimed))

	cancelled := suite.createUnclaimedPickup(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.repository.Add(ctx, cancelled))

	claimed := suite.createCompleteTask(kernel.NewUUID())
	suite.Require().NoError(suite.repository.Add(ctx, claimed))

	tasks, err := suite.repository.GetAllUnclaimed(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(unclaimed.ID(), tasks[0].ID())
	suite.False(tasks[0].IsClaimed())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TaskRepositoryIntegrationTestSuite) TestGetStoredInWarehouse_ReturnsStoredDropoffsOnly() {
	ctx := context.Background()

	warehouseID := kernel.NewUUID()
	otherWarehouseID := kernel.NewUUID()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(4)

	stored := suite.createDropoff(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(stored.Start())
	suite.Require().NoError(stored.Complete())
	suite.Require().NoError(suite.repository.Add(ctx, stored))

	// Still in transit towards the warehouse
	inTransit := suite.createDropoff(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(inTransit.Start())
	suite.Require().NoError(suite.repository.Add(ctx, inTransit))

	// Stored, but at another warehouse
	elsewhere := suite.createDropoff(kernel.NewUUID(), otherWarehouseID)
	suite.Require().NoError(elsewhere.Start())
	suite.Require().NoError(elsewhere.Complete())
	suite.Require().NoError(suite.repository.Add(ctx, elsewhere))

	// Pickup at the warehouse, never counted as stored goods
	pickup := suite.createUnclaimedPickup(kernel.NewUUID(), warehouseID)
	suite.Require().NoError(suite.repository.Add(ctx, pickup))

	tasks, err := suite.repository.GetStoredInWarehouse(ctx, warehouseID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(stored.ID(), tasks[0].ID())
	suite.Equal(task.Stored, tasks[0].Status())

	suite.tracker.AssertExpectations(suite.T())
}

// createCompleteTask creates a claimed whole-trip task for the given request.
func (suite *TaskRepositoryIntegrationTestSuite) createCompleteTask(requestID kernel.UUID) *task.Task {
	origin, err := kernel.NewAddress("12 rue de la Paix", "Paris")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("4 rue de la République", "Lyon")
	suite.Require().NoError(err)
	price, err := kernel.NewPrice(30)
	suite.Require().NoError(err)

	testTask, err := task.NewCompleteTask(
		kernel.NewUUID(), requestID, kernel.NewUUID(), origin, destination, price, "A1B2C3D4")
	suite.Require().NoError(err)
	return testTask
}

// createDropoff creates a claimed first-leg segment towards the warehouse.
func (suite *TaskRepositoryIntegrationTestSuite) createDropoff(
	requestID kernel.UUID, warehouseID kernel.UUID,
) *task.Task {
	origin, err := kernel.NewAddress("12 rue de la Paix", "Paris")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("1 quai du Hub", "Paris")
	suite.Require().NoError(err)
	price, err := kernel.NewPrice(30)
	suite.Require().NoError(err)

	carrierID := kernel.NewUUID()
	testTask, err := task.NewSegmentTask(
		kernel.NewUUID(), requestID, &carrierID, warehouseID, task.SegmentDropoff,
		origin, destination, price, "A1B2C3D4")
	suite.Require().NoError(err)
	return testTask
}

// createUnclaimedPickup creates the auto-generated second-leg segment without
// a carrier.
func (suite *TaskRepositoryIntegrationTestSuite) createUnclaimedPickup(
	requestID kernel.UUID, warehouseID kernel.UUID,
) *task.Task {
	origin, err := kernel.NewAddress("1 quai du Hub", "Paris")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("4 rue de la République", "Lyon")
	suite.Require().NoError(err)
	price, err := kernel.NewPrice(30)
	suite.Require().NoError(err)

	testTask, err := task.NewSegmentTask(
		kernel.NewUUID(), requestID, nil, warehouseID, task.SegmentPickup,
		origin, destination, price, "E5F6G7H8")
	suite.Require().NoError(err)
	return testTask
}

// assertTaskCount verifies the number of tasks in the database.
func (suite *TaskRepositoryIntegrationTestSuite) assertTaskCount(expected int) {
	var count int64
	err := suite.db.Model(&taskrepo.TaskDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestTaskRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryIntegrationTestSuite))
}
