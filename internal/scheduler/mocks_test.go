package scheduler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/ukydev/plant-maintenance/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAssetCollection is a mock implementation of db.AssetCollection
type MockAssetCollection struct {
	mock.Mock
}

func (m *MockAssetCollection) InsertAsset(ctx context.Context, asset models.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetCollection) FindAssets(ctx context.Context, filter bson.M) ([]models.Asset, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

func (m *MockAssetCollection) FindAssetByID(ctx context.Context, id string) (*models.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Asset), args.Error(1)
}

func (m *MockAssetCollection) UpdateAsset(ctx context.Context, id string, asset models.Asset) error {
	args := m.Called(ctx, id, asset)
	return args.Error(0)
}

func (m *MockAssetCollection) DeleteAsset(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetCollection) FindOperationalWithLastService(ctx context.Context) ([]models.Asset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Asset), args.Error(1)
}

// MockPlantRoomCollection is a mock implementation of db.PlantRoomCollection
type MockPlantRoomCollection struct {
	mock.Mock
}

func (m *MockPlantRoomCollection) InsertPlantRoom(ctx context.Context, room models.PlantRoom) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}

func (m *MockPlantRoomCollection) FindPlantRooms(ctx context.Context, filter bson.M) ([]models.PlantRoom, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PlantRoom), args.Error(1)
}

func (m *MockPlantRoomCollection) FindPlantRoomByID(ctx context.Context, id string) (*models.PlantRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PlantRoom), args.Error(1)
}

func (m *MockPlantRoomCollection) UpdatePlantRoom(ctx context.Context, id string, room models.PlantRoom) error {
	args := m.Called(ctx, id, room)
	return args.Error(0)
}

func (m *MockPlantRoomCollection) DeletePlantRoom(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPlantRoomCollection) MapRefsToIDs(ctx context.Context, refs []string) (map[string]primitive.ObjectID, error) {
	args := m.Called(ctx, refs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]primitive.ObjectID), args.Error(1)
}

// MockTaskCollection is a mock implementation of db.TaskCollection
type MockTaskCollection struct {
	mock.Mock
}

func (m *MockTaskCollection) InsertTask(ctx context.Context, task models.MaintenanceTask) (*models.MaintenanceTask, error) {
	args := m.Called(ctx, task)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) InsertTasks(ctx context.Context, tasks []models.MaintenanceTask) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskCollection) FindTasks(ctx context.Context, filter bson.M) ([]models.MaintenanceTask, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) FindTaskByID(ctx context.Context, id string) (*models.MaintenanceTask, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) UpdateTask(ctx context.Context, id string, task models.MaintenanceTask) error {
	args := m.Called(ctx, id, task)
	return args.Error(0)
}

func (m *MockTaskCollection) DeleteTask(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskCollection) FindExistingPPMTask(ctx context.Context, assetID string, minDueDate time.Time) (*models.MaintenanceTask, error) {
	args := m.Called(ctx, assetID, minDueDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MaintenanceTask), args.Error(1)
}

func (m *MockTaskCollection) FindIncompleteDueBefore(ctx context.Context, before time.Time) ([]models.MaintenanceTask, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MaintenanceTask), args.Error(1)
}

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockNotifier records task-created events.
type MockNotifier struct {
	created []models.MaintenanceTask
}

func (m *MockNotifier) TaskCreated(task models.MaintenanceTask) {
	m.created = append(m.created, task)
}

// newTestService builds a Service over fresh mocks with a fixed clock.
func newTestService(now time.Time) (*Service, *MockAssetCollection, *MockPlantRoomCollection, *MockTaskCollection, *MockUserCollection, *MockNotifier) {
	assets := new(MockAssetCollection)
	plantRooms := new(MockPlantRoomCollection)
	tasks := new(MockTaskCollection)
	users := new(MockUserCollection)
	notifier := &MockNotifier{}
	svc := NewService(assets, plantRooms, tasks, users, notifier)
	svc.now = func() time.Time { return now }
	return svc, assets, plantRooms, tasks, users, notifier
}
