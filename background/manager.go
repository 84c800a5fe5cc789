package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/jinzhu/gorm"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulmoguard/surveillance-api/alert"
	"github.com/pulmoguard/surveillance-api/store"
)

// BackgroundManager is a struct for surveillance background manager
type BackgroundManager struct {
	store store.SurveillanceCore
	mongo store.MongoStore

	engine *alert.Engine

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(ormDB *gorm.DB, mongoClient *mongo.Client, taskServer *machinery.Server) *BackgroundManager {
	mongoStore := store.NewMongoStore(
		mongoClient,
		viper.GetString("mongo.database"),
	)

	return &BackgroundManager{
		store:      store.NewSurveillanceStore(ormDB, mongoStore),
		mongo:      mongoStore,
		engine:     alert.NewEngine(nil),
		taskServer: taskServer,
	}
}

func (m *BackgroundManager) RegisterTask(name string, taskFunc interface{}) error {
	return m.taskServer.RegisterTask(name, taskFunc)
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker("surveillance-worker", 5)
	return m.worker.Launch()
}
