package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulmoguard/surveillance-api/schema"
)

// AlertReport persists generated alerts and serves the active-alert feed.
type AlertReport interface {
	CreateAlerts(alerts []schema.Alert) error
	ActiveAlerts(regionID string, since time.Time) ([]schema.Alert, error)
}

// CreateAlerts stores a batch of generated alerts. An empty batch is a no-op.
func (m *mongoDB) CreateAlerts(alerts []schema.Alert) error {
	if 0 == len(alerts) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AlertCollection)

	docs := make([]interface{}, 0, len(alerts))
	for _, a := range alerts {
		docs = append(docs, a)
	}
	_, err := c.InsertMany(ctx, docs)
	return err
}

// ActiveAlerts returns alerts triggered at or after the given time, newest
// first. An empty regionID returns alerts of every region.
func (m *mongoDB) ActiveAlerts(regionID string, since time.Time) ([]schema.Alert, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.AlertCollection)

	query := bson.M{"triggered_at": bson.M{"$gte": since}}
	if regionID != "" {
		query["region_id"] = regionID
	}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"triggered_at": -1}))
	if nil != err {
		return nil, err
	}

	alerts := make([]schema.Alert, 0)
	if err := cursor.All(ctx, &alerts); nil != err {
		return nil, err
	}
	return alerts, nil
}
