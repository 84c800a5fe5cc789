package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulmoguard/surveillance-api/schema"
)

// ResourceReport tracks the daily resource availability reported by
// hospitals.
type ResourceReport interface {
	SaveResourceSnapshot(snapshot schema.ResourceSnapshot) error
	LatestResourceSnapshot(hospitalID string) (*schema.ResourceSnapshot, error)
	RegionResourceStatus(hospitalIDs []string) (schema.ResourceStatus, int, error)
}

// SaveResourceSnapshot replaces the snapshot of a (hospital, day) pair.
func (m *mongoDB) SaveResourceSnapshot(snapshot schema.ResourceSnapshot) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ResourceCollection)

	filter := bson.M{
		"hospital_id": snapshot.HospitalID,
		"date":        snapshot.Date,
	}
	_, err := c.ReplaceOne(ctx, filter, snapshot, options.Replace().SetUpsert(true))
	return err
}

// LatestResourceSnapshot returns the newest snapshot of one hospital, or nil
// when the hospital never reported.
func (m *mongoDB) LatestResourceSnapshot(hospitalID string) (*schema.ResourceSnapshot, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ResourceCollection)

	var snapshot schema.ResourceSnapshot
	err := c.FindOne(ctx, matchHospital(hospitalID), options.FindOne().SetSort(bson.M{"date": -1})).Decode(&snapshot)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	return &snapshot, nil
}

// RegionResourceStatus reduces the newest snapshot of each listed hospital to
// the tightest consumable level and the pooled ventilator count of the
// region. A region with no reporting hospitals yields an empty status.
func (m *mongoDB) RegionResourceStatus(hospitalIDs []string) (schema.ResourceStatus, int, error) {
	status := schema.ResourceStatus{}
	if 0 == len(hospitalIDs) {
		return status, 0, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.ResourceCollection)

	pipeline := []bson.M{
		aggStageMatch(bson.M{"hospital_id": bson.M{"$in": hospitalIDs}}),
		aggStageSortDateDesc(),
	}
	pipeline = append(pipeline, aggStageLatestPerKey("hospital_id")...)
	pipeline = append(pipeline, bson.M{
		"$group": bson.M{
			"_id":         nil,
			"oxygen_days": bson.M{"$min": specifyField("oxygen_supply_days")},
			"ventilators": bson.M{"$sum": specifyField("ventilators_available")},
		},
	})

	cursor, err := c.Aggregate(ctx, pipeline)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("region resource status query with error: %s", err)
		return status, 0, fmt.Errorf("region resource status aggregate with error: %s", err)
	}

	var result struct {
		OxygenDays  float64 `bson:"oxygen_days"`
		Ventilators int     `bson:"ventilators"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); nil != err {
			return status, 0, err
		}
		status.OxygenSupplyDays = &result.OxygenDays
	}
	return status, result.Ventilators, nil
}
