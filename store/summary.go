package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pulmoguard/surveillance-api/schema"
	"github.com/pulmoguard/surveillance-api/utils"
)

// RegionalReport maintains the per-region daily summaries that feed the
// forecasting pipeline.
type RegionalReport interface {
	UpsertRegionalSummary(summary schema.RegionalSummary) error
	RecordRegionalCase(regionType, regionID, regionName, day string, analysis schema.Analysis) error
	RegionalTimeseries(regionID string, days int) ([]schema.TimeSeriesPoint, error)
	LatestRegionalSummaries(regionType string) ([]schema.RegionalSummary, error)
	GlobalStats(days int) (*schema.CaseStats, error)
}

// CaseReport maintains the per-hospital daily summaries accumulated from
// image intake.
type CaseReport interface {
	RecordCase(hospitalID, day string, analysis schema.Analysis) error
	HospitalTimeseries(hospitalID string, days int) ([]schema.TimeSeriesPoint, error)
	HospitalStats(hospitalID string, days int) (*schema.CaseStats, error)
}

// cutoffDay returns the inclusive lower bound for a trailing window of days.
func cutoffDay(days int) string {
	return utils.FormatDay(time.Now().UTC().AddDate(0, 0, -days))
}

// caseIncrements maps one classified image onto daily counter updates.
func caseIncrements(analysis schema.Analysis) bson.M {
	inc := bson.M{
		"case_count":     1,
		"confidence_sum": analysis.Confidence,
	}
	switch analysis.AIPrediction {
	case schema.PredictionPneumonia:
		inc["pneumonia_count"] = 1
		if analysis.Severity == schema.CaseSeveritySevere {
			inc["severe_count"] = 1
		}
	case schema.PredictionNormal:
		inc["normal_count"] = 1
	}
	return inc
}

// UpsertRegionalSummary replaces the summary document of a (region, day) pair.
func (m *mongoDB) UpsertRegionalSummary(summary schema.RegionalSummary) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.RegionalSummaryCollection)

	filter := bson.M{
		"region_type": summary.RegionType,
		"region_id":   summary.RegionID,
		"date":        summary.Date,
	}
	_, err := c.ReplaceOne(ctx, filter, summary, options.Replace().SetUpsert(true))
	return err
}

// RecordRegionalCase folds one classified image into the regional counters of
// the day, creating the summary document on first sight.
func (m *mongoDB) RecordRegionalCase(regionType, regionID, regionName, day string, analysis schema.Analysis) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.RegionalSummaryCollection)

	filter := bson.M{
		"region_type": regionType,
		"region_id":   regionID,
		"date":        day,
	}
	update := bson.M{
		"$inc":         caseIncrements(analysis),
		"$setOnInsert": bson.M{"region_name": regionName},
	}
	_, err := c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// RegionalTimeseries returns the trailing window of daily summaries of one
// region, oldest first, projected as series points.
func (m *mongoDB) RegionalTimeseries(regionID string, days int) ([]schema.TimeSeriesPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.RegionalSummaryCollection)

	query := bson.M{
		"region_id": regionID,
		"date":      bson.M{"$gte": cutoffDay(days)},
	}
	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"date": 1}))
	if nil != err {
		return nil, err
	}

	summaries := make([]schema.RegionalSummary, 0)
	if err := cursor.All(ctx, &summaries); nil != err {
		return nil, err
	}

	series := make([]schema.TimeSeriesPoint, 0, len(summaries))
	for _, s := range summaries {
		series = append(series, s.TimeSeriesPoint())
	}
	return series, nil
}

// LatestRegionalSummaries returns the newest summary of every region of the
// given type, ordered by region name.
func (m *mongoDB) LatestRegionalSummaries(regionType string) ([]schema.RegionalSummary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.RegionalSummaryCollection)

	pipeline := []bson.M{
		aggStageMatch(bson.M{"region_type": regionType}),
		aggStageSortDateDesc(),
	}
	pipeline = append(pipeline, aggStageLatestPerKey("region_id")...)
	pipeline = append(pipeline, bson.M{"$sort": bson.M{"region_name": 1}})

	cursor, err := c.Aggregate(ctx, pipeline)
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("latest regional summary query with error: %s", err)
		return nil, fmt.Errorf("latest regional summary aggregate with error: %s", err)
	}

	summaries := make([]schema.RegionalSummary, 0)
	if err := cursor.All(ctx, &summaries); nil != err {
		return nil, err
	}
	return summaries, nil
}

// GlobalStats sums the hospital daily summaries over a trailing window into a
// single set of counters.
func (m *mongoDB) GlobalStats(days int) (*schema.CaseStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CaseSummaryCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageMatch(matchSinceDay(cutoffDay(days))),
		aggStageSumCaseCounts(),
		aggStageAverageConfidence(),
	})
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("global stats query with error: %s", err)
		return nil, fmt.Errorf("global stats aggregate with error: %s", err)
	}

	var stats schema.CaseStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); nil != err {
			return nil, err
		}
	}
	return &stats, nil
}

// RecordCase folds one classified image into the hospital counters of the
// day, creating the summary document on first sight.
func (m *mongoDB) RecordCase(hospitalID, day string, analysis schema.Analysis) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CaseSummaryCollection)

	filter := bson.M{
		"hospital_id": hospitalID,
		"date":        day,
	}
	update := bson.M{"$inc": caseIncrements(analysis)}
	_, err := c.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// HospitalTimeseries returns the trailing window of daily summaries of one
// hospital, oldest first, projected as series points.
func (m *mongoDB) HospitalTimeseries(hospitalID string, days int) ([]schema.TimeSeriesPoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CaseSummaryCollection)

	query := matchHospital(hospitalID)
	query["date"] = bson.M{"$gte": cutoffDay(days)}

	cursor, err := c.Find(ctx, query, options.Find().SetSort(bson.M{"date": 1}))
	if nil != err {
		return nil, err
	}

	summaries := make([]schema.CaseSummary, 0)
	if err := cursor.All(ctx, &summaries); nil != err {
		return nil, err
	}

	series := make([]schema.TimeSeriesPoint, 0, len(summaries))
	for _, s := range summaries {
		series = append(series, s.TimeSeriesPoint())
	}
	return series, nil
}

// HospitalStats sums the daily summaries of one hospital over a trailing
// window.
func (m *mongoDB) HospitalStats(hospitalID string, days int) (*schema.CaseStats, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database).Collection(schema.CaseSummaryCollection)

	match := matchHospital(hospitalID)
	match["date"] = bson.M{"$gte": cutoffDay(days)}

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageMatch(match),
		aggStageSumCaseCounts(),
		aggStageAverageConfidence(),
	})
	if nil != err {
		log.WithField("prefix", mongoLogPrefix).Errorf("hospital stats query with error: %s", err)
		return nil, fmt.Errorf("hospital stats aggregate with error: %s", err)
	}

	var stats schema.CaseStats
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); nil != err {
			return nil, err
		}
	}
	return &stats, nil
}
