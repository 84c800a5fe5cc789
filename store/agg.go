package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

func matchHospital(hospitalID string) bson.M {
	return bson.M{"hospital_id": hospitalID}
}

func matchSinceDay(day string) bson.M {
	return bson.M{"date": bson.M{"$gte": day}}
}

func aggStageMatch(filter bson.M) bson.M {
	return bson.M{"$match": filter}
}

func aggStageSortDateDesc() bson.M {
	return bson.M{"$sort": bson.M{"date": -1}}
}

// aggStageLatestPerKey keeps only the newest document per key. It assumes the
// preceding stage sorted by date descending.
/*
{
	"$group": {
		"_id": "$key",
		"doc": {"$first": "$$ROOT"}
	}
}
*/
func aggStageLatestPerKey(key string) []bson.M {
	return []bson.M{
		{"$group": bson.M{
			"_id": specifyField(key),
			"doc": bson.M{"$first": "$$ROOT"},
		}},
		{"$replaceRoot": bson.M{"newRoot": "$doc"}},
	}
}

// aggStageSumCaseCounts adds up the daily counters of matched summaries into
// a single document.
func aggStageSumCaseCounts() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":             nil,
			"case_count":      bson.M{"$sum": specifyField("case_count")},
			"normal_count":    bson.M{"$sum": specifyField("normal_count")},
			"pneumonia_count": bson.M{"$sum": specifyField("pneumonia_count")},
			"severe_count":    bson.M{"$sum": specifyField("severe_count")},
			"deaths":          bson.M{"$sum": specifyField("deaths")},
			"confidence_sum":  bson.M{"$sum": specifyField("confidence_sum")},
		},
	}
}

// aggStageAverageConfidence derives avg_confidence from the summed confidence
// values, guarding the zero-case division.
func aggStageAverageConfidence() bson.M {
	return bson.M{
		"$project": bson.M{
			"case_count":      1,
			"normal_count":    1,
			"pneumonia_count": 1,
			"severe_count":    1,
			"deaths":          1,
			"avg_confidence": bson.M{
				"$cond": bson.A{
					bson.M{"$gt": bson.A{specifyField("case_count"), 0}},
					bson.M{"$divide": bson.A{specifyField("confidence_sum"), specifyField("case_count")}},
					0,
				},
			},
		},
	}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
