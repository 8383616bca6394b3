package mongo

import "go.mongodb.org/mongo-driver/bson"

// lookupStage joins documents from another collection under the given field.
// IDs are stored as hex strings everywhere, so foreign keys join on string
// equality.
func lookupStage(from, localField, foreignField, as string) bson.D {
	return bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: from},
		{Key: "localField", Value: localField},
		{Key: "foreignField", Value: foreignField},
		{Key: "as", Value: as},
	}}}
}

// unwindStage flattens a single-element lookup array into an embedded
// document, keeping the parent when the relation is missing.
func unwindStage(path string) bson.D {
	return bson.D{{Key: "$unwind", Value: bson.D{
		{Key: "path", Value: "$" + path},
		{Key: "preserveNullAndEmptyArrays", Value: true},
	}}}
}
