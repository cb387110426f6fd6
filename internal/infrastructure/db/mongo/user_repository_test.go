package mongo

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserIDFilter(t *testing.T) {
	oid := primitive.NewObjectID()

	if got, ok := userIDFilter(oid.Hex()).(primitive.ObjectID); !ok || got != oid {
		t.Fatalf("expected ObjectID filter, got %#v", userIDFilter(oid.Hex()))
	}
	if got := userIDFilter("u1"); got != "u1" {
		t.Fatalf("expected string filter, got %#v", got)
	}
	if got := userIDFilter("doesnotexist"); got != "doesnotexist" {
		t.Fatalf("expected string filter, got %#v", got)
	}
}

func TestToDomainUser(t *testing.T) {
	oid := primitive.NewObjectID()
	doc := bson.M{
		"_id":        oid,
		"tag":        "Premium",
		"name":       "Asha",
		"telegramId": int64(4242),
	}

	u := toDomainUser(doc)

	if u.ID != oid.Hex() {
		t.Errorf("expected hex id, got %q", u.ID)
	}
	if u.Tag != "Premium" {
		t.Errorf("expected tag Premium, got %q", u.Tag)
	}
	if u.Attributes["name"] != "Asha" || u.Attributes["telegramId"] != int64(4242) {
		t.Errorf("attributes not carried: %+v", u.Attributes)
	}
	if _, ok := u.Attributes["_id"]; ok {
		t.Errorf("_id must not be duplicated into attributes")
	}
}

func TestToDomainUser_NonStringTagKept(t *testing.T) {
	u := toDomainUser(bson.M{"_id": "u1", "tag": int32(3)})

	if u.ID != "u1" || u.Tag != "" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.Attributes["tag"] != int32(3) {
		t.Fatalf("non-string tag must be preserved as stored")
	}
}
