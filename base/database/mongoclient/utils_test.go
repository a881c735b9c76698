package mongoclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/nuna-market/goapi/base/ptr"
)

func TestMakeBsonM(t *testing.T) {
	type PatchableListing struct {
		Status    *string `bson:"status,omitempty"`
		Price     *string `bson:"price,omitempty"`
		Seller    string  `bson:"seller"`
		PayToken  string  `bson:"payToken"`
	}

	patchable := &PatchableListing{}
	patchable.Status = ptr.String("")
	patchable.Price = ptr.String("100")
	patchable.PayToken = "0xdead"

	updater, err := MakeBsonM(patchable)

	assert.NoError(t, err)
	assert.Equal(
		t,
		bson.M{
			"status": "",
			"price":  "100",
			// field seller is empty, so ignore
			"payToken": "0xdead",
		},
		updater,
	)
}
