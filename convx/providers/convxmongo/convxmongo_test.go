package convxmongo

import (
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Conversia-AI/craftable-convx/convx"
)

func TestObjectID(t *testing.T) {
	reg := convx.NewRegistry("mongo")
	Register(reg)

	oid := primitive.NewObjectID()
	s, err := convx.ConvertTo[string](reg, oid)
	require.NoError(t, err)

	back, err := convx.ConvertTo[primitive.ObjectID](reg, s)
	require.NoError(t, err)
	assert.Equal(t, oid, back)

	_, err = reg.Convert("zz", reflect.TypeFor[primitive.ObjectID]())
	assert.True(t, convx.IsConversionFailed(err))
}

func TestDecimal128(t *testing.T) {
	reg := convx.NewRegistry("mongo")
	Register(reg)

	d128, err := convx.ConvertTo[primitive.Decimal128](reg, decimal.RequireFromString("12.75"))
	require.NoError(t, err)

	d, err := convx.ConvertTo[decimal.Decimal](reg, d128)
	require.NoError(t, err)
	assert.Equal(t, "12.75", d.String())
}

func TestDateTime(t *testing.T) {
	reg := convx.NewRegistry("mongo")
	Register(reg)

	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	dt, err := convx.ConvertTo[primitive.DateTime](reg, now)
	require.NoError(t, err)

	back, err := convx.ConvertTo[time.Time](reg, dt)
	require.NoError(t, err)
	assert.True(t, now.Equal(back))
}
