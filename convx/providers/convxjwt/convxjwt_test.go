package convxjwt

import (
	"reflect"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conversia-AI/craftable-convx/convx"
)

func TestNumericDate(t *testing.T) {
	reg := convx.NewRegistry("jwt")
	Register(reg)

	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	nd, err := convx.ConvertTo[*jwt.NumericDate](reg, at)
	require.NoError(t, err)
	assert.Equal(t, at.Unix(), nd.Unix())

	unix, err := convx.ConvertTo[int64](reg, nd)
	require.NoError(t, err)
	assert.Equal(t, at.Unix(), unix)

	back, err := convx.ConvertTo[time.Time](reg, nd)
	require.NoError(t, err)
	assert.True(t, at.Equal(back))

	zero, err := reg.ConvertFrom(nil, reflect.TypeFor[*jwt.NumericDate](), reflect.TypeFor[time.Time]())
	require.NoError(t, err)
	assert.True(t, zero.(time.Time).IsZero())
}
