package convxsqs

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conversia-AI/craftable-convx/convx"
)

func TestMessageAttributes(t *testing.T) {
	reg := convx.NewRegistry("sqs")
	Register(reg)

	attr, err := convx.ConvertTo[types.MessageAttributeValue](reg, int64(42))
	require.NoError(t, err)
	assert.Equal(t, DataTypeNumber, aws.ToString(attr.DataType))

	n, err := convx.ConvertTo[int64](reg, attr)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	s, err := convx.ConvertTo[string](reg, attr)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	strAttr, err := convx.ConvertTo[types.MessageAttributeValue](reg, "hello")
	require.NoError(t, err)
	_, err = reg.Convert(strAttr, reflect.TypeFor[float64]())
	assert.True(t, convx.IsConversionFailed(err))

	bin, err := convx.ConvertTo[types.MessageAttributeValue](reg, []byte{1, 2})
	require.NoError(t, err)
	b, err := convx.ConvertTo[[]byte](reg, bin)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, b)
}
