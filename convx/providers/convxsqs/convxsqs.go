// Package convxsqs registers conversions between plain values and SQS message attributes.
package convxsqs

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"github.com/Conversia-AI/craftable-convx/convx"
)

const (
	DataTypeString = "String"
	DataTypeNumber = "Number"
	DataTypeBinary = "Binary"
)

// Converters returns the SQS message attribute converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewPure(func(v string) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: aws.String(DataTypeString), StringValue: aws.String(v)}
		}),
		convx.NewPure(func(v int64) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: aws.String(DataTypeNumber), StringValue: aws.String(strconv.FormatInt(v, 10))}
		}),
		convx.NewPure(func(v float64) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: aws.String(DataTypeNumber), StringValue: aws.String(strconv.FormatFloat(v, 'f', -1, 64))}
		}),
		convx.NewPure(func(v []byte) types.MessageAttributeValue {
			return types.MessageAttributeValue{DataType: aws.String(DataTypeBinary), BinaryValue: v}
		}),
		convx.NewFunc(func(v types.MessageAttributeValue) (string, error) {
			if v.StringValue == nil {
				return "", fmt.Errorf("attribute of type %s has no string value", aws.ToString(v.DataType))
			}
			return aws.ToString(v.StringValue), nil
		}),
		convx.NewFunc(func(v types.MessageAttributeValue) (int64, error) {
			if aws.ToString(v.DataType) != DataTypeNumber {
				return 0, fmt.Errorf("attribute of type %s is not a number", aws.ToString(v.DataType))
			}
			return strconv.ParseInt(aws.ToString(v.StringValue), 10, 64)
		}),
		convx.NewFunc(func(v types.MessageAttributeValue) (float64, error) {
			if aws.ToString(v.DataType) != DataTypeNumber {
				return 0, fmt.Errorf("attribute of type %s is not a number", aws.ToString(v.DataType))
			}
			return strconv.ParseFloat(aws.ToString(v.StringValue), 64)
		}),
		convx.NewFunc(func(v types.MessageAttributeValue) ([]byte, error) {
			if aws.ToString(v.DataType) != DataTypeBinary {
				return nil, fmt.Errorf("attribute of type %s is not binary", aws.ToString(v.DataType))
			}
			return v.BinaryValue, nil
		}),
	}
}

// Register adds the SQS converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}
