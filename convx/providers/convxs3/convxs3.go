// Package convxs3 registers conversions between plain maps and strings and S3
// object metadata types: tag sets, tagging documents and storage classes.
package convxs3

import (
	"errors"
	"fmt"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/samber/lo"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// MaxTags is the number of tags S3 accepts on one object
const MaxTags = 10

// Converters returns the S3 converters
func Converters() convx.Provider {
	return convx.ConverterSet{
		convx.NewFunc(MapToTags),
		convx.NewFunc(TagsToMap),
		convx.NewFunc(func(m map[string]string) (*types.Tagging, error) {
			tags, err := MapToTags(m)
			if err != nil {
				return nil, err
			}
			return &types.Tagging{TagSet: tags}, nil
		}),
		convx.NewFunc(func(t *types.Tagging) (map[string]string, error) {
			if t == nil {
				return map[string]string{}, nil
			}
			return TagsToMap(t.TagSet)
		}),
		convx.NewFunc(ParseStorageClass),
		convx.NewPure(func(c types.StorageClass) string { return string(c) }),
	}
}

// Register adds the S3 converters to r
func Register(r *convx.Registry) {
	convx.RegisterProviders(r, Converters())
}

// MapToTags builds a tag set ordered by key
func MapToTags(m map[string]string) ([]types.Tag, error) {
	if len(m) > MaxTags {
		return nil, fmt.Errorf("%d tags given, S3 accepts at most %d", len(m), MaxTags)
	}

	keys := lo.Keys(m)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) types.Tag {
		return types.Tag{Key: aws.String(k), Value: aws.String(m[k])}
	}), nil
}

// TagsToMap flattens a tag set; a key seen twice is an error
func TagsToMap(tags []types.Tag) (map[string]string, error) {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		key := aws.ToString(tag.Key)
		if key == "" {
			return nil, errors.New("tag without key")
		}
		if _, dup := out[key]; dup {
			return nil, fmt.Errorf("duplicate tag %q", key)
		}
		out[key] = aws.ToString(tag.Value)
	}
	return out, nil
}

// ParseStorageClass accepts the storage classes known to the SDK. Empty means STANDARD.
func ParseStorageClass(s string) (types.StorageClass, error) {
	if s == "" {
		return types.StorageClassStandard, nil
	}
	class := types.StorageClass(s)
	if !slices.Contains(class.Values(), class) {
		return "", fmt.Errorf("unknown storage class %q", s)
	}
	return class, nil
}
