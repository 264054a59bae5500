package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conversia-AI/craftable-convx/convx"
	"github.com/Conversia-AI/craftable-convx/datetimex"
	"github.com/Conversia-AI/craftable-convx/errx"
	"github.com/Conversia-AI/craftable-convx/logx"
	"github.com/Conversia-AI/craftable-convx/storex"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewConvxCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	assert.Contains(t, out, "FROM")
	assert.Contains(t, out, "decimal.Decimal")
	assert.Contains(t, out, "datetimex.TimestampDTO")
	assert.Contains(t, out, "page 1 of 1")
}

func TestList_JSONFilteredAndPaged(t *testing.T) {
	out, err := execute(t, "list", "-o", "json", "--from", "string", "--to", "uuid.UUID", "--page-size", "1")
	require.NoError(t, err)

	var page storex.Paginated[listEntry]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, 1, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, listEntry{From: "string", To: "uuid.UUID"}, page.Items[0])
}

func TestList_PagePastEnd(t *testing.T) {
	out, err := execute(t, "list", "-o", "json", "--page", "1000", "--page-size", "10")
	require.NoError(t, err)

	var page storex.Paginated[listEntry]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Empty(t, page.Items)
	assert.Equal(t, NewRegistry(convx.DefaultOptions()).Count(), page.TotalItems)
}

func TestList_HugePage(t *testing.T) {
	out, err := execute(t, "list", "-o", "json", "--page", "92233720368547758", "--page-size", "1000")
	require.NoError(t, err)

	var page storex.Paginated[listEntry]
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Empty(t, page.Items)
}

func TestList_InvalidPagination(t *testing.T) {
	for _, args := range [][]string{
		{"list", "--page", "0"},
		{"list", "--page=-3"},
		{"list", "--page-size", "0"},
		{"list", "--page-size", "1001"},
	} {
		_, err := execute(t, args...)
		assert.True(t, errx.IsCode(err, storex.ErrInvalidPagination), "%v", args)
	}
}

func TestVerboseLogsRegistryOptions(t *testing.T) {
	var logs bytes.Buffer
	logx.SetOutput(&logs)
	t.Cleanup(func() {
		logx.SetOutput(os.Stderr)
		logx.SetLevel(logx.InfoLevel)
	})
	t.Setenv("CONVX_TIME_LAYOUT", "2006-01-02")

	_, err := execute(t, "list", "-v")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "registry options")
	assert.Contains(t, logs.String(), "TimeLayout:2006-01-02")
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"string to decimal", []string{"convert", "10", "--to", "decimal.Decimal"}, "10\n"},
		{"chained", []string{"convert", "2.50", "--from", "decimal.Decimal", "--to", "float64"}, "2.5\n"},
		{"same type", []string{"convert", "x", "--to", "string"}, "x\n"},
		{"uuid", []string{"convert", "6BA7B810-9DAD-11D1-80B4-00C04FD430C8", "--to", "uuid.UUID"}, "6ba7b810-9dad-11d1-80b4-00c04fd430c8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvert_DecimalSeparatorFromEnv(t *testing.T) {
	t.Setenv("CONVX_DECIMAL_SEPARATOR", ",")

	out, err := execute(t, "convert", "1.234,5", "--to", "decimal.Decimal")
	require.NoError(t, err)
	assert.Equal(t, "1234.5\n", out)
}

func TestConvert_DecimalSeparatorFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("decimal:\n  separator: \",\"\n"), 0o600))

	out, err := execute(t, "--config", path, "convert", "0,25", "--to", "decimal.Decimal")
	require.NoError(t, err)
	assert.Equal(t, "0.25\n", out)
}

func TestConvert_JSON(t *testing.T) {
	out, err := execute(t, "convert", "42", "--to", "int", "-o", "json")
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "string", result["from"])
	assert.Equal(t, "int", result["to"])
	assert.Equal(t, float64(42), result["value"])
}

func TestConvert_Errors(t *testing.T) {
	_, err := execute(t, "convert", "1", "--to", "chan int")
	assert.True(t, convx.IsNoConverter(err))

	_, err = execute(t, "convert", "ten", "--to", "decimal.Decimal")
	assert.True(t, convx.IsConversionFailed(err))

	_, err = execute(t, "convert", "1")
	assert.ErrorContains(t, err, "required flag")
}

func TestTimestamp(t *testing.T) {
	out, err := execute(t, "timestamp", "2024-03-15T10:30:45Z")
	require.NoError(t, err)

	var ts datetimex.TimestampDTO
	require.NoError(t, json.Unmarshal([]byte(out), &ts))
	assert.Equal(t, datetimex.DateDTO{Year: 2024, MonthOfYear: 3, DayOfMonth: 15}, ts.Date)
	assert.Equal(t, 10, ts.Time.Hour)
	assert.Equal(t, 30, ts.Time.Minute)
	assert.Equal(t, 45, ts.Time.Sec)
	assert.Equal(t, "UTC", ts.Time.TimeZone)
}

func TestTimestamp_Zone(t *testing.T) {
	out, err := execute(t, "timestamp", "2024-03-15T23:30:00Z", "--zone", "+02:00")
	require.NoError(t, err)

	var ts datetimex.TimestampDTO
	require.NoError(t, json.Unmarshal([]byte(out), &ts))
	assert.Equal(t, 16, ts.Date.DayOfMonth)
	assert.Equal(t, 1, ts.Time.Hour)
}

func TestTimestamp_Now(t *testing.T) {
	global := DefaultGlobalOptions()
	require.NoError(t, global.Complete(nil, nil))

	o := DefaultTimestampOptions(global)
	o.now = func() time.Time { return time.Date(2000, 1, 2, 3, 4, 5, 0, time.UTC) }

	var out bytes.Buffer
	require.NoError(t, o.Run(&out, nil))

	var ts datetimex.TimestampDTO
	require.NoError(t, json.Unmarshal(out.Bytes(), &ts))
	assert.Equal(t, 2000, ts.Date.Year)
	assert.Equal(t, 5, ts.Time.Sec)
}

func TestTimestamp_Invalid(t *testing.T) {
	_, err := execute(t, "timestamp", "yesterday")
	assert.True(t, errx.IsCode(err, ErrInvalidTime))

	_, err = execute(t, "timestamp", "2024-03-15T10:30:45Z", "--zone", "Nowhere/Special")
	assert.True(t, errx.IsCode(err, datetimex.ErrUnknownTimeZone))
}

func TestInvalidOutput(t *testing.T) {
	_, err := execute(t, "list", "-o", "yaml")
	assert.True(t, errx.IsCode(err, ErrInvalidOutput))
}
