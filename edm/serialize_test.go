package edm_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-codec/edm"
)

func TestSerializeValue(t *testing.T) {
	t.Parallel()

	t.Run("booleans encode as 1 and 0", func(t *testing.T) {
		t.Parallel()

		got, err := edm.SerializeValue(edm.TypeBoolean, true)
		require.NoError(t, err)
		assert.Equal(t, "1", got)

		got, err = edm.SerializeValue(edm.TypeBoolean, false)
		require.NoError(t, err)
		assert.Equal(t, "0", got)
	})

	t.Run("text is markup escaped", func(t *testing.T) {
		t.Parallel()

		got, err := edm.SerializeValue(edm.TypeString, `a <b> & "c"`)
		require.NoError(t, err)
		assert.Equal(t, "a &lt;b&gt; &amp; &#34;c&#34;", got)
	})

	t.Run("unspecified type encodes like String", func(t *testing.T) {
		t.Parallel()

		got, err := edm.SerializeValue(edm.TypeNone, "1<2")
		require.NoError(t, err)
		assert.Equal(t, "1&lt;2", got)
	})

	t.Run("integers keep their decimal form", func(t *testing.T) {
		t.Parallel()

		got, err := edm.SerializeValue(edm.TypeInt64, int64(1234567890123))
		require.NoError(t, err)
		assert.Equal(t, "1234567890123", got)
	})

	t.Run("datetime uses the canonical form", func(t *testing.T) {
		t.Parallel()

		instant := time.Date(2014, 11, 12, 13, 14, 15, 999, time.UTC)
		got, err := edm.SerializeValue(edm.TypeDateTime, instant)
		require.NoError(t, err)
		assert.Equal(t, "2014-11-12T13:14:15.0000000Z", got)
	})

	t.Run("datetime accepts textual instants", func(t *testing.T) {
		t.Parallel()

		got, err := edm.SerializeValue(edm.TypeDateTime, "2014-11-12T13:14:15Z")
		require.NoError(t, err)
		assert.Equal(t, "2014-11-12T13:14:15.0000000Z", got)
	})

	t.Run("non-UTC instants are normalized", func(t *testing.T) {
		t.Parallel()

		zone := time.FixedZone("east", 2*60*60)
		instant := time.Date(2014, 11, 12, 15, 14, 15, 0, zone)
		got, err := edm.SerializeValue(edm.TypeDateTime, instant)
		require.NoError(t, err)
		assert.Equal(t, "2014-11-12T13:14:15.0000000Z", got)
	})

	t.Run("out of range tag fails", func(t *testing.T) {
		t.Parallel()

		_, err := edm.SerializeValue(edm.TypeEnum(-1), 1)
		assert.ErrorIs(t, err, edm.ErrInvalidType)
	})
}

func ExampleFormatDateTime() {
	instant := time.Date(2014, 11, 12, 13, 14, 15, 0, time.UTC)
	fmt.Println(edm.FormatDateTime(instant))

	parsed, err := edm.ParseDateTime("2014-11-12T13:14:15.0000000Z")
	fmt.Println(parsed.UTC().Format(time.RFC3339), err)

	// Output:
	// 2014-11-12T13:14:15.0000000Z
	// 2014-11-12T13:14:15Z <nil>
}
